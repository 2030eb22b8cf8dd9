package calc

import "sort"

// Reducer folds an operand sequence into one value. The bool reports
// whether a value exists.
type Reducer func(operands []int64) (int64, bool)

var operators = map[string]Reducer{
	"add": Add,
	"sub": Sub,
}

// Operators lists the supported operator names in sorted order.
func Operators() []string {
	names := make([]string, 0, len(operators))
	for name := range operators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Add returns the sum of operands. The empty sum is 0 and is still present.
func Add(operands []int64) (int64, bool) {
	var sum int64
	for _, n := range operands {
		sum += n
	}
	return sum, true
}

// Sub subtracts every operand after the first from the first, left to right.
// There is no value for an empty sequence.
func Sub(operands []int64) (int64, bool) {
	if len(operands) == 0 {
		return 0, false
	}
	acc := operands[0]
	for _, n := range operands[1:] {
		acc -= n
	}
	return acc, true
}

// Result is the outcome of one evaluation.
type Result struct {
	Operator string
	Operands []int64
	Value    int64
	Present  bool
}

// Evaluate applies the named operator. Unknown names fail before any
// reduction runs.
func Evaluate(operator string, operands []int64) (Result, error) {
	reduce, ok := operators[operator]
	if !ok {
		return Result{}, newError(UnsupportedOperator, nil)
	}
	v, present := reduce(operands)
	return Result{Operator: operator, Operands: operands, Value: v, Present: present}, nil
}
