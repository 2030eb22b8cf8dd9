package calc

import "strconv"

// ConvertOperands parses every token as a base-10 int64. It stops at the
// first bad token; no partial result is returned.
func ConvertOperands(tokens []string) ([]int64, error) {
	if len(tokens) == 0 {
		return nil, &OperandError{Kind: EmptyInput}
	}
	out := make([]int64, 0, len(tokens))
	for i, tok := range tokens {
		n, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, &OperandError{Kind: ParseError, Index: i, Token: tok, Err: err}
		}
		out = append(out, n)
	}
	return out, nil
}
