package calc

import (
	"errors"
	"log/slog"
)

// CommandCalc is the only command the dispatcher knows.
const CommandCalc = "calc"

// Dispatcher maps a command line onto an evaluation. The zero value is
// ready to use and logs nothing.
type Dispatcher struct {
	Log *slog.Logger
}

func (d Dispatcher) logger() *slog.Logger {
	if d.Log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return d.Log
}

// HandleCommand dispatches command with the remaining arguments.
func (d Dispatcher) HandleCommand(command string, rest []string) (Result, error) {
	d.logger().Debug("dispatch", "command", command, "args", len(rest))
	switch command {
	case CommandCalc:
		if len(rest) == 0 {
			return Result{}, newError(MissingArguments, nil)
		}
		return d.HandleCalc(rest[0], rest[1:])
	default:
		return Result{}, newError(UnsupportedCommand, nil)
	}
}

// HandleCalc converts operands first and only then resolves the operator,
// so operand problems win over an unknown operator.
func (d Dispatcher) HandleCalc(operator string, operands []string) (Result, error) {
	log := d.logger()
	nums, err := ConvertOperands(operands)
	if err != nil {
		var oe *OperandError
		if errors.As(err, &oe) && oe.Kind == EmptyInput {
			return Result{}, newError(EmptyOperands, err)
		}
		log.Debug("operand parse failed", "error", err)
		return Result{}, newError(OperandParseFailure, err)
	}
	log.Debug("operands parsed", "operator", operator, "operands", nums)
	res, err := Evaluate(operator, nums)
	if err != nil {
		return Result{}, err
	}
	log.Debug("evaluated", "operator", operator, "value", res.Value, "present", res.Present)
	return res, nil
}

// Run validates the argument count, dispatches, and turns an absent value
// into NoResult so callers only ever see a present value or an error.
func (d Dispatcher) Run(args []string) (Result, error) {
	if len(args) == 0 {
		return Result{}, newError(MissingArguments, nil)
	}
	res, err := d.HandleCommand(args[0], args[1:])
	if err != nil {
		return Result{}, err
	}
	if !res.Present {
		return res, newError(NoResult, nil)
	}
	return res, nil
}

// HandleCommand dispatches with a silent Dispatcher.
func HandleCommand(command string, rest []string) (Result, error) {
	return Dispatcher{}.HandleCommand(command, rest)
}
