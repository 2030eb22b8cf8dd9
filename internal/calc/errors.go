package calc

import (
	"errors"
	"strconv"
)

// Kind classifies the recoverable failures of a calculation.
type Kind int

const (
	UnsupportedCommand Kind = iota + 1
	UnsupportedOperator
	EmptyOperands
	OperandParseFailure
	MissingArguments
	NoResult
)

var kindMessages = map[Kind]string{
	UnsupportedCommand:  "Unsupported command.",
	UnsupportedOperator: "Unsupported operator.",
	EmptyOperands:       "Input operands must not be empty.",
	OperandParseFailure: "Failed to parse operands as number.",
	MissingArguments:    "Missing arguments.",
	NoResult:            "No result.",
}

// Message returns the user-facing text for k.
func (k Kind) Message() string {
	if m, ok := kindMessages[k]; ok {
		return m
	}
	return "error"
}

// Sentinels for errors.Is.
var (
	ErrUnsupportedCommand  = &Error{Kind: UnsupportedCommand}
	ErrUnsupportedOperator = &Error{Kind: UnsupportedOperator}
	ErrEmptyOperands       = &Error{Kind: EmptyOperands}
	ErrOperandParse        = &Error{Kind: OperandParseFailure}
	ErrMissingArguments    = &Error{Kind: MissingArguments}
	ErrNoResult            = &Error{Kind: NoResult}
)

// Error is the single error value handed back to the entry point. Err keeps
// the underlying cause (if any) for diagnostics; it never shows in Error().
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return e.Kind.Message() }

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(k Kind, cause error) error {
	return &Error{Kind: k, Err: cause}
}

// OperandErrorKind distinguishes the two ways operand conversion fails.
type OperandErrorKind int

const (
	EmptyInput OperandErrorKind = iota + 1
	ParseError
)

// OperandError is returned by ConvertOperands.
type OperandError struct {
	Kind  OperandErrorKind
	Index int
	Token string
	Err   error
}

func (e *OperandError) Error() string {
	if e.Kind == EmptyInput {
		return "empty operand list"
	}
	return "operand " + strconv.Itoa(e.Index) + " " + strconv.Quote(e.Token) + ": " + e.Err.Error()
}

func (e *OperandError) Unwrap() error { return e.Err }

// KindOf returns the Kind carried by err, or 0 when err is not a calc error.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return 0
}
