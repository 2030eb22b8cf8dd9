package present

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/flarebyte/ixcalc/internal/calc"
)

// Outcome is what the presenter renders: a result or the error that
// replaced it.
type Outcome struct {
	Result calc.Result
	Err    error
}

// resolve folds an absent value into a NoResult error.
func (o Outcome) resolve() Outcome {
	if o.Err == nil && !o.Result.Present {
		o.Err = &calc.Error{Kind: calc.NoResult}
	}
	return o
}

// Render writes o to w in format f.
func Render(w io.Writer, f Format, o Outcome) error {
	o = o.resolve()
	switch f {
	case FormatJSON:
		return renderJSON(w, o)
	case FormatYAML:
		return renderYAML(w, o)
	case FormatTable:
		return renderTable(w, o)
	default:
		return renderText(w, o)
	}
}

func renderText(w io.Writer, o Outcome) error {
	if o.Err != nil {
		_, err := fmt.Fprintln(w, o.Err.Error())
		return err
	}
	_, err := fmt.Fprintf(w, "The result is %d.\n", o.Result.Value)
	return err
}

// jsonOutcome keeps JSON field order stable.
type jsonOutcome struct {
	Operator string  `json:"operator,omitempty"`
	Operands []int64 `json:"operands,omitempty"`
	Result   *int64  `json:"result,omitempty"`
	Error    string  `json:"error,omitempty"`
}

func renderJSON(w io.Writer, o Outcome) error {
	var v jsonOutcome
	if o.Err != nil {
		v.Error = o.Err.Error()
	} else {
		val := o.Result.Value
		v = jsonOutcome{Operator: o.Result.Operator, Operands: o.Result.Operands, Result: &val}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}
