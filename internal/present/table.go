package present

import (
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func renderTable(w io.Writer, o Outcome) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	if o.Err != nil {
		tw.AppendHeader(table.Row{"Error"})
		tw.AppendRow(table.Row{o.Err.Error()})
	} else {
		operands := make([]string, 0, len(o.Result.Operands))
		for _, n := range o.Result.Operands {
			operands = append(operands, strconv.FormatInt(n, 10))
		}
		tw.AppendHeader(table.Row{"Operator", "Operands", "Result"})
		tw.AppendRow(table.Row{o.Result.Operator, strings.Join(operands, " "), strconv.FormatInt(o.Result.Value, 10)})
		tw.SetColumnConfigs([]table.ColumnConfig{
			{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		})
	}
	_, err := io.WriteString(w, tw.Render()+"\n")
	return err
}
