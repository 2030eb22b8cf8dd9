package present

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"
)

func renderYAML(w io.Writer, o Outcome) error {
	top := &yaml.Node{Kind: yaml.MappingNode}
	if o.Err != nil {
		top.Content = append(top.Content, keyNode("error"), valueNode(o.Err.Error()))
	} else {
		operands := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, n := range o.Result.Operands {
			operands.Content = append(operands.Content, valueNode(n))
		}
		top.Content = append(top.Content,
			keyNode("operator"), valueNode(o.Result.Operator),
			keyNode("operands"), operands,
			keyNode("result"), valueNode(o.Result.Value),
		)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(top); err != nil {
		_ = enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	out := bytes.TrimRight(buf.Bytes(), "\n")
	out = append(out, '\n')
	_, err := w.Write(out)
	return err
}

func keyNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func valueNode(v any) *yaml.Node {
	n := &yaml.Node{}
	_ = n.Encode(v)
	return n
}
