package encode

import (
	"io"
	"strings"

	"github.com/pbx-format/go-pbx/ir"
	"github.com/pbx-format/go-pbx/token"
)

type EncState struct {
	depth  int
	indent string

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node as OpenStep plist text. The first line is written at
// the current output position; nested lines are indented from the
// configured depth, so callers may embed the output after a "key = "
// prefix of their own.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: "\t",
	}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.StringType:
		return writeString(w, es.colored(node.Type, ValueColor, quoted(node.String)))
	case ir.DataType:
		return writeString(w, es.colored(node.Type, ValueColor, token.EncodeData(node.Bytes)))
	case ir.DictType:
		return encodeDict(node, w, es)
	case ir.ArrayType:
		return encodeArr(node, w, es)
	}
	return nil
}

func encodeDict(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) == 0 {
		return writeString(w, es.colored(ir.DictType, SepColor, "{}"))
	}
	if err := writeString(w, es.colored(ir.DictType, SepColor, "{")); err != nil {
		return err
	}
	es.depth++
	for i := range node.Fields {
		if err := writeNL(w, es); err != nil {
			return err
		}
		key := es.colored(ir.DictType, FieldColor, quoted(node.Fields[i].String))
		if err := writeString(w, key); err != nil {
			return err
		}
		if err := writeString(w, es.colored(ir.DictType, SepColor, " = ")); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
		if err := writeString(w, es.colored(ir.DictType, SepColor, ";")); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, es.colored(ir.DictType, SepColor, "}"))
}

func encodeArr(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeString(w, es.colored(ir.ArrayType, SepColor, "()"))
	}
	if err := writeString(w, es.colored(ir.ArrayType, SepColor, "(")); err != nil {
		return err
	}
	es.depth++
	for _, v := range node.Values {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
		if err := writeString(w, es.colored(ir.ArrayType, SepColor, ",")); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, es.colored(ir.ArrayType, SepColor, ")"))
}

func quoted(s string) string {
	if token.NeedsQuoting(s) {
		return token.Quote(s)
	}
	return s
}

func (es *EncState) colored(t ir.Type, attr ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, attr, s)
}

func writeNL(w io.Writer, es *EncState) error {
	return writeString(w, "\n"+strings.Repeat(es.indent, es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
