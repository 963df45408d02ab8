package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/pbx-format/go-pbx/ir"
	"github.com/pbx-format/go-pbx/pbxproj"
	"github.com/pbx-format/go-pbx/token"
)

func export(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		doc, err := pbxproj.FromReader(os.Stdin)
		if err != nil {
			return err
		}
		return exportDoc(cfg, cc.Out, doc)
	}
	for i, file := range args {
		doc, err := pbxproj.FromFile(file)
		if err != nil {
			return fmt.Errorf("error loading %s: %w", file, err)
		}
		if err := exportDoc(cfg, cc.Out, doc); err != nil {
			return err
		}
		if i < len(args)-1 {
			if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

func exportDoc(cfg *ExportConfig, w io.Writer, doc *pbxproj.Document) error {
	out, err := yaml.Marshal(exportable(doc.Root()))
	if err != nil {
		return fmt.Errorf("error marshaling: %w", err)
	}
	if cfg.JSON {
		out, err = yaml.YAMLToJSON(out)
		if err != nil {
			return fmt.Errorf("error converting to json: %w", err)
		}
		out = append(out, '\n')
	}
	_, err = w.Write(out)
	return err
}

// exportable maps the plist tree onto yaml-marshalable values, keeping
// dict field order.
func exportable(n *ir.Node) any {
	switch n.Type {
	case ir.StringType:
		return n.String
	case ir.DataType:
		return token.EncodeData(n.Bytes)
	case ir.ArrayType:
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			res[i] = exportable(v)
		}
		return res
	case ir.DictType:
		res := make(yaml.MapSlice, len(n.Fields))
		for i, f := range n.Fields {
			res[i] = yaml.MapItem{Key: f.String, Value: exportable(n.Values[i])}
		}
		return res
	}
	return nil
}
