package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/pbx-format/go-pbx/encode"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type FmtConfig struct {
	*MainConfig

	Write bool `cli:"name=w desc='write result back to the project file'"`
	Fmt   *cli.Command
}

type TargetsConfig struct {
	*MainConfig

	Phases  bool `cli:"name=p aliases=phases desc='show build phases per target'"`
	Targets *cli.Command
}

type ExportConfig struct {
	*MainConfig

	JSON   bool `cli:"name=j aliases=json desc='export as JSON instead of YAML'"`
	Export *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Diff    *cli.Command
}

type UIDConfig struct {
	*MainConfig

	N   int `cli:"name=n desc='number of identifiers to generate'"`
	UID *cli.Command
}
