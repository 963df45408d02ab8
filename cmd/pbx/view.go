package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/pbx-format/go-pbx/encode"
	"github.com/pbx-format/go-pbx/parse"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return viewReader(cfg, cc.Out, os.Stdin, "stdin")
	}
	for _, file := range args {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		err = viewReader(cfg, cc.Out, f, file)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func viewReader(cfg *ViewConfig, w io.Writer, r io.Reader, source string) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	pOpts := []parse.ParseOption{parse.Source(source)}
	root, err := parse.Parse(in, pOpts...)
	if err != nil {
		return err
	}
	if err := encode.Encode(root, w, cfg.MainConfig.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding %s: %w", source, err)
	}
	_, err = io.WriteString(w, "\n")
	return err
}
