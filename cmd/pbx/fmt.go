package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/pbx-format/go-pbx/pbxproj"
)

func fmtRun(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		if cfg.Write {
			return fmt.Errorf("%w: -w needs file arguments", cli.ErrUsage)
		}
		doc, err := pbxproj.FromReader(os.Stdin)
		if err != nil {
			return err
		}
		return doc.Serialize(cc.Out)
	}
	for _, file := range args {
		doc, err := pbxproj.FromFile(file)
		if err != nil {
			return fmt.Errorf("error loading %s: %w", file, err)
		}
		if cfg.Write {
			if err := doc.Save(); err != nil {
				return fmt.Errorf("error writing %s: %w", file, err)
			}
			continue
		}
		if err := doc.Serialize(cc.Out); err != nil {
			return err
		}
	}
	return nil
}
