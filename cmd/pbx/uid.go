package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/pbx-format/go-pbx/pbxproj"
)

func uid(cfg *UIDConfig, cc *cli.Context, args []string) error {
	args, err := cfg.UID.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: uid takes at most one project file", cli.ErrUsage)
	}
	if cfg.N < 1 {
		return fmt.Errorf("%w: -n must be positive", cli.ErrUsage)
	}
	doc := pbxproj.New()
	if len(args) == 1 {
		doc, err = pbxproj.FromFile(args[0])
		if err != nil {
			return err
		}
	}
	seen := map[string]bool{}
	for i := 0; i < cfg.N; i++ {
		u := pbxproj.NewUID(doc.Objects())
		for seen[u] {
			u = pbxproj.NewUID(doc.Objects())
		}
		seen[u] = true
		fmt.Fprintln(cc.Out, u)
	}
	return nil
}
