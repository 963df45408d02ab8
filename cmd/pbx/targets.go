package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/pbx-format/go-pbx/pbxproj"
)

func targets(cfg *TargetsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Targets.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: targets takes one project file", cli.ErrUsage)
	}
	doc, err := pbxproj.FromFile(args[0])
	if err != nil {
		return err
	}
	proj := doc.Project()
	if proj == nil {
		return fmt.Errorf("%s: no resolvable root PBXProject", args[0])
	}
	for _, ref := range proj.Targets() {
		t, ok := ref.Object().(*pbxproj.NativeTarget)
		if !ok {
			fmt.Fprintf(cc.Out, "%s\t(unresolved)\n", ref.UID())
			continue
		}
		fmt.Fprintf(cc.Out, "%s\t%s\t%s\n", ref.UID(), t.Name(), t.ProductType())
		if !cfg.Phases {
			continue
		}
		for _, pref := range t.BuildPhases() {
			obj := pref.Object()
			if obj == nil {
				fmt.Fprintf(cc.Out, "\t%s\t(unresolved)\n", pref.UID())
				continue
			}
			fmt.Fprintf(cc.Out, "\t%s\t%s\n", pref.UID(), obj.Isa())
		}
	}
	return nil
}
