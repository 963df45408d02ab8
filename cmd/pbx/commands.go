package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts,
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		})

	return cli.NewCommandAt(&cfg.Main, "pbx").
		WithSynopsis("pbx [opts] command [opts]").
		WithDescription("pbx is a tool for working with Xcode project files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return pbxMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			FmtCommand(cfg),
			TargetsCommand(cfg),
			ExportCommand(cfg),
			DiffCommand(cfg),
			UIDCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [files]").
		WithDescription("view project files in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [-w] [files]").
		WithDescription("rewrite project files in canonical sorted form").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtRun(cfg, cc, args)
		})
}

func TargetsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TargetsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Targets, "targets").
		WithAliases("t").
		WithSynopsis("targets [-p] <file>").
		WithDescription("list the targets of a project").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return targets(cfg, cc, args)
		})
}

func ExportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExportConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Export, "export").
		WithAliases("e", "ex").
		WithSynopsis("export [-j] [files]").
		WithDescription("export project files as YAML or JSON").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return export(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff a b").
		WithDescription("diff two project files in canonical form").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func UIDCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &UIDConfig{MainConfig: mainCfg, N: 1}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.UID, "uid").
		WithSynopsis("uid [-n count] [file]").
		WithDescription("generate identifiers free in the given project").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return uid(cfg, cc, args)
		})
}
