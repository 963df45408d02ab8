package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/pbx-format/go-pbx/pbxproj"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes two project files", cli.ErrUsage)
	}
	a, err := canonical(args[0])
	if err != nil {
		return err
	}
	b, err := canonical(args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		a, b = b, a
	}
	dmp := diffmatchpatch.New()
	runesA, runesB, lines := dmp.DiffLinesToRunes(a, b)
	diffs := dmp.DiffMainRunes(runesA, runesB, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)
	changed := false
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			changed = true
			if err := writePrefixed(cc.Out, "+", d.Text); err != nil {
				return err
			}
		case diffmatchpatch.DiffDelete:
			changed = true
			if err := writePrefixed(cc.Out, "-", d.Text); err != nil {
				return err
			}
		}
	}
	if changed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// canonical loads file and renders it in sorted serialized form, so the
// diff reflects content and not formatting or table order.
func canonical(file string) (string, error) {
	doc, err := pbxproj.FromFile(file)
	if err != nil {
		return "", fmt.Errorf("error loading %s: %w", file, err)
	}
	return doc.String(), nil
}

func writePrefixed(w io.Writer, prefix, text string) error {
	for len(text) > 0 {
		line := text
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			line, text = text[:i], text[i+1:]
		} else {
			text = ""
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", prefix, line); err != nil {
			return err
		}
	}
	return nil
}
