package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	setupLog(cfg.Verbose)
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires exactly two files", cli.ErrUsage)
	}
	renders := make([]string, 2)
	for i, arg := range args {
		doc, err := readDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		renders[i] = doc.String()
	}
	if renders[0] == renders[1] {
		return nil
	}
	dmp := diffpatch.New()
	a, b, lineIndex := dmp.DiffLinesToChars(renders[0], renders[1])
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineIndex)
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			writeLines(cc.Out, "-", d.Text, color.RedString, cfg.Color)
		case diffpatch.DiffInsert:
			writeLines(cc.Out, "+", d.Text, color.GreenString, cfg.Color)
		}
	}
	return cli.ExitCodeErr(1)
}

func writeLines(w io.Writer, prefix, text string, colorize func(string, ...any) string, useColor bool) {
	for _, line := range strings.Split(strings.TrimRight(text, "\r\n"), "\n") {
		out := prefix + strings.TrimRight(line, "\r")
		if useColor {
			out = colorize("%s", out)
		}
		fmt.Fprintln(w, out)
	}
}
