package main

import (
	"fmt"

	"github.com/kindredlab/gedcom-format/go-gedcom/element"

	"github.com/charmbracelet/log"
	"github.com/scott-cotton/cli"
)

type StatsConfig struct {
	*MainConfig
	Stats *cli.Command
}

func stats(cfg *StatsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Stats.Parse(cc, args)
	if err != nil {
		cfg.Stats.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	setupLog(cfg.Verbose)
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		doc, err := readDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		counts := map[element.Kind]int{}
		for _, rec := range doc.Records() {
			counts[rec.Kind()]++
		}
		lines := 0
		doc.Root().Visit(func(e *element.Element, isPost bool) (bool, error) {
			if !isPost && e.Level >= 0 {
				lines++
			}
			return true, nil
		})
		log.Debugf("%s: %d lines", arg, lines)
		fmt.Fprintf(cc.Out, "%s:\n", arg)
		for kind := element.GenericKind; kind <= element.HeaderKind; kind++ {
			if counts[kind] == 0 {
				continue
			}
			fmt.Fprintf(cc.Out, "  %-12s %d\n", kind, counts[kind])
		}
		fmt.Fprintf(cc.Out, "  %-12s %d\n", "lines", lines)
	}
	return nil
}
