package main

import (
	"fmt"

	"github.com/kindredlab/gedcom-format/go-gedcom/encode"

	"github.com/charmbracelet/log"
	"github.com/scott-cotton/cli"
)

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
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
		log.Debugf("%s: %d records", arg, len(doc.Records()))
		if err := encode.Encode(doc.Root(), cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}
