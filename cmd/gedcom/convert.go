package main

import (
	"fmt"

	"github.com/kindredlab/gedcom-format/go-gedcom/element"
	"github.com/kindredlab/gedcom-format/go-gedcom/encode"

	"github.com/scott-cotton/cli"
)

type ConvertConfig struct {
	*MainConfig
	Convert *cli.Command
}

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	setupLog(cfg.Verbose)
	if cfg.Eol == "" {
		return fmt.Errorf("%w: convert requires -eol", cli.ErrUsage)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		doc, err := readDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		// -eol already normalized terminators at parse time; this
		// covers trees whose final line had none.
		doc.Root().Visit(func(e *element.Element, isPost bool) (bool, error) {
			if !isPost {
				e.SetTerminator(cfg.Eol)
			}
			return true, nil
		})
		if err := encode.Encode(doc.Root(), cc.Out, encode.Recursive(true)); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}
