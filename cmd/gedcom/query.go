package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/scott-cotton/cli"
)

type QueryConfig struct {
	*MainConfig
	Expr string `cli:"name=e desc='filter expression over level, pointer, tag, value, kind'"`

	Query *cli.Command
}

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	setupLog(cfg.Verbose)
	if cfg.Expr == "" {
		return fmt.Errorf("%w: query requires -e", cli.ErrUsage)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		doc, err := readDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		els, err := doc.Query(cfg.Expr)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", arg, err)
		}
		log.Debugf("%s: %d matches", arg, len(els))
		for _, el := range els {
			if _, err := cc.Out.Write([]byte(el.String())); err != nil {
				return err
			}
		}
	}
	return nil
}
