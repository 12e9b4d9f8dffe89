package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	loadFileConfig(cfg)
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "eol",
		Description: "normalize line terminators: lf, crlf",
		Type:        cli.NamedFuncOpt(cfg.eolOpt, "(eol)"),
	})

	return cli.NewCommandAt(&cfg.Main, "gedcom").
		WithSynopsis("gedcom [opts] command [opts]").
		WithDescription("gedcom is a tool for working with lineage-linked GEDCOM files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return gedcomMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			ConvertCommand(cfg),
			QueryCommand(cfg),
			DiffCommand(cfg),
			StatsCommand(cfg))
}

func gedcomMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Main.Parse(cc, args); err != nil {
		cfg.Main.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	cfg.Main.Usage(cc, nil)
	return cli.ExitCodeErr(1)
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("Render GEDCOM files, in color on a terminal").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("convert").
		WithAliases("c").
		WithSynopsis("convert -eol (lf|crlf) [files]").
		WithDescription("Re-serialize GEDCOM files with normalized line terminators").
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
	cfg.Convert = cmd
	return cmd
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("query").
		WithAliases("q").
		WithSynopsis("query -e (expr) [files]").
		WithDescription("Print the lines matching an expression over level, pointer, tag, value and kind").
		WithOpts(sOpts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return query(cfg, cc, args)
		})
	cfg.Query = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithSynopsis("diff (file) (file)").
		WithDescription("Compare the canonical renderings of two GEDCOM files").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func StatsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StatsConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("stats").
		WithSynopsis("stats [files]").
		WithDescription("Summarize record counts by kind").
		WithRun(func(cc *cli.Context, args []string) error {
			return stats(cfg, cc, args)
		})
	cfg.Stats = cmd
	return cmd
}
