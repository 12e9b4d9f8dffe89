package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kindredlab/gedcom-format/go-gedcom"
	"github.com/kindredlab/gedcom-format/go-gedcom/encode"
	"github.com/kindredlab/gedcom-format/go-gedcom/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='render with color'"`
	Strict  bool `cli:"name=strict desc='reject malformed input'"`
	Verbose bool `cli:"name=v aliases=verbose desc='verbose logging'"`

	// Eol is the normalized terminator, "" to keep what was read.
	Eol string

	Main *cli.Command
}

func (cfg *MainConfig) eolOpt(cc *cli.Context, v string) (any, error) {
	term, ok := map[string]string{
		"lf":   "\n",
		"crlf": "\r\n",
	}[v]
	if !ok {
		return nil, fmt.Errorf("%w: invalid eol %q (want lf or crlf)", cli.ErrUsage, v)
	}
	cfg.Eol = term
	return v, nil
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	var res []parse.ParseOption
	if cfg.Strict {
		res = append(res, parse.Strict())
	}
	if cfg.Eol != "" {
		res = append(res, parse.WithTerminator(cfg.Eol))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{encode.Recursive(true)}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// readDoc loads one argument, "-" meaning stdin.
func readDoc(cfg *MainConfig, arg string) (*gedcom.Document, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	doc, err := gedcom.FromReader(r, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", arg, err)
	}
	return doc, nil
}
