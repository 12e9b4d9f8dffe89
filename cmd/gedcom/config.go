package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// fileConfig holds defaults read from the optional config file at
// $GEDCOM_CONFIG or $XDG_CONFIG_HOME/gedcom/config.toml. Command-line
// flags override it.
type fileConfig struct {
	Color  bool   `toml:"color"`
	Strict bool   `toml:"strict"`
	Eol    string `toml:"eol"`
}

func loadFileConfig(cfg *MainConfig) {
	path := os.Getenv("GEDCOM_CONFIG")
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return
		}
		path = filepath.Join(dir, "gedcom", "config.toml")
	}
	fc := &fileConfig{}
	if _, err := toml.DecodeFile(path, fc); err != nil {
		if !os.IsNotExist(err) {
			log.Debugf("config %s: %v", path, err)
		}
		return
	}
	cfg.Color = fc.Color
	cfg.Strict = fc.Strict
	switch fc.Eol {
	case "lf":
		cfg.Eol = "\n"
	case "crlf":
		cfg.Eol = "\r\n"
	}
}
