package main

import (
	"os"

	"github.com/charmbracelet/log"
)

// setupLog configures the CLI logger. -v lowers the threshold to
// debug; messages go to stderr so command output stays clean.
func setupLog(verbose bool) {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Level:           level,
	}))
}
