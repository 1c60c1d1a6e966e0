// Package main is the entry point for the edi text editor.
package main

import (
	"os"

	"github.com/zjrosen/edi/cmd"
)

// Build information injected via ldflags at build time.
var (
	version = "0.0.1"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.SetVersion(version, commit, date)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
