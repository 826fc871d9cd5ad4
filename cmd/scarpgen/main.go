// Command scarpgen renders the scarp wrapper sources.
//
// Usage:
//
//	scarpgen [all] [convert] [primitive] [string] [flags]
//
// With no target every file is rendered. The package directory, package name
// and import path may also be read from a TOML manifest given with --config;
// flags set on the command line take precedence over the manifest.
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("scarpgen failed", slog.Any("error", err))
		os.Exit(1)
	}
}
