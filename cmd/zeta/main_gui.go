//go:build !cli

package main

import (
	"zeta/internal/cli"
	"zeta/internal/ui"
)

// run is the desktop + CLI entry point. Known subcommands and flags go to
// the CLI; anything else opens the window.
func run() {
	if cli.Execute(version) {
		return
	}
	ui.NewApp(ui.NewDesktopApp(), version).Run()
}
