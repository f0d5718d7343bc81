//go:build cli

package main

import (
	"fmt"
	"os"

	"zeta/internal/cli"
)

// run is the CLI-only entry point. It runs without graphics hardware.
func run() {
	if !cli.Execute(version) {
		fmt.Fprintf(os.Stderr, "zeta %s (CLI-only build)\n", version)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage: zeta <command> [options]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Commands:")
		fmt.Fprintln(os.Stderr, "  calc       Compute the zeta factor for a standard")
		fmt.Fprintln(os.Stderr, "  standards  List the age standards")
		fmt.Fprintln(os.Stderr, "  minerals   List the minerals")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Run 'zeta <command> --help' for more information.")
		fmt.Fprintln(os.Stderr, "For the desktop window, build without the 'cli' tag.")
		os.Exit(0)
	}
}
