package cli

import (
	"io"
	"os"
	"strings"
	"time"

	"zeta/internal/errors"
	"zeta/internal/log"

	"github.com/spf13/cobra"
)

// Version is set by main.go
var Version = "dev"

// rootCmd is the base command when called without subcommands
var rootCmd = &cobra.Command{
	Use:   "zeta",
	Short: "Zeta calibration for fission-track dating",
	Long: `zeta computes the zeta calibration factor of the external detector method
from track counts measured on an age standard of known age:

  ζ = (exp(λ·t) − 1) / (λ · (ρs/ρi) · g · ρd)

with σ(ζ) propagated from Poisson counting statistics (Ns, Ni, Nd) and the
age uncertainty of the standard.

Run without arguments to open the desktop window.`,
	Version:            Version,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: closeLogging,
}

// Global flags
var (
	debugLogging bool
	logFilePath  string
	logLevelName string

	commandStarted time.Time
)

func init() {
	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Errors are printed by the Reporter
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.SetVersionTemplate("Zeta CLI version {{.Version}}\n")

	rootCmd.PersistentFlags().BoolVar(&debugLogging, "debug", false, "Write debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&logFilePath, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().StringVar(&logLevelName, "log-level", "info", "Log level for --log-file: debug, info, warn or error")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(logLevelName)
	if err != nil {
		return err
	}
	if debugLogging {
		level = log.LevelDebug
	}

	switch {
	case logFilePath != "":
		if err := log.EnableFileLogging(logFilePath, level); err != nil {
			return errors.Wrap(err, "opening log file")
		}
	case debugLogging:
		log.EnableDebugLogging()
	}
	commandStarted = time.Now()
	log.Debug("command started", log.String("command", cmd.Name()))
	return nil
}

func closeLogging(cmd *cobra.Command, args []string) error {
	log.Debug("command finished",
		log.String("command", cmd.Name()),
		log.Duration("elapsed", time.Since(commandStarted)))
	return log.Close()
}

// Execute runs the CLI application.
// Returns true if CLI mode was activated, false if GUI should run instead.
func Execute(version string) bool {
	Version = version
	rootCmd.Version = version

	// Check if we're in CLI mode (have subcommands)
	if len(os.Args) < 2 {
		return false
	}
	if !isCLIArg(os.Args[1]) {
		return false
	}

	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
	return true
}

// run executes the command line args, writing output to out and errors to
// errOut.
func run(args []string, out, errOut io.Writer) error {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	err := rootCmd.Execute()
	if err != nil {
		// Logging may still be on when a command failed before PostRun.
		_ = log.Close()
		NewReporter(out, errOut).PrintError("%v", err)
	}
	return err
}

// isCLIArg reports whether the first argument selects the command line.
func isCLIArg(arg string) bool {
	switch arg {
	case "help", "--help", "-h", "--version", "-v":
		return true
	}
	if strings.HasPrefix(arg, "--debug") || strings.HasPrefix(arg, "--log-") {
		return true
	}
	for _, c := range rootCmd.Commands() {
		if c.Name() == arg || c.HasAlias(arg) {
			return true
		}
	}
	return false
}
