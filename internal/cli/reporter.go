// Package cli provides the command-line interface of zeta.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"zeta/internal/app"
	"zeta/internal/util"

	"golang.org/x/term"
)

// Reporter writes command output. Results go to out, errors to errOut.
type Reporter struct {
	out    io.Writer
	errOut io.Writer
	width  int // rule width of the result banner
}

// NewReporter creates a reporter. The banner is as wide as the terminal
// behind out, capped at util.RuleWidth.
func NewReporter(out, errOut io.Writer) *Reporter {
	return &Reporter{
		out:    out,
		errOut: errOut,
		width:  bannerWidth(out),
	}
}

// bannerWidth returns the terminal width of w, or util.RuleWidth when w is
// not a terminal.
func bannerWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return util.RuleWidth
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return util.RuleWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return util.RuleWidth
	}
	return min(width, util.RuleWidth)
}

// PrintReport prints the report framed by two rules.
func (r *Reporter) PrintReport(report *app.Report) {
	rule := util.Rule(r.width)
	fmt.Fprintln(r.out, rule)
	for _, line := range report.Lines() {
		fmt.Fprintln(r.out, line)
	}
	fmt.Fprintln(r.out, rule)
}

// PrintJSON prints v as indented JSON.
func (r *Reporter) PrintJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	_, err = fmt.Fprintln(r.out, string(data))
	return err
}

// PrintError prints an error message.
func (r *Reporter) PrintError(format string, args ...any) {
	fmt.Fprintf(r.errOut, "Error: "+format+"\n", args...)
}
