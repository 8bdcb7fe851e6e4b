package report

import (
	"fmt"
	"io"

	"github.com/arthur-debert/stampname/pkg/args"
	"github.com/arthur-debert/stampname/pkg/rename"
	"github.com/arthur-debert/stampname/pkg/style"
	"github.com/pterm/pterm"
)

// TerminalReporter writes styled lines with pterm status prefixes.
type TerminalReporter struct {
	out    io.Writer
	errOut io.Writer
}

// NewTerminalReporter creates a reporter writing to out and errOut.
func NewTerminalReporter(out, errOut io.Writer) *TerminalReporter {
	return &TerminalReporter{out: out, errOut: errOut}
}

func (r *TerminalReporter) Parameters(cfg args.Configuration) {
	_, _ = fmt.Fprintln(r.out, style.Render(style.Tag("Header", "Parameters")))
	for _, line := range parameterLines(cfg) {
		_, _ = fmt.Fprintln(r.out, "  "+style.Render(line))
	}
	_, _ = fmt.Fprintln(r.out)
}

func (r *TerminalReporter) Scanning(dir, glob string, recurse bool) {
	pterm.Info.WithWriter(r.out).Println(style.Render(scanningLine(dir, glob, recurse)))
}

func (r *TerminalReporter) Outcome(o rename.Outcome) {
	line := style.Render(outcomeLine(o))
	switch o.Result {
	case rename.Renamed:
		pterm.Success.WithWriter(r.out).Println(line)
	case rename.Skipped:
		pterm.Warning.WithWriter(r.out).Println(line)
	default:
		pterm.Error.WithWriter(r.errOut).Println(line)
	}
}

func (r *TerminalReporter) Error(err error) {
	pterm.Error.WithWriter(r.errOut).Println(err.Error())
}

func (r *TerminalReporter) Total(s rename.Summary) {
	_, _ = fmt.Fprintln(r.out)
	_, _ = fmt.Fprintln(r.out, style.Render(totalLine(s)))
}
