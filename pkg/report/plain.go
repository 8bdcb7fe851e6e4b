package report

import (
	"fmt"
	"io"

	"github.com/arthur-debert/stampname/pkg/args"
	"github.com/arthur-debert/stampname/pkg/rename"
	"github.com/arthur-debert/stampname/pkg/style"
)

// PlainReporter writes undecorated lines.
type PlainReporter struct {
	out    io.Writer
	errOut io.Writer
}

// NewPlainReporter creates a reporter writing to out and errOut.
func NewPlainReporter(out, errOut io.Writer) *PlainReporter {
	return &PlainReporter{out: out, errOut: errOut}
}

func (r *PlainReporter) Parameters(cfg args.Configuration) {
	for _, line := range parameterLines(cfg) {
		r.println(r.out, line)
	}
}

func (r *PlainReporter) Scanning(dir, glob string, recurse bool) {
	r.println(r.out, scanningLine(dir, glob, recurse))
}

func (r *PlainReporter) Outcome(o rename.Outcome) {
	if o.Result == rename.Failed {
		r.println(r.errOut, outcomeLine(o))
		return
	}
	r.println(r.out, outcomeLine(o))
}

func (r *PlainReporter) Error(err error) {
	r.println(r.errOut, "Error: "+err.Error())
}

func (r *PlainReporter) Total(s rename.Summary) {
	r.println(r.out, totalLine(s))
}

func (r *PlainReporter) println(w io.Writer, line string) {
	_, _ = fmt.Fprintln(w, style.Strip(line))
}
