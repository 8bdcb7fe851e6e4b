package report

import (
	"io"

	"github.com/arthur-debert/stampname/pkg/rename"
	"github.com/arthur-debert/stampname/pkg/style"
)

var (
	_ rename.Reporter = (*PlainReporter)(nil)
	_ rename.Reporter = (*TerminalReporter)(nil)
)

// New returns the reporter for format. FormatAuto must be resolved by the
// caller first and falls back to plain output here.
func New(format style.Format, out, errOut io.Writer) rename.Reporter {
	if format == style.FormatTerminal {
		return NewTerminalReporter(out, errOut)
	}
	return NewPlainReporter(out, errOut)
}
