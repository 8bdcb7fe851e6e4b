package report

import (
	"fmt"
	"strconv"

	"github.com/arthur-debert/stampname/pkg/args"
	"github.com/arthur-debert/stampname/pkg/rename"
	"github.com/arthur-debert/stampname/pkg/style"
)

// NoPrefix is echoed when no prefix was given.
const NoPrefix = "<none>"

func parameterLines(cfg args.Configuration) []string {
	prefix := cfg.Prefix
	if !cfg.HasPrefix || prefix == "" {
		prefix = NoPrefix
	}

	source := "Source file:"
	if cfg.Mode == args.ModeDirectoryBatch {
		source = "Source:"
	}

	return []string{
		field(source, cfg.Source()),
		field("Overwrite:", strconv.FormatBool(cfg.Overwrite)),
		field("Recurse:", strconv.FormatBool(cfg.Recurse)),
		field("Prefix:", prefix),
	}
}

func field(label, value string) string {
	return style.Tag("Label", label) + " " + style.Tag("Value", value)
}

func scanningLine(dir, glob string, recurse bool) string {
	line := fmt.Sprintf("Scanning %s for %s", style.Tag("FilePath", dir), style.Tag("Value", glob))
	if recurse {
		line += " " + style.Tag("Muted", "(including subdirectories)")
	}
	return line
}

func outcomeLine(o rename.Outcome) string {
	switch o.Result {
	case rename.Renamed:
		return fmt.Sprintf("Renaming %s -> %s", style.Tag("FilePath", o.Source), style.Tag("NewPath", o.Destination))
	case rename.Skipped:
		return fmt.Sprintf("Skipping %s: %s already exists", style.Tag("FilePath", o.Source), style.Tag("FilePath", o.Destination))
	default:
		return fmt.Sprintf("Error renaming %s: %v", style.Tag("FilePath", o.Source), o.Err)
	}
}

func totalLine(s rename.Summary) string {
	return "Total files renamed: " + style.Tag("Count", strconv.Itoa(s.Renamed))
}
