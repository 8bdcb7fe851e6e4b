package config

import (
	"time"
	"unicode"

	"github.com/arthur-debert/stampname/pkg/errors"
	"github.com/arthur-debert/stampname/pkg/naming"
	toml "github.com/pelletier/go-toml/v2"
)

// MinDelay is the shortest pause allowed between batch renames.
const MinDelay = naming.MinInterval

// Output formats accepted by output.format.
const (
	FormatAuto = "auto"
	FormatTerm = "term"
	FormatText = "text"
)

// Settings is the tool-level configuration. It does not describe a run;
// that is args.Configuration.
type Settings struct {
	Flags   FlagSettings    `koanf:"flags"`
	Rename  RenameSettings  `koanf:"rename"`
	Output  OutputSettings  `koanf:"output"`
	Logging LoggingSettings `koanf:"logging"`
}

// FlagSettings configures command-line token parsing.
type FlagSettings struct {
	Delimiter string `koanf:"delimiter"`
}

// RenameSettings configures the rename engine.
type RenameSettings struct {
	Delay time.Duration `koanf:"delay"`
}

// OutputSettings configures reporting.
type OutputSettings struct {
	Format string `koanf:"format"`
}

// LoggingSettings configures the log sinks.
type LoggingSettings struct {
	File bool `koanf:"file"`
}

// Validate checks values and raises the delay to MinDelay when needed.
func (s *Settings) Validate() error {
	d := []rune(s.Flags.Delimiter)
	if len(d) != 1 || d[0] == '=' || unicode.IsLetter(d[0]) || unicode.IsDigit(d[0]) || unicode.IsSpace(d[0]) {
		return errors.Newf(errors.ErrConfigValid,
			"flags.delimiter must be a single punctuation character, got %q", s.Flags.Delimiter).
			WithDetail("key", "flags.delimiter")
	}

	if s.Rename.Delay < MinDelay {
		s.Rename.Delay = MinDelay
	}

	switch s.Output.Format {
	case FormatAuto, FormatTerm, FormatText:
	case "":
		s.Output.Format = FormatAuto
	default:
		return errors.Newf(errors.ErrConfigValid,
			"output.format must be auto, term or text, got %q", s.Output.Format).
			WithDetail("key", "output.format")
	}

	return nil
}

// settingsFile mirrors Settings with TOML-friendly field types.
type settingsFile struct {
	Flags struct {
		Delimiter string `toml:"delimiter"`
	} `toml:"flags"`
	Rename struct {
		Delay string `toml:"delay"`
	} `toml:"rename"`
	Output struct {
		Format string `toml:"format"`
	} `toml:"output"`
	Logging struct {
		File bool `toml:"file"`
	} `toml:"logging"`
}

// TOML renders the effective settings in the settings file format.
func (s *Settings) TOML() (string, error) {
	var f settingsFile
	f.Flags.Delimiter = s.Flags.Delimiter
	f.Rename.Delay = s.Rename.Delay.String()
	f.Output.Format = s.Output.Format
	f.Logging.File = s.Logging.File

	out, err := toml.Marshal(f)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode settings")
	}
	return string(out), nil
}
