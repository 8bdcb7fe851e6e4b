// Package args turns command-line tokens into an immutable rename
// Configuration.
//
// Tokens are written <delim>name=value or bare <delim>name, where the
// delimiter is configurable ("-" by default, "/" also common). The
// recognized names are:
//
//	f, file       file to rename
//	d, dir        directory plus file pattern, e.g. photos/*.jpg
//	o, overwrite  replace existing destination files
//	p, prefix     name prefix; "*" stands for the original base name
//	s, recurse    descend into subdirectories (with d only)
//
// The same flag definitions back both Parse and the cobra root command,
// which registers them through Flags.Register.
package args

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/stampname/pkg/errors"
	"github.com/arthur-debert/stampname/pkg/logging"
	"github.com/spf13/pflag"
)

// Mode selects between renaming one file and renaming pattern matches.
type Mode int

const (
	ModeSingleFile Mode = iota
	ModeDirectoryBatch
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeSingleFile:
		return "single-file"
	case ModeDirectoryBatch:
		return "directory-batch"
	default:
		return "unknown"
	}
}

// Flag names.
const (
	FlagFile      = "file"
	FlagDir       = "dir"
	FlagOverwrite = "overwrite"
	FlagPrefix    = "prefix"
	FlagRecurse   = "recurse"
)

// BareSentinel is the value a value-taking flag carries when it was given
// without one. A f or d holding it counts as missing.
const BareSentinel = "true"

// knownFlags maps shorthand and long flag names to whether they take a value.
var knownFlags = map[string]bool{
	"f": true, FlagFile: true,
	"d": true, FlagDir: true,
	"p": true, FlagPrefix: true,
	"o": false, FlagOverwrite: false,
	"s": false, FlagRecurse: false,
	"v": false, "verbose": false,
	"h": false, "help": false,
	"version": false,
}

// Configuration is built once per run and never mutated.
type Configuration struct {
	Mode          Mode
	SourceFile    string
	SourcePattern string
	Overwrite     bool
	Prefix        string
	// HasPrefix is false when p was not supplied at all.
	HasPrefix bool
	Recurse   bool
}

// Source returns the active source: the file or the pattern.
func (c Configuration) Source() string {
	if c.Mode == ModeSingleFile {
		return c.SourceFile
	}
	return c.SourcePattern
}

// Flags holds raw flag values before validation.
type Flags struct {
	File      string
	Dir       string
	Overwrite bool
	Prefix    string
	Recurse   bool
}

// Register defines the rename flags on fs.
func (f *Flags) Register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.File, FlagFile, "f", "", "file to rename")
	fs.StringVarP(&f.Dir, FlagDir, "d", "", "directory and file pattern to rename, e.g. photos/*.jpg")
	fs.VarPF((*presence)(&f.Overwrite), FlagOverwrite, "o", "overwrite existing destination files").NoOptDefVal = "true"
	fs.StringVarP(&f.Prefix, FlagPrefix, "p", "", "name prefix, * is replaced by the original name")
	fs.VarPF((*presence)(&f.Recurse), FlagRecurse, "s", "include subdirectories (with -d)").NoOptDefVal = "true"

	for _, name := range []string{FlagFile, FlagDir, FlagPrefix} {
		fs.Lookup(name).NoOptDefVal = BareSentinel
	}
}

// presence is a switch flag: its appearance turns it on. An explicit
// false/0 turns it off and any other value is read as presence.
type presence bool

func (p *presence) String() string { return strconv.FormatBool(bool(*p)) }
func (p *presence) Type() string   { return "bool" }
func (p *presence) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		v = true
	}
	*p = presence(v)
	return nil
}

// Resolve validates the parsed flags into a Configuration. tokens is the
// number of command-line tokens the user supplied.
func (f *Flags) Resolve(fs *pflag.FlagSet, tokens int) (Configuration, error) {
	if tokens < 1 {
		return Configuration{}, errors.New(errors.ErrTooFewParameters, "too few parameters")
	}

	cfg := Configuration{
		Overwrite: f.Overwrite,
		Recurse:   f.Recurse,
	}

	switch {
	case fs.Changed(FlagFile):
		if !hasValue(f.File) {
			return Configuration{}, errors.New(errors.ErrMissingParameter, "parameter f requires a file path").
				WithDetail("flag", "f")
		}
		cfg.Mode = ModeSingleFile
		cfg.SourceFile = f.File
	case fs.Changed(FlagDir):
		if !hasValue(f.Dir) {
			return Configuration{}, errors.New(errors.ErrMissingParameter, "parameter d requires a directory and pattern").
				WithDetail("flag", "d")
		}
		cfg.Mode = ModeDirectoryBatch
		cfg.SourcePattern = f.Dir
	default:
		return Configuration{}, errors.New(errors.ErrMissingParameter, "one of the parameters f or d is required")
	}

	if fs.Changed(FlagPrefix) {
		cfg.HasPrefix = true
		if f.Prefix != BareSentinel {
			cfg.Prefix = f.Prefix
		}
	}

	if cfg.Mode == ModeSingleFile && cfg.Recurse {
		logger := logging.GetLogger("args")
		logger.Debug().Msg("recurse has no effect in single-file mode")
	}

	return cfg, nil
}

func hasValue(v string) bool {
	return strings.TrimSpace(v) != "" && !strings.EqualFold(v, BareSentinel)
}

// Parse turns raw tokens into a Configuration. Unknown flags and stray
// positional tokens are ignored.
func Parse(tokens []string, delimiter string) (Configuration, error) {
	var f Flags
	fs := pflag.NewFlagSet("stampname", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(discard{})
	f.Register(fs)

	if err := fs.Parse(Normalize(tokens, delimiter)); err != nil {
		return Configuration{}, errors.Wrap(err, errors.ErrInvalidParameter, "cannot parse parameters")
	}
	if rest := fs.Args(); len(rest) > 0 {
		logger := logging.GetLogger("args")
		logger.Warn().Strs("ignored", rest).Msg("Ignoring unrecognized parameters")
	}

	return f.Resolve(fs, len(tokens))
}

// Normalize rewrites delimiter-prefixed tokens into pflag syntax:
// "/f=a.txt" becomes "-f=a.txt" and "/file=a.txt" becomes "--file=a.txt".
// A value-taking flag followed by a separate value token is joined to it,
// so "-f a.txt" reads as "-f=a.txt". Unknown single-dash tokens are
// dropped, since pflag would read "-foo" as the shorthands f, o and o.
// Everything else passes through.
func Normalize(tokens []string, delimiter string) []string {
	if delimiter == "" {
		delimiter = "-"
	}

	logger := logging.GetLogger("args")
	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		name, value, hasEq, ok := splitToken(tokens[i], delimiter)
		if !ok {
			if unknownShorthand(tokens[i]) {
				logger.Warn().Str("token", tokens[i]).Msg("Ignoring unknown flag")
				continue
			}
			out = append(out, tokens[i])
			continue
		}

		if !hasEq && knownFlags[name] && i+1 < len(tokens) {
			if _, _, _, next := splitToken(tokens[i+1], delimiter); !next && !strings.HasPrefix(tokens[i+1], "-") {
				value, hasEq = tokens[i+1], true
				i++
			}
		}

		dash := "--"
		if len(name) == 1 {
			dash = "-"
		}
		tok := dash + name
		if hasEq {
			tok += "=" + value
		}
		out = append(out, tok)
	}
	return out
}

// splitToken recognizes <delim>name[=value] for the known flag names,
// case-insensitively. Anything else, absolute paths under a "/" delimiter
// included, is not a flag token.
func splitToken(tok, delimiter string) (name, value string, hasEq, ok bool) {
	rest, found := strings.CutPrefix(tok, delimiter)
	if !found && delimiter != "-" {
		rest, found = strings.CutPrefix(tok, "-")
	}
	if !found {
		return "", "", false, false
	}
	rest = strings.TrimPrefix(rest, "-")
	if delimiter != "-" {
		rest = strings.TrimPrefix(rest, delimiter)
	}

	name, value, hasEq = strings.Cut(rest, "=")
	name = strings.ToLower(name)
	if _, known := knownFlags[name]; !known {
		return "", "", false, false
	}
	return name, value, hasEq, true
}

// unknownShorthand reports whether tok is a single-dash token that is not
// a cluster of known switches such as "-vv" or "-os".
func unknownShorthand(tok string) bool {
	if len(tok) < 2 || tok[0] != '-' || tok[1] == '-' {
		return false
	}
	cluster, _, _ := strings.Cut(tok[1:], "=")
	for _, r := range strings.ToLower(cluster) {
		if takesValue, known := knownFlags[string(r)]; !known || takesValue {
			return true
		}
	}
	return false
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
