package config

import (
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/stampname/pkg/errors"
	"github.com/arthur-debert/stampname/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment override, e.g. STAMPNAME_RENAME_DELAY.
	EnvPrefix = "STAMPNAME_"

	// EnvConfigFile points at an explicit settings file.
	EnvConfigFile = "STAMPNAME_CONFIG"

	// ConfigRelPath is the settings file location relative to the XDG config home.
	ConfigRelPath = "stampname/config.toml"
)

// Options selects the sources Load reads.
type Options struct {
	// ConfigFile is an explicit settings file. It must exist when set.
	ConfigFile string

	// SkipUserConfig ignores the XDG settings file and STAMPNAME_CONFIG.
	SkipUserConfig bool

	// Overrides are applied last, keyed by dotted path ("rename.delay").
	Overrides map[string]interface{}
}

// Load builds Settings from defaults, the user file, the environment and overrides.
func Load(opts Options) (*Settings, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User settings file
	path, explicit := userConfigPath(opts)
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path)
			}
			logger.Debug().Str("path", path).Msg("Loaded settings file")
		} else if explicit {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", path)
		}
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Explicit overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var s Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("delimiter", s.Flags.Delimiter).
		Dur("delay", s.Rename.Delay).
		Str("format", s.Output.Format).
		Msg("Settings loaded")

	return &s, nil
}

// userConfigPath resolves the settings file and whether the caller asked for it explicitly.
func userConfigPath(opts Options) (string, bool) {
	if opts.ConfigFile != "" {
		return opts.ConfigFile, true
	}
	if opts.SkipUserConfig {
		return "", false
	}
	if p := os.Getenv(EnvConfigFile); p != "" {
		return p, true
	}
	p, err := xdg.SearchConfigFile(ConfigRelPath)
	if err != nil {
		return "", false
	}
	return p, false
}
