package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/stampname/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the XDG config home at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvConfigFile, "")
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	s, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, "-", s.Flags.Delimiter)
	assert.Equal(t, 3*time.Millisecond, s.Rename.Delay)
	assert.Equal(t, FormatAuto, s.Output.Format)
	assert.True(t, s.Logging.File)
}

func TestLoadUserConfig(t *testing.T) {
	t.Run("xdg_config_file", func(t *testing.T) {
		home := isolate(t)
		writeFile(t, filepath.Join(home, "stampname", "config.toml"), `
[flags]
delimiter = "/"

[rename]
delay = "10ms"
`)
		xdg.Reload()

		s, err := Load(Options{})
		require.NoError(t, err)
		assert.Equal(t, "/", s.Flags.Delimiter)
		assert.Equal(t, 10*time.Millisecond, s.Rename.Delay)
		assert.Equal(t, FormatAuto, s.Output.Format, "unset keys keep defaults")
	})

	t.Run("explicit_file", func(t *testing.T) {
		isolate(t)
		path := filepath.Join(t.TempDir(), "custom.toml")
		writeFile(t, path, "[output]\nformat = \"text\"\n")

		s, err := Load(Options{ConfigFile: path})
		require.NoError(t, err)
		assert.Equal(t, FormatText, s.Output.Format)
	})

	t.Run("explicit_file_missing", func(t *testing.T) {
		isolate(t)

		_, err := Load(Options{ConfigFile: filepath.Join(t.TempDir(), "nope.toml")})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("env_config_file", func(t *testing.T) {
		isolate(t)
		path := filepath.Join(t.TempDir(), "env.toml")
		writeFile(t, path, "[logging]\nfile = false\n")
		t.Setenv(EnvConfigFile, path)

		s, err := Load(Options{})
		require.NoError(t, err)
		assert.False(t, s.Logging.File)
	})

	t.Run("skip_user_config", func(t *testing.T) {
		home := isolate(t)
		writeFile(t, filepath.Join(home, "stampname", "config.toml"), "[flags]\ndelimiter = \"/\"\n")
		xdg.Reload()

		s, err := Load(Options{SkipUserConfig: true})
		require.NoError(t, err)
		assert.Equal(t, "-", s.Flags.Delimiter)
	})

	t.Run("malformed_file", func(t *testing.T) {
		isolate(t)
		path := filepath.Join(t.TempDir(), "bad.toml")
		writeFile(t, path, "[flags\n")

		_, err := Load(Options{ConfigFile: path})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})
}

func TestLoadEnvAndOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("STAMPNAME_RENAME_DELAY", "25ms")
	t.Setenv("STAMPNAME_OUTPUT_FORMAT", "term")

	s, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, 25*time.Millisecond, s.Rename.Delay)
	assert.Equal(t, FormatTerm, s.Output.Format)

	s, err = Load(Options{Overrides: map[string]interface{}{
		"output.format": "text",
		"logging.file":  false,
	}})
	require.NoError(t, err)
	assert.Equal(t, FormatText, s.Output.Format, "overrides beat env")
	assert.False(t, s.Logging.File)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		settings  Settings
		wantErr   bool
		wantDelay time.Duration
	}{
		{
			name:      "valid_slash",
			settings:  Settings{Flags: FlagSettings{Delimiter: "/"}, Rename: RenameSettings{Delay: 5 * time.Millisecond}, Output: OutputSettings{Format: FormatText}},
			wantDelay: 5 * time.Millisecond,
		},
		{
			name:      "delay_clamped",
			settings:  Settings{Flags: FlagSettings{Delimiter: "-"}, Rename: RenameSettings{Delay: time.Millisecond}},
			wantDelay: MinDelay,
		},
		{
			name:     "empty_delimiter",
			settings: Settings{Flags: FlagSettings{Delimiter: ""}},
			wantErr:  true,
		},
		{
			name:     "letter_delimiter",
			settings: Settings{Flags: FlagSettings{Delimiter: "x"}},
			wantErr:  true,
		},
		{
			name:     "multi_char_delimiter",
			settings: Settings{Flags: FlagSettings{Delimiter: "--"}},
			wantErr:  true,
		},
		{
			name:     "bad_format",
			settings: Settings{Flags: FlagSettings{Delimiter: "-"}, Output: OutputSettings{Format: "json"}},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.settings
			err := s.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDelay, s.Rename.Delay)
		})
	}
}

func TestSettingsTOML(t *testing.T) {
	s := Settings{
		Flags:   FlagSettings{Delimiter: "/"},
		Rename:  RenameSettings{Delay: 7 * time.Millisecond},
		Output:  OutputSettings{Format: FormatText},
		Logging: LoggingSettings{File: false},
	}

	out, err := s.TOML()
	require.NoError(t, err)

	var decoded map[string]map[string]interface{}
	require.NoError(t, toml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "/", decoded["flags"]["delimiter"])
	assert.Equal(t, "7ms", decoded["rename"]["delay"])
	assert.Equal(t, "text", decoded["output"]["format"])
	assert.Equal(t, false, decoded["logging"]["file"])
}

func TestDefaultConfigContent(t *testing.T) {
	content := GetDefaultConfigContent()
	assert.Contains(t, content, "[flags]")
	assert.Contains(t, content, `delay = "3ms"`)
}
