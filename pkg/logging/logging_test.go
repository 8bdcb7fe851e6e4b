package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useStateHome(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tempDir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return tempDir
}

func TestSetupLevels(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stateHome := useStateHome(t)

			Setup(Options{Verbosity: tt.verbosity, LogFile: true})

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(stateHome, "stampname", "stampname.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should exist at %s", logPath)
		})
	}
}

func TestSetupWithoutLogFile(t *testing.T) {
	stateHome := useStateHome(t)

	Setup(Options{Verbosity: 1, LogFile: false, NoColor: true})

	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	_, err := os.Stat(filepath.Join(stateHome, "stampname"))
	assert.True(t, os.IsNotExist(err), "no log directory should be created")
}

func TestGetLogFilePath(t *testing.T) {
	stateHome := useStateHome(t)

	got := getLogFilePath()
	assert.Equal(t, filepath.Join(stateHome, "stampname", "stampname.log"), got)
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Logger
	t.Cleanup(func() { log.Logger = orig })
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(&buf)

	logger := GetLogger("rename")
	logger.Info().Msg("test message")

	assert.Contains(t, buf.String(), `"component":"rename"`)
	assert.Contains(t, buf.String(), "test message")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "batch")
	done()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Operation started")
	assert.Contains(t, lines[1], "Operation completed")
	assert.Contains(t, lines[1], "duration")
}
