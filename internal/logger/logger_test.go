package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/aleister1102/layoutdiff/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultLogger(t *testing.T) {
	_, err := New(config.NewDefaultLogConfig())
	assert.NoError(t, err)
}

func TestNew_InvalidLevel(t *testing.T) {
	cfg := config.NewDefaultLogConfig()
	cfg.LogLevel = "loud"

	_, err := New(cfg)
	assert.Error(t, err)
}

func TestLoggerBuilder_JSONConsole(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLoggerBuilder().
		WithFormat(FormatJSON).
		WithLevel(zerolog.DebugLevel).
		WithConsoleOutput(&buf).
		Build()
	require.NoError(t, err)

	l.GetZerolog().Debug().Str("component", "Test").Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "Test", entry["component"])
	assert.Equal(t, "debug", entry["level"])
}

func TestLoggerBuilder_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLoggerBuilder().
		WithFormat(FormatJSON).
		WithLevel(zerolog.WarnLevel).
		WithConsoleOutput(&buf).
		Build()
	require.NoError(t, err)

	l.GetZerolog().Info().Msg("quiet")
	assert.Empty(t, buf.String())
}

func TestLoggerBuilder_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "layoutdiff.log")
	l, err := NewLoggerBuilder().
		WithoutConsole().
		WithFormat(FormatJSON).
		WithFile(path, 1, 1).
		Build()
	require.NoError(t, err)

	l.GetZerolog().Info().Msg("to file")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
	assert.Equal(t, path, l.GetConfig().File.Path)
}

func TestLoggerBuilder_NoWriters(t *testing.T) {
	_, err := NewLoggerBuilder().WithoutConsole().Build()
	assert.Error(t, err)
}

func TestLoggerBuilder_InvalidFileSink(t *testing.T) {
	_, err := NewLoggerBuilder().WithFile("x.log", 0, 1).Build()
	assert.Error(t, err)

	_, err = NewLoggerBuilder().WithFile("x.log", 1, -1).Build()
	assert.Error(t, err)

	_, err = NewLoggerBuilder().WithFile("", 0, -1).WithConsoleOutput(&bytes.Buffer{}).Build()
	assert.NoError(t, err, "sink limits are ignored while file logging is off")
}

func TestConfigConverter(t *testing.T) {
	cc := NewConfigConverter()
	got, err := cc.ConvertConfig(config.LogConfig{LogLevel: "WARN", LogFormat: "text", LogFile: "a.log"})

	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, got.Level)
	assert.Equal(t, FormatText, got.Format)
	assert.Nil(t, got.Console)
	assert.Equal(t, FileSink{Path: "a.log", MaxSizeMB: config.DefaultMaxLogSizeMB, MaxBackups: config.DefaultMaxLogBackups}, got.File)
	assert.True(t, got.File.Enabled())
}

func TestLoggerBuilder_WithConfigKeepsConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewDefaultLogConfig()
	cfg.LogFormat = "json"

	l, err := NewLoggerBuilder().WithConsoleOutput(&buf).WithConfig(cfg).Build()
	require.NoError(t, err)

	l.GetZerolog().Info().Msg("kept")
	assert.Contains(t, buf.String(), `"message":"kept"`)
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat(" text "))
	assert.Equal(t, FormatConsole, ParseFormat("whatever"))
	assert.Equal(t, "console", FormatConsole.String())
	assert.Equal(t, "console", LogFormat(42).String())
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, level)

	level, err = ParseLevel("Debug")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, level)

	level, err = ParseLevel("loud")
	assert.Error(t, err)
	assert.Equal(t, zerolog.InfoLevel, level)
}
