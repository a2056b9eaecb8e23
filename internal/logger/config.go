package logger

import (
	"io"
	"os"

	"github.com/aleister1102/layoutdiff/internal/config"
	"github.com/rs/zerolog"
)

// LoggerConfig is the resolved form of config.LogConfig.
type LoggerConfig struct {
	Level  zerolog.Level
	Format LogFormat
	// Console receives log lines. Nil disables console logging.
	Console io.Writer
	File    FileSink
}

// FileSink is the optional rotating log file. An empty Path disables it.
type FileSink struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
}

// Enabled reports whether file logging is on.
func (fs FileSink) Enabled() bool {
	return fs.Path != ""
}

// DefaultLoggerConfig logs info and above to stderr in console format.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:   zerolog.InfoLevel,
		Format:  FormatConsole,
		Console: os.Stderr,
		File: FileSink{
			MaxSizeMB:  config.DefaultMaxLogSizeMB,
			MaxBackups: config.DefaultMaxLogBackups,
		},
	}
}
