package logger

import (
	"github.com/aleister1102/layoutdiff/internal/config"
)

// ConfigConverter converts config.LogConfig to LoggerConfig
type ConfigConverter struct{}

// NewConfigConverter creates a new config converter
func NewConfigConverter() *ConfigConverter {
	return &ConfigConverter{}
}

// ConvertConfig converts application config to logger config. An invalid
// level falls back to info and is reported through the error. Console is
// left nil for the builder to fill in.
func (cc *ConfigConverter) ConvertConfig(cfg config.LogConfig) (LoggerConfig, error) {
	level, err := ParseLevel(cfg.LogLevel)

	return LoggerConfig{
		Level:  level,
		Format: ParseFormat(cfg.LogFormat),
		File: FileSink{
			Path:       cfg.LogFile,
			MaxSizeMB:  orDefault(cfg.MaxLogSizeMB, config.DefaultMaxLogSizeMB),
			MaxBackups: orDefault(cfg.MaxLogBackups, config.DefaultMaxLogBackups),
		},
	}, err
}

func orDefault(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}
