package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/aleister1102/layoutdiff/internal/common/errorwrapper"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const maxConfigFileSize = 10 * 1024 * 1024

type GlobalConfig struct {
	AlignerConfig AlignerConfig `json:"aligner_config,omitempty" yaml:"aligner_config,omitempty"`
	InputConfig   InputConfig   `json:"input_config,omitempty" yaml:"input_config,omitempty"`
	LogConfig     LogConfig     `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	RenderConfig  RenderConfig  `json:"render_config,omitempty" yaml:"render_config,omitempty"`
	SearchConfig  SearchConfig  `json:"search_config,omitempty" yaml:"search_config,omitempty"`
}

func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		AlignerConfig: NewDefaultAlignerConfig(),
		InputConfig:   NewDefaultInputConfig(),
		LogConfig:     NewDefaultLogConfig(),
		RenderConfig:  NewDefaultRenderConfig(),
		SearchConfig:  NewDefaultSearchConfig(),
	}
}

// LoadGlobalConfig loads the configuration from a file or default locations.
// It determines the config file path using GetConfigPath, supports both JSON and YAML formats.
// YAML is preferred if the file extension is .yaml or .yml.
func LoadGlobalConfig(providedPath string, logger zerolog.Logger) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	if providedPath != "" && !fileExists(providedPath) {
		return nil, errorwrapper.NewValidationError("config_file", providedPath, "config file does not exist")
	}

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		logger.Debug().Msg("No config file found, using defaults")
		return cfg, nil
	}

	data, err := loadConfigFileContent(filePath)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to load config file content")
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to parse config content")
	}

	logger.Debug().Str("path", filePath).Msg("Config file loaded")
	return cfg, nil
}

// loadConfigFileContent reads the config file, refusing oversized files
func loadConfigFileContent(filePath string) ([]byte, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxConfigFileSize {
		return nil, errorwrapper.NewValidationError("config_file", filePath, "config file exceeds 10MB")
	}
	return os.ReadFile(filePath)
}

// parseConfigContent parses the config content based on file extension
func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	ext := filepath.Ext(filePath)
	if isYAMLFile(ext) {
		return parseYAMLConfig(data, filePath, cfg)
	}
	return parseJSONConfig(data, filePath, cfg)
}

// isYAMLFile checks if the file extension indicates a YAML file
func isYAMLFile(ext string) bool {
	return ext == ".yaml" || ext == ".yml"
}

// parseYAMLConfig parses YAML configuration
func parseYAMLConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errorwrapper.NewError("failed to unmarshal YAML from '%s': %w", filePath, err)
	}
	return nil
}

// parseJSONConfig parses JSON configuration
func parseJSONConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	if err := json.Unmarshal(data, cfg); err != nil {
		return errorwrapper.NewError("failed to unmarshal JSON from '%s': %w", filePath, err)
	}
	return nil
}

type LogConfig struct {
	LogFile       string `json:"log_file,omitempty" yaml:"log_file,omitempty"`
	LogFormat     string `json:"log_format,omitempty" yaml:"log_format,omitempty" validate:"omitempty,logformat"`
	LogLevel      string `json:"log_level,omitempty" yaml:"log_level,omitempty" validate:"omitempty,loglevel"`
	MaxLogBackups int    `json:"max_log_backups,omitempty" yaml:"max_log_backups,omitempty" validate:"min=0"`
	MaxLogSizeMB  int    `json:"max_log_size_mb,omitempty" yaml:"max_log_size_mb,omitempty" validate:"min=0"`
}

func NewDefaultLogConfig() LogConfig {
	return LogConfig{
		LogFile:       DefaultLogFile, // Default to stderr, not a file
		LogFormat:     DefaultLogFormat,
		LogLevel:      DefaultLogLevel,
		MaxLogBackups: DefaultMaxLogBackups,
		MaxLogSizeMB:  DefaultMaxLogSizeMB,
	}
}

// AlignerConfig tunes the greedy line alignment
type AlignerConfig struct {
	LookaheadWindow int `json:"lookahead_window,omitempty" yaml:"lookahead_window,omitempty" validate:"min=1,max=1000"`
	RowBoundFactor  int `json:"row_bound_factor,omitempty" yaml:"row_bound_factor,omitempty" validate:"min=1"`
}

func NewDefaultAlignerConfig() AlignerConfig {
	return AlignerConfig{
		LookaheadWindow: DefaultAlignerLookaheadWindow,
		RowBoundFactor:  DefaultAlignerRowBoundFactor,
	}
}

// InputConfig limits the documents read by the CLI
type InputConfig struct {
	MaxSizeMB int `json:"max_size_mb,omitempty" yaml:"max_size_mb,omitempty" validate:"min=1"`
}

func NewDefaultInputConfig() InputConfig {
	return InputConfig{
		MaxSizeMB: DefaultInputMaxSizeMB,
	}
}

// SearchConfig holds settings for the match search engine
type SearchConfig struct {
	RegexTimeoutMs int `json:"regex_timeout_ms,omitempty" yaml:"regex_timeout_ms,omitempty" validate:"min=0"`
}

func NewDefaultSearchConfig() SearchConfig {
	return SearchConfig{
		RegexTimeoutMs: DefaultSearchRegexTimeoutMs,
	}
}

// RenderConfig controls the terminal side-by-side view
type RenderConfig struct {
	ColorMode       string `json:"color_mode,omitempty" yaml:"color_mode,omitempty" validate:"omitempty,colormode"`
	ColumnWidth     int    `json:"column_width,omitempty" yaml:"column_width,omitempty" validate:"min=10"`
	ContextLines    int    `json:"context_lines" yaml:"context_lines" validate:"min=-1"`
	ShowLineNumbers bool   `json:"show_line_numbers" yaml:"show_line_numbers"`
}

func NewDefaultRenderConfig() RenderConfig {
	return RenderConfig{
		ColorMode:       DefaultRenderColorMode,
		ColumnWidth:     DefaultRenderColumnWidth,
		ContextLines:    DefaultRenderContextLines,
		ShowLineNumbers: DefaultRenderShowLineNumbers,
	}
}
