package logger

import (
	"io"
	stdlog "log"

	"github.com/aleister1102/layoutdiff/internal/common/errorwrapper"
	"github.com/aleister1102/layoutdiff/internal/config"
	"github.com/rs/zerolog"
)

// LoggerBuilder provides fluent interface for building loggers
type LoggerBuilder struct {
	config    LoggerConfig
	factory   *WriterFactory
	converter *ConfigConverter
	err       error
}

// NewLoggerBuilder creates a new logger builder
func NewLoggerBuilder() *LoggerBuilder {
	return &LoggerBuilder{
		config:    DefaultLoggerConfig(),
		factory:   NewWriterFactory(),
		converter: NewConfigConverter(),
	}
}

// WithConfig sets the logger configuration
func (lb *LoggerBuilder) WithConfig(cfg config.LogConfig) *LoggerBuilder {
	console := lb.config.Console
	loggerConfig, err := lb.converter.ConvertConfig(cfg)
	loggerConfig.Console = console
	lb.config = loggerConfig
	lb.err = err
	return lb
}

// WithLevel sets the minimum log level
func (lb *LoggerBuilder) WithLevel(level zerolog.Level) *LoggerBuilder {
	lb.config.Level = level
	return lb
}

// WithFormat sets the output format
func (lb *LoggerBuilder) WithFormat(format LogFormat) *LoggerBuilder {
	lb.config.Format = format
	return lb
}

// WithFile enables rotating file output
func (lb *LoggerBuilder) WithFile(path string, maxSizeMB, maxBackups int) *LoggerBuilder {
	lb.config.File = FileSink{Path: path, MaxSizeMB: maxSizeMB, MaxBackups: maxBackups}
	return lb
}

// WithoutConsole turns console logging off
func (lb *LoggerBuilder) WithoutConsole() *LoggerBuilder {
	lb.config.Console = nil
	return lb
}

// WithConsoleOutput sends console logging to w instead of stderr
func (lb *LoggerBuilder) WithConsoleOutput(w io.Writer) *LoggerBuilder {
	lb.config.Console = w
	return lb
}

// Build creates the logger instance
func (lb *LoggerBuilder) Build() (*Logger, error) {
	if lb.err != nil {
		return nil, lb.err
	}
	if err := lb.validateConfig(); err != nil {
		return nil, err
	}

	writers, closers := lb.createWriters()
	if len(writers) == 0 {
		return nil, errorwrapper.NewError("no output writers configured")
	}

	multiWriter := zerolog.MultiLevelWriter(writers...)
	zerologInstance := zerolog.New(multiWriter).
		Level(lb.config.Level).
		With().
		Timestamp().
		Logger()

	lb.configureStandardLog(zerologInstance)

	return &Logger{
		zerolog: zerologInstance,
		config:  lb.config,
		closers: closers,
	}, nil
}

// validateConfig validates the logger configuration
func (lb *LoggerBuilder) validateConfig() error {
	if !lb.config.File.Enabled() {
		return nil
	}
	if lb.config.File.MaxSizeMB <= 0 {
		return errorwrapper.NewValidationError("max_log_size_mb", lb.config.File.MaxSizeMB, "max size must be positive")
	}
	if lb.config.File.MaxBackups < 0 {
		return errorwrapper.NewValidationError("max_log_backups", lb.config.File.MaxBackups, "backups cannot be negative")
	}
	return nil
}

// createWriters creates the appropriate writers based on configuration
func (lb *LoggerBuilder) createWriters() ([]io.Writer, []io.Closer) {
	var writers []io.Writer
	var closers []io.Closer

	if lb.config.Console != nil {
		writers = append(writers, lb.factory.CreateConsoleWriter(lb.config.Format, lb.config.Console))
	}

	if lb.config.File.Enabled() {
		fileWriter, closer := lb.factory.CreateFileWriter(lb.config.Format, lb.config.File)
		writers = append(writers, fileWriter)
		closers = append(closers, closer)
	}

	return writers, closers
}

// configureStandardLog routes the standard log package through zerolog
func (lb *LoggerBuilder) configureStandardLog(logger zerolog.Logger) {
	stdlog.SetOutput(logger)
	stdlog.SetFlags(0)
}
