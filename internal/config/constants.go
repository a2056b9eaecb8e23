package config

const (
	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Aligner Defaults
	DefaultAlignerLookaheadWindow = 5
	DefaultAlignerRowBoundFactor  = 2

	// Input Defaults
	DefaultInputMaxSizeMB = 50

	// Search Defaults
	DefaultSearchRegexTimeoutMs = 2000

	// Render Defaults
	DefaultRenderColumnWidth     = 60
	DefaultRenderColorMode       = "auto"
	DefaultRenderContextLines    = -1
	DefaultRenderShowLineNumbers = true

	// ConfigPathEnvVar overrides the config file location
	ConfigPathEnvVar = "LAYOUTDIFF_CONFIG_PATH"
)
