package logger

import (
	"strings"

	"github.com/aleister1102/layoutdiff/internal/common/errorwrapper"
	"github.com/rs/zerolog"
)

// LogFormat selects how log lines are written.
type LogFormat int

const (
	FormatJSON LogFormat = iota
	FormatConsole
	FormatText
)

var formatNames = map[LogFormat]string{
	FormatJSON:    "json",
	FormatConsole: "console",
	FormatText:    "text",
}

func (lf LogFormat) String() string {
	if name, ok := formatNames[lf]; ok {
		return name
	}
	return formatNames[FormatConsole]
}

// ParseFormat maps a log_format value to a LogFormat. Unknown names fall
// back to console; config validation rejects them earlier.
func ParseFormat(name string) LogFormat {
	name = strings.ToLower(strings.TrimSpace(name))
	for format, formatName := range formatNames {
		if formatName == name {
			return format
		}
	}
	return FormatConsole
}

// ParseLevel maps a log_level value to a zerolog level. An empty value means
// info; an unknown one returns info together with the error.
func ParseLevel(name string) (zerolog.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.InfoLevel, errorwrapper.WrapError(err, "invalid log level")
	}
	return level, nil
}
