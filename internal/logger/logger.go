// SPDX-License-Identifier: EPL-2.0

package logger

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// EnvLevel is the environment variable selecting the log level.
const EnvLevel = "LOG_LEVEL"

// ParseLevel maps a LOG_LEVEL value to a zerolog level, info by default.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New returns a human readable logger writing to w at the given level.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		PartsOrder: []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
	}

	return zerolog.New(console).Level(level)
}
