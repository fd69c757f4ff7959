package applog

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

const (
	// scopeFieldName defines the key for the "scope" field in structured logs.
	scopeFieldName = "scope"
	// lineFieldName is the input line a command log event belongs to.
	lineFieldName = "line"
)

// NewLogger creates a console logger writing to w. Debug enables the per
// command events emitted by the drivers.
func NewLogger(w io.Writer, debug bool) zerolog.Logger {
	partsOrder := []string{
		zerolog.LevelFieldName,
		zerolog.TimestampFieldName,
		scopeFieldName,
		lineFieldName,
		zerolog.MessageFieldName,
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.RFC3339,
		PartsOrder: partsOrder,
		// FormatPrepare renders the scope as [SCOPE] and the line as #n.
		FormatPrepare: func(m map[string]any) error {
			if v, ok := m[scopeFieldName].(string); ok && v != "" {
				m[scopeFieldName] = fmt.Sprintf("[%s]", v)
			} else {
				m[scopeFieldName] = ""
			}
			if v, ok := m[lineFieldName]; ok && v != nil {
				m[lineFieldName] = fmt.Sprintf("#%v", v)
			} else {
				m[lineFieldName] = ""
			}
			return nil
		},
		FieldsExclude: []string{scopeFieldName, lineFieldName},
	}

	logger := zerolog.New(consoleWriter)
	if debug {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}
	return logger.With().Timestamp().Logger()
}

// WithScope creates a sub-logger tagged with a component name.
func WithScope(logger zerolog.Logger, scope string) zerolog.Logger {
	return logger.With().Str(scopeFieldName, scope).Logger()
}

// AtLine adds the input line number to an event.
func AtLine(e *zerolog.Event, line int) *zerolog.Event {
	return e.Int(lineFieldName, line)
}
