package utils

import (
	"strings"

	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
)

// Fields are top-level keys added to a structured log line.
type Fields map[string]any

// Log is the process logger. It logs at info until InitLogger runs.
var Log = NewLogger("info")

// InitLogger replaces Log with one at the given level (debug, info, warn, error).
func InitLogger(level string) {
	Log = NewLogger(level)
}

// NewLogger builds a JSON console logger that emits level and above.
func NewLogger(level string) *slog.Logger {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		level = "info"
	}
	logLevel := slog.LevelByName(level)

	var levels []slog.Level
	for _, lv := range slog.AllLevels {
		if lv <= logLevel {
			levels = append(levels, lv)
		}
	}

	h := handler.NewConsoleHandler(levels)
	h.SetFormatter(slog.NewJSONFormatter(func(f *slog.JSONFormatter) {
		f.Fields = []string{
			slog.FieldKeyDatetime,
			slog.FieldKeyLevel,
			slog.FieldKeyMessage,
		}
		f.Aliases = slog.StringMap{
			slog.FieldKeyDatetime: "time",
			slog.FieldKeyLevel:    "level",
			slog.FieldKeyMessage:  "msg",
		}
		f.TimeFormat = "2006-01-02T15:04:05.000Z07:00"
	}))

	return slog.NewWithHandlers(h)
}

// LogEvent writes a standardized line tagged with module, action and request id.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	InfoWithFields(message, Fields{
		"module":     strings.ToUpper(module),
		"action":     action,
		"request_id": strings.TrimSpace(requestID),
	})
}

func InfoWithFields(msg string, fields Fields) {
	Log.WithFields(slog.M(fields)).Info(msg)
}

func WarnWithFields(msg string, fields Fields) {
	Log.WithFields(slog.M(fields)).Warn(msg)
}

func ErrorWithFields(msg string, fields Fields) {
	Log.WithFields(slog.M(fields)).Error(msg)
}
