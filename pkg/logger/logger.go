// Package logger provides a structured logging facade over logrus.
package logger

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// LogField represents a structured log field with concrete types.
type LogField struct {
	Key   string
	Value string
}

// Logger is the logging interface used throughout the application.
type Logger interface {
	Info(msg string, fields ...LogField)
	Error(msg string, fields ...LogField)
	Debug(msg string, fields ...LogField)
	Warn(msg string, fields ...LogField)
	WithFields(fields ...LogField) Logger
}

// Config represents logger configuration.
type Config struct {
	Level   Level
	Format  string
	Service string
	Output  io.Writer // Optional: defaults to os.Stderr if nil
}

type logger struct {
	logrus *logrus.Logger
	fields []LogField
}

// NewLogger creates a new logger instance with the given configuration.
func NewLogger(config Config) Logger {
	backend := logrus.New()

	if config.Format == "text" {
		backend.SetFormatter(&logrus.TextFormatter{})
	} else {
		backend.SetFormatter(&logrus.JSONFormatter{})
	}

	// Chat output owns stdout; logging stays on stderr unless redirected.
	if config.Output != nil {
		backend.SetOutput(config.Output)
	} else {
		backend.SetOutput(os.Stderr)
	}

	switch config.Level {
	case DebugLevel:
		backend.SetLevel(logrus.DebugLevel)
	case WarnLevel:
		backend.SetLevel(logrus.WarnLevel)
	case ErrorLevel:
		backend.SetLevel(logrus.ErrorLevel)
	default:
		backend.SetLevel(logrus.InfoLevel)
	}

	var serviceFields []LogField
	if config.Service != "" {
		serviceFields = []LogField{{Key: "service", Value: config.Service}}
	}

	return &logger{
		logrus: backend,
		fields: serviceFields,
	}
}

// WithFields returns a new logger with additional fields (immutable).
func (l *logger) WithFields(fields ...LogField) Logger {
	newFields := make([]LogField, 0, len(l.fields)+len(fields))
	newFields = append(newFields, l.fields...)
	newFields = append(newFields, fields...)

	return &logger{
		logrus: l.logrus,
		fields: newFields,
	}
}

// Info logs an info message with optional fields.
func (l *logger) Info(msg string, fields ...LogField) {
	l.log(logrus.InfoLevel, msg, fields...)
}

// Error logs an error message with optional fields.
func (l *logger) Error(msg string, fields ...LogField) {
	l.log(logrus.ErrorLevel, msg, fields...)
}

// Debug logs a debug message with optional fields.
func (l *logger) Debug(msg string, fields ...LogField) {
	l.log(logrus.DebugLevel, msg, fields...)
}

// Warn logs a warning message with optional fields.
func (l *logger) Warn(msg string, fields ...LogField) {
	l.log(logrus.WarnLevel, msg, fields...)
}

func (l *logger) log(level logrus.Level, msg string, fields ...LogField) {
	allFields := make(logrus.Fields, len(l.fields)+len(fields))
	for _, field := range l.fields {
		allFields[field.Key] = field.Value
	}
	for _, field := range fields {
		allFields[field.Key] = field.Value
	}

	entry := l.logrus.WithFields(allFields)
	switch level {
	case logrus.InfoLevel:
		entry.Info(msg)
	case logrus.ErrorLevel:
		entry.Error(msg)
	case logrus.DebugLevel:
		entry.Debug(msg)
	case logrus.WarnLevel:
		entry.Warn(msg)
	}
}

// Helper functions for common field types

// StringField returns a LogField for a string value.
func StringField(key, value string) LogField {
	return LogField{Key: key, Value: value}
}

// IntField returns a LogField for an integer value.
func IntField(key string, value int) LogField {
	return LogField{Key: key, Value: strconv.Itoa(value)}
}

// BoolField returns a LogField for a boolean value.
func BoolField(key string, value bool) LogField {
	return LogField{Key: key, Value: strconv.FormatBool(value)}
}

// Float64Field returns a LogField for a float64 value.
func Float64Field(key string, value float64) LogField {
	return LogField{Key: key, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

// DurationField returns a LogField for a time.Duration value.
func DurationField(key string, value time.Duration) LogField {
	return LogField{Key: key, Value: value.String()}
}

// ErrorField returns a LogField for an error value.
func ErrorField(err error) LogField {
	if err == nil {
		return LogField{Key: "error", Value: "<nil>"}
	}
	return LogField{Key: "error", Value: err.Error()}
}

// SessionIDField returns a LogField for a conversation session id.
func SessionIDField(id string) LogField {
	return StringField("session_id", id)
}

// RuleField returns a LogField for a matched response rule name.
func RuleField(name string) LogField {
	return StringField("rule", name)
}

// SentimentField returns a LogField for a sentiment label.
func SentimentField(label string) LogField {
	return StringField("sentiment", label)
}
