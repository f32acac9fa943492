// Package telemetry wraps zerolog into the structured-logging shape used
// throughout the service, adapted from
// jhkimqd-chaos-utils/pkg/reporting/logger.go (LoggerConfig / NewLogger /
// WithField(s) / the odd-field-count guard in addFields).
package telemetry

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Level names a logging verbosity.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Format selects the rendered line shape.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Config configures a Logger.
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
}

// Logger is a structured logger over zerolog, keyed by string fields
// (component, cell id, map name, ...) rather than free-form messages.
type Logger struct {
	logger zerolog.Logger
}

// New builds a Logger from cfg, defaulting Output to os.Stdout and Level to
// info when unset.
func New(cfg Config) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	var output io.Writer = cfg.Output
	if cfg.Format == FormatText {
		output = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: time.RFC3339}
	}

	zlog := zerolog.New(output).With().Timestamp().Logger()

	switch cfg.Level {
	case LevelDebug:
		zlog = zlog.Level(zerolog.DebugLevel)
	case LevelWarn:
		zlog = zlog.Level(zerolog.WarnLevel)
	case LevelError:
		zlog = zlog.Level(zerolog.ErrorLevel)
	default:
		zlog = zlog.Level(zerolog.InfoLevel)
	}

	return &Logger{logger: zlog}
}

func (l *Logger) Debug(msg string, fields ...interface{}) { l.emit(l.logger.Debug(), msg, fields) }
func (l *Logger) Info(msg string, fields ...interface{})  { l.emit(l.logger.Info(), msg, fields) }
func (l *Logger) Warn(msg string, fields ...interface{})  { l.emit(l.logger.Warn(), msg, fields) }
func (l *Logger) Error(msg string, fields ...interface{}) { l.emit(l.logger.Error(), msg, fields) }

// WithField returns a child Logger carrying one extra persistent field.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{logger: l.logger.With().Interface(key, value).Logger()}
}

// WithFields returns a child Logger carrying several extra persistent fields.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	ctx := l.logger.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	return &Logger{logger: ctx.Logger()}
}

func (l *Logger) emit(event *zerolog.Event, msg string, fields []interface{}) {
	if len(fields)%2 != 0 {
		event.Str("log_error", "odd number of fields")
		event.Msg(msg)
		return
	}
	for i := 0; i < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			event.Str("log_error", fmt.Sprintf("field key at index %d is not a string", i))
			continue
		}
		event.Interface(key, fields[i+1])
	}
	event.Msg(msg)
}
