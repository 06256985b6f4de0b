// Package logger wraps zerolog behind the small surface the pipeline needs:
// leveled messages plus derived-field helpers. Output goes to stderr by
// default; stdout belongs to rendered CSS and JSON.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures a Logger.
type Options struct {
	// Level is a zerolog level name ("debug", "info", ...). Empty means info.
	Level string
	// Pretty switches from JSON lines to zerolog's console format.
	Pretty bool
	// Writer receives all output. Nil means stderr.
	Writer io.Writer
}

// Logger is a nil-safe zerolog wrapper. A nil *Logger drops everything, so
// callers can pass loggers through without guarding each call site.
type Logger struct {
	base zerolog.Logger
}

// New builds a Logger from opts.
func New(opts Options) (*Logger, error) {
	out := opts.Writer
	if out == nil {
		out = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		var err error
		level, err = zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("unknown log level %q", opts.Level)
		}
	}

	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	base := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return &Logger{base: base}, nil
}

// Nop returns a logger that discards everything. Library entry points take
// it as the default so callers are never forced to configure logging.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// WithStage scopes the logger to one pipeline stage (sanitize, validate,
// translate, build).
func (l *Logger) WithStage(stage string) *Logger {
	return l.WithFields(map[string]any{"stage": stage})
}

// WithFields returns a derived logger that writes the given fields on every
// entry.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	ctx := l.base.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	return &Logger{base: ctx.Logger()}
}

func (l *Logger) Debug(msg string) { l.log(zerolog.DebugLevel, nil, msg) }

func (l *Logger) Info(msg string) { l.log(zerolog.InfoLevel, nil, msg) }

func (l *Logger) Warn(msg string) { l.log(zerolog.WarnLevel, nil, msg) }

// Error writes an error entry carrying err under the "error" key.
func (l *Logger) Error(err error, msg string) { l.log(zerolog.ErrorLevel, err, msg) }

func (l *Logger) log(level zerolog.Level, err error, msg string) {
	if l == nil {
		return
	}
	ev := l.base.WithLevel(level)
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg(msg)
}
