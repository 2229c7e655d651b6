package logger

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Format selects how entries are encoded.
type Format string

const (
	// FormatJSON writes one JSON object per entry. It is the zero value.
	FormatJSON Format = ""
	// FormatConsole writes colourless human readable lines.
	FormatConsole Format = "console"
)

// ParseFormat accepts the values of the --log-format flag.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case string(FormatConsole):
		return FormatConsole, nil
	default:
		return FormatJSON, fmt.Errorf("unknown log format %q (want console or json)", s)
	}
}

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level  string
	Format Format
	Writer io.Writer
}

// Logger wraps zerolog with the fields the playground tags its entries with.
type Logger struct {
	base zerolog.Logger
}

// New creates a configured Logger instance based on Options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.Format == FormatConsole {
		output = zerolog.ConsoleWriter{Out: writer, TimeFormat: time.RFC3339, NoColor: true}
	}

	return &Logger{base: zerolog.New(output).Level(level).With().Timestamp().Logger()}, nil
}

// Nop returns a logger that discards everything. The TUI uses it so log lines never
// bleed into the alternate screen.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

func (l *Logger) with(key, value string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Str(key, value).Logger()}
}

// WithSession tags entries with the learner session id.
func (l *Logger) WithSession(id string) *Logger { return l.with("session", id) }

// WithRequestID tags entries with the id of an HTTP request.
func (l *Logger) WithRequestID(id string) *Logger { return l.with("request_id", id) }

// WithTopic tags entries with a topic id.
func (l *Logger) WithTopic(topic string) *Logger { return l.with("topic", topic) }

// WithControl tags entries with a control id.
func (l *Logger) WithControl(id string) *Logger { return l.with("control", id) }

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	builder := l.base.With()
	for key, value := range fields {
		builder = builder.Interface(key, value)
	}
	return &Logger{base: builder.Logger()}
}

// Request is the outcome of one HTTP request. Tag the logger with WithRequestID first.
type Request struct {
	Method   string
	Path     string
	Status   int
	Duration time.Duration
}

// Request logs a handled request: at debug level, or as a warning when the handler failed
// with a 5xx status.
func (l *Logger) Request(r Request) {
	if l == nil {
		return
	}
	event := l.base.Debug()
	msg := "request handled"
	if r.Status >= http.StatusInternalServerError {
		event = l.base.Warn()
		msg = "request failed"
	}
	event.
		Str("method", r.Method).
		Str("path", r.Path).
		Int("status", r.Status).
		Int64("duration_ms", r.Duration.Milliseconds()).
		Msg(msg)
}

// Info writes an informational log entry.
func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.base.Info().Msg(msg)
}

// Debug writes a debug-level log entry if enabled.
func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.base.Debug().Msg(msg)
}

// Warn writes a warning level log entry.
func (l *Logger) Warn(msg string) {
	if l == nil {
		return
	}
	l.base.Warn().Msg(msg)
}

// Error writes an error log entry including the supplied error context.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
