// Package logger provides the process logger and request-scoped loggers,
// both backed by zerolog.
//
// Init builds the process logger once at startup. HTTP middleware stores the
// request id in the request context with WithRequestID; code below the
// transport logs through For so its lines carry that id.
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the process logger.
type Options struct {
	Level  string    // trace, debug, info, warn or error; anything else means info
	Pretty bool      // console output instead of JSON, for local runs
	Output io.Writer // defaults to os.Stdout

	// Service and Version, when set, are added to every entry.
	Service string
	Version string
}

var (
	once sync.Once
	root *zerolog.Logger
)

// Init builds the process logger from opts. Only the first call has an
// effect; later calls return the logger built by the first.
func Init(opts Options) zerolog.Logger {
	once.Do(func() {
		l := build(opts)
		root = &l
	})
	return *root
}

func build(opts Options) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	lvl := parseLevel(opts.Level)
	zerolog.SetGlobalLevel(lvl)

	fields := zerolog.New(out).Level(lvl).With().Timestamp().Caller()
	if opts.Service != "" {
		fields = fields.Str("service", opts.Service)
	}
	if opts.Version != "" {
		fields = fields.Str("version", opts.Version)
	}
	return fields.Logger()
}

// Get returns the process logger. It panics when Init has not run.
func Get() zerolog.Logger {
	if root == nil {
		panic("logger: Get called before Init")
	}
	return *root
}

// Reset forgets the process logger so the next Init builds a new one.
// Tests only.
func Reset() {
	once = sync.Once{}
	root = nil
}

type requestIDKey struct{}

// WithRequestID returns a copy of ctx carrying the id of the request it serves.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request id stored in ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// For returns base tagged with the request id carried by ctx. Without one it
// returns base unchanged.
func For(ctx context.Context, base zerolog.Logger) zerolog.Logger {
	if id := RequestID(ctx); id != "" {
		return base.With().Str("request_id", id).Logger()
	}
	return base
}

// parseLevel maps a level name to a zerolog.Level. Unknown names fall back
// to info; "warning" is accepted as an alias of warn.
func parseLevel(s string) zerolog.Level {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "warning" {
		name = "warn"
	}
	lvl, err := zerolog.ParseLevel(name)
	if err != nil || lvl == zerolog.NoLevel || lvl > zerolog.ErrorLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
