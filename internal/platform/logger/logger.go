// Package logger wraps zerolog behind a small surface: a lazily built
// process root, named children per component, and request scoped children
// carrying the request id
package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"gitgauge/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is the project wide logging type, an alias so call sites never
// import zerolog directly
type Logger = zerolog.Logger

// Options configures the root logger
type Options struct {
	Level        string
	Format       string
	Service      string
	Component    string
	Writer       io.Writer
	WithCaller   bool
	SampleEvery  int
	StaticFields map[string]string
}

// FromEnv reads LOG_* variables through the raw view, which exists so the
// logger can bootstrap without importing the config package back
func FromEnv() Options {
	env := raw.New().Prefix("LOG_")
	return Options{
		Level:       strings.ToLower(env.Get("LEVEL", "debug")),
		Format:      strings.ToLower(env.Get("FORMAT", "console")),
		Service:     env.Get("SERVICE", ""),
		Component:   env.Get("COMPONENT", ""),
		WithCaller:  env.GetBool("CALLER", false),
		SampleEvery: env.GetInt("SAMPLE_EVERY", 0),
	}
}

var (
	buildOnce sync.Once
	base      atomic.Pointer[zerolog.Logger]
)

// Get returns the process root, building it from the environment on first use
func Get() *Logger {
	if l := base.Load(); l != nil {
		return l
	}
	Init(FromEnv())
	return base.Load()
}

// Init builds the root logger. Only the first call wins; later calls and
// the implicit Get path are no-ops
func Init(opt Options) {
	buildOnce.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano

		sink := io.Writer(os.Stdout)
		if opt.Writer != nil {
			sink = opt.Writer
		}
		if opt.Format == "console" {
			sink = zerolog.ConsoleWriter{Out: sink, TimeFormat: time.RFC3339}
		}

		fields := zerolog.New(sink).Level(parseLevel(opt.Level)).With().Timestamp()
		if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
			fields = fields.Str("go_version", bi.GoVersion)
		}
		if opt.Service != "" {
			fields = fields.Str("service", opt.Service)
		}
		if opt.Component != "" {
			fields = fields.Str("component", opt.Component)
		}
		for k, v := range opt.StaticFields {
			fields = fields.Str(k, v)
		}

		log := fields.Logger()
		if opt.WithCaller {
			log = log.With().Caller().Logger()
		}
		if opt.SampleEvery > 1 {
			log = log.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
		}

		base.Store(&log)
	})
}

// parseLevel maps a level name to zerolog, defaulting unknowns to debug
func parseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || s == "" {
		return zerolog.DebugLevel
	}
	return lvl
}

type ctxKey struct{ name string }

var keyRequestID = ctxKey{"req_id"}

// WithRequest stores the request id on ctx for C to pick up
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, keyRequestID, reqID)
	}
	return ctx
}

// C returns a child of the root carrying the request id from ctx, if any
func C(ctx context.Context) *Logger {
	fields := Get().With()
	if s, ok := ctx.Value(keyRequestID).(string); ok && s != "" {
		fields = fields.Str("request_id", s)
	}
	child := fields.Logger()
	return &child
}

// Named returns a child of the root tagged with a component field
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	child := Get().With().Str("component", component).Logger()
	return &child
}
