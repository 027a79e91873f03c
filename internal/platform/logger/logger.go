// Package logger owns the process wide zerolog root and request scoped children
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

	"portfolio/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is zerolog's logger; callers never import zerolog directly
type Logger = zerolog.Logger

// Options configures Init
type Options struct {
	Level     string // trace..panic; debug when blank or unknown
	Format    string // console or json
	Service   string
	Component string
	// Writer defaults to stdout
	Writer      io.Writer
	WithCaller  bool
	SampleEvery int // keep 1 in N events when > 1
	// StaticFields are stamped on every event
	StaticFields map[string]string
}

// FromEnv reads LOG_LEVEL, LOG_FORMAT, LOG_SERVICE, LOG_COMPONENT, LOG_CALLER and LOG_SAMPLE_EVERY
func FromEnv() Options {
	rc := raw.New().Prefix("LOG_")
	return Options{
		Level:       strings.ToLower(rc.Get("LEVEL", "debug")),
		Format:      strings.ToLower(rc.Get("FORMAT", "console")),
		Service:     rc.Get("SERVICE", "portfolio"),
		Component:   rc.Get("COMPONENT", ""),
		WithCaller:  rc.GetBool("CALLER", false),
		SampleEvery: rc.GetInt("SAMPLE_EVERY", 0),
	}
}

var (
	once sync.Once
	root atomic.Pointer[Logger]
)

// Init builds the root logger. Only the first call has any effect
func Init(opt Options) {
	once.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano

		w := opt.Writer
		if w == nil {
			w = os.Stdout
		}
		if opt.Format == "console" {
			w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
		}

		b := zerolog.New(w).Level(parseLevel(opt.Level)).With().Timestamp()
		if bi, ok := debug.ReadBuildInfo(); ok {
			b = b.Str("go_version", bi.GoVersion)
		}
		for k, v := range map[string]string{"service": opt.Service, "component": opt.Component} {
			if v != "" {
				b = b.Str(k, v)
			}
		}
		for k, v := range opt.StaticFields {
			b = b.Str(k, v)
		}
		if opt.WithCaller {
			b = b.Caller()
		}

		l := b.Logger()
		if opt.SampleEvery > 1 {
			l = l.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
		}
		root.Store(&l)
	})
}

// Get returns the root logger, initializing it from env on first use
func Get() *Logger {
	if l := root.Load(); l != nil {
		return l
	}
	Init(FromEnv())
	return root.Load()
}

func parseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || s == "" || lvl == zerolog.NoLevel {
		return zerolog.DebugLevel
	}
	return lvl
}

type scopeKey struct{}

// scope is what C reads back off a context
type scope struct {
	requestID string
	op        string
}

func scopeOf(ctx context.Context) scope {
	s, _ := ctx.Value(scopeKey{}).(scope)
	return s
}

// WithRequest records the request id and operation on ctx for C.
// Blank values keep whatever ctx already carries
func WithRequest(ctx context.Context, reqID, op string) context.Context {
	s := scopeOf(ctx)
	if reqID != "" {
		s.requestID = reqID
	}
	if op != "" {
		s.op = op
	}
	return context.WithValue(ctx, scopeKey{}, s)
}

// WithOp records the service operation, e.g. "contributions"
func WithOp(ctx context.Context, op string) context.Context { return WithRequest(ctx, "", op) }

// C returns a child of the root stamped with request_id and op from ctx
func C(ctx context.Context) *Logger {
	s := scopeOf(ctx)
	b := Get().With()
	if s.requestID != "" {
		b = b.Str("request_id", s.requestID)
	}
	if s.op != "" {
		b = b.Str("op", s.op)
	}
	l := b.Logger()
	return &l
}

// Named returns a child with a component field; the root when component is blank
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}
