// Package trace wraps functions so every call is logged through zap.
//
// The wrappers do not change what the wrapped function computes: arguments
// go in and results come out untouched, and panics keep propagating after
// they are logged.
package trace

import (
	"time"

	"github.com/google/uuid"
	"github.com/on-the-ground/funcomb_go/pure"
	"github.com/on-the-ground/funcomb_go/tuple"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config names a traced function and says where and how loudly it logs.
type Config struct {
	Name   string
	Level  zapcore.Level
	Logger *zap.Logger
}

// DefaultConfig logs at debug level to a no-op logger. Set Logger to
// actually see anything.
func DefaultConfig(name string) Config {
	return Config{
		Name:   name,
		Level:  zapcore.DebugLevel,
		Logger: zap.NewNop(),
	}
}

func (c Config) logger() *zap.Logger {
	return orNop(c.Logger).With(zap.String("fn", c.Name))
}

func orNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// Span runs fn and returns the time span it took.
func Span(fn func()) timespan.TimeSpan {
	from := time.Now()
	fn()
	return timespan.BetweenTimes(from, time.Now())
}

type call struct {
	logger *zap.Logger
	level  zapcore.Level
	id     string
}

func newCall(logger *zap.Logger, level zapcore.Level) call {
	return call{logger: logger, level: level, id: uuid.New().String()}
}

func (c call) done(span timespan.TimeSpan, fields ...zap.Field) {
	if ce := c.logger.Check(c.level, "call finished"); ce != nil {
		ce.Write(append(fields,
			zap.String("call_id", c.id),
			zap.Time("start", span.Start()),
			zap.Duration("took", span.Duration()),
		)...)
	}
}

func (c call) failed(err error, fields ...zap.Field) {
	c.logger.Error("call failed", append(fields, zap.String("call_id", c.id), zap.Error(err))...)
}

// panicked logs a panic in flight and lets it continue.
func (c call) panicked(fields ...zap.Field) {
	if rec := recover(); rec != nil {
		c.logger.Error("call panicked", append(fields, zap.String("call_id", c.id), zap.Any("panic", rec))...)
		panic(rec)
	}
}

// Traced1 logs each call of fn with its argument, result and time span.
func Traced1[A, R any](cfg Config, fn func(A) R) func(A) R {
	logger := cfg.logger()
	return func(a A) R {
		c := newCall(logger, cfg.Level)
		defer c.panicked(zap.Any("args", a))

		var r R
		span := Span(func() { r = fn(a) })
		c.done(span, zap.Any("args", a), zap.Any("result", r))
		return r
	}
}

func Traced2[A, B, R any](cfg Config, fn func(A, B) R) func(A, B) R {
	logger := cfg.logger()
	return func(a A, b B) R {
		in := tuple.NewT2(a, b)
		c := newCall(logger, cfg.Level)
		defer c.panicked(zap.Stringer("args", in))

		var r R
		span := Span(func() { r = fn(a, b) })
		c.done(span, zap.Stringer("args", in), zap.Any("result", r))
		return r
	}
}

// TracedE1 is Traced1 for fallible functions. Failures are logged at error
// level regardless of cfg.Level and returned unchanged.
func TracedE1[A, R any](cfg Config, fn func(A) (R, error)) func(A) (R, error) {
	logger := cfg.logger()
	return func(a A) (R, error) {
		c := newCall(logger, cfg.Level)
		defer c.panicked(zap.Any("args", a))

		var (
			r   R
			err error
		)
		span := Span(func() { r, err = fn(a) })
		if err != nil {
			c.failed(err, zap.Any("args", a), zap.Duration("took", span.Duration()))
			return r, err
		}
		c.done(span, zap.Any("args", a), zap.Any("result", r))
		return r, nil
	}
}

// TapLog logs every value passing through at debug level. A nil logger
// discards the logs.
func TapLog[T any](logger *zap.Logger, msg string) func(T) T {
	logger = orNop(logger)
	return pure.Tap(func(t T) {
		logger.Debug(msg, zap.Any("value", t))
	})
}
