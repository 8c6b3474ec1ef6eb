package rendezvous

import (
	"context"
	"log/slog"
)

// Config holds a Channel's ambient, protocol-inert knobs: a name used
// only in log lines and String(), and an optional structured logger. Nothing here
// can affect queueing, buffering, or fairness, so Config stays
// deliberately small.
type Config struct {
	Name   string
	Logger *slog.Logger
}

func defaultConfig() Config {
	return Config{Name: "channel"}
}

// Option configures a Channel at construction time.
type Option[T any] func(*Channel[T])

// WithName sets the name a Channel uses in its log lines and String().
func WithName[T any](name string) Option[T] {
	return func(c *Channel[T]) { c.cfg.Name = name }
}

// WithLogger attaches a structured logger. Debug-level events are
// emitted for hand-offs, cancellations, and Finish drains; the element
// value carried by Send/Receive is never logged, since nothing says T
// is safe to format. A nil logger (the default) disables all logging.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(c *Channel[T]) { c.cfg.Logger = logger }
}

// debugf emits a debug-level log line tagged with the channel's name, if
// a logger was configured. It is always called after the critical
// section has been released, so it can never be blamed for contention
// on c.mu.
func (c *Channel[T]) debugf(ctx context.Context, msg string, args ...any) {
	if c.cfg.Logger == nil {
		return
	}
	args = append([]any{"channel", c.cfg.Name}, args...)
	c.cfg.Logger.DebugContext(ctx, msg, args...)
}
