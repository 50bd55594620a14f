package arith

import (
	"log/slog"

	"github.com/ajroetker/hwyarray/hwy"
	"github.com/ajroetker/hwyarray/hwy/contrib/workerpool"
)

type options struct {
	target           hwy.Target
	parallelism      int
	pool             *workerpool.Pool
	maxParallelCalls int64
	logger           *slog.Logger
}

func defaultOptions() options {
	return options{
		target: hwy.CurrentTarget(),
		logger: slog.New(slog.DiscardHandler),
	}
}

// Option configures an Engine.
type Option func(*options)

// WithTarget sets the vector target whose lane width the kernels use.
// Defaults to hwy.CurrentTarget().
func WithTarget(t hwy.Target) Option {
	return func(o *options) {
		o.target = t
	}
}

// WithParallelism fixes the number of ranges parallel calls split their
// input into. By default runtime.GOMAXPROCS(0) is queried on every call.
// Values < 1 restore the default.
func WithParallelism(p int) Option {
	return func(o *options) {
		o.parallelism = max(p, 0)
	}
}

// WithPool runs parallel calls on a persistent worker pool. The pool stays
// owned by the caller. Without a pool, each parallel call spawns and joins
// its own goroutines.
func WithPool(p *workerpool.Pool) Option {
	return func(o *options) {
		o.pool = p
	}
}

// WithMaxParallelCalls bounds how many parallel calls may fan out at the
// same time. A call over the limit runs sequentially on the caller's
// goroutine instead of waiting. 0 means unlimited.
func WithMaxParallelCalls(k int) Option {
	return func(o *options) {
		o.maxParallelCalls = int64(max(k, 0))
	}
}

// WithLogger sets the logger for partitioning and failure records.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
