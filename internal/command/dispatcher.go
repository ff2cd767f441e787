package command

import (
	"context"
	"time"

	"github.com/osse101/ClosetBot_Go/internal/logger"
	"github.com/osse101/ClosetBot_Go/internal/metrics"
	"github.com/osse101/ClosetBot_Go/internal/wardrobe"
)

// handlerFunc produces the reply for one command and the outcome recorded in metrics
type handlerFunc func(ctx context.Context, arg string) (reply, outcome string)

// Dispatcher routes parsed commands to their handlers
type Dispatcher struct {
	svc      wardrobe.Service
	loc      *time.Location
	timeout  time.Duration
	handlers map[Kind]handlerFunc
}

// Option configures a Dispatcher
type Option func(*Dispatcher)

// WithLocation sets the time zone dates are rendered in
func WithLocation(loc *time.Location) Option {
	return func(d *Dispatcher) {
		if loc != nil {
			d.loc = loc
		}
	}
}

// WithTimeout bounds the store calls made by a single command
func WithTimeout(timeout time.Duration) Option {
	return func(d *Dispatcher) {
		d.timeout = timeout
	}
}

// NewDispatcher creates a dispatcher backed by svc
func NewDispatcher(svc wardrobe.Service, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		svc: svc,
		loc: time.Local,
	}
	for _, opt := range opts {
		opt(d)
	}

	d.handlers = map[Kind]handlerFunc{
		KindStart:       d.handleStart,
		KindAdd:         d.handleAdd,
		KindMove:        d.handleMove,
		KindList:        d.handleList,
		KindListMyHouse: d.handleListMyHouse,
		KindListGFHouse: d.handleListGFHouse,
		KindDelete:      d.handleDelete,
	}
	return d
}

// Dispatch handles one inbound message. ok is false when text is not a
// command this bot knows, in which case nothing should be sent back.
func (d *Dispatcher) Dispatch(ctx context.Context, text string) (reply string, ok bool) {
	cmd, ok := Parse(text)
	if !ok {
		return "", false
	}
	return d.Execute(ctx, cmd), true
}

// Execute runs an already parsed command and returns its reply. An unknown
// kind yields an empty reply.
func (d *Dispatcher) Execute(ctx context.Context, cmd Command) string {
	handle, ok := d.handlers[cmd.Kind]
	if !ok {
		return ""
	}

	if _, ok := logger.RequestIDFromContext(ctx); !ok {
		ctx = logger.WithRequestID(ctx, logger.GenerateRequestID())
	}
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	log := logger.FromContext(ctx)
	log.Debug("Handling command", "command", cmd.Kind, "arg", cmd.Arg)

	start := time.Now()
	reply, outcome := handle(ctx, cmd.Arg)

	metrics.CommandsTotal.WithLabelValues(string(cmd.Kind), outcome).Inc()
	metrics.CommandDuration.WithLabelValues(string(cmd.Kind)).Observe(time.Since(start).Seconds())
	log.Info("Command handled", "command", cmd.Kind, "outcome", outcome, "duration", time.Since(start))

	return reply
}
