// Package notifier delivers approve/reject outcomes to listeners off the
// request path.
package notifier

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"northstar/internal/domain"
	"northstar/internal/ports"
)

const defaultDeliveryTimeout = 30 * time.Second

// Notifier is a bounded queue drained by a fixed pool of workers. Publish never
// blocks: when the queue is full the outcome is logged and dropped.
type Notifier struct {
	listeners []ports.OutcomeListener
	queue     chan domain.Outcome
	workers   int
	timeout   time.Duration
	log       *zap.Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

func New(log *zap.Logger, workers, queueSize int, listeners ...ports.OutcomeListener) *Notifier {
	if log == nil {
		log = zap.NewNop()
	}
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	return &Notifier{
		listeners: listeners,
		queue:     make(chan domain.Outcome, queueSize),
		workers:   workers,
		timeout:   defaultDeliveryTimeout,
		log:       log,
	}
}

var _ ports.OutcomePublisher = (*Notifier)(nil)

// Start launches the workers. Deliveries use ctx; Close drains what is left.
func (n *Notifier) Start(ctx context.Context) {
	for i := 0; i < n.workers; i++ {
		n.wg.Add(1)
		go func(idx int) {
			defer n.wg.Done()
			for o := range n.queue {
				n.deliver(ctx, idx, o)
			}
		}(i)
	}
}

func (n *Notifier) Publish(o domain.Outcome) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.closed {
		n.log.Warn("notifier closed, dropping outcome", zap.String("candidate", o.CandidateID))
		return
	}
	select {
	case n.queue <- o:
	default:
		n.log.Warn("outcome queue full, dropping outcome",
			zap.String("candidate", o.CandidateID),
			zap.String("state", string(o.State)))
	}
}

// Close stops accepting outcomes and waits for queued ones to be delivered.
func (n *Notifier) Close() {
	n.mu.Lock()
	if !n.closed {
		n.closed = true
		close(n.queue)
	}
	n.mu.Unlock()
	n.wg.Wait()
}

func (n *Notifier) deliver(ctx context.Context, worker int, o domain.Outcome) {
	for _, l := range n.listeners {
		dctx, cancel := context.WithTimeout(ctx, n.timeout)
		err := l.Notify(dctx, o)
		cancel()
		if err == nil {
			continue
		}
		n.log.Error("outcome delivery failed",
			zap.Int("worker", worker),
			zap.String("candidate", o.CandidateID),
			zap.String("state", string(o.State)),
			zap.Bool("downstream_unavailable", errors.Is(err, domain.ErrDownstreamUnavailable)),
			zap.Error(err))
	}
}

// LogListener records outcomes in the service log. It is the listener used
// when no webhook is configured.
type LogListener struct {
	Log *zap.Logger
}

func (l LogListener) Notify(_ context.Context, o domain.Outcome) error {
	l.Log.Info("candidate decided",
		zap.String("candidate", o.CandidateID),
		zap.String("name", o.Name),
		zap.String("source", o.Source),
		zap.String("state", string(o.State)),
		zap.String("actor", o.Actor),
		zap.Int64("version", o.Version))
	return nil
}
