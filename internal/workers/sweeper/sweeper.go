// Package sweeper fails discovery sessions whose worker went quiet.
package sweeper

import (
	"context"
	"time"

	"go.uber.org/zap"

	"northstar/internal/domain"
	"northstar/internal/ports"
)

type Sweeper struct {
	repo     ports.SessionRepository
	timeout  time.Duration
	interval time.Duration
	log      *zap.Logger
	now      func() time.Time
}

// New returns a sweeper that fails running sessions with no activity for
// longer than timeout, checking every interval.
func New(repo ports.SessionRepository, timeout, interval time.Duration, log *zap.Logger) *Sweeper {
	if log == nil {
		log = zap.NewNop()
	}
	if interval <= 0 {
		interval = time.Minute
	}
	return &Sweeper{repo: repo, timeout: timeout, interval: interval, log: log, now: domain.Now}
}

// SweepOnce fails every stale session and returns their ids. Running it again
// right away finds nothing.
func (s *Sweeper) SweepOnce(ctx context.Context) ([]string, error) {
	cutoff := s.now().Add(-s.timeout)
	ids, err := s.repo.FailStaleSessions(ctx, cutoff, domain.SessionErrTimeout)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		s.log.Warn("discovery session timed out", zap.String("session", id), zap.Duration("timeout", s.timeout))
	}
	return ids, nil
}

// Run sweeps on every tick until ctx is done.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.SweepOnce(ctx); err != nil && ctx.Err() == nil {
				s.log.Error("session sweep failed", zap.Error(err))
			}
		}
	}
}
