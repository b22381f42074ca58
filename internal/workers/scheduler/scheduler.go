// Package scheduler queues discovery sessions for configured sources on a
// fixed interval.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"northstar/internal/domain"
)

// RequestedBy is recorded on every session the scheduler starts.
const RequestedBy = "scheduler"

type Triggerer interface {
	Trigger(ctx context.Context, cfg domain.SessionConfig, requestedBy string, kind domain.SessionKind) (domain.Session, error)
}

// Job is one scheduled source. Days limits the job to those weekdays; an
// empty list runs it on every tick.
type Job struct {
	Config domain.SessionConfig
	Days   []time.Weekday
}

func (j Job) due(day time.Weekday) bool {
	return len(j.Days) == 0 || slices.Contains(j.Days, day)
}

type Scheduler struct {
	discovery Triggerer
	jobs      []Job
	interval  time.Duration
	log       *zap.Logger
	now       func() time.Time
}

func New(discovery Triggerer, jobs []Job, interval time.Duration, log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &Scheduler{discovery: discovery, jobs: jobs, interval: interval, log: log, now: domain.Now}
}

// RunOnce queues a scheduled session for every job due today. A failing job
// does not stop the others; their errors are joined.
func (s *Scheduler) RunOnce(ctx context.Context) ([]domain.Session, error) {
	day := s.now().Weekday()
	var (
		queued []domain.Session
		errs   []error
	)
	for _, job := range s.jobs {
		if !job.due(day) {
			continue
		}
		sess, err := s.discovery.Trigger(ctx, job.Config, RequestedBy, domain.SessionScheduled)
		if err != nil {
			errs = append(errs, fmt.Errorf("schedule %s: %w", job.Config.Source, err))
			continue
		}
		queued = append(queued, sess)
	}
	s.log.Info("scheduled discovery queued",
		zap.Stringer("day", day),
		zap.Int("jobs", len(s.jobs)),
		zap.Int("queued", len(queued)))
	return queued, errors.Join(errs...)
}

// Run queues due jobs on every tick until ctx is done.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.RunOnce(ctx); err != nil && ctx.Err() == nil {
				s.log.Error("scheduled discovery failed", zap.Error(err))
			}
		}
	}
}
