package ports

import (
	"context"
	"time"

	"northstar/internal/domain"
)

// SessionRepository stores discovery sessions and supports worker claiming.
type SessionRepository interface {
	CreateSession(ctx context.Context, s domain.Session) (domain.Session, error)
	GetSession(ctx context.Context, id string) (domain.Session, error)
	ListSessions(ctx context.Context, filter domain.SessionFilter) ([]domain.Session, error)
	// UpdateSession runs fn against the stored session inside a transaction
	// and persists the result.
	UpdateSession(ctx context.Context, id string, fn func(*domain.Session) error) (domain.Session, error)
	// ClaimNextSession moves the oldest queued session to running.
	ClaimNextSession(ctx context.Context, workerID string) (s domain.Session, found bool, err error)
	// FailStaleSessions fails running sessions idle since before cutoff and
	// returns their ids.
	FailStaleSessions(ctx context.Context, cutoff time.Time, reason string) ([]string, error)
}
