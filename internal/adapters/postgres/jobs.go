package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"northstar/internal/domain"
)

const sessionColumns = `id, kind, requested_by, config, status, worker_id, created_at, started_at,
	finished_at, last_activity_at, candidates_found, duplicates_detected, error`

func scanSession(row pgx.Row) (domain.Session, error) {
	var s domain.Session
	var kind, status string
	err := row.Scan(&s.ID, &kind, &s.RequestedBy, &s.Config, &status, &s.WorkerID, &s.CreatedAt, &s.StartedAt,
		&s.FinishedAt, &s.LastActivityAt, &s.CandidatesFound, &s.DuplicatesDetected, &s.Error)
	if err != nil {
		return s, err
	}
	s.Kind = domain.SessionKind(kind)
	s.Status = domain.SessionStatus(status)
	s.CreatedAt = s.CreatedAt.UTC()
	s.LastActivityAt = s.LastActivityAt.UTC()
	s.StartedAt = utcPtr(s.StartedAt)
	s.FinishedAt = utcPtr(s.FinishedAt)
	return s, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func (db *DB) CreateSession(ctx context.Context, s domain.Session) (domain.Session, error) {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO discovery_sessions (`+sessionColumns+`, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`, s.ID, string(s.Kind), s.RequestedBy, s.Config, string(s.Status), s.WorkerID, s.CreatedAt, s.StartedAt,
		s.FinishedAt, s.LastActivityAt, s.CandidatesFound, s.DuplicatesDetected, s.Error, s.Config.Source)
	if err != nil {
		return domain.Session{}, err
	}
	return s, nil
}

func (db *DB) GetSession(ctx context.Context, id string) (domain.Session, error) {
	s, err := scanSession(db.Pool.QueryRow(ctx, `SELECT `+sessionColumns+` FROM discovery_sessions WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
		return s, domain.NotFound("discovery session", id)
	}
	return s, err
}

func (db *DB) ListSessions(ctx context.Context, filter domain.SessionFilter) ([]domain.Session, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = domain.DefaultPageSize
	}
	rows, err := db.Pool.Query(ctx, `
		SELECT `+sessionColumns+` FROM discovery_sessions
		WHERE ($1 = '' OR status = $1) AND ($2 = '' OR source = $2)
		ORDER BY created_at DESC, id DESC
		LIMIT $3
	`, string(filter.Status), filter.Source, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]domain.Session, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// UpdateSession locks the session row for the duration of fn.
func (db *DB) UpdateSession(ctx context.Context, id string, fn func(*domain.Session) error) (domain.Session, error) {
	var out domain.Session
	err := db.withTx(ctx, func(tx pgx.Tx) error {
		s, err := scanSession(tx.QueryRow(ctx, `SELECT `+sessionColumns+` FROM discovery_sessions WHERE id = $1 FOR UPDATE`, id))
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return domain.NotFound("discovery session", id)
		}
		if err != nil {
			return err
		}
		if err := fn(&s); err != nil {
			return err
		}
		s.ID = id
		if err := saveSession(ctx, tx, s); err != nil {
			return err
		}
		out = s
		return nil
	})
	return out, err
}

func saveSession(ctx context.Context, tx pgx.Tx, s domain.Session) error {
	_, err := tx.Exec(ctx, `
		UPDATE discovery_sessions SET
			status = $2, worker_id = $3, started_at = $4, finished_at = $5, last_activity_at = $6,
			candidates_found = $7, duplicates_detected = $8, error = $9
		WHERE id = $1
	`, s.ID, string(s.Status), s.WorkerID, s.StartedAt, s.FinishedAt, s.LastActivityAt,
		s.CandidatesFound, s.DuplicatesDetected, s.Error)
	return err
}

// ClaimNextSession selects the next queued session using SKIP LOCKED and marks it running.
func (db *DB) ClaimNextSession(ctx context.Context, workerID string) (s domain.Session, found bool, err error) {
	err = db.withTx(ctx, func(tx pgx.Tx) error {
		var id string
		err := tx.QueryRow(ctx, `
			SELECT id FROM discovery_sessions
			WHERE status = 'queued'
			ORDER BY created_at
			FOR UPDATE SKIP LOCKED
			LIMIT 1
		`).Scan(&id)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		s, err = scanSession(tx.QueryRow(ctx, `
			UPDATE discovery_sessions
			SET status = 'running', worker_id = $2, started_at = $3, last_activity_at = $3
			WHERE id = $1
			RETURNING `+sessionColumns, id, workerID, domain.Now()))
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	return s, found, err
}

// FailStaleSessions is safe to run from several processes: each stale row is
// flipped exactly once because the status predicate no longer matches after.
func (db *DB) FailStaleSessions(ctx context.Context, cutoff time.Time, reason string) ([]string, error) {
	rows, err := db.Pool.Query(ctx, `
		UPDATE discovery_sessions
		SET status = 'failed', error = $1, finished_at = $2
		WHERE status = 'running' AND last_activity_at < $3
		RETURNING id
	`, reason, domain.Now(), cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
