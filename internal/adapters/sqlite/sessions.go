package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"northstar/internal/domain"
)

func (db *DB) CreateSession(ctx context.Context, s domain.Session) (domain.Session, error) {
	_, err := db.SQL.ExecContext(ctx, `INSERT INTO discovery_sessions (`+sessionColumns+`, source)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`, sessionArgs(s)...)
	if err != nil {
		return domain.Session{}, err
	}
	return s, nil
}

func sessionArgs(s domain.Session) []any {
	return []any{
		s.ID, string(s.Kind), s.RequestedBy, mustJSON(s.Config), string(s.Status), s.WorkerID,
		micros(s.CreatedAt), nullMicros(s.StartedAt), nullMicros(s.FinishedAt), micros(s.LastActivityAt),
		s.CandidatesFound, s.DuplicatesDetected, s.Error, s.Config.Source,
	}
}

func (db *DB) GetSession(ctx context.Context, id string) (domain.Session, error) {
	return getSession(ctx, db.SQL, id)
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getSession(ctx context.Context, q querier, id string) (domain.Session, error) {
	s, err := scanSession(q.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM discovery_sessions WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return s, domain.NotFound("discovery session", id)
	}
	return s, err
}

func (db *DB) ListSessions(ctx context.Context, filter domain.SessionFilter) ([]domain.Session, error) {
	var where []string
	var args []any
	if filter.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(filter.Status))
	}
	if filter.Source != "" {
		where = append(where, "source = ?")
		args = append(args, filter.Source)
	}
	q := `SELECT ` + sessionColumns + ` FROM discovery_sessions`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = domain.DefaultPageSize
	}
	q += " ORDER BY created_at DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := db.SQL.QueryContext(ctx, q, args...)
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

func (db *DB) UpdateSession(ctx context.Context, id string, fn func(*domain.Session) error) (domain.Session, error) {
	var out domain.Session
	err := db.withTx(ctx, func(tx *sql.Tx) error {
		s, err := getSession(ctx, tx, id)
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

func saveSession(ctx context.Context, tx *sql.Tx, s domain.Session) error {
	_, err := tx.ExecContext(ctx, `UPDATE discovery_sessions SET
		status = ?, worker_id = ?, started_at = ?, finished_at = ?, last_activity_at = ?,
		candidates_found = ?, duplicates_detected = ?, error = ?
		WHERE id = ?`,
		string(s.Status), s.WorkerID, nullMicros(s.StartedAt), nullMicros(s.FinishedAt), micros(s.LastActivityAt),
		s.CandidatesFound, s.DuplicatesDetected, s.Error, s.ID)
	return err
}

// ClaimNextSession marks the oldest queued session running for workerID.
func (db *DB) ClaimNextSession(ctx context.Context, workerID string) (domain.Session, bool, error) {
	var out domain.Session
	var found bool
	err := db.withTx(ctx, func(tx *sql.Tx) error {
		var id string
		err := tx.QueryRowContext(ctx, `SELECT id FROM discovery_sessions
			WHERE status = 'queued' ORDER BY created_at, id LIMIT 1`).Scan(&id)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		s, err := getSession(ctx, tx, id)
		if err != nil {
			return err
		}
		now := domain.Now()
		s.Status = domain.SessionRunning
		s.WorkerID = workerID
		s.StartedAt = &now
		s.LastActivityAt = now
		if err := saveSession(ctx, tx, s); err != nil {
			return err
		}
		out, found = s, true
		return nil
	})
	return out, found, err
}

func (db *DB) FailStaleSessions(ctx context.Context, cutoff time.Time, reason string) ([]string, error) {
	now := domain.Now()
	rows, err := db.SQL.QueryContext(ctx, `UPDATE discovery_sessions
		SET status = 'failed', error = ?, finished_at = ?
		WHERE status = 'running' AND last_activity_at < ?
		RETURNING id`, reason, micros(now), micros(cutoff))
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
