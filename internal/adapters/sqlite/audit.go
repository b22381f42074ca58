package sqlite

import (
	"context"
	"database/sql"

	"northstar/internal/domain"
)

func (db *DB) ListAuditEvents(ctx context.Context, candidateID string) ([]domain.AuditEvent, error) {
	rows, err := db.SQL.QueryContext(ctx, `SELECT `+auditColumns+` FROM audit_events WHERE candidate_id = ? ORDER BY seq`, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]domain.AuditEvent, 0)
	for rows.Next() {
		ev, err := scanAudit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

func insertAudit(ctx context.Context, tx *sql.Tx, ev domain.AuditEvent) error {
	changes := ev.Changes
	if changes == nil {
		changes = []domain.FieldChange{}
	}
	_, err := tx.ExecContext(ctx, `INSERT INTO audit_events (`+auditColumns+`) VALUES (?,?,?,?,?,?,?,?,?,?)`,
		ev.ID, ev.CandidateID, string(ev.Kind), ev.Actor, string(ev.FromState), string(ev.ToState),
		ev.Version, ev.Note, mustJSON(changes), micros(ev.At))
	return err
}
