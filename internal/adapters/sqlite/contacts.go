package sqlite

import (
	"context"
	"database/sql"

	"northstar/internal/domain"
)

func (db *DB) ListContacts(ctx context.Context, candidateID string) ([]domain.Contact, error) {
	rows, err := db.SQL.QueryContext(ctx, `SELECT `+contactColumns+` FROM contacts WHERE candidate_id = ? ORDER BY seq`, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]domain.Contact, 0)
	for rows.Next() {
		ct, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ct)
	}
	return out, rows.Err()
}

func insertContacts(ctx context.Context, tx *sql.Tx, contacts []domain.Contact) error {
	for _, ct := range contacts {
		_, err := tx.ExecContext(ctx, `INSERT INTO contacts (`+contactColumns+`)
			VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
			ct.ID, ct.CandidateID, string(ct.Type), string(ct.Authority), ct.FullName, ct.Title, ct.Organization,
			ct.Email, ct.Phone, ct.OfficeAddress, ct.Confidence, ct.Verified, nullMicros(ct.VerifiedAt), ct.VerifiedBy,
			ct.Notes, micros(ct.CreatedAt), ct.CreatedBy)
		if err != nil {
			return err
		}
	}
	return nil
}
