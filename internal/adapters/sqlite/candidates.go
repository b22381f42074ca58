package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"northstar/internal/domain"
	"northstar/internal/ports"
)

var _ ports.RecordStore = (*DB)(nil)

func (db *DB) GetCandidate(ctx context.Context, id string) (domain.Candidate, error) {
	c, err := scanCandidate(db.SQL.QueryRowContext(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return c, domain.NotFound("candidate", id)
	}
	return c, err
}

func (db *DB) FindCandidateByNaturalKey(ctx context.Context, source, naturalKey string) (domain.Candidate, error) {
	c, err := scanCandidate(db.SQL.QueryRowContext(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE source = ? AND natural_key = ?`, source, naturalKey))
	if errors.Is(err, sql.ErrNoRows) {
		return c, domain.NotFound("candidate", source+"/"+naturalKey)
	}
	return c, err
}

func (db *DB) ListCandidates(ctx context.Context, filter domain.CandidateFilter, page domain.PageRequest) (domain.CandidatePage, error) {
	var out domain.CandidatePage
	page, err := domain.NormalizePage(page)
	if err != nil {
		return out, err
	}

	var where []string
	var args []any
	if len(filter.States) > 0 {
		marks := make([]string, len(filter.States))
		for i, s := range filter.States {
			marks[i] = "?"
			args = append(args, string(s))
		}
		where = append(where, "state IN ("+strings.Join(marks, ",")+")")
	}
	if text := strings.ToLower(strings.TrimSpace(filter.Text)); text != "" {
		like := "%" + escapeLike(text) + "%"
		where = append(where, `(name_key LIKE ? ESCAPE '\' OR source LIKE ? ESCAPE '\' OR lower(source_url) LIKE ? ESCAPE '\')`)
		args = append(args, like, like, like)
	}
	if filter.Source != "" {
		where = append(where, "source = ?")
		args = append(args, filter.Source)
	}
	if filter.SessionID != "" {
		where = append(where, "discovery_session_id = ?")
		args = append(args, filter.SessionID)
	}

	order := "discovered_at, id"
	if page.Sort == domain.SortName {
		order = "name_key, id"
	}
	if cur := page.Cursor; cur != nil {
		if page.Sort == domain.SortName {
			where = append(where, "(name_key > ? OR (name_key = ? AND id > ?))")
			args = append(args, cur.Name, cur.Name, cur.ID)
		} else {
			where = append(where, "(discovered_at > ? OR (discovered_at = ? AND id > ?))")
			args = append(args, micros(cur.At), micros(cur.At), cur.ID)
		}
	}

	q := `SELECT ` + candidateColumns + ` FROM candidates`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY " + order + " LIMIT ?"
	args = append(args, page.Limit+1)

	rows, err := db.SQL.QueryContext(ctx, q, args...)
	if err != nil {
		return out, err
	}
	defer rows.Close()
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return out, err
		}
		out.Items = append(out.Items, c)
	}
	if err := rows.Err(); err != nil {
		return out, err
	}
	if len(out.Items) > page.Limit {
		out.Items = out.Items[:page.Limit]
		out.NextCursor = domain.CursorAfter(page.Sort, out.Items[page.Limit-1]).Encode()
	}
	return out, nil
}

func (db *DB) CreateCandidate(ctx context.Context, c domain.Candidate, contacts []domain.Contact, ev domain.AuditEvent) (domain.Candidate, error) {
	ports.SealNew(&c, contacts, &ev, domain.Now())
	err := db.withTx(ctx, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM candidates WHERE source = ? AND natural_key = ?`, c.Source, c.NaturalKey).Scan(&exists)
		if err == nil {
			return domain.ErrDuplicate
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}
		args := append([]any{c.ID}, candidateArgs(c)...)
		if _, err := tx.ExecContext(ctx, `INSERT INTO candidates (`+insertCandidateColumns+`)
			VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`, args...); err != nil {
			return err
		}
		if err := insertContacts(ctx, tx, contacts); err != nil {
			return err
		}
		return insertAudit(ctx, tx, ev)
	})
	if err != nil {
		return domain.Candidate{}, err
	}
	return c, nil
}

// CompareAndUpdate applies mutate to the stored candidate only if its version
// still equals expectedVersion. The write is guarded by the version column so a
// concurrent winner always turns this call into a ConflictError.
func (db *DB) CompareAndUpdate(ctx context.Context, id string, expectedVersion int64, mutate ports.Mutation) (domain.Candidate, error) {
	var next domain.Candidate
	err := db.withTx(ctx, func(tx *sql.Tx) error {
		cur, err := scanCandidate(tx.QueryRowContext(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE id = ?`, id))
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFound("candidate", id)
		}
		if err != nil {
			return err
		}
		if cur.Version != expectedVersion {
			return &domain.ConflictError{ID: id, Expected: expectedVersion, Actual: cur.Version}
		}
		change, err := mutate(cur)
		if err != nil {
			return err
		}
		change.Seal(cur, domain.Now())

		args := candidateArgs(change.Candidate)
		args = append(args, id, expectedVersion)
		res, err := tx.ExecContext(ctx, `UPDATE candidates SET
			name = ?, name_key = ?, program_name = ?, description = ?, source = ?, natural_key = ?, source_url = ?,
			metadata = ?, tags = ?, confidence = ?, funding_min = ?, funding_max = ?, currency = ?, deadline = ?,
			discovery_session_id = ?, assigned_reviewer = ?, review_started_at = ?, validation_notes = ?,
			rejection_reason = ?, state = ?, version = ?, discovered_at = ?, last_modified_at = ?, last_modified_by = ?
			WHERE id = ? AND version = ?`, args...)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err != nil {
			return err
		} else if n == 0 {
			return &domain.ConflictError{ID: id, Expected: expectedVersion, Actual: expectedVersion + 1}
		}
		if err := insertContacts(ctx, tx, change.Contacts); err != nil {
			return err
		}
		if err := insertAudit(ctx, tx, change.Event); err != nil {
			return err
		}
		next = change.Candidate
		return nil
	})
	return next, err
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
