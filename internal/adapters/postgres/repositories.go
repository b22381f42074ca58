package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"northstar/internal/domain"
	"northstar/internal/ports"
)

var _ ports.RecordStore = (*DB)(nil)

const candidateColumns = `id, name, program_name, description, source, natural_key, source_url,
	metadata, tags, confidence, funding_min, funding_max, currency, deadline,
	discovery_session_id, assigned_reviewer, review_started_at, validation_notes,
	rejection_reason, state, version, discovered_at, last_modified_at, last_modified_by`

func scanCandidate(row pgx.Row) (domain.Candidate, error) {
	var c domain.Candidate
	var state string
	err := row.Scan(&c.ID, &c.Name, &c.ProgramName, &c.Description, &c.Source, &c.NaturalKey, &c.SourceURL,
		&c.Metadata, &c.Tags, &c.Confidence, &c.FundingMin, &c.FundingMax, &c.Currency, &c.Deadline,
		&c.DiscoverySessionID, &c.AssignedReviewer, &c.ReviewStartedAt, &c.ValidationNotes,
		&c.RejectionReason, &state, &c.Version, &c.DiscoveredAt, &c.LastModifiedAt, &c.LastModifiedBy)
	if err != nil {
		return c, err
	}
	c.State = domain.State(state)
	c.DiscoveredAt = c.DiscoveredAt.UTC()
	c.LastModifiedAt = c.LastModifiedAt.UTC()
	c.Deadline = utcPtr(c.Deadline)
	c.ReviewStartedAt = utcPtr(c.ReviewStartedAt)
	return c, nil
}

func candidateArgs(c domain.Candidate) []any {
	metadata := c.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	return []any{
		c.Name, strings.ToLower(c.Name), c.ProgramName, c.Description, c.Source, c.NaturalKey, c.SourceURL,
		metadata, tags, c.Confidence, c.FundingMin, c.FundingMax, c.Currency, c.Deadline,
		c.DiscoverySessionID, c.AssignedReviewer, c.ReviewStartedAt, c.ValidationNotes,
		c.RejectionReason, string(c.State), c.Version, c.DiscoveredAt, c.LastModifiedAt, c.LastModifiedBy,
	}
}

// CandidateRepository

func (db *DB) GetCandidate(ctx context.Context, id string) (domain.Candidate, error) {
	c, err := scanCandidate(db.Pool.QueryRow(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
		return c, domain.NotFound("candidate", id)
	}
	return c, err
}

func (db *DB) FindCandidateByNaturalKey(ctx context.Context, source, naturalKey string) (domain.Candidate, error) {
	c, err := scanCandidate(db.Pool.QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE source = $1 AND natural_key = $2`, source, naturalKey))
	if errors.Is(err, pgx.ErrNoRows) {
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
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if len(filter.States) > 0 {
		states := make([]string, len(filter.States))
		for i, s := range filter.States {
			states[i] = string(s)
		}
		where = append(where, "state = ANY("+arg(states)+")")
	}
	if text := strings.ToLower(strings.TrimSpace(filter.Text)); text != "" {
		p := arg("%" + escapeLike(text) + "%")
		where = append(where, "(name_key LIKE "+p+" OR source LIKE "+p+" OR lower(source_url) LIKE "+p+")")
	}
	if filter.Source != "" {
		where = append(where, "source = "+arg(filter.Source))
	}
	if filter.SessionID != "" {
		where = append(where, "discovery_session_id = "+arg(filter.SessionID))
	}

	order := "discovered_at, id"
	if page.Sort == domain.SortName {
		order = "name_key, id"
	}
	if cur := page.Cursor; cur != nil {
		if page.Sort == domain.SortName {
			where = append(where, "(name_key, id) > ("+arg(cur.Name)+", "+arg(cur.ID)+"::uuid)")
		} else {
			where = append(where, "(discovered_at, id) > ("+arg(cur.At)+", "+arg(cur.ID)+"::uuid)")
		}
	}

	q := `SELECT ` + candidateColumns + ` FROM candidates`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY " + order + " LIMIT " + arg(page.Limit+1)

	rows, err := db.Pool.Query(ctx, q, args...)
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
	err := db.withTx(ctx, func(tx pgx.Tx) error {
		args := append([]any{c.ID}, candidateArgs(c)...)
		tag, err := tx.Exec(ctx, `
			INSERT INTO candidates (id, name, name_key, program_name, description, source, natural_key, source_url,
				metadata, tags, confidence, funding_min, funding_max, currency, deadline,
				discovery_session_id, assigned_reviewer, review_started_at, validation_notes,
				rejection_reason, state, version, discovered_at, last_modified_at, last_modified_by)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25)
			ON CONFLICT (source, natural_key) DO NOTHING
		`, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrDuplicate
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

// CompareAndUpdate reads without locking and lets the version predicate on
// the UPDATE decide between concurrent writers.
func (db *DB) CompareAndUpdate(ctx context.Context, id string, expectedVersion int64, mutate ports.Mutation) (domain.Candidate, error) {
	var next domain.Candidate
	err := db.withTx(ctx, func(tx pgx.Tx) error {
		cur, err := scanCandidate(tx.QueryRow(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id))
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
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

		args := append(candidateArgs(change.Candidate), id, expectedVersion)
		tag, err := tx.Exec(ctx, `
			UPDATE candidates SET
				name = $1, name_key = $2, program_name = $3, description = $4, source = $5, natural_key = $6,
				source_url = $7, metadata = $8, tags = $9, confidence = $10, funding_min = $11, funding_max = $12,
				currency = $13, deadline = $14, discovery_session_id = $15, assigned_reviewer = $16,
				review_started_at = $17, validation_notes = $18, rejection_reason = $19, state = $20,
				version = $21, discovered_at = $22, last_modified_at = $23, last_modified_by = $24
			WHERE id = $25 AND version = $26
		`, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return &domain.ConflictError{ID: id, Expected: expectedVersion, Actual: expectedVersion + 1}
		}
		if err := insertContacts(ctx, tx, change.Contacts); err != nil {
			return err
		}
		if err := insertAudit(ctx, tx, change.Event); err != nil {
			if isUniqueViolation(err) {
				return &domain.ConflictError{ID: id, Expected: expectedVersion, Actual: expectedVersion + 1}
			}
			return err
		}
		next = change.Candidate
		return nil
	})
	return next, err
}

// ContactRepository

const contactColumns = `id, candidate_id, contact_type, authority, full_name, title, organization,
	email, phone, office_address, confidence, verified, verified_at, verified_by, notes,
	created_at, created_by`

func (db *DB) ListContacts(ctx context.Context, candidateID string) ([]domain.Contact, error) {
	rows, err := db.Pool.Query(ctx, `SELECT `+contactColumns+` FROM contacts WHERE candidate_id = $1 ORDER BY seq`, candidateID)
	if err != nil {
		if isInvalidText(err) {
			return []domain.Contact{}, nil
		}
		return nil, err
	}
	defer rows.Close()
	out := make([]domain.Contact, 0)
	for rows.Next() {
		var ct domain.Contact
		var ctype, auth string
		if err := rows.Scan(&ct.ID, &ct.CandidateID, &ctype, &auth, &ct.FullName, &ct.Title, &ct.Organization,
			&ct.Email, &ct.Phone, &ct.OfficeAddress, &ct.Confidence, &ct.Verified, &ct.VerifiedAt, &ct.VerifiedBy,
			&ct.Notes, &ct.CreatedAt, &ct.CreatedBy); err != nil {
			return nil, err
		}
		ct.Type = domain.ContactType(ctype)
		ct.Authority = domain.AuthorityLevel(auth)
		ct.VerifiedAt = utcPtr(ct.VerifiedAt)
		ct.CreatedAt = ct.CreatedAt.UTC()
		out = append(out, ct)
	}
	return out, rows.Err()
}

func insertContacts(ctx context.Context, tx pgx.Tx, contacts []domain.Contact) error {
	for _, ct := range contacts {
		if _, err := tx.Exec(ctx, `INSERT INTO contacts (`+contactColumns+`)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`,
			ct.ID, ct.CandidateID, string(ct.Type), string(ct.Authority), ct.FullName, ct.Title, ct.Organization,
			ct.Email, ct.Phone, ct.OfficeAddress, ct.Confidence, ct.Verified, ct.VerifiedAt, ct.VerifiedBy,
			ct.Notes, ct.CreatedAt, ct.CreatedBy); err != nil {
			return err
		}
	}
	return nil
}

// AuditRepository

func (db *DB) ListAuditEvents(ctx context.Context, candidateID string) ([]domain.AuditEvent, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, candidate_id, kind, actor, from_state, to_state, version, note, changes, at
		FROM audit_events WHERE candidate_id = $1 ORDER BY seq
	`, candidateID)
	if err != nil {
		if isInvalidText(err) {
			return []domain.AuditEvent{}, nil
		}
		return nil, err
	}
	defer rows.Close()
	out := make([]domain.AuditEvent, 0)
	for rows.Next() {
		var ev domain.AuditEvent
		var kind, from, to string
		if err := rows.Scan(&ev.ID, &ev.CandidateID, &kind, &ev.Actor, &from, &to, &ev.Version, &ev.Note, &ev.Changes, &ev.At); err != nil {
			return nil, err
		}
		ev.Kind = domain.AuditKind(kind)
		ev.FromState = domain.State(from)
		ev.ToState = domain.State(to)
		ev.At = ev.At.UTC()
		out = append(out, ev)
	}
	return out, rows.Err()
}

func insertAudit(ctx context.Context, tx pgx.Tx, ev domain.AuditEvent) error {
	changes := ev.Changes
	if changes == nil {
		changes = []domain.FieldChange{}
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO audit_events (id, candidate_id, kind, actor, from_state, to_state, version, note, changes, at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, ev.ID, ev.CandidateID, string(ev.Kind), ev.Actor, string(ev.FromState), string(ev.ToState),
		ev.Version, ev.Note, changes, ev.At)
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// isInvalidText reports a malformed uuid literal, which can never match a row.
func isInvalidText(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22P02"
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
