package sqlite

import (
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"northstar/internal/domain"
)

// Timestamps are stored as unix microseconds.

func micros(t time.Time) int64 { return t.UnixMicro() }

func fromMicros(v int64) time.Time { return time.UnixMicro(v).UTC() }

func nullMicros(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UnixMicro()
}

func timePtr(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := fromMicros(v.Int64)
	return &t
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func nullFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}

type rowScanner interface {
	Scan(dest ...any) error
}

const insertCandidateColumns = `id, name, name_key, program_name, description, source, natural_key, source_url,
	metadata, tags, confidence, funding_min, funding_max, currency, deadline,
	discovery_session_id, assigned_reviewer, review_started_at, validation_notes,
	rejection_reason, state, version, discovered_at, last_modified_at, last_modified_by`

const candidateColumns = `id, name, program_name, description, source, natural_key, source_url,
	metadata, tags, confidence, funding_min, funding_max, currency, deadline,
	discovery_session_id, assigned_reviewer, review_started_at, validation_notes,
	rejection_reason, state, version, discovered_at, last_modified_at, last_modified_by`

func scanCandidate(row rowScanner) (domain.Candidate, error) {
	var (
		c                     domain.Candidate
		metadata, tags, state string
		fundingMin, fundMax   sql.NullFloat64
		deadline, reviewStart sql.NullInt64
		discovered, modified  int64
	)
	err := row.Scan(&c.ID, &c.Name, &c.ProgramName, &c.Description, &c.Source, &c.NaturalKey, &c.SourceURL,
		&metadata, &tags, &c.Confidence, &fundingMin, &fundMax, &c.Currency, &deadline,
		&c.DiscoverySessionID, &c.AssignedReviewer, &reviewStart, &c.ValidationNotes,
		&c.RejectionReason, &state, &c.Version, &discovered, &modified, &c.LastModifiedBy)
	if err != nil {
		return c, err
	}
	if err := json.Unmarshal([]byte(metadata), &c.Metadata); err != nil {
		return c, err
	}
	if err := json.Unmarshal([]byte(tags), &c.Tags); err != nil {
		return c, err
	}
	c.FundingMin = floatPtr(fundingMin)
	c.FundingMax = floatPtr(fundMax)
	c.Deadline = timePtr(deadline)
	c.ReviewStartedAt = timePtr(reviewStart)
	c.State = domain.State(state)
	c.DiscoveredAt = fromMicros(discovered)
	c.LastModifiedAt = fromMicros(modified)
	return c, nil
}

// candidateArgs returns column values in the order of insertCandidateColumns,
// skipping the leading id.
func candidateArgs(c domain.Candidate) []any {
	return []any{
		c.Name, strings.ToLower(c.Name), c.ProgramName, c.Description, c.Source, c.NaturalKey, c.SourceURL,
		mustJSON(nonNilMap(c.Metadata)), mustJSON(nonNilSlice(c.Tags)), c.Confidence,
		nullFloat(c.FundingMin), nullFloat(c.FundingMax), c.Currency, nullMicros(c.Deadline),
		c.DiscoverySessionID, c.AssignedReviewer, nullMicros(c.ReviewStartedAt), c.ValidationNotes,
		c.RejectionReason, string(c.State), c.Version, micros(c.DiscoveredAt), micros(c.LastModifiedAt),
		c.LastModifiedBy,
	}
}

func nonNilMap(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}

func nonNilSlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

const contactColumns = `id, candidate_id, contact_type, authority, full_name, title, organization,
	email, phone, office_address, confidence, verified, verified_at, verified_by, notes,
	created_at, created_by`

func scanContact(row rowScanner) (domain.Contact, error) {
	var (
		ct          domain.Contact
		ctype, auth string
		verifiedAt  sql.NullInt64
		created     int64
	)
	err := row.Scan(&ct.ID, &ct.CandidateID, &ctype, &auth, &ct.FullName, &ct.Title, &ct.Organization,
		&ct.Email, &ct.Phone, &ct.OfficeAddress, &ct.Confidence, &ct.Verified, &verifiedAt, &ct.VerifiedBy,
		&ct.Notes, &created, &ct.CreatedBy)
	if err != nil {
		return ct, err
	}
	ct.Type = domain.ContactType(ctype)
	ct.Authority = domain.AuthorityLevel(auth)
	ct.VerifiedAt = timePtr(verifiedAt)
	ct.CreatedAt = fromMicros(created)
	return ct, nil
}

const auditColumns = `id, candidate_id, kind, actor, from_state, to_state, version, note, changes, at`

func scanAudit(row rowScanner) (domain.AuditEvent, error) {
	var (
		ev                   domain.AuditEvent
		kind, from, to, chgs string
		at                   int64
	)
	if err := row.Scan(&ev.ID, &ev.CandidateID, &kind, &ev.Actor, &from, &to, &ev.Version, &ev.Note, &chgs, &at); err != nil {
		return ev, err
	}
	if err := json.Unmarshal([]byte(chgs), &ev.Changes); err != nil {
		return ev, err
	}
	ev.Kind = domain.AuditKind(kind)
	ev.FromState = domain.State(from)
	ev.ToState = domain.State(to)
	ev.At = fromMicros(at)
	return ev, nil
}

const sessionColumns = `id, kind, requested_by, config, status, worker_id, created_at, started_at,
	finished_at, last_activity_at, candidates_found, duplicates_detected, error`

func scanSession(row rowScanner) (domain.Session, error) {
	var (
		s                 domain.Session
		kind, cfg, status string
		created, activity int64
		started, finished sql.NullInt64
	)
	err := row.Scan(&s.ID, &kind, &s.RequestedBy, &cfg, &status, &s.WorkerID, &created, &started,
		&finished, &activity, &s.CandidatesFound, &s.DuplicatesDetected, &s.Error)
	if err != nil {
		return s, err
	}
	if err := json.Unmarshal([]byte(cfg), &s.Config); err != nil {
		return s, err
	}
	s.Kind = domain.SessionKind(kind)
	s.Status = domain.SessionStatus(status)
	s.CreatedAt = fromMicros(created)
	s.StartedAt = timePtr(started)
	s.FinishedAt = timePtr(finished)
	s.LastActivityAt = fromMicros(activity)
	return s, nil
}
