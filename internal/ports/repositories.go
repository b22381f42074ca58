package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"northstar/internal/domain"
)

// Change is what a Mutation wants committed. The store stamps version,
// timestamps and ids; the audit event and contacts are written in the same
// transaction as the candidate.
type Change struct {
	Candidate domain.Candidate
	Event     domain.AuditEvent
	Contacts  []domain.Contact
}

// Mutation derives the next state of a candidate from its current state.
type Mutation func(current domain.Candidate) (Change, error)

// CandidateRepository is the candidate half of the record store.
// CompareAndUpdate is the only way to change a stored candidate.
type CandidateRepository interface {
	GetCandidate(ctx context.Context, id string) (domain.Candidate, error)
	FindCandidateByNaturalKey(ctx context.Context, source, naturalKey string) (domain.Candidate, error)
	ListCandidates(ctx context.Context, filter domain.CandidateFilter, page domain.PageRequest) (domain.CandidatePage, error)
	CreateCandidate(ctx context.Context, c domain.Candidate, contacts []domain.Contact, ev domain.AuditEvent) (domain.Candidate, error)
	CompareAndUpdate(ctx context.Context, id string, expectedVersion int64, mutate Mutation) (domain.Candidate, error)
}

// ContactRepository reads contact intelligence. Writes go through Change.
type ContactRepository interface {
	ListContacts(ctx context.Context, candidateID string) ([]domain.Contact, error)
}

// AuditRepository reads the append-only audit trail.
type AuditRepository interface {
	ListAuditEvents(ctx context.Context, candidateID string) ([]domain.AuditEvent, error)
}

// RecordStore is the single source of truth shared by every component.
type RecordStore interface {
	CandidateRepository
	ContactRepository
	AuditRepository
	SessionRepository
	Ping(ctx context.Context) error
	Close() error
}

// Seal fixes the bookkeeping fields of a change made against current: the
// identity and natural key cannot change, the version moves up by exactly
// one and the audit event records the version it produced.
func (c *Change) Seal(current domain.Candidate, now time.Time) {
	next := &c.Candidate
	next.ID = current.ID
	next.Source = current.Source
	next.NaturalKey = current.NaturalKey
	next.DiscoveredAt = current.DiscoveredAt
	next.Version = current.Version + 1
	next.LastModifiedAt = now
	if c.Event.Actor != "" {
		next.LastModifiedBy = c.Event.Actor
	}

	ev := &c.Event
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	ev.CandidateID = current.ID
	ev.Version = next.Version
	ev.At = now
	if ev.FromState == "" {
		ev.FromState = current.State
	}
	if ev.ToState == "" {
		ev.ToState = next.State
	}
	sealContacts(c.Contacts, current.ID, ev.Actor, now)
}

// SealNew prepares a brand new candidate, its initial contacts and its
// creation event.
func SealNew(c *domain.Candidate, contacts []domain.Contact, ev *domain.AuditEvent, now time.Time) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.State == "" {
		c.State = domain.StateDiscovered
	}
	c.Version = 1
	if c.DiscoveredAt.IsZero() {
		c.DiscoveredAt = now
	}
	c.LastModifiedAt = now
	if ev.Actor != "" {
		c.LastModifiedBy = ev.Actor
	}
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.Kind == "" {
		ev.Kind = domain.AuditCreated
	}
	ev.CandidateID = c.ID
	ev.ToState = c.State
	ev.Version = 1
	ev.At = now
	sealContacts(contacts, c.ID, ev.Actor, now)
}

func sealContacts(contacts []domain.Contact, candidateID, actor string, now time.Time) {
	for i := range contacts {
		ct := &contacts[i]
		if ct.ID == "" {
			ct.ID = uuid.NewString()
		}
		ct.CandidateID = candidateID
		if ct.CreatedAt.IsZero() {
			ct.CreatedAt = now
		}
		if ct.CreatedBy == "" {
			ct.CreatedBy = actor
		}
	}
}
