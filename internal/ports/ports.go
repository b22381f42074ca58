package ports

import (
	"context"

	"northstar/internal/domain"
)

// Candidates is the read side plus operator edits.
type Candidates interface {
	List(ctx context.Context, filter domain.CandidateFilter, page domain.PageRequest) (domain.CandidatePage, error)
	Get(ctx context.Context, id string) (domain.Candidate, []domain.Contact, error)
	Update(ctx context.Context, id string, expectedVersion int64, actor string, patch domain.CandidatePatch) (domain.Candidate, error)
	Contacts(ctx context.Context, id string) ([]domain.Contact, error)
	AddContact(ctx context.Context, id, actor string, contact domain.Contact) (domain.Contact, domain.Candidate, error)
	History(ctx context.Context, id string) ([]domain.AuditEvent, error)
}

// TransitionRequest asks the lifecycle engine to move a candidate.
type TransitionRequest struct {
	CandidateID     string
	ExpectedVersion int64
	Target          domain.State
	Actor           string
	Reason          string
}

// Lifecycle enforces the candidate state machine.
type Lifecycle interface {
	ApplyTransition(ctx context.Context, req TransitionRequest) (domain.Candidate, error)
}

// Discovery orchestrates asynchronous discovery sessions.
type Discovery interface {
	Trigger(ctx context.Context, cfg domain.SessionConfig, requestedBy string, kind domain.SessionKind) (domain.Session, error)
	Get(ctx context.Context, id string) (domain.Session, error)
	List(ctx context.Context, filter domain.SessionFilter) ([]domain.Session, error)
	Cancel(ctx context.Context, id string) (domain.Session, error)
	Claim(ctx context.Context, workerID string) (domain.Session, bool, error)
	ReportResult(ctx context.Context, id string, found []domain.DiscoveredCandidate) (domain.IngestSummary, error)
	ReportCompletion(ctx context.Context, id string, status domain.SessionStatus, errDetail string) (domain.Session, error)
}

// OutcomeListener receives approve/reject decisions, e.g. a downstream export.
type OutcomeListener interface {
	Notify(ctx context.Context, o domain.Outcome) error
}

// OutcomePublisher hands outcomes off without blocking the caller.
type OutcomePublisher interface {
	Publish(o domain.Outcome)
}
