// Package lifecycle moves candidates through the review state machine.
package lifecycle

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"northstar/internal/domain"
	"northstar/internal/ports"
)

// Store is the slice of the record store the engine needs.
type Store interface {
	ports.CandidateRepository
	ports.ContactRepository
}

type Service struct {
	store    Store
	outcomes ports.OutcomePublisher
	log      *zap.Logger
}

// New builds the engine. outcomes may be nil when nobody listens for
// approve/reject decisions.
func New(store Store, outcomes ports.OutcomePublisher, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, outcomes: outcomes, log: log}
}

var _ ports.Lifecycle = (*Service)(nil)

// ApplyTransition moves a candidate to req.Target if the edge is allowed,
// the caller saw the latest version and the target's requirements hold.
// The state change and its audit event commit together.
func (s *Service) ApplyTransition(ctx context.Context, req ports.TransitionRequest) (domain.Candidate, error) {
	actor := strings.TrimSpace(req.Actor)
	reason := strings.TrimSpace(req.Reason)
	if actor == "" {
		return domain.Candidate{}, domain.Invalid("actor", "is required")
	}
	if req.ExpectedVersion < 1 {
		return domain.Candidate{}, domain.Invalid("expectedVersion", "must be at least 1")
	}
	if !req.Target.Valid() {
		return domain.Candidate{}, domain.Invalid("targetState", "unknown lifecycle state")
	}
	if utf8.RuneCountInString(reason) > domain.MaxReasonLength {
		return domain.Candidate{}, domain.Invalid("reason", "must be at most 500 characters")
	}
	if req.Target == domain.StateRejected && reason == "" {
		return domain.Candidate{}, domain.Invalid("reason", "a rejection reason is required")
	}

	cur, err := s.store.GetCandidate(ctx, req.CandidateID)
	if err != nil {
		return domain.Candidate{}, err
	}
	if cur.Version != req.ExpectedVersion {
		return domain.Candidate{}, &domain.ConflictError{ID: cur.ID, Expected: req.ExpectedVersion, Actual: cur.Version}
	}
	if err := domain.ValidateTransition(cur.State, req.Target); err != nil {
		return domain.Candidate{}, err
	}
	// Contacts only grow and every addition bumps the version, so a check made
	// at ExpectedVersion stays true if the update below succeeds.
	if req.Target == domain.StateApproved {
		if err := s.checkApprovable(ctx, cur); err != nil {
			return domain.Candidate{}, err
		}
	}

	next, err := s.store.CompareAndUpdate(ctx, req.CandidateID, req.ExpectedVersion, func(current domain.Candidate) (ports.Change, error) {
		if err := domain.ValidateTransition(current.State, req.Target); err != nil {
			return ports.Change{}, err
		}
		n := current
		n.State = req.Target
		switch req.Target {
		case domain.StateEnhancing:
			now := domain.Now()
			n.AssignedReviewer = actor
			n.ReviewStartedAt = &now
		case domain.StateRejected:
			n.RejectionReason = reason
		}
		return ports.Change{
			Candidate: n,
			Event:     domain.AuditEvent{Kind: domain.AuditTransition, Actor: actor, Note: reason},
		}, nil
	})
	if err != nil {
		return domain.Candidate{}, err
	}

	s.log.Info("candidate transitioned",
		zap.String("candidate", next.ID),
		zap.String("from", string(cur.State)),
		zap.String("to", string(next.State)),
		zap.Int64("version", next.Version),
		zap.String("actor", actor))

	if next.Terminal() && s.outcomes != nil {
		s.outcomes.Publish(domain.Outcome{
			CandidateID: next.ID,
			Name:        next.Name,
			Source:      next.Source,
			State:       next.State,
			Actor:       actor,
			Reason:      reason,
			Version:     next.Version,
			DecidedAt:   next.LastModifiedAt,
		})
	}
	return next, nil
}

func (s *Service) checkApprovable(ctx context.Context, c domain.Candidate) error {
	contacts, err := s.store.ListContacts(ctx, c.ID)
	if err != nil {
		return err
	}
	for _, ct := range contacts {
		if ct.Verified {
			return nil
		}
	}
	return domain.Invalid("contacts", "approval requires at least one verified contact")
}
