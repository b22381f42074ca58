package lifecycle_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"northstar/internal/adapters/sqlite"
	"northstar/internal/domain"
	"northstar/internal/ports"
	"northstar/internal/services/lifecycle"
)

type recorder struct {
	mu       sync.Mutex
	outcomes []domain.Outcome
}

func (r *recorder) Publish(o domain.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, o)
}

func (r *recorder) all() []domain.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Outcome(nil), r.outcomes...)
}

func setup(t *testing.T) (*sqlite.DB, *lifecycle.Service, *recorder) {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "northstar.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate(ctx))
	rec := &recorder{}
	return db, lifecycle.New(db, rec, nil), rec
}

// candidateIn stores a candidate and forces it into state, optionally with a
// verified contact.
func candidateIn(t *testing.T, db *sqlite.DB, state domain.State, verified bool) domain.Candidate {
	t.Helper()
	ctx := context.Background()
	c, err := db.CreateCandidate(ctx, domain.Candidate{
		Name:       "Community Health Grant " + string(state),
		Source:     "hrsa.gov",
		NaturalKey: "hrsa-" + string(state) + "-" + strings.ToLower(t.Name()),
	}, nil, domain.AuditEvent{Actor: "seed"})
	require.NoError(t, err)
	if state == domain.StateDiscovered && !verified {
		return c
	}
	c, err = db.CompareAndUpdate(ctx, c.ID, c.Version, func(cur domain.Candidate) (ports.Change, error) {
		cur.State = state
		ch := ports.Change{Candidate: cur, Event: domain.AuditEvent{Kind: domain.AuditTransition, Actor: "seed"}}
		if verified {
			ch.Contacts = []domain.Contact{{FullName: "Sam Ortiz", Email: "sam@hrsa.gov", Verified: true}}
		}
		return ch, nil
	})
	require.NoError(t, err)
	return c
}

func TestTransitionTable(t *testing.T) {
	allowed := map[[2]domain.State]bool{
		{domain.StateDiscovered, domain.StateEnhancing}: true,
		{domain.StateEnhancing, domain.StateEnhanced}:   true,
		{domain.StateEnhanced, domain.StateEnhancing}:   true,
		{domain.StateEnhanced, domain.StateApproved}:    true,
		{domain.StateEnhanced, domain.StateRejected}:    true,
	}
	for _, from := range domain.States() {
		for _, to := range domain.States() {
			from, to := from, to
			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				db, svc, _ := setup(t)
				c := candidateIn(t, db, from, true)
				next, err := svc.ApplyTransition(context.Background(), ports.TransitionRequest{
					CandidateID:     c.ID,
					ExpectedVersion: c.Version,
					Target:          to,
					Actor:           "maria",
					Reason:          "not a fit",
				})
				if allowed[[2]domain.State{from, to}] {
					require.NoError(t, err)
					assert.Equal(t, to, next.State)
					assert.Equal(t, c.Version+1, next.Version)
					return
				}
				assert.ErrorIs(t, err, domain.ErrInvalidTransition)
				got, err := db.GetCandidate(context.Background(), c.ID)
				require.NoError(t, err)
				assert.Equal(t, c.Version, got.Version)
			})
		}
	}
}

func TestEnteringEnhancingAssignsReviewer(t *testing.T) {
	db, svc, _ := setup(t)
	c := candidateIn(t, db, domain.StateDiscovered, false)

	next, err := svc.ApplyTransition(context.Background(), ports.TransitionRequest{
		CandidateID: c.ID, ExpectedVersion: 1, Target: domain.StateEnhancing, Actor: "maria",
	})
	require.NoError(t, err)
	assert.Equal(t, "maria", next.AssignedReviewer)
	require.NotNil(t, next.ReviewStartedAt)
	assert.Equal(t, "maria", next.LastModifiedBy)

	events, err := db.ListAuditEvents(context.Background(), c.ID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	last := events[1]
	assert.Equal(t, domain.AuditTransition, last.Kind)
	assert.Equal(t, domain.StateDiscovered, last.FromState)
	assert.Equal(t, domain.StateEnhancing, last.ToState)
	assert.Equal(t, int64(2), last.Version)
}

func TestRejectRequiresReason(t *testing.T) {
	db, svc, rec := setup(t)
	ctx := context.Background()
	c := candidateIn(t, db, domain.StateEnhanced, false)
	before, err := db.ListAuditEvents(ctx, c.ID)
	require.NoError(t, err)

	for _, reason := range []string{"", "   ", strings.Repeat("x", domain.MaxReasonLength+1)} {
		_, err := svc.ApplyTransition(ctx, ports.TransitionRequest{
			CandidateID: c.ID, ExpectedVersion: c.Version, Target: domain.StateRejected, Actor: "maria", Reason: reason,
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
		events, err := db.ListAuditEvents(ctx, c.ID)
		require.NoError(t, err)
		assert.Len(t, events, len(before), "failed reject must not be audited")
	}
	unchanged, err := db.GetCandidate(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.Version, unchanged.Version)

	next, err := svc.ApplyTransition(ctx, ports.TransitionRequest{
		CandidateID: c.ID, ExpectedVersion: c.Version, Target: domain.StateRejected, Actor: "maria", Reason: "Outside mission scope",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StateRejected, next.State)
	assert.Equal(t, "Outside mission scope", next.RejectionReason)

	events, err := db.ListAuditEvents(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, events, len(before)+1)
	last := events[len(events)-1]
	assert.Equal(t, domain.AuditTransition, last.Kind)
	assert.Equal(t, domain.StateRejected, last.ToState)
	assert.Equal(t, "Outside mission scope", last.Note)

	outcomes := rec.all()
	require.Len(t, outcomes, 1)
	assert.Equal(t, domain.StateRejected, outcomes[0].State)
	assert.Equal(t, "Outside mission scope", outcomes[0].Reason)
	assert.Equal(t, next.Version, outcomes[0].Version)
}

func TestApproveRequiresVerifiedContact(t *testing.T) {
	db, svc, rec := setup(t)
	ctx := context.Background()

	bare := candidateIn(t, db, domain.StateEnhanced, false)
	_, err := svc.ApplyTransition(ctx, ports.TransitionRequest{
		CandidateID: bare.ID, ExpectedVersion: bare.Version, Target: domain.StateApproved, Actor: "maria",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, rec.all())

	ready := candidateIn(t, db, domain.StateEnhanced, true)
	next, err := svc.ApplyTransition(ctx, ports.TransitionRequest{
		CandidateID: ready.ID, ExpectedVersion: ready.Version, Target: domain.StateApproved, Actor: "maria",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StateApproved, next.State)
	require.Len(t, rec.all(), 1)

	_, err = svc.ApplyTransition(ctx, ports.TransitionRequest{
		CandidateID: ready.ID, ExpectedVersion: next.Version, Target: domain.StateEnhancing, Actor: "maria",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestRequestValidation(t *testing.T) {
	db, svc, _ := setup(t)
	c := candidateIn(t, db, domain.StateDiscovered, false)
	cases := map[string]ports.TransitionRequest{
		"empty actor":    {CandidateID: c.ID, ExpectedVersion: 1, Target: domain.StateEnhancing},
		"zero version":   {CandidateID: c.ID, ExpectedVersion: 0, Target: domain.StateEnhancing, Actor: "a"},
		"unknown target": {CandidateID: c.ID, ExpectedVersion: 1, Target: "archived", Actor: "a"},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ApplyTransition(context.Background(), req)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	_, err := svc.ApplyTransition(context.Background(), ports.TransitionRequest{
		CandidateID: "00000000-0000-0000-0000-000000000000", ExpectedVersion: 1, Target: domain.StateEnhancing, Actor: "a",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConcurrentDecisionsOneWins(t *testing.T) {
	db, svc, rec := setup(t)
	c := candidateIn(t, db, domain.StateEnhanced, true)

	targets := []struct {
		state  domain.State
		reason string
	}{
		{domain.StateApproved, ""},
		{domain.StateRejected, "Duplicate of an existing award"},
		{domain.StateEnhancing, ""},
		{domain.StateApproved, ""},
	}
	var wg sync.WaitGroup
	errs := make([]error, len(targets))
	for i, tg := range targets {
		wg.Add(1)
		go func(i int, state domain.State, reason string) {
			defer wg.Done()
			_, errs[i] = svc.ApplyTransition(context.Background(), ports.TransitionRequest{
				CandidateID: c.ID, ExpectedVersion: c.Version, Target: state, Actor: "reviewer", Reason: reason,
			})
		}(i, tg.state, tg.reason)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
			continue
		}
		assert.True(t, errors.Is(err, domain.ErrVersionConflict), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, wins)

	got, err := db.GetCandidate(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.Version+1, got.Version)
	assert.LessOrEqual(t, len(rec.all()), 1)
}

func TestStaleVersionIsConflict(t *testing.T) {
	db, svc, _ := setup(t)
	c := candidateIn(t, db, domain.StateEnhanced, true)
	_, err := svc.ApplyTransition(context.Background(), ports.TransitionRequest{
		CandidateID: c.ID, ExpectedVersion: c.Version - 1, Target: domain.StateApproved, Actor: "maria",
	})
	var ce *domain.ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, c.Version, ce.Actual)
}
