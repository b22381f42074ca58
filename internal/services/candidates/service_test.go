package candidates_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"northstar/internal/adapters/sqlite"
	"northstar/internal/domain"
	"northstar/internal/ports"
	"northstar/internal/services/candidates"
)

func setup(t *testing.T) (*sqlite.DB, *candidates.Service) {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "northstar.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate(ctx))
	return db, candidates.New(db, nil)
}

func seed(t *testing.T, db *sqlite.DB, name, key string) domain.Candidate {
	t.Helper()
	c, err := db.CreateCandidate(context.Background(), domain.Candidate{
		Name:       name,
		Source:     "nsf.gov",
		NaturalKey: key,
		Tags:       []string{"stem"},
	}, nil, domain.AuditEvent{Actor: "seed"})
	require.NoError(t, err)
	return c
}

func str(s string) *string { return &s }

func num(v float64) *float64 { return &v }

func tags(v ...string) *[]string { return &v }

func TestUpdateRecordsFieldChanges(t *testing.T) {
	db, svc := setup(t)
	ctx := context.Background()
	c := seed(t, db, "Graduate Research Fellowship", "grfp")

	next, err := svc.Update(ctx, c.ID, 1, "maria", domain.CandidatePatch{
		Description: str("Three years of support for graduate students"),
		FundingMax:  num(159000),
		Tags:        tags("STEM", "graduate", "stem"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.Version)
	assert.Equal(t, []string{"stem", "graduate"}, next.Tags)
	require.NotNil(t, next.FundingMax)
	assert.Equal(t, 159000.0, *next.FundingMax)

	events, err := svc.History(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	ev := events[1]
	assert.Equal(t, domain.AuditUpdated, ev.Kind)
	assert.Equal(t, "maria", ev.Actor)
	fields := make([]string, 0, len(ev.Changes))
	for _, ch := range ev.Changes {
		fields = append(fields, ch.Field)
	}
	assert.ElementsMatch(t, []string{"description", "fundingMax", "tags"}, fields)
}

func TestUpdateNoOpKeepsVersion(t *testing.T) {
	db, svc := setup(t)
	c := seed(t, db, "Same Name", "same")
	got, err := svc.Update(context.Background(), c.ID, 1, "maria", domain.CandidatePatch{Name: str("Same Name")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Version)

	events, err := svc.History(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestRepeatedDeadlinePatchIsNoOp(t *testing.T) {
	db, svc := setup(t)
	ctx := context.Background()
	c := seed(t, db, "Antarctic Research", "antarctic")
	deadline := time.Date(2026, 11, 30, 17, 0, 0, 123456789, time.FixedZone("EST", -5*3600))

	version := c.Version
	for i := 0; i < 3; i++ {
		next, err := svc.Update(ctx, c.ID, version, "maria", domain.CandidatePatch{Deadline: &deadline})
		require.NoError(t, err)
		version = next.Version
		require.NotNil(t, next.Deadline)
		assert.True(t, next.Deadline.Equal(deadline.Truncate(time.Microsecond)))
	}
	assert.Equal(t, int64(2), version)

	events, err := svc.History(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestUpdateValidation(t *testing.T) {
	db, svc := setup(t)
	ctx := context.Background()
	c := seed(t, db, "Grant", "g")

	cases := map[string]domain.CandidatePatch{
		"empty patch":     {},
		"blank name":      {Name: str("  ")},
		"bad url":         {SourceURL: str("ftp://example.org")},
		"bad currency":    {Currency: str("usd")},
		"negative amount": {FundingMin: num(-1)},
		"min above max":   {FundingMin: num(10), FundingMax: num(5)},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Update(ctx, c.ID, 1, "maria", p)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	_, err := svc.Update(ctx, c.ID, 1, "", domain.CandidatePatch{Name: str("x")})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Update(ctx, c.ID, 7, "maria", domain.CandidatePatch{Name: str("x")})
	assert.ErrorIs(t, err, domain.ErrVersionConflict)
}

func TestUpdateTerminalIsReadOnly(t *testing.T) {
	db, svc := setup(t)
	ctx := context.Background()
	c := seed(t, db, "Closed Grant", "closed")
	c, err := db.CompareAndUpdate(ctx, c.ID, 1, func(cur domain.Candidate) (ports.Change, error) {
		cur.State = domain.StateRejected
		cur.RejectionReason = "expired"
		return ports.Change{Candidate: cur, Event: domain.AuditEvent{Kind: domain.AuditTransition, Actor: "seed"}}, nil
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, c.ID, c.Version, "maria", domain.CandidatePatch{Name: str("Reopened")})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, _, err = svc.AddContact(ctx, c.ID, "maria", domain.Contact{FullName: "A B", Email: "ab@example.org"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAddContact(t *testing.T) {
	db, svc := setup(t)
	ctx := context.Background()
	c := seed(t, db, "Ocean Science Award", "ocean")

	ct, next, err := svc.AddContact(ctx, c.ID, "maria", domain.Contact{
		Type:         domain.ContactProgramOfficer,
		Authority:    domain.AuthorityDecisionMaker,
		FullName:     "Priya Natarajan",
		Organization: "NSF OCE",
		Email:        "pnatarajan@nsf.gov",
		Confidence:   0.9,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.Version)
	assert.True(t, ct.Verified)
	assert.Equal(t, "maria", ct.VerifiedBy)
	assert.Equal(t, c.ID, ct.CandidateID)

	_, contacts, err := svc.Get(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, ct.ID, contacts[0].ID)
	assert.True(t, contacts[0].Verified)

	events, err := svc.History(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.AuditContactAdded, events[1].Kind)

	t.Run("invalid contacts", func(t *testing.T) {
		bad := map[string]domain.Contact{
			"no channel":   {FullName: "No Way"},
			"no name":      {Email: "x@example.org"},
			"bad email":    {FullName: "X", Email: "not-an-email"},
			"confidence":   {FullName: "X", Phone: "555", Confidence: 1.5},
			"unknown type": {FullName: "X", Phone: "555", Type: "astronaut"},
		}
		for name, ct := range bad {
			t.Run(name, func(t *testing.T) {
				_, _, err := svc.AddContact(ctx, c.ID, "maria", ct)
				assert.ErrorIs(t, err, domain.ErrValidation)
			})
		}
	})
}

func TestListAndLookups(t *testing.T) {
	db, svc := setup(t)
	ctx := context.Background()
	seed(t, db, "Alpha", "a")
	seed(t, db, "Beta", "b")

	page, err := svc.List(ctx, domain.CandidateFilter{Source: " NSF.gov "}, domain.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)

	_, err = svc.List(ctx, domain.CandidateFilter{States: []domain.State{"archived"}}, domain.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.List(ctx, domain.CandidateFilter{}, domain.PageRequest{Sort: "rank"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	missing := "4d7f1c52-2c3e-4a51-9a55-0d1bb8a5e0a1"
	_, _, err = svc.Get(ctx, missing)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.Contacts(ctx, missing)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.History(ctx, missing)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
