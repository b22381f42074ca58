package postgres_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"northstar/internal/adapters/postgres"
	"northstar/internal/domain"
	"northstar/internal/ports"
)

// openStore connects to the database named by NORTHSTAR_TEST_DATABASE_URL.
// Rows are keyed by fresh uuids so runs can share one database.
func openStore(t *testing.T) *postgres.DB {
	t.Helper()
	url := os.Getenv("NORTHSTAR_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("NORTHSTAR_TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	db, err := postgres.Connect(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate(ctx))
	return db
}

func seed(t *testing.T, db *postgres.DB) domain.Candidate {
	t.Helper()
	c, err := db.CreateCandidate(context.Background(), domain.Candidate{
		Name:       "Watershed Restoration Grant",
		Source:     "epa.gov",
		NaturalKey: uuid.NewString(),
		Tags:       []string{"water"},
	}, []domain.Contact{{FullName: "Ana Ruiz", Email: "ruiz.ana@epa.gov"}}, domain.AuditEvent{Actor: "seed"})
	require.NoError(t, err)
	return c
}

func TestCandidateRoundTrip(t *testing.T) {
	db := openStore(t)
	ctx := context.Background()
	c := seed(t, db)

	got, err := db.GetCandidate(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.Name, got.Name)
	assert.Equal(t, int64(1), got.Version)
	assert.Equal(t, domain.StateDiscovered, got.State)

	byKey, err := db.FindCandidateByNaturalKey(ctx, "epa.gov", c.NaturalKey)
	require.NoError(t, err)
	assert.Equal(t, c.ID, byKey.ID)

	contacts, err := db.ListContacts(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, contacts, 1)

	_, err = db.GetCandidate(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = db.CreateCandidate(ctx, domain.Candidate{Name: "Again", Source: "epa.gov", NaturalKey: c.NaturalKey}, nil, domain.AuditEvent{Actor: "seed"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCompareAndUpdate(t *testing.T) {
	db := openStore(t)
	ctx := context.Background()
	c := seed(t, db)

	next, err := db.CompareAndUpdate(ctx, c.ID, 1, func(cur domain.Candidate) (ports.Change, error) {
		cur.State = domain.StateEnhancing
		cur.AssignedReviewer = "maria"
		return ports.Change{Candidate: cur, Event: domain.AuditEvent{Kind: domain.AuditTransition, Actor: "maria"}}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.Version)

	_, err = db.CompareAndUpdate(ctx, c.ID, 1, func(cur domain.Candidate) (ports.Change, error) {
		return ports.Change{Candidate: cur}, nil
	})
	var ce *domain.ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, int64(2), ce.Actual)

	events, err := db.ListAuditEvents(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.StateEnhancing, events[1].ToState)
}

func TestConcurrentWritersOneWins(t *testing.T) {
	db := openStore(t)
	c := seed(t, db)

	const writers = 8
	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = db.CompareAndUpdate(context.Background(), c.ID, 1, func(cur domain.Candidate) (ports.Change, error) {
				cur.ValidationNotes = uuid.NewString()
				return ports.Change{Candidate: cur, Event: domain.AuditEvent{Kind: domain.AuditUpdated, Actor: "w"}}, nil
			})
		}(i)
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
}

func TestSessions(t *testing.T) {
	db := openStore(t)
	ctx := context.Background()
	now := domain.Now()
	s, err := db.CreateSession(ctx, domain.Session{
		ID:             uuid.NewString(),
		Kind:           domain.SessionManual,
		RequestedBy:    "maria",
		Config:         domain.SessionConfig{Source: "epa.gov", Queries: []string{"watershed"}},
		Status:         domain.SessionQueued,
		CreatedAt:      now,
		LastActivityAt: now,
	})
	require.NoError(t, err)

	got, err := db.GetSession(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"watershed"}, got.Config.Queries)

	boom := errors.New("boom")
	_, err = db.UpdateSession(ctx, s.ID, func(cur *domain.Session) error {
		cur.Status = domain.SessionRunning
		return boom
	})
	assert.ErrorIs(t, err, boom)
	got, err = db.GetSession(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionQueued, got.Status)

	updated, err := db.UpdateSession(ctx, s.ID, func(cur *domain.Session) error {
		cur.CandidatesFound = 3
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.CandidatesFound)

	_, err = db.GetSession(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
