package sqlite_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"northstar/internal/adapters/sqlite"
	"northstar/internal/domain"
	"northstar/internal/ports"
)

func openStore(t *testing.T) *sqlite.DB {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "northstar.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate(ctx))
	return db
}

func f64(v float64) *float64 { return &v }

func seed(t *testing.T, db *sqlite.DB, name, key string) domain.Candidate {
	t.Helper()
	c, err := db.CreateCandidate(context.Background(), domain.Candidate{
		Name:       name,
		Source:     "grants.gov",
		NaturalKey: key,
		Metadata:   map[string]string{},
		Tags:       []string{},
	}, nil, domain.AuditEvent{Actor: "test"})
	require.NoError(t, err)
	return c
}

func TestMigrationStatus(t *testing.T) {
	db := openStore(t)
	statuses, err := db.MigrationStatus(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, statuses)
	for _, s := range statuses {
		assert.Equal(t, "applied", string(s.State))
	}
}

func TestCandidateRoundTrip(t *testing.T) {
	db := openStore(t)
	ctx := context.Background()
	deadline := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	in := domain.Candidate{
		Name:        "Rural Broadband Grant",
		ProgramName: "ReConnect",
		Description: "Loans and grants for broadband in rural areas",
		Source:      "grants.gov",
		NaturalKey:  "USDA-RUS-2026-01",
		SourceURL:   "https://www.grants.gov/view/USDA-RUS-2026-01",
		Metadata:    map[string]string{"agency": "USDA"},
		Tags:        []string{"broadband", "rural"},
		Confidence:  0.82,
		FundingMin:  f64(100000),
		FundingMax:  f64(25000000),
		Currency:    "USD",
		Deadline:    &deadline,
	}
	contacts := []domain.Contact{{
		Type:       domain.ContactProgramOfficer,
		Authority:  domain.AuthorityDecisionMaker,
		FullName:   "Dana Reyes",
		Email:      "dana.reyes@usda.gov",
		Confidence: 0.7,
	}}
	created, err := db.CreateCandidate(ctx, in, contacts, domain.AuditEvent{Actor: "discovery"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.Version)
	assert.Equal(t, domain.StateDiscovered, created.State)
	assert.NotEmpty(t, created.ID)

	got, err := db.GetCandidate(ctx, created.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(created, got); diff != "" {
		t.Fatalf("candidate mismatch (-created +got):\n%s", diff)
	}

	byKey, err := db.FindCandidateByNaturalKey(ctx, "grants.gov", "USDA-RUS-2026-01")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byKey.ID)

	gotContacts, err := db.ListContacts(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, gotContacts, 1)
	assert.Equal(t, created.ID, gotContacts[0].CandidateID)
	assert.Equal(t, "discovery", gotContacts[0].CreatedBy)
	assert.False(t, gotContacts[0].Verified)

	events, err := db.ListAuditEvents(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.AuditCreated, events[0].Kind)
	assert.Equal(t, int64(1), events[0].Version)
	assert.Equal(t, domain.StateDiscovered, events[0].ToState)
}

func TestGetCandidateNotFound(t *testing.T) {
	db := openStore(t)
	_, err := db.GetCandidate(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateCandidateDuplicateNaturalKey(t *testing.T) {
	db := openStore(t)
	seed(t, db, "A", "key-a")
	_, err := db.CreateCandidate(context.Background(), domain.Candidate{
		Name: "A again", Source: "grants.gov", NaturalKey: "key-a",
	}, nil, domain.AuditEvent{Actor: "test"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCompareAndUpdate(t *testing.T) {
	db := openStore(t)
	ctx := context.Background()
	c := seed(t, db, "Arts Fellowship", "arts-1")

	next, err := db.CompareAndUpdate(ctx, c.ID, 1, func(cur domain.Candidate) (ports.Change, error) {
		cur.State = domain.StateEnhancing
		cur.AssignedReviewer = "maria"
		return ports.Change{Candidate: cur, Event: domain.AuditEvent{Kind: domain.AuditTransition, Actor: "maria"}}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.Version)
	assert.Equal(t, "maria", next.LastModifiedBy)
	assert.Equal(t, c.DiscoveredAt, next.DiscoveredAt)

	t.Run("stale version conflicts", func(t *testing.T) {
		_, err := db.CompareAndUpdate(ctx, c.ID, 1, func(cur domain.Candidate) (ports.Change, error) {
			t.Fatal("mutation must not run on a stale version")
			return ports.Change{}, nil
		})
		var ce *domain.ConflictError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, int64(2), ce.Actual)
		assert.ErrorIs(t, err, domain.ErrVersionConflict)
	})

	t.Run("mutation error rolls back", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := db.CompareAndUpdate(ctx, c.ID, 2, func(cur domain.Candidate) (ports.Change, error) {
			return ports.Change{}, boom
		})
		assert.ErrorIs(t, err, boom)
		got, err := db.GetCandidate(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.Version)
	})

	t.Run("contacts are committed with the change", func(t *testing.T) {
		_, err := db.CompareAndUpdate(ctx, c.ID, 2, func(cur domain.Candidate) (ports.Change, error) {
			return ports.Change{
				Candidate: cur,
				Event:     domain.AuditEvent{Kind: domain.AuditContactAdded, Actor: "maria"},
				Contacts:  []domain.Contact{{FullName: "Lee Park", Phone: "+1 555 0100", Verified: true}},
			}, nil
		})
		require.NoError(t, err)
		contacts, err := db.ListContacts(ctx, c.ID)
		require.NoError(t, err)
		require.Len(t, contacts, 1)
		assert.Equal(t, "maria", contacts[0].CreatedBy)
	})

	events, err := db.ListAuditEvents(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, events, 3)
	for i, ev := range events {
		assert.Equal(t, int64(i+1), ev.Version)
	}
}

func TestCompareAndUpdateConcurrentWritersOneWins(t *testing.T) {
	db := openStore(t)
	ctx := context.Background()
	c := seed(t, db, "Science Prize", "sci-1")

	const writers = 8
	var wg sync.WaitGroup
	var mu sync.Mutex
	wins, conflicts := 0, 0
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := db.CompareAndUpdate(ctx, c.ID, 1, func(cur domain.Candidate) (ports.Change, error) {
				cur.ValidationNotes = fmt.Sprintf("writer %d", i)
				return ports.Change{Candidate: cur, Event: domain.AuditEvent{Kind: domain.AuditUpdated, Actor: "w"}}, nil
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errors.Is(err, domain.ErrVersionConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.Equal(t, writers-1, conflicts)
	got, err := db.GetCandidate(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Version)
	events, err := db.ListAuditEvents(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestListCandidatesFiltersAndPages(t *testing.T) {
	db := openStore(t)
	ctx := context.Background()
	names := []string{"delta fund", "Alpha Grant", "charlie award", "Bravo Prize", "echo bursary"}
	for i, n := range names {
		seed(t, db, n, fmt.Sprintf("k%d", i))
	}

	t.Run("insertion order across pages", func(t *testing.T) {
		var seen []string
		page := domain.PageRequest{Limit: 2}
		for {
			res, err := db.ListCandidates(ctx, domain.CandidateFilter{}, page)
			require.NoError(t, err)
			for _, c := range res.Items {
				seen = append(seen, c.Name)
			}
			if res.NextCursor == "" {
				break
			}
			cur, err := domain.DecodeCursor(res.NextCursor)
			require.NoError(t, err)
			page.Cursor = &cur
		}
		assert.Equal(t, names, seen)
	})

	t.Run("name order is case-insensitive", func(t *testing.T) {
		res, err := db.ListCandidates(ctx, domain.CandidateFilter{}, domain.PageRequest{Sort: domain.SortName, Limit: 3})
		require.NoError(t, err)
		require.Len(t, res.Items, 3)
		assert.Equal(t, "Alpha Grant", res.Items[0].Name)
		assert.Equal(t, "Bravo Prize", res.Items[1].Name)
		assert.Equal(t, "charlie award", res.Items[2].Name)

		cur, err := domain.DecodeCursor(res.NextCursor)
		require.NoError(t, err)
		res, err = db.ListCandidates(ctx, domain.CandidateFilter{}, domain.PageRequest{Sort: domain.SortName, Limit: 3, Cursor: &cur})
		require.NoError(t, err)
		require.Len(t, res.Items, 2)
		assert.Equal(t, "delta fund", res.Items[0].Name)
		assert.Empty(t, res.NextCursor)
	})

	t.Run("text search", func(t *testing.T) {
		res, err := db.ListCandidates(ctx, domain.CandidateFilter{Text: "GRANT"}, domain.PageRequest{})
		require.NoError(t, err)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "Alpha Grant", res.Items[0].Name)
	})

	t.Run("like wildcards are literal", func(t *testing.T) {
		res, err := db.ListCandidates(ctx, domain.CandidateFilter{Text: "%"}, domain.PageRequest{})
		require.NoError(t, err)
		assert.Empty(t, res.Items)
	})

	t.Run("state filter", func(t *testing.T) {
		res, err := db.ListCandidates(ctx, domain.CandidateFilter{States: []domain.State{domain.StateApproved}}, domain.PageRequest{})
		require.NoError(t, err)
		assert.Empty(t, res.Items)
		res, err = db.ListCandidates(ctx, domain.CandidateFilter{States: []domain.State{domain.StateDiscovered}}, domain.PageRequest{})
		require.NoError(t, err)
		assert.Len(t, res.Items, len(names))
	})

	t.Run("limit out of range", func(t *testing.T) {
		_, err := db.ListCandidates(ctx, domain.CandidateFilter{}, domain.PageRequest{Limit: domain.MaxPageSize + 1})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func newSession(status domain.SessionStatus, source string, lastActivity time.Time) domain.Session {
	return domain.Session{
		ID:             uuid.NewString(),
		Kind:           domain.SessionManual,
		RequestedBy:    "ops",
		Config:         domain.SessionConfig{Source: source, Queries: []string{"broadband"}},
		Status:         status,
		CreatedAt:      lastActivity,
		LastActivityAt: lastActivity,
	}
}

func TestSessions(t *testing.T) {
	db := openStore(t)
	ctx := context.Background()
	now := domain.Now()

	first, err := db.CreateSession(ctx, newSession(domain.SessionQueued, "grants.gov", now.Add(-2*time.Second)))
	require.NoError(t, err)
	second, err := db.CreateSession(ctx, newSession(domain.SessionQueued, "nsf.gov", now.Add(-time.Second)))
	require.NoError(t, err)

	got, err := db.GetSession(ctx, first.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(first, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("session mismatch (-want +got):\n%s", diff)
	}

	t.Run("list newest first with filters", func(t *testing.T) {
		all, err := db.ListSessions(ctx, domain.SessionFilter{})
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, second.ID, all[0].ID)

		bySource, err := db.ListSessions(ctx, domain.SessionFilter{Source: "grants.gov"})
		require.NoError(t, err)
		require.Len(t, bySource, 1)
		assert.Equal(t, first.ID, bySource[0].ID)
	})

	t.Run("claim takes the oldest queued", func(t *testing.T) {
		s, found, err := db.ClaimNextSession(ctx, "worker-1")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, first.ID, s.ID)
		assert.Equal(t, domain.SessionRunning, s.Status)
		assert.Equal(t, "worker-1", s.WorkerID)
		require.NotNil(t, s.StartedAt)

		s, found, err = db.ClaimNextSession(ctx, "worker-2")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, second.ID, s.ID)

		_, found, err = db.ClaimNextSession(ctx, "worker-3")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("update session error leaves row untouched", func(t *testing.T) {
		_, err := db.UpdateSession(ctx, first.ID, func(s *domain.Session) error {
			s.CandidatesFound = 99
			return domain.Invalid("x", "no")
		})
		require.Error(t, err)
		got, err := db.GetSession(ctx, first.ID)
		require.NoError(t, err)
		assert.Zero(t, got.CandidatesFound)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := db.UpdateSession(ctx, uuid.NewString(), func(*domain.Session) error { return nil })
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestFailStaleSessionsIsIdempotent(t *testing.T) {
	db := openStore(t)
	ctx := context.Background()
	now := domain.Now()

	stale, err := db.CreateSession(ctx, newSession(domain.SessionRunning, "grants.gov", now.Add(-time.Hour)))
	require.NoError(t, err)
	fresh, err := db.CreateSession(ctx, newSession(domain.SessionRunning, "grants.gov", now))
	require.NoError(t, err)
	queued, err := db.CreateSession(ctx, newSession(domain.SessionQueued, "grants.gov", now.Add(-time.Hour)))
	require.NoError(t, err)

	cutoff := now.Add(-30 * time.Minute)
	ids, err := db.FailStaleSessions(ctx, cutoff, domain.SessionErrTimeout)
	require.NoError(t, err)
	assert.Equal(t, []string{stale.ID}, ids)

	ids, err = db.FailStaleSessions(ctx, cutoff, domain.SessionErrTimeout)
	require.NoError(t, err)
	assert.Empty(t, ids)

	got, err := db.GetSession(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionFailed, got.Status)
	assert.Equal(t, domain.SessionErrTimeout, got.Error)
	assert.NotNil(t, got.FinishedAt)

	for _, id := range []string{fresh.ID, queued.ID} {
		got, err := db.GetSession(ctx, id)
		require.NoError(t, err)
		assert.False(t, got.Status.Terminal())
	}
}
