package scheduler_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"northstar/internal/adapters/sqlite"
	"northstar/internal/domain"
	"northstar/internal/services/discovery"
	"northstar/internal/workers/scheduler"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func setup(t *testing.T) (*sqlite.DB, *discovery.Service) {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "northstar.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate(ctx))
	return db, discovery.New(db, nil, 1)
}

// A Wednesday.
var wednesday = time.Date(2026, 10, 14, 2, 0, 0, 0, time.UTC)

func TestRunOnceQueuesJobsDueToday(t *testing.T) {
	db, svc := setup(t)
	ctx := context.Background()
	s := scheduler.New(svc, []scheduler.Job{
		{Config: domain.SessionConfig{Source: "https://www.grants.gov", Queries: []string{"rural broadband"}}},
		{Config: domain.SessionConfig{Source: "nsf.gov"}, Days: []time.Weekday{time.Wednesday, time.Saturday}},
		{Config: domain.SessionConfig{Source: "arts.gov"}, Days: []time.Weekday{time.Monday}},
	}, time.Hour, nil)
	s.SetClock(func() time.Time { return wednesday })

	queued, err := s.RunOnce(ctx)
	require.NoError(t, err)
	require.Len(t, queued, 2)
	assert.Equal(t, "grants.gov", queued[0].Config.Source)
	assert.Equal(t, "nsf.gov", queued[1].Config.Source)

	sessions, err := db.ListSessions(ctx, domain.SessionFilter{Status: domain.SessionQueued})
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	for _, sess := range sessions {
		assert.Equal(t, domain.SessionScheduled, sess.Kind)
		assert.Equal(t, scheduler.RequestedBy, sess.RequestedBy)
	}
}

type flakyTrigger struct {
	mu    sync.Mutex
	calls []string
}

func (f *flakyTrigger) Trigger(_ context.Context, cfg domain.SessionConfig, requestedBy string, kind domain.SessionKind) (domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, cfg.Source)
	if cfg.Source == "down.example.org" {
		return domain.Session{}, errors.New("store unavailable")
	}
	return domain.Session{ID: cfg.Source, Kind: kind, RequestedBy: requestedBy, Config: cfg}, nil
}

func (f *flakyTrigger) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func TestRunOnceKeepsGoingAfterAFailure(t *testing.T) {
	trig := &flakyTrigger{}
	s := scheduler.New(trig, []scheduler.Job{
		{Config: domain.SessionConfig{Source: "down.example.org"}},
		{Config: domain.SessionConfig{Source: "hrsa.gov"}},
	}, time.Hour, nil)

	queued, err := s.RunOnce(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "down.example.org")
	require.Len(t, queued, 1)
	assert.Equal(t, "hrsa.gov", queued[0].Config.Source)
	assert.Equal(t, []string{"down.example.org", "hrsa.gov"}, trig.calls)
}

func TestRunTriggersUntilCancelled(t *testing.T) {
	trig := &flakyTrigger{}
	s := scheduler.New(trig, []scheduler.Job{{Config: domain.SessionConfig{Source: "nih.gov"}}}, 10*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Run(ctx)
	}()

	require.Eventually(t, func() bool { return trig.count() >= 2 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after cancellation")
	}
}
