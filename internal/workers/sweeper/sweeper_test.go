package sweeper_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"northstar/internal/adapters/sqlite"
	"northstar/internal/domain"
	"northstar/internal/workers/sweeper"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func openStore(t *testing.T) *sqlite.DB {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "northstar.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate(ctx))
	return db
}

func runningSince(t *testing.T, db *sqlite.DB, at time.Time) domain.Session {
	t.Helper()
	s, err := db.CreateSession(context.Background(), domain.Session{
		ID:             uuid.NewString(),
		Kind:           domain.SessionManual,
		RequestedBy:    "ops",
		Config:         domain.SessionConfig{Source: "grants.gov"},
		Status:         domain.SessionRunning,
		WorkerID:       "worker-1",
		CreatedAt:      at,
		StartedAt:      &at,
		LastActivityAt: at,
	})
	require.NoError(t, err)
	return s
}

func TestSweepOnceFailsOnlyStaleSessions(t *testing.T) {
	db := openStore(t)
	ctx := context.Background()
	now := domain.Now()
	stale := runningSince(t, db, now.Add(-2*time.Hour))
	active := runningSince(t, db, now.Add(-time.Minute))

	sw := sweeper.New(db, 30*time.Minute, time.Minute, nil)
	ids, err := sw.SweepOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{stale.ID}, ids)

	ids, err = sw.SweepOnce(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids, "a second sweep has nothing left to do")

	got, err := db.GetSession(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionFailed, got.Status)
	assert.Equal(t, domain.SessionErrTimeout, got.Error)

	got, err = db.GetSession(ctx, active.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionRunning, got.Status)
}

func TestRunSweepsUntilCancelled(t *testing.T) {
	db := openStore(t)
	stale := runningSince(t, db, domain.Now().Add(-time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		sweeper.New(db, time.Minute, 10*time.Millisecond, nil).Run(ctx)
	}()

	require.Eventually(t, func() bool {
		s, err := db.GetSession(context.Background(), stale.ID)
		return err == nil && s.Status == domain.SessionFailed
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancellation")
	}
}
