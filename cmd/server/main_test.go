package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "northstar/internal/adapters/http"
	"northstar/internal/adapters/sqlite"
	"northstar/internal/config"
	"northstar/internal/domain"
	"northstar/internal/ports"
	candsvc "northstar/internal/services/candidates"
	discsvc "northstar/internal/services/discovery"
	lifesvc "northstar/internal/services/lifecycle"
)

func startServer(t *testing.T) (string, *sqlite.DB) {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "northstar.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate(ctx))
	srv := httpadapter.New(candsvc.New(db, nil), lifesvc.New(db, nil, nil), discsvc.New(db, nil, 1), db, nil)
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts.URL, db
}

func run(t *testing.T, url string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--server", url, "--actor", "priya"}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestDiscoveryCommands(t *testing.T) {
	url, _ := startServer(t)

	out, err := run(t, url, "discovery", "trigger", "--source", "https://www.arts.gov/grants", "--query", "theatre")
	require.NoError(t, err)
	assert.Contains(t, out, "queued for arts.gov")

	out, err = run(t, url, "discovery", "list", "--status", "queued")
	require.NoError(t, err)
	assert.Contains(t, out, "arts.gov")

	_, err = run(t, url, "discovery", "trigger")
	assert.Error(t, err)
}

func TestCandidateCommands(t *testing.T) {
	url, db := startServer(t)
	ctx := context.Background()
	c, err := db.CreateCandidate(ctx, domain.Candidate{Name: "Challenge America", Source: "arts.gov", NaturalKey: "ca"}, nil, domain.AuditEvent{Actor: "seed"})
	require.NoError(t, err)
	c, err = db.CompareAndUpdate(ctx, c.ID, 1, func(cur domain.Candidate) (ports.Change, error) {
		cur.State = domain.StateEnhanced
		return ports.Change{Candidate: cur, Event: domain.AuditEvent{Kind: domain.AuditTransition, Actor: "seed"}}, nil
	})
	require.NoError(t, err)

	out, err := run(t, url, "candidates", "list", "--state", "enhanced")
	require.NoError(t, err)
	assert.Contains(t, out, c.ID)
	assert.Contains(t, out, "Challenge America")

	_, err = run(t, url, "candidates", "reject", c.ID, "--version", "1", "--reason", "Regional only")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "current version 2")

	out, err = run(t, url, "candidates", "reject", c.ID, "--version", strconv.FormatInt(c.Version, 10), "--reason", "Regional only")
	require.NoError(t, err)
	assert.Contains(t, out, "rejected (version 3)")

	out, err = run(t, url, "candidates", "get", c.ID)
	require.NoError(t, err)
	assert.Contains(t, out, `"rejectionReason": "Regional only"`)
	assert.Contains(t, out, `"lastModifiedBy": "priya"`)
}

func TestScheduledJobs(t *testing.T) {
	jobs, err := scheduledJobs(config.Schedule{Sources: []config.ScheduledSource{
		{Source: "grants.gov", Queries: []string{"watershed"}, MaxResults: 20, Days: []string{"sat", "Sunday"}},
		{Source: "epa.gov"},
	}})
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, domain.SessionConfig{Source: "grants.gov", Queries: []string{"watershed"}, MaxResults: 20}, jobs[0].Config)
	assert.Equal(t, []time.Weekday{time.Saturday, time.Sunday}, jobs[0].Days)
	assert.Empty(t, jobs[1].Days)

	_, err = scheduledJobs(config.Schedule{Sources: []config.ScheduledSource{{Source: "epa.gov", Days: []string{"caturday"}}}})
	assert.Error(t, err)
}
