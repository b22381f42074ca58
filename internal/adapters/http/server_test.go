package httpadapter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "northstar/internal/adapters/http"
	"northstar/internal/adapters/sqlite"
	"northstar/internal/api"
	"northstar/internal/domain"
	"northstar/internal/services/candidates"
	"northstar/internal/services/discovery"
	"northstar/internal/services/lifecycle"
)

func newServer(t *testing.T) (*httptest.Server, *sqlite.DB) {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "northstar.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate(ctx))

	srv := httpadapter.New(
		candidates.New(db, nil),
		lifecycle.New(db, nil, nil),
		discovery.New(db, nil, 2),
		db,
		nil,
	)
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts, db
}

// call sends body as JSON and decodes a 2xx answer into out, or the error
// envelope into the returned api.Error.
func call(t *testing.T, ts *httptest.Server, method, path string, body, out any) (int, api.Error) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, ts.URL+path, rd)
	require.NoError(t, err)
	req.Header.Set("X-Actor", "maria")
	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var apiErr api.Error
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if resp.StatusCode >= 300 {
		require.NoError(t, json.Unmarshal(raw, &apiErr), string(raw))
		return resp.StatusCode, apiErr
	}
	if out != nil && len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, out), string(raw))
	}
	return resp.StatusCode, apiErr
}

func seedCandidate(t *testing.T, db *sqlite.DB, name, key string) domain.Candidate {
	t.Helper()
	c, err := db.CreateCandidate(context.Background(), domain.Candidate{
		Name:       name,
		Source:     "nih.gov",
		NaturalKey: key,
	}, nil, domain.AuditEvent{Actor: "seed"})
	require.NoError(t, err)
	return c
}

func TestHealthz(t *testing.T) {
	ts, db := newServer(t)
	var body api.Health
	status, _ := call(t, ts, http.MethodGet, "/healthz", nil, &body)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body.Status)

	require.NoError(t, db.Close())
	status, _ = call(t, ts, http.MethodGet, "/healthz", nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, status)
}

func TestReviewFlow(t *testing.T) {
	ts, db := newServer(t)
	c := seedCandidate(t, db, "Early Career Award", "k99")
	base := "/candidates/" + c.ID

	var got api.Candidate
	status, _ := call(t, ts, http.MethodPost, base+"/transitions",
		api.TransitionRequest{ExpectedVersion: 1, TargetState: api.Enhancing}, &got)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, api.Enhancing, got.State)
	assert.Equal(t, "maria", got.AssignedReviewer)

	status, _ = call(t, ts, http.MethodPatch, base,
		api.PatchCandidateRequest{ExpectedVersion: 2, Tags: &[]string{"Biomedical"}}, &got)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"biomedical"}, got.Tags)
	assert.Equal(t, int64(3), got.Version)

	status, _ = call(t, ts, http.MethodPost, base+"/transitions",
		api.TransitionRequest{ExpectedVersion: 3, TargetState: api.Enhanced}, &got)
	require.Equal(t, http.StatusOK, status)

	var added api.ContactAdded
	status, _ = call(t, ts, http.MethodPost, base+"/contacts", api.AddContactRequest{Contact: api.NewContact{
		FullName: "Dana Whitfield",
		Type:     "program_officer",
		Email:    "dana.whitfield@nih.gov",
	}}, &added)
	require.Equal(t, http.StatusCreated, status)
	assert.True(t, added.Contact.Verified)
	assert.Equal(t, int64(5), added.Version)

	status, apiErr := call(t, ts, http.MethodPost, base+"/approve", api.DecisionRequest{ExpectedVersion: 4}, nil)
	require.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "version_conflict", apiErr.Error.Code)
	require.NotNil(t, apiErr.Error.CurrentVersion)
	assert.Equal(t, int64(5), *apiErr.Error.CurrentVersion)

	status, _ = call(t, ts, http.MethodPost, base+"/approve", api.DecisionRequest{ExpectedVersion: 5}, &got)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, api.Approved, got.State)

	status, apiErr = call(t, ts, http.MethodPost, base+"/reject",
		api.DecisionRequest{ExpectedVersion: 6, Reason: "changed our mind"}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "invalid_transition", apiErr.Error.Code)

	var detail api.CandidateDetail
	status, _ = call(t, ts, http.MethodGet, base, nil, &detail)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, api.Approved, detail.Candidate.State)
	require.Len(t, detail.Contacts, 1)

	var events []api.AuditEvent
	status, _ = call(t, ts, http.MethodGet, base+"/audit", nil, &events)
	require.Equal(t, http.StatusOK, status)
	kinds := make([]api.AuditKind, len(events))
	for i, ev := range events {
		kinds[i] = ev.Kind
	}
	assert.Equal(t, []api.AuditKind{
		api.AuditKindCreated,
		api.AuditKindTransition,
		api.AuditKindUpdated,
		api.AuditKindTransition,
		api.AuditKindContactAdded,
		api.AuditKindTransition,
	}, kinds)
}

func TestErrorMapping(t *testing.T) {
	ts, db := newServer(t)
	c := seedCandidate(t, db, "Training Grant", "t32")
	missing := "/candidates/6f1c2d8e-95a4-4c61-9d1e-3b0b7e1f2a44"

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		code   string
		field  string
	}{
		{"malformed id", http.MethodGet, "/candidates/not-a-uuid", nil, http.StatusUnprocessableEntity, "validation_failed", "id"},
		{"unknown candidate", http.MethodGet, missing, nil, http.StatusNotFound, "not_found", ""},
		{"unknown state filter", http.MethodGet, "/candidates?state=archived", nil, http.StatusUnprocessableEntity, "validation_failed", "state"},
		{"limit out of range", http.MethodGet, "/candidates?limit=0", nil, http.StatusUnprocessableEntity, "validation_failed", "limit"},
		{"bad cursor", http.MethodGet, "/candidates?cursor=bm9wZQ", nil, http.StatusUnprocessableEntity, "validation_failed", "cursor"},
		{"reject without reason", http.MethodPost, "/candidates/" + c.ID + "/reject", api.DecisionRequest{ExpectedVersion: 1}, http.StatusUnprocessableEntity, "validation_failed", "reason"},
		{"unknown target", http.MethodPost, "/candidates/" + c.ID + "/transitions", api.TransitionRequest{ExpectedVersion: 1, TargetState: "archived"}, http.StatusUnprocessableEntity, "validation_failed", "state"},
		{"skipping a state", http.MethodPost, "/candidates/" + c.ID + "/approve", api.DecisionRequest{ExpectedVersion: 1}, http.StatusUnprocessableEntity, "invalid_transition", ""},
		{"stale patch", http.MethodPatch, "/candidates/" + c.ID, api.PatchCandidateRequest{ExpectedVersion: 9, Name: strPtr("New")}, http.StatusConflict, "version_conflict", ""},
		{"unknown session", http.MethodGet, "/discovery-sessions/6f1c2d8e-95a4-4c61-9d1e-3b0b7e1f2a44", nil, http.StatusNotFound, "not_found", ""},
		{"bad session status", http.MethodGet, "/discovery-sessions?status=paused", nil, http.StatusUnprocessableEntity, "validation_failed", "status"},
		{"trigger without source", http.MethodPost, "/discovery-sessions", api.TriggerDiscoveryRequest{}, http.StatusUnprocessableEntity, "validation_failed", "source"},
		{"empty body", http.MethodPost, "/discovery-sessions/claim", nil, http.StatusBadRequest, "bad_request", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, apiErr := call(t, ts, tt.method, tt.path, tt.body, nil)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, apiErr.Error.Code)
			if tt.field != "" {
				assert.Equal(t, tt.field, apiErr.Error.Field)
			}
		})
	}

	t.Run("malformed body", func(t *testing.T) {
		resp, err := ts.Client().Post(ts.URL+"/candidates/"+c.ID+"/approve", "application/json", bytes.NewBufferString("{"))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestOversizedBodyIsRejected(t *testing.T) {
	ts, db := newServer(t)
	sess, err := discovery.New(db, nil, 1).Trigger(context.Background(), domain.SessionConfig{Source: "grants.gov"}, "maria", domain.SessionManual)
	require.NoError(t, err)

	found := make([]api.DiscoveredCandidate, 400)
	for i := range found {
		found[i] = api.DiscoveredCandidate{
			NaturalKey:  fmt.Sprintf("HRSA-26-%03d", i),
			Name:        "Rural Health Outreach",
			Description: strings.Repeat("x", 12<<10),
		}
	}
	raw, err := json.Marshal(api.ReportResultsRequest{Candidates: found})
	require.NoError(t, err)
	require.Greater(t, len(raw), httpadapter.MaxBodyBytes)

	req := httptest.NewRequest(http.MethodPost, "/discovery-sessions/"+sess.ID+"/results", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	ts.Config.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	var apiErr api.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, "body_too_large", apiErr.Error.Code)

	page, err := db.ListCandidates(context.Background(), domain.CandidateFilter{}, domain.PageRequest{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func TestActorFromBodyWinsOverHeader(t *testing.T) {
	ts, db := newServer(t)
	c := seedCandidate(t, db, "Career Development Award", "k08")

	var got api.Candidate
	status, _ := call(t, ts, http.MethodPost, "/candidates/"+c.ID+"/transitions",
		api.TransitionRequest{ExpectedVersion: 1, TargetState: api.Enhancing, Actor: "devon"}, &got)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "devon", got.AssignedReviewer)
	assert.Equal(t, "devon", got.LastModifiedBy)
}

func TestListCandidatesPaging(t *testing.T) {
	ts, db := newServer(t)
	for _, name := range []string{"Alpha", "Bravo", "Charlie"} {
		seedCandidate(t, db, name, name)
	}

	var page api.CandidatePage
	status, _ := call(t, ts, http.MethodGet, "/candidates?limit=2&sort=name", nil, &page)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Alpha", page.Items[0].Name)
	assert.Equal(t, api.Discovered, page.Items[0].State)
	require.NotEmpty(t, page.NextCursor)

	var next api.CandidatePage
	status, _ = call(t, ts, http.MethodGet, "/candidates?limit=2&sort=name&cursor="+page.NextCursor, nil, &next)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, next.Items, 1)
	assert.Equal(t, "Charlie", next.Items[0].Name)
	assert.Empty(t, next.NextCursor)

	status, _ = call(t, ts, http.MethodGet, "/candidates?state=discovered,enhancing&q=brav", nil, &page)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Bravo", page.Items[0].Name)
}

func TestDiscoveryFlow(t *testing.T) {
	ts, _ := newServer(t)

	status, _ := call(t, ts, http.MethodPost, "/discovery-sessions/claim", api.ClaimSessionRequest{WorkerId: "w1"}, nil)
	assert.Equal(t, http.StatusNoContent, status)

	var sess api.Session
	status, _ = call(t, ts, http.MethodPost, "/discovery-sessions", api.TriggerDiscoveryRequest{
		Config: api.SessionConfig{Source: "https://www.grants.gov/search", Queries: []string{"rural health"}},
	}, &sess)
	require.Equal(t, http.StatusAccepted, status)
	assert.Equal(t, api.Queued, sess.Status)
	assert.Equal(t, api.Manual, sess.Kind)
	assert.Equal(t, "grants.gov", sess.Config.Source)
	assert.Equal(t, "maria", sess.RequestedBy)

	var claimed api.Session
	status, _ = call(t, ts, http.MethodPost, "/discovery-sessions/claim", api.ClaimSessionRequest{WorkerId: "w1"}, &claimed)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, sess.Id, claimed.Id)
	assert.Equal(t, api.Running, claimed.Status)

	var sum api.IngestSummary
	status, _ = call(t, ts, http.MethodPost, "/discovery-sessions/"+sess.Id+"/results", api.ReportResultsRequest{
		Candidates: []api.DiscoveredCandidate{
			{NaturalKey: "HRSA-25-001", Name: "Rural Health Outreach", Confidence: 0.8},
			{NaturalKey: "HRSA-25-002", Name: "Rural Residency Planning", Confidence: 0.7},
		},
	}, &sum)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, sum.Created)
	assert.Len(t, sum.CandidateIds, 2)

	status, apiErr := call(t, ts, http.MethodPost, "/discovery-sessions/"+sess.Id+"/results", api.ReportResultsRequest{
		Candidates: []api.DiscoveredCandidate{{Name: "No key"}},
	}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "candidates[0].naturalKey", apiErr.Error.Field)

	var done api.Session
	status, _ = call(t, ts, http.MethodPost, "/discovery-sessions/"+sess.Id+"/complete", api.CompleteSessionRequest{Status: api.Completed}, &done)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, api.Completed, done.Status)
	assert.Equal(t, 2, done.CandidatesFound)

	status, apiErr = call(t, ts, http.MethodPost, "/discovery-sessions/"+sess.Id+"/cancel", nil, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "invalid_transition", apiErr.Error.Code)

	var list api.SessionList
	status, _ = call(t, ts, http.MethodGet, "/discovery-sessions?status=completed", nil, &list)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, list.Items, 1)

	var page api.CandidatePage
	status, _ = call(t, ts, http.MethodGet, "/candidates?session="+sess.Id, nil, &page)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, page.Items, 2)
}

func strPtr(s string) *string { return &s }
