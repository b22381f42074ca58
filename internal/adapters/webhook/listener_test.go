package webhook_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"northstar/internal/adapters/webhook"
	"northstar/internal/domain"
)

func outcome() domain.Outcome {
	return domain.Outcome{
		CandidateID: "5b0f3f0e-8d47-4d4f-a3f8-1a0f7d0c2b11",
		Name:        "Rural Health Outreach",
		Source:      "grants.gov",
		State:       domain.StateRejected,
		Actor:       "maria",
		Reason:      "Outside mission scope",
		Version:     5,
		DecidedAt:   time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestNotifyPostsJSON(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, webhook.New(srv.URL).Notify(context.Background(), outcome()))
	assert.Equal(t, "rejected", got["state"])
	assert.Equal(t, "Outside mission scope", got["reason"])
	assert.Equal(t, float64(5), got["version"])
	assert.Equal(t, "2026-10-01T12:00:00Z", got["decidedAt"])
}

func TestNotifyRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	l := webhook.New(srv.URL, webhook.WithBackoff(time.Millisecond, 5))
	require.NoError(t, l.Notify(context.Background(), outcome()))
	assert.Equal(t, int32(3), calls.Load())
}

func TestNotifyGivesUp(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := webhook.New(srv.URL, webhook.WithBackoff(time.Millisecond, 2)).Notify(context.Background(), outcome())
	assert.ErrorIs(t, err, domain.ErrDownstreamUnavailable)
	assert.Equal(t, int32(3), calls.Load())
}

func TestNotifyDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	err := webhook.New(srv.URL, webhook.WithBackoff(time.Millisecond, 5)).Notify(context.Background(), outcome())
	assert.ErrorIs(t, err, domain.ErrDownstreamUnavailable)
	assert.Equal(t, int32(1), calls.Load())
}

func TestNotifyUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := webhook.New(url, webhook.WithBackoff(time.Millisecond, 1)).Notify(context.Background(), outcome())
	assert.ErrorIs(t, err, domain.ErrDownstreamUnavailable)
}
