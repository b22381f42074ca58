// Package webhook posts candidate outcomes to a downstream HTTP endpoint.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"

	"northstar/internal/domain"
	"northstar/internal/ports"
)

type Listener struct {
	url        string
	client     *http.Client
	base       time.Duration
	maxRetries uint64
}

type Option func(*Listener)

// WithHTTPClient replaces the default client (10s timeout).
func WithHTTPClient(c *http.Client) Option { return func(l *Listener) { l.client = c } }

// WithBackoff sets the first retry delay and how many retries follow the
// initial attempt.
func WithBackoff(base time.Duration, maxRetries uint64) Option {
	return func(l *Listener) {
		l.base = base
		l.maxRetries = maxRetries
	}
}

func New(url string, opts ...Option) *Listener {
	l := &Listener{
		url:        url,
		client:     &http.Client{Timeout: 10 * time.Second},
		base:       250 * time.Millisecond,
		maxRetries: 4,
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

var _ ports.OutcomeListener = (*Listener)(nil)

// Notify posts o as JSON. Transport errors, 429 and 5xx answers are retried
// with exponential backoff; any other non-2xx answer fails at once. Every
// failure wraps domain.ErrDownstreamUnavailable.
func (l *Listener) Notify(ctx context.Context, o domain.Outcome) error {
	body, err := json.Marshal(o)
	if err != nil {
		return err
	}
	b := retry.WithMaxRetries(l.maxRetries, retry.NewExponential(l.base))
	err = retry.Do(ctx, b, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.url, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		resp, err := l.client.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)
		switch {
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return retry.RetryableError(fmt.Errorf("webhook answered %d", resp.StatusCode))
		case resp.StatusCode >= 300:
			return fmt.Errorf("webhook answered %d", resp.StatusCode)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: post outcome for %s: %v", domain.ErrDownstreamUnavailable, o.CandidateID, err)
	}
	return nil
}
