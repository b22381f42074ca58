// Package client is a typed client for the northstar HTTP API, built on the
// generated api.ClientWithResponses.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"northstar/internal/api"
)

// Client is created once per command and passed to whatever needs it.
type Client struct {
	api *api.ClientWithResponses
}

// WithHTTPClient replaces the default client, e.g. with an httptest one.
func WithHTTPClient(doer api.HttpRequestDoer) api.ClientOption {
	return api.WithHTTPClient(doer)
}

// WithActor sets the X-Actor header sent with every request.
func WithActor(actor string) api.ClientOption {
	return api.WithRequestEditorFn(func(_ context.Context, req *http.Request) error {
		if actor != "" {
			req.Header.Set("X-Actor", actor)
		}
		return nil
	})
}

func New(baseURL string, opts ...api.ClientOption) (*Client, error) {
	opts = append([]api.ClientOption{api.WithHTTPClient(&http.Client{Timeout: 30 * time.Second})}, opts...)
	c, err := api.NewClientWithResponses(baseURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("client for %s: %w", baseURL, err)
	}
	return &Client{api: c}, nil
}

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status int
	api.ErrorDetail
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
}

// IsConflict reports whether err is a 409 and, if so, the server's current
// version when it sent one.
func IsConflict(err error) (int64, bool) {
	var ae *APIError
	if !errors.As(err, &ae) || ae.Status != http.StatusConflict {
		return 0, false
	}
	if ae.CurrentVersion == nil {
		return 0, true
	}
	return *ae.CurrentVersion, true
}

// check turns a non-2xx answer into an *APIError. Bodies that are not the
// error envelope, e.g. from a proxy, become the message.
func check(status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}
	var e api.Error
	if json.Unmarshal(body, &e) != nil || e.Error.Code == "" {
		e.Error = api.ErrorDetail{Code: http.StatusText(status), Message: strings.TrimSpace(string(body))}
	}
	return &APIError{Status: status, ErrorDetail: e.Error}
}

func result[T any](status int, body []byte, v *T) (T, error) {
	var zero T
	if err := check(status, body); err != nil {
		return zero, err
	}
	if v == nil {
		return zero, fmt.Errorf("unexpected %d response without a JSON body", status)
	}
	return *v, nil
}

func parseID(id string) (uuid.UUID, error) {
	u, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return uuid.Nil, fmt.Errorf("id %q is not a UUID", id)
	}
	return u, nil
}

// ListParams mirrors the candidate listing query string. Zero values are
// left out of the request.
type ListParams struct {
	States  []string
	Query   string
	Source  string
	Session string
	Sort    string
	Limit   int
	Cursor  string
}

func (p ListParams) params() (*api.ListCandidatesParams, error) {
	var out api.ListCandidatesParams
	opt := func(v string) *string {
		if v == "" {
			return nil
		}
		return &v
	}
	if len(p.States) > 0 {
		states := p.States
		out.State = &states
	}
	out.Q = opt(p.Query)
	out.Source = opt(p.Source)
	out.Sort = opt(p.Sort)
	out.Cursor = opt(p.Cursor)
	if p.Session != "" {
		sid, err := parseID(p.Session)
		if err != nil {
			return nil, err
		}
		out.Session = &sid
	}
	if p.Limit > 0 {
		limit := p.Limit
		out.Limit = &limit
	}
	return &out, nil
}

func (c *Client) ListCandidates(ctx context.Context, p ListParams) (api.CandidatePage, error) {
	params, err := p.params()
	if err != nil {
		return api.CandidatePage{}, err
	}
	resp, err := c.api.ListCandidatesWithResponse(ctx, params)
	if err != nil {
		return api.CandidatePage{}, err
	}
	return result(resp.StatusCode(), resp.Body, resp.JSON200)
}

func (c *Client) GetCandidate(ctx context.Context, id string) (api.CandidateDetail, error) {
	uid, err := parseID(id)
	if err != nil {
		return api.CandidateDetail{}, err
	}
	resp, err := c.api.GetCandidateWithResponse(ctx, uid)
	if err != nil {
		return api.CandidateDetail{}, err
	}
	return result(resp.StatusCode(), resp.Body, resp.JSON200)
}

func (c *Client) UpdateCandidate(ctx context.Context, id string, req api.PatchCandidateRequest) (api.Candidate, error) {
	uid, err := parseID(id)
	if err != nil {
		return api.Candidate{}, err
	}
	resp, err := c.api.PatchCandidateWithResponse(ctx, uid, req)
	if err != nil {
		return api.Candidate{}, err
	}
	return result(resp.StatusCode(), resp.Body, resp.JSON200)
}

func (c *Client) Approve(ctx context.Context, id string, expectedVersion int64, notes string) (api.Candidate, error) {
	uid, err := parseID(id)
	if err != nil {
		return api.Candidate{}, err
	}
	resp, err := c.api.ApproveCandidateWithResponse(ctx, uid, api.DecisionRequest{ExpectedVersion: expectedVersion, Reason: notes})
	if err != nil {
		return api.Candidate{}, err
	}
	return result(resp.StatusCode(), resp.Body, resp.JSON200)
}

func (c *Client) Reject(ctx context.Context, id string, expectedVersion int64, reason string) (api.Candidate, error) {
	uid, err := parseID(id)
	if err != nil {
		return api.Candidate{}, err
	}
	resp, err := c.api.RejectCandidateWithResponse(ctx, uid, api.DecisionRequest{ExpectedVersion: expectedVersion, Reason: reason})
	if err != nil {
		return api.Candidate{}, err
	}
	return result(resp.StatusCode(), resp.Body, resp.JSON200)
}

// Transition moves a candidate to any state the lifecycle allows.
func (c *Client) Transition(ctx context.Context, id string, expectedVersion int64, target, reason string) (api.Candidate, error) {
	uid, err := parseID(id)
	if err != nil {
		return api.Candidate{}, err
	}
	resp, err := c.api.TransitionCandidateWithResponse(ctx, uid, api.TransitionRequest{
		ExpectedVersion: expectedVersion,
		TargetState:     api.CandidateState(target),
		Reason:          reason,
	})
	if err != nil {
		return api.Candidate{}, err
	}
	return result(resp.StatusCode(), resp.Body, resp.JSON200)
}

func (c *Client) ListContacts(ctx context.Context, id string) ([]api.Contact, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	resp, err := c.api.ListContactsWithResponse(ctx, uid)
	if err != nil {
		return nil, err
	}
	return result(resp.StatusCode(), resp.Body, resp.JSON200)
}

func (c *Client) AddContact(ctx context.Context, id string, contact api.NewContact) (api.ContactAdded, error) {
	uid, err := parseID(id)
	if err != nil {
		return api.ContactAdded{}, err
	}
	resp, err := c.api.AddContactWithResponse(ctx, uid, api.AddContactRequest{Contact: contact})
	if err != nil {
		return api.ContactAdded{}, err
	}
	return result(resp.StatusCode(), resp.Body, resp.JSON201)
}

func (c *Client) History(ctx context.Context, id string) ([]api.AuditEvent, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	resp, err := c.api.ListAuditEventsWithResponse(ctx, uid)
	if err != nil {
		return nil, err
	}
	return result(resp.StatusCode(), resp.Body, resp.JSON200)
}

func (c *Client) TriggerDiscovery(ctx context.Context, req api.TriggerDiscoveryRequest) (api.Session, error) {
	resp, err := c.api.TriggerDiscoveryWithResponse(ctx, req)
	if err != nil {
		return api.Session{}, err
	}
	return result(resp.StatusCode(), resp.Body, resp.JSON202)
}

func (c *Client) ListSessions(ctx context.Context, status, source string, limit int) ([]api.Session, error) {
	var params api.ListSessionsParams
	if status != "" {
		params.Status = &status
	}
	if source != "" {
		params.Source = &source
	}
	if limit > 0 {
		params.Limit = &limit
	}
	resp, err := c.api.ListSessionsWithResponse(ctx, &params)
	if err != nil {
		return nil, err
	}
	list, err := result(resp.StatusCode(), resp.Body, resp.JSON200)
	return list.Items, err
}

func (c *Client) GetSession(ctx context.Context, id string) (api.Session, error) {
	uid, err := parseID(id)
	if err != nil {
		return api.Session{}, err
	}
	resp, err := c.api.GetSessionWithResponse(ctx, uid)
	if err != nil {
		return api.Session{}, err
	}
	return result(resp.StatusCode(), resp.Body, resp.JSON200)
}

func (c *Client) CancelSession(ctx context.Context, id string) (api.Session, error) {
	uid, err := parseID(id)
	if err != nil {
		return api.Session{}, err
	}
	resp, err := c.api.CancelSessionWithResponse(ctx, uid)
	if err != nil {
		return api.Session{}, err
	}
	return result(resp.StatusCode(), resp.Body, resp.JSON200)
}

// ClaimSession returns found=false when no session is queued.
func (c *Client) ClaimSession(ctx context.Context, workerID string) (api.Session, bool, error) {
	resp, err := c.api.ClaimSessionWithResponse(ctx, api.ClaimSessionRequest{WorkerId: workerID})
	if err != nil {
		return api.Session{}, false, err
	}
	if resp.StatusCode() == http.StatusNoContent {
		return api.Session{}, false, nil
	}
	sess, err := result(resp.StatusCode(), resp.Body, resp.JSON200)
	return sess, err == nil, err
}

func (c *Client) ReportResults(ctx context.Context, id string, found []api.DiscoveredCandidate) (api.IngestSummary, error) {
	uid, err := parseID(id)
	if err != nil {
		return api.IngestSummary{}, err
	}
	resp, err := c.api.ReportResultsWithResponse(ctx, uid, api.ReportResultsRequest{Candidates: found})
	if err != nil {
		return api.IngestSummary{}, err
	}
	return result(resp.StatusCode(), resp.Body, resp.JSON200)
}

func (c *Client) CompleteSession(ctx context.Context, id, status, errDetail string) (api.Session, error) {
	uid, err := parseID(id)
	if err != nil {
		return api.Session{}, err
	}
	resp, err := c.api.CompleteSessionWithResponse(ctx, uid, api.CompleteSessionRequest{Status: api.SessionStatus(status), Error: errDetail})
	if err != nil {
		return api.Session{}, err
	}
	return result(resp.StatusCode(), resp.Body, resp.JSON200)
}

func (c *Client) Health(ctx context.Context) error {
	resp, err := c.api.GetHealthzWithResponse(ctx)
	if err != nil {
		return err
	}
	return check(resp.StatusCode(), resp.Body)
}
