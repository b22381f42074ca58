// Package discovery runs discovery sessions: it queues them for an external
// worker, ingests what the worker reports and tracks session state.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/sync/errgroup"

	"northstar/internal/domain"
	"northstar/internal/ports"
)

const (
	defaultIngestConcurrency = 4
	maxIngestAttempts        = 5
	maxBatchSize             = 500
)

type Store interface {
	ports.CandidateRepository
	ports.SessionRepository
}

type Service struct {
	store       Store
	log         *zap.Logger
	concurrency int
}

// New builds the orchestrator. concurrency bounds how many results of one
// batch are upserted at the same time.
func New(store Store, log *zap.Logger, concurrency int) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if concurrency < 1 {
		concurrency = defaultIngestConcurrency
	}
	return &Service{store: store, log: log, concurrency: concurrency}
}

var _ ports.Discovery = (*Service)(nil)

// NormalizeSource reduces a source given as a URL, host or domain to its
// registrable domain, e.g. "https://www.grants.gov/search" becomes "grants.gov".
func NormalizeSource(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return ""
	}
	host := raw
	if strings.Contains(raw, "://") {
		if u, err := url.Parse(raw); err == nil && u.Host != "" {
			host = u.Hostname()
		}
	} else if i := strings.IndexAny(raw, "/:"); i >= 0 {
		host = raw[:i]
	}
	host = strings.TrimSuffix(host, ".")
	registrable, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return registrable
}

// Trigger queues a new session. It returns as soon as the session is stored;
// the work itself is picked up by a worker through Claim.
func (s *Service) Trigger(ctx context.Context, cfg domain.SessionConfig, requestedBy string, kind domain.SessionKind) (domain.Session, error) {
	requestedBy = strings.TrimSpace(requestedBy)
	if requestedBy == "" {
		return domain.Session{}, domain.Invalid("requestedBy", "is required")
	}
	cfg.Source = NormalizeSource(cfg.Source)
	if cfg.Source == "" {
		return domain.Session{}, domain.Invalid("source", "is required")
	}
	if cfg.MaxResults < 0 {
		return domain.Session{}, domain.Invalid("maxResults", "must not be negative")
	}
	switch kind {
	case "":
		kind = domain.SessionManual
	case domain.SessionManual, domain.SessionScheduled, domain.SessionRetry:
	default:
		return domain.Session{}, domain.Invalid("kind", "must be one of manual, scheduled, retry")
	}
	now := domain.Now()
	sess, err := s.store.CreateSession(ctx, domain.Session{
		ID:             uuid.NewString(),
		Kind:           kind,
		RequestedBy:    requestedBy,
		Config:         cfg,
		Status:         domain.SessionQueued,
		CreatedAt:      now,
		LastActivityAt: now,
	})
	if err != nil {
		return domain.Session{}, err
	}
	s.log.Info("discovery session queued",
		zap.String("session", sess.ID),
		zap.String("source", cfg.Source),
		zap.String("kind", string(kind)),
		zap.String("requested_by", requestedBy))
	return sess, nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.Session, error) {
	return s.store.GetSession(ctx, id)
}

func (s *Service) List(ctx context.Context, filter domain.SessionFilter) ([]domain.Session, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, domain.Invalid("status", "unknown session status "+fmt.Sprintf("%q", filter.Status))
	}
	if filter.Limit == 0 {
		filter.Limit = domain.DefaultPageSize
	}
	if filter.Limit < 1 || filter.Limit > domain.MaxPageSize {
		return nil, domain.Invalid("limit", "must be between 1 and 200")
	}
	filter.Source = NormalizeSource(filter.Source)
	return s.store.ListSessions(ctx, filter)
}

// Cancel fails a queued or running session. Results reported for it
// afterwards are refused.
func (s *Service) Cancel(ctx context.Context, id string) (domain.Session, error) {
	sess, err := s.store.UpdateSession(ctx, id, func(sess *domain.Session) error {
		if err := domain.ValidateSessionTransition(sess.Status, domain.SessionFailed); err != nil {
			return err
		}
		now := domain.Now()
		sess.Status = domain.SessionFailed
		sess.Error = domain.SessionErrCancelled
		sess.FinishedAt = &now
		sess.LastActivityAt = now
		return nil
	})
	if err != nil {
		return domain.Session{}, err
	}
	s.log.Info("discovery session cancelled", zap.String("session", id))
	return sess, nil
}

// Claim hands the oldest queued session to workerID. found is false when the
// queue is empty.
func (s *Service) Claim(ctx context.Context, workerID string) (domain.Session, bool, error) {
	workerID = strings.TrimSpace(workerID)
	if workerID == "" {
		return domain.Session{}, false, domain.Invalid("workerId", "is required")
	}
	sess, found, err := s.store.ClaimNextSession(ctx, workerID)
	if err != nil || !found {
		return domain.Session{}, found, err
	}
	s.log.Info("discovery session claimed", zap.String("session", sess.ID), zap.String("worker", workerID))
	return sess, true, nil
}

type ingestResult int

const (
	ingestPending ingestResult = iota
	ingestCreated
	ingestUpdated
	ingestDuplicate
)

// ReportResult ingests one batch of results for a session. Each result is
// upserted by (source, natural key): unknown keys create a candidate in the
// discovered state, known keys refresh the existing candidate, and keys whose
// candidate was already decided are only counted as duplicates.
func (s *Service) ReportResult(ctx context.Context, id string, found []domain.DiscoveredCandidate) (domain.IngestSummary, error) {
	summary := domain.IngestSummary{SessionID: id, CandidateIDs: []string{}}
	if len(found) > maxBatchSize {
		return summary, domain.Invalid("candidates", fmt.Sprintf("at most %d results per batch", maxBatchSize))
	}
	for i, dc := range found {
		if err := dc.Validate(); err != nil {
			var ve *domain.ValidationError
			if errors.As(err, &ve) {
				return summary, domain.Invalid(fmt.Sprintf("candidates[%d].%s", i, ve.Field), ve.Reason)
			}
			return summary, err
		}
	}

	sess, err := s.store.UpdateSession(ctx, id, func(sess *domain.Session) error {
		if sess.Status.Terminal() {
			return &domain.TransitionError{Subject: "discovery session", From: string(sess.Status), To: "accepting results"}
		}
		now := domain.Now()
		if sess.Status == domain.SessionQueued {
			sess.Status = domain.SessionRunning
			sess.StartedAt = &now
		}
		sess.LastActivityAt = now
		return nil
	})
	if err != nil {
		return summary, err
	}

	// Results sharing a natural key are applied in order by one goroutine so
	// they never race each other's version checks.
	var groups [][]int
	byKey := make(map[string]int)
	for i, dc := range found {
		k := NaturalKey(dc)
		gi, ok := byKey[k]
		if !ok {
			gi = len(groups)
			byKey[k] = gi
			groups = append(groups, nil)
		}
		groups[gi] = append(groups[gi], i)
	}

	ids := make([]string, len(found))
	results := make([]ingestResult, len(found))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, group := range groups {
		g.Go(func() error {
			for _, i := range group {
				id, res, err := s.ingest(gctx, sess, found[i])
				if err != nil {
					return fmt.Errorf("ingest %q: %w", found[i].Name, err)
				}
				ids[i], results[i] = id, res
			}
			return nil
		})
	}
	ingestErr := g.Wait()

	// Whatever was written before a failure is counted, so a retried batch
	// sees those candidates as updates without losing them from the session.
	seen := make(map[string]bool, len(ids))
	for i, res := range results {
		switch res {
		case ingestPending:
			continue
		case ingestCreated:
			summary.Created++
		case ingestUpdated:
			summary.Updated++
		case ingestDuplicate:
			summary.Duplicates++
		}
		if !seen[ids[i]] {
			seen[ids[i]] = true
			summary.CandidateIDs = append(summary.CandidateIDs, ids[i])
		}
	}

	_, err = s.store.UpdateSession(context.WithoutCancel(ctx), id, func(sess *domain.Session) error {
		// Cancelled while ingesting: the candidates stay, the session is frozen.
		if sess.Status.Terminal() {
			return nil
		}
		sess.CandidatesFound += summary.Created
		sess.DuplicatesDetected += summary.Updated + summary.Duplicates
		sess.LastActivityAt = domain.Now()
		return nil
	})
	if err != nil {
		return summary, errors.Join(ingestErr, err)
	}
	if ingestErr != nil {
		s.log.Warn("discovery batch partly ingested",
			zap.String("session", id),
			zap.Int("created", summary.Created),
			zap.Int("updated", summary.Updated),
			zap.Int("duplicates", summary.Duplicates),
			zap.Error(ingestErr))
		return summary, ingestErr
	}
	s.log.Info("discovery results ingested",
		zap.String("session", id),
		zap.Int("created", summary.Created),
		zap.Int("updated", summary.Updated),
		zap.Int("duplicates", summary.Duplicates))
	return summary, nil
}

// ingest upserts a single result. Losing a race on the natural key or the
// version simply re-reads and tries again.
func (s *Service) ingest(ctx context.Context, sess domain.Session, dc domain.DiscoveredCandidate) (string, ingestResult, error) {
	source := sess.Config.Source
	key := NaturalKey(dc)
	actor := "discovery"
	if sess.WorkerID != "" {
		actor = "discovery:" + sess.WorkerID
	}

	for attempt := 0; attempt < maxIngestAttempts; attempt++ {
		existing, err := s.store.FindCandidateByNaturalKey(ctx, source, key)
		if errors.Is(err, domain.ErrNotFound) {
			c, contacts := newCandidate(sess, source, key, dc)
			created, err := s.store.CreateCandidate(ctx, c, contacts, domain.AuditEvent{
				Kind:  domain.AuditCreated,
				Actor: actor,
				Note:  "discovery session " + sess.ID,
			})
			if errors.Is(err, domain.ErrDuplicate) {
				continue
			}
			if err != nil {
				return "", ingestPending, err
			}
			return created.ID, ingestCreated, nil
		}
		if err != nil {
			return "", ingestPending, err
		}
		if existing.Terminal() {
			return existing.ID, ingestDuplicate, nil
		}
		updated, err := s.store.CompareAndUpdate(ctx, existing.ID, existing.Version, func(cur domain.Candidate) (ports.Change, error) {
			return ports.Change{
				Candidate: refresh(cur, sess.ID, dc),
				Event: domain.AuditEvent{
					Kind:  domain.AuditRediscovered,
					Actor: actor,
					Note:  "discovery session " + sess.ID,
				},
			}, nil
		})
		if errors.Is(err, domain.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return "", ingestPending, err
		}
		return updated.ID, ingestUpdated, nil
	}
	return "", ingestPending, fmt.Errorf("natural key %s/%s: %w", source, key, domain.ErrVersionConflict)
}

// NaturalKey is the dedup key of a result: the worker's own key when given,
// otherwise the source URL without scheme, query or trailing slash.
func NaturalKey(dc domain.DiscoveredCandidate) string {
	if k := strings.TrimSpace(dc.NaturalKey); k != "" {
		return k
	}
	u, err := url.Parse(strings.TrimSpace(dc.SourceURL))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(dc.SourceURL))
	}
	return strings.ToLower(u.Hostname()) + strings.TrimSuffix(u.EscapedPath(), "/")
}

func newCandidate(sess domain.Session, source, key string, dc domain.DiscoveredCandidate) (domain.Candidate, []domain.Contact) {
	c := domain.Candidate{
		Name:               strings.TrimSpace(dc.Name),
		ProgramName:        dc.ProgramName,
		Description:        dc.Description,
		Source:             source,
		NaturalKey:         key,
		SourceURL:          dc.SourceURL,
		Metadata:           copyMap(dc.Metadata),
		Tags:               mergeTags(nil, dc.Tags),
		Confidence:         dc.Confidence,
		FundingMin:         dc.FundingMin,
		FundingMax:         dc.FundingMax,
		Currency:           strings.ToUpper(dc.Currency),
		Deadline:           dc.Deadline,
		DiscoverySessionID: sess.ID,
		State:              domain.StateDiscovered,
	}
	contacts := make([]domain.Contact, len(dc.Contacts))
	for i, ct := range dc.Contacts {
		ct.ID = ""
		ct.Verified = false
		ct.VerifiedAt = nil
		ct.VerifiedBy = ""
		contacts[i] = ct
	}
	return c, contacts
}

// refresh folds a re-reported result into an existing candidate. Descriptive
// fields are only overwritten while nobody has started reviewing it; tags,
// metadata and confidence always follow the latest report.
func refresh(cur domain.Candidate, sessionID string, dc domain.DiscoveredCandidate) domain.Candidate {
	n := cur
	n.DiscoverySessionID = sessionID
	n.Confidence = dc.Confidence
	n.Tags = mergeTags(cur.Tags, dc.Tags)
	if len(dc.Metadata) > 0 {
		m := copyMap(cur.Metadata)
		for k, v := range dc.Metadata {
			m[k] = v
		}
		n.Metadata = m
	}
	if cur.State != domain.StateDiscovered {
		return n
	}
	set := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}
	set(&n.Name, dc.Name)
	set(&n.ProgramName, dc.ProgramName)
	set(&n.Description, dc.Description)
	set(&n.SourceURL, dc.SourceURL)
	set(&n.Currency, strings.ToUpper(dc.Currency))
	if dc.FundingMin != nil {
		n.FundingMin = dc.FundingMin
	}
	if dc.FundingMax != nil {
		n.FundingMax = dc.FundingMax
	}
	if dc.Deadline != nil {
		n.Deadline = dc.Deadline
	}
	return n
}

func copyMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func mergeTags(have, add []string) []string {
	out := make([]string, 0, len(have)+len(add))
	seen := make(map[string]bool, len(have)+len(add))
	for _, t := range append(append([]string{}, have...), add...) {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// ReportCompletion closes a session. A failed session must say why.
func (s *Service) ReportCompletion(ctx context.Context, id string, status domain.SessionStatus, errDetail string) (domain.Session, error) {
	errDetail = strings.TrimSpace(errDetail)
	if !status.Terminal() {
		return domain.Session{}, domain.Invalid("status", "must be completed or failed")
	}
	if status == domain.SessionFailed && errDetail == "" {
		return domain.Session{}, domain.Invalid("error", "a failed session needs an error message")
	}
	sess, err := s.store.UpdateSession(ctx, id, func(sess *domain.Session) error {
		if err := domain.ValidateSessionTransition(sess.Status, status); err != nil {
			return err
		}
		now := domain.Now()
		sess.Status = status
		sess.FinishedAt = &now
		sess.LastActivityAt = now
		if status == domain.SessionFailed {
			sess.Error = errDetail
		}
		return nil
	})
	if err != nil {
		return domain.Session{}, err
	}
	s.log.Info("discovery session finished",
		zap.String("session", id),
		zap.String("status", string(status)),
		zap.Int("candidates_found", sess.CandidatesFound),
		zap.Int("duplicates_detected", sess.DuplicatesDetected))
	return sess, nil
}

