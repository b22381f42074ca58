// Package candidates serves candidate reads and operator edits that do not
// change lifecycle state.
package candidates

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"northstar/internal/domain"
	"northstar/internal/ports"
)

// maxAttempts bounds the re-read loop for edits that apply to whatever the
// current version is.
const maxAttempts = 5

type Store interface {
	ports.CandidateRepository
	ports.ContactRepository
	ports.AuditRepository
}

type Service struct {
	store Store
	log   *zap.Logger
}

func New(store Store, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, log: log}
}

var _ ports.Candidates = (*Service)(nil)

func (s *Service) List(ctx context.Context, filter domain.CandidateFilter, page domain.PageRequest) (domain.CandidatePage, error) {
	for _, st := range filter.States {
		if !st.Valid() {
			return domain.CandidatePage{}, domain.Invalid("state", "unknown lifecycle state "+strconv.Quote(string(st)))
		}
	}
	filter.Text = strings.TrimSpace(filter.Text)
	filter.Source = strings.ToLower(strings.TrimSpace(filter.Source))
	page, err := domain.NormalizePage(page)
	if err != nil {
		return domain.CandidatePage{}, err
	}
	return s.store.ListCandidates(ctx, filter, page)
}

func (s *Service) Get(ctx context.Context, id string) (domain.Candidate, []domain.Contact, error) {
	c, err := s.store.GetCandidate(ctx, id)
	if err != nil {
		return domain.Candidate{}, nil, err
	}
	contacts, err := s.store.ListContacts(ctx, id)
	if err != nil {
		return domain.Candidate{}, nil, err
	}
	return c, contacts, nil
}

var errUnchanged = errors.New("patch changes nothing")

// Update applies an operator edit at expectedVersion. A patch whose values
// match the stored ones leaves the candidate and its version alone.
func (s *Service) Update(ctx context.Context, id string, expectedVersion int64, actor string, patch domain.CandidatePatch) (domain.Candidate, error) {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return domain.Candidate{}, domain.Invalid("actor", "is required")
	}
	if expectedVersion < 1 {
		return domain.Candidate{}, domain.Invalid("expectedVersion", "must be at least 1")
	}
	if err := patch.Validate(); err != nil {
		return domain.Candidate{}, err
	}

	var unchanged domain.Candidate
	next, err := s.store.CompareAndUpdate(ctx, id, expectedVersion, func(cur domain.Candidate) (ports.Change, error) {
		if cur.Terminal() {
			return ports.Change{}, domain.Invalid("state", string(cur.State)+" candidates are read-only")
		}
		n, changes := applyPatch(cur, patch)
		if n.FundingMin != nil && n.FundingMax != nil && *n.FundingMin > *n.FundingMax {
			return ports.Change{}, domain.Invalid("fundingMin", "must not exceed fundingMax")
		}
		if len(changes) == 0 {
			unchanged = cur
			return ports.Change{}, errUnchanged
		}
		return ports.Change{
			Candidate: n,
			Event:     domain.AuditEvent{Kind: domain.AuditUpdated, Actor: actor, Changes: changes},
		}, nil
	})
	if errors.Is(err, errUnchanged) {
		return unchanged, nil
	}
	if err != nil {
		return domain.Candidate{}, err
	}
	s.log.Info("candidate updated", zap.String("candidate", id), zap.Int64("version", next.Version), zap.String("actor", actor))
	return next, nil
}

func applyPatch(cur domain.Candidate, p domain.CandidatePatch) (domain.Candidate, []domain.FieldChange) {
	n := cur
	var changes []domain.FieldChange
	str := func(field string, dst *string, v *string) {
		if v == nil || *dst == *v {
			return
		}
		changes = append(changes, domain.FieldChange{Field: field, Old: *dst, New: *v})
		*dst = *v
	}
	num := func(field string, dst **float64, v *float64) {
		if v == nil || (*dst != nil && **dst == *v) {
			return
		}
		changes = append(changes, domain.FieldChange{Field: field, Old: fmtFloat(*dst), New: fmtFloat(v)})
		x := *v
		*dst = &x
	}

	name := p.Name
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		name = &trimmed
	}
	str("name", &n.Name, name)
	str("programName", &n.ProgramName, p.ProgramName)
	str("description", &n.Description, p.Description)
	str("sourceUrl", &n.SourceURL, p.SourceURL)
	str("currency", &n.Currency, p.Currency)
	str("validationNotes", &n.ValidationNotes, p.ValidationNotes)
	num("fundingMin", &n.FundingMin, p.FundingMin)
	num("fundingMax", &n.FundingMax, p.FundingMax)
	if p.Tags != nil {
		tags := normalizeTags(*p.Tags)
		if strings.Join(tags, ",") != strings.Join(n.Tags, ",") {
			changes = append(changes, domain.FieldChange{Field: "tags", Old: strings.Join(n.Tags, ","), New: strings.Join(tags, ",")})
			n.Tags = tags
		}
	}
	if p.Deadline != nil {
		// Stored timestamps keep microseconds; compare at that precision.
		d := p.Deadline.UTC().Truncate(time.Microsecond)
		if n.Deadline != nil && n.Deadline.Equal(d) {
			return n, changes
		}
		changes = append(changes, domain.FieldChange{Field: "deadline", Old: fmtTime(n.Deadline), New: fmtTime(&d)})
		n.Deadline = &d
	}
	return n, changes
}

func normalizeTags(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, t := range in {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func fmtFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func fmtTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func (s *Service) Contacts(ctx context.Context, id string) ([]domain.Contact, error) {
	if _, err := s.store.GetCandidate(ctx, id); err != nil {
		return nil, err
	}
	return s.store.ListContacts(ctx, id)
}

// AddContact attaches operator-entered contact intelligence to the current
// version of a candidate. Operators vouch for what they enter, so the contact
// is stored verified.
func (s *Service) AddContact(ctx context.Context, id, actor string, contact domain.Contact) (domain.Contact, domain.Candidate, error) {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return domain.Contact{}, domain.Candidate{}, domain.Invalid("actor", "is required")
	}
	contact.FullName = strings.TrimSpace(contact.FullName)
	contact.Email = strings.TrimSpace(contact.Email)
	if err := contact.Validate(); err != nil {
		return domain.Contact{}, domain.Candidate{}, err
	}
	now := domain.Now()
	contact.ID = uuid.NewString()
	contact.CandidateID = id
	contact.CreatedAt = now
	contact.CreatedBy = actor
	contact.Verified = true
	contact.VerifiedAt = &now
	contact.VerifiedBy = actor

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		cur, err := s.store.GetCandidate(ctx, id)
		if err != nil {
			return domain.Contact{}, domain.Candidate{}, err
		}
		next, err := s.store.CompareAndUpdate(ctx, id, cur.Version, func(cur domain.Candidate) (ports.Change, error) {
			if cur.Terminal() {
				return ports.Change{}, domain.Invalid("state", string(cur.State)+" candidates are read-only")
			}
			return ports.Change{
				Candidate: cur,
				Event:     domain.AuditEvent{Kind: domain.AuditContactAdded, Actor: actor, Note: contact.FullName},
				Contacts:  []domain.Contact{contact},
			}, nil
		})
		if errors.Is(err, domain.ErrVersionConflict) {
			lastErr = err
			continue
		}
		if err != nil {
			return domain.Contact{}, domain.Candidate{}, err
		}
		s.log.Info("contact added", zap.String("candidate", id), zap.String("contact", contact.ID), zap.String("actor", actor))
		return contact, next, nil
	}
	return domain.Contact{}, domain.Candidate{}, lastErr
}

func (s *Service) History(ctx context.Context, id string) ([]domain.AuditEvent, error) {
	if _, err := s.store.GetCandidate(ctx, id); err != nil {
		return nil, err
	}
	return s.store.ListAuditEvents(ctx, id)
}
