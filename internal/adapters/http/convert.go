package httpadapter

import (
	"strings"

	"northstar/internal/api"
	"northstar/internal/domain"
)

func toCandidate(c domain.Candidate) api.Candidate {
	md := c.Metadata
	if md == nil {
		md = map[string]string{}
	}
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	return api.Candidate{
		Id:                 c.ID,
		Name:               c.Name,
		ProgramName:        c.ProgramName,
		Description:        c.Description,
		Source:             c.Source,
		NaturalKey:         c.NaturalKey,
		SourceUrl:          c.SourceURL,
		Metadata:           md,
		Tags:               tags,
		Confidence:         c.Confidence,
		FundingMin:         c.FundingMin,
		FundingMax:         c.FundingMax,
		Currency:           c.Currency,
		Deadline:           c.Deadline,
		DiscoverySessionId: c.DiscoverySessionID,
		AssignedReviewer:   c.AssignedReviewer,
		ReviewStartedAt:    c.ReviewStartedAt,
		ValidationNotes:    c.ValidationNotes,
		RejectionReason:    c.RejectionReason,
		State:              api.CandidateState(c.State),
		Version:            c.Version,
		DiscoveredAt:       c.DiscoveredAt,
		LastModifiedAt:     c.LastModifiedAt,
		LastModifiedBy:     c.LastModifiedBy,
	}
}

func toContact(c domain.Contact) api.Contact {
	return api.Contact{
		Id:            c.ID,
		CandidateId:   c.CandidateID,
		Type:          string(c.Type),
		Authority:     string(c.Authority),
		FullName:      c.FullName,
		Title:         c.Title,
		Organization:  c.Organization,
		Email:         c.Email,
		Phone:         c.Phone,
		OfficeAddress: c.OfficeAddress,
		Confidence:    c.Confidence,
		Verified:      c.Verified,
		VerifiedAt:    c.VerifiedAt,
		VerifiedBy:    c.VerifiedBy,
		Notes:         c.Notes,
		CreatedAt:     c.CreatedAt,
		CreatedBy:     c.CreatedBy,
	}
}

func toContacts(in []domain.Contact) []api.Contact {
	out := make([]api.Contact, len(in))
	for i, c := range in {
		out[i] = toContact(c)
	}
	return out
}

func fromContact(c api.NewContact) domain.Contact {
	return domain.Contact{
		Type:          domain.ContactType(c.Type),
		Authority:     domain.AuthorityLevel(c.Authority),
		FullName:      c.FullName,
		Title:         c.Title,
		Organization:  c.Organization,
		Email:         c.Email,
		Phone:         c.Phone,
		OfficeAddress: c.OfficeAddress,
		Confidence:    c.Confidence,
		Notes:         c.Notes,
	}
}

func toAuditEvents(in []domain.AuditEvent) []api.AuditEvent {
	out := make([]api.AuditEvent, len(in))
	for i, e := range in {
		var changes []api.FieldChange
		for _, fc := range e.Changes {
			changes = append(changes, api.FieldChange{Field: fc.Field, Old: fc.Old, New: fc.New})
		}
		out[i] = api.AuditEvent{
			Id:        e.ID,
			Kind:      api.AuditKind(e.Kind),
			Actor:     e.Actor,
			FromState: api.CandidateState(e.FromState),
			ToState:   api.CandidateState(e.ToState),
			Version:   e.Version,
			Note:      e.Note,
			Changes:   changes,
			At:        e.At,
		}
	}
	return out
}

func toSession(s domain.Session) api.Session {
	return api.Session{
		Id:          s.ID,
		Kind:        api.SessionKind(s.Kind),
		RequestedBy: s.RequestedBy,
		Config: api.SessionConfig{
			Source:     s.Config.Source,
			Queries:    s.Config.Queries,
			Engines:    s.Config.Engines,
			Parameters: s.Config.Parameters,
			MaxResults: s.Config.MaxResults,
		},
		Status:             api.SessionStatus(s.Status),
		WorkerId:           s.WorkerID,
		CreatedAt:          s.CreatedAt,
		StartedAt:          s.StartedAt,
		FinishedAt:         s.FinishedAt,
		LastActivityAt:     s.LastActivityAt,
		CandidatesFound:    s.CandidatesFound,
		DuplicatesDetected: s.DuplicatesDetected,
		Error:              s.Error,
	}
}

func fromSessionConfig(c api.SessionConfig) domain.SessionConfig {
	return domain.SessionConfig{
		Source:     c.Source,
		Queries:    c.Queries,
		Engines:    c.Engines,
		Parameters: c.Parameters,
		MaxResults: c.MaxResults,
	}
}

func fromDiscovered(in []api.DiscoveredCandidate) []domain.DiscoveredCandidate {
	out := make([]domain.DiscoveredCandidate, len(in))
	for i, d := range in {
		contacts := make([]domain.Contact, len(d.Contacts))
		for j, c := range d.Contacts {
			contacts[j] = fromContact(c)
		}
		out[i] = domain.DiscoveredCandidate{
			NaturalKey:  d.NaturalKey,
			Name:        d.Name,
			ProgramName: d.ProgramName,
			Description: d.Description,
			SourceURL:   d.SourceUrl,
			Metadata:    d.Metadata,
			Tags:        d.Tags,
			Confidence:  d.Confidence,
			FundingMin:  d.FundingMin,
			FundingMax:  d.FundingMax,
			Currency:    d.Currency,
			Deadline:    d.Deadline,
			Contacts:    contacts,
		}
	}
	return out
}

// candidateQuery turns bound list parameters into a filter and page request.
// States may repeat or be comma separated.
func candidateQuery(p api.ListCandidatesParams) (domain.CandidateFilter, domain.PageRequest, error) {
	var (
		filter domain.CandidateFilter
		page   domain.PageRequest
	)
	if p.State != nil {
		for _, raw := range *p.State {
			for _, s := range strings.Split(raw, ",") {
				if s = strings.TrimSpace(s); s == "" {
					continue
				}
				st, err := domain.ParseState(s)
				if err != nil {
					return filter, page, err
				}
				filter.States = append(filter.States, st)
			}
		}
	}
	if p.Q != nil {
		filter.Text = *p.Q
	}
	if p.Source != nil {
		filter.Source = *p.Source
	}
	if p.Session != nil {
		filter.SessionID = p.Session.String()
	}
	if p.Sort != nil {
		page.Sort = *p.Sort
	}
	if p.Limit != nil {
		if *p.Limit < 1 || *p.Limit > domain.MaxPageSize {
			return filter, page, domain.Invalid("limit", "must be between 1 and 200")
		}
		page.Limit = *p.Limit
	}
	if p.Cursor != nil && *p.Cursor != "" {
		c, err := domain.DecodeCursor(*p.Cursor)
		if err != nil {
			return filter, page, err
		}
		page.Cursor = &c
	}
	return filter, page, nil
}

func sessionQuery(p api.ListSessionsParams) (domain.SessionFilter, error) {
	var f domain.SessionFilter
	if p.Status != nil {
		f.Status = domain.SessionStatus(*p.Status)
	}
	if p.Source != nil {
		f.Source = *p.Source
	}
	if p.Limit != nil {
		if *p.Limit < 1 || *p.Limit > domain.MaxPageSize {
			return f, domain.Invalid("limit", "must be between 1 and 200")
		}
		f.Limit = *p.Limit
	}
	return f, nil
}
