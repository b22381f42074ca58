package domain

import "time"

// CandidatePatch carries operator edits. Nil fields are left untouched.
type CandidatePatch struct {
	Name            *string
	ProgramName     *string
	Description     *string
	SourceURL       *string
	Tags            *[]string
	FundingMin      *float64
	FundingMax      *float64
	Currency        *string
	Deadline        *time.Time
	ValidationNotes *string
}

// Empty reports whether the patch changes nothing.
func (p CandidatePatch) Empty() bool {
	return p.Name == nil && p.ProgramName == nil && p.Description == nil &&
		p.SourceURL == nil && p.Tags == nil && p.FundingMin == nil &&
		p.FundingMax == nil && p.Currency == nil && p.Deadline == nil &&
		p.ValidationNotes == nil
}

// DiscoveredCandidate is one result reported by the discovery worker.
type DiscoveredCandidate struct {
	NaturalKey  string
	Name        string
	ProgramName string
	Description string
	SourceURL   string
	Metadata    map[string]string
	Tags        []string
	Confidence  float64
	FundingMin  *float64
	FundingMax  *float64
	Currency    string
	Deadline    *time.Time
	Contacts    []Contact
}

// IngestSummary reports what one ReportResult call did.
type IngestSummary struct {
	SessionID    string
	Created      int
	Updated      int
	Duplicates   int
	CandidateIDs []string
}

// Outcome is published when a candidate reaches a terminal state.
type Outcome struct {
	CandidateID string    `json:"candidateId"`
	Name        string    `json:"name"`
	Source      string    `json:"source"`
	State       State     `json:"state"`
	Actor       string    `json:"actor"`
	Reason      string    `json:"reason,omitempty"`
	Version     int64     `json:"version"`
	DecidedAt   time.Time `json:"decidedAt"`
}
