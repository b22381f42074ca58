package domain

import (
	"strings"
	"time"
)

// Core domain models. HTTP shapes live in internal/adapters/http; keep these
// free of transport concerns.

// State is a candidate lifecycle state.
type State string

const (
	StateDiscovered State = "discovered"
	StateEnhancing  State = "enhancing"
	StateEnhanced   State = "enhanced"
	StateApproved   State = "approved"
	StateRejected   State = "rejected"
)

// Candidate is a funding-source lead under review.
type Candidate struct {
	ID                 string
	Name               string
	ProgramName        string
	Description        string
	Source             string // registrable domain of the discovery source
	NaturalKey         string // dedup key, unique within Source
	SourceURL          string
	Metadata           map[string]string
	Tags               []string
	Confidence         float64
	FundingMin         *float64
	FundingMax         *float64
	Currency           string
	Deadline           *time.Time
	DiscoverySessionID string
	AssignedReviewer   string
	ReviewStartedAt    *time.Time
	ValidationNotes    string
	RejectionReason    string
	State              State
	Version            int64
	DiscoveredAt       time.Time
	LastModifiedAt     time.Time
	LastModifiedBy     string
}

// Terminal reports whether the candidate can no longer change state.
func (c Candidate) Terminal() bool { return c.State.Terminal() }

type ContactType string

const (
	ContactProgramOfficer     ContactType = "program_officer"
	ContactFoundationStaff    ContactType = "foundation_staff"
	ContactGovernmentOfficial ContactType = "government_official"
	ContactAcademic           ContactType = "academic_contact"
	ContactCorporate          ContactType = "corporate_contact"
)

type AuthorityLevel string

const (
	AuthorityDecisionMaker   AuthorityLevel = "decision_maker"
	AuthorityInfluencer      AuthorityLevel = "influencer"
	AuthorityInformationOnly AuthorityLevel = "information_only"
)

// Contact is a piece of contact intelligence owned by exactly one candidate.
type Contact struct {
	ID            string
	CandidateID   string
	Type          ContactType
	Authority     AuthorityLevel
	FullName      string
	Title         string
	Organization  string
	Email         string
	Phone         string
	OfficeAddress string
	Confidence    float64
	Verified      bool
	VerifiedAt    *time.Time
	VerifiedBy    string
	Notes         string
	CreatedAt     time.Time
	CreatedBy     string
}

// HasChannel reports whether at least one way of reaching the contact is set.
func (c Contact) HasChannel() bool {
	return strings.TrimSpace(c.Email) != "" ||
		strings.TrimSpace(c.Phone) != "" ||
		strings.TrimSpace(c.OfficeAddress) != ""
}

type SessionStatus string

const (
	SessionQueued    SessionStatus = "queued"
	SessionRunning   SessionStatus = "running"
	SessionCompleted SessionStatus = "completed"
	SessionFailed    SessionStatus = "failed"
)

// Terminal reports whether the session is immutable.
func (s SessionStatus) Terminal() bool {
	return s == SessionCompleted || s == SessionFailed
}

func (s SessionStatus) Valid() bool {
	switch s {
	case SessionQueued, SessionRunning, SessionCompleted, SessionFailed:
		return true
	}
	return false
}

type SessionKind string

const (
	SessionManual    SessionKind = "manual"
	SessionScheduled SessionKind = "scheduled"
	SessionRetry     SessionKind = "retry"
)

// Session error details set by the orchestrator itself.
const (
	SessionErrTimeout   = "timeout"
	SessionErrCancelled = "cancelled"
)

// SessionConfig holds the search parameters of a discovery run.
type SessionConfig struct {
	Source     string            `json:"source"`
	Queries    []string          `json:"queries,omitempty"`
	Engines    []string          `json:"engines,omitempty"`
	Parameters map[string]string `json:"parameters,omitempty"`
	MaxResults int               `json:"maxResults,omitempty"`
}

// Session records one asynchronous discovery run.
type Session struct {
	ID                 string
	Kind               SessionKind
	RequestedBy        string
	Config             SessionConfig
	Status             SessionStatus
	WorkerID           string
	CreatedAt          time.Time
	StartedAt          *time.Time
	FinishedAt         *time.Time
	LastActivityAt     time.Time
	CandidatesFound    int
	DuplicatesDetected int
	Error              string
}

type AuditKind string

const (
	AuditCreated      AuditKind = "created"
	AuditTransition   AuditKind = "transition"
	AuditUpdated      AuditKind = "updated"
	AuditContactAdded AuditKind = "contact_added"
	AuditRediscovered AuditKind = "rediscovered"
)

// FieldChange is one edited field inside an AuditUpdated event.
type FieldChange struct {
	Field string `json:"field"`
	Old   string `json:"old"`
	New   string `json:"new"`
}

// AuditEvent is an append-only record of a mutation applied to a candidate.
type AuditEvent struct {
	ID          string
	CandidateID string
	Kind        AuditKind
	Actor       string
	FromState   State
	ToState     State
	Version     int64
	Note        string
	Changes     []FieldChange
	At          time.Time
}

// Now returns the current UTC time at the precision the stores persist.
func Now() time.Time { return time.Now().UTC().Truncate(time.Microsecond) }
