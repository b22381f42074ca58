package domain

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// Sort keys accepted by candidate listings. Insertion order is the default.
const (
	SortDiscovered = "discovered"
	SortName       = "name"
)

// CandidateFilter narrows a candidate listing. Zero values match everything.
type CandidateFilter struct {
	States    []State
	Text      string
	Source    string
	SessionID string
}

// PageRequest is a cursor page over candidates.
type PageRequest struct {
	Sort   string
	Limit  int
	Cursor *Cursor
}

// CandidatePage is one page of a listing.
type CandidatePage struct {
	Items      []Candidate
	NextCursor string
}

// Cursor marks the last row of a previous page. It is opaque to clients.
type Cursor struct {
	Sort string    `json:"s"`
	ID   string    `json:"i"`
	At   time.Time `json:"t"`
	Name string    `json:"n,omitempty"`
}

// CursorAfter builds the cursor that resumes a listing after c.
func CursorAfter(sort string, c Candidate) Cursor {
	cur := Cursor{Sort: sort, ID: c.ID, At: c.DiscoveredAt}
	if sort == SortName {
		cur.Name = strings.ToLower(c.Name)
	}
	return cur
}

func (c Cursor) Encode() string {
	b, _ := json.Marshal(c)
	return base64.RawURLEncoding.EncodeToString(b)
}

// DecodeCursor parses a cursor issued by Encode.
func DecodeCursor(s string) (Cursor, error) {
	var c Cursor
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return c, Invalid("cursor", "malformed cursor")
	}
	if err := json.Unmarshal(b, &c); err != nil || c.ID == "" {
		return c, Invalid("cursor", "malformed cursor")
	}
	if c.Sort != SortDiscovered && c.Sort != SortName {
		return c, Invalid("cursor", "malformed cursor")
	}
	return c, nil
}

// NormalizePage applies defaults and bounds a page request.
func NormalizePage(p PageRequest) (PageRequest, error) {
	if p.Sort == "" {
		p.Sort = SortDiscovered
	}
	if p.Sort != SortDiscovered && p.Sort != SortName {
		return p, Invalid("sort", "must be one of discovered, name")
	}
	if p.Limit == 0 {
		p.Limit = DefaultPageSize
	}
	if p.Limit < 1 || p.Limit > MaxPageSize {
		return p, Invalid("limit", "must be between 1 and 200")
	}
	if p.Cursor != nil && p.Cursor.Sort != p.Sort {
		return p, Invalid("cursor", "cursor was issued for a different sort order")
	}
	return p, nil
}

// SessionFilter narrows a discovery session listing.
type SessionFilter struct {
	Status SessionStatus
	Source string
	Limit  int
}
