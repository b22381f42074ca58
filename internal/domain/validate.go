package domain

import (
	"math"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MaxReasonLength = 500
	MaxNameLength   = 255
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

func validConfidence(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}

// Validate checks a contact before it is attached to a candidate.
func (c Contact) Validate() error {
	if strings.TrimSpace(c.FullName) == "" {
		return Invalid("fullName", "is required")
	}
	if utf8.RuneCountInString(c.FullName) > MaxNameLength {
		return Invalid("fullName", "must be at most 255 characters")
	}
	if !c.HasChannel() {
		return Invalid("channel", "at least one of email, phone or officeAddress is required")
	}
	if e := strings.TrimSpace(c.Email); e != "" && !emailPattern.MatchString(e) {
		return Invalid("email", "is not a valid address")
	}
	if !validConfidence(c.Confidence) {
		return Invalid("confidence", "must be between 0 and 1")
	}
	switch c.Type {
	case "", ContactProgramOfficer, ContactFoundationStaff, ContactGovernmentOfficial, ContactAcademic, ContactCorporate:
	default:
		return Invalid("type", "unknown contact type "+quote(string(c.Type)))
	}
	switch c.Authority {
	case "", AuthorityDecisionMaker, AuthorityInfluencer, AuthorityInformationOnly:
	default:
		return Invalid("authority", "unknown authority level "+quote(string(c.Authority)))
	}
	return nil
}

// Validate checks a patch in isolation; cross-field checks against the stored
// candidate happen when it is applied.
func (p CandidatePatch) Validate() error {
	if p.Empty() {
		return Invalid("", "no fields to update")
	}
	if p.Name != nil {
		if strings.TrimSpace(*p.Name) == "" {
			return Invalid("name", "must not be empty")
		}
		if utf8.RuneCountInString(*p.Name) > MaxNameLength {
			return Invalid("name", "must be at most 255 characters")
		}
	}
	if p.SourceURL != nil && *p.SourceURL != "" {
		if err := validURL(*p.SourceURL); err != nil {
			return err
		}
	}
	if p.FundingMin != nil && *p.FundingMin < 0 {
		return Invalid("fundingMin", "must not be negative")
	}
	if p.FundingMax != nil && *p.FundingMax < 0 {
		return Invalid("fundingMax", "must not be negative")
	}
	if p.Currency != nil && *p.Currency != "" && !currencyPattern.MatchString(*p.Currency) {
		return Invalid("currency", "must be a three letter ISO 4217 code")
	}
	return nil
}

// Validate checks one discovery result.
func (d DiscoveredCandidate) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return Invalid("name", "is required")
	}
	if utf8.RuneCountInString(strings.TrimSpace(d.Name)) > MaxNameLength {
		return Invalid("name", "must be at most 255 characters")
	}
	if strings.TrimSpace(d.NaturalKey) == "" && strings.TrimSpace(d.SourceURL) == "" {
		return Invalid("naturalKey", "naturalKey or sourceUrl is required")
	}
	if d.SourceURL != "" {
		if err := validURL(d.SourceURL); err != nil {
			return err
		}
	}
	if !validConfidence(d.Confidence) {
		return Invalid("confidence", "must be between 0 and 1")
	}
	if d.FundingMin != nil && d.FundingMax != nil && *d.FundingMin > *d.FundingMax {
		return Invalid("fundingMin", "must not exceed fundingMax")
	}
	for _, c := range d.Contacts {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func validURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return Invalid("sourceUrl", "must be an absolute http(s) URL")
	}
	return nil
}
