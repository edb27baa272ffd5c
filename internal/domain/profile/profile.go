package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Field keys accepted by Profile.Set. They match the JSONB column
// names of the profiles table.
const (
	FieldHeadline    = "headline"
	FieldSummary     = "summary"
	FieldContactInfo = "contact_info"
	FieldSocialLinks = "social_links"
	FieldExperience  = "experience"
	FieldEducation   = "education"
	FieldProjects    = "projects"
	FieldSkills      = "skills"
)

// Recognized contact_info keys. Unknown keys are preserved as-is.
const (
	ContactEmail    = "email"
	ContactPhone    = "phone"
	ContactLocation = "location"
	ContactName     = "name"
)

// Recognized social_links keys.
const (
	SocialLinkedIn  = "linkedin"
	SocialGitHub    = "github"
	SocialPortfolio = "portfolio"
)

var ErrUnknownField = errors.New("unknown profile field")

type ExperienceItem struct {
	ID          uuid.UUID `json:"id"`
	Company     string    `json:"company"`
	Position    string    `json:"position"`
	Location    string    `json:"location"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Current     bool      `json:"current"`
	Description string    `json:"description"`
}

type EducationItem struct {
	ID          uuid.UUID `json:"id"`
	School      string    `json:"school"`
	Degree      string    `json:"degree"`
	Field       string    `json:"field"`
	Location    string    `json:"location"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Current     bool      `json:"current"`
	Description string    `json:"description"`
}

type ProjectItem struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
	StartDate    string    `json:"startDate"`
	EndDate      string    `json:"endDate"`
	Current      bool      `json:"current"`
	Link         string    `json:"link"`
	ImageURL     string    `json:"imageUrl"`
}

type SkillCategory struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Skills []string  `json:"skills"`
}

// Profile is the single per-user record holding all editable career
// data. Dates are kept as raw strings; display logic compares them
// lexicographically and never parses them.
type Profile struct {
	OwnerID     uuid.UUID         `json:"owner_id"`
	Headline    string            `json:"headline"`
	Summary     string            `json:"summary"`
	ContactInfo map[string]string `json:"contact_info"`
	SocialLinks map[string]string `json:"social_links"`
	Experience  []ExperienceItem  `json:"experience"`
	Education   []EducationItem   `json:"education"`
	Projects    []ProjectItem     `json:"projects"`
	Skills      []SkillCategory   `json:"skills"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// Empty returns the default profile a user gets before anything has
// been saved for them.
func Empty(ownerID uuid.UUID) *Profile {
	return &Profile{
		OwnerID:     ownerID,
		ContactInfo: map[string]string{},
		SocialLinks: map[string]string{},
		Experience:  []ExperienceItem{},
		Education:   []EducationItem{},
		Projects:    []ProjectItem{},
		Skills:      []SkillCategory{},
	}
}

// Normalize replaces nil maps and slices with empty ones so callers
// never have to nil-check sub-collections. Applied at the load
// boundary.
func (p *Profile) Normalize() {
	if p.ContactInfo == nil {
		p.ContactInfo = map[string]string{}
	}
	if p.SocialLinks == nil {
		p.SocialLinks = map[string]string{}
	}
	if p.Experience == nil {
		p.Experience = []ExperienceItem{}
	}
	if p.Education == nil {
		p.Education = []EducationItem{}
	}
	if p.Projects == nil {
		p.Projects = []ProjectItem{}
	}
	if p.Skills == nil {
		p.Skills = []SkillCategory{}
	}
}

// Set is the single keyed-update funnel every editor and form writes
// through. It mutates the in-memory record only; persistence happens
// on an explicit save.
func (p *Profile) Set(field string, value any) error {
	switch field {
	case FieldHeadline:
		s, ok := value.(string)
		if !ok {
			return ErrUnknownField
		}
		p.Headline = s
	case FieldSummary:
		s, ok := value.(string)
		if !ok {
			return ErrUnknownField
		}
		p.Summary = s
	case FieldContactInfo:
		m, ok := value.(map[string]string)
		if !ok {
			return ErrUnknownField
		}
		p.ContactInfo = m
	case FieldSocialLinks:
		m, ok := value.(map[string]string)
		if !ok {
			return ErrUnknownField
		}
		p.SocialLinks = m
	case FieldExperience:
		v, ok := value.([]ExperienceItem)
		if !ok {
			return ErrUnknownField
		}
		p.Experience = v
	case FieldEducation:
		v, ok := value.([]EducationItem)
		if !ok {
			return ErrUnknownField
		}
		p.Education = v
	case FieldProjects:
		v, ok := value.([]ProjectItem)
		if !ok {
			return ErrUnknownField
		}
		p.Projects = v
	case FieldSkills:
		v, ok := value.([]SkillCategory)
		if !ok {
			return ErrUnknownField
		}
		p.Skills = v
	default:
		return ErrUnknownField
	}
	return nil
}

// SetContactField overwrites one contact_info key. Keys not
// mentioned are never dropped.
func (p *Profile) SetContactField(key, value string) {
	merged := make(map[string]string, len(p.ContactInfo)+1)
	for k, v := range p.ContactInfo {
		merged[k] = v
	}
	merged[key] = value
	p.ContactInfo = merged
}

// SetSocialField overwrites one social_links key, preserving the
// rest of the map.
func (p *Profile) SetSocialField(key, value string) {
	merged := make(map[string]string, len(p.SocialLinks)+1)
	for k, v := range p.SocialLinks {
		merged[k] = v
	}
	merged[key] = value
	p.SocialLinks = merged
}

// Clone returns a deep copy. Builder sessions edit a working copy so
// a discarded session never leaks changes into a loaded profile.
func (p *Profile) Clone() *Profile {
	c := *p
	c.ContactInfo = make(map[string]string, len(p.ContactInfo))
	for k, v := range p.ContactInfo {
		c.ContactInfo[k] = v
	}
	c.SocialLinks = make(map[string]string, len(p.SocialLinks))
	for k, v := range p.SocialLinks {
		c.SocialLinks[k] = v
	}
	c.Experience = append([]ExperienceItem(nil), p.Experience...)
	c.Education = append([]EducationItem(nil), p.Education...)
	c.Projects = make([]ProjectItem, len(p.Projects))
	for i, item := range p.Projects {
		item.Technologies = append([]string(nil), item.Technologies...)
		c.Projects[i] = item
	}
	c.Skills = make([]SkillCategory, len(p.Skills))
	for i, cat := range p.Skills {
		cat.Skills = append([]string(nil), cat.Skills...)
		c.Skills[i] = cat
	}
	return &c
}

// HasResumeData reports whether enough data exists to generate a
// resume: at least one experience and one education entry.
func (p *Profile) HasResumeData() bool {
	return len(p.Experience) > 0 && len(p.Education) > 0
}

type Repository interface {
	// GetByUserID returns the stored profile, or Empty(ownerID) when
	// no row exists yet.
	GetByUserID(ctx context.Context, ownerID uuid.UUID) (*Profile, error)
	// Upsert overwrites the whole record. Last writer wins; there is
	// no version column.
	Upsert(ctx context.Context, p *Profile) error
	// ListPublic returns owner ids that have a non-empty profile,
	// newest first. Used by the public directory page.
	ListPublic(ctx context.Context, limit, offset int) ([]Summary, error)
}

// Summary is the directory listing row for a published profile.
type Summary struct {
	OwnerID   uuid.UUID `json:"owner_id"`
	Headline  string    `json:"headline"`
	UpdatedAt time.Time `json:"updated_at"`
}
