// Package render turns a Profile into presentational documents: two
// portfolio layouts and three resume templates. Every function here
// is a pure transform; profiles are never mutated and nothing is
// cached inside this package.
package render

import "github.com/careerforge/api/internal/domain/profile"

type PortfolioVariant string

const (
	PortfolioModern  PortfolioVariant = "modern"
	PortfolioClassic PortfolioVariant = "classic"
)

type ResumeTemplate string

const (
	ResumeModern       ResumeTemplate = "modern"
	ResumeProfessional ResumeTemplate = "professional"
	ResumeMinimal      ResumeTemplate = "minimal"
)

// End-date substitutions for ongoing items.
const (
	presentLabel = "Present"
	ongoingLabel = "Ongoing"
)

const emptyProfilePlaceholder = "Complete your profile information to preview your portfolio."

// Section kinds, stable identifiers for clients.
const (
	SectionSummary    = "summary"
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionProjects   = "projects"
	SectionSkills     = "skills"
)

// Document is the renderable view tree. Sections appear only when
// their source data is non-empty; a nil profile produces a document
// holding just Placeholder.
type Document struct {
	Variant     string    `json:"variant"`
	Placeholder string    `json:"placeholder,omitempty"`
	Header      Header    `json:"header"`
	Sections    []Section `json:"sections"`
}

type Header struct {
	Headline string  `json:"headline"`
	Summary  string  `json:"summary,omitempty"`
	Contact  []Field `json:"contact,omitempty"`
	Links    []Field `json:"links,omitempty"`
}

// Field is one labelled header value, e.g. {email, "Email", "a@b.c"}.
type Field struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

type Section struct {
	Kind    string  `json:"kind"`
	Title   string  `json:"title"`
	Entries []Entry `json:"entries"`
}

type Entry struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	Location string   `json:"location,omitempty"`
	Period   string   `json:"period,omitempty"`
	Body     string   `json:"body,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Link     string   `json:"link,omitempty"`
	ImageURL string   `json:"imageUrl,omitempty"`
}

func placeholderDocument(variant string) Document {
	return Document{Variant: variant, Placeholder: emptyProfilePlaceholder}
}

// contactFields emits the recognized contact keys in display order.
// Unknown keys stay in the profile but are not rendered.
func contactFields(p *profile.Profile) []Field {
	ordered := []struct{ key, label string }{
		{profile.ContactEmail, "Email"},
		{profile.ContactPhone, "Phone"},
		{profile.ContactLocation, "Location"},
	}
	var fields []Field
	for _, c := range ordered {
		if v := p.ContactInfo[c.key]; v != "" {
			fields = append(fields, Field{Key: c.key, Label: c.label, Value: v})
		}
	}
	return fields
}

func socialFields(p *profile.Profile) []Field {
	ordered := []struct{ key, label string }{
		{profile.SocialLinkedIn, "LinkedIn"},
		{profile.SocialGitHub, "GitHub"},
		{profile.SocialPortfolio, "Website"},
	}
	var fields []Field
	for _, s := range ordered {
		if v := p.SocialLinks[s.key]; v != "" {
			fields = append(fields, Field{Key: s.key, Label: s.label, Value: v})
		}
	}
	return fields
}

// period renders "start - end", substituting the ongoing label when
// current is set. Items with no dates at all render an empty period.
func period(start, end string, current bool, ongoing string) string {
	if current {
		end = ongoing
	}
	if start == "" && end == "" {
		return ""
	}
	return start + " - " + end
}
