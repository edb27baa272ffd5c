package render

import (
	"strings"

	"github.com/careerforge/api/internal/domain/profile"
)

// ResumeOptions come from the customize step: section toggles plus
// optional title/summary overrides. The zero value is not useful;
// use DefaultResumeOptions.
type ResumeOptions struct {
	Title             string `json:"title"`
	Summary           string `json:"summary"`
	IncludeExperience bool   `json:"include_experience"`
	IncludeEducation  bool   `json:"include_education"`
	IncludeSkills     bool   `json:"include_skills"`
	IncludeProjects   bool   `json:"include_projects"`
}

func DefaultResumeOptions() ResumeOptions {
	return ResumeOptions{
		IncludeExperience: true,
		IncludeEducation:  true,
		IncludeSkills:     true,
		IncludeProjects:   true,
	}
}

// Resume projects a profile into one of the resume templates.
// Unknown templates fall back to the modern template.
func Resume(p *profile.Profile, template ResumeTemplate, opts ResumeOptions) Document {
	if p == nil {
		return placeholderDocument(string(template))
	}

	headline := p.Headline
	if opts.Title != "" {
		headline = opts.Title
	}
	summary := p.Summary
	if opts.Summary != "" {
		summary = opts.Summary
	}

	doc := Document{
		Variant: string(template),
		Header: Header{
			Headline: headline,
			Contact:  contactFields(p),
		},
	}

	if summary != "" {
		title := "Professional Summary"
		switch template {
		case ResumeProfessional:
			title = "Profile"
		case ResumeMinimal:
			title = "Summary"
		}
		doc.Sections = append(doc.Sections, Section{
			Kind:    SectionSummary,
			Title:   title,
			Entries: []Entry{{Body: summary}},
		})
	}

	// The professional template leads with the skills sidebar.
	if template == ResumeProfessional {
		appendResumeSkills(&doc, p, opts)
	}

	if opts.IncludeExperience && len(p.Experience) > 0 {
		sec := Section{Kind: SectionExperience, Title: "Experience"}
		for _, exp := range sortedExperience(p.Experience) {
			sec.Entries = append(sec.Entries, resumeExperienceEntry(exp, template))
		}
		doc.Sections = append(doc.Sections, sec)
	}

	if opts.IncludeEducation && len(p.Education) > 0 {
		sec := Section{Kind: SectionEducation, Title: "Education"}
		for _, edu := range sortedEducation(p.Education) {
			sec.Entries = append(sec.Entries, resumeEducationEntry(edu, template))
		}
		doc.Sections = append(doc.Sections, sec)
	}

	if opts.IncludeProjects && len(p.Projects) > 0 {
		sec := Section{Kind: SectionProjects, Title: "Projects"}
		for _, prj := range p.Projects {
			sec.Entries = append(sec.Entries, Entry{
				Title:  prj.Title,
				Period: period(prj.StartDate, prj.EndDate, prj.Current, ongoingLabel),
				Body:   prj.Description,
				Tags:   prj.Technologies,
				Link:   prj.Link,
			})
		}
		doc.Sections = append(doc.Sections, sec)
	}

	if template != ResumeProfessional {
		appendResumeSkills(&doc, p, opts)
	}

	return doc
}

func resumeExperienceEntry(exp profile.ExperienceItem, template ResumeTemplate) Entry {
	e := Entry{
		Location: exp.Location,
		Period:   period(exp.StartDate, exp.EndDate, exp.Current, presentLabel),
		Body:     exp.Description,
	}
	switch template {
	case ResumeModern:
		// "Acme - Engineer" on one line.
		e.Title = joinDash(exp.Company, exp.Position)
	case ResumeProfessional, ResumeMinimal:
		e.Title = exp.Position
		e.Subtitle = joinNonEmpty(exp.Company, exp.Location)
		e.Location = ""
	}
	return e
}

func resumeEducationEntry(edu profile.EducationItem, template ResumeTemplate) Entry {
	e := Entry{
		Period: period(edu.StartDate, edu.EndDate, edu.Current, presentLabel),
	}
	switch template {
	case ResumeProfessional:
		e.Title = degreeLine(edu)
		e.Subtitle = joinNonEmpty(edu.School, edu.Location)
	default:
		e.Title = edu.School
		e.Subtitle = degreeLine(edu)
		e.Location = edu.Location
	}
	return e
}

func appendResumeSkills(doc *Document, p *profile.Profile, opts ResumeOptions) {
	if !opts.IncludeSkills || len(p.Skills) == 0 {
		return
	}
	sec := Section{Kind: SectionSkills, Title: "Skills"}
	for _, cat := range p.Skills {
		sec.Entries = append(sec.Entries, Entry{
			Title: cat.Name,
			Body:  strings.Join(cat.Skills, ", "),
			Tags:  cat.Skills,
		})
	}
	doc.Sections = append(doc.Sections, sec)
}

func joinDash(a, b string) string {
	switch {
	case a != "" && b != "":
		return a + " - " + b
	case a != "":
		return a
	default:
		return b
	}
}
