package render

import "github.com/careerforge/api/internal/domain/profile"

// Portfolio projects a profile into one of the portfolio layouts.
// Unknown variants fall back to the modern layout.
func Portfolio(p *profile.Profile, variant PortfolioVariant) Document {
	if p == nil {
		return placeholderDocument(string(variant))
	}
	switch variant {
	case PortfolioClassic:
		return portfolioClassic(p)
	default:
		return portfolioModern(p)
	}
}

// Modern: hero header with summary, position-first experience
// entries, card-style projects with images and tech tags.
func portfolioModern(p *profile.Profile) Document {
	doc := Document{
		Variant: string(PortfolioModern),
		Header: Header{
			Headline: p.Headline,
			Summary:  p.Summary,
			Contact:  contactFields(p),
			Links:    socialFields(p),
		},
	}

	if len(p.Experience) > 0 {
		sec := Section{Kind: SectionExperience, Title: "Experience"}
		for _, exp := range sortedExperience(p.Experience) {
			sec.Entries = append(sec.Entries, Entry{
				Title:    exp.Position,
				Subtitle: exp.Company,
				Location: exp.Location,
				Period:   period(exp.StartDate, exp.EndDate, exp.Current, presentLabel),
				Body:     exp.Description,
			})
		}
		doc.Sections = append(doc.Sections, sec)
	}

	if len(p.Education) > 0 {
		sec := Section{Kind: SectionEducation, Title: "Education"}
		for _, edu := range sortedEducation(p.Education) {
			sec.Entries = append(sec.Entries, Entry{
				Title:    edu.School,
				Subtitle: degreeLine(edu),
				Location: edu.Location,
				Period:   period(edu.StartDate, edu.EndDate, edu.Current, presentLabel),
				Body:     edu.Description,
			})
		}
		doc.Sections = append(doc.Sections, sec)
	}

	if len(p.Projects) > 0 {
		sec := Section{Kind: SectionProjects, Title: "Projects"}
		for _, prj := range p.Projects {
			sec.Entries = append(sec.Entries, Entry{
				Title:    prj.Title,
				Period:   period(prj.StartDate, prj.EndDate, prj.Current, ongoingLabel),
				Body:     prj.Description,
				Tags:     prj.Technologies,
				Link:     prj.Link,
				ImageURL: prj.ImageURL,
			})
		}
		doc.Sections = append(doc.Sections, sec)
	}

	if len(p.Skills) > 0 {
		sec := Section{Kind: SectionSkills, Title: "Skills"}
		for _, cat := range p.Skills {
			sec.Entries = append(sec.Entries, Entry{
				Title: cat.Name,
				Tags:  cat.Skills,
			})
		}
		doc.Sections = append(doc.Sections, sec)
	}

	return doc
}

// Classic: centered serif-style header, company-first experience
// entries, projects as a flat list with a technologies line.
func portfolioClassic(p *profile.Profile) Document {
	doc := Document{
		Variant: string(PortfolioClassic),
		Header: Header{
			Headline: p.Headline,
			Summary:  p.Summary,
			Contact:  contactFields(p),
			Links:    socialFields(p),
		},
	}

	if len(p.Experience) > 0 {
		sec := Section{Kind: SectionExperience, Title: "Experience"}
		for _, exp := range sortedExperience(p.Experience) {
			sec.Entries = append(sec.Entries, Entry{
				Title:    exp.Company,
				Subtitle: joinNonEmpty(exp.Position, exp.Location),
				Period:   period(exp.StartDate, exp.EndDate, exp.Current, presentLabel),
				Body:     exp.Description,
			})
		}
		doc.Sections = append(doc.Sections, sec)
	}

	if len(p.Education) > 0 {
		sec := Section{Kind: SectionEducation, Title: "Education"}
		for _, edu := range sortedEducation(p.Education) {
			sec.Entries = append(sec.Entries, Entry{
				Title:    edu.School,
				Subtitle: joinNonEmpty(degreeLine(edu), edu.Location),
				Period:   period(edu.StartDate, edu.EndDate, edu.Current, presentLabel),
				Body:     edu.Description,
			})
		}
		doc.Sections = append(doc.Sections, sec)
	}

	if len(p.Projects) > 0 {
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

	if len(p.Skills) > 0 {
		sec := Section{Kind: SectionSkills, Title: "Skills"}
		for _, cat := range p.Skills {
			sec.Entries = append(sec.Entries, Entry{
				Title: cat.Name,
				Tags:  cat.Skills,
			})
		}
		doc.Sections = append(doc.Sections, sec)
	}

	return doc
}

// "BS in CS" when both are set, otherwise whichever is present.
func degreeLine(edu profile.EducationItem) string {
	switch {
	case edu.Degree != "" && edu.Field != "":
		return edu.Degree + " in " + edu.Field
	case edu.Degree != "":
		return edu.Degree
	default:
		return edu.Field
	}
}

func joinNonEmpty(a, b string) string {
	switch {
	case a != "" && b != "":
		return a + ", " + b
	case a != "":
		return a
	default:
		return b
	}
}
