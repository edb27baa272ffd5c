package render

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerforge/api/internal/domain/profile"
)

func sampleProfile() *profile.Profile {
	p := profile.Empty(uuid.New())
	p.Headline = "Jamie Rivera"
	p.Summary = "Backend engineer."
	p.ContactInfo[profile.ContactEmail] = "jamie@example.com"
	p.SocialLinks[profile.SocialGitHub] = "https://github.com/jamie"
	p.Experience = []profile.ExperienceItem{
		{ID: uuid.New(), Company: "Acme", Position: "Engineer", StartDate: "2022-01", Current: true},
	}
	p.Education = []profile.EducationItem{
		{ID: uuid.New(), School: "State U", Degree: "BS", Field: "CS", StartDate: "2018-09", EndDate: "2022-05"},
	}
	p.Projects = []profile.ProjectItem{
		{ID: uuid.New(), Title: "CLI Tool", Technologies: []string{"Go", "Cobra"}, StartDate: "2023-02", Current: true},
	}
	p.Skills = []profile.SkillCategory{
		{ID: uuid.New(), Name: "Languages", Skills: []string{"Go", "SQL"}},
	}
	return p
}

func sectionByKind(t *testing.T, doc Document, kind string) Section {
	t.Helper()
	for _, s := range doc.Sections {
		if s.Kind == kind {
			return s
		}
	}
	t.Fatalf("document %q has no %q section", doc.Variant, kind)
	return Section{}
}

func TestSortedExperience_CurrentFirstThenStartDateDescending(t *testing.T) {
	items := []profile.ExperienceItem{
		{ID: uuid.New(), StartDate: "2018-05", Current: false},
		{ID: uuid.New(), StartDate: "2020-03", Current: true},
		{ID: uuid.New(), StartDate: "2021-01", Current: false},
	}

	got := sortedExperience(items)

	require.Len(t, got, 3)
	assert.True(t, got[0].Current)
	assert.Equal(t, "2020-03", got[0].StartDate)
	assert.Equal(t, "2021-01", got[1].StartDate)
	assert.Equal(t, "2018-05", got[2].StartDate)

	// Input order untouched.
	assert.Equal(t, "2018-05", items[0].StartDate)
}

func TestSortedExperience_StableOnTies(t *testing.T) {
	first := uuid.New()
	second := uuid.New()
	items := []profile.ExperienceItem{
		{ID: first, StartDate: "2020-01"},
		{ID: second, StartDate: "2020-01"},
	}

	got := sortedExperience(items)

	assert.Equal(t, first, got[0].ID)
	assert.Equal(t, second, got[1].ID)
}

func TestPortfolio_CurrentItemRendersPresentNotStoredEndDate(t *testing.T) {
	p := sampleProfile()
	p.Experience[0].EndDate = "2099-12"

	doc := Portfolio(p, PortfolioModern)

	exp := sectionByKind(t, doc, SectionExperience)
	assert.Equal(t, "2022-01 - Present", exp.Entries[0].Period)
	assert.NotContains(t, exp.Entries[0].Period, "2099-12")

	prj := sectionByKind(t, doc, SectionProjects)
	assert.Equal(t, "2023-02 - Ongoing", prj.Entries[0].Period)
}

func TestPortfolio_NilProfileRendersPlaceholder(t *testing.T) {
	doc := Portfolio(nil, PortfolioModern)

	assert.NotEmpty(t, doc.Placeholder)
	assert.Empty(t, doc.Sections)
}

func TestPortfolio_EmptyProfileRendersHeaderOnly(t *testing.T) {
	doc := Portfolio(profile.Empty(uuid.New()), PortfolioClassic)

	assert.Empty(t, doc.Placeholder)
	assert.Empty(t, doc.Sections)
}

func TestPortfolio_VariantsShareDataButDifferInLayout(t *testing.T) {
	p := sampleProfile()

	modern := Portfolio(p, PortfolioModern)
	classic := Portfolio(p, PortfolioClassic)

	assert.Equal(t, string(PortfolioModern), modern.Variant)
	assert.Equal(t, string(PortfolioClassic), classic.Variant)

	// Modern leads experience entries with the position, classic with
	// the company.
	assert.Equal(t, "Engineer", sectionByKind(t, modern, SectionExperience).Entries[0].Title)
	assert.Equal(t, "Acme", sectionByKind(t, classic, SectionExperience).Entries[0].Title)
}

func TestPortfolio_ProjectsKeepStoredOrder(t *testing.T) {
	p := sampleProfile()
	p.Projects = []profile.ProjectItem{
		{ID: uuid.New(), Title: "Zulu", StartDate: "2019-01"},
		{ID: uuid.New(), Title: "Alpha", StartDate: "2024-01"},
	}

	doc := Portfolio(p, PortfolioModern)

	prj := sectionByKind(t, doc, SectionProjects)
	assert.Equal(t, "Zulu", prj.Entries[0].Title)
	assert.Equal(t, "Alpha", prj.Entries[1].Title)
}

func TestPortfolio_DoesNotMutateProfile(t *testing.T) {
	p := sampleProfile()
	p.Experience = append(p.Experience, profile.ExperienceItem{
		ID: uuid.New(), Company: "Older", StartDate: "2010-01",
	})
	before := p.Clone()

	Portfolio(p, PortfolioModern)
	Portfolio(p, PortfolioClassic)

	assert.Equal(t, before, p)
}

func TestResume_ModernScenario(t *testing.T) {
	p := profile.Empty(uuid.New())
	p.Experience = []profile.ExperienceItem{
		{ID: uuid.New(), Company: "Acme", Position: "Engineer", StartDate: "2022-01", Current: true},
	}
	p.Education = []profile.EducationItem{
		{ID: uuid.New(), School: "State U", Degree: "BS", Field: "CS", StartDate: "2018-09", EndDate: "2022-05"},
	}

	doc := Resume(p, ResumeModern, DefaultResumeOptions())

	var kinds []string
	for _, s := range doc.Sections {
		kinds = append(kinds, s.Kind)
	}
	require.Equal(t, []string{SectionExperience, SectionEducation}, kinds)

	exp := doc.Sections[0]
	assert.Equal(t, "Experience", exp.Title)
	assert.Equal(t, "Acme - Engineer", exp.Entries[0].Title)
	assert.Equal(t, "2022-01 - Present", exp.Entries[0].Period)

	edu := doc.Sections[1]
	assert.Equal(t, "Education", edu.Title)
	assert.Equal(t, "State U", edu.Entries[0].Title)
	assert.Equal(t, "BS in CS", edu.Entries[0].Subtitle)
	assert.Equal(t, "2018-09 - 2022-05", edu.Entries[0].Period)
}

func TestResume_ProfessionalLeadsWithSkills(t *testing.T) {
	doc := Resume(sampleProfile(), ResumeProfessional, DefaultResumeOptions())

	require.NotEmpty(t, doc.Sections)
	// Summary comes first when present, then the skills sidebar.
	assert.Equal(t, SectionSummary, doc.Sections[0].Kind)
	assert.Equal(t, SectionSkills, doc.Sections[1].Kind)
}

func TestResume_SectionToggles(t *testing.T) {
	opts := DefaultResumeOptions()
	opts.IncludeEducation = false
	opts.IncludeProjects = false

	doc := Resume(sampleProfile(), ResumeMinimal, opts)

	for _, s := range doc.Sections {
		assert.NotEqual(t, SectionEducation, s.Kind)
		assert.NotEqual(t, SectionProjects, s.Kind)
	}
}

func TestResume_TitleAndSummaryOverrides(t *testing.T) {
	opts := DefaultResumeOptions()
	opts.Title = "Senior Frontend Developer"
	opts.Summary = "Tailored summary."

	doc := Resume(sampleProfile(), ResumeModern, opts)

	assert.Equal(t, "Senior Frontend Developer", doc.Header.Headline)
	assert.Equal(t, "Tailored summary.", sectionByKind(t, doc, SectionSummary).Entries[0].Body)
}

func TestResume_NilProfileRendersPlaceholder(t *testing.T) {
	doc := Resume(nil, ResumeMinimal, DefaultResumeOptions())

	assert.NotEmpty(t, doc.Placeholder)
	assert.Empty(t, doc.Sections)
}

func TestResume_SkillsJoinedForMinimal(t *testing.T) {
	doc := Resume(sampleProfile(), ResumeMinimal, DefaultResumeOptions())

	skills := sectionByKind(t, doc, SectionSkills)
	assert.Equal(t, "Languages", skills.Entries[0].Title)
	assert.Equal(t, "Go, SQL", skills.Entries[0].Body)
}

func TestPeriod_EmptyDates(t *testing.T) {
	assert.Equal(t, "", period("", "", false, presentLabel))
	assert.Equal(t, " - Present", period("", "", true, presentLabel))
	assert.Equal(t, "2020-01 - ", period("2020-01", "", false, presentLabel))
}
