package simulated

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/careerforge/api/internal/application/service"
	"github.com/careerforge/api/internal/domain/profile"
	"github.com/careerforge/api/pkg/apperror"
)

const parseDelay = 1500 * time.Millisecond

type resumeParser struct{}

func NewResumeParser() service.ResumeParser {
	return &resumeParser{}
}

func (s *resumeParser) Parse(ctx context.Context, file io.Reader, filename string) (*profile.Profile, error) {
	lower := strings.ToLower(filename)
	if !strings.HasSuffix(lower, ".pdf") && !strings.HasSuffix(lower, ".docx") {
		return nil, apperror.NewInvalidInput("only PDF and DOCX resumes are supported", nil)
	}
	// Drain the upload like a real parser would read it.
	if _, err := io.Copy(io.Discard, file); err != nil {
		return nil, apperror.NewInvalidInput("could not read resume file", err)
	}

	if err := wait(ctx, parseDelay); err != nil {
		return nil, err
	}

	p := profile.Empty(uuid.Nil)
	p.Headline = "Software Engineer"
	p.Summary = "Experienced engineer with a background in building web applications."
	p.ContactInfo[profile.ContactEmail] = "imported@example.com"
	p.Experience = []profile.ExperienceItem{{
		ID:          uuid.New(),
		Company:     "Imported Corp",
		Position:    "Software Engineer",
		StartDate:   "2021-03",
		Current:     true,
		Description: "Extracted from uploaded resume.",
	}}
	p.Education = []profile.EducationItem{{
		ID:        uuid.New(),
		School:    "Imported University",
		Degree:    "BS",
		Field:     "Computer Science",
		StartDate: "2013-09",
		EndDate:   "2017-06",
	}}
	p.Skills = []profile.SkillCategory{{
		ID:     uuid.New(),
		Name:   "Technical",
		Skills: []string{"JavaScript", "Python", "SQL"},
	}}
	return p, nil
}
