package resume

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerforge/api/internal/domain/profile"
	"github.com/careerforge/api/internal/render"
	"github.com/careerforge/api/pkg/apperror"
	"github.com/careerforge/api/pkg/logger"
)

type fakeEnhancer struct {
	lastText string
	lastJob  string
	result   string
	err      error
}

func (e *fakeEnhancer) Enhance(_ context.Context, text, jobDescription string) (string, error) {
	e.lastText = text
	e.lastJob = jobDescription
	if e.err != nil {
		return "", e.err
	}
	return e.result, nil
}

func resumeReadyProfile() *profile.Profile {
	p := profile.Empty(uuid.New())
	p.Headline = "Backend Engineer"
	p.Summary = "Ships reliable services."
	p.Experience = []profile.ExperienceItem{{ID: uuid.New(), Company: "Acme", Position: "Engineer", StartDate: "2022-01", Current: true}}
	p.Education = []profile.EducationItem{{ID: uuid.New(), School: "State U", Degree: "BS", Field: "CS", StartDate: "2014-09", EndDate: "2018-06"}}
	return p
}

func TestGenerateResume_RendersRequestedTemplate(t *testing.T) {
	uc := NewResumeUseCase(&fakeEnhancer{}, logger.NewNop())

	out, err := uc.ExecuteGenerateResume(context.Background(), GenerateResumeInput{
		Profile:  resumeReadyProfile(),
		Template: render.ResumeModern,
		Options:  render.DefaultResumeOptions(),
	})
	require.NoError(t, err)
	assert.Equal(t, "modern", out.Document.Variant)
	assert.Equal(t, "Backend Engineer", out.Document.Header.Headline)
}

func TestGenerateResume_RequiresExperienceAndEducation(t *testing.T) {
	uc := NewResumeUseCase(&fakeEnhancer{}, logger.NewNop())

	p := profile.Empty(uuid.New())
	p.Experience = []profile.ExperienceItem{{ID: uuid.New(), Company: "Acme"}}

	_, err := uc.ExecuteGenerateResume(context.Background(), GenerateResumeInput{
		Profile:  p,
		Template: render.ResumeModern,
		Options:  render.DefaultResumeOptions(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestGenerateResume_TailorsSummaryToJob(t *testing.T) {
	enhancer := &fakeEnhancer{result: "Tailored summary."}
	uc := NewResumeUseCase(enhancer, logger.NewNop())

	out, err := uc.ExecuteGenerateResume(context.Background(), GenerateResumeInput{
		Profile:     resumeReadyProfile(),
		Template:    render.ResumeProfessional,
		Options:     render.DefaultResumeOptions(),
		TailorToJob: "Senior Go engineer, payments team",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ships reliable services.", enhancer.lastText)
	assert.Equal(t, "Senior Go engineer, payments team", enhancer.lastJob)

	require.NotEmpty(t, out.Document.Sections)
	summary := out.Document.Sections[0]
	assert.Equal(t, render.SectionSummary, summary.Kind)
	assert.Equal(t, "Tailored summary.", summary.Entries[0].Body)
}

func TestGenerateResume_EnhancerFailureIsUnavailable(t *testing.T) {
	uc := NewResumeUseCase(&fakeEnhancer{err: errors.New("quota exhausted")}, logger.NewNop())

	_, err := uc.ExecuteGenerateResume(context.Background(), GenerateResumeInput{
		Profile:     resumeReadyProfile(),
		Template:    render.ResumeModern,
		Options:     render.DefaultResumeOptions(),
		TailorToJob: "any job",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrUnavailable)
}

func TestEnhanceText(t *testing.T) {
	enhancer := &fakeEnhancer{result: "Led a team of five engineers."}
	uc := NewResumeUseCase(enhancer, logger.NewNop())

	out, err := uc.ExecuteEnhanceText(context.Background(), EnhanceTextInput{Text: "managed people"})
	require.NoError(t, err)
	assert.Equal(t, "Led a team of five engineers.", out.Text)

	_, err = uc.ExecuteEnhanceText(context.Background(), EnhanceTextInput{Text: "   "})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}
