package resume

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/careerforge/api/internal/application/service"
	"github.com/careerforge/api/internal/domain/profile"
	"github.com/careerforge/api/internal/render"
	"github.com/careerforge/api/pkg/apperror"
	"github.com/careerforge/api/pkg/logger"
)

var tracer = otel.Tracer("resume_usecase")

type ResumeUseCase struct {
	enhancer service.Enhancer
	logger   logger.Logger
}

func NewResumeUseCase(enhancer service.Enhancer, log logger.Logger) *ResumeUseCase {
	return &ResumeUseCase{enhancer: enhancer, logger: log}
}

type GenerateResumeInput struct {
	Profile  *profile.Profile
	Template render.ResumeTemplate
	Options  render.ResumeOptions
	// When set, the summary is rewritten to target this posting before
	// rendering.
	TailorToJob string
}

type GenerateResumeOutput struct {
	Document render.Document
}

// ExecuteGenerateResume renders a resume document from the working
// profile. Generation requires at least one experience and one
// education entry.
func (uc *ResumeUseCase) ExecuteGenerateResume(ctx context.Context, input GenerateResumeInput) (*GenerateResumeOutput, error) {
	ctx, span := tracer.Start(ctx, "ExecuteGenerateResume")
	defer span.End()
	span.SetAttributes(attribute.String("template", string(input.Template)))

	p := input.Profile
	if p == nil || !p.HasResumeData() {
		return nil, apperror.NewInvalidInput("add at least one experience and one education entry before generating a resume", nil)
	}

	opts := input.Options
	if input.TailorToJob != "" {
		summary := opts.Summary
		if summary == "" {
			summary = p.Summary
		}
		tailored, err := uc.enhancer.Enhance(ctx, summary, input.TailorToJob)
		if err != nil {
			span.RecordError(err)
			return nil, apperror.NewUnavailable("summary enhancement failed", err)
		}
		opts.Summary = tailored
	}

	doc := render.Resume(p, input.Template, opts)
	return &GenerateResumeOutput{Document: doc}, nil
}

type EnhanceTextInput struct {
	Text           string
	JobDescription string
}

type EnhanceTextOutput struct {
	Text string
}

// ExecuteEnhanceText rewrites a single free-text field, e.g. an
// experience description, through the enhancement service.
func (uc *ResumeUseCase) ExecuteEnhanceText(ctx context.Context, input EnhanceTextInput) (*EnhanceTextOutput, error) {
	ctx, span := tracer.Start(ctx, "ExecuteEnhanceText")
	defer span.End()

	if strings.TrimSpace(input.Text) == "" {
		return nil, apperror.NewInvalidInput("nothing to enhance", nil)
	}

	out, err := uc.enhancer.Enhance(ctx, input.Text, input.JobDescription)
	if err != nil {
		span.RecordError(err)
		return nil, apperror.NewUnavailable("text enhancement failed", err)
	}
	return &EnhanceTextOutput{Text: out}, nil
}
