package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careerforge/api/internal/application/builder"
	profileUC "github.com/careerforge/api/internal/application/usecase/profile"
	resumeUC "github.com/careerforge/api/internal/application/usecase/resume"
	"github.com/careerforge/api/internal/render"
	"github.com/careerforge/api/pkg/apperror"
	"github.com/careerforge/api/pkg/logger"
)

type PreviewHandler struct {
	sessionProvider
	resumeUseCase *resumeUC.ResumeUseCase
	logger        logger.Logger
}

func NewPreviewHandler(
	uc *profileUC.ProfileUseCase,
	store *builder.Store,
	resumeUseCase *resumeUC.ResumeUseCase,
	log logger.Logger,
) *PreviewHandler {
	return &PreviewHandler{
		sessionProvider: sessionProvider{store: store, profileUseCase: uc},
		resumeUseCase:   resumeUseCase,
		logger:          log,
	}
}

// PortfolioPreview renders the working copy, unsaved edits included,
// in the requested layout.
func (h *PreviewHandler) PortfolioPreview(c *gin.Context) {
	sess, err := h.session(c)
	if err != nil {
		c.Error(err)
		return
	}

	variant := render.PortfolioVariant(c.DefaultQuery("variant", string(render.PortfolioModern)))
	switch variant {
	case render.PortfolioModern, render.PortfolioClassic:
	default:
		c.Error(apperror.NewInvalidInput("unknown portfolio variant "+string(variant), nil))
		return
	}

	doc := render.Portfolio(sess.Snapshot(), variant)
	c.JSON(http.StatusOK, doc)
}

// GenerateResume renders a resume from the working copy with the
// submitted template and options.
func (h *PreviewHandler) GenerateResume(c *gin.Context) {
	sess, err := h.session(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req GenerateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for resume generation", err))
		return
	}

	template := render.ResumeTemplate(req.Template)
	switch template {
	case render.ResumeModern, render.ResumeProfessional, render.ResumeMinimal:
	default:
		c.Error(apperror.NewInvalidInput("unknown resume template "+req.Template, nil))
		return
	}

	opts := render.DefaultResumeOptions()
	opts.Title = req.Options.Title
	opts.Summary = req.Options.Summary
	if req.Options.IncludeExperience != nil {
		opts.IncludeExperience = *req.Options.IncludeExperience
	}
	if req.Options.IncludeEducation != nil {
		opts.IncludeEducation = *req.Options.IncludeEducation
	}
	if req.Options.IncludeSkills != nil {
		opts.IncludeSkills = *req.Options.IncludeSkills
	}
	if req.Options.IncludeProjects != nil {
		opts.IncludeProjects = *req.Options.IncludeProjects
	}

	output, err := h.resumeUseCase.ExecuteGenerateResume(c.Request.Context(), resumeUC.GenerateResumeInput{
		Profile:     sess.Snapshot(),
		Template:    template,
		Options:     opts,
		TailorToJob: req.TailorToJob,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Document)
}

// EnhanceText rewrites one free-text field through the enhancement
// service.
func (h *PreviewHandler) EnhanceText(c *gin.Context) {
	var req EnhanceTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for enhancement", err))
		return
	}

	output, err := h.resumeUseCase.ExecuteEnhanceText(c.Request.Context(), resumeUC.EnhanceTextInput{
		Text:           req.Text,
		JobDescription: req.JobDescription,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": output.Text})
}
