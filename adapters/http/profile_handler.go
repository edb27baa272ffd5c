package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careerforge/api/internal/application/builder"
	profileUC "github.com/careerforge/api/internal/application/usecase/profile"
	"github.com/careerforge/api/internal/domain/profile"
	"github.com/careerforge/api/pkg/apperror"
	"github.com/careerforge/api/pkg/logger"
)

type ProfileHandler struct {
	sessionProvider
	logger logger.Logger
}

func NewProfileHandler(uc *profileUC.ProfileUseCase, store *builder.Store, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		sessionProvider: sessionProvider{store: store, profileUseCase: uc},
		logger:          log,
	}
}

// GetProfile returns the working copy, including unsaved edits.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	sess, err := h.session(c)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProfileDTO(sess.Snapshot()))
}

// UpdateField overwrites one basic-info scalar (headline or summary).
func (h *ProfileHandler) UpdateField(c *gin.Context) {
	sess, err := h.session(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for field update", err))
		return
	}

	if err := sess.SetField(req.Field, req.Value); err != nil {
		if errors.Is(err, profile.ErrUnknownField) {
			c.Error(apperror.NewInvalidInput("unknown field "+req.Field, err))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProfileDTO(sess.Snapshot()))
}

func (h *ProfileHandler) UpdateContact(c *gin.Context) {
	sess, err := h.session(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req KeyValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for contact update", err))
		return
	}

	sess.SetContactField(req.Key, req.Value)
	c.JSON(http.StatusOK, ToProfileDTO(sess.Snapshot()))
}

func (h *ProfileHandler) UpdateSocial(c *gin.Context) {
	sess, err := h.session(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req KeyValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for social update", err))
		return
	}

	sess.SetSocialField(req.Key, req.Value)
	c.JSON(http.StatusOK, ToProfileDTO(sess.Snapshot()))
}

// SaveProfile persists the whole working copy at once.
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	sess, err := h.session(c)
	if err != nil {
		c.Error(err)
		return
	}

	output, err := h.profileUseCase.ExecuteSaveProfile(c.Request.Context(), profileUC.SaveProfileInput{
		Profile: sess.Snapshot(),
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

// ImportResume accepts a multipart resume upload and merges the
// parsed fields into the working copy.
func (h *ProfileHandler) ImportResume(c *gin.Context) {
	sess, err := h.session(c)
	if err != nil {
		c.Error(err)
		return
	}
	ownerID := sess.OwnerID()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("resume file is required", err))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInvalidInput("could not open uploaded file", err))
		return
	}
	defer file.Close()

	output, err := h.profileUseCase.ExecuteImportResume(c.Request.Context(), profileUC.ImportResumeInput{
		OwnerID:  ownerID,
		File:     file,
		Filename: fileHeader.Filename,
		Profile:  sess.Snapshot(),
	})
	if err != nil {
		c.Error(err)
		return
	}

	sess.Reload(output.Profile)
	c.JSON(http.StatusOK, ToProfileDTO(sess.Snapshot()))
}

func (h *ProfileHandler) ImportSocial(c *gin.Context) {
	sess, err := h.session(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req ImportSocialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for social import", err))
		return
	}

	output, err := h.profileUseCase.ExecuteImportSocial(c.Request.Context(), profileUC.ImportSocialInput{
		OwnerID:  sess.OwnerID(),
		Provider: c.Param("provider"),
		Handle:   req.Handle,
		Profile:  sess.Snapshot(),
	})
	if err != nil {
		c.Error(err)
		return
	}

	sess.Reload(output.Profile)
	c.JSON(http.StatusOK, ToProfileDTO(sess.Snapshot()))
}
