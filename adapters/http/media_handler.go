package http

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/careerforge/api/internal/application/builder"
	"github.com/careerforge/api/internal/application/service"
	profileUC "github.com/careerforge/api/internal/application/usecase/profile"
	"github.com/careerforge/api/internal/domain/profile"
	"github.com/careerforge/api/pkg/apperror"
	"github.com/careerforge/api/pkg/logger"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// MediaHandler uploads project screenshots into media storage and
// writes the resulting URL onto the project draft.
type MediaHandler struct {
	sessionProvider
	uploader service.Uploader
	logger   logger.Logger
}

func NewMediaHandler(
	uc *profileUC.ProfileUseCase,
	store *builder.Store,
	uploader service.Uploader,
	log logger.Logger,
) *MediaHandler {
	return &MediaHandler{
		sessionProvider: sessionProvider{store: store, profileUseCase: uc},
		uploader:        uploader,
		logger:          log,
	}
}

// UploadProjectImage stores the image and points the in-flight
// project draft at it.
func (h *MediaHandler) UploadProjectImage(c *gin.Context) {
	sess, err := h.session(c)
	if err != nil {
		c.Error(err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("image file is required", err))
		return
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		c.Error(apperror.NewInvalidInput("unsupported image type "+ext, nil))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInvalidInput("could not open uploaded file", err))
		return
	}
	defer file.Close()

	publicID := sess.OwnerID().String() + "-" + uuid.NewString()
	url, err := h.uploader.Upload(c.Request.Context(), file, "", publicID)
	if err != nil {
		c.Error(apperror.NewUnavailable("image upload failed", err))
		return
	}

	err = sess.Do(func() error {
		return sess.Projects().UpdateDraft(func(item *profile.ProjectItem) {
			item.ImageURL = url
		})
	})
	if err != nil {
		c.Error(mapBuilderErr(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": url})
}
