package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/careerforge/api/internal/application/service"
	profileUC "github.com/careerforge/api/internal/application/usecase/profile"
	"github.com/careerforge/api/internal/render"
	"github.com/careerforge/api/pkg/apperror"
	"github.com/careerforge/api/pkg/logger"
)

// PublicHandler serves the unauthenticated portfolio pages: the share
// link target and the profile directory.
type PublicHandler struct {
	profileUseCase *profileUC.ProfileUseCase
	renderCache    service.RenderCache
	logger         logger.Logger
}

func NewPublicHandler(uc *profileUC.ProfileUseCase, cache service.RenderCache, log logger.Logger) *PublicHandler {
	return &PublicHandler{
		profileUseCase: uc,
		renderCache:    cache,
		logger:         log,
	}
}

// Portfolio renders the saved (not working) profile of any user.
// Documents are cached; a save invalidates the cache.
func (h *PublicHandler) Portfolio(c *gin.Context) {
	ownerID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid user id", err))
		return
	}

	variant := render.PortfolioVariant(c.DefaultQuery("variant", string(render.PortfolioModern)))
	switch variant {
	case render.PortfolioModern, render.PortfolioClassic:
	default:
		c.Error(apperror.NewInvalidInput("unknown portfolio variant "+string(variant), nil))
		return
	}

	if doc, ok, err := h.renderCache.Get(c.Request.Context(), ownerID, variant); err != nil {
		h.logger.Warn("Render cache read failed", zap.Error(err))
	} else if ok {
		c.JSON(http.StatusOK, doc)
		return
	}

	output, err := h.profileUseCase.ExecuteGetProfile(c.Request.Context(), profileUC.GetProfileInput{OwnerID: ownerID})
	if err != nil {
		c.Error(err)
		return
	}

	doc := render.Portfolio(output.Profile, variant)
	if err := h.renderCache.Set(c.Request.Context(), ownerID, variant, &doc); err != nil {
		h.logger.Warn("Render cache write failed", zap.Error(err))
	}
	c.JSON(http.StatusOK, doc)
}

// Directory lists users with a published headline, newest first.
func (h *PublicHandler) Directory(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	summaries, err := h.profileUseCase.ExecuteListPublic(c.Request.Context(), profileUC.ListPublicInput{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": summaries})
}
