package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careerforge/api/internal/application/builder"
	profileUC "github.com/careerforge/api/internal/application/usecase/profile"
	shareUC "github.com/careerforge/api/internal/application/usecase/share"
	"github.com/careerforge/api/pkg/apperror"
	"github.com/careerforge/api/pkg/logger"
)

type ShareHandler struct {
	sessionProvider
	shareUseCase *shareUC.ShareUseCase
	logger       logger.Logger
}

func NewShareHandler(
	uc *profileUC.ProfileUseCase,
	store *builder.Store,
	shareUseCase *shareUC.ShareUseCase,
	log logger.Logger,
) *ShareHandler {
	return &ShareHandler{
		sessionProvider: sessionProvider{store: store, profileUseCase: uc},
		shareUseCase:    shareUseCase,
		logger:          log,
	}
}

// ShareLink returns the platform intent URL for sharing the public
// portfolio page.
func (h *ShareHandler) ShareLink(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	platform := c.Query("platform")
	if platform == "" {
		c.JSON(http.StatusOK, gin.H{"url": h.shareUseCase.PublicURL(ownerID)})
		return
	}

	output, err := h.shareUseCase.ExecuteShareLink(c.Request.Context(), shareUC.ShareLinkInput{
		OwnerID:  ownerID,
		Platform: platform,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": output.URL})
}

// Embed returns the iframe snippet for the public portfolio page.
func (h *ShareHandler) Embed(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"embed_code": h.shareUseCase.EmbedSnippet(ownerID)})
}

// Export streams a downloadable portfolio artifact.
func (h *ShareHandler) Export(c *gin.Context) {
	sess, err := h.session(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for export", err))
		return
	}

	output, err := h.shareUseCase.ExecuteExport(c.Request.Context(), shareUC.ExportInput{
		Profile: sess.Snapshot(),
		Format:  req.Format,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+output.Filename+`"`)
	c.Data(http.StatusOK, output.ContentType, output.Data)
}

// Deploy publishes the portfolio and returns the live URL.
func (h *ShareHandler) Deploy(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	output, err := h.shareUseCase.ExecuteDeploy(c.Request.Context(), shareUC.DeployInput{OwnerID: ownerID})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": output.URL})
}
