package http

import (
	"github.com/gin-gonic/gin"

	"github.com/careerforge/api/internal/application/builder"
	profileUC "github.com/careerforge/api/internal/application/usecase/profile"
	"github.com/careerforge/api/pkg/apperror"
)

// sessionProvider hands each authenticated request its builder
// session, creating one from the stored profile on first use.
type sessionProvider struct {
	store          *builder.Store
	profileUseCase *profileUC.ProfileUseCase
}

func (sp *sessionProvider) session(c *gin.Context) (*builder.Session, error) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		return nil, apperror.NewPermissionDenied("ownerID not found in context")
	}

	if sess, ok := sp.store.Get(ownerID); ok {
		return sess, nil
	}

	output, err := sp.profileUseCase.ExecuteGetProfile(c.Request.Context(), profileUC.GetProfileInput{OwnerID: ownerID})
	if err != nil {
		return nil, err
	}
	sess := builder.NewSession(output.Profile)
	sp.store.Put(sess)
	return sess, nil
}
