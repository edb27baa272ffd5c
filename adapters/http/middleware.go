package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/careerforge/api/internal/application/service"
	"github.com/careerforge/api/pkg/apperror"
	"github.com/careerforge/api/pkg/auth"
	"github.com/careerforge/api/pkg/logger"
)

const (
	GinContextKeyOwnerID = "ownerID"
	GinContextKeyToken   = "accessToken"
)

func AuthMiddleware(jwtSvc *auth.JWTService, denylist service.TokenDenylist, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		revoked, err := denylist.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			// Denylist being unreachable must not lock every user out.
			log.Warn("Denylist check failed", zap.Error(err))
		} else if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
			return
		}

		c.Set(GinContextKeyOwnerID, claims.OwnerID)
		c.Set(GinContextKeyToken, tokenString)

		c.Next()
	}
}

// ErrorMiddleware converts errors attached by handlers into one JSON
// response with the right status code.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if e, ok := err.(*apperror.AppError); ok {
			appErr = e
		} else {
			appErr = apperror.NewInternal("unexpected error", err)
		}

		status := apperror.ToHTTPStatus(appErr)
		if status >= http.StatusInternalServerError {
			log.Error("Request failed", appErr, zap.String("path", c.Request.URL.Path))
		}
		c.JSON(status, appErr.ToJSON())
	}
}

func GetOwnerIDFromGinContext(c *gin.Context) (uuid.UUID, bool) {
	ownerID, ok := c.Get(GinContextKeyOwnerID)
	if !ok {
		return uuid.Nil, false
	}
	ownerIDUUID, ok := ownerID.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}
	return ownerIDUUID, true
}
