package auth

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/careerforge/api/internal/application/service"
	"github.com/careerforge/api/pkg/apperror"
	"github.com/careerforge/api/pkg/auth"
	"github.com/careerforge/api/pkg/logger"
)

type LogoutUseCase struct {
	jwtSvc   *auth.JWTService
	denylist service.TokenDenylist
	logger   logger.Logger
}

func NewLogoutUseCase(jwtSvc *auth.JWTService, denylist service.TokenDenylist, log logger.Logger) *LogoutUseCase {
	return &LogoutUseCase{
		jwtSvc:   jwtSvc,
		denylist: denylist,
		logger:   log,
	}
}

type LogoutInput struct {
	Token string
}

// Execute revokes the presented token by denylisting its jti for the
// rest of its lifetime. Sign-out with an already-invalid token is
// treated as success.
func (uc *LogoutUseCase) Execute(ctx context.Context, input LogoutInput) error {
	ctx, span := tracer.Start(ctx, "Logout")
	defer span.End()

	claims, err := uc.jwtSvc.ValidateToken(input.Token)
	if err != nil {
		return nil
	}

	ttl := uc.jwtSvc.TokenLifespan()
	if claims.ExpiresAt != nil {
		if remaining := time.Until(claims.ExpiresAt.Time); remaining > 0 {
			ttl = remaining
		}
	}

	if err := uc.denylist.Revoke(ctx, claims.ID, ttl); err != nil {
		uc.logger.Error("Failed to revoke token", err, zap.String("owner_id", claims.OwnerID.String()))
		span.RecordError(err)
		return apperror.NewUnavailable("failed to revoke token", err)
	}
	return nil
}
