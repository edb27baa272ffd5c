package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerforge/api/internal/domain/user"
	"github.com/careerforge/api/pkg/apperror"
	"github.com/careerforge/api/pkg/auth"
	"github.com/careerforge/api/pkg/logger"
)

type fakeUserRepo struct {
	byEmail map[string]*user.User
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, apperror.NewNotFound("user", email)
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperror.NewNotFound("user", id.String())
}

type fakeDenylist struct {
	revoked map[string]time.Duration
	err     error
}

func newFakeDenylist() *fakeDenylist {
	return &fakeDenylist{revoked: map[string]time.Duration{}}
}

func (d *fakeDenylist) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if d.err != nil {
		return d.err
	}
	d.revoked[jti] = ttl
	return nil
}

func (d *fakeDenylist) IsRevoked(_ context.Context, jti string) (bool, error) {
	_, ok := d.revoked[jti]
	return ok, nil
}

func seedUser(t *testing.T, email, password string) (*fakeUserRepo, *user.User) {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	u := &user.User{ID: uuid.New(), Email: email, PasswordHash: hash}
	return &fakeUserRepo{byEmail: map[string]*user.User{email: u}}, u
}

func TestLogin_Succeeds(t *testing.T) {
	repo, u := seedUser(t, "dev@example.com", "correct horse")
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	uc := NewLoginUseCase(repo, jwtSvc, logger.NewNop())

	out, err := uc.Execute(context.Background(), LoginInput{Email: "dev@example.com", Password: "correct horse"})
	require.NoError(t, err)
	require.NotEmpty(t, out.AccessToken)

	claims, err := jwtSvc.ValidateToken(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.OwnerID)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo, _ := seedUser(t, "dev@example.com", "correct horse")
	uc := NewLoginUseCase(repo, auth.NewJWTService("test-secret", time.Hour), logger.NewNop())

	_, err := uc.Execute(context.Background(), LoginInput{Email: "dev@example.com", Password: "battery staple"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestLogin_UnknownEmailIndistinguishableFromWrongPassword(t *testing.T) {
	repo, _ := seedUser(t, "dev@example.com", "correct horse")
	uc := NewLoginUseCase(repo, auth.NewJWTService("test-secret", time.Hour), logger.NewNop())

	_, unknownErr := uc.Execute(context.Background(), LoginInput{Email: "nobody@example.com", Password: "x"})
	require.Error(t, unknownErr)
	assert.ErrorIs(t, unknownErr, apperror.ErrUnauthorized)

	_, wrongErr := uc.Execute(context.Background(), LoginInput{Email: "dev@example.com", Password: "x"})
	require.Error(t, wrongErr)
	assert.Equal(t, wrongErr.Error(), unknownErr.Error())
}

func TestLogout_RevokesTokenID(t *testing.T) {
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	token, err := jwtSvc.GenerateToken(uuid.New())
	require.NoError(t, err)

	denylist := newFakeDenylist()
	uc := NewLogoutUseCase(jwtSvc, denylist, logger.NewNop())
	require.NoError(t, uc.Execute(context.Background(), LogoutInput{Token: token}))

	claims, err := jwtSvc.ValidateToken(token)
	require.NoError(t, err)
	ttl, ok := denylist.revoked[claims.ID]
	require.True(t, ok)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Hour)
}

func TestLogout_InvalidTokenIsNoop(t *testing.T) {
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	denylist := newFakeDenylist()
	uc := NewLogoutUseCase(jwtSvc, denylist, logger.NewNop())

	err := uc.Execute(context.Background(), LogoutInput{Token: "not-a-jwt"})
	assert.NoError(t, err)
	assert.Empty(t, denylist.revoked)
}
