package service

import (
	"context"
	"time"
)

// TokenDenylist stores revoked token ids (jti) until the tokens they
// belong to would have expired anyway.
type TokenDenylist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
