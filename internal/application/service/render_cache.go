package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/careerforge/api/internal/render"
)

// RenderCache holds rendered public portfolio documents so the share
// page does not hit Postgres on every view. Misses are not errors.
type RenderCache interface {
	Get(ctx context.Context, ownerID uuid.UUID, variant render.PortfolioVariant) (*render.Document, bool, error)
	Set(ctx context.Context, ownerID uuid.UUID, variant render.PortfolioVariant, doc *render.Document) error
	Invalidate(ctx context.Context, ownerID uuid.UUID) error
}
