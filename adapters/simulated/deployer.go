package simulated

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/careerforge/api/internal/application/service"
)

const deployDelay = 3 * time.Second

type deployer struct {
	publicHost string
}

func NewDeployer(publicHost string) service.Deployer {
	return &deployer{publicHost: publicHost}
}

func (s *deployer) Deploy(ctx context.Context, ownerID uuid.UUID) (string, error) {
	if err := wait(ctx, deployDelay); err != nil {
		return "", err
	}
	return s.publicHost + "/p/" + ownerID.String(), nil
}
