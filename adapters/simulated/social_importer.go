package simulated

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/careerforge/api/internal/application/service"
	"github.com/careerforge/api/internal/domain/profile"
	"github.com/careerforge/api/pkg/apperror"
)

const importDelay = 1 * time.Second

type socialImporter struct{}

func NewSocialImporter() service.SocialImporter {
	return &socialImporter{}
}

func (s *socialImporter) Import(ctx context.Context, provider, handle string) (*profile.Profile, error) {
	if handle == "" {
		return nil, apperror.NewInvalidInput("handle is required", nil)
	}

	if err := wait(ctx, importDelay); err != nil {
		return nil, err
	}

	p := profile.Empty(uuid.Nil)
	switch provider {
	case "linkedin":
		p.Headline = "Professional imported from LinkedIn"
		p.SocialLinks[profile.SocialLinkedIn] = "https://www.linkedin.com/in/" + handle
		p.Experience = []profile.ExperienceItem{{
			ID:        uuid.New(),
			Company:   "LinkedIn Listed Co",
			Position:  "Member",
			StartDate: "2020-01",
			Current:   true,
		}}
	case "github":
		p.Headline = "Open source developer"
		p.SocialLinks[profile.SocialGitHub] = "https://github.com/" + handle
		p.Projects = []profile.ProjectItem{{
			ID:           uuid.New(),
			Title:        handle + "/pinned-repo",
			Description:  "Imported from pinned repositories.",
			Technologies: []string{"Go"},
			Link:         fmt.Sprintf("https://github.com/%s/pinned-repo", handle),
		}}
	default:
		return nil, apperror.NewInvalidInput(fmt.Sprintf("unknown provider %q", provider), nil)
	}
	return p, nil
}
