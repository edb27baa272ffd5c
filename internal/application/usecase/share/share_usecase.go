package share

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/careerforge/api/adapters/event"
	"github.com/careerforge/api/internal/application/service"
	"github.com/careerforge/api/internal/domain/profile"
	"github.com/careerforge/api/pkg/apperror"
	"github.com/careerforge/api/pkg/logger"
)

var tracer = otel.Tracer("share_usecase")

// Share platforms understood by ExecuteShareLink.
const (
	PlatformLinkedIn = "linkedin"
	PlatformTwitter  = "twitter"
	PlatformFacebook = "facebook"
	PlatformEmail    = "email"
)

type ShareUseCase struct {
	publicHost  string
	exporter    service.Exporter
	deployer    service.Deployer
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewShareUseCase(
	publicHost string,
	exporter service.Exporter,
	deployer service.Deployer,
	kClient *event.KafkaProducerClient,
	log logger.Logger,
) *ShareUseCase {
	return &ShareUseCase{
		publicHost:  publicHost,
		exporter:    exporter,
		deployer:    deployer,
		kafkaClient: kClient,
		logger:      log,
	}
}

// PublicURL is the canonical share link for a user's portfolio page.
func (uc *ShareUseCase) PublicURL(ownerID uuid.UUID) string {
	return fmt.Sprintf("%s/p/%s", uc.publicHost, ownerID)
}

type ShareLinkInput struct {
	OwnerID  uuid.UUID
	Platform string
}

type ShareLinkOutput struct {
	// URL the client opens to share: a platform intent URL or a
	// mailto link.
	URL string
}

func (uc *ShareUseCase) ExecuteShareLink(_ context.Context, input ShareLinkInput) (*ShareLinkOutput, error) {
	portfolioURL := uc.PublicURL(input.OwnerID)
	encoded := url.QueryEscape(portfolioURL)

	var shareURL string
	switch input.Platform {
	case PlatformLinkedIn:
		shareURL = "https://www.linkedin.com/shareArticle?mini=true&url=" + encoded
	case PlatformTwitter:
		shareURL = "https://twitter.com/intent/tweet?url=" + encoded +
			"&text=" + url.QueryEscape("Check out my professional portfolio!")
	case PlatformFacebook:
		shareURL = "https://www.facebook.com/sharer/sharer.php?u=" + encoded
	case PlatformEmail:
		shareURL = "mailto:?subject=" + url.QueryEscape("My Professional Portfolio") +
			"&body=" + url.QueryEscape("Check out my portfolio: "+portfolioURL)
	default:
		return nil, apperror.NewInvalidInput(fmt.Sprintf("unknown share platform %q", input.Platform), nil)
	}

	return &ShareLinkOutput{URL: shareURL}, nil
}

// EmbedSnippet returns the iframe markup a user pastes into their own
// site.
func (uc *ShareUseCase) EmbedSnippet(ownerID uuid.UUID) string {
	return fmt.Sprintf(`<iframe src="%s" width="100%%" height="600" frameborder="0"></iframe>`, uc.PublicURL(ownerID))
}

type ExportInput struct {
	Profile *profile.Profile
	Format  string
}

type ExportOutput struct {
	Data        []byte
	ContentType string
	Filename    string
}

func (uc *ShareUseCase) ExecuteExport(ctx context.Context, input ExportInput) (*ExportOutput, error) {
	ctx, span := tracer.Start(ctx, "ExecuteExport")
	defer span.End()
	span.SetAttributes(attribute.String("format", input.Format))

	switch input.Format {
	case service.ExportPDF, service.ExportHTML, service.ExportJSON:
	default:
		return nil, apperror.NewInvalidInput(fmt.Sprintf("unknown export format %q", input.Format), nil)
	}

	data, contentType, err := uc.exporter.Export(ctx, input.Profile, input.Format)
	if err != nil {
		span.RecordError(err)
		return nil, apperror.NewUnavailable("portfolio export failed", err)
	}

	return &ExportOutput{
		Data:        data,
		ContentType: contentType,
		Filename:    "portfolio." + input.Format,
	}, nil
}

type DeployInput struct {
	OwnerID uuid.UUID
}

type DeployOutput struct {
	URL string
}

// ExecuteDeploy publishes the portfolio through the deployer and
// reports the deployment on the event bus.
func (uc *ShareUseCase) ExecuteDeploy(ctx context.Context, input DeployInput) (*DeployOutput, error) {
	ctx, span := tracer.Start(ctx, "ExecuteDeploy")
	defer span.End()

	liveURL, err := uc.deployer.Deploy(ctx, input.OwnerID)
	if err != nil {
		span.RecordError(err)
		return nil, apperror.NewUnavailable("portfolio deploy failed", err)
	}

	if uc.kafkaClient != nil {
		go func() {
			err := uc.kafkaClient.PublishDeployEvent(context.Background(), event.DeployEventPayload{
				EventType: event.DeployEventTypeCompleted,
				OwnerID:   input.OwnerID,
				URL:       liveURL,
			})
			if err != nil {
				uc.logger.Warn("Failed to publish deploy event",
					zap.String("owner_id", input.OwnerID.String()), zap.Error(err))
			}
		}()
	}

	return &DeployOutput{URL: liveURL}, nil
}
