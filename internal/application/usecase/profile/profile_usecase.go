package profile

import (
	"context"
	"io"
	"time"

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

var tracer = otel.Tracer("profile_usecase")

type ProfileUseCase struct {
	profileRepo profile.Repository
	kafkaClient *event.KafkaProducerClient
	renderCache service.RenderCache
	parser      service.ResumeParser
	importer    service.SocialImporter
	logger      logger.Logger
}

func NewProfileUseCase(
	repo profile.Repository,
	kClient *event.KafkaProducerClient,
	cache service.RenderCache,
	parser service.ResumeParser,
	importer service.SocialImporter,
	log logger.Logger,
) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: repo,
		kafkaClient: kClient,
		renderCache: cache,
		parser:      parser,
		importer:    importer,
		logger:      log,
	}
}

type GetProfileInput struct {
	OwnerID uuid.UUID
}

type GetProfileOutput struct {
	Profile *profile.Profile
}

// ExecuteGetProfile loads the one record for this user. A user with
// no saved row gets the empty default; a store failure surfaces as a
// recoverable error and the caller keeps working with an empty
// profile.
func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	ctx, span := tracer.Start(ctx, "ExecuteGetProfile")
	defer span.End()
	span.SetAttributes(attribute.String("owner_id", input.OwnerID.String()))

	p, err := uc.profileRepo.GetByUserID(ctx, input.OwnerID)
	if err != nil {
		span.RecordError(err)
		return nil, apperror.NewUnavailable("failed to load profile", err)
	}
	p.Normalize()
	return &GetProfileOutput{Profile: p}, nil
}

type SaveProfileInput struct {
	Profile *profile.Profile
}

type SaveProfileOutput struct {
	Profile *profile.Profile
}

// ExecuteSaveProfile overwrites the stored record with the given
// in-memory state and refreshes updated_at. There is no version
// check: concurrent saves are last-writer-wins. On failure the
// caller's in-memory state is untouched and can simply be retried.
func (uc *ProfileUseCase) ExecuteSaveProfile(ctx context.Context, input SaveProfileInput) (*SaveProfileOutput, error) {
	ctx, span := tracer.Start(ctx, "ExecuteSaveProfile")
	defer span.End()

	p := input.Profile
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		span.RecordError(err)
		return nil, apperror.NewUnavailable("failed to save profile", err)
	}

	if err := uc.renderCache.Invalidate(ctx, p.OwnerID); err != nil {
		uc.logger.Warn("Failed to invalidate render cache",
			zap.String("owner_id", p.OwnerID.String()), zap.Error(err))
	}

	if uc.kafkaClient != nil {
		go uc.publishSaved(p)
	}

	return &SaveProfileOutput{Profile: p}, nil
}

func (uc *ProfileUseCase) publishSaved(p *profile.Profile) {
	err := uc.kafkaClient.PublishProfileEvent(context.Background(), event.ProfileEventPayload{
		EventType: event.ProfileEventTypeSaved,
		OwnerID:   p.OwnerID,
		UpdatedAt: p.UpdatedAt,
	})
	if err != nil {
		uc.logger.Warn("Failed to publish profile event",
			zap.String("owner_id", p.OwnerID.String()), zap.Error(err))
	}
}

type ListPublicInput struct {
	Page  int
	Limit int
}

func (uc *ProfileUseCase) ExecuteListPublic(ctx context.Context, input ListPublicInput) ([]profile.Summary, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}
	page := input.Page
	if page <= 0 {
		page = 1
	}
	return uc.profileRepo.ListPublic(ctx, limit, (page-1)*limit)
}

type ImportResumeInput struct {
	OwnerID  uuid.UUID
	File     io.Reader
	Filename string
	// Current working state; imported fields merge into a copy of it.
	Profile *profile.Profile
}

type ImportResumeOutput struct {
	Profile *profile.Profile
}

// ExecuteImportResume runs the (simulated) resume parser and merges
// the extracted fields into the working profile without clobbering
// anything the user already typed.
func (uc *ProfileUseCase) ExecuteImportResume(ctx context.Context, input ImportResumeInput) (*ImportResumeOutput, error) {
	ctx, span := tracer.Start(ctx, "ExecuteImportResume")
	defer span.End()

	parsed, err := uc.parser.Parse(ctx, input.File, input.Filename)
	if err != nil {
		span.RecordError(err)
		return nil, apperror.NewUnavailable("resume parsing failed", err)
	}

	merged := mergeImported(input.Profile, parsed)
	return &ImportResumeOutput{Profile: merged}, nil
}

type ImportSocialInput struct {
	OwnerID  uuid.UUID
	Provider string
	Handle   string
	Profile  *profile.Profile
}

type ImportSocialOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteImportSocial(ctx context.Context, input ImportSocialInput) (*ImportSocialOutput, error) {
	ctx, span := tracer.Start(ctx, "ExecuteImportSocial")
	defer span.End()

	imported, err := uc.importer.Import(ctx, input.Provider, input.Handle)
	if err != nil {
		span.RecordError(err)
		return nil, apperror.NewUnavailable("social import failed", err)
	}

	merged := mergeImported(input.Profile, imported)
	return &ImportSocialOutput{Profile: merged}, nil
}

// mergeImported fills gaps in dst from src: empty scalars are taken
// from src, map keys merge without overwriting, and imported list
// items are appended after the user's own. dst is not mutated.
func mergeImported(dst, src *profile.Profile) *profile.Profile {
	out := dst.Clone()
	out.Normalize()
	if src == nil {
		return out
	}

	if out.Headline == "" {
		out.Headline = src.Headline
	}
	if out.Summary == "" {
		out.Summary = src.Summary
	}
	for k, v := range src.ContactInfo {
		if _, exists := out.ContactInfo[k]; !exists {
			out.ContactInfo[k] = v
		}
	}
	for k, v := range src.SocialLinks {
		if _, exists := out.SocialLinks[k]; !exists {
			out.SocialLinks[k] = v
		}
	}
	out.Experience = append(out.Experience, src.Experience...)
	out.Education = append(out.Education, src.Education...)
	out.Projects = append(out.Projects, src.Projects...)
	out.Skills = append(out.Skills, src.Skills...)
	return out
}
