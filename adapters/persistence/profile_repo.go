package persistence

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/careerforge/api/internal/domain/profile"
	"github.com/careerforge/api/pkg/apperror"
	"github.com/careerforge/api/pkg/logger"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

func (r *postgresProfileRepo) GetByUserID(ctx context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	query := `
		SELECT owner_id, headline, summary, contact_info, social_links,
		       experience, education, projects, skills, updated_at
		FROM profiles
		WHERE owner_id = $1
	`
	p := &profile.Profile{}
	var contactBytes, socialBytes, expBytes, eduBytes, projBytes, skillBytes []byte

	err := r.db.QueryRow(ctx, query, ownerID).Scan(
		&p.OwnerID,
		&p.Headline,
		&p.Summary,
		&contactBytes,
		&socialBytes,
		&expBytes,
		&eduBytes,
		&projBytes,
		&skillBytes,
		&p.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Empty(ownerID), nil
		}
		return nil, apperror.NewInternal("failed to query profile", err)
	}

	r.unmarshalColumn(ownerID, "contact_info", contactBytes, &p.ContactInfo)
	r.unmarshalColumn(ownerID, "social_links", socialBytes, &p.SocialLinks)
	r.unmarshalColumn(ownerID, "experience", expBytes, &p.Experience)
	r.unmarshalColumn(ownerID, "education", eduBytes, &p.Education)
	r.unmarshalColumn(ownerID, "projects", projBytes, &p.Projects)
	r.unmarshalColumn(ownerID, "skills", skillBytes, &p.Skills)
	p.Normalize()

	return p, nil
}

// unmarshalColumn decodes one JSONB column. A corrupt column logs and
// falls back to the zero value instead of failing the whole load.
func (r *postgresProfileRepo) unmarshalColumn(ownerID uuid.UUID, column string, data []byte, dst any) {
	if len(data) == 0 {
		return
	}
	if err := json.Unmarshal(data, dst); err != nil {
		r.logger.Warn("Failed to unmarshal profile column",
			zap.String("owner_id", ownerID.String()),
			zap.String("column", column),
			zap.Error(err))
	}
}

func (r *postgresProfileRepo) Upsert(ctx context.Context, p *profile.Profile) error {
	contactBytes, err := json.Marshal(p.ContactInfo)
	if err != nil {
		return apperror.NewInternal("failed to marshal contact_info", err)
	}
	socialBytes, err := json.Marshal(p.SocialLinks)
	if err != nil {
		return apperror.NewInternal("failed to marshal social_links", err)
	}
	expBytes, err := json.Marshal(p.Experience)
	if err != nil {
		return apperror.NewInternal("failed to marshal experience", err)
	}
	eduBytes, err := json.Marshal(p.Education)
	if err != nil {
		return apperror.NewInternal("failed to marshal education", err)
	}
	projBytes, err := json.Marshal(p.Projects)
	if err != nil {
		return apperror.NewInternal("failed to marshal projects", err)
	}
	skillBytes, err := json.Marshal(p.Skills)
	if err != nil {
		return apperror.NewInternal("failed to marshal skills", err)
	}

	query := `
		INSERT INTO profiles (owner_id, headline, summary, contact_info, social_links,
		                      experience, education, projects, skills, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (owner_id) DO UPDATE SET
			headline = EXCLUDED.headline,
			summary = EXCLUDED.summary,
			contact_info = EXCLUDED.contact_info,
			social_links = EXCLUDED.social_links,
			experience = EXCLUDED.experience,
			education = EXCLUDED.education,
			projects = EXCLUDED.projects,
			skills = EXCLUDED.skills,
			updated_at = EXCLUDED.updated_at
	`
	_, err = r.db.Exec(ctx, query,
		p.OwnerID,
		p.Headline,
		p.Summary,
		contactBytes,
		socialBytes,
		expBytes,
		eduBytes,
		projBytes,
		skillBytes,
		p.UpdatedAt,
	)

	if err != nil {
		return apperror.NewInternal("failed to upsert profile", err)
	}
	return nil
}

func (r *postgresProfileRepo) ListPublic(ctx context.Context, limit, offset int) ([]profile.Summary, error) {
	query, args, err := psql.
		Select("owner_id", "headline", "updated_at").
		From("profiles").
		Where(sq.NotEq{"headline": ""}).
		OrderBy("updated_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build public listing query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query public profiles", err)
	}
	defer rows.Close()

	summaries := []profile.Summary{}
	for rows.Next() {
		var s profile.Summary
		if err := rows.Scan(&s.OwnerID, &s.Headline, &s.UpdatedAt); err != nil {
			return nil, apperror.NewInternal("failed to scan public profile row", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("failed to read public profile rows", err)
	}
	return summaries, nil
}
