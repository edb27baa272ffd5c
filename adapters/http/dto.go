package http

import (
	"time"

	"github.com/google/uuid"

	"github.com/careerforge/api/internal/domain/profile"
)

// Profile DTOs. The repeating-section items reuse the domain types
// directly: their JSON tags are the wire format the builder UI edits.
type ProfileDTO struct {
	OwnerID     uuid.UUID                `json:"owner_id"`
	Headline    string                   `json:"headline"`
	Summary     string                   `json:"summary"`
	ContactInfo map[string]string        `json:"contact_info"`
	SocialLinks map[string]string        `json:"social_links"`
	Experience  []profile.ExperienceItem `json:"experience"`
	Education   []profile.EducationItem  `json:"education"`
	Projects    []profile.ProjectItem    `json:"projects"`
	Skills      []profile.SkillCategory  `json:"skills"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

func ToProfileDTO(p *profile.Profile) ProfileDTO {
	return ProfileDTO{
		OwnerID:     p.OwnerID,
		Headline:    p.Headline,
		Summary:     p.Summary,
		ContactInfo: p.ContactInfo,
		SocialLinks: p.SocialLinks,
		Experience:  p.Experience,
		Education:   p.Education,
		Projects:    p.Projects,
		Skills:      p.Skills,
		UpdatedAt:   p.UpdatedAt,
	}
}

type UpdateFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

type KeyValueRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

type ValueRequest struct {
	Value string `json:"value" binding:"required"`
}

type ImportSocialRequest struct {
	Handle string `json:"handle" binding:"required"`
}

type GenerateResumeRequest struct {
	Template string `json:"template" binding:"required"`
	Options  struct {
		Title             string `json:"title"`
		Summary           string `json:"summary"`
		IncludeExperience *bool  `json:"include_experience"`
		IncludeEducation  *bool  `json:"include_education"`
		IncludeSkills     *bool  `json:"include_skills"`
		IncludeProjects   *bool  `json:"include_projects"`
	} `json:"options"`
	TailorToJob string `json:"tailor_to_job"`
}

type EnhanceTextRequest struct {
	Text           string `json:"text" binding:"required"`
	JobDescription string `json:"job_description"`
}

type ExportRequest struct {
	Format string `json:"format" binding:"required"`
}
