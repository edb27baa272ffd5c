package service

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/careerforge/api/internal/domain/profile"
)

// External career-tool capabilities. The shipped adapters simulate
// all of these with fixed delays and canned payloads; real
// integrations slot in behind the same interfaces.

// ResumeParser extracts profile fields from an uploaded resume file.
type ResumeParser interface {
	Parse(ctx context.Context, file io.Reader, filename string) (*profile.Profile, error)
}

// SocialImporter pulls profile fields from a linked account, e.g.
// LinkedIn or GitHub.
type SocialImporter interface {
	Import(ctx context.Context, provider string, handle string) (*profile.Profile, error)
}

// Enhancer rewrites free text ("AI enhancement"), optionally steered
// by a job description.
type Enhancer interface {
	Enhance(ctx context.Context, text string, jobDescription string) (string, error)
}

// Deployer publishes a rendered portfolio and returns its live URL.
type Deployer interface {
	Deploy(ctx context.Context, ownerID uuid.UUID) (string, error)
}

// Exporter produces a downloadable artifact from a profile.
type Exporter interface {
	Export(ctx context.Context, p *profile.Profile, format string) ([]byte, string, error)
}

// Export formats understood by Exporter implementations.
const (
	ExportPDF  = "pdf"
	ExportHTML = "html"
	ExportJSON = "json"
)
