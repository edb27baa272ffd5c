package simulated

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerforge/api/internal/application/service"
	"github.com/careerforge/api/internal/domain/profile"
	"github.com/careerforge/api/pkg/apperror"
)

func TestResumeParser_RejectsUnknownExtensions(t *testing.T) {
	parser := NewResumeParser()

	_, err := parser.Parse(context.Background(), strings.NewReader("data"), "resume.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestResumeParser_ReturnsUsableProfile(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping simulated-delay test in short mode.")
	}
	parser := NewResumeParser()

	p, err := parser.Parse(context.Background(), strings.NewReader("%PDF-1.4"), "resume.pdf")
	require.NoError(t, err)
	assert.NotEmpty(t, p.Headline)
	assert.NotEmpty(t, p.Experience)
	assert.NotEmpty(t, p.Education)
}

func TestResumeParser_HonorsCancellation(t *testing.T) {
	parser := NewResumeParser()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := parser.Parse(ctx, strings.NewReader("%PDF-1.4"), "resume.pdf")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSocialImporter_PerProvider(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping simulated-delay test in short mode.")
	}
	importer := NewSocialImporter()

	p, err := importer.Import(context.Background(), "github", "octocat")
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/octocat", p.SocialLinks[profile.SocialGitHub])
	assert.NotEmpty(t, p.Projects)

	p, err = importer.Import(context.Background(), "linkedin", "octocat")
	require.NoError(t, err)
	assert.Equal(t, "https://www.linkedin.com/in/octocat", p.SocialLinks[profile.SocialLinkedIn])

	_, err = importer.Import(context.Background(), "friendster", "octocat")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestEnhancer_TailorsToJobDescription(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping simulated-delay test in short mode.")
	}
	enhancer := NewEnhancer()

	out, err := enhancer.Enhance(context.Background(), "Built APIs", "Go engineer role")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Built APIs."))
	assert.Contains(t, out, "target role")

	out, err = enhancer.Enhance(context.Background(), "Built APIs", "")
	require.NoError(t, err)
	assert.Contains(t, out, "track record")
}

func TestDeployer_ReturnsPublicURL(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping simulated-delay test in short mode.")
	}
	ownerID := uuid.New()
	deployer := NewDeployer("https://careerforge.app")

	url, err := deployer.Deploy(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Equal(t, "https://careerforge.app/p/"+ownerID.String(), url)
}

func TestExporter_Formats(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping simulated-delay test in short mode.")
	}
	exporter := NewExporter()

	p := profile.Empty(uuid.New())
	p.Headline = "Backend Engineer"
	p.Summary = "Builds <APIs>."

	data, contentType, err := exporter.Export(context.Background(), p, service.ExportJSON)
	require.NoError(t, err)
	assert.Equal(t, "application/json", contentType)
	assert.Contains(t, string(data), "Backend Engineer")

	data, contentType, err = exporter.Export(context.Background(), p, service.ExportHTML)
	require.NoError(t, err)
	assert.Equal(t, "text/html; charset=utf-8", contentType)
	assert.Contains(t, string(data), "<h1>Backend Engineer</h1>")
	assert.Contains(t, string(data), "&lt;APIs&gt;")

	data, contentType, err = exporter.Export(context.Background(), p, service.ExportPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-1.4"))

	_, _, err = exporter.Export(context.Background(), p, "docx")
	require.Error(t, err)
}
