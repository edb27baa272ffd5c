package simulated

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/careerforge/api/internal/application/service"
	"github.com/careerforge/api/internal/domain/profile"
	"github.com/careerforge/api/internal/render"
	"github.com/careerforge/api/pkg/apperror"
)

const exportDelay = 2 * time.Second

type exporter struct{}

func NewExporter() service.Exporter {
	return &exporter{}
}

func (s *exporter) Export(ctx context.Context, p *profile.Profile, format string) ([]byte, string, error) {
	if err := wait(ctx, exportDelay); err != nil {
		return nil, "", err
	}

	doc := render.Portfolio(p, render.PortfolioModern)

	switch format {
	case service.ExportJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, "", fmt.Errorf("marshal portfolio document: %w", err)
		}
		return data, "application/json", nil
	case service.ExportHTML:
		return []byte(renderHTML(doc)), "text/html; charset=utf-8", nil
	case service.ExportPDF:
		// Stand-in payload; a real provider would return a typeset
		// document here.
		body := fmt.Sprintf("%%PDF-1.4\n%% CareerForge portfolio export\n%% %s\n%%%%EOF\n", doc.Header.Headline)
		return []byte(body), "application/pdf", nil
	default:
		return nil, "", apperror.NewInvalidInput(fmt.Sprintf("unknown export format %q", format), nil)
	}
}

func renderHTML(doc render.Document) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>")
	b.WriteString(html.EscapeString(doc.Header.Headline))
	b.WriteString("</title></head>\n<body>\n")

	if doc.Placeholder != "" {
		b.WriteString("<p>" + html.EscapeString(doc.Placeholder) + "</p>\n")
	}
	if doc.Header.Headline != "" {
		b.WriteString("<h1>" + html.EscapeString(doc.Header.Headline) + "</h1>\n")
	}
	if doc.Header.Summary != "" {
		b.WriteString("<p>" + html.EscapeString(doc.Header.Summary) + "</p>\n")
	}

	for _, sec := range doc.Sections {
		b.WriteString("<h2>" + html.EscapeString(sec.Title) + "</h2>\n")
		for _, e := range sec.Entries {
			b.WriteString("<h3>" + html.EscapeString(e.Title) + "</h3>\n")
			if e.Subtitle != "" {
				b.WriteString("<p>" + html.EscapeString(e.Subtitle) + "</p>\n")
			}
			if e.Period != "" {
				b.WriteString("<p>" + html.EscapeString(e.Period) + "</p>\n")
			}
			if e.Body != "" {
				b.WriteString("<p>" + html.EscapeString(e.Body) + "</p>\n")
			}
		}
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}
