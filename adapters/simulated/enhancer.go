package simulated

import (
	"context"
	"strings"
	"time"

	"github.com/careerforge/api/internal/application/service"
)

const enhanceDelay = 2 * time.Second

type enhancer struct{}

func NewEnhancer() service.Enhancer {
	return &enhancer{}
}

func (s *enhancer) Enhance(ctx context.Context, text, jobDescription string) (string, error) {
	if err := wait(ctx, enhanceDelay); err != nil {
		return "", err
	}

	out := strings.TrimSpace(text)
	if out == "" {
		return "", nil
	}
	if !strings.HasSuffix(out, ".") {
		out += "."
	}
	if jobDescription != "" {
		out += " Aligned with the target role's key requirements."
	} else {
		out += " Proven track record of delivering measurable results."
	}
	return out, nil
}
