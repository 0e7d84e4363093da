// Package ai defines the provider-neutral capability interfaces implemented by
// the gemini subpackage. The grading engine's own AI seams (TipGenerator,
// Embedder) live in the interview package next to their consumers.
package ai

import (
	"context"

	"github.com/gabrielsuarezz/Voxtant/internal/interview"
	"github.com/gabrielsuarezz/Voxtant/internal/plan"
)

// Extractor turns raw job posting text into a structured job profile.
type Extractor interface {
	Extract(ctx context.Context, rawText string) (*interview.JobProfile, error)
}

// Planner generates an interview plan (questions plus rubric) for a profile.
// resumeText is optional extra context.
type Planner interface {
	GeneratePlan(ctx context.Context, profile *interview.JobProfile, resumeText string) (*plan.Plan, error)
}
