package interview

import (
	"context"
	"math"
	"strings"

	"go.uber.org/zap"
)

// Timings are delivery metrics computed by an upstream producer. The engine
// passes them through untouched.
type Timings struct {
	WPM          float64
	PauseRatio   float64
	FillerPerMin float64
}

// Payload is a complete grading request.
type Payload struct {
	Transcript string
	Timings    Timings
	JobGraph   JobProfile
}

// Delivery is the passthrough delivery block of a grading result.
type Delivery struct {
	WPM          float64 `json:"wpm"`
	PauseRatio   float64 `json:"pauseRatio"`
	FillerPerMin float64 `json:"fillerPerMin"`
}

// Result is the engine's sole output. ContentScore is always in [0, 1] and
// Tips is never empty.
type Result struct {
	ContentScore float64   `json:"content_score"`
	STAR         STARFlags `json:"star"`
	Delivery     Delivery  `json:"delivery"`
	Tips         []string  `json:"tips"`
}

// TipRequest carries the full grading context into a tip generator.
type TipRequest struct {
	Transcript      string
	Profile         *JobProfile
	Flags           STARFlags
	Components      STARComponents
	MentionedSkills []string
	MissedSkills    []string
	ContentScore    float64
}

// TipGenerator produces personalized improvement tips. Implementations may
// fail (network, malformed output); the grader treats any error as a signal to
// fall back to the deterministic tips.
type TipGenerator interface {
	Tips(ctx context.Context, req *TipRequest) ([]string, error)
}

// Grader is the public entry point of the grading engine. It is stateless and
// safe for concurrent use.
type Grader struct {
	scorer *Scorer
	tipper TipGenerator
	logger *zap.Logger
}

// NewGrader assembles the grading engine. tipper may be nil, in which case the
// deterministic tips are always used.
func NewGrader(scorer *Scorer, tipper TipGenerator, logger *zap.Logger) *Grader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Grader{scorer: scorer, tipper: tipper, logger: logger}
}

// Grade evaluates one complete answer. It never returns an error: infrastructure
// failures degrade to neutral scores and deterministic tips.
func (g *Grader) Grade(ctx context.Context, payload *Payload) *Result {
	if payload == nil {
		payload = &Payload{}
	}

	transcript := strings.TrimSpace(payload.Transcript)
	profile := payload.JobGraph

	flags := StarFlags(transcript)
	components := ExtractStarComponents(transcript)
	score := g.scorer.ContentScore(ctx, transcript, &profile)
	mentioned, missed := SkillCoverage(transcript, &profile)

	tips := g.generateTips(ctx, &TipRequest{
		Transcript:      transcript,
		Profile:         &profile,
		Flags:           flags,
		Components:      components,
		MentionedSkills: mentioned,
		MissedSkills:    missed,
		ContentScore:    score,
	})

	return &Result{
		ContentScore: round3(score),
		STAR:         flags,
		Delivery: Delivery{
			WPM:          payload.Timings.WPM,
			PauseRatio:   payload.Timings.PauseRatio,
			FillerPerMin: payload.Timings.FillerPerMin,
		},
		Tips: tips,
	}
}

// generateTips tries the AI path first and falls back to the deterministic
// rules on any failure or empty output.
func (g *Grader) generateTips(ctx context.Context, req *TipRequest) []string {
	if g.tipper != nil {
		tips, err := g.tipper.Tips(ctx, req)
		if err == nil && len(tips) > 0 {
			return tips
		}
		if err != nil {
			g.logger.Warn("ai tip generation failed, using fallback tips", zap.Error(err))
		}
	}

	return FallbackTips(req.Transcript, req.Flags, req.ContentScore, req.MissedSkills)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
