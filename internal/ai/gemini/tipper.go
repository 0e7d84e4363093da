package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/gabrielsuarezz/Voxtant/internal/interview"
	"github.com/gabrielsuarezz/Voxtant/internal/logger"
	"go.uber.org/zap"
)

//go:embed tips_prompt.md
var tipsPromptTemplate string

const (
	// The AI path may return up to 4 tips; anything extra is dropped.
	maxAITips = 4

	maxPromptSkills       = 5
	maxPromptRequirements = 3
	maxPromptCoverage     = 5

	defaultMaxLogLength = 200
)

// Tipper generates personalized coaching tips for a graded answer. It
// implements interview.TipGenerator; any failure is returned to the grader,
// which falls back to the deterministic tips.
type Tipper struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewTipper(generator contentGenerator, lg *zap.Logger, maxLogLength int) *Tipper {
	if lg == nil {
		lg = zap.NewNop()
	}
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Tipper{
		generator: generator,
		logger:    lg,
		maxLogLen: maxLogLength,
	}
}

// Tips builds the coaching prompt, invokes the model and validates the
// response shape: a non-empty JSON array of strings, capped at 4.
func (t *Tipper) Tips(ctx context.Context, req *interview.TipRequest) ([]string, error) {
	if req == nil {
		return nil, errors.New("tip request is required")
	}

	prompt := buildTipsPrompt(req)

	t.logger.Debug("gemini tip request",
		zap.String("model", t.generator.Model()),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, t.maxLogLen)),
	)

	raw, err := t.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	t.logger.Debug("gemini tip response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, t.maxLogLen)),
	)

	return parseTips(raw)
}

func buildTipsPrompt(req *interview.TipRequest) string {
	profile := req.Profile
	if profile == nil {
		profile = &interview.JobProfile{}
	}

	role := strings.TrimSpace(profile.Role)
	if role == "" {
		role = "this role"
	}

	skills := profile.SkillsCore
	if len(skills) > maxPromptSkills {
		skills = skills[:maxPromptSkills]
	}

	var requirements []string
	for _, r := range profile.Requirements {
		if text := strings.TrimSpace(r.Text); text != "" {
			requirements = append(requirements, "- "+text)
		}
		if len(requirements) == maxPromptRequirements {
			break
		}
	}

	prompt := tipsPromptTemplate
	prompt = strings.ReplaceAll(prompt, "{{ROLE}}", role)
	prompt = strings.ReplaceAll(prompt, "{{SKILLS}}", strings.Join(skills, ", "))
	prompt = strings.ReplaceAll(prompt, "{{REQUIREMENTS}}", strings.Join(requirements, "\n"))
	prompt = strings.ReplaceAll(prompt, "{{TRANSCRIPT}}", req.Transcript)
	prompt = strings.ReplaceAll(prompt, "{{ANALYSIS}}", renderAnalysis(req))

	return prompt
}

// renderAnalysis summarizes the deterministic findings so the model grounds
// its tips in what the detector actually saw.
func renderAnalysis(req *interview.TipRequest) string {
	var b strings.Builder

	b.WriteString("STAR Framework Detection:\n")
	b.WriteString("- Situation/Context: " + presence(req.Flags.S) + "\n")
	b.WriteString("- Task/Goal: " + presence(req.Flags.T) + "\n")
	b.WriteString("- Action: " + presence(req.Flags.A) + "\n")
	b.WriteString("- Result/Metrics: " + presence(req.Flags.R) + "\n\n")

	b.WriteString("Skills Mentioned: " + coverageList(req.MentionedSkills, "None identified") + "\n")
	b.WriteString("Skills Missed: " + coverageList(req.MissedSkills, "None") + "\n")
	fmt.Fprintf(&b, "Content Relevance Score: %.2f (0-1 scale)", req.ContentScore)

	return b.String()
}

func presence(flag int) string {
	if flag == 1 {
		return "Present"
	}
	return "Missing"
}

func coverageList(skills []string, empty string) string {
	if len(skills) == 0 {
		return empty
	}
	if len(skills) > maxPromptCoverage {
		skills = skills[:maxPromptCoverage]
	}
	return strings.Join(skills, ", ")
}

func parseTips(raw string) ([]string, error) {
	cleaned := extractJSON(raw)

	var tips []string
	if err := json.Unmarshal([]byte(cleaned), &tips); err != nil {
		return nil, fmt.Errorf("parse tips response: %w", err)
	}

	valid := make([]string, 0, len(tips))
	for _, tip := range tips {
		if tip = strings.TrimSpace(tip); tip != "" {
			valid = append(valid, tip)
		}
	}

	if len(valid) == 0 {
		return nil, errors.New("tips response contained no usable tips")
	}

	if len(valid) > maxAITips {
		valid = valid[:maxAITips]
	}

	return valid, nil
}
