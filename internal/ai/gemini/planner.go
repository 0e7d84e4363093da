package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	_ "embed"

	"github.com/gabrielsuarezz/Voxtant/internal/interview"
	"github.com/gabrielsuarezz/Voxtant/internal/logger"
	"github.com/gabrielsuarezz/Voxtant/internal/plan"
	"go.uber.org/zap"
)

//go:embed plan_prompt.md
var planPromptTemplate string

// Resume context is optional and truncated to bound token spend.
const maxResumeRunes = 2000

const noneSpecified = "None specified"

// Planner generates interview questions and rubrics for a job profile.
type Planner struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewPlanner(generator contentGenerator, lg *zap.Logger, maxLogLength int) *Planner {
	if lg == nil {
		lg = zap.NewNop()
	}
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Planner{
		generator: generator,
		logger:    lg,
		maxLogLen: maxLogLength,
	}
}

// GeneratePlan prompts the model with the profile (and optional resume text)
// and decodes the questions and rubric. The caller degrades to the
// deterministic fallback plan on error.
func (p *Planner) GeneratePlan(ctx context.Context, profile *interview.JobProfile, resumeText string) (*plan.Plan, error) {
	if profile == nil {
		return nil, errors.New("job profile is required")
	}

	prompt := buildPlanPrompt(profile, resumeText)

	p.logger.Debug("gemini plan request",
		zap.String("model", p.generator.Model()),
		zap.String("role", profile.Role),
	)

	raw, err := p.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("gemini plan response",
		zap.String("response_preview", logger.TruncateForLog(raw, p.maxLogLen)),
	)

	return parsePlan(raw)
}

func buildPlanPrompt(profile *interview.JobProfile, resumeText string) string {
	role := strings.TrimSpace(profile.Role)
	if role == "" {
		role = UnknownRole
	}

	var requirements []string
	for _, r := range profile.Requirements {
		if text := strings.TrimSpace(r.Text); text != "" {
			requirements = append(requirements, "- "+text)
		}
	}

	resumeContext := ""
	if resumeText = strings.TrimSpace(resumeText); resumeText != "" {
		if runes := []rune(resumeText); len(runes) > maxResumeRunes {
			resumeText = string(runes[:maxResumeRunes])
		}
		resumeContext = "\nCandidate's Resume:\n" + resumeText + "\n"
	}

	prompt := planPromptTemplate
	prompt = strings.ReplaceAll(prompt, "{{ROLE}}", role)
	prompt = strings.ReplaceAll(prompt, "{{SKILLS_CORE}}", orNone(strings.Join(profile.SkillsCore, ", ")))
	prompt = strings.ReplaceAll(prompt, "{{SKILLS_NICE}}", orNone(strings.Join(profile.SkillsNice, ", ")))
	prompt = strings.ReplaceAll(prompt, "{{VALUES}}", orNone(strings.Join(profile.Values, ", ")))
	prompt = strings.ReplaceAll(prompt, "{{REQUIREMENTS}}", orNone(strings.Join(requirements, "\n")))
	prompt = strings.ReplaceAll(prompt, "{{RESUME_CONTEXT}}", resumeContext)

	return prompt
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return noneSpecified
	}
	return s
}

func parsePlan(raw string) (*plan.Plan, error) {
	cleaned := extractJSON(raw)

	var decoded plan.Plan
	if err := json.Unmarshal([]byte(cleaned), &decoded); err != nil {
		return nil, fmt.Errorf("parse plan response: %w", err)
	}

	if len(decoded.Questions) == 0 {
		return nil, errors.New("plan response contained no questions")
	}

	for i, q := range decoded.Questions {
		if strings.TrimSpace(q.ID) == "" || strings.TrimSpace(q.Text) == "" {
			return nil, fmt.Errorf("plan question %d is missing an id or text", i)
		}
	}

	if decoded.Rubric == nil {
		decoded.Rubric = map[string][]string{}
	}

	return &decoded, nil
}
