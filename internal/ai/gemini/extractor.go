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

//go:embed extract_prompt.md
var extractPromptTemplate string

// Postings are truncated before prompting to bound token spend.
const maxPostingRunes = 4000

// UnknownRole is the placeholder used when the model cannot name the position.
const UnknownRole = "Unknown Role"

// Extractor turns raw job posting text into a structured JobProfile.
type Extractor struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewExtractor(generator contentGenerator, lg *zap.Logger, maxLogLength int) *Extractor {
	if lg == nil {
		lg = zap.NewNop()
	}
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Extractor{
		generator: generator,
		logger:    lg,
		maxLogLen: maxLogLength,
	}
}

// Extract prompts the model and decodes the structured profile. The caller is
// expected to degrade to a neutral profile on error.
func (e *Extractor) Extract(ctx context.Context, rawText string) (*interview.JobProfile, error) {
	rawText = strings.TrimSpace(rawText)
	if rawText == "" {
		return nil, errors.New("job posting text is required")
	}

	if runes := []rune(rawText); len(runes) > maxPostingRunes {
		rawText = string(runes[:maxPostingRunes])
	}

	prompt := strings.ReplaceAll(extractPromptTemplate, "{{POSTING}}", rawText)

	e.logger.Debug("gemini extraction request",
		zap.String("model", e.generator.Model()),
		zap.Int("posting_length", utf8.RuneCountInString(rawText)),
	)

	raw, err := e.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("gemini extraction response",
		zap.String("response_preview", logger.TruncateForLog(raw, e.maxLogLen)),
	)

	return parseProfile(raw)
}

func parseProfile(raw string) (*interview.JobProfile, error) {
	cleaned := extractJSON(raw)

	var decoded struct {
		Role         string   `json:"role"`
		SkillsCore   []string `json:"skills_core"`
		SkillsNice   []string `json:"skills_nice"`
		Values       []string `json:"values"`
		Requirements []string `json:"requirements"`
	}
	if err := json.Unmarshal([]byte(cleaned), &decoded); err != nil {
		return nil, fmt.Errorf("parse extraction response: %w", err)
	}

	profile := &interview.JobProfile{
		Role:       strings.TrimSpace(decoded.Role),
		SkillsCore: decoded.SkillsCore,
		SkillsNice: decoded.SkillsNice,
		Values:     decoded.Values,
	}
	if profile.Role == "" {
		profile.Role = UnknownRole
	}

	for _, text := range decoded.Requirements {
		if text = strings.TrimSpace(text); text != "" {
			profile.Requirements = append(profile.Requirements, interview.Requirement{Text: text})
		}
	}

	return profile, nil
}
