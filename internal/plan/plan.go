// Package plan holds interview plan types and the deterministic fallback
// generator used when no AI provider is available.
package plan

import (
	"fmt"
	"strings"

	"github.com/gabrielsuarezz/Voxtant/internal/interview"
)

// Question is a single interview question with the skills or requirements it
// is meant to assess.
type Question struct {
	ID      string   `json:"id"`
	Type    string   `json:"type"`
	Text    string   `json:"text"`
	Targets []string `json:"targets"`
}

// Plan is a set of questions plus a per-question rubric of criteria an
// interviewer should look for in a strong answer.
type Plan struct {
	Questions []Question          `json:"questions"`
	Rubric    map[string][]string `json:"rubric"`
}

const (
	QuestionTypeBehavioral = "behavioral"
	QuestionTypeTechnical  = "technical"
)

// Fallback builds a deterministic plan from the profile: a fixed mix of
// behavioral and technical questions targeting the extracted skills and
// requirements.
func Fallback(profile *interview.JobProfile) *Plan {
	if profile == nil {
		profile = &interview.JobProfile{}
	}

	skills := profile.CombinedSkills()
	requirements := make([]string, 0, len(profile.Requirements))
	for _, req := range profile.Requirements {
		if strings.TrimSpace(req.Text) != "" {
			requirements = append(requirements, req.Text)
		}
	}

	skillSubject := "the core technologies"
	if len(skills) > 0 {
		skillSubject = skills[0]
	}

	q1Targets := []string{"leadership", "initiative"}
	if len(requirements) > 0 {
		q1Targets = append(q1Targets, requirements[0])
	}

	q2Targets := skills
	if len(q2Targets) > 2 {
		q2Targets = q2Targets[:2]
	}

	q3Targets := []string{"collaboration", "problem-solving"}
	if len(requirements) > 1 {
		q3Targets = append(q3Targets, requirements[1])
	}

	questions := []Question{
		{
			ID:      "q1",
			Type:    QuestionTypeBehavioral,
			Text:    "Tell me about a time you demonstrated leadership or took initiative on a project. How did you approach it, and what was the outcome?",
			Targets: q1Targets,
		},
		{
			ID:      "q2",
			Type:    QuestionTypeTechnical,
			Text:    fmt.Sprintf("Can you walk me through your experience with %s mentioned in the job description? What projects have you used them on?", skillSubject),
			Targets: q2Targets,
		},
		{
			ID:      "q3",
			Type:    QuestionTypeBehavioral,
			Text:    "Describe a challenging situation where you had to collaborate with others to solve a problem. What was your role and how did you contribute?",
			Targets: q3Targets,
		},
	}

	rubric := map[string][]string{
		"q1": {
			"Provides context (Situation/Task)",
			"Describes specific first-person actions taken",
			"Explains measurable or observable result",
			"Shows reflection or learning",
		},
		"q2": {
			"Names specific tools, frameworks, or APIs",
			"Explains technical trade-offs or decisions",
			"Mentions testing, debugging, or optimization",
			"Demonstrates depth of understanding",
		},
		"q3": {
			"Clearly defines the challenge",
			"Explains their specific role and contributions",
			"Describes collaboration approach",
			"Highlights positive outcome or team impact",
		},
	}

	return &Plan{Questions: questions, Rubric: rubric}
}
