package interview

import (
	"fmt"
	"strings"
)

const (
	// Transcripts shorter than this (in runes, after trimming) get the single
	// "too short" tip.
	minTranscriptRunes = 20

	// The deterministic path caps at 3 tips; the AI path is allowed 4.
	maxFallbackTips = 3

	tipTooShort = "Your answer was too short. Aim for 1-2 minutes to fully demonstrate your experience."
	tipContext  = "Start with context: Where and when did this happen? For example, 'When I was working at X company on Y project...'"
	tipAction   = "Use strong first-person action verbs. Instead of 'we did', say 'I led', 'I implemented', or 'I designed'."
	tipResults  = "Add measurable results! Quantify your impact with metrics like '30% faster', 'saved $50k', or 'reduced errors by 80%'."
	tipPositive = "Good structure! To strengthen further, add specific metrics and mention more technical details."
)

// tipInput carries everything the fallback rules inspect.
type tipInput struct {
	flags        STARFlags
	contentScore float64
	missedSkills []string
}

// tipRule is a single deterministic coaching rule. Rules run in priority order.
type tipRule struct {
	name    string
	applies func(in tipInput) bool
	render  func(in tipInput) string
}

var fallbackRules = []tipRule{
	{
		name:    "missing_context",
		applies: func(in tipInput) bool { return in.flags.S == 0 && in.flags.T == 0 },
		render:  func(tipInput) string { return tipContext },
	},
	{
		name:    "missing_action_language",
		applies: func(in tipInput) bool { return in.flags.A == 0 },
		render:  func(tipInput) string { return tipAction },
	},
	{
		name:    "missing_quantified_results",
		applies: func(in tipInput) bool { return in.flags.R == 0 },
		render:  func(tipInput) string { return tipResults },
	},
	{
		name: "low_relevance_missed_skills",
		applies: func(in tipInput) bool {
			return in.contentScore < 0.5 && len(in.missedSkills) > 0
		},
		render: func(in tipInput) string {
			missed := in.missedSkills
			if len(missed) > 2 {
				missed = missed[:2]
			}
			return fmt.Sprintf("Connect your answer to required skills: %s.", strings.Join(missed, ", "))
		},
	},
}

// FallbackTips produces deterministic, rule-based improvement tips. It never
// returns an empty list: a too-short transcript gets exactly one tip, and when
// no rule fires a generic positive-reinforcement tip is emitted.
func FallbackTips(transcript string, flags STARFlags, contentScore float64, missedSkills []string) []string {
	if len([]rune(strings.TrimSpace(transcript))) < minTranscriptRunes {
		return []string{tipTooShort}
	}

	in := tipInput{flags: flags, contentScore: contentScore, missedSkills: missedSkills}

	var tips []string
	for _, rule := range fallbackRules {
		if rule.applies(in) {
			tips = append(tips, rule.render(in))
		}
	}

	if len(tips) == 0 {
		tips = append(tips, tipPositive)
	}

	if len(tips) > maxFallbackTips {
		tips = tips[:maxFallbackTips]
	}

	return tips
}
