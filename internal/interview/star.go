package interview

import "strings"

// Excerpts stored in STARComponents are truncated to this many runes.
const maxExcerptRunes = 100

// STARFlags are binary presence indicators for the four STAR categories.
type STARFlags struct {
	S int `json:"S"`
	T int `json:"T"`
	A int `json:"A"`
	R int `json:"R"`
}

// STARComponents collects illustrative sentence excerpts for each STAR
// category. A sentence may appear under several categories.
type STARComponents struct {
	Situation []string `json:"situation"`
	Task      []string `json:"task"`
	Action    []string `json:"action"`
	Result    []string `json:"result"`
}

// StarFlags runs whole-transcript presence checks for the STAR categories.
// S and T are both driven by the context trigger at this level; the per-flag
// distinction only exists in component extraction. An empty transcript yields
// all zeroes.
func StarFlags(transcript string) STARFlags {
	t := strings.ToLower(strings.TrimSpace(transcript))
	if t == "" {
		return STARFlags{}
	}

	var flags STARFlags
	if defaultPatterns.Context.MatchString(t) {
		flags.S = 1
		flags.T = 1
	}
	if defaultPatterns.Action.MatchString(t) {
		flags.A = 1
	}
	if defaultPatterns.Result.MatchString(t) {
		flags.R = 1
	}

	return flags
}

// ExtractStarComponents classifies each sentence of the transcript into STAR
// categories and stores truncated excerpts as supporting evidence. Unlike the
// transcript-level A flag, the Action category requires a first-person pronoun
// and an action verb in the same sentence.
func ExtractStarComponents(transcript string) STARComponents {
	var components STARComponents

	for _, sentence := range SplitSentences(transcript) {
		lower := strings.ToLower(sentence)
		excerpt := truncateExcerpt(sentence, maxExcerptRunes)

		if defaultPatterns.Context.MatchString(lower) {
			components.Situation = append(components.Situation, excerpt)
		}
		if defaultPatterns.Task.MatchString(lower) {
			components.Task = append(components.Task, excerpt)
		}
		if defaultPatterns.FirstPerson.MatchString(sentence) && defaultPatterns.Action.MatchString(lower) {
			components.Action = append(components.Action, excerpt)
		}
		if defaultPatterns.Result.MatchString(lower) {
			components.Result = append(components.Result, excerpt)
		}
	}

	return components
}

// truncateExcerpt cuts the string to limit runes. May cut mid-word; excerpts
// are for display only.
func truncateExcerpt(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
