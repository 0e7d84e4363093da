package interview

import "regexp"

// PatternSet holds the compiled trigger patterns the STAR detector applies.
// Patterns are kept here as a tunable table, separate from the detection logic.
// All patterns except FirstPerson are matched against lowercased text.
type PatternSet struct {
	// Context signals a situation: temporal or positional framing phrases.
	Context *regexp.Regexp
	// Task signals a goal or obligation.
	Task *regexp.Regexp
	// Action signals leadership/building verbs.
	Action *regexp.Regexp
	// Result signals quantified outcomes: percentages, dollars, counts.
	Result *regexp.Regexp
	// FirstPerson matches the pronoun "I" and is applied to the original,
	// non-lowercased sentence.
	FirstPerson *regexp.Regexp
}

var defaultPatterns = PatternSet{
	Context: regexp.MustCompile(`\b(when|while|as part of|at [a-zA-Z]|during|on a project|in my (course|role|internship|position)|for a client|back when|at the time)\b`),

	Task: regexp.MustCompile(`\b(needed to|had to|was tasked|was responsible|was asked|goal was|objective was|challenge was|problem was|required to)\b`),

	Action: regexp.MustCompile(`\b(led|built|designed|implemented|debugged|owned|drove|coordinated|launched|migrated|architected|optimized|shipped|improved|reduced|increased|automated|refactored|mentored|collaborated|created|developed|established|managed|executed|delivered)\b`),

	Result: regexp.MustCompile(`(\b\d+(\.\d+)?(%|x| percent| times)\b|\$\d+|\b(improved|reduced|increased|grew|saved|achieved|delivered|completed).*\d+)`),

	FirstPerson: regexp.MustCompile(`\bI\b`),
}
