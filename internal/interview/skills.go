package interview

import (
	"regexp"
	"strings"
)

// Only the first combined core+nice skills up to this cap are checked.
const maxSkillChecks = 10

var skillSeparators = regexp.MustCompile(`[\s-]+`)

// SkillCoverage reports which of the job's skills are mentioned in the
// transcript and which are missed. Matching is case-insensitive and literal:
// no stemming, no synonyms. Internal whitespace or hyphens in a skill name
// match a space, a hyphen, or nothing, so "front end" and "Front-End" find
// each other.
func SkillCoverage(transcript string, profile *JobProfile) (mentioned, missed []string) {
	lower := strings.ToLower(transcript)

	skills := profile.CombinedSkills()
	if len(skills) > maxSkillChecks {
		skills = skills[:maxSkillChecks]
	}

	for _, skill := range skills {
		pattern := skillPattern(skill)
		if pattern != nil && pattern.MatchString(lower) {
			mentioned = append(mentioned, skill)
		} else {
			missed = append(missed, skill)
		}
	}

	return mentioned, missed
}

// skillPattern builds the case-tolerant substring pattern for one skill name.
func skillPattern(skill string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(strings.ToLower(strings.TrimSpace(skill)))
	if quoted == "" {
		return nil
	}

	pattern, err := regexp.Compile(skillSeparators.ReplaceAllString(quoted, `[\s-]?`))
	if err != nil {
		return nil
	}
	return pattern
}
