package interview

import (
	"encoding/json"
	"strings"
)

// JobProfile is the extracted skill/requirement graph for a target job. It is
// supplied by the caller per grading request and never mutated by the engine.
type JobProfile struct {
	Role         string        `json:"role,omitempty"`
	SkillsCore   []string      `json:"skills_core,omitempty"`
	SkillsNice   []string      `json:"skills_nice,omitempty"`
	Values       []string      `json:"values,omitempty"`
	Requirements []Requirement `json:"requirements,omitempty"`
}

// Requirement is a single job requirement. The external contract accepts both
// `{"text": "..."}` objects and bare strings; both decode into this struct.
type Requirement struct {
	Text string `json:"text"`
}

// UnmarshalJSON accepts a bare string or an object with a text field.
func (r *Requirement) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		r.Text = text
		return nil
	}

	var obj struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	r.Text = obj.Text
	return nil
}

// TargetTexts returns the relevance targets used by the content scorer:
// requirement texts (empty ones dropped) followed by the core skills.
func (p *JobProfile) TargetTexts() []string {
	if p == nil {
		return nil
	}

	targets := make([]string, 0, len(p.Requirements)+len(p.SkillsCore))
	for _, req := range p.Requirements {
		if strings.TrimSpace(req.Text) != "" {
			targets = append(targets, req.Text)
		}
	}

	targets = append(targets, p.SkillsCore...)
	return targets
}

// CombinedSkills returns core skills followed by nice-to-have skills.
func (p *JobProfile) CombinedSkills() []string {
	if p == nil {
		return nil
	}

	combined := make([]string, 0, len(p.SkillsCore)+len(p.SkillsNice))
	combined = append(combined, p.SkillsCore...)
	combined = append(combined, p.SkillsNice...)
	return combined
}
