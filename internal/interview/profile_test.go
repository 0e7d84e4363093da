package interview

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRequirementUnmarshalJSON(t *testing.T) {
	var profile JobProfile
	raw := `{"requirements": ["Bare string requirement", {"text": "Object requirement"}]}`

	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := []Requirement{
		{Text: "Bare string requirement"},
		{Text: "Object requirement"},
	}
	if diff := cmp.Diff(want, profile.Requirements); diff != "" {
		t.Fatalf("Requirements mismatch (-want +got):\n%s", diff)
	}
}

func TestTargetTexts(t *testing.T) {
	profile := &JobProfile{
		SkillsCore: []string{"Go", "PostgreSQL"},
		SkillsNice: []string{"Docker"},
		Requirements: []Requirement{
			{Text: "3+ years of backend work"},
			{Text: "   "},
			{Text: "Ownership mindset"},
		},
	}

	want := []string{"3+ years of backend work", "Ownership mindset", "Go", "PostgreSQL"}
	if diff := cmp.Diff(want, profile.TargetTexts()); diff != "" {
		t.Fatalf("TargetTexts mismatch (-want +got):\n%s", diff)
	}
}

func TestTargetTextsNilProfile(t *testing.T) {
	var profile *JobProfile
	if got := profile.TargetTexts(); got != nil {
		t.Fatalf("TargetTexts on nil profile = %v, want nil", got)
	}
}

func TestCombinedSkills(t *testing.T) {
	profile := &JobProfile{
		SkillsCore: []string{"Go"},
		SkillsNice: []string{"Docker", "AWS"},
	}

	want := []string{"Go", "Docker", "AWS"}
	if diff := cmp.Diff(want, profile.CombinedSkills()); diff != "" {
		t.Fatalf("CombinedSkills mismatch (-want +got):\n%s", diff)
	}
}
