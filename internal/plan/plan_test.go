package plan

import (
	"strings"
	"testing"

	"github.com/gabrielsuarezz/Voxtant/internal/interview"
	"github.com/google/go-cmp/cmp"
)

func TestFallback(t *testing.T) {
	profile := &interview.JobProfile{
		Role:       "Backend Engineer",
		SkillsCore: []string{"Go", "PostgreSQL", "Kubernetes"},
		SkillsNice: []string{"Docker"},
		Requirements: []interview.Requirement{
			{Text: "3+ years of Go"},
			{Text: "Production on-call experience"},
		},
	}

	got := Fallback(profile)

	if len(got.Questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(got.Questions))
	}

	q1, q2, q3 := got.Questions[0], got.Questions[1], got.Questions[2]

	if q1.Type != QuestionTypeBehavioral || q3.Type != QuestionTypeBehavioral {
		t.Errorf("q1/q3 types = %s/%s, want behavioral", q1.Type, q3.Type)
	}
	if q2.Type != QuestionTypeTechnical {
		t.Errorf("q2 type = %s, want technical", q2.Type)
	}

	if diff := cmp.Diff([]string{"leadership", "initiative", "3+ years of Go"}, q1.Targets); diff != "" {
		t.Errorf("q1 targets mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Go", "PostgreSQL"}, q2.Targets); diff != "" {
		t.Errorf("q2 targets mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"collaboration", "problem-solving", "Production on-call experience"}, q3.Targets); diff != "" {
		t.Errorf("q3 targets mismatch (-want +got):\n%s", diff)
	}

	if !strings.Contains(q2.Text, "Go") {
		t.Errorf("q2 text does not name the first skill: %q", q2.Text)
	}

	for _, q := range got.Questions {
		if len(got.Rubric[q.ID]) == 0 {
			t.Errorf("no rubric criteria for %s", q.ID)
		}
	}
}

func TestFallbackEmptyProfile(t *testing.T) {
	got := Fallback(nil)

	if len(got.Questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(got.Questions))
	}
	if !strings.Contains(got.Questions[1].Text, "the core technologies") {
		t.Errorf("q2 text missing the generic skill subject: %q", got.Questions[1].Text)
	}
	if len(got.Questions[1].Targets) != 0 {
		t.Errorf("q2 targets = %v, want none for an empty profile", got.Questions[1].Targets)
	}
}
