package interview

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type stubTipper struct {
	tips []string
	err  error

	gotRequest *TipRequest
}

func (s *stubTipper) Tips(_ context.Context, req *TipRequest) ([]string, error) {
	s.gotRequest = req
	return s.tips, s.err
}

func newTestGrader(tipper TipGenerator) *Grader {
	return NewGrader(NewScorer(&stubEmbedder{dim: 2}, nil), tipper, nil)
}

func TestGradeUsesAITips(t *testing.T) {
	tipper := &stubTipper{tips: []string{"Mention the rollout numbers."}}
	grader := newTestGrader(tipper)

	result := grader.Grade(context.Background(), &Payload{
		Transcript: "When I was at Acme, I led the migration and we saved 30% in costs.",
		JobGraph:   JobProfile{SkillsCore: []string{"Go"}},
	})

	if diff := cmp.Diff(tipper.tips, result.Tips); diff != "" {
		t.Fatalf("Tips mismatch (-want +got):\n%s", diff)
	}

	if tipper.gotRequest == nil {
		t.Fatal("tip generator was not called")
	}
	if tipper.gotRequest.Flags != (STARFlags{S: 1, T: 1, A: 1, R: 1}) {
		t.Fatalf("tip request flags = %+v, want all set", tipper.gotRequest.Flags)
	}
	if len(tipper.gotRequest.MissedSkills) != 1 || tipper.gotRequest.MissedSkills[0] != "Go" {
		t.Fatalf("tip request missed skills = %v, want [Go]", tipper.gotRequest.MissedSkills)
	}
}

func TestGradeFallsBackOnTipError(t *testing.T) {
	tipper := &stubTipper{err: errors.New("model unavailable")}
	grader := newTestGrader(tipper)

	result := grader.Grade(context.Background(), &Payload{
		Transcript: "When I was at Acme, I led the migration and we saved 30% in costs.",
	})

	if len(result.Tips) == 0 {
		t.Fatal("expected fallback tips after AI failure")
	}
	want := FallbackTips(
		"When I was at Acme, I led the migration and we saved 30% in costs.",
		STARFlags{S: 1, T: 1, A: 1, R: 1}, 0.5, nil,
	)
	if diff := cmp.Diff(want, result.Tips); diff != "" {
		t.Fatalf("Tips mismatch (-want +got):\n%s", diff)
	}
}

func TestGradeFallsBackOnEmptyAITips(t *testing.T) {
	tipper := &stubTipper{tips: []string{}}
	grader := newTestGrader(tipper)

	result := grader.Grade(context.Background(), &Payload{
		Transcript: "short",
	})

	if diff := cmp.Diff([]string{tipTooShort}, result.Tips); diff != "" {
		t.Fatalf("Tips mismatch (-want +got):\n%s", diff)
	}
}

func TestGradeWithoutTipper(t *testing.T) {
	grader := newTestGrader(nil)

	result := grader.Grade(context.Background(), &Payload{
		Transcript: "When I was at Acme, I led the migration and we saved 30% in costs.",
	})

	if len(result.Tips) == 0 {
		t.Fatal("expected deterministic tips without a tip generator")
	}
}

func TestGradeNeutralScoreWithoutTargets(t *testing.T) {
	grader := newTestGrader(nil)

	result := grader.Grade(context.Background(), &Payload{
		Transcript: "I spent years building backend services in production.",
	})

	if result.ContentScore != 0.5 {
		t.Fatalf("ContentScore = %v, want the neutral 0.5", result.ContentScore)
	}
}

func TestGradePassesDeliveryThrough(t *testing.T) {
	grader := newTestGrader(nil)

	result := grader.Grade(context.Background(), &Payload{
		Transcript: "I spent years building backend services in production.",
		Timings:    Timings{WPM: 142.5, PauseRatio: 0.12, FillerPerMin: 3},
	})

	want := Delivery{WPM: 142.5, PauseRatio: 0.12, FillerPerMin: 3}
	if result.Delivery != want {
		t.Fatalf("Delivery = %+v, want %+v", result.Delivery, want)
	}
}

func TestGradeNilPayload(t *testing.T) {
	grader := newTestGrader(nil)

	result := grader.Grade(context.Background(), nil)
	if result == nil {
		t.Fatal("Grade returned nil result")
	}
	if result.ContentScore != 0 {
		t.Fatalf("ContentScore = %v, want 0 for an empty payload", result.ContentScore)
	}
	if diff := cmp.Diff([]string{tipTooShort}, result.Tips); diff != "" {
		t.Fatalf("Tips mismatch (-want +got):\n%s", diff)
	}
}

func TestGradeRoundsContentScore(t *testing.T) {
	sentence := "I tuned the database for them."
	embedder := &stubEmbedder{dim: 2, vectors: map[string][]float32{
		sentence: {1, 0},
		"tuning": unit2(0.33333),
	}}
	grader := NewGrader(NewScorer(embedder, nil), nil, nil)

	result := grader.Grade(context.Background(), &Payload{
		Transcript: sentence,
		JobGraph:   JobProfile{Requirements: []Requirement{{Text: "tuning"}}},
	})

	if result.ContentScore != 0.333 {
		t.Fatalf("ContentScore = %v, want 0.333 after rounding", result.ContentScore)
	}
}
