package interview

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStarFlags(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		want       STARFlags
	}{
		{
			name:       "empty transcript",
			transcript: "",
			want:       STARFlags{},
		},
		{
			name:       "whitespace only",
			transcript: "  \n  ",
			want:       STARFlags{},
		},
		{
			name:       "full star answer",
			transcript: "When I was at Acme, I led the migration and we saved 30% in costs.",
			want:       STARFlags{S: 1, T: 1, A: 1, R: 1},
		},
		{
			name:       "context only",
			transcript: "During the winter we talked a lot.",
			want:       STARFlags{S: 1, T: 1},
		},
		{
			name:       "action only",
			transcript: "We implemented a cache together.",
			want:       STARFlags{A: 1},
		},
		{
			name:       "outcome verb with a count",
			transcript: "Latency dropped and we delivered 3 releases.",
			want:       STARFlags{A: 1, R: 1},
		},
		{
			name:       "multiplier figure",
			transcript: "It ran 3 times faster after the rollout.",
			want:       STARFlags{R: 1},
		},
		{
			name:       "dollar figure",
			transcript: "That move was worth $50000 annually.",
			want:       STARFlags{R: 1},
		},
		{
			name:       "no triggers",
			transcript: "It is a nice place with good people.",
			want:       STARFlags{},
		},
		{
			name:       "case insensitive",
			transcript: "WHEN THE SYSTEM FAILED WE ALL HELPED.",
			want:       STARFlags{S: 1, T: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StarFlags(tt.transcript)
			if got != tt.want {
				t.Fatalf("StarFlags(%q) = %+v, want %+v", tt.transcript, got, tt.want)
			}
		})
	}
}

func TestExtractStarComponents(t *testing.T) {
	transcript := "When I was at Acme, the goal was to cut costs. I led the migration myself. We saved 30% in the first quarter."

	got := ExtractStarComponents(transcript)

	want := STARComponents{
		Situation: []string{"When I was at Acme, the goal was to cut costs."},
		Task:      []string{"When I was at Acme, the goal was to cut costs."},
		Action:    []string{"I led the migration myself."},
		Result:    []string{"We saved 30% in the first quarter."},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ExtractStarComponents mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractStarComponentsActionNeedsFirstPerson(t *testing.T) {
	// "led" triggers the transcript-level action flag, but component extraction
	// additionally requires a first-person pronoun in the same sentence.
	transcript := "We led the migration as a team."

	if flags := StarFlags(transcript); flags.A != 1 {
		t.Fatalf("StarFlags(%q).A = %d, want 1", transcript, flags.A)
	}

	got := ExtractStarComponents(transcript)
	if len(got.Action) != 0 {
		t.Fatalf("Action components = %v, want none without a first-person pronoun", got.Action)
	}
}

func TestExtractStarComponentsTruncatesExcerpts(t *testing.T) {
	sentence := "When I was at Acme " + strings.Repeat("x", 200) + " things happened."

	got := ExtractStarComponents(sentence)
	if len(got.Situation) != 1 {
		t.Fatalf("Situation components = %v, want exactly one", got.Situation)
	}
	if n := len([]rune(got.Situation[0])); n != maxExcerptRunes {
		t.Fatalf("excerpt length = %d runes, want %d", n, maxExcerptRunes)
	}
	if !strings.HasPrefix(sentence, got.Situation[0]) {
		t.Fatalf("excerpt %q is not a prefix of the sentence", got.Situation[0])
	}
}

func TestExtractStarComponentsEmpty(t *testing.T) {
	got := ExtractStarComponents("")
	if len(got.Situation)+len(got.Task)+len(got.Action)+len(got.Result) != 0 {
		t.Fatalf("expected no components for empty transcript, got %+v", got)
	}
}
