package gemini

import (
	"context"
	"math"
	"testing"
)

func TestEmbedderDefaults(t *testing.T) {
	e := NewEmbedder("key", "  ", 0, nil)

	if e.modelName != defaultEmbeddingModel {
		t.Errorf("model = %q, want %q", e.modelName, defaultEmbeddingModel)
	}
	if e.Dimension() != DefaultEmbeddingDimension {
		t.Errorf("Dimension() = %d, want %d", e.Dimension(), DefaultEmbeddingDimension)
	}
}

func TestEmbedderWithoutKeyReturnsZeroVectors(t *testing.T) {
	e := NewEmbedder("", "", 8, nil)

	vectors := e.Embed(context.Background(), []string{"one", "two"})
	if len(vectors) != 2 {
		t.Fatalf("got %d vectors, want 2", len(vectors))
	}
	for i, vector := range vectors {
		if len(vector) != 8 {
			t.Fatalf("vector %d has dimension %d, want 8", i, len(vector))
		}
		for _, v := range vector {
			if v != 0 {
				t.Fatalf("vector %d is not a zero vector: %v", i, vector)
			}
		}
	}

	// The failed initialization is terminal; later calls degrade the same way.
	again := e.Embed(context.Background(), []string{"three"})
	if len(again) != 1 || len(again[0]) != 8 {
		t.Fatalf("second Embed call returned %v, want one zero vector of dimension 8", again)
	}
}

func TestEmbedderEmptyInput(t *testing.T) {
	e := NewEmbedder("", "", 8, nil)
	if got := e.Embed(context.Background(), nil); got != nil {
		t.Fatalf("Embed(nil) = %v, want nil", got)
	}
}

func TestEmbedderFit(t *testing.T) {
	e := NewEmbedder("key", "", 4, nil)

	padded := e.fit([]float32{1, 2})
	if len(padded) != 4 || padded[0] != 1 || padded[1] != 2 || padded[2] != 0 || padded[3] != 0 {
		t.Fatalf("fit short vector = %v, want [1 2 0 0]", padded)
	}

	truncated := e.fit([]float32{1, 2, 3, 4, 5, 6})
	if len(truncated) != 4 || truncated[3] != 4 {
		t.Fatalf("fit long vector = %v, want the first 4 values", truncated)
	}

	exact := []float32{1, 2, 3, 4}
	if got := e.fit(exact); &got[0] != &exact[0] {
		t.Fatal("fit of an exact-size vector should return it unchanged")
	}
}

func TestNormalize(t *testing.T) {
	got := normalize([]float32{3, 4})

	if math.Abs(float64(got[0])-0.6) > 1e-6 || math.Abs(float64(got[1])-0.8) > 1e-6 {
		t.Fatalf("normalize([3 4]) = %v, want [0.6 0.8]", got)
	}

	sum := 0.0
	for _, v := range got {
		sum += float64(v) * float64(v)
	}
	if math.Abs(sum-1) > 1e-6 {
		t.Fatalf("normalized vector has squared norm %v, want 1", sum)
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	zero := []float32{0, 0, 0}
	got := normalize(zero)
	for _, v := range got {
		if v != 0 {
			t.Fatalf("normalize of zero vector = %v, want unchanged zeroes", got)
		}
	}
}
