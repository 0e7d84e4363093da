package interview

import (
	"context"
	"math"
	"sort"

	"go.uber.org/zap"
)

// Fraction of best-supporting sentences averaged into the content score.
const topSentenceFraction = 0.3

// Neutral score returned when the job profile provides no targets to judge
// relevance against.
const neutralScore = 0.5

// Embedder turns a batch of texts into fixed-dimension vectors. Implementations
// must degrade rather than fail: when the underlying model is unavailable they
// return zero vectors of the expected dimension.
type Embedder interface {
	Embed(ctx context.Context, texts []string) [][]float32
	Dimension() int
}

// Scorer computes the semantic relevance of a transcript against a job
// profile's requirements and core skills.
type Scorer struct {
	embedder Embedder
	logger   *zap.Logger
}

func NewScorer(embedder Embedder, logger *zap.Logger) *Scorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scorer{embedder: embedder, logger: logger}
}

// ContentScore returns a relevance score in [0, 1]. Each sentence is scored by
// its best cosine similarity against any target; the top 30% of sentences
// (at least one) are averaged. An empty transcript scores 0; a profile with no
// requirements or core skills scores the neutral 0.5.
func (s *Scorer) ContentScore(ctx context.Context, transcript string, profile *JobProfile) float64 {
	sentences := SplitSentences(transcript)
	if len(sentences) == 0 {
		return 0
	}

	targets := profile.TargetTexts()
	if len(targets) == 0 {
		return neutralScore
	}

	if s.embedder == nil {
		return 0
	}

	sentenceVecs := s.embedder.Embed(ctx, sentences)
	targetVecs := s.embedder.Embed(ctx, targets)

	perSentence := make([]float64, 0, len(sentenceVecs))
	for _, sv := range sentenceVecs {
		// Start at cosine's lower bound so an all-negative sentence keeps its
		// true maximum instead of being floored at 0 before pooling.
		best := -1.0
		for _, tv := range targetVecs {
			if sim := Cosine(sv, tv); sim > best {
				best = sim
			}
		}
		perSentence = append(perSentence, best)
	}

	if len(perSentence) == 0 {
		return 0
	}

	k := int(math.Ceil(float64(len(perSentence)) * topSentenceFraction))
	if k < 1 {
		k = 1
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(perSentence)))

	sum := 0.0
	for _, score := range perSentence[:k] {
		sum += score
	}

	s.logger.Debug("content score computed",
		zap.Int("sentences", len(sentences)),
		zap.Int("targets", len(targets)),
		zap.Int("pooled", k),
	)

	return clamp(sum/float64(k), 0, 1)
}

// Cosine returns the cosine similarity of two vectors, clamped to [-1, 1].
// Vectors are assumed normalized, so this is a plain dot product. Returns 0
// when either vector is empty.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	sum := 0.0
	for i := 0; i < n; i++ {
		sum += float64(a[i]) * float64(b[i])
	}

	return clamp(sum, -1, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
