package gemini

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	defaultEmbeddingModel = "text-embedding-004"

	// DefaultEmbeddingDimension matches the vector size the grading engine was
	// tuned against.
	DefaultEmbeddingDimension = 384
)

// Embedder provides sentence embeddings through the Gemini embedding models.
//
// The underlying client is created lazily on first use, guarded by sync.Once;
// a failed initialization is terminal for the process lifetime and is logged
// exactly once. After a failure, and for any per-call API error, Embed returns
// zero vectors of the configured dimension so the grading pipeline never
// raises on missing infrastructure.
type Embedder struct {
	apiKey    string
	modelName string
	dimension int
	logger    *zap.Logger

	once    sync.Once
	client  *genai.Client
	initErr error
}

func NewEmbedder(apiKey, model string, dimension int, lg *zap.Logger) *Embedder {
	if lg == nil {
		lg = zap.NewNop()
	}
	if model = strings.TrimSpace(model); model == "" {
		model = defaultEmbeddingModel
	}
	if dimension <= 0 {
		dimension = DefaultEmbeddingDimension
	}

	return &Embedder{
		apiKey:    strings.TrimSpace(apiKey),
		modelName: model,
		dimension: dimension,
		logger:    lg,
	}
}

// Dimension returns the vector length every Embed result is guaranteed to have.
func (e *Embedder) Dimension() int {
	return e.dimension
}

// Embed returns one L2-normalized vector per input text. It never fails:
// unavailable infrastructure degrades to zero vectors.
func (e *Embedder) Embed(ctx context.Context, texts []string) [][]float32 {
	if len(texts) == 0 {
		return nil
	}

	e.once.Do(func() { e.init(ctx) })
	if e.initErr != nil {
		return e.zeroVectors(len(texts))
	}

	contents := make([]*genai.Content, 0, len(texts))
	for _, text := range texts {
		contents = append(contents, genai.NewContentFromText(text, genai.RoleUser))
	}

	dim := int32(e.dimension)
	resp, err := e.client.Models.EmbedContent(ctx, e.modelName, contents, &genai.EmbedContentConfig{
		OutputDimensionality: &dim,
	})
	if err != nil {
		e.logger.Warn("embedding request failed, degrading to zero vectors", zap.Error(err))
		return e.zeroVectors(len(texts))
	}

	vectors := e.zeroVectors(len(texts))
	for i, embedding := range resp.Embeddings {
		if i >= len(vectors) || embedding == nil || len(embedding.Values) == 0 {
			continue
		}
		vectors[i] = normalize(e.fit(embedding.Values))
	}

	return vectors
}

func (e *Embedder) init(ctx context.Context) {
	if e.apiKey == "" {
		e.initErr = errors.New("embedding api key is not configured")
		e.logger.Warn("embedding model unavailable, grading will use zero vectors", zap.Error(e.initErr))
		return
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  e.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		e.initErr = err
		e.logger.Warn("embedding model unavailable, grading will use zero vectors", zap.Error(err))
		return
	}

	e.client = client
	e.logger.Debug("embedding client initialized",
		zap.String("model", e.modelName),
		zap.Int("dimension", e.dimension),
	)
}

// fit pads or truncates a vector to the configured dimension.
func (e *Embedder) fit(values []float32) []float32 {
	if len(values) == e.dimension {
		return values
	}

	fitted := make([]float32, e.dimension)
	copy(fitted, values)
	return fitted
}

func (e *Embedder) zeroVectors(n int) [][]float32 {
	vectors := make([][]float32, n)
	for i := range vectors {
		vectors[i] = make([]float32, e.dimension)
	}
	return vectors
}

// normalize rescales to unit L2 norm. Truncated Gemini embeddings are not
// unit length, and the scorer's cosine assumes normalized vectors.
func normalize(values []float32) []float32 {
	sum := 0.0
	for _, v := range values {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return values
	}

	norm := math.Sqrt(sum)
	normalized := make([]float32, len(values))
	for i, v := range values {
		normalized[i] = float32(float64(v) / norm)
	}
	return normalized
}
