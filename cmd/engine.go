package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/gabrielsuarezz/Voxtant/internal/ai"
	"github.com/gabrielsuarezz/Voxtant/internal/ai/gemini"
	"github.com/gabrielsuarezz/Voxtant/internal/interview"
	"github.com/gabrielsuarezz/Voxtant/internal/secrets"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// engine bundles the graph of collaborators the commands hand to the server
// or use directly. The AI members are nil when no provider is configured;
// grading still works through the deterministic paths.
type engine struct {
	grader    *interview.Grader
	scorer    *interview.Scorer
	tipper    interview.TipGenerator
	extractor ai.Extractor
	planner   ai.Planner
}

// buildEngine wires the grading pipeline from the config. A missing or broken
// AI setup is a warning, not a failure: every AI-backed component has a
// deterministic fallback and the engine must come up regardless.
func buildEngine(ctx context.Context, config *Config, logger *zap.Logger) *engine {
	e := &engine{}

	geminiCfg := geminiConfig(config)

	var embedder interview.Embedder
	if config != nil && config.AI != nil && config.AI.Enabled {
		generator, err := newGenerator(ctx, config.AI, geminiCfg)
		if err != nil {
			logger.Warn("running without AI assistance", zap.Error(err))
		} else {
			aiLogger := logger.With(
				zap.String("provider", "gemini"),
				zap.String("model", generator.Model()),
			)

			e.tipper = gemini.NewTipper(generator, aiLogger, geminiCfg.MaxLogLength)
			e.extractor = gemini.NewExtractor(generator, aiLogger, geminiCfg.MaxLogLength)
			e.planner = gemini.NewPlanner(generator, aiLogger, geminiCfg.MaxLogLength)
		}

		if apiKey, err := resolveAPIKey(geminiCfg); err == nil {
			embedder = gemini.NewEmbedder(apiKey, geminiCfg.EmbeddingModel, geminiCfg.EmbeddingDimension, logger)
		}
	}

	if embedder == nil {
		// Keeps the scorer operational: an embedder without a key serves zero
		// vectors and content scores degrade instead of erroring.
		embedder = gemini.NewEmbedder("", geminiCfg.EmbeddingModel, geminiCfg.EmbeddingDimension, logger)
	}

	e.scorer = interview.NewScorer(embedder, logger)
	e.grader = interview.NewGrader(e.scorer, e.tipper, logger)

	return e
}

func newGenerator(ctx context.Context, cfg *AIConfig, geminiCfg *GeminiConfig) (*gemini.Generator, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	apiKey, err := resolveAPIKey(geminiCfg)
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	return gemini.NewGenerator(ctx, apiKey, geminiCfg.Model)
}

func resolveAPIKey(cfg *GeminiConfig) (string, error) {
	keyFile := strings.TrimSpace(cfg.APIKeyFile)
	if keyFile == "" {
		keyFile = strings.TrimSpace(viper.GetString("ai.gemini.api-key-file"))
	}

	return secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: keyFile,
	})
}

func geminiConfig(config *Config) *GeminiConfig {
	if config == nil || config.AI == nil || config.AI.Gemini == nil {
		return &GeminiConfig{}
	}
	return config.AI.Gemini
}
