package ai

import (
	"context"
	"fmt"

	"alltopia/internal/config"

	"go.uber.org/zap"
)

// NewTextGenerator builds the text collaborator selected by AI_TEXT_PROVIDER.
// A missing credential is not an error here; the returned generator reports it per call.
func NewTextGenerator(ctx context.Context, cfg *config.Config, logger *zap.Logger) (TextGenerator, error) {
	switch cfg.AITextProvider {
	case config.ProviderOpenAI:
		key, env := cfg.APIKeyFor(config.ProviderOpenAI)
		if key == "" {
			return unavailable{provider: config.ProviderOpenAI, model: cfg.AITextModel, envName: env}, nil
		}
		logger.Info("Using AI text provider", zap.String("provider", "openai"))
		return newOpenAIClient(key, cfg.AIBaseURL, cfg.AITextModel, cfg.AIImageModel, cfg.AITemperature, cfg.AIMaxTokens, cfg.AITimeout, logger), nil
	case config.ProviderGemini:
		key, env := cfg.APIKeyFor(config.ProviderGemini)
		if key == "" {
			return unavailable{provider: config.ProviderGemini, model: cfg.AITextModel, envName: env}, nil
		}
		logger.Info("Using AI text provider", zap.String("provider", "gemini"))
		return newGeminiClient(ctx, key, cfg.AITextModel, cfg.AIImageModel, cfg.AITemperature, cfg.AIMaxTokens, cfg.AITimeout, logger)
	case config.ProviderOllama:
		logger.Info("Using AI text provider", zap.String("provider", "ollama"))
		return newOllamaClient(cfg.AIBaseURL, cfg.AITextModel, cfg.AITemperature, cfg.AIMaxTokens, cfg.AITimeout, logger)
	default:
		return nil, fmt.Errorf("unknown AI text provider %q", cfg.AITextProvider)
	}
}

// NewImageGenerator builds the image collaborator selected by AI_IMAGE_PROVIDER.
func NewImageGenerator(ctx context.Context, cfg *config.Config, logger *zap.Logger) (ImageGenerator, error) {
	switch cfg.AIImageProvider {
	case config.ProviderOpenAI:
		key, env := cfg.APIKeyFor(config.ProviderOpenAI)
		if key == "" {
			return unavailable{provider: config.ProviderOpenAI, model: cfg.AIImageModel, envName: env}, nil
		}
		logger.Info("Using AI image provider", zap.String("provider", "openai"))
		baseURL := cfg.AIBaseURL
		if cfg.AITextProvider != config.ProviderOpenAI {
			// AI_BASE_URL belongs to the text provider in that case.
			baseURL = ""
		}
		client := newOpenAIClient(key, baseURL, cfg.AITextModel, cfg.AIImageModel, cfg.AITemperature, cfg.AIMaxTokens, cfg.AITimeout, logger)
		return openAIImageGenerator{openAIClient: client}, nil
	case config.ProviderGemini:
		key, env := cfg.APIKeyFor(config.ProviderGemini)
		if key == "" {
			return unavailable{provider: config.ProviderGemini, model: cfg.AIImageModel, envName: env}, nil
		}
		logger.Info("Using AI image provider", zap.String("provider", "gemini"))
		client, err := newGeminiClient(ctx, key, cfg.AITextModel, cfg.AIImageModel, cfg.AITemperature, cfg.AIMaxTokens, cfg.AITimeout, logger)
		if err != nil {
			return nil, err
		}
		return geminiImageGenerator{geminiClient: client}, nil
	default:
		return nil, fmt.Errorf("unknown AI image provider %q", cfg.AIImageProvider)
	}
}
