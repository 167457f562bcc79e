package ai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"alltopia/internal/domain"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	defaultGeminiTextModel  = "gemini-2.5-flash"
	defaultGeminiImageModel = "imagen-4.0-generate-001"
)

// geminiClient implements TextGenerator and ImageGenerator with the Gemini API.
type geminiClient struct {
	client      *genai.Client
	textModel   string
	imageModel  string
	temperature float32
	maxTokens   int
	logger      *zap.Logger
}

func newGeminiClient(ctx context.Context, apiKey, textModel, imageModel string, temperature float64, maxTokens int, timeout time.Duration, logger *zap.Logger) (*geminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: timeout},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if textModel == "" {
		textModel = defaultGeminiTextModel
	}
	if imageModel == "" {
		imageModel = defaultGeminiImageModel
	}
	return &geminiClient{
		client:      client,
		textModel:   textModel,
		imageModel:  imageModel,
		temperature: float32(temperature),
		maxTokens:   maxTokens,
		logger:      logger.Named("GeminiClient"),
	}, nil
}

func (c *geminiClient) Available() error { return nil }
func (c *geminiClient) Provider() string { return "gemini" }
func (c *geminiClient) Model() string    { return c.textModel }

// GenerateText sends one GenerateContent request.
func (c *geminiClient) GenerateText(ctx context.Context, sessionID string, systemPrompt string, userInput string, params GenerationParams) (string, UsageInfo, error) {
	log := c.logger.With(zap.String("session_id", sessionID), zap.String("model", c.textModel))

	if strings.TrimSpace(userInput) == "" {
		observeRequest(c.Provider(), c.textModel, kindText, statusError, time.Now())
		return "", UsageInfo{}, fmt.Errorf("%w: empty prompt", domain.ErrAIGenerationFailed)
	}

	temperature := float32Val(params.Temperature, c.temperature)
	cfg := &genai.GenerateContentConfig{
		Temperature: &temperature,
	}
	maxTokens := c.maxTokens
	if params.MaxTokens != nil {
		maxTokens = intVal(params.MaxTokens)
	}
	if maxTokens > 0 {
		cfg.MaxOutputTokens = int32(maxTokens)
	}
	if systemPrompt != "" {
		cfg.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}

	started := time.Now()
	log.Debug("Sending GenerateContent request", zap.Int("prompt_bytes", len(userInput)))

	resp, err := c.client.Models.GenerateContent(ctx, c.textModel, genai.Text(userInput), cfg)
	if err != nil {
		log.Error("GenerateContent failed", zap.Duration("duration", time.Since(started)), zap.Error(err))
		observeRequest(c.Provider(), c.textModel, kindText, statusError, started)
		return "", UsageInfo{}, fmt.Errorf("%w: %v", domain.ErrAIGenerationFailed, err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		log.Warn("GenerateContent returned an empty response", zap.Duration("duration", time.Since(started)))
		observeRequest(c.Provider(), c.textModel, kindText, statusEmptyResponse, started)
		return "", UsageInfo{}, fmt.Errorf("%w: empty response", domain.ErrAIGenerationFailed)
	}

	var usage UsageInfo
	if md := resp.UsageMetadata; md != nil && md.TotalTokenCount > 0 {
		usage = UsageInfo{
			PromptTokens:     int(md.PromptTokenCount),
			CompletionTokens: int(md.CandidatesTokenCount),
			TotalTokens:      int(md.TotalTokenCount),
		}
	} else {
		usage = estimateUsage(c.textModel, systemPrompt, userInput, text)
	}

	observeRequest(c.Provider(), c.textModel, kindText, statusSuccess, started)
	observeUsage(c.Provider(), c.textModel, usage)
	log.Info("GenerateContent response received",
		zap.Duration("duration", time.Since(started)),
		zap.Int("response_length", len(text)),
		zap.Int("total_tokens", usage.TotalTokens),
	)
	return text, usage, nil
}

// geminiImageGenerator renders images with an Imagen model.
type geminiImageGenerator struct {
	*geminiClient
}

func (g geminiImageGenerator) Model() string { return g.imageModel }

// GenerateImage returns the first generated image as a data URI.
func (g geminiImageGenerator) GenerateImage(ctx context.Context, sessionID string, prompt string) (ImageResult, error) {
	log := g.logger.With(zap.String("session_id", sessionID), zap.String("model", g.imageModel))
	started := time.Now()

	resp, err := g.client.Models.GenerateImages(ctx, g.imageModel, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		OutputMIMEType: "image/png",
	})
	if err != nil {
		log.Error("GenerateImages failed", zap.Error(err))
		observeRequest(g.Provider(), g.imageModel, kindImage, statusError, started)
		return ImageResult{}, fmt.Errorf("%w: %v", domain.ErrImageGenerationFailed, err)
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil || len(resp.GeneratedImages[0].Image.ImageBytes) == 0 {
		log.Warn("GenerateImages returned no image")
		observeRequest(g.Provider(), g.imageModel, kindImage, statusEmptyResponse, started)
		return ImageResult{}, fmt.Errorf("%w: empty response", domain.ErrImageGenerationFailed)
	}

	img := resp.GeneratedImages[0].Image
	mime := img.MIMEType
	if mime == "" {
		mime = "image/png"
	}
	observeRequest(g.Provider(), g.imageModel, kindImage, statusSuccess, started)
	log.Info("Image generated", zap.Duration("duration", time.Since(started)), zap.Int("bytes", len(img.ImageBytes)))

	return ImageResult{
		URL:      encodeDataURI(mime, img.ImageBytes),
		Data:     img.ImageBytes,
		MIMEType: mime,
	}, nil
}
