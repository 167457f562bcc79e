package ai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"alltopia/internal/domain"

	openaigo "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const (
	defaultOpenAITextModel  = openaigo.GPT4oMini
	defaultOpenAIImageModel = openaigo.CreateImageModelDallE2
)

// openAIClient implements TextGenerator and ImageGenerator on top of go-openai.
// It also serves any OpenAI-compatible endpoint configured via AI_BASE_URL.
type openAIClient struct {
	client      *openaigo.Client
	textModel   string
	imageModel  string
	temperature float32
	maxTokens   int
	logger      *zap.Logger
}

func newOpenAIClient(apiKey, baseURL, textModel, imageModel string, temperature float64, maxTokens int, timeout time.Duration, logger *zap.Logger) *openAIClient {
	cfg := openaigo.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}

	if textModel == "" {
		textModel = defaultOpenAITextModel
	}
	if imageModel == "" {
		imageModel = defaultOpenAIImageModel
	}
	return &openAIClient{
		client:      openaigo.NewClientWithConfig(cfg),
		textModel:   textModel,
		imageModel:  imageModel,
		temperature: float32(temperature),
		maxTokens:   maxTokens,
		logger:      logger.Named("OpenAIClient"),
	}
}

func (c *openAIClient) Available() error { return nil }
func (c *openAIClient) Provider() string { return "openai" }
func (c *openAIClient) Model() string    { return c.textModel }

// GenerateText sends one chat completion request.
func (c *openAIClient) GenerateText(ctx context.Context, sessionID string, systemPrompt string, userInput string, params GenerationParams) (string, UsageInfo, error) {
	log := c.logger.With(zap.String("session_id", sessionID), zap.String("model", c.textModel))

	if strings.TrimSpace(userInput) == "" {
		observeRequest(c.Provider(), c.textModel, kindText, statusError, time.Now())
		return "", UsageInfo{}, fmt.Errorf("%w: empty prompt", domain.ErrAIGenerationFailed)
	}

	messages := make([]openaigo.ChatCompletionMessage, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, openaigo.ChatCompletionMessage{Role: openaigo.ChatMessageRoleSystem, Content: systemPrompt})
	}
	messages = append(messages, openaigo.ChatCompletionMessage{Role: openaigo.ChatMessageRoleUser, Content: userInput})

	maxTokens := c.maxTokens
	if params.MaxTokens != nil {
		maxTokens = intVal(params.MaxTokens)
	}

	started := time.Now()
	log.Debug("Sending chat completion request", zap.Int("prompt_bytes", len(userInput)))

	resp, err := c.client.CreateChatCompletion(ctx, openaigo.ChatCompletionRequest{
		Model:       c.textModel,
		Messages:    messages,
		Temperature: float32Val(params.Temperature, c.temperature),
		MaxTokens:   maxTokens,
	})
	if err != nil {
		log.Error("Chat completion failed", zap.Duration("duration", time.Since(started)), zap.Error(err))
		observeRequest(c.Provider(), c.textModel, kindText, statusError, started)
		return "", UsageInfo{}, fmt.Errorf("%w: %v", domain.ErrAIGenerationFailed, err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log.Warn("Chat completion returned an empty response", zap.Duration("duration", time.Since(started)))
		observeRequest(c.Provider(), c.textModel, kindText, statusEmptyResponse, started)
		return "", UsageInfo{}, fmt.Errorf("%w: empty response", domain.ErrAIGenerationFailed)
	}

	text := resp.Choices[0].Message.Content
	usage := UsageInfo{
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
	}
	if usage.TotalTokens == 0 {
		usage = estimateUsage(c.textModel, systemPrompt, userInput, text)
	}

	observeRequest(c.Provider(), c.textModel, kindText, statusSuccess, started)
	observeUsage(c.Provider(), c.textModel, usage)
	log.Info("Chat completion received",
		zap.Duration("duration", time.Since(started)),
		zap.Int("response_length", len(text)),
		zap.Int("total_tokens", usage.TotalTokens),
	)
	return text, usage, nil
}

// openAIImageGenerator exposes the image side of the client under its own model name.
type openAIImageGenerator struct {
	*openAIClient
}

func (g openAIImageGenerator) Model() string { return g.imageModel }

// GenerateImage requests a single image and returns its hosted URL.
func (g openAIImageGenerator) GenerateImage(ctx context.Context, sessionID string, prompt string) (ImageResult, error) {
	log := g.logger.With(zap.String("session_id", sessionID), zap.String("model", g.imageModel))
	started := time.Now()

	resp, err := g.client.CreateImage(ctx, openaigo.ImageRequest{
		Prompt:         prompt,
		Model:          g.imageModel,
		N:              1,
		Size:           openaigo.CreateImageSize1024x1024,
		ResponseFormat: openaigo.CreateImageResponseFormatURL,
	})
	if err != nil {
		log.Error("Image generation failed", zap.Error(err))
		observeRequest(g.Provider(), g.imageModel, kindImage, statusError, started)
		return ImageResult{}, fmt.Errorf("%w: %v", domain.ErrImageGenerationFailed, err)
	}
	if len(resp.Data) == 0 || (resp.Data[0].URL == "" && resp.Data[0].B64JSON == "") {
		log.Warn("Image generation returned no image")
		observeRequest(g.Provider(), g.imageModel, kindImage, statusEmptyResponse, started)
		return ImageResult{}, fmt.Errorf("%w: empty response", domain.ErrImageGenerationFailed)
	}

	observeRequest(g.Provider(), g.imageModel, kindImage, statusSuccess, started)
	log.Info("Image generated", zap.Duration("duration", time.Since(started)))

	if resp.Data[0].URL != "" {
		return ImageResult{URL: resp.Data[0].URL}, nil
	}
	return ImageResult{URL: dataURI("image/png", resp.Data[0].B64JSON)}, nil
}
