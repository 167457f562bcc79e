package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"alltopia/internal/domain"

	"github.com/ollama/ollama/api"
	"go.uber.org/zap"
)

const (
	defaultOllamaBaseURL = "http://localhost:11434"
	defaultOllamaModel   = "llama3.1"
)

// ollamaClient implements TextGenerator against a local Ollama server.
type ollamaClient struct {
	client      *api.Client
	model       string
	temperature float64
	maxTokens   int
	timeout     time.Duration
	logger      *zap.Logger
}

func newOllamaClient(baseURL, model string, temperature float64, maxTokens int, timeout time.Duration, logger *zap.Logger) (*ollamaClient, error) {
	if baseURL == "" {
		baseURL = defaultOllamaBaseURL
	}
	// The native API lives at the root, not under the OpenAI-compatible /v1 prefix.
	baseURL = strings.TrimSuffix(strings.TrimSuffix(baseURL, "/"), "/v1")

	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Ollama base URL %q: %w", baseURL, err)
	}
	if model == "" {
		model = defaultOllamaModel
	}

	logger = logger.Named("OllamaClient")
	logger.Info("Ollama client created", zap.String("base_url", baseURL), zap.String("model", model))

	return &ollamaClient{
		client:      api.NewClient(parsedURL, &http.Client{Timeout: timeout}),
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		timeout:     timeout,
		logger:      logger,
	}, nil
}

func (c *ollamaClient) Available() error { return nil }
func (c *ollamaClient) Provider() string { return "ollama" }
func (c *ollamaClient) Model() string    { return c.model }

// GenerateText sends a non-streaming chat request.
func (c *ollamaClient) GenerateText(ctx context.Context, sessionID string, systemPrompt string, userInput string, params GenerationParams) (string, UsageInfo, error) {
	log := c.logger.With(zap.String("session_id", sessionID), zap.String("model", c.model))

	if strings.TrimSpace(userInput) == "" {
		observeRequest(c.Provider(), c.model, kindText, statusError, time.Now())
		return "", UsageInfo{}, fmt.Errorf("%w: empty prompt", domain.ErrAIGenerationFailed)
	}

	messages := make([]api.Message, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, api.Message{Role: "system", Content: systemPrompt})
	}
	messages = append(messages, api.Message{Role: "user", Content: userInput})

	temperature := c.temperature
	if params.Temperature != nil {
		temperature = *params.Temperature
	}
	maxTokens := c.maxTokens
	if params.MaxTokens != nil {
		maxTokens = intVal(params.MaxTokens)
	}
	stream := false
	req := &api.ChatRequest{
		Model:    c.model,
		Messages: messages,
		Stream:   &stream,
		Options: map[string]interface{}{
			"temperature": temperature,
			"num_predict": maxTokens,
		},
	}

	requestCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	started := time.Now()
	var resp api.ChatResponse
	err := c.client.Chat(requestCtx, req, func(r api.ChatResponse) error {
		resp = r
		return nil
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			log.Error("Ollama request timed out", zap.Duration("timeout", c.timeout), zap.Error(err))
		} else {
			log.Error("Ollama request failed", zap.Duration("duration", time.Since(started)), zap.Error(err))
		}
		observeRequest(c.Provider(), c.model, kindText, statusError, started)
		return "", UsageInfo{}, fmt.Errorf("%w: %v", domain.ErrAIGenerationFailed, err)
	}
	if resp.Message.Content == "" {
		log.Warn("Ollama returned an empty response", zap.Duration("duration", time.Since(started)))
		observeRequest(c.Provider(), c.model, kindText, statusEmptyResponse, started)
		return "", UsageInfo{}, fmt.Errorf("%w: empty response", domain.ErrAIGenerationFailed)
	}

	text := resp.Message.Content
	usage := UsageInfo{
		PromptTokens:     resp.PromptEvalCount,
		CompletionTokens: resp.EvalCount,
		TotalTokens:      resp.PromptEvalCount + resp.EvalCount,
	}
	if usage.TotalTokens == 0 {
		usage = estimateUsage(c.model, systemPrompt, userInput, text)
	}

	observeRequest(c.Provider(), c.model, kindText, statusSuccess, started)
	observeUsage(c.Provider(), c.model, usage)
	log.Info("Ollama response received",
		zap.Duration("duration", time.Since(started)),
		zap.Int("response_length", len(text)),
		zap.Int("total_tokens", usage.TotalTokens),
	)
	return text, usage, nil
}
