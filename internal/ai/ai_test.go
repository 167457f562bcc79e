package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"alltopia/internal/config"
	"alltopia/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewTextGenerator_MissingCredentialIsReportedPerCall(t *testing.T) {
	cfg := &config.Config{AITextProvider: config.ProviderGemini, AITimeout: time.Second}

	gen, err := NewTextGenerator(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	assert.ErrorIs(t, gen.Available(), domain.ErrMissingCredential)
	assert.Contains(t, gen.Available().Error(), config.GoogleAPIKeyEnv)

	_, _, err = gen.GenerateText(context.Background(), "s", SystemPrompt, "prompt", GenerationParams{})
	assert.ErrorIs(t, err, domain.ErrMissingCredential)
}

func TestNewImageGenerator_MissingOpenAIKey(t *testing.T) {
	cfg := &config.Config{AITextProvider: config.ProviderGemini, AIImageProvider: config.ProviderOpenAI, AITimeout: time.Second}

	gen, err := NewImageGenerator(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	_, err = gen.GenerateImage(context.Background(), "s", "a city")
	assert.ErrorIs(t, err, domain.ErrMissingCredential)
	assert.Contains(t, err.Error(), config.OpenAIAPIKeyEnv)
}

func TestNewTextGenerator_OllamaNeedsNoCredential(t *testing.T) {
	cfg := &config.Config{AITextProvider: config.ProviderOllama, AITimeout: time.Second}

	gen, err := NewTextGenerator(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	assert.NoError(t, gen.Available())
	assert.Equal(t, "ollama", gen.Provider())
	assert.Equal(t, defaultOllamaModel, gen.Model())
}

func TestNewTextGenerator_UnknownProvider(t *testing.T) {
	cfg := &config.Config{AITextProvider: "mystery"}
	_, err := NewTextGenerator(context.Background(), cfg, zap.NewNop())
	assert.Error(t, err)
}

func TestOpenAIClient_GenerateText(t *testing.T) {
	var got struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "cmpl-1",
			"object": "chat.completion",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Vision: bright."}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 11, "completion_tokens": 4, "total_tokens": 15}
		}`))
	}))
	defer srv.Close()

	client := newOpenAIClient("test-key", srv.URL+"/v1", "test-model", "", 0.5, 256, 5*time.Second, zap.NewNop())

	text, usage, err := client.GenerateText(context.Background(), "s1", "system", "Analyze this", GenerationParams{})
	require.NoError(t, err)
	assert.Equal(t, "Vision: bright.", text)
	assert.Equal(t, UsageInfo{PromptTokens: 11, CompletionTokens: 4, TotalTokens: 15}, usage)

	assert.Equal(t, "test-model", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "Analyze this", got.Messages[1].Content)
}

func TestOpenAIClient_GenerateText_UpstreamFailure(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": {"message": "boom", "type": "server_error"}}`))
	}))
	defer srv.Close()

	client := newOpenAIClient("test-key", srv.URL+"/v1", "test-model", "", 0.5, 256, 5*time.Second, zap.NewNop())

	_, _, err := client.GenerateText(context.Background(), "s1", "system", "Analyze this", GenerationParams{})
	assert.ErrorIs(t, err, domain.ErrAIGenerationFailed)
	assert.Equal(t, 1, calls, "failed requests are not retried")
}

func TestOpenAIImageGenerator_ReturnsURL(t *testing.T) {
	var prompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/images/generations", r.URL.Path)
		var body struct {
			Prompt string `json:"prompt"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		prompt = body.Prompt
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"created": 1, "data": [{"url": "https://images.example/utopia.png"}]}`))
	}))
	defer srv.Close()

	gen := openAIImageGenerator{newOpenAIClient("test-key", srv.URL+"/v1", "", "", 0.5, 256, 5*time.Second, zap.NewNop())}

	res, err := gen.GenerateImage(context.Background(), "s1", "a green city")
	require.NoError(t, err)
	assert.Equal(t, "https://images.example/utopia.png", res.URL)
	assert.Equal(t, "a green city", prompt)
	assert.Equal(t, defaultOpenAIImageModel, gen.Model())
}

func TestOllamaClient_GenerateText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chat", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"model":"llama3.1","message":{"role":"assistant","content":"Harmony: calm."},"done":true,"prompt_eval_count":9,"eval_count":3}` + "\n"))
	}))
	defer srv.Close()

	client, err := newOllamaClient(srv.URL+"/v1/", "", 0.7, 128, 5*time.Second, zap.NewNop())
	require.NoError(t, err)

	text, usage, err := client.GenerateText(context.Background(), "s1", "system", "Analyze", GenerationParams{})
	require.NoError(t, err)
	assert.Equal(t, "Harmony: calm.", text)
	assert.Equal(t, 12, usage.TotalTokens)
}

func TestOllamaClient_EmptyPromptFailsWithoutRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))
	defer srv.Close()

	client, err := newOllamaClient(srv.URL, "m", 0.7, 128, time.Second, zap.NewNop())
	require.NoError(t, err)

	_, _, err = client.GenerateText(context.Background(), "s1", "system", "   ", GenerationParams{})
	assert.ErrorIs(t, err, domain.ErrAIGenerationFailed)
}

type countingText struct {
	unavailable
	calls int
}

func (c *countingText) Available() error { return nil }

func (c *countingText) GenerateText(context.Context, string, string, string, GenerationParams) (string, UsageInfo, error) {
	c.calls++
	return "ok", UsageInfo{}, nil
}

func TestWithTextLimit_RejectsOnceBurstIsSpent(t *testing.T) {
	inner := &countingText{}
	gen := WithTextLimit(inner, NewLimiter(1, 2))

	for i := 0; i < 2; i++ {
		_, _, err := gen.GenerateText(context.Background(), "s", "", "p", GenerationParams{})
		require.NoError(t, err)
	}
	_, _, err := gen.GenerateText(context.Background(), "s", "", "p", GenerationParams{})
	assert.ErrorIs(t, err, domain.ErrRateLimited)
	assert.Equal(t, 2, inner.calls)
}

func TestNewLimiter_ZeroRateIsUnlimited(t *testing.T) {
	l := NewLimiter(0, 0)
	for i := 0; i < 100; i++ {
		assert.True(t, l.Allow())
	}
}

func TestEncodeDataURI(t *testing.T) {
	uri := encodeDataURI("image/png", []byte("png"))
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
	assert.Equal(t, "data:image/png;base64,cG5n", uri)
}
