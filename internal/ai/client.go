package ai

import (
	"context"
)

// GenerationParams are optional sampling overrides. Nil means provider default.
type GenerationParams struct {
	Temperature *float64
	MaxTokens   *int
}

// UsageInfo reports token consumption of one call.
type UsageInfo struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	// Estimated is true when counts come from the local tokenizer rather than the provider.
	Estimated bool
}

// TextGenerator is the text-generation collaborator.
type TextGenerator interface {
	// Available reports ErrMissingCredential when the collaborator cannot be called.
	Available() error
	// GenerateText sends the system prompt and user input and returns the raw response text.
	GenerateText(ctx context.Context, sessionID string, systemPrompt string, userInput string, params GenerationParams) (string, UsageInfo, error)
	Provider() string
	Model() string
}

// ImageResult is either a hosted URL or raw image bytes, depending on the provider.
type ImageResult struct {
	URL      string
	Data     []byte
	MIMEType string
}

// ImageGenerator is the image-generation collaborator.
type ImageGenerator interface {
	Available() error
	GenerateImage(ctx context.Context, sessionID string, prompt string) (ImageResult, error)
	Provider() string
	Model() string
}

// SystemPrompt frames every text request.
const SystemPrompt = "You are a thoughtful political philosopher and futurist. " +
	"You analyze hypothetical societies honestly, weighing their strengths and their risks, " +
	"and you always follow the requested output format exactly."

func float32Val(f64 *float64, def float32) float32 {
	if f64 == nil {
		return def
	}
	return float32(*f64)
}

func intVal(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
