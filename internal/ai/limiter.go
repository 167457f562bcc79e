package ai

import (
	"context"
	"fmt"
	"time"

	"alltopia/internal/domain"

	"golang.org/x/time/rate"
)

// NewLimiter returns a limiter allowing perMinute requests with the given burst.
// A non-positive perMinute disables limiting.
func NewLimiter(perMinute, burst int) *rate.Limiter {
	if perMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), burst)
}

// rateLimitedText rejects calls outright when the limiter has no tokens.
// Callers get ErrRateLimited and decide themselves whether to try again.
type rateLimitedText struct {
	TextGenerator
	limiter *rate.Limiter
}

// WithTextLimit guards gen with limiter. A nil limiter returns gen unchanged.
func WithTextLimit(gen TextGenerator, limiter *rate.Limiter) TextGenerator {
	if limiter == nil {
		return gen
	}
	return rateLimitedText{TextGenerator: gen, limiter: limiter}
}

func (r rateLimitedText) GenerateText(ctx context.Context, sessionID string, systemPrompt string, userInput string, params GenerationParams) (string, UsageInfo, error) {
	if !r.limiter.Allow() {
		aiRateLimitedTotal.WithLabelValues(kindText).Inc()
		return "", UsageInfo{}, fmt.Errorf("%w: text generation", domain.ErrRateLimited)
	}
	return r.TextGenerator.GenerateText(ctx, sessionID, systemPrompt, userInput, params)
}

type rateLimitedImage struct {
	ImageGenerator
	limiter *rate.Limiter
}

// WithImageLimit guards gen with limiter. A nil limiter returns gen unchanged.
func WithImageLimit(gen ImageGenerator, limiter *rate.Limiter) ImageGenerator {
	if limiter == nil {
		return gen
	}
	return rateLimitedImage{ImageGenerator: gen, limiter: limiter}
}

func (r rateLimitedImage) GenerateImage(ctx context.Context, sessionID string, prompt string) (ImageResult, error) {
	if !r.limiter.Allow() {
		aiRateLimitedTotal.WithLabelValues(kindImage).Inc()
		return ImageResult{}, fmt.Errorf("%w: image generation", domain.ErrRateLimited)
	}
	return r.ImageGenerator.GenerateImage(ctx, sessionID, prompt)
}
