package ai

import (
	"context"
	"fmt"

	"alltopia/internal/domain"
)

// unavailable stands in for a provider whose credential is not configured.
// Every call fails with ErrMissingCredential before any network traffic.
type unavailable struct {
	provider string
	model    string
	envName  string
}

func (u unavailable) err() error {
	return fmt.Errorf("%w: set %s to use the %s provider", domain.ErrMissingCredential, u.envName, u.provider)
}

func (u unavailable) Available() error { return u.err() }
func (u unavailable) Provider() string { return u.provider }
func (u unavailable) Model() string    { return u.model }

func (u unavailable) GenerateText(context.Context, string, string, string, GenerationParams) (string, UsageInfo, error) {
	return "", UsageInfo{}, u.err()
}

func (u unavailable) GenerateImage(context.Context, string, string) (ImageResult, error) {
	return ImageResult{}, u.err()
}
