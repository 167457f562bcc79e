package domain

import "errors"

// Application-wide standard errors
var (
	// Input Errors
	ErrInvalidInput         = errors.New("invalid input data")
	ErrEmptyCharacteristics = errors.New("at least one characteristic value is required")
	ErrUnsupportedLocale    = errors.New("unsupported locale")

	// AI Collaborator Errors
	ErrMissingCredential     = errors.New("AI credential is not configured")
	ErrAIGenerationFailed    = errors.New("AI text generation failed")
	ErrImageGenerationFailed = errors.New("AI image generation failed")
	ErrRateLimited           = errors.New("too many AI requests")

	// Session Errors
	ErrSessionNotFound = errors.New("session not found")
)

// Error codes returned in ErrorResponse.Code.
const (
	ErrCodeBadRequest        = "BAD_REQUEST"
	ErrCodeMissingCredential = "MISSING_CREDENTIAL"
	ErrCodeAIUnavailable     = "AI_UNAVAILABLE"
	ErrCodeRateLimited       = "RATE_LIMITED"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeInternal          = "INTERNAL_ERROR"
)

// ErrorResponse is the JSON body of every failed API call.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
