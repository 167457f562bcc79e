package handler

import (
	"errors"
	"net/http"

	"alltopia/internal/domain"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func handleServiceError(c *gin.Context, err error) {
	var statusCode int
	var errResp domain.ErrorResponse

	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrEmptyCharacteristics),
		errors.Is(err, domain.ErrUnsupportedLocale):
		statusCode = http.StatusBadRequest
		errResp = domain.ErrorResponse{Code: domain.ErrCodeBadRequest, Message: err.Error()}
	case errors.Is(err, domain.ErrMissingCredential):
		statusCode = http.StatusServiceUnavailable
		errResp = domain.ErrorResponse{Code: domain.ErrCodeMissingCredential, Message: err.Error()}
	case errors.Is(err, domain.ErrRateLimited):
		statusCode = http.StatusTooManyRequests
		errResp = domain.ErrorResponse{Code: domain.ErrCodeRateLimited, Message: "Too many AI requests, try again later"}
	case errors.Is(err, domain.ErrAIGenerationFailed), errors.Is(err, domain.ErrImageGenerationFailed):
		statusCode = http.StatusBadGateway
		errResp = domain.ErrorResponse{Code: domain.ErrCodeAIUnavailable, Message: err.Error()}
	case errors.Is(err, domain.ErrSessionNotFound):
		statusCode = http.StatusNotFound
		errResp = domain.ErrorResponse{Code: domain.ErrCodeNotFound, Message: "Session not found or expired"}
	default:
		zap.L().Error("Unhandled internal error in handleServiceError", zap.Error(err))
		statusCode = http.StatusInternalServerError
		errResp = domain.ErrorResponse{Code: domain.ErrCodeInternal, Message: "An unexpected internal error occurred"}
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(statusCode, errResp)
}
