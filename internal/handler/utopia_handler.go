package handler

import (
	"fmt"
	"net/http"

	"alltopia/internal/domain"
	"alltopia/internal/prompt"
	"alltopia/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionIDHeader identifies the client session whose last results are kept.
const SessionIDHeader = "X-Session-ID"

// UtopiaHandler serves the JSON API.
type UtopiaHandler struct {
	service       service.UtopiaService
	defaultLocale prompt.Locale
	logger        *zap.Logger
}

func NewUtopiaHandler(s service.UtopiaService, defaultLocale prompt.Locale, logger *zap.Logger) *UtopiaHandler {
	if defaultLocale == "" {
		defaultLocale = prompt.DefaultLocale
	}
	return &UtopiaHandler{
		service:       s,
		defaultLocale: defaultLocale,
		logger:        logger.Named("UtopiaHandler"),
	}
}

// RegisterRoutes mounts the API. aiMiddleware runs only in front of endpoints that call an AI provider.
func (h *UtopiaHandler) RegisterRoutes(router *gin.Engine, aiMiddleware ...gin.HandlerFunc) {
	api := router.Group("/api/v1")
	{
		api.GET("/characteristics", h.listCharacteristics)
		api.POST("/score", h.score)
		api.POST("/prompts", h.prompts)
		api.GET("/session", h.getSession)
		api.DELETE("/session", h.deleteSession)
	}

	generation := api.Group("")
	generation.Use(aiMiddleware...)
	{
		generation.POST("/analysis", h.analysis)
		generation.POST("/comparison", h.comparison)
		generation.POST("/image", h.image)
	}
}

func (h *UtopiaHandler) listCharacteristics(c *gin.Context) {
	locale, err := h.resolveLocale(c.Query("locale"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	all := domain.Characteristics()
	infos := make([]characteristicInfo, 0, len(all))
	for _, ch := range all {
		infos = append(infos, characteristicInfo{
			Index:       int(ch),
			Name:        ch.String(),
			DisplayName: prompt.Name(ch, locale),
		})
	}
	c.JSON(http.StatusOK, characteristicsResponse{
		Characteristics: infos,
		Min:             domain.MinValue,
		Max:             domain.MaxValue,
		Default:         domain.DefaultValue,
		Locale:          string(locale),
	})
}

func (h *UtopiaHandler) score(c *gin.Context) {
	set, _, ok := h.bindSociety(c)
	if !ok {
		return
	}
	result := h.service.Evaluate(set)
	scoresTotal.WithLabelValues(string(result.Label)).Inc()

	c.JSON(http.StatusOK, scoreResponse{
		Average: result.Average,
		Label:   result.Label,
		Values:  set.Map(),
	})
}

func (h *UtopiaHandler) prompts(c *gin.Context) {
	set, locale, ok := h.bindSociety(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.service.Prompts(set, locale))
}

func (h *UtopiaHandler) analysis(c *gin.Context) {
	set, locale, ok := h.bindSociety(c)
	if !ok {
		return
	}
	sessionID := ensureSessionID(c)

	report, err := h.service.Analyze(c.Request.Context(), sessionID, set, locale)
	if err != nil {
		generationsTotal.WithLabelValues("analysis", "error").Inc()
		handleServiceError(c, err)
		return
	}
	generationsTotal.WithLabelValues("analysis", "success").Inc()
	if !report.Structured {
		unstructuredResponsesTotal.WithLabelValues("analysis").Inc()
	}
	c.JSON(http.StatusOK, report)
}

func (h *UtopiaHandler) comparison(c *gin.Context) {
	set, locale, ok := h.bindSociety(c)
	if !ok {
		return
	}
	sessionID := ensureSessionID(c)

	report, err := h.service.Compare(c.Request.Context(), sessionID, set, locale)
	if err != nil {
		generationsTotal.WithLabelValues("comparison", "error").Inc()
		handleServiceError(c, err)
		return
	}
	generationsTotal.WithLabelValues("comparison", "success").Inc()
	if !report.Structured {
		unstructuredResponsesTotal.WithLabelValues("comparison").Inc()
	}
	c.JSON(http.StatusOK, report)
}

func (h *UtopiaHandler) image(c *gin.Context) {
	set, locale, ok := h.bindSociety(c)
	if !ok {
		return
	}
	sessionID := ensureSessionID(c)

	report, err := h.service.Imagine(c.Request.Context(), sessionID, set, locale)
	if err != nil {
		generationsTotal.WithLabelValues("image", "error").Inc()
		handleServiceError(c, err)
		return
	}
	generationsTotal.WithLabelValues("image", "success").Inc()
	c.JSON(http.StatusOK, report)
}

func (h *UtopiaHandler) getSession(c *gin.Context) {
	sessionID, ok := requireSessionID(c)
	if !ok {
		return
	}

	state, err := h.service.Session(c.Request.Context(), sessionID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *UtopiaHandler) deleteSession(c *gin.Context) {
	sessionID, ok := requireSessionID(c)
	if !ok {
		return
	}

	if err := h.service.ClearSession(c.Request.Context(), sessionID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func requireSessionID(c *gin.Context) (string, bool) {
	sessionID := c.GetHeader(SessionIDHeader)
	if sessionID == "" {
		errResp := domain.ErrorResponse{Code: domain.ErrCodeBadRequest, Message: "Header " + SessionIDHeader + " is required"}
		c.AbortWithStatusJSON(http.StatusBadRequest, errResp)
		return "", false
	}
	return sessionID, true
}

// bindSociety parses the request body into a characteristic set and locale.
// On failure it writes the error response and returns ok=false.
func (h *UtopiaHandler) bindSociety(c *gin.Context) (domain.CharacteristicSet, prompt.Locale, bool) {
	var req societyRequest
	// An empty body scores the default society.
	if c.Request.ContentLength == 0 {
		return domain.DefaultSet(), h.defaultLocale, true
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		errResp := domain.ErrorResponse{Code: domain.ErrCodeBadRequest, Message: "Invalid request data: " + err.Error()}
		c.AbortWithStatusJSON(http.StatusBadRequest, errResp)
		return domain.CharacteristicSet{}, "", false
	}

	values := make(map[string]float64, len(req.Values))
	for name, v := range req.Values {
		if v == nil {
			handleServiceError(c, fmt.Errorf("%w: %q must be a number, got null", domain.ErrInvalidInput, name))
			return domain.CharacteristicSet{}, "", false
		}
		values[name] = *v
	}

	set, err := domain.SetFromMap(values)
	if err != nil {
		h.logger.Debug("Rejected characteristic values", zap.Error(err))
		handleServiceError(c, err)
		return domain.CharacteristicSet{}, "", false
	}
	locale, err := h.resolveLocale(req.Locale)
	if err != nil {
		handleServiceError(c, err)
		return domain.CharacteristicSet{}, "", false
	}
	return set, locale, true
}

func (h *UtopiaHandler) resolveLocale(tag string) (prompt.Locale, error) {
	if tag == "" {
		return h.defaultLocale, nil
	}
	return prompt.ParseLocale(tag)
}

// ensureSessionID returns the caller's session ID, issuing a new one if absent.
// The ID is always echoed in the response header.
func ensureSessionID(c *gin.Context) string {
	sessionID := c.GetHeader(SessionIDHeader)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	c.Header(SessionIDHeader, sessionID)
	return sessionID
}
