package service

import (
	"context"
	"fmt"
	"time"

	"alltopia/internal/ai"
	"alltopia/internal/domain"
	"alltopia/internal/prompt"
	"alltopia/internal/render"
	"alltopia/internal/session"

	"go.uber.org/zap"
)

// TopEntry is one of the characteristics that drive the image prompt.
type TopEntry struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// PromptBundle holds every prompt assembled for one characteristic set.
type PromptBundle struct {
	Score            domain.ScoreResult `json:"score"`
	AnalysisPrompt   string             `json:"analysis_prompt"`
	ComparisonPrompt string             `json:"comparison_prompt"`
	ImagePrompt      string             `json:"image_prompt"`
	Top              []TopEntry         `json:"top"`
}

// TextReport is the outcome of an analysis or comparison request.
// Structured is false when the response did not have the requested paragraph shape;
// Segments then holds the raw text as a single entry.
type TextReport struct {
	Score      domain.ScoreResult `json:"score"`
	Segments   []render.Segment   `json:"segments"`
	Raw        string             `json:"raw"`
	Structured bool               `json:"structured"`
}

// ImageReport is the outcome of an image request.
type ImageReport struct {
	Prompt string `json:"prompt"`
	URL    string `json:"url"`
}

// UtopiaService scores societies and asks the AI collaborators about them.
type UtopiaService interface {
	Evaluate(set domain.CharacteristicSet) domain.ScoreResult
	Prompts(set domain.CharacteristicSet, locale prompt.Locale) PromptBundle
	Analyze(ctx context.Context, sessionID string, set domain.CharacteristicSet, locale prompt.Locale) (*TextReport, error)
	Compare(ctx context.Context, sessionID string, set domain.CharacteristicSet, locale prompt.Locale) (*TextReport, error)
	Imagine(ctx context.Context, sessionID string, set domain.CharacteristicSet, locale prompt.Locale) (*ImageReport, error)
	Session(ctx context.Context, sessionID string) (session.State, error)
	ClearSession(ctx context.Context, sessionID string) error
}

type utopiaServiceImpl struct {
	assembler *prompt.Assembler
	text      ai.TextGenerator
	image     ai.ImageGenerator
	sessions  session.Store
	timeout   time.Duration
	logger    *zap.Logger
}

// NewUtopiaService wires the collaborators. A nil assembler uses the default fragment tables.
func NewUtopiaService(
	assembler *prompt.Assembler,
	text ai.TextGenerator,
	image ai.ImageGenerator,
	sessions session.Store,
	timeout time.Duration,
	logger *zap.Logger,
) UtopiaService {
	if assembler == nil {
		assembler = prompt.NewAssembler()
	}
	return &utopiaServiceImpl{
		assembler: assembler,
		text:      text,
		image:     image,
		sessions:  sessions,
		timeout:   timeout,
		logger:    logger.Named("UtopiaService"),
	}
}

func (s *utopiaServiceImpl) Evaluate(set domain.CharacteristicSet) domain.ScoreResult {
	return domain.Score(set)
}

func (s *utopiaServiceImpl) Prompts(set domain.CharacteristicSet, locale prompt.Locale) PromptBundle {
	top := prompt.TopCharacteristics(set, prompt.ImageTopN)
	entries := make([]TopEntry, 0, len(top))
	for _, e := range top {
		entries = append(entries, TopEntry{Name: e.Characteristic.String(), Value: e.Value})
	}
	return PromptBundle{
		Score:            domain.Score(set),
		AnalysisPrompt:   s.assembler.BuildAnalysisPrompt(set, locale),
		ComparisonPrompt: s.assembler.BuildComparisonPrompt(set, locale),
		ImagePrompt:      s.assembler.BuildImagePrompt(set, locale),
		Top:              entries,
	}
}

func (s *utopiaServiceImpl) Analyze(ctx context.Context, sessionID string, set domain.CharacteristicSet, locale prompt.Locale) (*TextReport, error) {
	userPrompt := s.assembler.BuildAnalysisPrompt(set, locale)
	return s.generateText(ctx, sessionID, set, userPrompt, prompt.AnalysisParagraphs, session.KeyAnalysis)
}

func (s *utopiaServiceImpl) Compare(ctx context.Context, sessionID string, set domain.CharacteristicSet, locale prompt.Locale) (*TextReport, error) {
	userPrompt := s.assembler.BuildComparisonPrompt(set, locale)
	return s.generateText(ctx, sessionID, set, userPrompt, prompt.ComparisonParagraphs, session.KeyComparison)
}

// generateText runs score, credential check, one AI call, split and session save, in that order.
func (s *utopiaServiceImpl) generateText(ctx context.Context, sessionID string, set domain.CharacteristicSet, userPrompt string, paragraphs int, key session.Key) (*TextReport, error) {
	log := s.logger.With(zap.String("session_id", sessionID), zap.String("kind", string(key)))
	score := domain.Score(set)

	if err := s.text.Available(); err != nil {
		log.Warn("Text collaborator unavailable", zap.Error(err))
		return nil, err
	}

	callCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	raw, usage, err := s.text.GenerateText(callCtx, sessionID, ai.SystemPrompt, userPrompt, ai.GenerationParams{})
	if err != nil {
		log.Error("Text generation failed", zap.Error(err))
		return nil, err
	}
	log.Info("Text generated",
		zap.String("provider", s.text.Provider()),
		zap.Int("total_tokens", usage.TotalTokens),
		zap.Bool("estimated_tokens", usage.Estimated),
	)

	segments, structured := render.SplitExpected(raw, paragraphs)
	if !structured {
		log.Warn("Response did not have the expected paragraph shape; returning raw text",
			zap.Int("expected_paragraphs", paragraphs),
			zap.Int("got_paragraphs", len(render.SplitParagraphs(raw))),
		)
	}

	s.save(ctx, log, sessionID, key, raw)

	return &TextReport{
		Score:      score,
		Segments:   segments,
		Raw:        raw,
		Structured: structured,
	}, nil
}

func (s *utopiaServiceImpl) Imagine(ctx context.Context, sessionID string, set domain.CharacteristicSet, locale prompt.Locale) (*ImageReport, error) {
	log := s.logger.With(zap.String("session_id", sessionID), zap.String("kind", string(session.KeyImageURL)))
	imagePrompt := s.assembler.BuildImagePrompt(set, locale)

	if err := s.image.Available(); err != nil {
		log.Warn("Image collaborator unavailable", zap.Error(err))
		return nil, err
	}

	callCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := s.image.GenerateImage(callCtx, sessionID, imagePrompt)
	if err != nil {
		log.Error("Image generation failed", zap.Error(err))
		return nil, err
	}
	if res.URL == "" {
		return nil, fmt.Errorf("%w: no image location returned", domain.ErrImageGenerationFailed)
	}

	s.save(ctx, log, sessionID, session.KeyImageURL, res.URL)

	return &ImageReport{Prompt: imagePrompt, URL: res.URL}, nil
}

func (s *utopiaServiceImpl) Session(ctx context.Context, sessionID string) (session.State, error) {
	if sessionID == "" {
		return session.State{}, fmt.Errorf("%w: session id is required", domain.ErrInvalidInput)
	}
	return s.sessions.Get(ctx, sessionID)
}

// ClearSession forgets every stored result of the session. Unknown sessions are not an error.
func (s *utopiaServiceImpl) ClearSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("%w: session id is required", domain.ErrInvalidInput)
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.logger.Debug("Session cleared", zap.String("session_id", sessionID))
	return nil
}

// save stores a result. A storage failure is logged and does not fail the request.
func (s *utopiaServiceImpl) save(ctx context.Context, log *zap.Logger, sessionID string, key session.Key, value string) {
	if sessionID == "" || s.sessions == nil {
		return
	}
	if err := s.sessions.Put(ctx, sessionID, key, value); err != nil {
		log.Error("Failed to save session result", zap.Error(err))
	}
}

func (s *utopiaServiceImpl) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}
