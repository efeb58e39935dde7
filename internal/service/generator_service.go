package service

import (
	"context"
	"sync"
	"time"

	"learnsphere_backend/internal/config"
	"learnsphere_backend/internal/llm"
	"learnsphere_backend/internal/model"
	"learnsphere_backend/pkg/logger"
	"learnsphere_backend/pkg/monitoring"
	"learnsphere_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ContentSource tags where generated text came from. The HTTP responses
// never expose the tag; it feeds logs, traces, and metrics only.
type ContentSource string

const (
	SourceLive     ContentSource = "live"
	SourceFallback ContentSource = "fallback"
)

// GeneratedContent is the outcome of one generation. Text is never empty:
// provider failures degrade to the fallback template instead of erroring.
type GeneratedContent struct {
	Text   string
	Source ContentSource
}

// GenerationParams are the tunables sent with every completion. They can be
// swapped at runtime by the config watcher, hence the copy-under-lock access.
type GenerationParams struct {
	Model       string
	MaxTokens   int
	Temperature float32
	Timeout     time.Duration
}

type GeneratorService struct {
	provider llm.Provider

	mu     sync.RWMutex
	params GenerationParams
}

// NewGeneratorService wires the live provider. A nil provider means no
// credential was configured at boot; every request then takes the fallback
// path without touching the network.
func NewGeneratorService(provider llm.Provider, cfg *config.Config) *GeneratorService {
	return &GeneratorService{
		provider: provider,
		params:   paramsFromConfig(cfg),
	}
}

func paramsFromConfig(cfg *config.Config) GenerationParams {
	return GenerationParams{
		Model:       cfg.AI.Model,
		MaxTokens:   cfg.AI.MaxTokens,
		Temperature: cfg.AI.Temperature,
		Timeout:     time.Duration(cfg.AI.TimeoutSeconds) * time.Second,
	}
}

// ApplyConfig swaps in fresh generation tunables on a config reload.
func (s *GeneratorService) ApplyConfig(cfg *config.Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params = paramsFromConfig(cfg)
	logger.Log.Info("generation parameters reloaded",
		zap.String("model", s.params.Model),
		zap.Int("max_tokens", s.params.MaxTokens),
		zap.Float32("temperature", s.params.Temperature),
	)
}

func (s *GeneratorService) currentParams() GenerationParams {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.params
}

func (s *GeneratorService) GenerateLesson(ctx context.Context, learner *model.Learner, topic string) GeneratedContent {
	return s.generate(ctx, buildLessonPrompt(learner, topic), buildLessonFallback(learner, topic))
}

func (s *GeneratorService) GeneratePractice(ctx context.Context, learner *model.Learner) GeneratedContent {
	return s.generate(ctx, buildPracticePrompt(learner), buildPracticeFallback(learner))
}

func (s *GeneratorService) generate(ctx context.Context, prompt, fallback string) GeneratedContent {
	if s.provider == nil {
		logger.Log.Debug("no AI credential configured, serving fallback content")
		return s.record(GeneratedContent{Text: fallback, Source: SourceFallback})
	}

	params := s.currentParams()

	ctx, span := tracing.StartSpan(ctx, "content.generate")
	defer span.End()

	if params.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, params.Timeout)
		defer cancel()
	}

	text, err := s.provider.Complete(ctx, llm.Request{
		System:      tutorSystemPrompt,
		User:        prompt,
		Model:       params.Model,
		MaxTokens:   params.MaxTokens,
		Temperature: params.Temperature,
	})
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String("content.source", string(SourceFallback)))
		logger.Log.Warn("content generation failed, serving fallback", zap.Error(err))
		return s.record(GeneratedContent{Text: fallback, Source: SourceFallback})
	}

	span.SetAttributes(attribute.String("content.source", string(SourceLive)))
	return s.record(GeneratedContent{Text: text, Source: SourceLive})
}

func (s *GeneratorService) record(content GeneratedContent) GeneratedContent {
	monitoring.ContentGenerations.WithLabelValues(string(content.Source)).Inc()
	return content
}
