// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-video-notes/internal/adapter"
	"github.com/MKhiriev/go-video-notes/internal/config"
	"github.com/MKhiriev/go-video-notes/internal/logger"
	"github.com/MKhiriev/go-video-notes/internal/metrics"
	"github.com/MKhiriev/go-video-notes/internal/store"
	"github.com/MKhiriev/go-video-notes/internal/utils"
	"github.com/MKhiriev/go-video-notes/internal/validators"
	"github.com/MKhiriev/go-video-notes/models"
)

// rawJSONSuffix is appended to the prompts of the kinds answered with JSON.
const rawJSONSuffix = "Return the response in raw JSON format only. Do not wrap it in markdown code blocks (like ```json). Just the raw JSON string."

type prompt struct {
	system string
	user   string
}

// aiService proxies one prompt per request to the upstream generator.
// explain and summarize answers are cached when a cache is configured.
type aiService struct {
	generator adapter.TextGenerator
	cache     store.AICache
	validator validators.Validator
	metrics   *metrics.Metrics

	// hashKey keys the HMAC of cache keys so raw note text never becomes a
	// Redis key.
	hashKey string

	logger *logger.Logger
}

// NewAIService builds the gateway. generator may be nil when no upstream is
// configured; every call then fails with ErrAINotConfigured. metrics may be nil.
func NewAIService(generator adapter.TextGenerator, cache store.AICache, validator validators.Validator, m *metrics.Metrics, cfg config.App, logger *logger.Logger) AIService {
	if cache == nil {
		cache = store.NewNopAICache()
	}

	return &aiService{
		generator: generator,
		cache:     cache,
		validator: validator,
		metrics:   m,
		hashKey:   cfg.HashKey,
		logger:    logger,
	}
}

func (s *aiService) Generate(ctx context.Context, req models.AIRequest) (models.AIResponse, error) {
	log := logger.FromContext(ctx)

	req.Text = strings.TrimSpace(req.Text)
	req.Context = strings.TrimSpace(req.Context)
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.AIResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if s.generator == nil {
		return models.AIResponse{}, ErrAINotConfigured
	}

	cacheable := !req.Type.ExpectsJSON()
	key := s.cacheKey(req)
	if cacheable {
		cached, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			log.Warn().Err(err).Str("func", "aiService.Generate").Msg("ai cache read failed")
		}
		if ok {
			s.observe(req.Type, metrics.OutcomeCached)
			return models.AIResponse{Content: cached}, nil
		}
	}

	p := buildPrompt(req)
	content, err := s.generator.Generate(ctx, p.system, p.user)
	if err != nil {
		mapped, outcome := mapGeneratorError(err)
		s.observe(req.Type, outcome)
		log.Err(err).
			Str("func", "aiService.Generate").
			Str("type", string(req.Type)).
			Int("text_length", len(req.Text)).
			Msg("ai generation failed")
		return models.AIResponse{}, mapped
	}

	if req.Type.ExpectsJSON() {
		content = StripCodeFences(content)
	}

	if cacheable {
		if err = s.cache.Set(ctx, key, content); err != nil {
			log.Warn().Err(err).Str("func", "aiService.Generate").Msg("ai cache write failed")
		}
	}

	s.observe(req.Type, metrics.OutcomeOK)
	log.Info().
		Str("type", string(req.Type)).
		Int("text_length", len(req.Text)).
		Int("content_length", len(content)).
		Msg("ai response generated")

	return models.AIResponse{Content: content}, nil
}

func (s *aiService) cacheKey(req models.AIRequest) string {
	return utils.CacheKey(s.hashKey, string(req.Type), req.Text, req.Context)
}

func (s *aiService) observe(t models.AIRequestType, outcome string) {
	if s.metrics != nil {
		s.metrics.ObserveAI(string(t), outcome)
	}
}

func buildPrompt(req models.AIRequest) prompt {
	switch req.Type {
	case models.AIExplain:
		user := fmt.Sprintf("Explain this text in simple terms:\n\n%q", req.Text)
		if req.Context != "" {
			user += "\n\nContext from the video notes: " + req.Context
		}
		return prompt{
			system: "You are an expert educator. Explain concepts clearly and concisely. Use examples when helpful. Keep explanations focused and under 200 words.",
			user:   user,
		}
	case models.AISummarize:
		return prompt{
			system: "You are an expert at summarizing content. Create clear, bullet-point summaries that capture key points.",
			user:   "Summarize the following notes into key bullet points:\n\n" + req.Text,
		}
	case models.AIFlashcards:
		return prompt{
			system: "You are an expert educator who creates effective study flashcards. Generate flashcards in JSON format only.",
			user: "Based on these notes, generate 5-8 flashcards for studying. " +
				`Return ONLY a JSON array with objects containing "question" and "answer" fields. No other text.` +
				"\n\nNotes:\n" + req.Text + "\n\n" + rawJSONSuffix,
		}
	default:
		return prompt{
			system: "You are an expert educator who writes multiple-choice quizzes. Generate quizzes in JSON format only.",
			user: "Based on these notes, generate 5 multiple-choice questions. " +
				`Return ONLY a JSON array with objects containing "question", "options" (exactly 4 strings) and "answer" (the text of the correct option) fields. No other text.` +
				"\n\nNotes:\n" + req.Text + "\n\n" + rawJSONSuffix,
		}
	}
}

func mapGeneratorError(err error) (error, string) {
	switch {
	case errors.Is(err, adapter.ErrUpstreamRateLimited):
		return ErrAIRateLimited, metrics.OutcomeRateLimited
	case errors.Is(err, adapter.ErrUpstreamCreditsDepleted):
		return ErrAICreditsDepleted, metrics.OutcomeNoCredits
	default:
		return fmt.Errorf("%w: %w", ErrAIGatewayFailed, err), metrics.OutcomeFailed
	}
}

// StripCodeFences removes markdown code fences the model may wrap JSON in.
func StripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json\n", "")
	s = strings.ReplaceAll(s, "\n```", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
