package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-video-notes/internal/config"
	"github.com/MKhiriev/go-video-notes/internal/logger"
	"github.com/MKhiriev/go-video-notes/internal/utils"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// chatCompletionsGenerator calls POST {BaseURL}/chat/completions of an
// OpenAI-compatible API.
type chatCompletionsGenerator struct {
	client *utils.HTTPClient
	apiKey string
	model  string

	logger *logger.Logger
}

// NewChatCompletionsGenerator builds the [TextGenerator] of the AI gateway.
func NewChatCompletionsGenerator(cfg config.AI, logger *logger.Logger) (TextGenerator, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid ai base url: %w", err)
	}
	if cfg.Model == "" {
		return nil, errors.New("ai model is not set")
	}

	return &chatCompletionsGenerator{
		client: utils.NewHTTPClientFor(baseURL, cfg.Timeout),
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		logger: logger,
	}, nil
}

// Generate sends one system and one user message and returns the content of
// the first choice, trimmed.
func (g *chatCompletionsGenerator) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	log := logger.FromContext(ctx)

	body := chatCompletionRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	}

	var out chatCompletionResponse
	req := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&out)
	if g.apiKey != "" {
		req.SetAuthToken(g.apiKey)
	}

	resp, err := req.Post("/chat/completions")
	if err != nil {
		log.Err(err).Str("func", "*chatCompletionsGenerator.Generate").Msg("upstream request failed")
		return "", fmt.Errorf("%w: %w", ErrUpstreamFailed, err)
	}
	if err = mapUpstreamError(resp); err != nil {
		log.Err(err).
			Str("func", "*chatCompletionsGenerator.Generate").
			Int("status", resp.StatusCode()).
			Msg("upstream returned an error")
		return "", err
	}

	if len(out.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}
