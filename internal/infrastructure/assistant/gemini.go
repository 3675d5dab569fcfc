// Package assistant provides the Gemini-backed text generator for the
// wellness assistant.
package assistant

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	appassistant "github.com/oryizon/storefront/internal/application/assistant"
	"github.com/oryizon/storefront/internal/infrastructure/config"
)

// GeminiAdvisor generates answers using the Gemini API.
type GeminiAdvisor struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

var _ appassistant.Generator = (*GeminiAdvisor)(nil)

// NewGeminiAdvisor creates a Gemini-backed generator. It returns an error
// when no API key is configured so callers can fall back to the canned
// assistant response instead of failing requests at runtime.
func NewGeminiAdvisor(ctx context.Context, cfg config.AssistantConfig, logger *zap.Logger) (*GeminiAdvisor, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("assistant API key is not configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &GeminiAdvisor{
		client: client,
		model:  cfg.Model,
		logger: logger,
	}, nil
}

// Generate sends the query to Gemini with the given system instruction.
// The system instruction travels out of band so user input can never
// rewrite the assistant persona.
func (g *GeminiAdvisor) Generate(ctx context.Context, systemInstruction, query string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(query), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr(int32(0)),
		},
	})
	if err != nil {
		g.logger.Warn("gemini generation failed", zap.String("model", g.model), zap.Error(err))
		return "", fmt.Errorf("generating content: %w", err)
	}

	return strings.TrimSpace(resp.Text()), nil
}
