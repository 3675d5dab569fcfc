package assistant

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/oryizon/storefront/internal/domain/shared"
)

// FallbackMessage is served whenever the model cannot answer. Shoppers
// always get a friendly reply, never an error page.
const FallbackMessage = "The wellness assistant is resting. Please try again later."

// EmptyReplyMessage is served when the model answers with nothing usable
const EmptyReplyMessage = "I couldn't generate a response at the moment."

// systemPersona fixes the assistant's voice and scope. Shopper input is
// never concatenated into this instruction.
const systemPersona = `You are the ORYIZON Wellness Assistant, a friendly and knowledgeable nutritionist expert on Moringa Oleifera.
Your goal is to educate users on the health benefits of Moringa products.
Tone: Professional, warm, and brand-aligned (Premium, Organic, Purity).

Key Brand Facts:
- ORYIZON products are 100% organic, sun-dried, and ethically sourced.

Keep answers concise (under 150 words).`

// Generator abstracts the underlying model client
type Generator interface {
	Generate(ctx context.Context, systemInstruction, query string) (string, error)
}

// AskRequest is a shopper question for the wellness assistant
type AskRequest struct {
	Query string `json:"query" binding:"required,min=1,max=2000"`
}

// AskResponse is the assistant's reply
type AskResponse struct {
	Answer string `json:"answer"`
}

// Advisor answers shopper wellness questions through a fixed persona.
// Model failures degrade to a canned reply rather than an error.
type Advisor struct {
	generator Generator
	logger    *zap.Logger
}

// NewAdvisor creates a new Advisor
func NewAdvisor(generator Generator, logger *zap.Logger) *Advisor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Advisor{
		generator: generator,
		logger:    logger,
	}
}

// Ask forwards a shopper query to the model under the fixed persona
func (a *Advisor) Ask(ctx context.Context, req AskRequest) (AskResponse, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return AskResponse{}, shared.NewDomainError("INVALID_INPUT", "Query cannot be empty")
	}

	if a.generator == nil {
		return AskResponse{Answer: FallbackMessage}, nil
	}

	answer, err := a.generator.Generate(ctx, systemPersona, query)
	if err != nil {
		a.logger.Warn("assistant generation failed", zap.Error(err))
		return AskResponse{Answer: FallbackMessage}, nil
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return AskResponse{Answer: EmptyReplyMessage}, nil
	}

	return AskResponse{Answer: answer}, nil
}
