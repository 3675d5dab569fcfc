package handler

import (
	"github.com/gin-gonic/gin"

	assistantapp "github.com/oryizon/storefront/internal/application/assistant"
)

// AssistantHandler serves the wellness assistant endpoint
type AssistantHandler struct {
	BaseHandler
	advisor *assistantapp.Advisor
}

// NewAssistantHandler creates a new AssistantHandler
func NewAssistantHandler(advisor *assistantapp.Advisor) *AssistantHandler {
	return &AssistantHandler{advisor: advisor}
}

// Ask answers a shopper's wellness question
func (h *AssistantHandler) Ask(c *gin.Context) {
	var req assistantapp.AskRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.advisor.Ask(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
