package handler

import (
	"github.com/gin-gonic/gin"

	shopapp "github.com/oryizon/storefront/internal/application/shop"
)

// MessageHandler serves the contact form and its admin review listing
type MessageHandler struct {
	BaseHandler
	messages *shopapp.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messages *shopapp.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// Submit records a contact-form message
func (h *MessageHandler) Submit(c *gin.Context) {
	var req shopapp.SubmitMessageRequest
	if !h.BindJSON(c, &req) {
		return
	}

	msg, err := h.messages.Submit(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, msg)
}

// List returns submitted messages, newest first
func (h *MessageHandler) List(c *gin.Context) {
	msgs, err := h.messages.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, msgs)
}
