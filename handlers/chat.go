package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rkritzar39/calebsportfolio-sub000/services/chat"
)

// ChatHandler proxies visitor prompts to the Gemini-backed chat service.
type ChatHandler struct {
	ChatSvc chat.ChatService
}

// NewChatHandler creates a ChatHandler instance.
func NewChatHandler(svc chat.ChatService) *ChatHandler {
	return &ChatHandler{ChatSvc: svc}
}

// ChatRequest is the visitor chat payload.
type ChatRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// CompleteHandler sends the prompt to the model and returns the reply.
func (h *ChatHandler) CompleteHandler(c *gin.Context) {
	logger := getLogger(c)
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt must not be empty"})
		return
	}

	reply, err := h.ChatSvc.Complete(c.Request.Context(), prompt)
	if err != nil {
		logger.Error("Chat completion failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Chat service unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
