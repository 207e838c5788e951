// File: handlers/chat.go
package handlers

import (
	"net/http"
	"strings"

	"hotelbot/models"
	"hotelbot/services/chat"
	"hotelbot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultSessionID = "default-session"

// ChatHandler exposes the conversational assistant over HTTP.
type ChatHandler struct {
	Service chat.ChatService
}

func NewChatHandler(service chat.ChatService) *ChatHandler {
	return &ChatHandler{Service: service}
}

// Chat handles POST /api/chat. It validates the request, routes the message
// through the chat service and returns the assistant's reply.
func (h *ChatHandler) Chat(c *gin.Context) {
	logger := getLogger(c)

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid chat request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "message is required and must be at most 2000 characters")
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "message must not be blank")
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = defaultSessionID
	}

	resp := h.Service.Chat(c.Request.Context(), sessionID, req.Message)
	c.JSON(http.StatusOK, resp)
}

// ClearSession handles DELETE /api/chat/session/:sessionId.
func (h *ChatHandler) ClearSession(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		sessionID = defaultSessionID
	}

	h.Service.ClearSession(c.Request.Context(), sessionID)
	c.Status(http.StatusNoContent)
}
