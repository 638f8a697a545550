package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"vrikzo-backend/internal/chat/dto"
	"vrikzo-backend/internal/chat/usecase"
)

// ChatHandler handles chatbot HTTP requests
type ChatHandler struct {
	chatUsecase *usecase.ChatUsecase
}

func NewChatHandler(chatUsecase *usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{chatUsecase: chatUsecase}
}

// Chat relays a chatbot message to the assistant
// POST /api/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body."})
		return
	}

	resp, err := h.chatUsecase.Chat(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, usecase.ErrMessageRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error."})
		return
	}

	c.JSON(http.StatusOK, resp)
}
