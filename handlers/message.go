package handlers

import (
	"net/http"

	"legalassist/services/message"
	"legalassist/utils"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	MessageService message.MessageService
}

func NewMessageHandler(ms message.MessageService) *MessageHandler {
	return &MessageHandler{MessageService: ms}
}

func (h *MessageHandler) SendMessageHandler(c *gin.Context) {
	var req message.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	msg, err := h.MessageService.Send(c.Request.Context(), userID(c), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// ConversationHandler handles GET /api/messages/:id where id is the other user. Oldest message first.
func (h *MessageHandler) ConversationHandler(c *gin.Context) {
	msgs, err := h.MessageService.Conversation(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

func (h *MessageHandler) MarkReadHandler(c *gin.Context) {
	if err := h.MessageService.MarkRead(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message marked as read"})
}

func (h *MessageHandler) UnreadCountHandler(c *gin.Context) {
	n, err := h.MessageService.UnreadCount(c.Request.Context(), userID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}
