package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ivmakarov/message-app/internal/handlers/dto"
	"github.com/ivmakarov/message-app/internal/services"
)

// HistoryCache — кэш готовых ответов истории комнаты.
// Реализуется internal/cache поверх Redis.
type HistoryCache interface {
	Get(ctx context.Context, roomID uint) ([]byte, bool)
	Set(ctx context.Context, roomID uint, payload []byte)
}

type MessageHandler struct {
	store services.Store
	cache HistoryCache
}

func NewMessageHandler(store services.Store, cache HistoryCache) *MessageHandler {
	return &MessageHandler{store: store, cache: cache}
}

// CreateMessage сохраняет сообщение через HTTP, без realtime-рассылки:
// рассылкой занимаются только WebSocket-каналы
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	var req dto.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.store.FindUser(req.Owner); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create message"})
		return
	}

	if _, err := h.store.FindRoom(req.Room); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create message"})
		return
	}

	message, err := h.store.CreateMessage(req.Content, req.Owner, req.Room)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create message"})
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{
		ID:        message.ID,
		Content:   message.Content,
		CreatedAt: message.CreatedAt.Format(time.RFC3339),
		Owner:     message.Owner,
		Room:      message.Room,
	})
}

// RoomMessages отдает историю комнаты, старые сообщения первыми.
// Ответ кэшируется в Redis и сбрасывается при новых сообщениях.
func (h *MessageHandler) RoomMessages(c *gin.Context) {
	roomID, ok := parseID(c, "room_id")
	if !ok {
		return
	}

	if _, err := h.store.FindRoom(roomID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get messages"})
		return
	}

	if payload, hit := h.cache.Get(c.Request.Context(), roomID); hit {
		c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
		return
	}

	messages, err := h.store.RoomMessages(roomID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get messages"})
		return
	}

	response := make([]dto.MessageResponse, len(messages))
	for i, m := range messages {
		response[i] = dto.MessageResponse{
			ID:        m.ID,
			Content:   m.Content,
			CreatedAt: m.CreatedAt.Format(time.RFC3339),
			Owner:     m.Owner,
			Room:      m.Room,
		}
	}

	payload, err := json.Marshal(gin.H{"messages": response})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get messages"})
		return
	}

	h.cache.Set(c.Request.Context(), roomID, payload)
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}
