package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ivmakarov/message-app/internal/handlers/dto"
	"github.com/ivmakarov/message-app/internal/models"
	"github.com/ivmakarov/message-app/internal/services"
	ws "github.com/ivmakarov/message-app/internal/websocket"
)

type RoomHandler struct {
	store        services.Store
	roomRegistry *ws.Registry
}

func NewRoomHandler(store services.Store, roomRegistry *ws.Registry) *RoomHandler {
	return &RoomHandler{store: store, roomRegistry: roomRegistry}
}

// parseID разбирает числовой path-параметр
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

func (h *RoomHandler) formatRoom(room *models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:           room.ID,
		Name:         room.Name,
		Owner:        room.Owner,
		Participants: len(room.Participants),
		Online:       h.roomRegistry.Count(room.ID),
	}
}

// CreateRoom создает комнату от имени существующего пользователя
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.store.FindUser(req.Owner); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create room"})
		return
	}

	room, err := h.store.CreateRoom(req.Name, req.Owner)
	if err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "room name already taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create room"})
		return
	}

	c.JSON(http.StatusCreated, h.formatRoom(room))
}

// ListRooms возвращает все комнаты
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.store.ListRooms()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list rooms"})
		return
	}

	response := make([]dto.RoomResponse, len(rooms))
	for i := range rooms {
		response[i] = h.formatRoom(&rooms[i])
	}

	c.JSON(http.StatusOK, gin.H{"rooms": response})
}

// UserRooms возвращает комнаты, в которых состоит пользователь
func (h *RoomHandler) UserRooms(c *gin.Context) {
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}

	rooms, err := h.store.UserRooms(userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get rooms"})
		return
	}

	response := make([]dto.RoomResponse, len(rooms))
	for i := range rooms {
		response[i] = h.formatRoom(&rooms[i])
	}

	c.JSON(http.StatusOK, gin.H{"rooms": response})
}

// JoinRoom добавляет пользователя в участники комнаты
func (h *RoomHandler) JoinRoom(c *gin.Context) {
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}
	roomID, ok := parseID(c, "room_id")
	if !ok {
		return
	}

	if err := h.store.JoinRoom(userID, roomID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user or room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to join room"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "joined room"})
}

// ExitRoom удаляет пользователя из участников комнаты
func (h *RoomHandler) ExitRoom(c *gin.Context) {
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}
	roomID, ok := parseID(c, "room_id")
	if !ok {
		return
	}

	if err := h.store.ExitRoom(userID, roomID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user or room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to exit room"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "exited room"})
}
