package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/ivmakarov/message-app/internal/services"
	ws "github.com/ivmakarov/message-app/internal/websocket"
)

// WebSocketHandler поднимает оба realtime-канала: сообщения комнаты
// и ленту созданных комнат. Проверка существования сущностей идет до
// апгрейда, чтобы отказ был обычным HTTP-ответом, а не молчащим сокетом.
type WebSocketHandler struct {
	store        ws.Store
	roomRegistry *ws.Registry
	feedRegistry *ws.Registry
	upgrader     websocket.Upgrader
}

func NewWebSocketHandler(store ws.Store, roomRegistry, feedRegistry *ws.Registry) *WebSocketHandler {
	return &WebSocketHandler{
		store:        store,
		roomRegistry: roomRegistry,
		feedRegistry: feedRegistry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// TODO: проверять origin в prod
				return true
			},
		},
	}
}

func (h *WebSocketHandler) rejectLookup(c *gin.Context, err error, what string) {
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": what + " not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open channel"})
}

// HandleRoomChannel — GET /ws/:room_id/:user_id
func (h *WebSocketHandler) HandleRoomChannel(c *gin.Context) {
	roomID, ok := parseID(c, "room_id")
	if !ok {
		return
	}
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}

	room, err := h.store.FindRoom(roomID)
	if err != nil {
		h.rejectLookup(c, err, "room")
		return
	}

	user, err := h.store.FindUser(userID)
	if err != nil {
		h.rejectLookup(c, err, "user")
		return
	}

	socket, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	conn := ws.NewConnection(socket)
	session := ws.NewRoomSession(h.store, h.roomRegistry, conn, room, user)

	go conn.WritePump()
	go session.Run()
}

// HandleFeedChannel — GET /feed/:user_id
func (h *WebSocketHandler) HandleFeedChannel(c *gin.Context) {
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}

	user, err := h.store.FindUser(userID)
	if err != nil {
		h.rejectLookup(c, err, "user")
		return
	}

	socket, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	conn := ws.NewConnection(socket)
	session := ws.NewFeedSession(h.store, h.feedRegistry, conn, user)

	go conn.WritePump()
	go session.Run()
}
