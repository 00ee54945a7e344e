package websocket

import (
	"encoding/json"
	"time"

	"github.com/ivmakarov/message-app/internal/models"
)

// Формат исходящих кадров — внешний контракт: имена полей и
// ISO-8601 метка времени не меняются от вызова к вызову.

type MessageEvent struct {
	ID        uint   `json:"id"`
	Owner     uint   `json:"owner"`
	Room      uint   `json:"room"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type RoomEvent struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Owner uint   `json:"owner"`
}

// EncodeMessage сериализует сохраненное сообщение для рассылки в комнату.
func EncodeMessage(m *models.Message) ([]byte, error) {
	return json.Marshal(MessageEvent{
		ID:        m.ID,
		Owner:     m.Owner,
		Room:      m.Room,
		Content:   m.Content,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	})
}

// EncodeRoom сериализует созданную комнату для рассылки в ленту пользователя.
func EncodeRoom(r *models.Room) ([]byte, error) {
	return json.Marshal(RoomEvent{
		ID:    r.ID,
		Name:  r.Name,
		Owner: r.Owner,
	})
}
