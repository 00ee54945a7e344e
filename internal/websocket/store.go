package websocket

import "github.com/ivmakarov/message-app/internal/models"

// Store — минимальный контракт хранилища, нужный realtime-слою.
// Полный интерфейс живет в services; здесь только то, что
// используют сессии, чтобы тесты могли подставить фейк.
type Store interface {
	FindUser(id uint) (*models.User, error)
	FindRoom(id uint) (*models.Room, error)
	CreateMessage(content string, owner, room uint) (*models.Message, error)
	CreateRoom(name string, owner uint) (*models.Room, error)
}
