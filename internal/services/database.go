package services

import (
	"errors"

	"github.com/ivmakarov/message-app/internal/models"
)

var (
	// ErrNotFound возвращается, когда запись с указанным id не существует
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate возвращается при нарушении уникального ограничения (имя пользователя/комнаты)
	ErrDuplicate = errors.New("duplicate record")
)

// Store описывает контракт хранилища, который использует весь HTTP/WS слой.
// Реализуется internal/database, в тестах подменяется фейком.
type Store interface {
	CreateUser(name string) (*models.User, error)
	FindUser(id uint) (*models.User, error)

	CreateRoom(name string, owner uint) (*models.Room, error)
	FindRoom(id uint) (*models.Room, error)
	ListRooms() ([]models.Room, error)
	UserRooms(userID uint) ([]models.Room, error)
	JoinRoom(userID, roomID uint) error
	ExitRoom(userID, roomID uint) error

	CreateMessage(content string, owner, room uint) (*models.Message, error)
	RoomMessages(roomID uint) ([]models.Message, error)
}
