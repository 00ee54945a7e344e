package database

import (
	"github.com/ivmakarov/message-app/internal/models"
)

func (d *Database) CreateMessage(content string, owner, room uint) (*models.Message, error) {
	message := models.Message{Content: content, Owner: owner, Room: room}
	if err := d.db.Create(&message).Error; err != nil {
		return nil, translate(err)
	}
	return &message, nil
}

// RoomMessages возвращает историю комнаты, старые сообщения первыми
func (d *Database) RoomMessages(roomID uint) ([]models.Message, error) {
	var messages []models.Message

	err := d.db.
		Where("room = ?", roomID).
		Order("created_at ASC").
		Find(&messages).Error

	if err != nil {
		return nil, translate(err)
	}

	return messages, nil
}
