package database

import (
	"github.com/ivmakarov/message-app/internal/models"
)

func (d *Database) CreateRoom(name string, owner uint) (*models.Room, error) {
	room := models.Room{Name: name, Owner: owner}
	if err := d.db.Create(&room).Error; err != nil {
		return nil, translate(err)
	}
	return &room, nil
}

func (d *Database) FindRoom(id uint) (*models.Room, error) {
	var room models.Room
	if err := d.db.Preload("Participants").First(&room, id).Error; err != nil {
		return nil, translate(err)
	}
	return &room, nil
}

func (d *Database) ListRooms() ([]models.Room, error) {
	var rooms []models.Room
	if err := d.db.Preload("Participants").Find(&rooms).Error; err != nil {
		return nil, translate(err)
	}
	return rooms, nil
}

// UserRooms возвращает комнаты, в которых пользователь состоит участником
func (d *Database) UserRooms(userID uint) ([]models.Room, error) {
	var user models.User
	if err := d.db.Preload("Rooms").First(&user, userID).Error; err != nil {
		return nil, translate(err)
	}

	// Для каждой комнаты подгружаем участников
	for i := range user.Rooms {
		d.db.Model(&user.Rooms[i]).Association("Participants").Find(&user.Rooms[i].Participants)
	}

	return user.Rooms, nil
}

func (d *Database) JoinRoom(userID, roomID uint) error {
	var user models.User
	var room models.Room

	if err := d.db.First(&user, userID).Error; err != nil {
		return translate(err)
	}

	if err := d.db.First(&room, roomID).Error; err != nil {
		return translate(err)
	}

	return translate(d.db.Model(&room).Association("Participants").Append(&user))
}

func (d *Database) ExitRoom(userID, roomID uint) error {
	var user models.User
	var room models.Room

	if err := d.db.First(&user, userID).Error; err != nil {
		return translate(err)
	}

	if err := d.db.First(&room, roomID).Error; err != nil {
		return translate(err)
	}

	return translate(d.db.Model(&room).Association("Participants").Delete(&user))
}
