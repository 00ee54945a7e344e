package database

import (
	"github.com/ivmakarov/message-app/internal/models"
)

func (d *Database) CreateUser(name string) (*models.User, error) {
	user := models.User{Name: name}
	if err := d.db.Create(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (d *Database) FindUser(id uint) (*models.User, error) {
	user := models.User{}
	if err := d.db.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}
