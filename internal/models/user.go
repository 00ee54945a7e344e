package models

type User struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`

	// Связи
	Rooms []Room `gorm:"many2many:room_participants"`
}
