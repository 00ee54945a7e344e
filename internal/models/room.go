package models

type Room struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"uniqueIndex;not null"`
	Owner uint   `gorm:"not null"`

	// Связи
	Participants []User    `gorm:"many2many:room_participants"`
	Messages     []Message `gorm:"foreignKey:Room"`
}
