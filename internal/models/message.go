package models

import "time"

type Message struct {
	ID        uint   `gorm:"primaryKey"`
	Content   string `gorm:"not null"`
	CreatedAt time.Time
	Owner     uint `gorm:"not null"`
	Room      uint `gorm:"not null;index"`
}
