package database

import (
	"errors"

	"github.com/ivmakarov/message-app/internal/services"
	"gorm.io/gorm"
)

type Database struct {
	db *gorm.DB
}

// translate приводит ошибки gorm к таксономии services,
// чтобы слой выше не зависел от gorm.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return services.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return services.ErrDuplicate
	default:
		return err
	}
}
