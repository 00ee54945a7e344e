package cache

import (
	"context"

	"github.com/ivmakarov/message-app/internal/models"
	"github.com/ivmakarov/message-app/internal/services"
)

// InvalidatingStore оборачивает хранилище и сбрасывает кэш истории при
// каждом успешно сохраненном сообщении. И HTTP-создание, и realtime-сессии
// работают через эту обертку, так что кэш не переживает запись.
type InvalidatingStore struct {
	services.Store
	messages *Messages
}

func NewInvalidatingStore(store services.Store, messages *Messages) *InvalidatingStore {
	return &InvalidatingStore{Store: store, messages: messages}
}

func (s *InvalidatingStore) CreateMessage(content string, owner, room uint) (*models.Message, error) {
	message, err := s.Store.CreateMessage(content, owner, room)
	if err != nil {
		return nil, err
	}
	s.messages.Invalidate(context.Background(), room)
	return message, nil
}
