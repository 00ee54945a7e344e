package websocket

import (
	"log"

	"github.com/gorilla/websocket"
	"github.com/ivmakarov/message-app/internal/models"
)

// Сессия — состояние одного принятого соединения. Проверка существования
// комнаты/пользователя происходит до апгрейда, в HTTP-обработчике; сюда
// соединение попадает уже в состоянии Active. Цикл Run блокируется на
// чтении кадра, после обрыва транспорта или ошибки хранилища сессия
// переходит в терминальное состояние: снимается с регистрации ровно один
// раз и закрывает сокет.

// RoomSession обслуживает канал сообщений комнаты: входящий текст
// сохраняется как Message и рассылается всем подписчикам комнаты,
// включая отправителя.
type RoomSession struct {
	store    Store
	registry *Registry
	conn     *Connection
	room     *models.Room
	user     *models.User
}

func NewRoomSession(store Store, registry *Registry, conn *Connection, room *models.Room, user *models.User) *RoomSession {
	return &RoomSession{
		store:    store,
		registry: registry,
		conn:     conn,
		room:     room,
		user:     user,
	}
}

func (s *RoomSession) Run() {
	s.registry.Register(s.room.ID, s.conn)
	defer func() {
		s.registry.Unregister(s.room.ID, s.conn)
		s.conn.Close()
	}()

	s.conn.configureRead()

	for {
		data, err := s.conn.readText()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Room session %s read error: %v", s.conn.ID, err)
			}
			return
		}

		// Сначала фиксация в хранилище, затем рассылка; неудачная
		// запись фатальна для сессии и не рассылается.
		message, err := s.store.CreateMessage(string(data), s.user.ID, s.room.ID)
		if err != nil {
			log.Printf("Room session %s failed to save message: %v", s.conn.ID, err)
			return
		}

		payload, err := EncodeMessage(message)
		if err != nil {
			log.Printf("Room session %s failed to encode message: %v", s.conn.ID, err)
			return
		}

		s.registry.Broadcast(s.room.ID, payload)
	}
}

// FeedSession обслуживает ленту комнат пользователя: входящий текст
// трактуется как имя новой комнаты, комната сохраняется и рассылается
// всем подписчикам ленты этого пользователя.
type FeedSession struct {
	store    Store
	registry *Registry
	conn     *Connection
	user     *models.User
}

func NewFeedSession(store Store, registry *Registry, conn *Connection, user *models.User) *FeedSession {
	return &FeedSession{
		store:    store,
		registry: registry,
		conn:     conn,
		user:     user,
	}
}

func (s *FeedSession) Run() {
	s.registry.Register(s.user.ID, s.conn)
	defer func() {
		s.registry.Unregister(s.user.ID, s.conn)
		s.conn.Close()
	}()

	s.conn.configureRead()

	for {
		data, err := s.conn.readText()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Feed session %s read error: %v", s.conn.ID, err)
			}
			return
		}

		room, err := s.store.CreateRoom(string(data), s.user.ID)
		if err != nil {
			log.Printf("Feed session %s failed to create room: %v", s.conn.ID, err)
			return
		}

		payload, err := EncodeRoom(room)
		if err != nil {
			log.Printf("Feed session %s failed to encode room: %v", s.conn.ID, err)
			return
		}

		s.registry.Broadcast(s.user.ID, payload)
	}
}
