package handlers_test

import (
	"context"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ivmakarov/message-app/internal/handlers"
	"github.com/ivmakarov/message-app/internal/models"
	"github.com/ivmakarov/message-app/internal/server"
	"github.com/ivmakarov/message-app/internal/services"
	ws "github.com/ivmakarov/message-app/internal/websocket"
)

// fakeStore — потокобезопасная реализация services.Store в памяти
type fakeStore struct {
	mu            sync.Mutex
	users         map[uint]*models.User
	rooms         map[uint]*models.Room
	participants  map[uint]map[uint]struct{} // room -> user set
	messages      []*models.Message
	nextUserID    uint
	nextRoomID    uint
	nextMessageID uint

	roomMessagesCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:        map[uint]*models.User{},
		rooms:        map[uint]*models.Room{},
		participants: map[uint]map[uint]struct{}{},
	}
}

func (f *fakeStore) CreateUser(name string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Name == name {
			return nil, services.ErrDuplicate
		}
	}
	f.nextUserID++
	user := &models.User{ID: f.nextUserID, Name: name}
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeStore) FindUser(id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return user, nil
}

func (f *fakeStore) CreateRoom(name string, owner uint) (*models.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, room := range f.rooms {
		if room.Name == name {
			return nil, services.ErrDuplicate
		}
	}
	f.nextRoomID++
	room := &models.Room{ID: f.nextRoomID, Name: name, Owner: owner}
	f.rooms[room.ID] = room
	f.participants[room.ID] = map[uint]struct{}{}
	return room, nil
}

func (f *fakeStore) FindRoom(id uint) (*models.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	room, ok := f.rooms[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return f.withParticipants(room), nil
}

func (f *fakeStore) withParticipants(room *models.Room) *models.Room {
	loaded := *room
	loaded.Participants = nil
	for userID := range f.participants[room.ID] {
		loaded.Participants = append(loaded.Participants, *f.users[userID])
	}
	return &loaded
}

func (f *fakeStore) ListRooms() ([]models.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var rooms []models.Room
	for _, room := range f.rooms {
		rooms = append(rooms, *f.withParticipants(room))
	}
	return rooms, nil
}

func (f *fakeStore) UserRooms(userID uint) ([]models.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[userID]; !ok {
		return nil, services.ErrNotFound
	}
	var rooms []models.Room
	for roomID, members := range f.participants {
		if _, ok := members[userID]; ok {
			rooms = append(rooms, *f.withParticipants(f.rooms[roomID]))
		}
	}
	return rooms, nil
}

func (f *fakeStore) JoinRoom(userID, roomID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[userID]; !ok {
		return services.ErrNotFound
	}
	if _, ok := f.rooms[roomID]; !ok {
		return services.ErrNotFound
	}
	f.participants[roomID][userID] = struct{}{}
	return nil
}

func (f *fakeStore) ExitRoom(userID, roomID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[userID]; !ok {
		return services.ErrNotFound
	}
	if _, ok := f.rooms[roomID]; !ok {
		return services.ErrNotFound
	}
	delete(f.participants[roomID], userID)
	return nil
}

func (f *fakeStore) CreateMessage(content string, owner, room uint) (*models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextMessageID++
	message := &models.Message{
		ID:        f.nextMessageID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
		Owner:     owner,
		Room:      room,
	}
	f.messages = append(f.messages, message)
	return message, nil
}

func (f *fakeStore) RoomMessages(roomID uint) ([]models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.roomMessagesCalls++
	var messages []models.Message
	for _, m := range f.messages {
		if m.Room == roomID {
			messages = append(messages, *m)
		}
	}
	return messages, nil
}

func (f *fakeStore) messageCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.messages)
}

// fakeCache — кэш истории в памяти вместо Redis
type fakeCache struct {
	mu      sync.Mutex
	entries map[uint][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[uint][]byte{}}
}

func (c *fakeCache) Get(_ context.Context, roomID uint) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	payload, ok := c.entries[roomID]
	return payload, ok
}

func (c *fakeCache) Set(_ context.Context, roomID uint, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[roomID] = payload
}

type testEnv struct {
	store        *fakeStore
	roomRegistry *ws.Registry
	feedRegistry *ws.Registry
	srv          *httptest.Server
}

// newTestEnv собирает полный router на фейковом хранилище и кэше
func newTestEnv() *testEnv {
	fake := newFakeStore()
	return newTestEnvWith(fake, fake, newFakeCache())
}

// newTestEnvWith позволяет обернуть фейковое хранилище (например, в
// cache.InvalidatingStore) и подставить другой кэш истории
func newTestEnvWith(fake *fakeStore, store services.Store, histCache handlers.HistoryCache) *testEnv {
	gin.SetMode(gin.TestMode)

	roomRegistry := ws.NewRegistry()
	feedRegistry := ws.NewRegistry()

	router := gin.New()
	server.APIEndpoints(router,
		handlers.NewUserHandler(store),
		handlers.NewRoomHandler(store, roomRegistry),
		handlers.NewMessageHandler(store, histCache),
		handlers.NewWebSocketHandler(store, roomRegistry, feedRegistry),
	)

	return &testEnv{
		store:        fake,
		roomRegistry: roomRegistry,
		feedRegistry: feedRegistry,
		srv:          httptest.NewServer(router),
	}
}

func (e *testEnv) close() {
	e.srv.Close()
}
