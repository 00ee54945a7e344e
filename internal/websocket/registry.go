package websocket

import (
	"log"
	"sync"
)

// Registry — потокобезопасное отображение групповой ключ -> множество живых
// соединений. Групповой ключ — это id комнаты (рассылка сообщений) либо id
// пользователя (лента созданных комнат); на каждый вид рассылки создается
// свой экземпляр Registry.
type Registry struct {
	mu     sync.RWMutex
	groups map[uint]map[*Connection]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		groups: make(map[uint]map[*Connection]struct{}),
	}
}

// Register добавляет соединение в группу, создавая ее при необходимости.
// Повторная регистрация того же соединения — no-op.
func (r *Registry) Register(key uint, conn *Connection) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.groups[key]; !ok {
		r.groups[key] = make(map[*Connection]struct{})
	}
	r.groups[key][conn] = struct{}{}

	log.Printf("Connection %s registered in group %d (%d total)", conn.ID, key, len(r.groups[key]))
}

// Unregister удаляет соединение из группы. Отсутствие группы или
// соединения не является ошибкой: teardown сессии может гоняться
// с параллельной рассылкой.
func (r *Registry) Unregister(key uint, conn *Connection) {
	r.mu.Lock()
	defer r.mu.Unlock()

	group, ok := r.groups[key]
	if !ok {
		return
	}

	if _, ok := group[conn]; !ok {
		return
	}

	delete(group, conn)
	if len(group) == 0 {
		delete(r.groups, key)
	}

	log.Printf("Connection %s unregistered from group %d", conn.ID, key)
}

// Snapshot возвращает копию текущего состава группы. Итерация по копии
// безопасна при параллельных Register/Unregister.
func (r *Registry) Snapshot(key uint) []*Connection {
	r.mu.RLock()
	defer r.mu.RUnlock()

	group, ok := r.groups[key]
	if !ok {
		return nil
	}

	conns := make([]*Connection, 0, len(group))
	for conn := range group {
		conns = append(conns, conn)
	}
	return conns
}

// Count возвращает число живых подписчиков группы.
func (r *Registry) Count(key uint) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.groups[key])
}

// Broadcast доставляет payload всем текущим подписчикам группы.
// Неудача доставки одному получателю локальна: логируется и не
// прерывает рассылку остальным.
func (r *Registry) Broadcast(key uint, payload []byte) {
	for _, conn := range r.Snapshot(key) {
		if err := conn.Enqueue(payload); err != nil {
			log.Printf("Dropping broadcast to connection %s: %v", conn.ID, err)
		}
	}
}
