package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// Messages — сквозной кэш истории комнат поверх Redis. Ключ — комната,
// значение — уже сериализованный JSON-ответ истории. Кэш читается
// эндпоинтом истории и сбрасывается при каждом новом сообщении; TTL
// ограничивает устаревание, если сброс потерялся.
type Messages struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewMessages(rdb *redis.Client, ttl time.Duration) *Messages {
	return &Messages{rdb: rdb, ttl: ttl}
}

func historyKey(roomID uint) string {
	return fmt.Sprintf("room:%d:history", roomID)
}

// Get возвращает закэшированную историю комнаты, ok=false при промахе.
// Ошибки Redis трактуются как промах: история всегда читается из базы.
func (m *Messages) Get(ctx context.Context, roomID uint) ([]byte, bool) {
	payload, err := m.rdb.Get(ctx, historyKey(roomID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("History cache get failed for room %d: %v", roomID, err)
		}
		return nil, false
	}
	return payload, true
}

func (m *Messages) Set(ctx context.Context, roomID uint, payload []byte) {
	if err := m.rdb.Set(ctx, historyKey(roomID), payload, m.ttl).Err(); err != nil {
		log.Printf("History cache set failed for room %d: %v", roomID, err)
	}
}

// Invalidate сбрасывает историю комнаты после записи нового сообщения.
func (m *Messages) Invalidate(ctx context.Context, roomID uint) {
	if err := m.rdb.Del(ctx, historyKey(roomID)).Err(); err != nil {
		log.Printf("History cache invalidate failed for room %d: %v", roomID, err)
	}
}
