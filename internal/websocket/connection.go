package websocket

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// Время ожидания записи
	writeWait = 10 * time.Second

	// Время ожидания pong от клиента
	pongWait = 60 * time.Second

	// Интервал отправки ping
	pingPeriod = (pongWait * 9) / 10

	// Максимальный размер входящего сообщения
	maxMessageSize = 64 * 1024 // 64KB

	// Емкость буфера исходящих сообщений
	sendBufferSize = 256
)

// Connection — одно живое WebSocket-соединение. Исходящие сообщения
// проходят через буферизованный канал и пишутся единственной
// горутиной WritePump.
type Connection struct {
	ID     uuid.UUID
	socket *websocket.Conn

	send chan []byte
	done chan struct{}
	once sync.Once
}

func NewConnection(socket *websocket.Conn) *Connection {
	return &Connection{
		ID:     uuid.New(),
		socket: socket,
		send:   make(chan []byte, sendBufferSize),
		done:   make(chan struct{}),
	}
}

// Enqueue ставит payload в очередь на отправку, не блокируясь.
// Переполненный буфер и закрытое соединение — ошибки доставки
// только этому получателю.
func (c *Connection) Enqueue(payload []byte) error {
	select {
	case <-c.done:
		return ErrConnectionClosed
	default:
	}

	select {
	case c.send <- payload:
		return nil
	default:
		return ErrSendBufferFull
	}
}

// Close закрывает соединение; повторные вызовы — no-op.
func (c *Connection) Close() {
	c.once.Do(func() {
		close(c.done)
		if c.socket != nil {
			c.socket.Close()
		}
	})
}

// WritePump пишет исходящие сообщения и ping-и клиенту.
// Запускается в отдельной горутине, ровно одна на соединение.
func (c *Connection) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case payload := <-c.send:
			c.socket.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.socket.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			c.socket.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.socket.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			c.socket.SetWriteDeadline(time.Now().Add(writeWait))
			c.socket.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}

// readText блокируется до следующего текстового кадра от клиента.
func (c *Connection) readText() ([]byte, error) {
	_, data, err := c.socket.ReadMessage()
	return data, err
}

func (c *Connection) configureRead() {
	c.socket.SetReadLimit(maxMessageSize)
	c.socket.SetReadDeadline(time.Now().Add(pongWait))
	c.socket.SetPongHandler(func(string) error {
		c.socket.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
}
