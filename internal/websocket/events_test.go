package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/ivmakarov/message-app/internal/models"
	"github.com/stretchr/testify/require"
)

func TestEncodeMessage_Wire_Shape(t *testing.T) {
	req := require.New(t)

	createdAt := time.Date(2024, 5, 17, 12, 30, 45, 0, time.UTC)
	message := &models.Message{
		ID:        42,
		Content:   "hello",
		CreatedAt: createdAt,
		Owner:     2,
		Room:      1,
	}

	payload, err := EncodeMessage(message)
	req.NoError(err)
	req.JSONEq(`{"id":42,"owner":2,"room":1,"content":"hello","created_at":"2024-05-17T12:30:45Z"}`, string(payload))
}

func TestEncodeMessage_Timestamp_Keeps_Zone(t *testing.T) {
	req := require.New(t)

	zone := time.FixedZone("MSK", 3*60*60)
	message := &models.Message{
		ID:        1,
		Content:   "x",
		CreatedAt: time.Date(2024, 5, 17, 15, 30, 45, 0, zone),
		Owner:     1,
		Room:      1,
	}

	payload, err := EncodeMessage(message)
	req.NoError(err)

	var decoded map[string]any
	req.NoError(json.Unmarshal(payload, &decoded))
	req.Equal("2024-05-17T15:30:45+03:00", decoded["created_at"])
}

func TestEncodeRoom_Wire_Shape(t *testing.T) {
	req := require.New(t)

	room := &models.Room{ID: 7, Name: "General Chat", Owner: 5}

	payload, err := EncodeRoom(room)
	req.NoError(err)
	req.JSONEq(`{"id":7,"name":"General Chat","owner":5}`, string(payload))
}

func TestEncode_Is_Deterministic(t *testing.T) {
	req := require.New(t)

	message := &models.Message{ID: 1, Content: "a", CreatedAt: time.Now().UTC(), Owner: 1, Room: 1}

	first, err := EncodeMessage(message)
	req.NoError(err)
	second, err := EncodeMessage(message)
	req.NoError(err)
	req.Equal(first, second)
}
