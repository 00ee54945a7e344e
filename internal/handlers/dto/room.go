package dto

type CreateRoomRequest struct {
	Owner uint   `json:"owner" binding:"required"`
	Name  string `json:"name" binding:"required,min=1,max=100"`
}

// RoomResponse отдает число участников и живых подписчиков,
// а не сами списки
type RoomResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Owner        uint   `json:"owner"`
	Participants int    `json:"participants"`
	Online       int    `json:"online"`
}
