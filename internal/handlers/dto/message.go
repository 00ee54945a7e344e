package dto

type CreateMessageRequest struct {
	Content string `json:"content" binding:"required"`
	Owner   uint   `json:"owner" binding:"required"`
	Room    uint   `json:"room" binding:"required"`
}

type MessageResponse struct {
	ID        uint   `json:"id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	Owner     uint   `json:"owner"`
	Room      uint   `json:"room"`
}
