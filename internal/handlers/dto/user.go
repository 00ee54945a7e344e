package dto

type CreateUserRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

type UserResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
