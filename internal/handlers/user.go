package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ivmakarov/message-app/internal/handlers/dto"
	"github.com/ivmakarov/message-app/internal/services"
)

type UserHandler struct {
	store services.Store
}

func NewUserHandler(store services.Store) *UserHandler {
	return &UserHandler{store: store}
}

// CreateUser регистрирует нового пользователя по уникальному имени
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.store.CreateUser(req.Name)
	if err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "user name already taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, dto.UserResponse{ID: user.ID, Name: user.Name})
}
