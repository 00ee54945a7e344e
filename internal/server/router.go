package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ivmakarov/message-app/internal/handlers"
)

func APIEndpoints(r *gin.Engine, userH *handlers.UserHandler, roomH *handlers.RoomHandler, messageH *handlers.MessageHandler, wsH *handlers.WebSocketHandler) {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowCredentials = false
	r.Use(cors.New(corsCfg))

	// CRUD endpoints
	create := r.Group("/create")
	{
		create.POST("/user", userH.CreateUser)
		create.POST("/room", roomH.CreateRoom)
		create.POST("/message", messageH.CreateMessage)
	}

	rooms := r.Group("/rooms")
	{
		rooms.GET("", roomH.ListRooms)
		rooms.GET("/:room_id/messages", messageH.RoomMessages)
		rooms.POST("/join/:user_id/:room_id", roomH.JoinRoom)
		rooms.POST("/exit/:user_id/:room_id", roomH.ExitRoom)
	}

	r.GET("/users/:user_id/rooms", roomH.UserRooms)

	// Realtime endpoints
	r.GET("/ws/:room_id/:user_id", wsH.HandleRoomChannel)
	r.GET("/feed/:user_id", wsH.HandleFeedChannel)
}
