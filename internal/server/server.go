package server

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/ivmakarov/message-app/internal/cache"
	"github.com/ivmakarov/message-app/internal/config"
	"github.com/ivmakarov/message-app/internal/database"
	"github.com/ivmakarov/message-app/internal/handlers"
	ws "github.com/ivmakarov/message-app/internal/websocket"
)

type Server struct {
	Router       *gin.Engine
	DB           *database.Database
	Redis        *redis.Client
	RoomRegistry *ws.Registry
	FeedRegistry *ws.Registry

	port string
}

func NewServer() *Server {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config load failed: %v", err)
	}

	db := &database.Database{}
	if err := db.Connect(cfg.DatabaseURL); err != nil {
		log.Fatalf("Postgres connect failed: %v", err)
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}
	rdb := redis.NewClient(redisOpts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Redis connect failed: %v", err)
	}

	messageCache := cache.NewMessages(rdb, cfg.MessageCacheTTL)
	store := cache.NewInvalidatingStore(db, messageCache)

	roomRegistry := ws.NewRegistry()
	feedRegistry := ws.NewRegistry()

	userH := handlers.NewUserHandler(store)
	roomH := handlers.NewRoomHandler(store, roomRegistry)
	messageH := handlers.NewMessageHandler(store, messageCache)
	wsH := handlers.NewWebSocketHandler(store, roomRegistry, feedRegistry)

	router := gin.Default()
	APIEndpoints(router, userH, roomH, messageH, wsH)

	return &Server{
		Router:       router,
		DB:           db,
		Redis:        rdb,
		RoomRegistry: roomRegistry,
		FeedRegistry: feedRegistry,
		port:         cfg.Port,
	}
}

func (s *Server) Run() {
	log.Printf("Server starting on port %s", s.port)
	if err := s.Router.Run(":" + s.port); err != nil {
		log.Fatalf("Server run error: %v", err)
	}
}
