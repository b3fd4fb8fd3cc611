package server

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/learncards-backend/internal/handlers"
	"github.com/yungbote/learncards-backend/internal/logger"
	"github.com/yungbote/learncards-backend/internal/middleware"
)

type RouterConfig struct {
	Log           *logger.Logger
	CORSOrigins   []string
	HealthHandler *handlers.HealthHandler
	TopicHandler  *handlers.TopicHandler
	CardHandler   *handlers.CardHandler
}

// NewRouter assembles the full route table. Each method+path pair is
// registered exactly once; gin panics on duplicates, which keeps it that
// way.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.AttachRequestID())
	router.Use(middleware.RequestLogger(cfg.Log))
	router.Use(middleware.CORS(cfg.CORSOrigins))

	router.GET("/health", cfg.HealthHandler.HealthCheck)

	router.GET("/topics", cfg.TopicHandler.List)
	router.POST("/topics", cfg.TopicHandler.Create)
	router.GET("/topics/:id/cards", cfg.TopicHandler.ListCards)

	router.GET("/cards", cfg.CardHandler.List)
	router.PUT("/cards/:id", cfg.CardHandler.Update)
	router.DELETE("/cards/:id", cfg.CardHandler.Delete)

	return router
}
