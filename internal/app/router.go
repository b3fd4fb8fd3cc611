package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/learncards-backend/internal/logger"
	"github.com/yungbote/learncards-backend/internal/server"
)

func wireRouter(log *logger.Logger, cfg Config, handlerset Handlers) *gin.Engine {
	log.Info("Wiring router...")
	return server.NewRouter(server.RouterConfig{
		Log:           log,
		CORSOrigins:   cfg.CORSOrigins,
		HealthHandler: handlerset.Health,
		TopicHandler:  handlerset.Topic,
		CardHandler:   handlerset.Card,
	})
}
