package app

import (
	"github.com/yungbote/learncards-backend/internal/handlers"
	"github.com/yungbote/learncards-backend/internal/logger"
)

type Handlers struct {
	Health *handlers.HealthHandler
	Topic  *handlers.TopicHandler
	Card   *handlers.CardHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health: handlers.NewHealthHandler(),
		Topic:  handlers.NewTopicHandler(serviceset.Topic),
		Card:   handlers.NewCardHandler(serviceset.Card),
	}
}
