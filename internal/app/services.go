package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/learncards-backend/internal/logger"
	"github.com/yungbote/learncards-backend/internal/services"
)

type Services struct {
	Topic services.TopicService
	Card  services.CardService
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Topic: services.NewTopicService(db, log, reposet.Topic, reposet.Card),
		Card:  services.NewCardService(db, log, reposet.Card),
	}
}
