package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/learncards-backend/internal/logger"
	"github.com/yungbote/learncards-backend/internal/repos"
)

type Repos struct {
	Topic repos.TopicRepo
	Card  repos.CardRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Topic: repos.NewTopicRepo(db, log),
		Card:  repos.NewCardRepo(db, log),
	}
}
