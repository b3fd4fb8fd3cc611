package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"github.com/yungbote/learncards-backend/internal/apierr"
	"github.com/yungbote/learncards-backend/internal/generator"
	"github.com/yungbote/learncards-backend/internal/logger"
	"github.com/yungbote/learncards-backend/internal/repos"
	"github.com/yungbote/learncards-backend/internal/types"
)

type TopicService interface {
	// CreateWithCards creates the topic and one generated card per format
	// in a single transaction. Card order follows the formats order.
	CreateWithCards(ctx context.Context, name string, formats []string) (*types.Topic, []*types.Card, error)
	List(ctx context.Context) ([]*types.Topic, error)
	// ListCards returns the topic's cards, optionally narrowed to one card
	// type. A missing topic wins over an invalid type filter.
	ListCards(ctx context.Context, topicID int64, cardType *string) ([]*types.Card, error)
}

type topicService struct {
	db        *gorm.DB
	log       *logger.Logger
	topicRepo repos.TopicRepo
	cardRepo  repos.CardRepo
}

func NewTopicService(
	db *gorm.DB,
	baseLog *logger.Logger,
	topicRepo repos.TopicRepo,
	cardRepo repos.CardRepo,
) TopicService {
	return &topicService{
		db:        db,
		log:       baseLog.With("service", "TopicService"),
		topicRepo: topicRepo,
		cardRepo:  cardRepo,
	}
}

func (s *topicService) CreateWithCards(ctx context.Context, name string, formats []string) (*types.Topic, []*types.Card, error) {
	exists, err := s.topicRepo.NameExists(ctx, nil, name)
	if err != nil {
		s.log.Error("CreateWithCards: name lookup failed", "error", err, "topic", name)
		return nil, nil, err
	}
	if exists {
		return nil, nil, apierr.New(http.StatusConflict, "topic_exists", errors.New("Topic already exists"))
	}

	var topic *types.Topic
	var cards []*types.Card

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		topic = &types.Topic{Name: name}
		if _, err := s.topicRepo.Create(ctx, tx, topic); err != nil {
			return err
		}

		cards = make([]*types.Card, 0, len(formats))
		for _, cardType := range formats {
			cards = append(cards, &types.Card{
				TopicID:  topic.ID,
				CardType: cardType,
				Content:  generator.Generate(name, cardType),
			})
		}
		_, err := s.cardRepo.Create(ctx, tx, cards)
		return err
	})
	if err != nil {
		// Two requests racing on the same name: the loser hits the unique
		// index at commit time and must see a conflict, not a 500.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil, apierr.New(http.StatusConflict, "topic_exists", errors.New("Topic already exists"))
		}
		s.log.Error("CreateWithCards: transaction failed", "error", err, "topic", name)
		return nil, nil, fmt.Errorf("create topic with cards: %w", err)
	}

	return topic, cards, nil
}

func (s *topicService) List(ctx context.Context) ([]*types.Topic, error) {
	topics, err := s.topicRepo.List(ctx, nil)
	if err != nil {
		s.log.Error("List: load topics failed", "error", err)
		return nil, err
	}
	return topics, nil
}

func (s *topicService) ListCards(ctx context.Context, topicID int64, cardType *string) ([]*types.Card, error) {
	topic, err := s.topicRepo.GetByID(ctx, nil, topicID)
	if err != nil {
		s.log.Error("ListCards: load topic failed", "error", err, "topic_id", topicID)
		return nil, err
	}
	if topic == nil {
		return nil, apierr.New(http.StatusNotFound, "topic_not_found", errors.New("Topic not found"))
	}
	if cardType != nil && !types.IsValidCardType(*cardType) {
		return nil, apierr.New(http.StatusBadRequest, "invalid_card_type", errors.New("Invalid card_type"))
	}

	cards, err := s.cardRepo.List(ctx, nil, repos.CardFilter{TopicID: &topicID, CardType: cardType})
	if err != nil {
		s.log.Error("ListCards: load cards failed", "error", err, "topic_id", topicID)
		return nil, err
	}
	return cards, nil
}
