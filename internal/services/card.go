package services

import (
	"context"
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/yungbote/learncards-backend/internal/apierr"
	"github.com/yungbote/learncards-backend/internal/logger"
	"github.com/yungbote/learncards-backend/internal/repos"
	"github.com/yungbote/learncards-backend/internal/types"
)

type CardService interface {
	// List returns all cards, optionally narrowed to one card type.
	List(ctx context.Context, cardType *string) ([]*types.Card, error)
	// Update applies the provided fields only; nil fields stay unchanged.
	// A missing card wins over an invalid card_type.
	Update(ctx context.Context, cardID int64, cardType, content *string) (*types.Card, error)
	Delete(ctx context.Context, cardID int64) error
}

type cardService struct {
	db       *gorm.DB
	log      *logger.Logger
	cardRepo repos.CardRepo
}

func NewCardService(db *gorm.DB, baseLog *logger.Logger, cardRepo repos.CardRepo) CardService {
	return &cardService{
		db:       db,
		log:      baseLog.With("service", "CardService"),
		cardRepo: cardRepo,
	}
}

func (s *cardService) List(ctx context.Context, cardType *string) ([]*types.Card, error) {
	if cardType != nil && !types.IsValidCardType(*cardType) {
		return nil, apierr.New(http.StatusBadRequest, "invalid_card_type", errors.New("Invalid card_type"))
	}
	cards, err := s.cardRepo.List(ctx, nil, repos.CardFilter{CardType: cardType})
	if err != nil {
		s.log.Error("List: load cards failed", "error", err)
		return nil, err
	}
	return cards, nil
}

func (s *cardService) Update(ctx context.Context, cardID int64, cardType, content *string) (*types.Card, error) {
	card, err := s.cardRepo.GetByID(ctx, nil, cardID)
	if err != nil {
		s.log.Error("Update: load card failed", "error", err, "card_id", cardID)
		return nil, err
	}
	if card == nil {
		return nil, apierr.New(http.StatusNotFound, "card_not_found", errors.New("Card not found"))
	}
	if cardType != nil && !types.IsValidCardType(*cardType) {
		return nil, apierr.New(http.StatusBadRequest, "invalid_card_type", errors.New("Invalid card_type"))
	}

	updates := map[string]interface{}{}
	if cardType != nil {
		updates["card_type"] = *cardType
	}
	if content != nil {
		updates["content"] = *content
	}

	updated, err := s.cardRepo.Update(ctx, nil, cardID, updates)
	if err != nil {
		s.log.Error("Update: persist card failed", "error", err, "card_id", cardID)
		return nil, err
	}
	return updated, nil
}

func (s *cardService) Delete(ctx context.Context, cardID int64) error {
	deleted, err := s.cardRepo.Delete(ctx, nil, cardID)
	if err != nil {
		s.log.Error("Delete: delete card failed", "error", err, "card_id", cardID)
		return err
	}
	if !deleted {
		return apierr.New(http.StatusNotFound, "card_not_found", errors.New("Card not found"))
	}
	return nil
}
