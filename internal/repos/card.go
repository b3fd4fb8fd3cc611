package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yungbote/learncards-backend/internal/logger"
	"github.com/yungbote/learncards-backend/internal/types"
)

// CardFilter narrows List results. Nil fields match everything.
type CardFilter struct {
	TopicID  *int64
	CardType *string
}

type CardRepo interface {
	Create(ctx context.Context, tx *gorm.DB, cards []*types.Card) ([]*types.Card, error)
	GetByID(ctx context.Context, tx *gorm.DB, cardID int64) (*types.Card, error)
	List(ctx context.Context, tx *gorm.DB, filter CardFilter) ([]*types.Card, error)
	Update(ctx context.Context, tx *gorm.DB, cardID int64, updates map[string]interface{}) (*types.Card, error)
	Delete(ctx context.Context, tx *gorm.DB, cardID int64) (bool, error)
}

type cardRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCardRepo(db *gorm.DB, baseLog *logger.Logger) CardRepo {
	return &cardRepo{db: db, log: baseLog.With("repo", "CardRepo")}
}

func (cr *cardRepo) Create(ctx context.Context, tx *gorm.DB, cards []*types.Card) ([]*types.Card, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	if len(cards) == 0 {
		return []*types.Card{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

func (cr *cardRepo) GetByID(ctx context.Context, tx *gorm.DB, cardID int64) (*types.Card, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var card types.Card
	err := transaction.WithContext(ctx).First(&card, cardID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (cr *cardRepo) List(ctx context.Context, tx *gorm.DB, filter CardFilter) ([]*types.Card, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	query := transaction.WithContext(ctx).Model(&types.Card{})
	if filter.TopicID != nil {
		query = query.Where("topic_id = ?", *filter.TopicID)
	}
	if filter.CardType != nil {
		query = query.Where("card_type = ?", *filter.CardType)
	}

	// Non-nil so an empty result serializes as [] rather than null.
	results := make([]*types.Card, 0)
	if err := query.Order("id").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *cardRepo) Update(ctx context.Context, tx *gorm.DB, cardID int64, updates map[string]interface{}) (*types.Card, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	if len(updates) > 0 {
		if err := transaction.WithContext(ctx).
			Model(&types.Card{}).
			Where("id = ?", cardID).
			Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return cr.GetByID(ctx, transaction, cardID)
}

func (cr *cardRepo) Delete(ctx context.Context, tx *gorm.DB, cardID int64) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	res := transaction.WithContext(ctx).Delete(&types.Card{}, cardID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
