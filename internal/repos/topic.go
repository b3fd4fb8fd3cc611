package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yungbote/learncards-backend/internal/logger"
	"github.com/yungbote/learncards-backend/internal/types"
)

type TopicRepo interface {
	Create(ctx context.Context, tx *gorm.DB, topic *types.Topic) (*types.Topic, error)
	GetByID(ctx context.Context, tx *gorm.DB, topicID int64) (*types.Topic, error)
	GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Topic, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Topic, error)
	NameExists(ctx context.Context, tx *gorm.DB, name string) (bool, error)
}

type topicRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTopicRepo(db *gorm.DB, baseLog *logger.Logger) TopicRepo {
	return &topicRepo{db: db, log: baseLog.With("repo", "TopicRepo")}
}

func (tr *topicRepo) Create(ctx context.Context, tx *gorm.DB, topic *types.Topic) (*types.Topic, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	if err := transaction.WithContext(ctx).Create(topic).Error; err != nil {
		return nil, err
	}
	return topic, nil
}

func (tr *topicRepo) GetByID(ctx context.Context, tx *gorm.DB, topicID int64) (*types.Topic, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var topic types.Topic
	err := transaction.WithContext(ctx).First(&topic, topicID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

func (tr *topicRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Topic, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var topic types.Topic
	err := transaction.WithContext(ctx).
		Where("name = ?", name).
		First(&topic).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

func (tr *topicRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Topic, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	// Non-nil so an empty table serializes as [] rather than null.
	results := make([]*types.Topic, 0)
	if err := transaction.WithContext(ctx).
		Order("id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (tr *topicRepo) NameExists(ctx context.Context, tx *gorm.DB, name string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Topic{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
