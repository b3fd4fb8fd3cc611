package testutil

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/yungbote/learncards-backend/internal/types"
)

func SeedTopic(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Topic {
	tb.Helper()
	t := &types.Topic{Name: name}
	if err := tx.WithContext(ctx).Create(t).Error; err != nil {
		tb.Fatalf("seed topic: %v", err)
	}
	return t
}

func SeedCard(tb testing.TB, ctx context.Context, tx *gorm.DB, topicID int64, cardType, content string) *types.Card {
	tb.Helper()
	c := &types.Card{
		TopicID:  topicID,
		CardType: cardType,
		Content:  content,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed card: %v", err)
	}
	return c
}
