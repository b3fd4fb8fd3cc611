package types

import (
	"time"
)

// The closed set of card formats the service will generate and store.
// Every handler that accepts or filters on a card_type validates against
// this set; nothing else ever reaches the store.
const (
	CardTypeFlashcard = "flashcard"
	CardTypeSummary   = "summary"
	CardTypeQuiz      = "quiz"
	CardTypeTask      = "task"
	CardTypeUsecase   = "usecase"
	CardTypeMindmap   = "mindmap"
)

func AllowedCardTypes() []string {
	return []string{
		CardTypeFlashcard,
		CardTypeSummary,
		CardTypeQuiz,
		CardTypeTask,
		CardTypeUsecase,
		CardTypeMindmap,
	}
}

func IsValidCardType(t string) bool {
	switch t {
	case CardTypeFlashcard, CardTypeSummary, CardTypeQuiz,
		CardTypeTask, CardTypeUsecase, CardTypeMindmap:
		return true
	default:
		return false
	}
}

type Card struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	TopicID   int64     `gorm:"not null;index;column:topic_id" json:"topic_id"`
	CardType  string    `gorm:"not null;column:card_type" json:"card_type"`
	Content   string    `gorm:"not null;type:text;column:content" json:"content"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Card) TableName() string {
	return "cards"
}
