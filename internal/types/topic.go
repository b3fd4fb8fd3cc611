package types

import (
	"time"
)

type Topic struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null;column:name" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`

	Cards []*Card `gorm:"foreignKey:TopicID" json:"-"`
}

func (Topic) TableName() string {
	return "topics"
}
