package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Comment struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	AuthorName string    `gorm:"not null" json:"author_name"`
	Text       string    `gorm:"not null" json:"text"`
	Likes      int       `gorm:"not null;default:0" json:"likes"`
	Dislikes   int       `gorm:"not null;default:0" json:"dislikes"`
	EventID    uuid.UUID `gorm:"type:uuid;not null;index" json:"event_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (comment *Comment) BeforeCreate(tx *gorm.DB) (err error) {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	return
}
