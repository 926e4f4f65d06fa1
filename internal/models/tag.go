package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Tag struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"unique;not null" json:"name"`
	Events    []Event   `gorm:"many2many:event_tags;" json:"events,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (tag *Tag) BeforeCreate(tx *gorm.DB) (err error) {
	if tag.ID == uuid.Nil {
		tag.ID = uuid.New()
	}
	return
}

type EventTag struct {
	EventID   uuid.UUID `gorm:"type:uuid;not null;index" json:"event_id"`
	TagID     uuid.UUID `gorm:"type:uuid;not null;index" json:"tag_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (EventTag) TableName() string {
	return "event_tags"
}
