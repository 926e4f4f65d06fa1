package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReactionType string

const (
	ReactionLike    ReactionType = "LIKE"
	ReactionDislike ReactionType = "DISLIKE"
)

func (t ReactionType) Valid() bool {
	return t == ReactionLike || t == ReactionDislike
}

// EventReaction holds one vote per user per event. The combination of
// UserID and EventID must be unique.
type EventReaction struct {
	ID        uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_user_event_reaction" json:"user_id"`
	EventID   uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_user_event_reaction" json:"event_id"`
	Type      ReactionType `gorm:"type:varchar(10);not null" json:"type"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func (reaction *EventReaction) BeforeCreate(tx *gorm.DB) (err error) {
	if reaction.ID == uuid.Nil {
		reaction.ID = uuid.New()
	}
	return
}

// CommentReaction holds one vote per user per comment. Unlike event
// reactions it never changes type once written.
type CommentReaction struct {
	ID        uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_user_comment_reaction" json:"user_id"`
	CommentID uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_user_comment_reaction" json:"comment_id"`
	Type      ReactionType `gorm:"type:varchar(10);not null" json:"type"`
	CreatedAt time.Time    `json:"created_at"`
}

func (reaction *CommentReaction) BeforeCreate(tx *gorm.DB) (err error) {
	if reaction.ID == uuid.Nil {
		reaction.ID = uuid.New()
	}
	return
}
