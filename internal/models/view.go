package models

import (
	"time"

	"github.com/google/uuid"
)

// EventView is a dedup marker: its existence means the user has already
// been counted towards the event's views total.
type EventView struct {
	EventID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_event_view_once" json:"event_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_event_view_once" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (EventView) TableName() string {
	return "event_views"
}
