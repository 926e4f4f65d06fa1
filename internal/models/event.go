package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Title       string          `gorm:"not null" json:"title"`
	Description string          `gorm:"not null" json:"description"`
	EventDate   time.Time       `gorm:"not null" json:"event_date"`
	Location    string          `gorm:"not null" json:"location"`
	MaxCapacity *int            `json:"max_capacity,omitempty"`
	Views       int             `gorm:"not null;default:0" json:"views"`
	Likes       int             `gorm:"not null;default:0" json:"likes"`
	Dislikes    int             `gorm:"not null;default:0" json:"dislikes"`
	AuthorID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"author_id"`
	Author      *User           `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`
	Category    *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Tags        []Tag           `gorm:"many2many:event_tags;" json:"tags,omitempty"`
	Comments    []Comment       `gorm:"foreignKey:EventID" json:"comments,omitempty"`
	Reactions   []EventReaction `gorm:"foreignKey:EventID" json:"reactions,omitempty"`
	EventViews  []EventView     `gorm:"foreignKey:EventID" json:"event_views,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (event *Event) BeforeCreate(tx *gorm.DB) (err error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return
}
