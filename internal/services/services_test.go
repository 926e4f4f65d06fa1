package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"eventlista/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Tag{},
		&models.Event{},
		&models.EventTag{},
		&models.Comment{},
		&models.EventReaction{},
		&models.CommentReaction{},
		&models.EventView{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()

	user := models.User{
		FullName: "Test User",
		Email:    email,
		Password: "irrelevant",
		Role:     models.RoleEventCreator,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedEvent(t *testing.T, db *gorm.DB, author models.User) models.Event {
	t.Helper()

	category := models.Category{Name: "Music " + t.Name()}
	require.NoError(t, db.Create(&category).Error)

	event := models.Event{
		Title:       "Open Air Concert",
		Description: "A night of live music.",
		EventDate:   time.Now().Add(48 * time.Hour),
		Location:    "City Park",
		AuthorID:    author.ID,
		CategoryID:  category.ID,
	}
	require.NoError(t, db.Create(&event).Error)
	return event
}

func seedComment(t *testing.T, db *gorm.DB, event models.Event) models.Comment {
	t.Helper()

	comment := models.Comment{
		AuthorName: "Visitor",
		Text:       "Looking forward to this.",
		EventID:    event.ID,
	}
	require.NoError(t, db.Create(&comment).Error)
	return comment
}

func reloadEvent(t *testing.T, db *gorm.DB, event models.Event) models.Event {
	t.Helper()

	var reloaded models.Event
	require.NoError(t, db.Where("id = ?", event.ID).First(&reloaded).Error)
	return reloaded
}
