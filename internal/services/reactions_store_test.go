package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"eventlista/internal/models"
)

func eventReactionRows(t *testing.T, db *gorm.DB, eventID uuid.UUID) []models.EventReaction {
	t.Helper()

	var rows []models.EventReaction
	require.NoError(t, db.Where("event_id = ?", eventID).Find(&rows).Error)
	return rows
}

func TestReactToEvent_FirstVote(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "voter@example.com")
	event := seedEvent(t, db, user)

	likes, dislikes, err := ReactToEvent(db, user.ID, event.ID, models.ReactionLike)
	require.NoError(t, err)
	assert.Equal(t, 1, likes)
	assert.Equal(t, 0, dislikes)

	rows := eventReactionRows(t, db, event.ID)
	require.Len(t, rows, 1)
	assert.Equal(t, models.ReactionLike, rows[0].Type)
}

func TestReactToEvent_SameTypeRejectedWithoutCounterChange(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "voter@example.com")
	event := seedEvent(t, db, user)

	_, _, err := ReactToEvent(db, user.ID, event.ID, models.ReactionLike)
	require.NoError(t, err)

	_, _, err = ReactToEvent(db, user.ID, event.ID, models.ReactionLike)
	assert.ErrorIs(t, err, ErrAlreadyVoted)

	reloaded := reloadEvent(t, db, event)
	assert.Equal(t, 1, reloaded.Likes)
	assert.Equal(t, 0, reloaded.Dislikes)
	assert.Len(t, eventReactionRows(t, db, event.ID), 1)
}

// Switching the vote moves one unit between the counters and rewrites
// the existing row instead of adding a second one.
func TestReactToEvent_LikeThenDislike(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "voter@example.com")
	event := seedEvent(t, db, user)

	_, _, err := ReactToEvent(db, user.ID, event.ID, models.ReactionLike)
	require.NoError(t, err)

	likes, dislikes, err := ReactToEvent(db, user.ID, event.ID, models.ReactionDislike)
	require.NoError(t, err)
	assert.Equal(t, 0, likes)
	assert.Equal(t, 1, dislikes)

	rows := eventReactionRows(t, db, event.ID)
	require.Len(t, rows, 1)
	assert.Equal(t, models.ReactionDislike, rows[0].Type)
}

// likes+dislikes must always equal the number of reaction rows.
func TestReactToEvent_CountersMatchRows(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "author@example.com")
	event := seedEvent(t, db, author)

	voters := []models.User{
		seedUser(t, db, "a@example.com"),
		seedUser(t, db, "b@example.com"),
		seedUser(t, db, "c@example.com"),
	}

	_, _, err := ReactToEvent(db, voters[0].ID, event.ID, models.ReactionLike)
	require.NoError(t, err)
	_, _, err = ReactToEvent(db, voters[1].ID, event.ID, models.ReactionDislike)
	require.NoError(t, err)
	_, _, err = ReactToEvent(db, voters[2].ID, event.ID, models.ReactionLike)
	require.NoError(t, err)
	// One voter changes their mind.
	_, _, err = ReactToEvent(db, voters[0].ID, event.ID, models.ReactionDislike)
	require.NoError(t, err)

	reloaded := reloadEvent(t, db, event)
	rows := eventReactionRows(t, db, event.ID)
	assert.Equal(t, len(rows), reloaded.Likes+reloaded.Dislikes)
	assert.Equal(t, 1, reloaded.Likes)
	assert.Equal(t, 2, reloaded.Dislikes)
}

func TestReactToEvent_UnknownEvent(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "voter@example.com")

	_, _, err := ReactToEvent(db, user.ID, uuid.New(), models.ReactionLike)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestReactToComment_FirstVoteIncrementsCounter(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "voter@example.com")
	event := seedEvent(t, db, user)
	comment := seedComment(t, db, event)

	require.NoError(t, ReactToComment(db, user.ID, comment.ID, models.ReactionLike))

	var reloaded models.Comment
	require.NoError(t, db.Where("id = ?", comment.ID).First(&reloaded).Error)
	assert.Equal(t, 1, reloaded.Likes)
	assert.Equal(t, 0, reloaded.Dislikes)
}

// Comments have no type-change path: the second vote is rejected even
// when it requests the opposite type, and the counters stay put.
func TestReactToComment_SecondVoteAlwaysRejected(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "voter@example.com")
	event := seedEvent(t, db, user)
	comment := seedComment(t, db, event)

	require.NoError(t, ReactToComment(db, user.ID, comment.ID, models.ReactionLike))

	assert.ErrorIs(t, ReactToComment(db, user.ID, comment.ID, models.ReactionLike), ErrAlreadyVoted)
	assert.ErrorIs(t, ReactToComment(db, user.ID, comment.ID, models.ReactionDislike), ErrAlreadyVoted)

	var reloaded models.Comment
	require.NoError(t, db.Where("id = ?", comment.ID).First(&reloaded).Error)
	assert.Equal(t, 1, reloaded.Likes)
	assert.Equal(t, 0, reloaded.Dislikes)

	var rows int64
	require.NoError(t, db.Model(&models.CommentReaction{}).Where("comment_id = ?", comment.ID).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestReactToComment_UnknownComment(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "voter@example.com")

	err := ReactToComment(db, user.ID, uuid.New(), models.ReactionLike)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
