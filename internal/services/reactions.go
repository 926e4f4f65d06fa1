package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventlista/internal/models"
)

var (
	ErrAlreadyVoted    = errors.New("already voted")
	ErrInvalidReaction = errors.New("invalid reaction type")
)

// ReactionPlan is the outcome of one reaction state transition: whether
// to create a new row or switch an existing one, and the counter deltas
// that must land in the same transaction as the row mutation.
type ReactionPlan struct {
	Create   bool
	Switch   bool
	Likes    int
	Dislikes int
}

// PlanEventReaction runs the per-(user,event) state machine:
// {none, LIKE, DISLIKE}. Resubmitting the current type is rejected,
// switching type moves one unit between the counters, and there is no
// transition back to none.
func PlanEventReaction(existing *models.ReactionType, requested models.ReactionType) (ReactionPlan, error) {
	if !requested.Valid() {
		return ReactionPlan{}, ErrInvalidReaction
	}

	if existing == nil {
		plan := ReactionPlan{Create: true}
		if requested == models.ReactionLike {
			plan.Likes = 1
		} else {
			plan.Dislikes = 1
		}
		return plan, nil
	}

	if *existing == requested {
		return ReactionPlan{}, ErrAlreadyVoted
	}

	plan := ReactionPlan{Switch: true}
	if requested == models.ReactionLike {
		plan.Likes = 1
		plan.Dislikes = -1
	} else {
		plan.Likes = -1
		plan.Dislikes = 1
	}
	return plan, nil
}

// PlanCommentReaction runs the simpler per-(user,comment) machine:
// any existing reaction blocks further votes, whatever type they carry.
func PlanCommentReaction(hasExisting bool, requested models.ReactionType) (ReactionPlan, error) {
	if !requested.Valid() {
		return ReactionPlan{}, ErrInvalidReaction
	}
	if hasExisting {
		return ReactionPlan{}, ErrAlreadyVoted
	}

	plan := ReactionPlan{Create: true}
	if requested == models.ReactionLike {
		plan.Likes = 1
	} else {
		plan.Dislikes = 1
	}
	return plan, nil
}

func counterUpdates(plan ReactionPlan) map[string]interface{} {
	updates := map[string]interface{}{}
	if plan.Likes != 0 {
		updates["likes"] = gorm.Expr("likes + ?", plan.Likes)
	}
	if plan.Dislikes != 0 {
		updates["dislikes"] = gorm.Expr("dislikes + ?", plan.Dislikes)
	}
	return updates
}

// ReactToEvent applies one event reaction transition. The reaction row
// and the aggregate counters change in a single transaction, so
// likes+dislikes always matches the reaction rows underneath. Returns
// the updated counters.
func ReactToEvent(db *gorm.DB, userID, eventID uuid.UUID, requested models.ReactionType) (likes, dislikes int, err error) {
	err = db.Transaction(func(tx *gorm.DB) error {
		var event models.Event
		if err := tx.Select("id").Where("id = ?", eventID).First(&event).Error; err != nil {
			return err
		}

		var existingType *models.ReactionType
		var existing models.EventReaction
		result := tx.Where("user_id = ? AND event_id = ?", userID, eventID).First(&existing)
		if result.Error == nil {
			existingType = &existing.Type
		} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		plan, err := PlanEventReaction(existingType, requested)
		if err != nil {
			return err
		}

		if plan.Create {
			reaction := models.EventReaction{UserID: userID, EventID: eventID, Type: requested}
			if err := tx.Create(&reaction).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Model(&existing).Update("type", requested).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&models.Event{}).Where("id = ?", eventID).Updates(counterUpdates(plan)).Error; err != nil {
			return err
		}

		var updated models.Event
		if err := tx.Select("likes", "dislikes").Where("id = ?", eventID).First(&updated).Error; err != nil {
			return err
		}
		likes = updated.Likes
		dislikes = updated.Dislikes
		return nil
	})
	return likes, dislikes, err
}

// ReactToComment applies one comment reaction. A second vote from the
// same user is rejected regardless of type; there is no type-change
// path for comments.
func ReactToComment(db *gorm.DB, userID, commentID uuid.UUID, requested models.ReactionType) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		if err := tx.Select("id").Where("id = ?", commentID).First(&comment).Error; err != nil {
			return err
		}

		var existing models.CommentReaction
		result := tx.Where("user_id = ? AND comment_id = ?", userID, commentID).First(&existing)
		hasExisting := result.Error == nil
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		plan, err := PlanCommentReaction(hasExisting, requested)
		if err != nil {
			return err
		}

		reaction := models.CommentReaction{UserID: userID, CommentID: commentID, Type: requested}
		if err := tx.Create(&reaction).Error; err != nil {
			return err
		}

		return tx.Model(&models.Comment{}).Where("id = ?", commentID).Updates(counterUpdates(plan)).Error
	})
}
