package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"eventlista/internal/models"
)

// RecordEventView counts a view at most once per (event, user) pair.
// The dedup marker insert and the counter increment run in one
// transaction: only the insert that actually created the marker bumps
// the aggregate, so concurrent first views cannot double count and
// revisits are no-ops.
func RecordEventView(db *gorm.DB, eventID, userID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var event models.Event
		if err := tx.Select("id").Where("id = ?", eventID).First(&event).Error; err != nil {
			return err
		}

		marker := models.EventView{EventID: eventID, UserID: userID}
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&marker)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		return tx.Model(&models.Event{}).Where("id = ?", eventID).
			Update("views", gorm.Expr("views + 1")).Error
	})
}
