package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventlista/internal/helpers"
	"eventlista/internal/models"
	"eventlista/internal/services"
)

type ReactionRequest struct {
	Type models.ReactionType `json:"type" binding:"required"`
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}

func RecordView(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	if err := services.RecordEventView(gormDB, eventID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithInternalError(c, err, "Error while counting views.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "View counted.",
	})
}

func ReactToEvent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	var req ReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	likes, dislikes, err := services.ReactToEvent(gormDB, userID, eventID, req.Type)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidReaction):
			helpers.RespondWithError(c, http.StatusBadRequest, "Reaction type must be LIKE or DISLIKE.")
		case errors.Is(err, services.ErrAlreadyVoted):
			helpers.RespondWithError(c, http.StatusConflict, "You already voted for this.")
		case errors.Is(err, gorm.ErrRecordNotFound):
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		default:
			helpers.RespondWithInternalError(c, err, "Error trying to like/dislike event.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"likes":    likes,
		"dislikes": dislikes,
	})
}

func ReactToComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid comment ID.")
		return
	}

	var req ReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	if err := services.ReactToComment(gormDB, userID, commentID, req.Type); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidReaction):
			helpers.RespondWithError(c, http.StatusBadRequest, "Reaction type must be LIKE or DISLIKE.")
		case errors.Is(err, services.ErrAlreadyVoted):
			helpers.RespondWithError(c, http.StatusConflict, "You already voted for this comment.")
		case errors.Is(err, gorm.ErrRecordNotFound):
			helpers.RespondWithError(c, http.StatusNotFound, "Comment not found.")
		default:
			helpers.RespondWithInternalError(c, err, "Error trying to like/dislike comment.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
