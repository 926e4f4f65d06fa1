package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"eventlista/internal/helpers"
	"eventlista/internal/models"
)

type CommentRequest struct {
	AuthorName string `json:"author_name" binding:"required"`
	Text       string `json:"text" binding:"required"`
}

func CreateComment(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Fields author_name and text are required.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var event models.Event
	if err := gormDB.Select("id").Where("id = ?", c.Param("id")).First(&event).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithInternalError(c, err, "Error finding event.")
		return
	}

	comment := models.Comment{
		AuthorName: req.AuthorName,
		Text:       req.Text,
		EventID:    event.ID,
	}

	if err := gormDB.Create(&comment).Error; err != nil {
		helpers.RespondWithInternalError(c, err, "Failed to add comment.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"comment": comment,
	})
}
