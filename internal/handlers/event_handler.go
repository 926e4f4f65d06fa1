package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventlista/internal/helpers"
	"eventlista/internal/models"
)

type EventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	EventDate   string `json:"event_date" binding:"required"`
	Location    string `json:"location" binding:"required"`
	MaxCapacity *int   `json:"max_capacity"`
	CategoryID  string `json:"category_id" binding:"required,uuid"`
	Tags        string `json:"tags"`
}

func splitTags(raw string) []string {
	var names []string
	for _, part := range strings.Split(raw, ",") {
		name := strings.TrimSpace(part)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

func upsertTags(gormDB *gorm.DB, raw string) ([]models.Tag, error) {
	var tags []models.Tag
	for _, name := range splitTags(raw) {
		var tag models.Tag
		if err := gormDB.Where("name = ?", name).FirstOrCreate(&tag, models.Tag{Name: name}).Error; err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func CreateEvent(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event date format.")
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var category models.Category
	if err := gormDB.Where("id = ?", req.CategoryID).First(&category).Error; err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid category.")
		return
	}

	eventTags, err := upsertTags(gormDB, req.Tags)
	if err != nil {
		helpers.RespondWithInternalError(c, err, "Error processing tags.")
		return
	}

	event := models.Event{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		EventDate:   eventDate,
		Location:    req.Location,
		MaxCapacity: req.MaxCapacity,
		AuthorID:    userID.(uuid.UUID),
		CategoryID:  category.ID,
		Tags:        eventTags,
	}

	if err := gormDB.Create(&event).Error; err != nil {
		helpers.RespondWithInternalError(c, err, "Failed to create event.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Event created successfully.",
		"event_id": event.ID,
	})
}

func GetEvent(c *gin.Context) {
	eventID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var event models.Event
	err := gormDB.Preload("Author").Preload("Category").Preload("Tags").
		Preload("Comments").Preload("Reactions").Preload("EventViews").
		Where("id = ?", eventID).First(&event).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithInternalError(c, err, "Error retrieving event.")
		return
	}

	c.JSON(http.StatusOK, event)
}

func ListEvents(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	page := c.DefaultQuery("page", "1")
	limit := c.DefaultQuery("limit", "10")

	pageNum, err := helpers.StringToInt(page)
	if err != nil || pageNum < 1 {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid page number.")
		return
	}

	limitNum, err := helpers.StringToInt(limit)
	if err != nil || limitNum < 1 {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid limit.")
		return
	}

	query := gormDB.Model(&models.Event{})

	var totalCount int64
	query.Count(&totalCount)

	var events []models.Event
	err = query.Preload("Author").Preload("Category").Preload("Tags").
		Offset(helpers.Offset(pageNum, limitNum)).Limit(limitNum).
		Order("created_at DESC").Find(&events).Error
	if err != nil {
		helpers.RespondWithInternalError(c, err, "Error retrieving events.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"current_page":   pageNum,
		"total_pages":    helpers.TotalPages(totalCount, limitNum),
		"total_items":    totalCount,
		"items_per_page": limitNum,
		"data":           events,
	})
}

func SearchEvents(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	searchQuery := c.Query("query")
	page := c.DefaultQuery("page", "1")
	limit := c.DefaultQuery("limit", "10")

	pageNum, err := helpers.StringToInt(page)
	if err != nil || pageNum < 1 {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid page number.")
		return
	}

	limitNum, err := helpers.StringToInt(limit)
	if err != nil || limitNum < 1 {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid limit.")
		return
	}

	// Empty query matches everything.
	pattern := "%" + searchQuery + "%"
	query := gormDB.Model(&models.Event{}).
		Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)

	var totalCount int64
	query.Count(&totalCount)

	var events []models.Event
	err = query.Preload("Author").Preload("Category").Preload("Tags").
		Offset(helpers.Offset(pageNum, limitNum)).Limit(limitNum).
		Order("created_at DESC").Find(&events).Error
	if err != nil {
		helpers.RespondWithInternalError(c, err, "Error retrieving events.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":        events,
		"total":       totalCount,
		"page":        pageNum,
		"total_pages": helpers.TotalPages(totalCount, limitNum),
	})
}

func MostVisitedEvents(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	cutoff := time.Now().AddDate(0, 0, -30)
	viewed := gormDB.Model(&models.EventView{}).Select("event_id").Where("created_at >= ?", cutoff)

	var events []models.Event
	err := gormDB.Preload("Category").Where("id IN (?)", viewed).
		Order("views DESC").Limit(10).Find(&events).Error
	if err != nil {
		helpers.RespondWithInternalError(c, err, "Error retrieving events.")
		return
	}

	c.JSON(http.StatusOK, events)
}

func TopReactedEvents(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var events []models.Event
	err := gormDB.Preload("Author").Preload("Category").
		Order("likes + dislikes DESC").Limit(3).Find(&events).Error
	if err != nil {
		helpers.RespondWithInternalError(c, err, "Error retrieving events.")
		return
	}

	c.JSON(http.StatusOK, events)
}

func RelatedEvents(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	tagNames := splitTags(c.Query("tags"))
	if len(tagNames) == 0 {
		c.JSON(http.StatusOK, []models.Event{})
		return
	}

	tagged := gormDB.Model(&models.EventTag{}).Select("event_tags.event_id").
		Joins("JOIN tags ON tags.id = event_tags.tag_id").
		Where("tags.name IN ?", tagNames)

	query := gormDB.Preload("Tags").Where("id IN (?)", tagged)
	if excludeID := c.Query("exclude_id"); excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var events []models.Event
	if err := query.Order("created_at DESC").Limit(3).Find(&events).Error; err != nil {
		helpers.RespondWithInternalError(c, err, "Error retrieving events.")
		return
	}

	c.JSON(http.StatusOK, events)
}

func EventsByTag(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	tagged := gormDB.Model(&models.EventTag{}).Select("event_tags.event_id").
		Joins("JOIN tags ON tags.id = event_tags.tag_id").
		Where("tags.name = ?", c.Param("name"))

	var events []models.Event
	err := gormDB.Preload("Author").Preload("Category").Preload("Tags").
		Where("id IN (?)", tagged).Order("created_at DESC").Find(&events).Error
	if err != nil {
		helpers.RespondWithInternalError(c, err, "Error retrieving events.")
		return
	}

	c.JSON(http.StatusOK, events)
}

func canEditEvent(c *gin.Context, event *models.Event) bool {
	userID, exists := c.Get("user_id")
	if !exists {
		return false
	}
	if event.AuthorID == userID.(uuid.UUID) {
		return true
	}
	role, _ := c.Get("role")
	return role == models.RoleAdmin
}

func UpdateEvent(c *gin.Context) {
	eventID := c.Param("id")

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event date format.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var event models.Event
	if err := gormDB.Where("id = ?", eventID).First(&event).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithInternalError(c, err, "Error finding event.")
		return
	}

	if !canEditEvent(c, &event) {
		helpers.RespondWithError(c, http.StatusForbidden, "You don't have permission to update this event.")
		return
	}

	var category models.Category
	if err := gormDB.Where("id = ?", req.CategoryID).First(&category).Error; err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid category.")
		return
	}

	updatedTags, err := upsertTags(gormDB, req.Tags)
	if err != nil {
		helpers.RespondWithInternalError(c, err, "Error processing tags.")
		return
	}

	event.Title = req.Title
	event.Description = req.Description
	event.EventDate = eventDate
	event.Location = req.Location
	event.MaxCapacity = req.MaxCapacity
	event.CategoryID = category.ID

	// The event row and its tag set change together or not at all.
	err = gormDB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&event).Error; err != nil {
			return err
		}
		return tx.Model(&event).Association("Tags").Replace(updatedTags)
	})
	if err != nil {
		helpers.RespondWithInternalError(c, err, "Failed to update event.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event updated successfully.",
		"event":   event,
	})
}

func DeleteEvent(c *gin.Context) {
	eventID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var event models.Event
	if err := gormDB.Where("id = ?", eventID).First(&event).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithInternalError(c, err, "Error finding event.")
		return
	}

	if !canEditEvent(c, &event) {
		helpers.RespondWithError(c, http.StatusForbidden, "You don't have permission to delete this event.")
		return
	}

	// Dependent rows and the event go together or not at all.
	err := gormDB.Transaction(func(tx *gorm.DB) error {
		eventComments := tx.Model(&models.Comment{}).Select("id").Where("event_id = ?", event.ID)
		if err := tx.Where("comment_id IN (?)", eventComments).Delete(&models.CommentReaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", event.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", event.ID).Delete(&models.EventTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", event.ID).Delete(&models.EventView{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", event.ID).Delete(&models.EventReaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&event).Error
	})
	if err != nil {
		helpers.RespondWithInternalError(c, err, "Failed to delete event.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event deleted successfully.",
	})
}
