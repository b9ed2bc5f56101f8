package shows

import (
	"net/http"

	"github.com/SyedHasanNawaz/Show-Tracker-Backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

func (h *Handler) AddShow(c *gin.Context) {
	var show models.Show
	if err := c.ShouldBindJSON(&show); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.DB.Create(&show).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add show"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Show added successfully"})
}

func (h *Handler) ListShows(c *gin.Context) {
	var shows []models.Show
	if err := h.DB.Find(&shows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve shows"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"shows": shows})
}

func (h *Handler) GetShow(c *gin.Context) {
	showID := c.Param("show_id")

	var show models.Show
	if err := h.DB.First(&show, "id = ?", showID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Show not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	c.JSON(http.StatusOK, show)
}

// UpdateShow is a full replace: every field of the stored document is
// overwritten, including the id supplied in the body.
func (h *Handler) UpdateShow(c *gin.Context) {
	showID := c.Param("show_id")

	var updated models.Show
	if err := c.ShouldBindJSON(&updated); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.DB.Model(&models.Show{}).Where("id = ?", showID).Updates(map[string]interface{}{
		"id":           updated.ID,
		"title":        updated.Title,
		"description":  updated.Description,
		"genre":        updated.Genre,
		"release_year": updated.ReleaseYear,
		"type":         updated.Type,
	})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update show"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Show not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Show updated successfully"})
}

func (h *Handler) DeleteShow(c *gin.Context) {
	showID := c.Param("show_id")

	result := h.DB.Delete(&models.Show{}, "id = ?", showID)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete show"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Show not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Show deleted successfully"})
}
