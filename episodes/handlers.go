package episodes

import (
	"net/http"

	"github.com/SyedHasanNawaz/Show-Tracker-Backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler answers with soft {"Error": ...} payloads on a 200 status. The
// shows endpoints use hard status codes instead; the split is part of the
// wire contract and must not be unified.
type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

func (h *Handler) ListEpisodes(c *gin.Context) {
	var eps []models.Episode
	if err := h.DB.Find(&eps).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve episodes"})
		return
	}

	c.JSON(http.StatusOK, eps)
}

// AddEpisode inserts only if the parent show exists at add time. There is
// no ongoing foreign-key enforcement afterwards.
func (h *Handler) AddEpisode(c *gin.Context) {
	showID := c.Param("show_id")

	var episode models.Episode
	if err := c.ShouldBindJSON(&episode); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var show models.Show
	if err := h.DB.First(&show, "id = ?", showID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusOK, gin.H{"Error": "Episode not added"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	if err := h.DB.Create(&episode).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add episode"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"Message": "Episode added successfully"})
}

// ListForShow returns the episodes of a series. The checks run in a fixed
// order: show existence, then type, then emptiness.
func (h *Handler) ListForShow(c *gin.Context) {
	showID := c.Param("show_id")

	var show models.Show
	if err := h.DB.First(&show, "id = ?", showID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusOK, gin.H{"Error": "Show not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	if show.Type != "Series" {
		c.JSON(http.StatusOK, gin.H{"Error": "Not a series"})
		return
	}

	var eps []models.Episode
	if err := h.DB.Where("show_id = ?", showID).Find(&eps).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve episodes"})
		return
	}
	if len(eps) == 0 {
		c.JSON(http.StatusOK, gin.H{"Error": "Episodes not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"Episodes": eps})
}

func (h *Handler) UpdateEpisode(c *gin.Context) {
	episodeID := c.Param("episode_id")

	var updated models.Episode
	if err := c.ShouldBindJSON(&updated); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Episode
	if err := h.DB.First(&existing, "id = ?", episodeID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusOK, gin.H{"Error": "Episode not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	err := h.DB.Model(&models.Episode{}).Where("id = ?", episodeID).Updates(map[string]interface{}{
		"id":               updated.ID,
		"show_id":          updated.ShowID,
		"season_number":    updated.SeasonNumber,
		"episode_number":   updated.EpisodeNumber,
		"title":            updated.Title,
		"duration_minutes": updated.DurationMinutes,
	}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update episode"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"Message": "Episode updated successfully"})
}

func (h *Handler) DeleteEpisode(c *gin.Context) {
	episodeID := c.Param("episode_id")

	var existing models.Episode
	if err := h.DB.First(&existing, "id = ?", episodeID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusOK, gin.H{"Error": "Episode not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	if err := h.DB.Delete(&models.Episode{}, "id = ?", episodeID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete episode"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"Message": "Episode deleted successfully"})
}
