package watchlist

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/SyedHasanNawaz/Show-Tracker-Backend/models"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type Handler struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewHandler(db *gorm.DB, rdb *redis.Client) *Handler {
	return &Handler{DB: db, Redis: rdb}
}

type EntryAddedMessage struct {
	EntryID string `json:"entry_id"`
	UserID  string `json:"user_id"`
	ShowID  string `json:"show_id"`
}

// Add inserts a watchlist entry for the authenticated user. The owner is
// always the resolved identity; any user_id in the body is overwritten.
func (h *Handler) Add(c *gin.Context) {
	userID := c.GetString("user_id")

	var entry models.WatchlistEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.WatchlistEntry
	err := h.DB.First(&existing, "id = ? AND user_id = ?", entry.ID, userID).Error
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"Error": "Show already in watchlist"})
		return
	}
	if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	entry.UserID = userID
	if err := h.DB.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to watchlist"})
		return
	}

	h.publish(c, "watchlist_added", EntryAddedMessage{
		EntryID: entry.ID,
		UserID:  entry.UserID,
		ShowID:  entry.ShowID,
	})

	c.JSON(http.StatusOK, gin.H{"Message": "Show added to watchlist"})
}

// List returns every entry for the given user id. The route carries no
// bearer requirement by default; see REQUIRE_AUTH_ON_LISTS.
func (h *Handler) List(c *gin.Context) {
	userID := c.Param("user_id")

	var entries []models.WatchlistEntry
	if err := h.DB.Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve watchlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"watchlist": entries})
}

// Update replaces an entry the authenticated user owns. An entry that is
// missing and an entry owned by someone else produce the same answer, so
// existence is not leaked.
func (h *Handler) Update(c *gin.Context) {
	watchlistID := c.Param("watchlist_id")
	userID := c.GetString("user_id")

	var updated models.WatchlistEntry
	if err := c.ShouldBindJSON(&updated); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.WatchlistEntry
	if err := h.DB.First(&existing, "id = ? AND user_id = ?", watchlistID, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusOK, gin.H{"Error": "Unauthorized access to watchlist"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	err := h.DB.Model(&models.WatchlistEntry{}).Where("id = ? AND user_id = ?", watchlistID, userID).Updates(map[string]interface{}{
		"id":      updated.ID,
		"user_id": updated.UserID,
		"show_id": updated.ShowID,
		"status":  updated.Status,
		"rating":  updated.Rating,
		"notes":   updated.Notes,
	}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update watchlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"Message": "Watchlist entry updated"})
}

// Remove deletes an owned entry. The ownership check and the delete are
// separate phases: ownership failure is the soft unauthorized payload, a
// delete that removed nothing is a hard 404.
func (h *Handler) Remove(c *gin.Context) {
	watchlistID := c.Param("watchlist_id")
	userID := c.GetString("user_id")

	var existing models.WatchlistEntry
	if err := h.DB.First(&existing, "id = ? AND user_id = ?", watchlistID, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusOK, gin.H{"Error": "Unauthorized access to watchlist"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	result := h.DB.Delete(&models.WatchlistEntry{}, "id = ? AND user_id = ?", watchlistID, userID)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from watchlist"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Watchlist entry not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"Message": "Show removed from watchlist"})
}

func (h *Handler) publish(c *gin.Context, channel string, message interface{}) {
	if h.Redis == nil {
		return
	}
	payload, err := json.Marshal(message)
	if err != nil {
		log.Printf("Error marshalling json: %v", err)
		return
	}
	if err := h.Redis.Publish(c.Request.Context(), channel, payload).Err(); err != nil {
		log.Printf("Error publishing to redis: %v", err)
	}
}
