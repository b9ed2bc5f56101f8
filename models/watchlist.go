package models

// WatchlistEntry is owned by a user. UserID is always stamped from the
// authenticated identity on insert; a user_id in the request body is ignored.
// The key is (id, user_id): two users may reuse the same entry id, one user
// may not.
type WatchlistEntry struct {
	ID     string `gorm:"primaryKey" json:"id"`
	UserID string `gorm:"primaryKey" json:"user_id"`
	ShowID string `json:"show_id"`
	Status string `json:"status"`
	Rating int    `json:"rating"`
	Notes  string `json:"notes"`
}

func (WatchlistEntry) TableName() string {
	return "watchlist"
}
