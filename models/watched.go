package models

// WatchedEpisode records that a user watched an episode. Ownership is
// transitive: the record belongs to whoever owns the referenced watchlist
// entry. UserID is stamped from that entry on insert so the per-user
// listing can filter without a join.
type WatchedEpisode struct {
	ID          string `gorm:"primaryKey" json:"id"`
	WatchlistID string `gorm:"index" json:"watchlist_id"`
	EpisodeID   string `json:"episode_id"`
	UserID      string `gorm:"index" json:"user_id"`
	WatchedAt   int64  `json:"watched_at"`
}

func (WatchedEpisode) TableName() string {
	return "watched_episodes"
}
