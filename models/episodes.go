package models

// Episode belongs to a show. The parent must exist when the episode is
// added; deleting a show later does not cascade to its episodes.
type Episode struct {
	ID              string `gorm:"primaryKey" json:"id"`
	ShowID          string `gorm:"index" json:"show_id"`
	SeasonNumber    int    `json:"season_number"`
	EpisodeNumber   int    `json:"episode_number"`
	Title           string `json:"title"`
	DurationMinutes int    `json:"duration_minutes"`
}

func (Episode) TableName() string {
	return "episodes"
}
