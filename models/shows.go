package models

// Show type is a free string; only "Series" carries special meaning
// (episode listing is restricted to it).
type Show struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
	ReleaseYear int    `json:"release_year"`
	Type        string `json:"type"`
}

func (Show) TableName() string {
	return "shows"
}
