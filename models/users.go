package models

// User ids are assigned by the caller, not generated server-side.
// Password holds the bcrypt hash; the plaintext is never stored.
type User struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Username string `gorm:"index" json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}
