package user

import "time"

// User represents a registered account
type User struct {
	ID        string    `json:"id"`
	Pseudo    string    `json:"pseudo"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // bcrypt hash, never exposed in JSON
	CreatedAt time.Time `json:"createdAt"`
}
