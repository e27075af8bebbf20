package types

import "time"

// User identifies a member referenced by user-typed fields and note authors.
type User struct {
	UserID    string    `json:"id"` // UUID.
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
