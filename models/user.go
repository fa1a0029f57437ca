package models

import "time"

// User is an account used for authentication only. It holds no key material:
// AuthHash is derived on the client from the password with a separate
// derivation and hashed again by the server before storage.
type User struct {
	// UserID is the internal identifier. Not exposed via JSON.
	UserID int64 `json:"-"`

	// Login is the unique account login.
	Login string `json:"login"`

	// AuthHash is the client-derived authentication credential.
	AuthHash string `json:"auth_hash"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table associated with User.
func (u User) TableName() string {
	return "users"
}
