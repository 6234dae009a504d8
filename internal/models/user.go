package models

import "time"

// User is a registered account. Password holds the bcrypt hash and is never
// serialized to clients.
type User struct {
	ID        string    `gorm:"primaryKey;size:36" bson:"_id" json:"_id"`
	Username  string    `gorm:"uniqueIndex;size:30;not null" bson:"username" json:"username"`
	Email     string    `gorm:"uniqueIndex;size:254;not null" bson:"email" json:"email"`
	Password  string    `gorm:"not null" bson:"password" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CachedUser is the subset of User kept in the identity cache.
type CachedUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// AuthResponse is the flat user object plus token returned by register and login.
type AuthResponse struct {
	ID        string    `json:"_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	Token     string    `json:"token"`
}
