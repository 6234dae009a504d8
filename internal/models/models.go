// Package models defines the documents stored by the application and the
// errors returned across layers.
package models

import (
	"time"

	"github.com/google/uuid"
)

// NewID returns a fresh document identifier shared by every store backend.
func NewID() string {
	return uuid.NewString()
}

// Column widths enforced before writes; the relational backend rejects longer values.
const (
	MaxTitleLen      = 300
	MaxReceiverLen   = 100
	MaxSpotifyURLLen = 500
)

// Like target kinds.
const (
	LikeTargetCouplet = "couplet"
	LikeTargetBlog    = "blog"
)

// Like records one user's membership in a document's like set on the
// relational backend. The composite key makes membership unique.
type Like struct {
	TargetType string    `gorm:"primaryKey;size:16"`
	TargetID   string    `gorm:"primaryKey;size:36"`
	UserID     string    `gorm:"primaryKey;size:36;index"`
	CreatedAt  time.Time
}

// DeleteConfirmation is the body returned by successful deletions.
type DeleteConfirmation struct {
	Message string `json:"message"`
}
