package models

import "time"

// Couplet is a short poem. AuthorName is a snapshot of the author's username
// taken at creation time and is not kept in sync afterwards.
type Couplet struct {
	ID         string    `gorm:"primaryKey;size:36" bson:"_id" json:"_id"`
	Content    string    `gorm:"type:text;not null" bson:"content" json:"content"`
	AuthorID   string    `gorm:"column:author;size:36;index;not null" bson:"author" json:"author"`
	AuthorName string    `gorm:"size:30;not null" bson:"authorName" json:"authorName"`
	IsPublic   bool      `gorm:"not null;index" bson:"isPublic" json:"isPublic"`
	Likes      []string  `gorm:"-" bson:"likes" json:"likes"`
	CreatedAt  time.Time `gorm:"index" bson:"createdAt" json:"createdAt"`
}

// Blog is a titled long-form post with the same ownership rules as Couplet.
type Blog struct {
	ID         string    `gorm:"primaryKey;size:36" bson:"_id" json:"_id"`
	Title      string    `gorm:"size:300;not null" bson:"title" json:"title"`
	Content    string    `gorm:"type:text;not null" bson:"content" json:"content"`
	AuthorID   string    `gorm:"column:author;size:36;index;not null" bson:"author" json:"author"`
	AuthorName string    `gorm:"size:30;not null" bson:"authorName" json:"authorName"`
	IsPublic   bool      `gorm:"not null;index" bson:"isPublic" json:"isPublic"`
	Likes      []string  `gorm:"-" bson:"likes" json:"likes"`
	CreatedAt  time.Time `gorm:"index" bson:"createdAt" json:"createdAt"`
}

// HasLike reports whether userID is in the like set.
func (c *Couplet) HasLike(userID string) bool {
	return containsString(c.Likes, userID)
}

// HasLike reports whether userID is in the like set.
func (b *Blog) HasLike(userID string) bool {
	return containsString(b.Likes, userID)
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
