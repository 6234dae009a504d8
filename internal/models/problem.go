package models

import "time"

// Problem is an anonymous confession that others answer ("solace").
type Problem struct {
	ID         string    `gorm:"primaryKey;size:36" bson:"_id" json:"_id"`
	Title      string    `gorm:"size:300;not null" bson:"title" json:"title"`
	Content    string    `gorm:"type:text;not null" bson:"content" json:"content"`
	AuthorID   string    `gorm:"column:author;size:36;index;not null" bson:"author" json:"author"`
	AuthorName string    `gorm:"size:30;not null" bson:"authorName" json:"authorName"`
	Answers    []Answer  `gorm:"foreignKey:ProblemID;constraint:OnDelete:CASCADE" bson:"answers" json:"answers"`
	CreatedAt  time.Time `gorm:"index" bson:"createdAt" json:"createdAt"`
}

// Answer is owned by exactly one Problem. Position keeps insertion order on
// the relational backend; the document backend relies on array order.
type Answer struct {
	ID         string    `gorm:"primaryKey;size:36" bson:"_id" json:"_id"`
	ProblemID  string    `gorm:"size:36;index;not null" bson:"-" json:"-"`
	Position   int       `gorm:"not null" bson:"-" json:"-"`
	Content    string    `gorm:"type:text;not null" bson:"content" json:"content"`
	AuthorID   string    `gorm:"column:author;size:36;not null" bson:"author" json:"author"`
	AuthorName string    `gorm:"size:30;not null" bson:"authorName" json:"authorName"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// FindAnswer returns the answer with the given ID, or nil.
func (p *Problem) FindAnswer(answerID string) *Answer {
	for i := range p.Answers {
		if p.Answers[i].ID == answerID {
			return &p.Answers[i]
		}
	}
	return nil
}
