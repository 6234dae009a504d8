package models

import "time"

const (
	MaxFlowerContentLen = 200
	FlowerFeedLimit     = 50
)

// Flower is a single short message planted in the shared garden.
type Flower struct {
	ID         string    `gorm:"primaryKey;size:36" bson:"_id" json:"_id"`
	Content    string    `gorm:"size:200;not null" bson:"content" json:"content"`
	FlowerType string    `gorm:"size:20;not null" bson:"flowerType" json:"flowerType"`
	SenderID   string    `gorm:"column:sender;size:36;index;not null" bson:"sender" json:"sender"`
	SenderName string    `gorm:"size:30;not null" bson:"senderName" json:"senderName"`
	Receiver   string    `gorm:"size:100;not null" bson:"receiver" json:"receiver"`
	CreatedAt  time.Time `gorm:"index" bson:"createdAt" json:"createdAt"`
}
