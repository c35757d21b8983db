package models

import "time"

// Message is a direct message between two users.
type Message struct {
	ID         string    `bson:"id" json:"id"`
	SenderID   string    `bson:"senderId" json:"senderId"`
	ReceiverID string    `bson:"receiverId" json:"receiverId"`
	Content    string    `bson:"content" json:"content"`
	IsRead     bool      `bson:"isRead" json:"isRead"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
