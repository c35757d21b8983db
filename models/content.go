package models

import "time"

type LegalResource struct {
	ID        string    `bson:"id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Content   string    `bson:"content" json:"content"`
	Category  string    `bson:"category" json:"category"`
	Tags      []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type LegalNews struct {
	ID              string    `bson:"id" json:"id"`
	Title           string    `bson:"title" json:"title"`
	Content         string    `bson:"content" json:"content"`
	Category        string    `bson:"category" json:"category"`
	ImageURL        string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Source          string    `bson:"source,omitempty" json:"source,omitempty"`
	PublicationDate time.Time `bson:"publicationDate" json:"publicationDate"`
}
