package models

import "time"

type Document struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"userId" json:"userId"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	FileURL     string    `bson:"fileUrl" json:"fileUrl"`
	FileType    string    `bson:"fileType" json:"fileType"`
	FileSize    int64     `bson:"fileSize" json:"fileSize"`
	StorageID   string    `bson:"storageId,omitempty" json:"-"`
	IsShared    bool      `bson:"isShared" json:"isShared"`
	SharedWith  []string  `bson:"sharedWith,omitempty" json:"sharedWith,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// OwnedBy reports whether userID created the document.
func (d *Document) OwnedBy(userID string) bool { return d.UserID == userID }
