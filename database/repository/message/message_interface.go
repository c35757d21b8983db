package messageRepo

import (
	"context"

	"legalassist/models"
)

// MessageRepository stores direct messages between users.
type MessageRepository interface {
	Create(ctx context.Context, msg *models.Message) error
	GetByID(ctx context.Context, id string) (*models.Message, error)
	// ListConversation returns messages exchanged between a and b, oldest first.
	ListConversation(ctx context.Context, a, b string) ([]models.Message, error)
	MarkRead(ctx context.Context, id string) error
	CountUnread(ctx context.Context, receiverID string) (int64, error)
}
