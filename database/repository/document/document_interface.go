package documentRepo

import (
	"context"

	"legalassist/models"
)

// DocumentRepository stores document metadata. Lookups return (nil, nil) when
// nothing matches.
type DocumentRepository interface {
	Create(ctx context.Context, doc *models.Document) error
	GetByID(ctx context.Context, id string) (*models.Document, error)
	ListByUser(ctx context.Context, userID string) ([]models.Document, error)
	ListSharedWith(ctx context.Context, userID string) ([]models.Document, error)
	Share(ctx context.Context, id string, userIDs []string) (*models.Document, error)
	Delete(ctx context.Context, id string) error
}
