package contentRepo

import (
	"context"

	"legalassist/models"
)

// ContentRepository serves legal resources and news. An empty category lists everything.
type ContentRepository interface {
	ListResources(ctx context.Context, category string) ([]models.LegalResource, error)
	GetResource(ctx context.Context, id string) (*models.LegalResource, error)
	CreateResource(ctx context.Context, res *models.LegalResource) error
	ResourceTitleExists(ctx context.Context, title string) (bool, error)

	ListNews(ctx context.Context, category string) ([]models.LegalNews, error)
	GetNews(ctx context.Context, id string) (*models.LegalNews, error)
	CreateNews(ctx context.Context, news *models.LegalNews) error
	NewsTitleExists(ctx context.Context, title string) (bool, error)
}
