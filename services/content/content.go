package content

import (
	"context"

	contentRepo "legalassist/database/repository/content"
	"legalassist/models"
	"legalassist/utils"

	"go.uber.org/zap"
)

type ContentService interface {
	ListResources(ctx context.Context, category string) ([]models.LegalResource, error)
	GetResource(ctx context.Context, id string) (*models.LegalResource, error)
	ListNews(ctx context.Context, category string) ([]models.LegalNews, error)
	GetNews(ctx context.Context, id string) (*models.LegalNews, error)
}

type DefaultContentService struct {
	Repo contentRepo.ContentRepository
}

func (s *DefaultContentService) ListResources(ctx context.Context, category string) ([]models.LegalResource, error) {
	out, err := s.Repo.ListResources(ctx, category)
	if err != nil {
		utils.GetLogger().Error("ListResources: failed", zap.String("category", category), zap.Error(err))
		return nil, utils.PersistenceError("Failed to fetch legal resources", err)
	}
	return out, nil
}

func (s *DefaultContentService) GetResource(ctx context.Context, id string) (*models.LegalResource, error) {
	res, err := s.Repo.GetResource(ctx, id)
	if err != nil {
		utils.GetLogger().Error("GetResource: failed", zap.String("id", id), zap.Error(err))
		return nil, utils.PersistenceError("Failed to fetch legal resource", err)
	}
	if res == nil {
		return nil, utils.NotFoundError("Legal resource not found")
	}
	return res, nil
}

func (s *DefaultContentService) ListNews(ctx context.Context, category string) ([]models.LegalNews, error) {
	out, err := s.Repo.ListNews(ctx, category)
	if err != nil {
		utils.GetLogger().Error("ListNews: failed", zap.String("category", category), zap.Error(err))
		return nil, utils.PersistenceError("Failed to fetch legal news", err)
	}
	return out, nil
}

func (s *DefaultContentService) GetNews(ctx context.Context, id string) (*models.LegalNews, error) {
	n, err := s.Repo.GetNews(ctx, id)
	if err != nil {
		utils.GetLogger().Error("GetNews: failed", zap.String("id", id), zap.Error(err))
		return nil, utils.PersistenceError("Failed to fetch legal news", err)
	}
	if n == nil {
		return nil, utils.NotFoundError("Legal news item not found")
	}
	return n, nil
}
