package lawyer

import (
	"context"

	userRepo "legalassist/database/repository/user"
	"legalassist/models"
)

type LawyerService interface {
	SearchLawyers(ctx context.Context, criteria models.SearchCriteria) ([]models.User, error)
	GetLawyerByID(ctx context.Context, id string) (*models.User, error)
	ExperienceLevels() []models.ExperienceBucket
}

// DefaultLawyerService is the production implementation.
type DefaultLawyerService struct {
	Repo userRepo.UserRepository
}
