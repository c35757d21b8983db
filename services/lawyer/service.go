package lawyer

import (
	"context"

	"legalassist/models"
	"legalassist/monitoring"
	"legalassist/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SearchLawyers reads every lawyer once and filters in process. No match is an
// empty slice, not an error.
func (s *DefaultLawyerService) SearchLawyers(ctx context.Context, criteria models.SearchCriteria) ([]models.User, error) {
	lawyers, err := s.Repo.ListLawyers(ctx)
	if err != nil {
		utils.GetLogger().Error("SearchLawyers: failed to load lawyers", zap.Error(err))
		return nil, utils.PersistenceError("Failed to search lawyers", err)
	}

	result := Filter(lawyers, criteria)
	monitoring.LawyerSearchResults.Observe(float64(len(result)))
	utils.GetLogger().Debug("SearchLawyers",
		zap.String("specialization", criteria.Specialization),
		zap.String("location", criteria.Location),
		zap.String("experienceLevel", criteria.ExperienceLevel),
		zap.Int("matches", len(result)),
	)
	return result, nil
}

func (s *DefaultLawyerService) GetLawyerByID(ctx context.Context, id string) (*models.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.ValidationError("Invalid lawyer ID")
	}

	lawyer, err := s.Repo.GetLawyerByID(ctx, id)
	if err != nil {
		utils.GetLogger().Error("GetLawyerByID: lookup failed", zap.String("id", id), zap.Error(err))
		return nil, utils.PersistenceError("Failed to fetch lawyer", err)
	}
	if lawyer == nil {
		return nil, utils.NotFoundError("Lawyer not found")
	}
	return lawyer, nil
}

func (s *DefaultLawyerService) ExperienceLevels() []models.ExperienceBucket {
	return ExperienceBuckets()
}
