package user

import (
	"context"
	"errors"
	"time"

	userRepo "legalassist/database/repository/user"
	"legalassist/models"
	"legalassist/utils"

	"go.uber.org/zap"
)

// CreateLawyerProfile attaches the one profile a lawyer may have.
func (s *DefaultUserService) CreateLawyerProfile(ctx context.Context, userID string, profile models.LawyerProfile) (*models.User, error) {
	u, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !u.IsLawyer() {
		return nil, utils.ForbiddenError("Only lawyers can create lawyer profiles")
	}
	if u.LawyerProfile != nil {
		return nil, utils.ConflictError("Lawyer profile already exists")
	}
	if err := validateLawyerProfile(&profile); err != nil {
		return nil, err
	}

	profile.CreatedAt = time.Now()
	if err := s.Repo.SetLawyerProfile(ctx, userID, &profile); err != nil {
		return nil, profileWriteError("CreateLawyerProfile", err)
	}
	u.LawyerProfile = &profile
	return u, nil
}

func (s *DefaultUserService) CreateClientProfile(ctx context.Context, userID string, profile models.ClientProfile) (*models.User, error) {
	u, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.UserType != models.UserTypeClient {
		return nil, utils.ForbiddenError("Only clients can create client profiles")
	}
	if u.ClientProfile != nil {
		return nil, utils.ConflictError("Client profile already exists")
	}

	created := newClientProfile(&profile, u.Phone, u.Address, time.Now())
	if err := s.Repo.SetClientProfile(ctx, userID, created); err != nil {
		return nil, profileWriteError("CreateClientProfile", err)
	}
	u.ClientProfile = created
	return u, nil
}

func profileWriteError(op string, err error) error {
	switch {
	case errors.Is(err, userRepo.ErrProfileExists):
		return utils.ConflictError("Profile already exists")
	case errors.Is(err, userRepo.ErrUserNotFound):
		return utils.NotFoundError("User not found")
	}
	utils.GetLogger().Error(op+": failed to save profile", zap.Error(err))
	return utils.PersistenceError("Failed to save profile", err)
}
