package user

import (
	"context"
	"errors"
	"time"

	userRepo "legalassist/database/repository/user"
	"legalassist/models"
	"legalassist/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register creates the account and, in the same write, its lawyer or client profile.
func (s *DefaultUserService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	if err := validateRegistration(&req); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, utils.PersistenceError("Registration failed, please try again", err)
	}
	if existing != nil {
		return nil, utils.ConflictError("A user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, utils.PersistenceError("Registration failed, please try again", err)
	}

	username, err := s.uniqueUsername(ctx, req.FirstName, req.LastName)
	if err != nil {
		utils.GetLogger().Error("Register: failed to derive username", zap.Error(err))
		return nil, utils.PersistenceError("Registration failed, please try again", err)
	}

	now := time.Now()
	userObj := models.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Username:     username,
		UserType:     req.UserType,
		Phone:        req.Phone,
		Address:      req.Address,
		Bio:          req.Bio,
		CreatedAt:    now,
	}

	switch req.UserType {
	case models.UserTypeLawyer:
		profile := *req.Profile
		profile.CreatedAt = now
		userObj.LawyerProfile = &profile
	case models.UserTypeClient:
		userObj.ClientProfile = newClientProfile(req.ClientProfile, req.Phone, req.Address, now)
	}

	if err := s.Repo.Create(ctx, &userObj); err != nil {
		if errors.Is(err, userRepo.ErrDuplicate) {
			return nil, utils.ConflictError("A user with this email already exists")
		}
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, utils.PersistenceError("Registration failed, please try again", err)
	}

	return s.issueToken(&userObj)
}

func newClientProfile(in *models.ClientProfile, phone, address string, now time.Time) *models.ClientProfile {
	var profile models.ClientProfile
	if in != nil {
		profile = *in
	}
	if profile.Phone == "" {
		profile.Phone = phone
	}
	if profile.Address == "" {
		profile.Address = address
	}
	if profile.PreferredContactMethod == "" {
		profile.PreferredContactMethod = "email"
	}
	profile.CreatedAt = now
	return &profile
}

func (s *DefaultUserService) tokenTTL() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return 24 * time.Hour
}

func (s *DefaultUserService) issueToken(u *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, u.UserType, s.tokenTTL())
	if err != nil {
		utils.GetLogger().Error("issueToken: failed to generate auth token", zap.Error(err))
		return nil, utils.PersistenceError("Authentication failed, please try again", err)
	}
	return &models.AuthResponse{User: u, Token: token}, nil
}
