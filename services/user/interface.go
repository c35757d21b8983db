package user

import (
	"context"
	"time"

	tokenRepo "legalassist/database/repository/token"
	userRepo "legalassist/database/repository/user"
	"legalassist/models"
)

type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	CreateLawyerProfile(ctx context.Context, userID string, profile models.LawyerProfile) (*models.User, error)
	CreateClientProfile(ctx context.Context, userID string, profile models.ClientProfile) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Tokens   tokenRepo.RevocationStore
	TokenTTL time.Duration
}
