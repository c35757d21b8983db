package userRepo

import (
	"context"
	"errors"

	"legalassist/models"
)

var (
	// ErrDuplicate is returned when an email or username is already taken.
	ErrDuplicate = errors.New("user already exists")
	// ErrProfileExists is returned when a profile is set on a user that already has one.
	ErrProfileExists = errors.New("profile already exists")
	// ErrUserNotFound is returned by profile writes for an unknown user id.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository defines methods for user and lawyer data access.
// Lookups return (nil, nil) when nothing matches.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	// ListLawyers returns every lawyer that has a profile, in insertion order.
	ListLawyers(ctx context.Context) ([]models.User, error)
	// GetLawyerByID returns the lawyer with id, or nil if id is not a lawyer.
	GetLawyerByID(ctx context.Context, id string) (*models.User, error)
	// SetLawyerProfile attaches a profile to a user that has none.
	SetLawyerProfile(ctx context.Context, userID string, profile *models.LawyerProfile) error
	// SetClientProfile attaches a client profile to a user that has none.
	SetClientProfile(ctx context.Context, userID string, profile *models.ClientProfile) error
}
