package user

import (
	"context"
	"strings"
	"time"

	"legalassist/models"
	"legalassist/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func (s *DefaultUserService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, utils.ValidationError("email and password are required")
	}

	userRec, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Error("Login: failed to fetch user", zap.Error(err))
		return nil, utils.PersistenceError("Authentication failed, please try again", err)
	}
	if userRec == nil {
		return nil, utils.UnauthorizedError("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(req.Password)); err != nil {
		return nil, utils.UnauthorizedError("Invalid email or password")
	}

	return s.issueToken(userRec)
}

// Logout revokes token for the rest of its lifetime.
func (s *DefaultUserService) Logout(ctx context.Context, token string) error {
	claims, err := utils.ParseToken(token)
	if err != nil {
		return utils.UnauthorizedError("Invalid token")
	}

	ttl := time.Until(claims.ExpiresAt)
	if err := s.Tokens.Revoke(ctx, utils.HashToken(token), ttl); err != nil {
		utils.GetLogger().Error("Logout: failed to revoke token", zap.String("userID", claims.Subject), zap.Error(err))
		return utils.PersistenceError("Logout failed, please try again", err)
	}
	return nil
}

func (s *DefaultUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		utils.GetLogger().Error("GetUserByID: lookup failed", zap.String("id", id), zap.Error(err))
		return nil, utils.PersistenceError("Failed to fetch user", err)
	}
	if u == nil {
		return nil, utils.NotFoundError("User not found")
	}
	return u, nil
}
