package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	contentRepo "legalassist/database/repository/content"
	userRepo "legalassist/database/repository/user"
	"legalassist/models"
	"legalassist/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Report counts the records a run inserted.
type Report struct {
	Users     int
	Resources int
	News      int
}

// Seeder inserts fixture data that is not present yet. Users are matched by
// email, resources and news by title, so running it twice is a no-op.
type Seeder struct {
	Users   userRepo.UserRepository
	Content contentRepo.ContentRepository
	Now     func() time.Time
}

// LoadLawyers reads a JSON array of users, each with its lawyer profile nested
// under "profile".
func LoadLawyers(path string) ([]models.User, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var lawyers []models.User
	if err := json.Unmarshal(raw, &lawyers); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	for i := range lawyers {
		lawyers[i].UserType = models.UserTypeLawyer
	}
	return lawyers, nil
}

func (s *Seeder) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Seeder) Run(ctx context.Context, lawyers []models.User) (Report, error) {
	var report Report
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return report, fmt.Errorf("hash default password: %w", err)
	}

	users := append(append([]models.User{}, lawyers...), sampleClients()...)
	for _, u := range users {
		created, err := s.seedUser(ctx, u, string(hash))
		if err != nil {
			return report, err
		}
		if created {
			report.Users++
		}
	}

	for _, res := range legalResources() {
		exists, err := s.Content.ResourceTitleExists(ctx, res.Title)
		if err != nil {
			return report, fmt.Errorf("check resource %q: %w", res.Title, err)
		}
		if exists {
			continue
		}
		res.ID = uuid.New().String()
		res.CreatedAt = s.now()
		if err := s.Content.CreateResource(ctx, &res); err != nil {
			return report, fmt.Errorf("create resource %q: %w", res.Title, err)
		}
		report.Resources++
	}

	for _, n := range legalNews() {
		exists, err := s.Content.NewsTitleExists(ctx, n.Title)
		if err != nil {
			return report, fmt.Errorf("check news %q: %w", n.Title, err)
		}
		if exists {
			continue
		}
		n.ID = uuid.New().String()
		n.PublicationDate = s.now()
		if err := s.Content.CreateNews(ctx, &n); err != nil {
			return report, fmt.Errorf("create news %q: %w", n.Title, err)
		}
		report.News++
	}

	utils.GetLogger().Info("Seeding completed",
		zap.Int("users", report.Users), zap.Int("resources", report.Resources), zap.Int("news", report.News))
	return report, nil
}

func (s *Seeder) seedUser(ctx context.Context, u models.User, passwordHash string) (bool, error) {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.Email == "" {
		return false, fmt.Errorf("seed user %s %s has no email", u.FirstName, u.LastName)
	}
	existing, err := s.Users.GetByEmail(ctx, u.Email)
	if err != nil {
		return false, fmt.Errorf("look up %s: %w", u.Email, err)
	}
	if existing != nil {
		return false, nil
	}

	now := s.now()
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	u.PasswordHash = passwordHash
	u.CreatedAt = now
	if u.Username, err = s.freeUsername(ctx, u); err != nil {
		return false, err
	}
	if u.LawyerProfile != nil {
		u.LawyerProfile.CreatedAt = now
	}
	if u.UserType == models.UserTypeClient && u.ClientProfile == nil {
		u.ClientProfile = &models.ClientProfile{
			Phone:                  u.Phone,
			Address:                u.Address,
			PreferredContactMethod: "email",
			CreatedAt:              now,
		}
	}

	if err := s.Users.Create(ctx, &u); err != nil {
		return false, fmt.Errorf("create %s: %w", u.Email, err)
	}
	utils.GetLogger().Debug("Seeded user", zap.String("email", u.Email), zap.String("userType", u.UserType))
	return true, nil
}

func (s *Seeder) freeUsername(ctx context.Context, u models.User) (string, error) {
	base := u.Username
	if base == "" {
		base = strings.Map(func(r rune) rune {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				return r
			}
			return -1
		}, strings.ToLower(u.FirstName+u.LastName))
	}
	if base == "" {
		base = "user"
	}
	candidate := base
	for i := 1; ; i++ {
		taken, err := s.Users.UsernameExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check username %s: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s%d", base, i)
	}
}
