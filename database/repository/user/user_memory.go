package userRepo

import (
	"context"
	"sync"
	"time"

	"legalassist/models"
)

// MemoryUserRepo implements UserRepository in process memory.
type MemoryUserRepo struct {
	mu    sync.RWMutex
	order []string
	users map[string]models.User
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{users: make(map[string]models.User)}
}

func (r *MemoryUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email || (user.Username != "" && u.Username == user.Username) {
			return ErrDuplicate
		}
	}
	if _, ok := r.users[user.ID]; ok {
		return ErrDuplicate
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	r.users[user.ID] = *user
	r.order = append(r.order, user.ID)
	return nil
}

func (r *MemoryUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *MemoryUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryUserRepo) ListLawyers(_ context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lawyers := make([]models.User, 0)
	for _, id := range r.order {
		u := r.users[id]
		if u.IsLawyer() && u.LawyerProfile != nil {
			lawyers = append(lawyers, u)
		}
	}
	return lawyers, nil
}

func (r *MemoryUserRepo) GetLawyerByID(ctx context.Context, id string) (*models.User, error) {
	u, _ := r.GetByID(ctx, id)
	if u == nil || !u.IsLawyer() || u.LawyerProfile == nil {
		return nil, nil
	}
	return u, nil
}

func (r *MemoryUserRepo) SetLawyerProfile(_ context.Context, userID string, profile *models.LawyerProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	if u.LawyerProfile != nil {
		return ErrProfileExists
	}
	p := *profile
	u.LawyerProfile = &p
	r.users[userID] = u
	return nil
}

func (r *MemoryUserRepo) SetClientProfile(_ context.Context, userID string, profile *models.ClientProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	if u.ClientProfile != nil {
		return ErrProfileExists
	}
	p := *profile
	u.ClientProfile = &p
	r.users[userID] = u
	return nil
}
