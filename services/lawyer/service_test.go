package lawyer

import (
	"context"
	"errors"
	"testing"

	userRepo "legalassist/database/repository/user"
	"legalassist/models"
	"legalassist/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingRepo fails every directory read.
type failingRepo struct {
	userRepo.UserRepository
}

func (failingRepo) ListLawyers(context.Context) ([]models.User, error) {
	return nil, errors.New("connection reset")
}

func (failingRepo) GetLawyerByID(context.Context, string) (*models.User, error) {
	return nil, errors.New("connection reset")
}

func seededService(t *testing.T) (*DefaultLawyerService, []models.User) {
	t.Helper()
	repo := userRepo.NewMemoryUserRepo()
	specs := []string{"Family Law", "Tax Law", "Family Law", "Criminal Defense", "Immigration Law"}
	var created []models.User
	for i, spec := range specs {
		u := lawyerWith(uuid.New().String(), models.LawyerProfile{Specialization: spec, YearsOfExperience: i * 4, Location: "Boston, MA"})
		u.Email = u.ID + "@example.com"
		u.Username = "lawyer" + u.ID[:8]
		require.NoError(t, repo.Create(context.Background(), &u))
		created = append(created, u)
	}
	client := models.User{ID: uuid.New().String(), Email: "client@example.com", Username: "client", UserType: models.UserTypeClient}
	require.NoError(t, repo.Create(context.Background(), &client))
	return &DefaultLawyerService{Repo: repo}, created
}

func TestSearchLawyersFamilyLaw(t *testing.T) {
	svc, created := seededService(t)

	got, err := svc.SearchLawyers(context.Background(), models.SearchCriteria{Specialization: "Family Law"})
	require.NoError(t, err)
	assert.Equal(t, []string{created[0].ID, created[2].ID}, ids(got))
	for _, u := range got {
		assert.Empty(t, u.PasswordHash)
	}
}

func TestSearchLawyersNoMatchIsEmptyNotError(t *testing.T) {
	svc, _ := seededService(t)

	got, err := svc.SearchLawyers(context.Background(), models.SearchCriteria{Specialization: "Maritime Law"})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSearchLawyersRepositoryFailure(t *testing.T) {
	svc := &DefaultLawyerService{Repo: failingRepo{}}

	_, err := svc.SearchLawyers(context.Background(), models.SearchCriteria{})
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrPersistence)
}

func TestGetLawyerByID(t *testing.T) {
	svc, created := seededService(t)
	ctx := context.Background()

	got, err := svc.GetLawyerByID(ctx, created[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "Tax Law", got.LawyerProfile.Specialization)

	_, err = svc.GetLawyerByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, utils.ErrValidation)

	_, err = svc.GetLawyerByID(ctx, uuid.New().String())
	assert.ErrorIs(t, err, utils.ErrNotFound)

	_, err = (&DefaultLawyerService{Repo: failingRepo{}}).GetLawyerByID(ctx, uuid.New().String())
	assert.ErrorIs(t, err, utils.ErrPersistence)
}
