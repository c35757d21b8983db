package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	contentRepo "legalassist/database/repository/content"
	userRepo "legalassist/database/repository/user"
	"legalassist/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const lawyersJSON = `[
  {"email": "Emily.Carter@example.com", "firstName": "Emily", "lastName": "Carter",
   "profile": {"specialization": "Family Law", "yearsOfExperience": 12, "location": "Boston, MA", "hourlyRate": 250}},
  {"email": "emily.c@example.com", "firstName": "Emily", "lastName": "Carter", "userType": "client",
   "profile": {"specialization": "Tax Law", "yearsOfExperience": 5, "location": "Austin, TX", "hourlyRate": 180}}
]`

func writeLawyers(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lawyers.json")
	require.NoError(t, os.WriteFile(path, []byte(lawyersJSON), 0o600))
	return path
}

func TestLoadLawyers(t *testing.T) {
	lawyers, err := LoadLawyers(writeLawyers(t))
	require.NoError(t, err)
	require.Len(t, lawyers, 2)
	for _, l := range lawyers {
		assert.Equal(t, models.UserTypeLawyer, l.UserType)
		require.NotNil(t, l.LawyerProfile)
	}
	assert.Equal(t, "Family Law", lawyers[0].LawyerProfile.Specialization)

	_, err = LoadLawyers(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestBundledLawyersFile(t *testing.T) {
	lawyers, err := LoadLawyers(filepath.Join("..", "..", "data", "lawyers.json"))
	require.NoError(t, err)
	assert.NotEmpty(t, lawyers)
	for _, l := range lawyers {
		require.NotNil(t, l.LawyerProfile, l.Email)
		assert.NotEmpty(t, l.LawyerProfile.Specialization, l.Email)
		assert.NotEmpty(t, l.LawyerProfile.Location, l.Email)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	users := userRepo.NewMemoryUserRepo()
	content := contentRepo.NewMemoryContentRepo()
	seeder := &Seeder{Users: users, Content: content}
	ctx := context.Background()

	lawyers, err := LoadLawyers(writeLawyers(t))
	require.NoError(t, err)

	first, err := seeder.Run(ctx, lawyers)
	require.NoError(t, err)
	assert.Equal(t, Report{Users: 2 + len(sampleClients()), Resources: len(legalResources()), News: len(legalNews())}, first)

	second, err := seeder.Run(ctx, lawyers)
	require.NoError(t, err)
	assert.Equal(t, Report{}, second)

	listed, err := users.ListLawyers(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 2)

	emily, err := users.GetByEmail(ctx, "emily.carter@example.com")
	require.NoError(t, err)
	require.NotNil(t, emily)
	assert.Equal(t, "emilycarter", emily.Username)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(emily.PasswordHash), []byte(DefaultPassword)))

	namesake, err := users.GetByEmail(ctx, "emily.c@example.com")
	require.NoError(t, err)
	require.NotNil(t, namesake)
	assert.Equal(t, "emilycarter1", namesake.Username)

	john, err := users.GetByEmail(ctx, "client1@example.com")
	require.NoError(t, err)
	require.NotNil(t, john)
	require.NotNil(t, john.ClientProfile)
	assert.Equal(t, "email", john.ClientProfile.PreferredContactMethod)

	resources, err := content.ListResources(ctx, "")
	require.NoError(t, err)
	assert.Len(t, resources, len(legalResources()))
}
