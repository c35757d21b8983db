package user

import (
	"context"
	"testing"
	"time"

	tokenRepo "legalassist/database/repository/token"
	userRepo "legalassist/database/repository/user"
	"legalassist/models"
	"legalassist/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodPassword = "Str0ng!Pass"

func newTestService() (*DefaultUserService, *tokenRepo.MemoryRevocationStore) {
	tokens := tokenRepo.NewMemoryRevocationStore()
	return &DefaultUserService{
		Repo:     userRepo.NewMemoryUserRepo(),
		Tokens:   tokens,
		TokenTTL: time.Hour,
	}, tokens
}

func clientRequest(email string) models.RegisterRequest {
	return models.RegisterRequest{
		Email:     email,
		Password:  goodPassword,
		FirstName: "Jane",
		LastName:  "Doe",
		UserType:  models.UserTypeClient,
		Phone:     "555-0000",
	}
}

func TestVerifyPasswordComplexity(t *testing.T) {
	tests := map[string]bool{
		"short1!A":    true,
		"Sh0rt!":      false,
		"alllower1!":  false,
		"ALLUPPER1!":  false,
		"NoNumbers!!": false,
		"NoSymbol123": false,
		goodPassword:  true,
	}
	for pw, ok := range tests {
		err := VerifyPasswordComplexity(pw)
		if ok {
			assert.NoError(t, err, pw)
		} else {
			assert.ErrorIs(t, err, utils.ErrValidation, pw)
		}
	}
}

func TestBaseUsername(t *testing.T) {
	assert.Equal(t, "janedoe", baseUsername("Jane", "Doe"))
	assert.Equal(t, "maryjanewatson", baseUsername("Mary-Jane", "Watson"))
	assert.Equal(t, "user", baseUsername("", "!!"))
}

func TestRegisterClient(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.Register(context.Background(), clientRequest("  Jane@Example.com "))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "jane@example.com", resp.User.Email)
	assert.Equal(t, "janedoe", resp.User.Username)
	assert.NotEqual(t, goodPassword, resp.User.PasswordHash)
	require.NotNil(t, resp.User.ClientProfile)
	assert.Equal(t, "email", resp.User.ClientProfile.PreferredContactMethod)
	assert.Equal(t, "555-0000", resp.User.ClientProfile.Phone)
	assert.Nil(t, resp.User.LawyerProfile)

	claims, err := utils.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.Subject)
	assert.Equal(t, models.UserTypeClient, claims.UserType)
}

func TestRegisterUniquifiesUsername(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	first, err := svc.Register(ctx, clientRequest("jane1@example.com"))
	require.NoError(t, err)
	second, err := svc.Register(ctx, clientRequest("jane2@example.com"))
	require.NoError(t, err)

	assert.Equal(t, "janedoe", first.User.Username)
	assert.Equal(t, "janedoe1", second.User.Username)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, clientRequest("jane@example.com"))
	require.NoError(t, err)
	_, err = svc.Register(ctx, clientRequest("JANE@example.com"))
	assert.ErrorIs(t, err, utils.ErrConflict)
	assert.Equal(t, 409, utils.StatusFor(err))
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	bad := []func(r *models.RegisterRequest){
		func(r *models.RegisterRequest) { r.Email = "not-an-email" },
		func(r *models.RegisterRequest) { r.FirstName = " " },
		func(r *models.RegisterRequest) { r.UserType = "admin" },
		func(r *models.RegisterRequest) { r.Password = "weak" },
		func(r *models.RegisterRequest) { r.UserType = models.UserTypeLawyer },
		func(r *models.RegisterRequest) {
			r.UserType = models.UserTypeLawyer
			r.Profile = &models.LawyerProfile{Specialization: "Tax Law"}
		},
	}
	for i, mutate := range bad {
		req := clientRequest("jane@example.com")
		mutate(&req)
		_, err := svc.Register(ctx, req)
		assert.ErrorIs(t, err, utils.ErrValidation, "case %d", i)
	}
}

func TestRegisterLawyerCreatesProfile(t *testing.T) {
	svc, _ := newTestService()
	req := clientRequest("counsel@example.com")
	req.UserType = models.UserTypeLawyer
	req.Profile = &models.LawyerProfile{
		Specialization:    " Family Law ",
		Location:          "Boston, MA",
		YearsOfExperience: 6,
		HourlyRate:        200,
		Rating:            5,
		ReviewCount:       900,
	}

	resp, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.User.LawyerProfile)
	assert.Equal(t, "Family Law", resp.User.LawyerProfile.Specialization)
	assert.Zero(t, resp.User.LawyerProfile.Rating)
	assert.Zero(t, resp.User.LawyerProfile.ReviewCount)
	assert.Nil(t, resp.User.ClientProfile)

	listed, err := svc.Repo.ListLawyers(context.Background())
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	_, err := svc.Register(ctx, clientRequest("jane@example.com"))
	require.NoError(t, err)

	resp, err := svc.Login(ctx, models.LoginRequest{Email: "Jane@Example.com", Password: goodPassword})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "jane@example.com", Password: "Wr0ng!Pass"})
	assert.ErrorIs(t, err, utils.ErrUnauthorized)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "nobody@example.com", Password: goodPassword})
	assert.ErrorIs(t, err, utils.ErrUnauthorized)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "", Password: goodPassword})
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, tokens := newTestService()
	ctx := context.Background()
	resp, err := svc.Register(ctx, clientRequest("jane@example.com"))
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, resp.Token))

	revoked, err := tokens.IsRevoked(ctx, utils.HashToken(resp.Token))
	require.NoError(t, err)
	assert.True(t, revoked)

	assert.ErrorIs(t, svc.Logout(ctx, "garbage"), utils.ErrUnauthorized)
}

func TestCreateLawyerProfileRules(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	client, err := svc.Register(ctx, clientRequest("client@example.com"))
	require.NoError(t, err)
	_, err = svc.CreateLawyerProfile(ctx, client.User.ID, models.LawyerProfile{Specialization: "Tax Law", Location: "Austin, TX"})
	assert.ErrorIs(t, err, utils.ErrForbidden)

	lawyer := models.User{ID: "lawyer-1", Email: "l@example.com", Username: "l", UserType: models.UserTypeLawyer}
	require.NoError(t, svc.Repo.Create(ctx, &lawyer))

	_, err = svc.CreateLawyerProfile(ctx, lawyer.ID, models.LawyerProfile{Location: "Austin, TX"})
	assert.ErrorIs(t, err, utils.ErrValidation)

	u, err := svc.CreateLawyerProfile(ctx, lawyer.ID, models.LawyerProfile{Specialization: "Tax Law", Location: "Austin, TX"})
	require.NoError(t, err)
	assert.Equal(t, "Tax Law", u.LawyerProfile.Specialization)

	_, err = svc.CreateLawyerProfile(ctx, lawyer.ID, models.LawyerProfile{Specialization: "Tax Law", Location: "Austin, TX"})
	assert.ErrorIs(t, err, utils.ErrConflict)

	_, err = svc.CreateLawyerProfile(ctx, "missing", models.LawyerProfile{Specialization: "Tax Law", Location: "Austin, TX"})
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestCreateClientProfileRules(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	bare := models.User{ID: "client-1", Email: "c@example.com", Username: "c", UserType: models.UserTypeClient, Address: "1 Elm St"}
	require.NoError(t, svc.Repo.Create(ctx, &bare))

	u, err := svc.CreateClientProfile(ctx, bare.ID, models.ClientProfile{PreferredContactMethod: "phone"})
	require.NoError(t, err)
	assert.Equal(t, "phone", u.ClientProfile.PreferredContactMethod)
	assert.Equal(t, "1 Elm St", u.ClientProfile.Address)

	_, err = svc.CreateClientProfile(ctx, bare.ID, models.ClientProfile{})
	assert.ErrorIs(t, err, utils.ErrConflict)

	lawyer := models.User{ID: "lawyer-1", Email: "l@example.com", Username: "l", UserType: models.UserTypeLawyer}
	require.NoError(t, svc.Repo.Create(ctx, &lawyer))
	_, err = svc.CreateClientProfile(ctx, lawyer.ID, models.ClientProfile{})
	assert.ErrorIs(t, err, utils.ErrForbidden)
}
