package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"brokerdoc/internal/config"
	"brokerdoc/internal/domain"
	"brokerdoc/internal/service"
	"brokerdoc/mocks"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:             "test-secret-do-not-use-in-production",
		Issuer:             "brokerdoc-test",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 7 * 24 * time.Hour,
	}
}

func TestAuthService_Register(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	var created *domain.User
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.User)
		}).
		Return(nil)

	user, pair, err := svc.Register(context.Background(), service.RegisterInput{
		Email:     "  Agent@Example.COM ",
		Password:  "supersecret1",
		FullName:  "Test Agent",
		Brokerage: "ABC Realty Inc.",
	})

	require.NoError(t, err)
	require.NotNil(t, user)
	require.NotNil(t, pair)
	assert.Equal(t, "agent@example.com", user.Email)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "supersecret1", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("supersecret1")))
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	userRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateEmail)

	_, _, err := svc.Register(context.Background(), service.RegisterInput{
		Email:    "agent@example.com",
		Password: "supersecret1",
		FullName: "Test Agent",
	})

	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func hashedUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{
		ID:           uuid.New(),
		Email:        "agent@example.com",
		PasswordHash: string(hash),
		FullName:     "Test Agent",
		IsActive:     true,
	}
}

func TestAuthService_Login(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())
	user := hashedUser(t, "supersecret1")

	userRepo.On("GetByEmail", mock.Anything, "agent@example.com").Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "agent@example.com",
		Password: "supersecret1",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.True(t, pair.ExpiresAt.After(time.Now()))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())
	user := hashedUser(t, "supersecret1")

	userRepo.On("GetByEmail", mock.Anything, "agent@example.com").Return(user, nil)

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "agent@example.com",
		Password: "wrongpassword",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, domain.ErrNotFound)

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "nobody@example.com",
		Password: "supersecret1",
	})

	// Unknown email and wrong password are indistinguishable to the caller.
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())
	user := hashedUser(t, "supersecret1")
	user.IsActive = false

	userRepo.On("GetByEmail", mock.Anything, "agent@example.com").Return(user, nil)

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "agent@example.com",
		Password: "supersecret1",
	})

	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestAuthService_ValidateToken(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())
	user := hashedUser(t, "supersecret1")

	userRepo.On("GetByEmail", mock.Anything, "agent@example.com").Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "agent@example.com",
		Password: "supersecret1",
	})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
}

func TestAuthService_ValidateToken_RejectsRefreshToken(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())
	user := hashedUser(t, "supersecret1")

	userRepo.On("GetByEmail", mock.Anything, "agent@example.com").Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "agent@example.com",
		Password: "supersecret1",
	})
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.RefreshToken)
	assert.Error(t, err)
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	svc := service.NewAuthService(new(mocks.MockUserRepo), testJWTConfig())

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestAuthService_RefreshToken(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())
	user := hashedUser(t, "supersecret1")

	userRepo.On("GetByEmail", mock.Anything, "agent@example.com").Return(user, nil)
	userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "agent@example.com",
		Password: "supersecret1",
	})
	require.NoError(t, err)

	fresh, err := svc.RefreshToken(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, fresh.AccessToken)

	claims, err := svc.ValidateToken(fresh.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestAuthService_RefreshToken_RejectsAccessToken(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())
	user := hashedUser(t, "supersecret1")

	userRepo.On("GetByEmail", mock.Anything, "agent@example.com").Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "agent@example.com",
		Password: "supersecret1",
	})
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_RefreshToken_InactiveUser(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())
	user := hashedUser(t, "supersecret1")

	userRepo.On("GetByEmail", mock.Anything, "agent@example.com").Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "agent@example.com",
		Password: "supersecret1",
	})
	require.NoError(t, err)

	user.IsActive = false
	userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	_, err = svc.RefreshToken(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrUserInactive)
}
