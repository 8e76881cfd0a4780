package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-finance/internal/core/domain"
)

func TestAuthService_Register(t *testing.T) {
	t.Parallel()

	t.Run("Success: Should register a valid user", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewAuthService(repo, new(MockTokenIssuer))
		ctx := context.Background()

		repo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := service.Register(ctx, RegisterInput{Email: " Saver@Kanso.App ", Password: "StrongPassword123!"})

		require.NoError(t, err)
		assert.Equal(t, "saver@kanso.app", user.Email)
		assert.NotEmpty(t, user.ID)
		assert.NotEmpty(t, user.PasswordHash)
		repo.AssertExpectations(t)
	})

	t.Run("Fail: Should reject invalid email", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewAuthService(repo, new(MockTokenIssuer))

		user, err := service.Register(context.Background(), RegisterInput{Email: "not-an-email", Password: "StrongPassword123!"})

		assert.ErrorIs(t, err, domain.ErrInvalidEmail)
		assert.Nil(t, user)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("Fail: Should reject short password", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewAuthService(repo, new(MockTokenIssuer))

		_, err := service.Register(context.Background(), RegisterInput{Email: "valid@kanso.app", Password: "short"})

		assert.ErrorIs(t, err, domain.ErrPasswordTooShort)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("Fail: Should propagate duplicate email", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewAuthService(repo, new(MockTokenIssuer))

		repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrEmailAlreadyExists)

		_, err := service.Register(context.Background(), RegisterInput{Email: "dup@kanso.app", Password: "StrongPassword123!"})

		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	user, err := domain.NewUser("user-1", "login@kanso.app")
	require.NoError(t, err)
	require.NoError(t, user.SetPassword("CorrectHorse42"))

	t.Run("Success: Should return a token for valid credentials", func(t *testing.T) {
		repo := new(MockUserRepository)
		tokens := new(MockTokenIssuer)
		service := NewAuthService(repo, tokens)

		repo.On("GetByEmail", mock.Anything, "login@kanso.app").Return(user, nil)
		tokens.On("GenerateToken", "user-1").Return("signed-token", nil)

		token, got, err := service.Login(context.Background(), LoginInput{Email: "LOGIN@kanso.app", Password: "CorrectHorse42"})

		require.NoError(t, err)
		assert.Equal(t, "signed-token", token)
		assert.Equal(t, user.ID, got.ID)
		tokens.AssertExpectations(t)
	})

	t.Run("Fail: Wrong password is invalid credentials", func(t *testing.T) {
		repo := new(MockUserRepository)
		tokens := new(MockTokenIssuer)
		service := NewAuthService(repo, tokens)

		repo.On("GetByEmail", mock.Anything, "login@kanso.app").Return(user, nil)

		_, _, err := service.Login(context.Background(), LoginInput{Email: "login@kanso.app", Password: "WrongHorse42"})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		tokens.AssertNotCalled(t, "GenerateToken", mock.Anything)
	})

	t.Run("Fail: Unknown email is invalid credentials", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewAuthService(repo, new(MockTokenIssuer))

		repo.On("GetByEmail", mock.Anything, "ghost@kanso.app").Return(nil, domain.ErrUserNotFound)

		_, _, err := service.Login(context.Background(), LoginInput{Email: "ghost@kanso.app", Password: "whatever123"})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Fail: Repository failure is not hidden", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewAuthService(repo, new(MockTokenIssuer))
		dbErr := errors.New("connection reset")

		repo.On("GetByEmail", mock.Anything, "login@kanso.app").Return(nil, dbErr)

		_, _, err := service.Login(context.Background(), LoginInput{Email: "login@kanso.app", Password: "CorrectHorse42"})

		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
