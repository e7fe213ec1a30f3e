package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"seacatering/internal/config"
	"seacatering/internal/models/db_models"
	"seacatering/internal/models/request_models"
	"seacatering/pkg/utils"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Insert(ctx context.Context, user *db_models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindById(ctx context.Context, id string) (*db_models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.User), args.Error(1)
}

func testConfig() *config.Config {
	return &config.Config{
		AdminEmails: []string{"admin@seacatering.id"},
	}
}

func TestAccountService_CreateAccount(t *testing.T) {
	t.Run("successful sign up defaults to the user role", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, nil)

		var created *db_models.User
		repo.On("Insert", mock.Anything, mock.AnythingOfType("*db_models.User")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*db_models.User)
			}).
			Return(nil)

		service := NewAccountService(repo, testConfig())
		err := service.CreateAccount(context.Background(), request_models.SignUpRequest{
			FullName: "New Customer",
			Email:    "new@example.com",
			Password: "secret123",
		})

		assert.NoError(t, err)
		if assert.NotNil(t, created) {
			assert.Equal(t, db_models.RoleUser, created.Role)
			assert.Equal(t, "New Customer", created.FullName)
			// The stored hash must verify against the original password.
			assert.NoError(t, utils.ComparePasswords(created.PasswordHash, "secret123"))
			assert.NotEqual(t, "secret123", created.PasswordHash)
		}
		repo.AssertExpectations(t)
	})

	t.Run("allow-listed email is promoted to admin", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "ADMIN@seacatering.id").Return(nil, nil)

		var created *db_models.User
		repo.On("Insert", mock.Anything, mock.AnythingOfType("*db_models.User")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*db_models.User)
			}).
			Return(nil)

		service := NewAccountService(repo, testConfig())
		err := service.CreateAccount(context.Background(), request_models.SignUpRequest{
			FullName: "The Admin",
			Email:    "ADMIN@seacatering.id",
			Password: "secret123",
		})

		assert.NoError(t, err)
		if assert.NotNil(t, created) {
			assert.Equal(t, db_models.RoleAdmin, created.Role)
		}
		repo.AssertExpectations(t)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		repo := new(MockUserRepository)
		existing := &db_models.User{Email: "taken@example.com"}
		existing.ID = uuid.New()
		repo.On("FindByEmail", mock.Anything, "taken@example.com").Return(existing, nil)

		service := NewAccountService(repo, testConfig())
		err := service.CreateAccount(context.Background(), request_models.SignUpRequest{
			FullName: "Someone",
			Email:    "taken@example.com",
			Password: "secret123",
		})

		assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})
}

func TestAccountService_Login(t *testing.T) {
	password := "secret123"
	hash, err := utils.HashPassword(password)
	assert.NoError(t, err)

	makeUser := func() *db_models.User {
		user := &db_models.User{
			Email:        "customer@example.com",
			FullName:     "Customer One",
			PasswordHash: hash,
			Role:         db_models.RoleUser,
		}
		user.ID = uuid.New()
		return user
	}

	t.Run("successful login returns a token", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "customer@example.com").Return(makeUser(), nil)

		service := NewAccountService(repo, testConfig())
		token, err := service.Login(context.Background(), request_models.LoginRequest{
			Email:    "customer@example.com",
			Password: password,
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		repo.AssertExpectations(t)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

		service := NewAccountService(repo, testConfig())
		token, err := service.Login(context.Background(), request_models.LoginRequest{
			Email:    "nobody@example.com",
			Password: password,
		})

		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "customer@example.com").Return(makeUser(), nil)

		service := NewAccountService(repo, testConfig())
		token, err := service.Login(context.Background(), request_models.LoginRequest{
			Email:    "customer@example.com",
			Password: "wrong-password",
		})

		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
		assert.Empty(t, token)
	})
}
