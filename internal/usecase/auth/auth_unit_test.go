package usecase_auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/streamsync/core/internal/model"
	repo_mocks "github.com/streamsync/core/internal/usecase/auth/mocks/auth/repository"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UsecaseAuthUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase  *Usecase
	userRepo *repo_mocks.UserRepository
	ctx      context.Context
}

func initResources(t provider.T) *resources {
	userRepo := repo_mocks.NewUserRepository(t)
	usecase := New(userRepo, "test-secret", 15*time.Minute, 30*24*time.Hour)

	return &resources{
		usecase:  usecase,
		userRepo: userRepo,
		ctx:      context.Background(),
	}
}

func (suite *UsecaseAuthUnitSuite) TestCreateGuest(t provider.T) {
	t.Parallel()

	t.Run("Should create guest and sign a token pair", func(t provider.T) {
		r := initResources(t)
		r.userRepo.On("CreateUser", r.ctx, mock.AnythingOfType("model.User")).
			Return(nil).Once()

		tokens, err := r.usecase.CreateGuest(r.ctx, "Sam")

		assert.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
		assert.NotEqual(t, tokens.AccessToken, tokens.RefreshToken)
		r.userRepo.AssertExpectations(t)
	})

	t.Run("Should return error when repository fails", func(t provider.T) {
		r := initResources(t)
		r.userRepo.On("CreateUser", r.ctx, mock.AnythingOfType("model.User")).
			Return(ErrInternal).Once()

		_, err := r.usecase.CreateGuest(r.ctx, "Sam")

		assert.ErrorIs(t, err, ErrInternal)
		r.userRepo.AssertExpectations(t)
	})
}

func (suite *UsecaseAuthUnitSuite) TestAuthenticate(t provider.T) {
	t.Parallel()

	t.Run("Should resolve user from a freshly signed token", func(t provider.T) {
		r := initResources(t)
		var created model.User
		r.userRepo.On("CreateUser", r.ctx, mock.AnythingOfType("model.User")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(model.User)
			}).
			Return(nil).Once()

		tokens, err := r.usecase.CreateGuest(r.ctx, "Sam")
		assert.NoError(t, err)

		r.userRepo.On("UserByID", r.ctx, mock.AnythingOfType("uuid.UUID")).
			Return(created, nil).Once()

		user, err := r.usecase.Authenticate(r.ctx, tokens.AccessToken)

		assert.NoError(t, err)
		assert.Equal(t, created.ID, user.ID)
		assert.Equal(t, "Sam", user.DisplayName)
		r.userRepo.AssertExpectations(t)
	})

	t.Run("Should reject a garbage token", func(t provider.T) {
		r := initResources(t)

		_, err := r.usecase.Authenticate(r.ctx, "not-a-token")

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Should reject a token signed with another secret", func(t provider.T) {
		r := initResources(t)
		other := New(repo_mocks.NewUserRepository(t), "other-secret", time.Minute, time.Hour)
		otherRepo := other.users.(*repo_mocks.UserRepository)
		otherRepo.On("CreateUser", r.ctx, mock.AnythingOfType("model.User")).
			Return(nil).Once()

		tokens, err := other.CreateGuest(r.ctx, "Eve")
		assert.NoError(t, err)

		_, err = r.usecase.Authenticate(r.ctx, tokens.AccessToken)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Should reject a token whose user no longer exists", func(t provider.T) {
		r := initResources(t)
		r.userRepo.On("CreateUser", r.ctx, mock.AnythingOfType("model.User")).
			Return(nil).Once()

		tokens, err := r.usecase.CreateGuest(r.ctx, "Sam")
		assert.NoError(t, err)

		r.userRepo.On("UserByID", r.ctx, mock.AnythingOfType("uuid.UUID")).
			Return(model.User{}, ErrResourceNotFound).Once()

		_, err = r.usecase.Authenticate(r.ctx, tokens.AccessToken)

		assert.ErrorIs(t, err, ErrInvalidToken)
		r.userRepo.AssertExpectations(t)
	})
}

func validUserID() uuid.UUID {
	return uuid.New()
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseAuthUnitSuite))
}
