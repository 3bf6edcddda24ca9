package usecase_match

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/streamsync/core/internal/model"
	repo_mocks "github.com/streamsync/core/internal/usecase/match/mocks/match/repository"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type UsecaseMatchUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase   *Usecase
	matchRepo *repo_mocks.MatchRepository
	ctx       context.Context
}

func initResources(t provider.T) *resources {
	matchRepo := repo_mocks.NewMatchRepository(t)
	usecase := New(matchRepo)

	return &resources{
		usecase:   usecase,
		matchRepo: matchRepo,
		ctx:       context.Background(),
	}
}

func (suite *UsecaseMatchUnitSuite) TestMatches(t provider.T) {
	t.Parallel()

	roomID := uuid.New()

	t.Run("Should return matches in repository order", func(t provider.T) {
		r := initResources(t)
		newest := model.Match{ID: uuid.New(), RoomID: roomID, TitleID: 2, MatchedAt: time.Now().UTC()}
		oldest := model.Match{ID: uuid.New(), RoomID: roomID, TitleID: 1, MatchedAt: time.Now().UTC().Add(-time.Hour)}
		r.matchRepo.On("MatchesByRoom", r.ctx, roomID).
			Return([]model.Match{newest, oldest}, nil).Once()

		matches, err := r.usecase.Matches(r.ctx, roomID)

		assert.NoError(t, err)
		assert.Equal(t, []model.Match{newest, oldest}, matches)
		r.matchRepo.AssertExpectations(t)
	})

	t.Run("Should return empty list for a room with no matches", func(t provider.T) {
		r := initResources(t)
		r.matchRepo.On("MatchesByRoom", r.ctx, roomID).
			Return([]model.Match{}, nil).Once()

		matches, err := r.usecase.Matches(r.ctx, roomID)

		assert.NoError(t, err)
		assert.Empty(t, matches)
		r.matchRepo.AssertExpectations(t)
	})

	t.Run("Should wrap unexpected repository errors", func(t provider.T) {
		r := initResources(t)
		r.matchRepo.On("MatchesByRoom", r.ctx, roomID).
			Return(nil, errors.New("db down")).Once()

		_, err := r.usecase.Matches(r.ctx, roomID)

		assert.ErrorIs(t, err, ErrInternal)
		r.matchRepo.AssertExpectations(t)
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseMatchUnitSuite))
}
