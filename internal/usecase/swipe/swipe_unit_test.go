package usecase_swipe

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/streamsync/core/internal/model"
	catalog_mocks "github.com/streamsync/core/internal/usecase/swipe/mocks/swipe/catalog"
	match_repo_mocks "github.com/streamsync/core/internal/usecase/swipe/mocks/swipe/match_repository"
	notifier_mocks "github.com/streamsync/core/internal/usecase/swipe/mocks/swipe/notifier"
	repo_mocks "github.com/streamsync/core/internal/usecase/swipe/mocks/swipe/repository"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UsecaseSwipeUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase   *Usecase
	swipeRepo *repo_mocks.SwipeRepository
	matchRepo *match_repo_mocks.MatchRepository
	catalog   *catalog_mocks.Catalog
	notifier  *notifier_mocks.Notifier
	ctx       context.Context
}

func initResources(t provider.T) *resources {
	swipeRepo := repo_mocks.NewSwipeRepository(t)
	matchRepo := match_repo_mocks.NewMatchRepository(t)
	catalog := catalog_mocks.NewCatalog(t)
	notifier := notifier_mocks.NewNotifier(t)
	usecase := New(swipeRepo, matchRepo, catalog, notifier)

	return &resources{
		usecase:   usecase,
		swipeRepo: swipeRepo,
		matchRepo: matchRepo,
		catalog:   catalog,
		notifier:  notifier,
		ctx:       context.Background(),
	}
}

func validSwipe(decision model.Decision) model.Swipe {
	return model.Swipe{
		RoomID:    uuid.New(),
		UserID:    uuid.New(),
		TitleID:   603,
		MediaType: model.MediaTypeMovie,
		Decision:  decision,
	}
}

func validCard(titleID int64) model.TitleCard {
	poster := "/poster.jpg"
	release := "1999-03-31"
	return model.TitleCard{
		TitleID:     titleID,
		MediaType:   model.MediaTypeMovie,
		Title:       "The Matrix",
		Overview:    "A hacker learns the truth.",
		PosterPath:  &poster,
		ReleaseDate: &release,
		VoteAverage: 8.2,
	}
}

func (suite *UsecaseSwipeUnitSuite) TestSubmitNope(t provider.T) {
	t.Parallel()

	r := initResources(t)
	swipe := validSwipe(model.DecisionNope)

	r.swipeRepo.On("Upsert", r.ctx, swipe).Return(nil).Once()

	outcome, err := r.usecase.Submit(r.ctx, swipe)

	assert.NoError(t, err)
	assert.False(t, outcome.Matched)
	assert.Nil(t, outcome.Match)
	r.swipeRepo.AssertExpectations(t)
	r.matchRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func (suite *UsecaseSwipeUnitSuite) TestSubmitLike(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		decision      model.Decision
		setupMocks    func(r *resources, swipe model.Swipe)
		expectMatched bool
		expectPayload bool
		expectError   bool
		expectedError error
	}{
		{
			name:     "Should not match when nobody else liked the title",
			decision: model.DecisionLike,
			setupMocks: func(r *resources, swipe model.Swipe) {
				r.swipeRepo.On("Upsert", r.ctx, swipe).Return(nil).Once()
				r.swipeRepo.On("HasOtherPositive", r.ctx, swipe.RoomID, swipe.UserID, swipe.TitleID, swipe.MediaType).
					Return(false, nil).Once()
			},
			expectMatched: false,
		},
		{
			name:     "Should create match and notify when another member liked",
			decision: model.DecisionLike,
			setupMocks: func(r *resources, swipe model.Swipe) {
				r.swipeRepo.On("Upsert", r.ctx, swipe).Return(nil).Once()
				r.swipeRepo.On("HasOtherPositive", r.ctx, swipe.RoomID, swipe.UserID, swipe.TitleID, swipe.MediaType).
					Return(true, nil).Once()
				r.catalog.On("Details", r.ctx, swipe.TitleID, swipe.MediaType).
					Return(validCard(swipe.TitleID), nil).Once()
				r.matchRepo.On("Create", r.ctx, mock.AnythingOfType("model.Match")).
					Return(nil).Once()
				r.notifier.On("NotifyMatchFound", swipe.RoomID.String(), mock.AnythingOfType("model.MatchFound")).
					Return().Once()
			},
			expectMatched: true,
			expectPayload: true,
		},
		{
			name:     "Should treat superlike as a positive decision",
			decision: model.DecisionSuperlike,
			setupMocks: func(r *resources, swipe model.Swipe) {
				r.swipeRepo.On("Upsert", r.ctx, swipe).Return(nil).Once()
				r.swipeRepo.On("HasOtherPositive", r.ctx, swipe.RoomID, swipe.UserID, swipe.TitleID, swipe.MediaType).
					Return(true, nil).Once()
				r.catalog.On("Details", r.ctx, swipe.TitleID, swipe.MediaType).
					Return(validCard(swipe.TitleID), nil).Once()
				r.matchRepo.On("Create", r.ctx, mock.AnythingOfType("model.Match")).
					Return(nil).Once()
				r.notifier.On("NotifyMatchFound", swipe.RoomID.String(), mock.AnythingOfType("model.MatchFound")).
					Return().Once()
			},
			expectMatched: true,
			expectPayload: true,
		},
		{
			name:     "Should report matched without payload when a concurrent submission won",
			decision: model.DecisionLike,
			setupMocks: func(r *resources, swipe model.Swipe) {
				r.swipeRepo.On("Upsert", r.ctx, swipe).Return(nil).Once()
				r.swipeRepo.On("HasOtherPositive", r.ctx, swipe.RoomID, swipe.UserID, swipe.TitleID, swipe.MediaType).
					Return(true, nil).Once()
				r.catalog.On("Details", r.ctx, swipe.TitleID, swipe.MediaType).
					Return(validCard(swipe.TitleID), nil).Once()
				r.matchRepo.On("Create", r.ctx, mock.AnythingOfType("model.Match")).
					Return(ErrAlreadyMatched).Once()
			},
			expectMatched: true,
			expectPayload: false,
		},
		{
			name:     "Should create match with placeholder when catalog fails",
			decision: model.DecisionLike,
			setupMocks: func(r *resources, swipe model.Swipe) {
				r.swipeRepo.On("Upsert", r.ctx, swipe).Return(nil).Once()
				r.swipeRepo.On("HasOtherPositive", r.ctx, swipe.RoomID, swipe.UserID, swipe.TitleID, swipe.MediaType).
					Return(true, nil).Once()
				r.catalog.On("Details", r.ctx, swipe.TitleID, swipe.MediaType).
					Return(model.TitleCard{}, errors.New("catalog down")).Once()
				r.matchRepo.On("Create", r.ctx, mock.MatchedBy(func(m model.Match) bool {
					return m.Title == "Matched Title"
				})).Return(nil).Once()
				r.notifier.On("NotifyMatchFound", swipe.RoomID.String(), mock.AnythingOfType("model.MatchFound")).
					Return().Once()
			},
			expectMatched: true,
			expectPayload: true,
		},
		{
			name:     "Should return error when swipe repository fails",
			decision: model.DecisionLike,
			setupMocks: func(r *resources, swipe model.Swipe) {
				r.swipeRepo.On("Upsert", r.ctx, swipe).
					Return(errors.New("db down")).Once()
			},
			expectError:   true,
			expectedError: ErrInternal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			swipe := validSwipe(tc.decision)
			tc.setupMocks(r, swipe)

			outcome, err := r.usecase.Submit(r.ctx, swipe)

			if tc.expectError {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.expectMatched, outcome.Matched)
			if tc.expectPayload {
				assert.NotNil(t, outcome.Match)
				assert.Equal(t, swipe.TitleID, outcome.Match.TitleID)
				assert.Equal(t, swipe.RoomID, outcome.Match.RoomID)
			} else {
				assert.Nil(t, outcome.Match)
			}
			r.swipeRepo.AssertExpectations(t)
			r.matchRepo.AssertExpectations(t)
			r.notifier.AssertExpectations(t)
		})
	}
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseSwipeUnitSuite))
}
