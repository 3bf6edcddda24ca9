package usecase_room

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/streamsync/core/internal/model"
	repo_mocks "github.com/streamsync/core/internal/usecase/room/mocks/room/repository"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UsecaseRoomUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase  *Usecase
	roomRepo *repo_mocks.RoomRepository
	ctx      context.Context
}

func initResources(t provider.T) *resources {
	roomRepo := repo_mocks.NewRoomRepository(t)
	usecase := New(roomRepo, "US", []int64{8, 337})

	return &resources{
		usecase:  usecase,
		roomRepo: roomRepo,
		ctx:      context.Background(),
	}
}

func memberWithProviders(roomID uuid.UUID, providers []int64) model.Member {
	return model.Member{
		RoomID:          roomID,
		UserID:          uuid.New(),
		ActiveProviders: providers,
		Ready:           true,
	}
}

func (suite *UsecaseRoomUnitSuite) TestCreate(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		setupMocks    func(r *resources)
		expectError   bool
		expectedError error
	}{
		{
			name: "Should create room successfully",
			setupMocks: func(r *resources) {
				r.roomRepo.On("CreateRoomWithCreator", r.ctx, mock.AnythingOfType("model.Room"), mock.AnythingOfType("model.Member")).
					Return(nil).Once()
			},
			expectError: false,
		},
		{
			name: "Should retry on code conflict and then succeed",
			setupMocks: func(r *resources) {
				r.roomRepo.On("CreateRoomWithCreator", r.ctx, mock.AnythingOfType("model.Room"), mock.AnythingOfType("model.Member")).
					Return(ErrCodeConflict).Once()
				r.roomRepo.On("CreateRoomWithCreator", r.ctx, mock.AnythingOfType("model.Room"), mock.AnythingOfType("model.Member")).
					Return(nil).Once()
			},
			expectError: false,
		},
		{
			name: "Should give up after exhausting retries",
			setupMocks: func(r *resources) {
				r.roomRepo.On("CreateRoomWithCreator", r.ctx, mock.AnythingOfType("model.Room"), mock.AnythingOfType("model.Member")).
					Return(ErrCodeConflict).Times(3)
			},
			expectError:   true,
			expectedError: ErrRoomsUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			room, err := r.usecase.Create(r.ctx, uuid.New())

			if tc.expectError {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Len(t, room.Code, model.RoomCodeLength)
				for _, ch := range room.Code {
					assert.Contains(t, model.RoomCodeAlphabet, string(ch))
				}
			}
			r.roomRepo.AssertExpectations(t)
		})
	}
}

func (suite *UsecaseRoomUnitSuite) TestJoin(t provider.T) {
	t.Parallel()

	roomID := uuid.New()

	testCases := []struct {
		name          string
		code          string
		setupMocks    func(r *resources)
		expectError   bool
		expectedError error
	}{
		{
			name: "Should join room successfully",
			code: "AB2C3",
			setupMocks: func(r *resources) {
				r.roomRepo.On("RoomByCode", r.ctx, "AB2C3").
					Return(model.Room{ID: roomID, Code: "AB2C3"}, nil).Once()
				r.roomRepo.On("UpsertMember", r.ctx, mock.AnythingOfType("model.Member")).
					Return(nil).Once()
			},
			expectError: false,
		},
		{
			name: "Should normalize code before lookup",
			code: "  ab2c3  ",
			setupMocks: func(r *resources) {
				r.roomRepo.On("RoomByCode", r.ctx, "AB2C3").
					Return(model.Room{ID: roomID, Code: "AB2C3"}, nil).Once()
				r.roomRepo.On("UpsertMember", r.ctx, mock.AnythingOfType("model.Member")).
					Return(nil).Once()
			},
			expectError: false,
		},
		{
			name: "Should return error when room does not exist",
			code: "ZZZZZ",
			setupMocks: func(r *resources) {
				r.roomRepo.On("RoomByCode", r.ctx, "ZZZZZ").
					Return(model.Room{}, ErrResourceNotFound).Once()
			},
			expectError:   true,
			expectedError: ErrResourceNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			room, err := r.usecase.Join(r.ctx, tc.code, uuid.New())

			if tc.expectError {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, roomID, room.ID)
			}
			r.roomRepo.AssertExpectations(t)
		})
	}
}

func (suite *UsecaseRoomUnitSuite) TestAggregateProviders(t provider.T) {
	t.Parallel()

	roomID := uuid.New()

	testCases := []struct {
		name       string
		setupMocks func(r *resources)
		expected   []int64
	}{
		{
			name: "Should return intersection when ready members overlap",
			setupMocks: func(r *resources) {
				r.roomRepo.On("ReadyMembers", r.ctx, roomID).Return([]model.Member{
					memberWithProviders(roomID, []int64{8, 337}),
					memberWithProviders(roomID, []int64{337, 1899}),
				}, nil).Once()
			},
			expected: []int64{337},
		},
		{
			name: "Should fall back to union when intersection is empty",
			setupMocks: func(r *resources) {
				r.roomRepo.On("ReadyMembers", r.ctx, roomID).Return([]model.Member{
					memberWithProviders(roomID, []int64{8}),
					memberWithProviders(roomID, []int64{337}),
				}, nil).Once()
			},
			expected: []int64{8, 337},
		},
		{
			name: "Should fall back to defaults when nobody selected providers",
			setupMocks: func(r *resources) {
				r.roomRepo.On("ReadyMembers", r.ctx, roomID).Return([]model.Member{
					memberWithProviders(roomID, []int64{}),
					memberWithProviders(roomID, nil),
				}, nil).Once()
			},
			expected: []int64{8, 337},
		},
		{
			name: "Should fall back to defaults when no ready members",
			setupMocks: func(r *resources) {
				r.roomRepo.On("ReadyMembers", r.ctx, roomID).
					Return([]model.Member{}, nil).Once()
			},
			expected: []int64{8, 337},
		},
		{
			name: "Should ignore duplicate ids within one member selection",
			setupMocks: func(r *resources) {
				r.roomRepo.On("ReadyMembers", r.ctx, roomID).Return([]model.Member{
					memberWithProviders(roomID, []int64{337, 337, 8}),
					memberWithProviders(roomID, []int64{337}),
				}, nil).Once()
			},
			expected: []int64{337},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			providers, err := r.usecase.AggregateProviders(r.ctx, roomID)

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, providers)
			r.roomRepo.AssertExpectations(t)
		})
	}
}

func (suite *UsecaseRoomUnitSuite) TestSetReady(t provider.T) {
	t.Parallel()

	roomID := uuid.New()
	userID := uuid.New()

	testCases := []struct {
		name          string
		setupMocks    func(r *resources)
		expectError   bool
		expectedError error
	}{
		{
			name: "Should return updated member after setting ready",
			setupMocks: func(r *resources) {
				r.roomRepo.On("SetReady", r.ctx, roomID, userID, true).Return(nil).Once()
				r.roomRepo.On("Member", r.ctx, roomID, userID).Return(model.Member{
					RoomID:          roomID,
					UserID:          userID,
					ActiveProviders: []int64{8},
					Ready:           true,
				}, nil).Once()
			},
			expectError: false,
		},
		{
			name: "Should return error when membership does not exist",
			setupMocks: func(r *resources) {
				r.roomRepo.On("SetReady", r.ctx, roomID, userID, true).
					Return(ErrResourceNotFound).Once()
			},
			expectError:   true,
			expectedError: ErrResourceNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			member, err := r.usecase.SetReady(r.ctx, roomID, userID, true)

			if tc.expectError {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
				assert.True(t, member.Ready)
				assert.Equal(t, userID, member.UserID)
			}
			r.roomRepo.AssertExpectations(t)
		})
	}
}

func (suite *UsecaseRoomUnitSuite) TestSetProviders(t provider.T) {
	t.Parallel()

	roomID := uuid.New()
	userID := uuid.New()
	providers := []int64{8, 337}

	testCases := []struct {
		name          string
		setupMocks    func(r *resources)
		expectError   bool
		expectedError error
	}{
		{
			name: "Should return updated member after setting providers",
			setupMocks: func(r *resources) {
				r.roomRepo.On("SetProviders", r.ctx, roomID, userID, providers).Return(nil).Once()
				r.roomRepo.On("Member", r.ctx, roomID, userID).Return(model.Member{
					RoomID:          roomID,
					UserID:          userID,
					ActiveProviders: providers,
				}, nil).Once()
			},
			expectError: false,
		},
		{
			name: "Should return error when membership does not exist",
			setupMocks: func(r *resources) {
				r.roomRepo.On("SetProviders", r.ctx, roomID, userID, providers).
					Return(ErrResourceNotFound).Once()
			},
			expectError:   true,
			expectedError: ErrResourceNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			member, err := r.usecase.SetProviders(r.ctx, roomID, userID, providers)

			if tc.expectError {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, providers, member.ActiveProviders)
			}
			r.roomRepo.AssertExpectations(t)
		})
	}
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseRoomUnitSuite))
}
