package usecase_room

import (
	"context"
	"errors"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/streamsync/core/internal/model"
)

var (
	ErrCodeConflict     = errors.New("code conflict")
	ErrRoomsUnavailable = errors.New("no available rooms")
	ErrInternal         = errors.New("internal error")
	ErrResourceNotFound = errors.New("no such resource")
)

//go:generate mockery --name=RoomRepository --output=./mocks/room/repository --filename=repository.go
type RoomRepository interface {
	CreateRoomWithCreator(ctx context.Context, room model.Room, creator model.Member) error
	RoomByCode(ctx context.Context, code string) (model.Room, error)
	RoomByID(ctx context.Context, roomID uuid.UUID) (model.Room, error)
	UpsertMember(ctx context.Context, member model.Member) error
	Member(ctx context.Context, roomID, userID uuid.UUID) (model.Member, error)
	SetProviders(ctx context.Context, roomID, userID uuid.UUID, providers []int64) error
	SetReady(ctx context.Context, roomID, userID uuid.UUID, ready bool) error
	Members(ctx context.Context, roomID uuid.UUID) ([]model.Member, error)
	ReadyMembers(ctx context.Context, roomID uuid.UUID) ([]model.Member, error)
}

type Usecase struct {
	RoomRepository RoomRepository

	defaultRegion    string
	defaultProviders []int64
}

func New(
	RoomRepository RoomRepository,
	defaultRegion string,
	defaultProviders []int64,
) *Usecase {
	if defaultRegion == "" {
		defaultRegion = model.DefaultRegion
	}

	return &Usecase{
		RoomRepository:   RoomRepository,
		defaultRegion:    defaultRegion,
		defaultProviders: defaultProviders,
	}
}

func (u *Usecase) Create(ctx context.Context, creatorID uuid.UUID) (model.Room, error) {
	// Assuming that codes can conflict.
	// Retrying...
	var retries = 3
	for retries > 0 {
		room := model.Room{
			ID:        uuid.New(),
			Code:      u.buildRoomCode(),
			Region:    u.defaultRegion,
			MatchRule: model.MatchRuleAnyTwo,
			CreatedBy: creatorID,
		}
		creator := model.Member{
			RoomID:          room.ID,
			UserID:          creatorID,
			ActiveProviders: []int64{},
			Ready:           false,
		}

		if err := u.RoomRepository.CreateRoomWithCreator(ctx, room, creator); err != nil {
			if errors.Is(err, ErrCodeConflict) {
				retries--
				continue
			}
			return model.Room{}, errors.Join(ErrInternal, err)
		}
		return room, nil
	}
	return model.Room{}, ErrRoomsUnavailable
}

func (u *Usecase) buildRoomCode() string {
	var builder strings.Builder
	builder.Grow(model.RoomCodeLength)

	for i := 0; i < model.RoomCodeLength; i++ {
		builder.WriteByte(model.RoomCodeAlphabet[rand.Intn(len(model.RoomCodeAlphabet))])
	}

	return builder.String()
}

// Join is idempotent: re-joining an existing member changes nothing.
func (u *Usecase) Join(ctx context.Context, code string, userID uuid.UUID) (model.Room, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	room, err := u.RoomRepository.RoomByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.Room{}, ErrResourceNotFound
		}
		return model.Room{}, errors.Join(ErrInternal, err)
	}

	member := model.Member{
		RoomID:          room.ID,
		UserID:          userID,
		ActiveProviders: []int64{},
		Ready:           false,
	}
	if err := u.RoomRepository.UpsertMember(ctx, member); err != nil {
		return model.Room{}, errors.Join(ErrInternal, err)
	}

	return room, nil
}

// SetProviders returns the updated member so callers can broadcast the full
// readiness payload, not just the changed field.
func (u *Usecase) SetProviders(ctx context.Context, roomID, userID uuid.UUID, providers []int64) (model.Member, error) {
	if err := u.RoomRepository.SetProviders(ctx, roomID, userID, providers); err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.Member{}, ErrResourceNotFound
		}
		return model.Member{}, errors.Join(ErrInternal, err)
	}

	return u.Member(ctx, roomID, userID)
}

func (u *Usecase) SetReady(ctx context.Context, roomID, userID uuid.UUID, ready bool) (model.Member, error) {
	if err := u.RoomRepository.SetReady(ctx, roomID, userID, ready); err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.Member{}, ErrResourceNotFound
		}
		return model.Member{}, errors.Join(ErrInternal, err)
	}

	return u.Member(ctx, roomID, userID)
}

func (u *Usecase) Member(ctx context.Context, roomID, userID uuid.UUID) (model.Member, error) {
	member, err := u.RoomRepository.Member(ctx, roomID, userID)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.Member{}, ErrResourceNotFound
		}
		return model.Member{}, errors.Join(ErrInternal, err)
	}
	return member, nil
}

func (u *Usecase) Members(ctx context.Context, roomID uuid.UUID) ([]model.Member, error) {
	members, err := u.RoomRepository.Members(ctx, roomID)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, errors.Join(ErrInternal, err)
	}
	return members, nil
}

func (u *Usecase) Region(ctx context.Context, roomID uuid.UUID) (string, error) {
	room, err := u.RoomRepository.RoomByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return "", ErrResourceNotFound
		}
		return "", errors.Join(ErrInternal, err)
	}
	if room.Region == "" {
		return u.defaultRegion, nil
	}
	return room.Region, nil
}

// AggregateProviders picks the provider set used to source the title stack:
// intersection across ready members, else their union, else the configured
// default pair. Ready members with empty selections count for neither.
func (u *Usecase) AggregateProviders(ctx context.Context, roomID uuid.UUID) ([]int64, error) {
	members, err := u.RoomRepository.ReadyMembers(ctx, roomID)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, errors.Join(ErrInternal, err)
	}

	if providers := intersectProviders(members); len(providers) > 0 {
		return providers, nil
	}
	if providers := unionProviders(members); len(providers) > 0 {
		return providers, nil
	}

	defaults := make([]int64, len(u.defaultProviders))
	copy(defaults, u.defaultProviders)
	return defaults, nil
}

func intersectProviders(members []model.Member) []int64 {
	if len(members) == 0 {
		return nil
	}

	counts := make(map[int64]int)
	for _, m := range members {
		seen := make(map[int64]bool, len(m.ActiveProviders))
		for _, id := range m.ActiveProviders {
			if !seen[id] {
				seen[id] = true
				counts[id]++
			}
		}
	}

	intersection := make([]int64, 0)
	added := make(map[int64]bool)
	for _, id := range members[0].ActiveProviders {
		if counts[id] == len(members) && !added[id] {
			added[id] = true
			intersection = append(intersection, id)
		}
	}
	return intersection
}

func unionProviders(members []model.Member) []int64 {
	seen := make(map[int64]bool)
	union := make([]int64, 0)
	for _, m := range members {
		for _, id := range m.ActiveProviders {
			if !seen[id] {
				seen[id] = true
				union = append(union, id)
			}
		}
	}
	return union
}
