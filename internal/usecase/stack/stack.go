package usecase_stack

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/streamsync/core/internal/model"
	usecase_room "github.com/streamsync/core/internal/usecase/room"
)

var (
	ErrResourceNotFound = errors.New("no such resource")
	ErrInternal         = errors.New("internal error")
)

//go:generate mockery --name=RoomService --output=./mocks/stack/room_service --filename=room_service.go
type RoomService interface {
	AggregateProviders(ctx context.Context, roomID uuid.UUID) ([]int64, error)
	Region(ctx context.Context, roomID uuid.UUID) (string, error)
}

//go:generate mockery --name=Catalog --output=./mocks/stack/catalog --filename=catalog.go
type Catalog interface {
	Discover(ctx context.Context, mediaType model.MediaType, providers []int64, region string, page int) ([]model.TitleCard, error)
}

// StackCache mirrors the redis driver. Errors are treated as misses, never
// surfaced: the cache is an optimization, not a correctness requirement.
//
//go:generate mockery --name=StackCache --output=./mocks/stack/cache --filename=cache.go
type StackCache interface {
	Get(key string) (string, error)
	Set(key string, value string, ttl time.Duration) error
}

//go:generate mockery --name=SwipeRepository --output=./mocks/stack/swipe_repository --filename=swipe_repository.go
type SwipeRepository interface {
	SwipedTitleIDs(ctx context.Context, roomID, userID uuid.UUID, mediaType model.MediaType) ([]int64, error)
}

type Usecase struct {
	rooms   RoomService
	cache   StackCache
	catalog Catalog
	swipes  SwipeRepository

	cacheTTL time.Duration
	logger   *slog.Logger
}

func New(
	rooms RoomService,
	cache StackCache,
	catalog Catalog,
	swipes SwipeRepository,
	cacheTTL time.Duration,
) *Usecase {
	return &Usecase{
		rooms:    rooms,
		cache:    cache,
		catalog:  catalog,
		swipes:   swipes,
		cacheTTL: cacheTTL,
		logger:   slog.Default(),
	}
}

// GetStack builds a page of candidate titles for one member of a room.
// Catalog failures degrade to an empty stack: a session with no titles is a
// valid state, not an error.
func (u *Usecase) GetStack(ctx context.Context, roomID, userID uuid.UUID, mediaType model.MediaType, limit int) (model.Stack, error) {
	providers, err := u.rooms.AggregateProviders(ctx, roomID)
	if err != nil {
		if errors.Is(err, usecase_room.ErrResourceNotFound) {
			return model.Stack{}, ErrResourceNotFound
		}
		return model.Stack{}, errors.Join(ErrInternal, err)
	}

	region, err := u.rooms.Region(ctx, roomID)
	if err != nil {
		if errors.Is(err, usecase_room.ErrResourceNotFound) {
			return model.Stack{}, ErrResourceNotFound
		}
		return model.Stack{}, errors.Join(ErrInternal, err)
	}

	const page = 1
	cards := u.loadCards(ctx, region, providers, mediaType, page)

	swiped, err := u.swipes.SwipedTitleIDs(ctx, roomID, userID, mediaType)
	if err != nil {
		return model.Stack{}, errors.Join(ErrInternal, err)
	}
	swipedSet := make(map[int64]bool, len(swiped))
	for _, id := range swiped {
		swipedSet[id] = true
	}

	filtered := make([]model.TitleCard, 0, len(cards))
	seen := make(map[int64]bool, len(cards))
	for _, c := range cards {
		if swipedSet[c.TitleID] || seen[c.TitleID] {
			continue
		}
		seen[c.TitleID] = true
		filtered = append(filtered, c)
	}

	hasMore := len(filtered) > limit
	if hasMore {
		filtered = filtered[:limit]
	}

	return model.Stack{
		Cards:   filtered,
		Page:    page,
		HasMore: hasMore,
	}, nil
}

func (u *Usecase) loadCards(ctx context.Context, region string, providers []int64, mediaType model.MediaType, page int) []model.TitleCard {
	key := buildCacheKey(region, providers, mediaType, page)

	if cached, err := u.cache.Get(key); err != nil {
		u.logger.Warn("stack cache get failed", "key", key, "error", err)
	} else if cached != "" {
		var cards []model.TitleCard
		if err := json.Unmarshal([]byte(cached), &cards); err == nil {
			return cards
		}
		u.logger.Warn("stack cache entry corrupted", "key", key)
	}

	cards, err := u.catalog.Discover(ctx, mediaType, providers, region, page)
	if err != nil {
		u.logger.Warn("catalog discover failed, serving empty stack", "error", err)
		return nil
	}

	if len(cards) > 0 {
		if raw, err := json.Marshal(cards); err == nil {
			if err := u.cache.Set(key, string(raw), u.cacheTTL); err != nil {
				u.logger.Warn("stack cache set failed", "key", key, "error", err)
			}
		}
	}

	return cards
}

// Providers are sorted before keying so set-equal lists hit the same entry
// regardless of selection order.
func buildCacheKey(region string, providers []int64, mediaType model.MediaType, page int) string {
	sorted := make([]int64, len(providers))
	copy(sorted, providers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	parts := make([]string, len(sorted))
	for i, id := range sorted {
		parts[i] = strconv.FormatInt(id, 10)
	}

	return fmt.Sprintf("stack:%s:%s:%s:%d", region, strings.Join(parts, ","), mediaType, page)
}
