package usecase_swipe

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/streamsync/core/internal/model"
)

var (
	ErrAlreadyMatched   = errors.New("already matched")
	ErrResourceNotFound = errors.New("no such resource")
	ErrInternal         = errors.New("internal error")
)

//go:generate mockery --name=SwipeRepository --output=./mocks/swipe/repository --filename=repository.go
type SwipeRepository interface {
	Upsert(ctx context.Context, swipe model.Swipe) error
	HasOtherPositive(ctx context.Context, roomID, userID uuid.UUID, titleID int64, mediaType model.MediaType) (bool, error)
}

// MatchRepository.Create must return ErrAlreadyMatched on a unique-constraint
// violation; that constraint, not the pre-check, is the concurrency guard.
//
//go:generate mockery --name=MatchRepository --output=./mocks/swipe/match_repository --filename=match_repository.go
type MatchRepository interface {
	Create(ctx context.Context, match model.Match) error
}

//go:generate mockery --name=Catalog --output=./mocks/swipe/catalog --filename=catalog.go
type Catalog interface {
	Details(ctx context.Context, titleID int64, mediaType model.MediaType) (model.TitleCard, error)
}

//go:generate mockery --name=Notifier --output=./mocks/swipe/notifier --filename=notifier.go
type Notifier interface {
	NotifyMatchFound(roomID string, payload model.MatchFound)
}

type Outcome struct {
	Matched bool
	Match   *model.Match
}

type Usecase struct {
	swipes   SwipeRepository
	matches  MatchRepository
	catalog  Catalog
	notifier Notifier

	logger *slog.Logger
}

func New(
	swipes SwipeRepository,
	matches MatchRepository,
	catalog Catalog,
	notifier Notifier,
) *Usecase {
	return &Usecase{
		swipes:   swipes,
		matches:  matches,
		catalog:  catalog,
		notifier: notifier,
		logger:   slog.Default(),
	}
}

// Submit records the decision and evaluates the match condition. Repeat
// submissions for the same (room, user, title, mediaType) overwrite the
// previous decision rather than erroring.
func (u *Usecase) Submit(ctx context.Context, swipe model.Swipe) (Outcome, error) {
	if err := u.swipes.Upsert(ctx, swipe); err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return Outcome{}, ErrResourceNotFound
		}
		return Outcome{}, errors.Join(ErrInternal, err)
	}

	// No match can come out of a negative swipe.
	if !swipe.Decision.Positive() {
		return Outcome{Matched: false}, nil
	}

	// Pre-filter only. The unique constraint below is what makes concurrent
	// submissions race-free.
	otherLiked, err := u.swipes.HasOtherPositive(ctx, swipe.RoomID, swipe.UserID, swipe.TitleID, swipe.MediaType)
	if err != nil {
		return Outcome{}, errors.Join(ErrInternal, err)
	}
	if !otherLiked {
		return Outcome{Matched: false}, nil
	}

	match := model.Match{
		ID:        uuid.New(),
		RoomID:    swipe.RoomID,
		TitleID:   swipe.TitleID,
		MediaType: swipe.MediaType,
		MatchedAt: time.Now().UTC(),
	}
	u.enrich(ctx, &match)

	if err := u.matches.Create(ctx, match); err != nil {
		// A concurrent submission won the race. The semantic outcome (a
		// match exists) is exactly what was asked for.
		if errors.Is(err, ErrAlreadyMatched) {
			u.logger.Debug("title already matched",
				"room_id", swipe.RoomID, "title_id", swipe.TitleID)
			return Outcome{Matched: true}, nil
		}
		return Outcome{}, errors.Join(ErrInternal, err)
	}

	u.notifier.NotifyMatchFound(match.RoomID.String(), buildMatchFound(match))

	return Outcome{Matched: true, Match: &match}, nil
}

// enrich fills the display snapshot from the catalog. Enrichment failure must
// never abort match creation, so it degrades to a placeholder.
func (u *Usecase) enrich(ctx context.Context, match *model.Match) {
	card, err := u.catalog.Details(ctx, match.TitleID, match.MediaType)
	if err != nil {
		u.logger.Warn("title details fetch failed, using placeholder metadata",
			"title_id", match.TitleID, "error", err)
		match.Title = "Matched Title"
		return
	}

	match.Title = card.Title
	match.Overview = card.Overview
	match.VoteAverage = card.VoteAverage
	if card.PosterPath != nil {
		match.PosterPath = *card.PosterPath
	}
	if card.ReleaseDate != nil {
		match.ReleaseDate = *card.ReleaseDate
	}
}

func buildMatchFound(match model.Match) model.MatchFound {
	card := model.TitleCard{
		TitleID:     match.TitleID,
		MediaType:   match.MediaType,
		Title:       match.Title,
		Overview:    match.Overview,
		VoteAverage: match.VoteAverage,
		GenreIDs:    []int64{},
		ProviderIDs: []int64{},
	}
	if match.PosterPath != "" {
		card.PosterPath = &match.PosterPath
	}
	if match.ReleaseDate != "" {
		card.ReleaseDate = &match.ReleaseDate
	}

	return model.MatchFound{
		RoomID:    match.RoomID.String(),
		TitleID:   match.TitleID,
		MediaType: match.MediaType,
		MatchedAt: match.MatchedAt.Format(time.RFC3339),
		Title:     card,
	}
}
