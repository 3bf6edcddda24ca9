package usecase_match

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/streamsync/core/internal/model"
)

var (
	ErrResourceNotFound = errors.New("no such resource")
	ErrInternal         = errors.New("internal error")
)

//go:generate mockery --name=MatchRepository --output=./mocks/match/repository --filename=repository.go
type MatchRepository interface {
	MatchesByRoom(ctx context.Context, roomID uuid.UUID) ([]model.Match, error)
}

type Usecase struct {
	matches MatchRepository
}

func New(matches MatchRepository) *Usecase {
	return &Usecase{matches: matches}
}

// Matches lists a room's matches newest-first, straight from the snapshot
// taken at match time.
func (u *Usecase) Matches(ctx context.Context, roomID uuid.UUID) ([]model.Match, error) {
	matches, err := u.matches.MatchesByRoom(ctx, roomID)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, errors.Join(ErrInternal, err)
	}
	return matches, nil
}
