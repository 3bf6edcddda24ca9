package infra_postgres_match

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/streamsync/core/internal/model"
	usecase_swipe "github.com/streamsync/core/internal/usecase/swipe"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type matchDTO struct {
	ID          uuid.UUID `db:"id"`
	RoomID      uuid.UUID `db:"room_id"`
	TitleID     int64     `db:"title_id"`
	MediaType   string    `db:"media_type"`
	Title       string    `db:"title"`
	Overview    string    `db:"overview"`
	PosterPath  string    `db:"poster_path"`
	ReleaseDate string    `db:"release_date"`
	VoteAverage float64   `db:"vote_average"`
	MatchedAt   time.Time `db:"matched_at"`
}

func (dto matchDTO) toModel() model.Match {
	return model.Match{
		ID:          dto.ID,
		RoomID:      dto.RoomID,
		TitleID:     dto.TitleID,
		MediaType:   model.MediaType(dto.MediaType),
		Title:       dto.Title,
		Overview:    dto.Overview,
		PosterPath:  dto.PosterPath,
		ReleaseDate: dto.ReleaseDate,
		VoteAverage: dto.VoteAverage,
		MatchedAt:   dto.MatchedAt,
	}
}

// Create relies on the unique constraint over (room_id, title_id, media_type)
// as the race guard: whichever concurrent insert commits first wins, every
// other one surfaces as ErrAlreadyMatched.
func (d *Driver) Create(ctx context.Context, match model.Match) error {
	query := `
		INSERT INTO matches
			(id, room_id, title_id, media_type, title, overview, poster_path, release_date, vote_average, matched_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := d.db.ExecContext(ctx, query,
		match.ID, match.RoomID, match.TitleID, string(match.MediaType),
		match.Title, match.Overview, match.PosterPath, match.ReleaseDate,
		match.VoteAverage, match.MatchedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "unique constraint") ||
			strings.Contains(err.Error(), "duplicate key") {
			return usecase_swipe.ErrAlreadyMatched
		}
		return err
	}

	return nil
}

func (d *Driver) MatchesByRoom(ctx context.Context, roomID uuid.UUID) ([]model.Match, error) {
	var dtos []matchDTO

	query := `
		SELECT id, room_id, title_id, media_type, title, overview,
		       COALESCE(poster_path, '') AS poster_path,
		       COALESCE(release_date, '') AS release_date,
		       vote_average, matched_at
		FROM matches
		WHERE room_id = $1
		ORDER BY matched_at DESC
	`

	err := d.db.SelectContext(ctx, &dtos, query, roomID)
	if err != nil {
		return nil, err
	}

	matches := make([]model.Match, 0, len(dtos))
	for _, dto := range dtos {
		matches = append(matches, dto.toModel())
	}

	return matches, nil
}
