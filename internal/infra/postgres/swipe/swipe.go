package infra_postgres_swipe

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/streamsync/core/internal/model"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

// Upsert keeps at most one current decision per (room, user, title, media
// type). A repeat submission overwrites the prior decision.
func (d *Driver) Upsert(ctx context.Context, swipe model.Swipe) error {
	query := `
		INSERT INTO swipes (room_id, user_id, title_id, media_type, decision)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (room_id, user_id, title_id, media_type)
		DO UPDATE SET decision = EXCLUDED.decision, created_at = now()
	`

	_, err := d.db.ExecContext(ctx, query,
		swipe.RoomID, swipe.UserID, swipe.TitleID, string(swipe.MediaType), string(swipe.Decision),
	)
	return err
}

func (d *Driver) HasOtherPositive(ctx context.Context, roomID, userID uuid.UUID, titleID int64, mediaType model.MediaType) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM swipes
			WHERE room_id = $1
			  AND title_id = $2
			  AND media_type = $3
			  AND user_id <> $4
			  AND decision IN ('like', 'superlike')
		)
	`

	var exists bool
	err := d.db.GetContext(ctx, &exists, query, roomID, titleID, string(mediaType), userID)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (d *Driver) SwipedTitleIDs(ctx context.Context, roomID, userID uuid.UUID, mediaType model.MediaType) ([]int64, error) {
	query := `
		SELECT title_id FROM swipes
		WHERE room_id = $1 AND user_id = $2 AND media_type = $3
	`

	var ids []int64
	err := d.db.SelectContext(ctx, &ids, query, roomID, userID, string(mediaType))
	if err != nil {
		return nil, err
	}

	return ids, nil
}
