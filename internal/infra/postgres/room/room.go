package infra_postgres_room

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/streamsync/core/internal/model"
	usecase_room "github.com/streamsync/core/internal/usecase/room"
)

type Driver struct {
	db *sqlx.DB
}

func New(
	db *sqlx.DB,
) *Driver {
	return &Driver{db: db}
}

type roomDTO struct {
	ID        uuid.UUID `db:"id"`
	Code      string    `db:"code"`
	Region    string    `db:"region"`
	MatchRule string    `db:"match_rule"`
	CreatedBy uuid.UUID `db:"created_by"`
	CreatedAt time.Time `db:"created_at"`
}

type memberDTO struct {
	RoomID          uuid.UUID     `db:"room_id"`
	UserID          uuid.UUID     `db:"user_id"`
	DisplayName     string        `db:"display_name"`
	ActiveProviders pq.Int64Array `db:"active_providers"`
	Ready           bool          `db:"ready"`
}

func (dto memberDTO) toModel() model.Member {
	return model.Member{
		RoomID:          dto.RoomID,
		UserID:          dto.UserID,
		DisplayName:     dto.DisplayName,
		ActiveProviders: []int64(dto.ActiveProviders),
		Ready:           dto.Ready,
	}
}

func (dto roomDTO) toModel() model.Room {
	return model.Room{
		ID:        dto.ID,
		Code:      dto.Code,
		Region:    dto.Region,
		MatchRule: model.MatchRule(dto.MatchRule),
		CreatedBy: dto.CreatedBy,
		CreatedAt: dto.CreatedAt,
	}
}

// CreateRoomWithCreator inserts the room and its first member in one tx so a
// room never exists without its creator.
func (d *Driver) CreateRoomWithCreator(ctx context.Context, room model.Room, creator model.Member) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	roomQuery := `
		INSERT INTO rooms (id, code, region, match_rule, created_by)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := tx.ExecContext(ctx, roomQuery,
		room.ID, room.Code, room.Region, string(room.MatchRule), room.CreatedBy,
	); err != nil {
		if isUniqueViolation(err) {
			return usecase_room.ErrCodeConflict
		}
		return err
	}

	memberQuery := `
		INSERT INTO room_members (room_id, user_id, active_providers, ready)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := tx.ExecContext(ctx, memberQuery,
		creator.RoomID, creator.UserID, pq.Int64Array(creator.ActiveProviders), creator.Ready,
	); err != nil {
		return err
	}

	return tx.Commit()
}

func (d *Driver) RoomByCode(ctx context.Context, code string) (model.Room, error) {
	var room roomDTO

	query := `
		SELECT id, code, region, match_rule, created_by, created_at
		FROM rooms
		WHERE code = $1
	`

	err := d.db.GetContext(ctx, &room, query, code)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Room{}, usecase_room.ErrResourceNotFound
		}
		return model.Room{}, err
	}

	return room.toModel(), nil
}

func (d *Driver) RoomByID(ctx context.Context, roomID uuid.UUID) (model.Room, error) {
	var room roomDTO

	query := `
		SELECT id, code, region, match_rule, created_by, created_at
		FROM rooms
		WHERE id = $1
	`

	err := d.db.GetContext(ctx, &room, query, roomID)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Room{}, usecase_room.ErrResourceNotFound
		}
		return model.Room{}, err
	}

	return room.toModel(), nil
}

// UpsertMember is a no-op for an existing (room, user) pair: re-joining must
// not reset providers or readiness.
func (d *Driver) UpsertMember(ctx context.Context, member model.Member) error {
	query := `
		INSERT INTO room_members (room_id, user_id, active_providers, ready)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (room_id, user_id)
		DO NOTHING
	`

	_, err := d.db.ExecContext(ctx, query,
		member.RoomID, member.UserID, pq.Int64Array(member.ActiveProviders), member.Ready,
	)
	return err
}

func (d *Driver) Member(ctx context.Context, roomID, userID uuid.UUID) (model.Member, error) {
	var member memberDTO

	query := `
		SELECT m.room_id, m.user_id, u.display_name, m.active_providers, m.ready
		FROM room_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.room_id = $1 AND m.user_id = $2
	`

	err := d.db.GetContext(ctx, &member, query, roomID, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Member{}, usecase_room.ErrResourceNotFound
		}
		return model.Member{}, err
	}

	return member.toModel(), nil
}

func (d *Driver) SetProviders(ctx context.Context, roomID, userID uuid.UUID, providers []int64) error {
	query := `
		UPDATE room_members
		SET active_providers = $1
		WHERE room_id = $2 AND user_id = $3
	`

	result, err := d.db.ExecContext(ctx, query, pq.Int64Array(providers), roomID, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return usecase_room.ErrResourceNotFound
	}

	return nil
}

func (d *Driver) SetReady(ctx context.Context, roomID, userID uuid.UUID, ready bool) error {
	query := `
		UPDATE room_members
		SET ready = $1
		WHERE room_id = $2 AND user_id = $3
	`

	result, err := d.db.ExecContext(ctx, query, ready, roomID, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return usecase_room.ErrResourceNotFound
	}

	return nil
}

func (d *Driver) Members(ctx context.Context, roomID uuid.UUID) ([]model.Member, error) {
	return d.members(ctx, roomID, false)
}

func (d *Driver) ReadyMembers(ctx context.Context, roomID uuid.UUID) ([]model.Member, error) {
	return d.members(ctx, roomID, true)
}

func (d *Driver) members(ctx context.Context, roomID uuid.UUID, readyOnly bool) ([]model.Member, error) {
	var dtos []memberDTO

	query := `
		SELECT m.room_id, m.user_id, u.display_name, m.active_providers, m.ready
		FROM room_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.room_id = $1
	`
	if readyOnly {
		query += ` AND m.ready = true`
	}

	err := d.db.SelectContext(ctx, &dtos, query, roomID)
	if err != nil {
		return nil, err
	}

	members := make([]model.Member, 0, len(dtos))
	for _, dto := range dtos {
		members = append(members, dto.toModel())
	}

	return members, nil
}

func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "unique constraint") ||
		strings.Contains(err.Error(), "duplicate key")
}
