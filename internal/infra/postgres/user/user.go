package infra_postgres_user

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/streamsync/core/internal/model"
	usecase_auth "github.com/streamsync/core/internal/usecase/auth"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type userDTO struct {
	ID          uuid.UUID `db:"id"`
	DisplayName string    `db:"display_name"`
	CreatedAt   time.Time `db:"created_at"`
}

func (d *Driver) CreateUser(ctx context.Context, user model.User) error {
	query := `
		INSERT INTO users (id, display_name)
		VALUES ($1, $2)
	`

	_, err := d.db.ExecContext(ctx, query, user.ID, user.DisplayName)
	return err
}

func (d *Driver) UserByID(ctx context.Context, userID uuid.UUID) (model.User, error) {
	var user userDTO

	query := `
		SELECT id, display_name, created_at
		FROM users
		WHERE id = $1
	`

	err := d.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.User{}, usecase_auth.ErrResourceNotFound
		}
		return model.User{}, err
	}

	return model.User{
		ID:          user.ID,
		DisplayName: user.DisplayName,
		CreatedAt:   user.CreatedAt,
	}, nil
}
