package usecase_auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/streamsync/core/internal/model"
)

var (
	ErrInternal         = errors.New("internal error")
	ErrInvalidToken     = errors.New("invalid token")
	ErrResourceNotFound = errors.New("no such resource")
)

//go:generate mockery --name=UserRepository --output=./mocks/auth/repository --filename=repository.go
type UserRepository interface {
	CreateUser(ctx context.Context, user model.User) error
	UserByID(ctx context.Context, userID uuid.UUID) (model.User, error)
}

type Tokens struct {
	AccessToken  string
	RefreshToken string
}

type Usecase struct {
	users UserRepository

	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func New(
	users UserRepository,
	secret string,
	accessTTL time.Duration,
	refreshTTL time.Duration,
) *Usecase {
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 30 * 24 * time.Hour
	}

	return &Usecase{
		users:      users,
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// CreateGuest persists a guest identity and signs a token pair for it.
// No email or password: fastest path to a first swipe.
func (u *Usecase) CreateGuest(ctx context.Context, displayName string) (Tokens, error) {
	user := model.User{
		ID:          uuid.New(),
		DisplayName: displayName,
		CreatedAt:   time.Now().UTC(),
	}

	if err := u.users.CreateUser(ctx, user); err != nil {
		return Tokens{}, errors.Join(ErrInternal, err)
	}

	access, err := u.sign(user, u.accessTTL)
	if err != nil {
		return Tokens{}, errors.Join(ErrInternal, err)
	}
	refresh, err := u.sign(user, u.refreshTTL)
	if err != nil {
		return Tokens{}, errors.Join(ErrInternal, err)
	}

	return Tokens{AccessToken: access, RefreshToken: refresh}, nil
}

func (u *Usecase) sign(user model.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":         user.ID.String(),
		"displayName": user.DisplayName,
		"iat":         now.Unix(),
		"exp":         now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
}

// Authenticate validates a bearer token and resolves the user behind it.
func (u *Usecase) Authenticate(ctx context.Context, token string) (model.User, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return u.secret, nil
	})
	if err != nil || !parsed.Valid {
		return model.User{}, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return model.User{}, ErrInvalidToken
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return model.User{}, ErrInvalidToken
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return model.User{}, ErrInvalidToken
	}

	user, err := u.users.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.User{}, ErrInvalidToken
		}
		return model.User{}, errors.Join(ErrInternal, err)
	}

	return user, nil
}
