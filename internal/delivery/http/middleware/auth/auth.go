package http_auth_middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/streamsync/core/internal/delivery/http/common"
	"github.com/streamsync/core/internal/model"
	usecase_auth "github.com/streamsync/core/internal/usecase/auth"
)

const userContextKey = "authenticated_user"

type Middleware struct {
	auth   *usecase_auth.Usecase
	logger *slog.Logger
}

func New(auth *usecase_auth.Usecase) *Middleware {
	return &Middleware{
		auth:   auth,
		logger: slog.Default(),
	}
}

func (m *Middleware) AuthRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := bearerToken(ctx)
		if token == "" {
			ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Message: "missing bearer token",
			})
			ctx.Abort()
			return
		}

		user, err := m.auth.Authenticate(ctx, token)
		if err != nil {
			if errors.Is(err, usecase_auth.ErrInvalidToken) {
				ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
					Message: "invalid token",
				})
				ctx.Abort()
				return
			}
			m.logger.Error("auth middleware", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
			ctx.Abort()
			return
		}

		ctx.Set(userContextKey, user)
		ctx.Next()
	}
}

func bearerToken(ctx *gin.Context) string {
	header := ctx.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimPrefix(header, prefix)
}

// CurrentUser returns the authenticated user set by AuthRequired.
func CurrentUser(ctx *gin.Context) (model.User, bool) {
	v, ok := ctx.Get(userContextKey)
	if !ok {
		return model.User{}, false
	}
	user, ok := v.(model.User)
	return user, ok
}

// CurrentUserID is a shortcut for handlers that only need the id.
func CurrentUserID(ctx *gin.Context) (uuid.UUID, bool) {
	user, ok := CurrentUser(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return user.ID, true
}
