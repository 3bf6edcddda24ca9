package http_stack

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/streamsync/core/internal/delivery/http/common"
	http_auth_middleware "github.com/streamsync/core/internal/delivery/http/middleware/auth"
	"github.com/streamsync/core/internal/model"
	usecase_stack "github.com/streamsync/core/internal/usecase/stack"
)

const (
	defaultLimit = 20
	maxLimit     = 50
)

type Controller struct {
	usecase *usecase_stack.Usecase
	auth    *http_auth_middleware.Middleware
	logger  *slog.Logger
}

func New(
	usecase *usecase_stack.Usecase,
	auth *http_auth_middleware.Middleware,
) *Controller {
	return &Controller{
		usecase: usecase,
		auth:    auth,
		logger:  slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/rooms/:room_id/stack", c.auth.AuthRequired(), c.stack)
}

type StackResponseDTO struct {
	Cards   []model.TitleCard `json:"cards"`
	Page    int               `json:"page"`
	HasMore bool              `json:"hasMore"`
}

// @Summary Get swipe stack
// @Description Returns a page of candidate titles for the caller, excluding everything already swiped
// @Tags Stack
// @Produce json
// @Param room_id path string true "Room id"
// @Param mediaType query string false "movie or tv" default(movie)
// @Param limit query int false "1-50" default(20)
// @Success 200 {object} StackResponseDTO "Stack page"
// @Failure 400 {object} http_common.ErrorResponse "Invalid request"
// @Failure 404 {object} http_common.ErrorResponse "Room not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /rooms/{room_id}/stack [get]
func (c *Controller) stack(ctx *gin.Context) {
	userID, ok := http_auth_middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{Message: "unauthorized"})
		return
	}

	roomID, err := uuid.Parse(ctx.Param("room_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "invalid room id"})
		return
	}

	mediaType := model.MediaType(ctx.DefaultQuery("mediaType", string(model.MediaTypeMovie)))
	if !mediaType.Valid() {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "mediaType must be movie or tv",
		})
		return
	}

	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 || limit > maxLimit {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "limit must be between 1 and 50",
		})
		return
	}

	stack, err := c.usecase.GetStack(ctx, roomID, userID, mediaType, limit)
	if err != nil {
		c.logger.Error("failed to build stack", slog.String("error", err.Error()))
		if errors.Is(err, usecase_stack.ErrResourceNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "room not found",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	cards := stack.Cards
	if cards == nil {
		cards = []model.TitleCard{}
	}

	ctx.JSON(http.StatusOK, StackResponseDTO{
		Cards:   cards,
		Page:    stack.Page,
		HasMore: stack.HasMore,
	})
}
