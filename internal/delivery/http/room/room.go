package http_room

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/streamsync/core/internal/delivery/http/common"
	http_auth_middleware "github.com/streamsync/core/internal/delivery/http/middleware/auth"
	ws_room "github.com/streamsync/core/internal/delivery/ws/room"
	usecase_room "github.com/streamsync/core/internal/usecase/room"
)

type Controller struct {
	usecase *usecase_room.Usecase
	hub     *ws_room.Hub
	auth    *http_auth_middleware.Middleware
	logger  *slog.Logger
}

func New(
	usecase *usecase_room.Usecase,
	hub *ws_room.Hub,
	auth *http_auth_middleware.Middleware,
) *Controller {
	return &Controller{
		usecase: usecase,
		hub:     hub,
		auth:    auth,
		logger:  slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	rooms := router.Group("/rooms", c.auth.AuthRequired())
	{
		rooms.POST("", c.create)
		rooms.POST("/join", c.join)
		rooms.PUT("/:room_id/me/providers", c.setProviders)
		rooms.PUT("/:room_id/me/ready", c.setReady)
		rooms.GET("/:room_id/members", c.members)
	}
}

type RoomResponseDTO struct {
	RoomID string `json:"roomId"`
	Code   string `json:"code"`
}

// @Summary Create room
// @Description Creates a new room with the caller as its first member
// @Tags Rooms
// @Produce json
// @Success 201 {object} RoomResponseDTO "Room created"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Failure 503 {object} http_common.ErrorResponse "No room codes available"
// @Router /rooms [post]
func (c *Controller) create(ctx *gin.Context) {
	userID, ok := http_auth_middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{Message: "unauthorized"})
		return
	}

	room, err := c.usecase.Create(ctx, userID)
	if err != nil {
		c.logger.Error("failed to create room", slog.String("error", err.Error()))
		if errors.Is(err, usecase_room.ErrRoomsUnavailable) {
			ctx.JSON(http.StatusServiceUnavailable, http_common.ErrorResponse{
				Message: "unavailable",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.JSON(http.StatusCreated, RoomResponseDTO{
		RoomID: room.ID.String(),
		Code:   room.Code,
	})
}

type JoinRequestDTO struct {
	Code string `json:"code" binding:"required,min=4,max=8"`
}

// @Summary Join room by code
// @Description Adds the caller to the room; re-joining is a no-op
// @Tags Rooms
// @Accept json
// @Produce json
// @Param request body JoinRequestDTO true "Room code"
// @Success 200 {object} RoomResponseDTO "Joined"
// @Failure 400 {object} http_common.ErrorResponse "Invalid request"
// @Failure 404 {object} http_common.ErrorResponse "Room not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /rooms/join [post]
func (c *Controller) join(ctx *gin.Context) {
	userID, ok := http_auth_middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{Message: "unauthorized"})
		return
	}

	var req JoinRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "code must be 4-8 characters",
		})
		return
	}

	room, err := c.usecase.Join(ctx, req.Code, userID)
	if err != nil {
		c.logger.Error("failed to join room", slog.String("error", err.Error()))
		if errors.Is(err, usecase_room.ErrResourceNotFound) {
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

	// Tell current subscribers the member list changed; the joiner's socket
	// announces itself separately on join_room.
	if member, err := c.usecase.Member(ctx, room.ID, userID); err == nil {
		c.hub.NotifyReadyChanged(room.ID.String(), member)
	}

	ctx.JSON(http.StatusOK, RoomResponseDTO{
		RoomID: room.ID.String(),
		Code:   room.Code,
	})
}

type SetProvidersRequestDTO struct {
	Providers []int64 `json:"providers" binding:"required,min=1,max=20,dive,gt=0"`
}

type SuccessResponseDTO struct {
	Success bool `json:"success"`
}

// @Summary Set my streaming providers
// @Tags Rooms
// @Accept json
// @Produce json
// @Param room_id path string true "Room id"
// @Param request body SetProvidersRequestDTO true "Provider ids"
// @Success 200 {object} SuccessResponseDTO "Updated"
// @Failure 400 {object} http_common.ErrorResponse "Invalid request"
// @Failure 404 {object} http_common.ErrorResponse "Membership not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /rooms/{room_id}/me/providers [put]
func (c *Controller) setProviders(ctx *gin.Context) {
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

	var req SetProvidersRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "providers must be 1-20 positive ids",
		})
		return
	}

	member, err := c.usecase.SetProviders(ctx, roomID, userID, req.Providers)
	if err != nil {
		c.logger.Error("failed to set providers", slog.String("error", err.Error()))
		if errors.Is(err, usecase_room.ErrResourceNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "membership not found",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	c.hub.NotifyReadyChanged(roomID.String(), member)

	ctx.JSON(http.StatusOK, SuccessResponseDTO{Success: true})
}

type SetReadyRequestDTO struct {
	Ready *bool `json:"ready" binding:"required"`
}

// @Summary Set my readiness
// @Tags Rooms
// @Accept json
// @Produce json
// @Param room_id path string true "Room id"
// @Param request body SetReadyRequestDTO true "Ready flag"
// @Success 200 {object} SuccessResponseDTO "Updated"
// @Failure 400 {object} http_common.ErrorResponse "Invalid request"
// @Failure 404 {object} http_common.ErrorResponse "Membership not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /rooms/{room_id}/me/ready [put]
func (c *Controller) setReady(ctx *gin.Context) {
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

	var req SetReadyRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "ready flag is required",
		})
		return
	}

	member, err := c.usecase.SetReady(ctx, roomID, userID, *req.Ready)
	if err != nil {
		c.logger.Error("failed to set ready", slog.String("error", err.Error()))
		if errors.Is(err, usecase_room.ErrResourceNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "membership not found",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	c.hub.NotifyReadyChanged(roomID.String(), member)

	ctx.JSON(http.StatusOK, SuccessResponseDTO{Success: true})
}

type MemberDTO struct {
	UserID          string  `json:"userId"`
	DisplayName     string  `json:"displayName"`
	Ready           bool    `json:"ready"`
	ActiveProviders []int64 `json:"activeProviders"`
}

// @Summary List room members
// @Tags Rooms
// @Produce json
// @Param room_id path string true "Room id"
// @Success 200 {array} MemberDTO "Members"
// @Failure 404 {object} http_common.ErrorResponse "Room not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /rooms/{room_id}/members [get]
func (c *Controller) members(ctx *gin.Context) {
	roomID, err := uuid.Parse(ctx.Param("room_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "invalid room id"})
		return
	}

	members, err := c.usecase.Members(ctx, roomID)
	if err != nil {
		c.logger.Error("failed to list members", slog.String("error", err.Error()))
		if errors.Is(err, usecase_room.ErrResourceNotFound) {
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

	dtos := make([]MemberDTO, 0, len(members))
	for _, m := range members {
		providers := m.ActiveProviders
		if providers == nil {
			providers = []int64{}
		}
		dtos = append(dtos, MemberDTO{
			UserID:          m.UserID.String(),
			DisplayName:     m.DisplayName,
			Ready:           m.Ready,
			ActiveProviders: providers,
		})
	}

	ctx.JSON(http.StatusOK, dtos)
}
