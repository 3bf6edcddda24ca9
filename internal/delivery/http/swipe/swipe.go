package http_swipe

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/streamsync/core/internal/delivery/http/common"
	http_auth_middleware "github.com/streamsync/core/internal/delivery/http/middleware/auth"
	"github.com/streamsync/core/internal/model"
	usecase_swipe "github.com/streamsync/core/internal/usecase/swipe"
)

type Controller struct {
	usecase *usecase_swipe.Usecase
	auth    *http_auth_middleware.Middleware
	logger  *slog.Logger
}

func New(
	usecase *usecase_swipe.Usecase,
	auth *http_auth_middleware.Middleware,
) *Controller {
	return &Controller{
		usecase: usecase,
		auth:    auth,
		logger:  slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/rooms/:room_id/swipes", c.auth.AuthRequired(), c.submit)
}

type SwipeRequestDTO struct {
	TitleID   int64  `json:"tmdbId" binding:"required,gt=0"`
	MediaType string `json:"mediaType" binding:"required"`
	Decision  string `json:"decision" binding:"required"`
}

type MatchDTO struct {
	ID          string  `json:"id"`
	RoomID      string  `json:"roomId"`
	TitleID     int64   `json:"tmdbId"`
	MediaType   string  `json:"mediaType"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"posterPath"`
	ReleaseDate string  `json:"releaseDate"`
	VoteAverage float64 `json:"voteAverage"`
	MatchedAt   string  `json:"matchedAt"`
}

type SwipeResponseDTO struct {
	Matched bool      `json:"matched"`
	Match   *MatchDTO `json:"match,omitempty"`
}

// @Summary Submit swipe
// @Description Records the decision and reports whether it completed a match
// @Tags Swipes
// @Accept json
// @Produce json
// @Param room_id path string true "Room id"
// @Param request body SwipeRequestDTO true "Swipe decision"
// @Success 200 {object} SwipeResponseDTO "Decision recorded"
// @Failure 400 {object} http_common.ErrorResponse "Invalid request"
// @Failure 404 {object} http_common.ErrorResponse "Membership not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /rooms/{room_id}/swipes [post]
func (c *Controller) submit(ctx *gin.Context) {
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

	var req SwipeRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "tmdbId, mediaType and decision are required",
		})
		return
	}

	mediaType := model.MediaType(req.MediaType)
	if !mediaType.Valid() {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "mediaType must be movie or tv",
		})
		return
	}
	decision := model.Decision(req.Decision)
	if !decision.Valid() {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "decision must be like, nope or superlike",
		})
		return
	}

	outcome, err := c.usecase.Submit(ctx, model.Swipe{
		RoomID:    roomID,
		UserID:    userID,
		TitleID:   req.TitleID,
		MediaType: mediaType,
		Decision:  decision,
	})
	if err != nil {
		c.logger.Error("failed to submit swipe", slog.String("error", err.Error()))
		if errors.Is(err, usecase_swipe.ErrResourceNotFound) {
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

	resp := SwipeResponseDTO{Matched: outcome.Matched}
	if outcome.Match != nil {
		resp.Match = buildMatchDTO(*outcome.Match)
	}

	ctx.JSON(http.StatusOK, resp)
}

func buildMatchDTO(m model.Match) *MatchDTO {
	return &MatchDTO{
		ID:          m.ID.String(),
		RoomID:      m.RoomID.String(),
		TitleID:     m.TitleID,
		MediaType:   string(m.MediaType),
		Title:       m.Title,
		Overview:    m.Overview,
		PosterPath:  m.PosterPath,
		ReleaseDate: m.ReleaseDate,
		VoteAverage: m.VoteAverage,
		MatchedAt:   m.MatchedAt.Format(time.RFC3339),
	}
}
