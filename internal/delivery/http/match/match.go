package http_match

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
	usecase_match "github.com/streamsync/core/internal/usecase/match"
)

type Controller struct {
	usecase *usecase_match.Usecase
	auth    *http_auth_middleware.Middleware
	logger  *slog.Logger
}

func New(
	usecase *usecase_match.Usecase,
	auth *http_auth_middleware.Middleware,
) *Controller {
	return &Controller{
		usecase: usecase,
		auth:    auth,
		logger:  slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/rooms/:room_id/matches", c.auth.AuthRequired(), c.list)
}

type MatchDTO struct {
	ID          string  `json:"id"`
	TitleID     int64   `json:"tmdbId"`
	MediaType   string  `json:"mediaType"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"posterPath"`
	ReleaseDate string  `json:"releaseDate"`
	VoteAverage float64 `json:"voteAverage"`
	MatchedAt   string  `json:"matchedAt"`
}

type MatchListResponseDTO struct {
	Matches []MatchDTO `json:"matches"`
}

// @Summary List room matches
// @Description Returns the room's matches newest-first from the stored snapshot
// @Tags Matches
// @Produce json
// @Param room_id path string true "Room id"
// @Success 200 {object} MatchListResponseDTO "Matches"
// @Failure 404 {object} http_common.ErrorResponse "Room not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /rooms/{room_id}/matches [get]
func (c *Controller) list(ctx *gin.Context) {
	roomID, err := uuid.Parse(ctx.Param("room_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "invalid room id"})
		return
	}

	matches, err := c.usecase.Matches(ctx, roomID)
	if err != nil {
		c.logger.Error("failed to list matches", slog.String("error", err.Error()))
		if errors.Is(err, usecase_match.ErrResourceNotFound) {
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

	dtos := make([]MatchDTO, 0, len(matches))
	for _, m := range matches {
		dtos = append(dtos, buildMatchDTO(m))
	}

	ctx.JSON(http.StatusOK, MatchListResponseDTO{Matches: dtos})
}

func buildMatchDTO(m model.Match) MatchDTO {
	return MatchDTO{
		ID:          m.ID.String(),
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
