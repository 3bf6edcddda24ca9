package http_auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	http_common "github.com/streamsync/core/internal/delivery/http/common"
	usecase_auth "github.com/streamsync/core/internal/usecase/auth"
)

type Controller struct {
	auth   *usecase_auth.Usecase
	logger *slog.Logger
}

func New(auth *usecase_auth.Usecase) *Controller {
	return &Controller{
		auth:   auth,
		logger: slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/guest", c.guest)
	}
}

type GuestRequestDTO struct {
	DisplayName string `json:"displayName" binding:"required,max=30"`
}

type GuestResponseDTO struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// @Summary Create guest identity
// @Description Creates a guest user and returns a JWT token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body GuestRequestDTO true "Guest display name"
// @Success 201 {object} GuestResponseDTO "Tokens issued"
// @Failure 400 {object} http_common.ErrorResponse "Invalid request"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /auth/guest [post]
func (c *Controller) guest(ctx *gin.Context) {
	var req GuestRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "displayName must be 1-30 characters",
		})
		return
	}

	displayName := strings.TrimSpace(req.DisplayName)
	if displayName == "" {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "displayName must be 1-30 characters",
		})
		return
	}

	tokens, err := c.auth.CreateGuest(ctx, displayName)
	if err != nil {
		c.logger.Error("failed to create guest", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.JSON(http.StatusCreated, GuestResponseDTO{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}
