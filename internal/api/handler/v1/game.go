package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/111KartoFan111/kurultai-project/internal/api/handler/v1/request"
	"github.com/111KartoFan111/kurultai-project/internal/api/handler/v1/response"
	"github.com/111KartoFan111/kurultai-project/internal/domain"
	"github.com/111KartoFan111/kurultai-project/internal/service"
)

type GameService interface {
	CreateGame(ctx context.Context, input service.CreateGameInput, now time.Time) (domain.Game, error)
	UpcomingGames(ctx context.Context, now time.Time, limit int) ([]domain.Game, error)
	UpdateGame(ctx context.Context, gameID uint, input service.UpdateGameInput) (domain.Game, error)
	DeleteGame(ctx context.Context, gameID uint) error
}

type GameHandler struct {
	svc GameService
}

func NewGameHandler(svc GameService) *GameHandler {
	return &GameHandler{
		svc: svc,
	}
}

// HandleCreateGame godoc
// @Summary      Schedule a new game
// @Security     BearerAuth
// @Tags         games
// @Produce      json
// @Param        request   body      request.CreateGameRequest true "request body"
// @Success      201      {object}   domain.Game
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /games [post]
func (h *GameHandler) HandleCreateGame(ctx *gin.Context) {
	var req request.CreateGameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	game, err := h.svc.CreateGame(ctx.Request.Context(), service.CreateGameInput{
		Topic:           req.Topic,
		MaxParticipants: req.MaxParticipants,
		GameDate:        req.GameDate,
		GameTime:        req.GameTime,
		Location:        req.Location,
		LeagueID:        req.LeagueID,
		JudgeID:         req.JudgeID,
	}, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGameFieldMissing),
			errors.Is(err, service.ErrGameCapacityInvalid),
			errors.Is(err, service.ErrGameScheduleInvalid),
			errors.Is(err, service.ErrGameSchedulePast),
			errors.Is(err, service.ErrLeagueNotFound),
			errors.Is(err, service.ErrJudgeNotFound):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleCreateGame -> h.svc.CreateGame -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, game)
}

// HandleUpcomingGames godoc
// @Summary      List the next scheduled games
// @Security     BearerAuth
// @Tags         games
// @Produce      json
// @Success      200      {array}    domain.Game
// @Failure      500      {object}   response.Err
// @Router       /games/upcoming [get]
func (h *GameHandler) HandleUpcomingGames(ctx *gin.Context) {
	games, err := h.svc.UpcomingGames(ctx.Request.Context(), time.Now(), service.DefaultUpcomingGamesLimit)
	if err != nil {
		err = fmt.Errorf("v1.HandleUpcomingGames -> h.svc.UpcomingGames -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, games)
}

// HandleUpdateGame godoc
// @Summary      Update a game's fields
// @Security     BearerAuth
// @Tags         games
// @Produce      json
// @Param        gameID   path       int true "game id"
// @Param        request  body       request.UpdateGameRequest true "request body"
// @Success      200      {object}   domain.Game
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /games/{gameID} [patch]
func (h *GameHandler) HandleUpdateGame(ctx *gin.Context) {
	gameID, err := parseIDParam(ctx, "gameID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.UpdateGameRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	game, err := h.svc.UpdateGame(ctx.Request.Context(), gameID, service.UpdateGameInput{
		Topic:           req.Topic,
		MaxParticipants: req.MaxParticipants,
		GameDate:        req.GameDate,
		GameTime:        req.GameTime,
		Location:        req.Location,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGameNotFound):
			response.RenderErr(ctx, response.ErrNotFound(err))
		case errors.Is(err, service.ErrGameScheduleInvalid):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleUpdateGame -> h.svc.UpdateGame -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, game)
}

// HandleDeleteGame godoc
// @Summary      Delete a game
// @Security     BearerAuth
// @Tags         games
// @Produce      json
// @Param        gameID   path       int true "game id"
// @Success      204      "no content"
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /games/{gameID} [delete]
func (h *GameHandler) HandleDeleteGame(ctx *gin.Context) {
	gameID, err := parseIDParam(ctx, "gameID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteGame(ctx.Request.Context(), gameID); err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteGame -> h.svc.DeleteGame -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
