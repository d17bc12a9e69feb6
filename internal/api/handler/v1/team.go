package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/111KartoFan111/kurultai-project/internal/api/handler/v1/request"
	"github.com/111KartoFan111/kurultai-project/internal/api/handler/v1/response"
	"github.com/111KartoFan111/kurultai-project/internal/domain"
	"github.com/111KartoFan111/kurultai-project/internal/service"
)

type TeamService interface {
	CreateTeam(ctx context.Context, input service.CreateTeamInput) (domain.Team, error)
	ListTeams(ctx context.Context) ([]domain.Team, error)
}

type LeagueService interface {
	CreateLeague(ctx context.Context, name string) (domain.League, error)
	ListLeagues(ctx context.Context) ([]domain.League, error)
}

type TeamHandler struct {
	svc       TeamService
	leagueSvc LeagueService
}

func NewTeamHandler(svc TeamService, leagueSvc LeagueService) *TeamHandler {
	return &TeamHandler{
		svc:       svc,
		leagueSvc: leagueSvc,
	}
}

// HandleCreateTeam godoc
// @Summary      Create a team
// @Security     BearerAuth
// @Tags         teams
// @Produce      json
// @Param        request  body       request.CreateTeamRequest true "request body"
// @Success      201      {object}   domain.Team
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /teams [post]
func (h *TeamHandler) HandleCreateTeam(ctx *gin.Context) {
	var req request.CreateTeamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	team, err := h.svc.CreateTeam(ctx.Request.Context(), service.CreateTeamInput{
		Name:       req.Name,
		Speaker1ID: req.Speaker1ID,
		Speaker2ID: req.Speaker2ID,
	})
	if err != nil {
		if errors.Is(err, service.ErrSpeakerNotFound) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleCreateTeam -> h.svc.CreateTeam -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, team)
}

// HandleListTeams godoc
// @Summary      List all teams
// @Security     BearerAuth
// @Tags         teams
// @Produce      json
// @Success      200      {array}    domain.Team
// @Failure      500      {object}   response.Err
// @Router       /teams [get]
func (h *TeamHandler) HandleListTeams(ctx *gin.Context) {
	teams, err := h.svc.ListTeams(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListTeams -> h.svc.ListTeams -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, teams)
}

// HandleCreateLeague godoc
// @Summary      Create a league
// @Security     BearerAuth
// @Tags         leagues
// @Produce      json
// @Param        request  body       request.CreateLeagueRequest true "request body"
// @Success      201      {object}   domain.League
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /leagues [post]
func (h *TeamHandler) HandleCreateLeague(ctx *gin.Context) {
	var req request.CreateLeagueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	league, err := h.leagueSvc.CreateLeague(ctx.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrLeagueExists) {
			response.RenderErr(ctx, response.ErrConflict(err))

			return
		}

		err = fmt.Errorf("v1.HandleCreateLeague -> h.leagueSvc.CreateLeague -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, league)
}

// HandleListLeagues godoc
// @Summary      List all leagues
// @Security     BearerAuth
// @Tags         leagues
// @Produce      json
// @Success      200      {array}    domain.League
// @Failure      500      {object}   response.Err
// @Router       /leagues [get]
func (h *TeamHandler) HandleListLeagues(ctx *gin.Context) {
	leagues, err := h.leagueSvc.ListLeagues(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListLeagues -> h.leagueSvc.ListLeagues -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, leagues)
}
