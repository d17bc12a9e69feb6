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
	"github.com/111KartoFan111/kurultai-project/internal/api/middleware"
	"github.com/111KartoFan111/kurultai-project/internal/domain"
	"github.com/111KartoFan111/kurultai-project/internal/service"
)

type EventService interface {
	CreateEvent(ctx context.Context, input service.CreateEventInput) (domain.Event, error)
	OpenEvents(ctx context.Context) ([]domain.Event, error)
	UpcomingEvents(ctx context.Context, now time.Time) ([]domain.Event, error)
	StopRegistration(ctx context.Context, eventID uint) error
	DeleteEvent(ctx context.Context, eventID uint) error
	Register(ctx context.Context, eventID, userID uint) (domain.EventRegistration, error)
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		svc: svc,
	}
}

// HandleCreateEvent godoc
// @Summary      Create a new event
// @Security     BearerAuth
// @Tags         events
// @Produce      json
// @Param        request   body      request.CreateEventRequest true "request body"
// @Success      201      {object}   domain.Event
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /events [post]
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	var req request.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	event, err := h.svc.CreateEvent(ctx.Request.Context(), service.CreateEventInput{
		Name:        req.Name,
		Description: req.Description,
		EventDate:   req.EventDate,
		EventTime:   req.EventTime,
		Location:    req.Location,
		CreatedBy:   middleware.CurrentUserID(ctx),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventFieldMissing),
			errors.Is(err, service.ErrEventScheduleInvalid),
			errors.Is(err, service.ErrCreatorNotFound):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleCreateEvent -> h.svc.CreateEvent -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, event)
}

// HandleListEvents godoc
// @Summary      List events
// @Security     BearerAuth
// @Tags         events
// @Produce      json
// @Param        scope    query      string false "open (default) or upcoming"
// @Success      200      {array}    domain.Event
// @Failure      500      {object}   response.Err
// @Router       /events [get]
func (h *EventHandler) HandleListEvents(ctx *gin.Context) {
	var (
		events []domain.Event
		err    error
	)

	switch ctx.DefaultQuery("scope", "open") {
	case "upcoming":
		events, err = h.svc.UpcomingEvents(ctx.Request.Context(), time.Now())
	default:
		events, err = h.svc.OpenEvents(ctx.Request.Context())
	}
	if err != nil {
		err = fmt.Errorf("v1.HandleListEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleStopRegistration godoc
// @Summary      Stop registration for an event
// @Security     BearerAuth
// @Tags         events
// @Produce      json
// @Param        eventID  path       int true "event id"
// @Success      204      "no content"
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /events/{eventID}/stop [post]
func (h *EventHandler) HandleStopRegistration(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.StopRegistration(ctx.Request.Context(), eventID); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleStopRegistration -> h.svc.StopRegistration -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleDeleteEvent godoc
// @Summary      Delete an event and its registrations
// @Security     BearerAuth
// @Tags         events
// @Produce      json
// @Param        eventID  path       int true "event id"
// @Success      204      "no content"
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /events/{eventID} [delete]
func (h *EventHandler) HandleDeleteEvent(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteEvent(ctx.Request.Context(), eventID); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteEvent -> h.svc.DeleteEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleRegister godoc
// @Summary      Register the current user for an event
// @Security     BearerAuth
// @Tags         events
// @Produce      json
// @Param        eventID  path       int true "event id"
// @Success      201      {object}   domain.EventRegistration
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /events/{eventID}/registrations [post]
func (h *EventHandler) HandleRegister(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	registration, err := h.svc.Register(ctx.Request.Context(), eventID, middleware.CurrentUserID(ctx))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound(err))
		case errors.Is(err, service.ErrAlreadyRegistered):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			err = fmt.Errorf("v1.HandleRegister -> h.svc.Register -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, registration)
}
