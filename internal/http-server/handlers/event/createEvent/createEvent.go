package createEvent

import (
	"errors"
	"gathergrove/internal/domain"
	"gathergrove/internal/http-server/middleware/mwauth"
	"gathergrove/internal/lib/api/response"
	"gathergrove/internal/lib/logger/sl"
	"gathergrove/internal/models"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type EventRequest struct {
	Kind          string     `json:"kind" validate:"required,oneof=now future"`
	Title         string     `json:"title" validate:"required"`
	Details       string     `json:"details"`
	Location      string     `json:"location"`
	StartAt       *time.Time `json:"start_at"`
	EndAt         *time.Time `json:"end_at"`
	ExpiresAt     *time.Time `json:"expires_at"`
	Capacity      *int       `json:"capacity" validate:"omitempty,gte=1"`
	Neighborhoods []string   `json:"neighborhoods"`
	Category      string     `json:"category" validate:"omitempty,oneof=neighborhood playdate help pet food celebrations sports other"`
	Visibility    string     `json:"visibility" validate:"omitempty,oneof=private link_only public"`
}

type EventResponse struct {
	response.Response
	Event *models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	Create(spec models.EventSpec, hostID string) (*models.Event, error)
}

func New(log *slog.Logger, event EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log = log.With(slog.String("op", op))

		caller, ok := mwauth.CallerFromContext(r.Context())
		if !ok {
			log.Error("caller missing from context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		log = log.With(slog.String("uid", caller.UID))

		var req EventRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		spec := models.EventSpec{
			Kind:          models.EventKind(req.Kind),
			Title:         req.Title,
			Details:       req.Details,
			Location:      req.Location,
			StartAt:       req.StartAt,
			EndAt:         req.EndAt,
			ExpiresAt:     req.ExpiresAt,
			Capacity:      req.Capacity,
			Neighborhoods: req.Neighborhoods,
			Category:      models.Category(req.Category),
			Visibility:    models.Visibility(req.Visibility),
		}

		ev, err := event.Create(spec, caller.UID)
		if err != nil {
			log.Error("failed to create event", sl.Err(err))

			var domainErr *domain.Error
			if errors.As(err, &domainErr) {
				render.Status(r, response.StatusCode(domainErr.Kind))
				render.JSON(w, r, response.Error(domainErr.Reason))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create event"))
			return
		}

		log.Info("event created", slog.String("event_id", ev.ID))

		responseOK(w, r, ev)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, ev *models.Event) {
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		Event:    ev,
	})
}
