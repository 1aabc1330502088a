package patchEvent

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

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// PatchRequest carries only the fields the host wants to change. Absent
// fields stay untouched, which is why everything is a pointer.
type PatchRequest struct {
	Title         *string    `json:"title"`
	Details       *string    `json:"details"`
	Location      *string    `json:"location"`
	StartAt       *time.Time `json:"start_at"`
	EndAt         *time.Time `json:"end_at"`
	ExpiresAt     *time.Time `json:"expires_at"`
	Capacity      *int       `json:"capacity" validate:"omitempty,gte=1"`
	Neighborhoods *[]string  `json:"neighborhoods"`
	Category      *string    `json:"category" validate:"omitempty,oneof=neighborhood playdate help pet food celebrations sports other"`
	Visibility    *string    `json:"visibility" validate:"omitempty,oneof=private link_only public"`
}

type PatchResponse struct {
	response.Response
	Event *models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventPatcher
type EventPatcher interface {
	Patch(id string, patch models.EventPatch, caller models.Caller) (*models.Event, error)
}

func New(log *slog.Logger, event EventPatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.patchEvent.New"

		log = log.With(slog.String("op", op))

		caller, ok := mwauth.CallerFromContext(r.Context())
		if !ok {
			log.Error("caller missing from context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID), slog.String("uid", caller.UID))

		var req PatchRequest

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

		patch := models.EventPatch{
			Title:         req.Title,
			Details:       req.Details,
			Location:      req.Location,
			StartAt:       req.StartAt,
			EndAt:         req.EndAt,
			ExpiresAt:     req.ExpiresAt,
			Capacity:      req.Capacity,
			Neighborhoods: req.Neighborhoods,
		}
		if req.Category != nil {
			category := models.Category(*req.Category)
			patch.Category = &category
		}
		if req.Visibility != nil {
			visibility := models.Visibility(*req.Visibility)
			patch.Visibility = &visibility
		}

		ev, err := event.Patch(eventID, patch, caller)
		if err != nil {
			log.Error("failed to patch event", sl.Err(err))

			var domainErr *domain.Error
			if errors.As(err, &domainErr) {
				render.Status(r, response.StatusCode(domainErr.Kind))
				render.JSON(w, r, response.Error(domainErr.Reason))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to patch event"))
			return
		}

		log.Info("event patched")

		responseOK(w, r, ev)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, ev *models.Event) {
	render.JSON(w, r, PatchResponse{
		Response: response.OK(),
		Event:    ev,
	})
}
