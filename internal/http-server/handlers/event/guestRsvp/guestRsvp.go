package guestRsvp

import (
	"errors"
	"gathergrove/internal/domain"
	"gathergrove/internal/lib/api/response"
	"gathergrove/internal/lib/logger/sl"
	"gathergrove/internal/models"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type GuestRequest struct {
	Name   string `json:"name" validate:"required"`
	Phone  string `json:"phone"`
	Choice string `json:"choice" validate:"required,oneof=going maybe declined"`
}

type GuestResponse struct {
	response.Response
	Record *models.AttendanceRecord `json:"record"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=GuestRSVPCreator
type GuestRSVPCreator interface {
	GuestRSVP(eventID string, guest models.GuestRSVP) (*models.AttendanceRecord, error)
}

// New takes rsvps from people following a shareable link. There is no
// account behind the request, so every submission creates a fresh guest
// record.
func New(log *slog.Logger, rsvp GuestRSVPCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.guestRsvp.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		var req GuestRequest

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

		record, err := rsvp.GuestRSVP(eventID, models.GuestRSVP{
			Name:   req.Name,
			Phone:  req.Phone,
			Choice: models.RSVPStatus(req.Choice),
		})
		if err != nil {
			log.Error("failed to save guest rsvp", sl.Err(err))

			var domainErr *domain.Error
			if errors.As(err, &domainErr) {
				render.Status(r, response.StatusCode(domainErr.Kind))
				render.JSON(w, r, response.Error(domainErr.Reason))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save guest rsvp"))
			return
		}

		log.Info("guest rsvp saved", slog.String("guest_id", record.GuestID))

		responseOK(w, r, record)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, record *models.AttendanceRecord) {
	render.JSON(w, r, GuestResponse{
		Response: response.OK(),
		Record:   record,
	})
}
