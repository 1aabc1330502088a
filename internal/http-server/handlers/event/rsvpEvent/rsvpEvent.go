package rsvpEvent

import (
	"errors"
	"gathergrove/internal/domain"
	"gathergrove/internal/http-server/middleware/mwauth"
	"gathergrove/internal/lib/api/response"
	"gathergrove/internal/lib/logger/sl"
	"gathergrove/internal/models"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type RSVPRequest struct {
	Status string `json:"status" validate:"required,oneof=going maybe declined"`
}

type RSVPResponse struct {
	response.Response
	Record *models.AttendanceRecord `json:"record"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RSVPUpserter
type RSVPUpserter interface {
	RSVP(eventID, uid string, status models.RSVPStatus) (*models.AttendanceRecord, error)
}

func New(log *slog.Logger, rsvp RSVPUpserter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.rsvpEvent.New"

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

		var req RSVPRequest

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

		record, err := rsvp.RSVP(eventID, caller.UID, models.RSVPStatus(req.Status))
		if err != nil {
			log.Error("failed to save rsvp", sl.Err(err))

			var domainErr *domain.Error
			if errors.As(err, &domainErr) {
				render.Status(r, response.StatusCode(domainErr.Kind))
				render.JSON(w, r, response.Error(domainErr.Reason))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save rsvp"))
			return
		}

		log.Info("rsvp saved", slog.String("status", req.Status))

		responseOK(w, r, record)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, record *models.AttendanceRecord) {
	render.JSON(w, r, RSVPResponse{
		Response: response.OK(),
		Record:   record,
	})
}
