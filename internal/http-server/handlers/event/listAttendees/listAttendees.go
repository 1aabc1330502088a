package listAttendees

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
)

type AttendeesResponse struct {
	response.Response
	Attendees []models.Attendee `json:"attendees"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AttendeeLister
type AttendeeLister interface {
	Attendees(eventID string, status *models.RSVPStatus) ([]models.Attendee, error)
}

func New(log *slog.Logger, rsvp AttendeeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.listAttendees.New"

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

		var status *models.RSVPStatus
		if raw := r.URL.Query().Get("status"); raw != "" {
			parsed := models.RSVPStatus(raw)
			if !models.ValidRSVPStatus(parsed) {
				log.Error("invalid status filter", slog.String("status", raw))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid status filter"))
				return
			}
			status = &parsed
		}

		attendees, err := rsvp.Attendees(eventID, status)
		if err != nil {
			log.Error("failed to list attendees", sl.Err(err))

			var domainErr *domain.Error
			if errors.As(err, &domainErr) {
				render.Status(r, response.StatusCode(domainErr.Kind))
				render.JSON(w, r, response.Error(domainErr.Reason))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list attendees"))
			return
		}

		log.Info("attendees listed", slog.Int("count", len(attendees)))

		responseOK(w, r, attendees)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, attendees []models.Attendee) {
	render.JSON(w, r, AttendeesResponse{
		Response:  response.OK(),
		Attendees: attendees,
	})
}
