package rsvpSummary

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

type SummaryResponse struct {
	response.Response
	Summary *models.RSVPSummary `json:"summary"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SummaryGetter
type SummaryGetter interface {
	Summary(eventID, viewerUID string) (*models.RSVPSummary, error)
}

func New(log *slog.Logger, rsvp SummaryGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.rsvpSummary.New"

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

		summary, err := rsvp.Summary(eventID, caller.UID)
		if err != nil {
			log.Error("failed to get rsvp summary", sl.Err(err))

			var domainErr *domain.Error
			if errors.As(err, &domainErr) {
				render.Status(r, response.StatusCode(domainErr.Kind))
				render.JSON(w, r, response.Error(domainErr.Reason))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get rsvp summary"))
			return
		}

		log.Info("rsvp summary received")

		responseOK(w, r, summary)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, summary *models.RSVPSummary) {
	render.JSON(w, r, SummaryResponse{
		Response: response.OK(),
		Summary:  summary,
	})
}
