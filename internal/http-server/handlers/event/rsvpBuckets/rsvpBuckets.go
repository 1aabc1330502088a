package rsvpBuckets

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

type BucketsResponse struct {
	response.Response
	RSVPs *models.RSVPBuckets `json:"rsvps"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BucketsGetter
type BucketsGetter interface {
	Buckets(eventID string) (*models.RSVPBuckets, error)
}

// New serves the grouped roster with household profile data attached,
// the view hosts use to plan headcount.
func New(log *slog.Logger, rsvp BucketsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.rsvpBuckets.New"

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

		buckets, err := rsvp.Buckets(eventID)
		if err != nil {
			log.Error("failed to get rsvp buckets", sl.Err(err))

			var domainErr *domain.Error
			if errors.As(err, &domainErr) {
				render.Status(r, response.StatusCode(domainErr.Kind))
				render.JSON(w, r, response.Error(domainErr.Reason))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get rsvp buckets"))
			return
		}

		log.Info("rsvp buckets received")

		responseOK(w, r, buckets)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, buckets *models.RSVPBuckets) {
	render.JSON(w, r, BucketsResponse{
		Response: response.OK(),
		RSVPs:    buckets,
	})
}
