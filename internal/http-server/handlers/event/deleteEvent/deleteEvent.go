package deleteEvent

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

type DeleteResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventDeleter
type EventDeleter interface {
	Delete(id string, caller models.Caller) error
}

func New(log *slog.Logger, event EventDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.deleteEvent.New"

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

		err := event.Delete(eventID, caller)
		if err != nil {
			log.Error("failed to delete event", sl.Err(err))

			var domainErr *domain.Error
			if errors.As(err, &domainErr) {
				render.Status(r, response.StatusCode(domainErr.Kind))
				render.JSON(w, r, response.Error(domainErr.Reason))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete event"))
			return
		}

		log.Info("event deleted")

		responseOK(w, r)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, DeleteResponse{
		Response: response.OK(),
	})
}
