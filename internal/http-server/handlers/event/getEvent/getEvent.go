package getEvent

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
)

type EventResponse struct {
	response.Response
	Event *models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	Get(id string) (*models.Event, error)
}

func New(log *slog.Logger, event EventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEvent.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		ev, err := event.Get(eventID)
		if err != nil {
			log.Error("failed to get event", sl.Err(err))

			var domainErr *domain.Error
			if errors.As(err, &domainErr) {
				render.Status(r, response.StatusCode(domainErr.Kind))
				render.JSON(w, r, response.Error(domainErr.Reason))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get event"))
			return
		}

		log.Info("event received")

		responseOK(w, r, ev)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, ev *models.Event) {
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		Event:    ev,
	})
}
