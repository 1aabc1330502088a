package getPublicEvent

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

type PublicEventResponse struct {
	response.Response
	Event *models.PublicEventView `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PublicViewer
type PublicViewer interface {
	PublicView(id string) (*models.PublicEventView, error)
}

// New serves the shareable-link view. No identity is attached to the
// request, so private events come back as not found.
func New(log *slog.Logger, event PublicViewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getPublicEvent.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		view, err := event.PublicView(eventID)
		if err != nil {
			log.Error("failed to get public event", sl.Err(err))

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

		log.Info("public event received")

		responseOK(w, r, view)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, view *models.PublicEventView) {
	render.JSON(w, r, PublicEventResponse{
		Response: response.OK(),
		Event:    view,
	})
}
