package listEvents

import (
	"errors"
	"gathergrove/internal/domain"
	"gathergrove/internal/http-server/middleware/mwauth"
	"gathergrove/internal/lib/api/response"
	"gathergrove/internal/lib/logger/sl"
	"gathergrove/internal/models"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/render"
)

type ListResponse struct {
	response.Response
	Items         []models.ListedEvent `json:"items"`
	NextPageToken *string              `json:"next_page_token"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventLister
type EventLister interface {
	List(q models.ListQuery, viewerUID string) (*models.EventPage, error)
}

func New(log *slog.Logger, event EventLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.listEvents.New"

		log = log.With(slog.String("op", op))

		caller, ok := mwauth.CallerFromContext(r.Context())
		if !ok {
			log.Error("caller missing from context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		log = log.With(slog.String("uid", caller.UID))

		query := r.URL.Query()

		q := models.ListQuery{
			Neighborhood: query.Get("neighborhood"),
			PageToken:    query.Get("page_token"),
		}

		if raw := query.Get("kind"); raw != "" {
			kind := models.EventKind(raw)
			q.Kind = &kind
		}

		if raw := query.Get("category"); raw != "" {
			category := models.Category(raw)
			q.Category = &category
		}

		if raw := query.Get("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil {
				log.Error("invalid limit format", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid limit format"))
				return
			}
			q.Limit = limit
		}

		page, err := event.List(q, caller.UID)
		if err != nil {
			log.Error("failed to list events", sl.Err(err))

			var domainErr *domain.Error
			if errors.As(err, &domainErr) {
				render.Status(r, response.StatusCode(domainErr.Kind))
				render.JSON(w, r, response.Error(domainErr.Reason))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list events"))
			return
		}

		log.Info("events listed", slog.Int("count", len(page.Items)))

		responseOK(w, r, page)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, page *models.EventPage) {
	render.JSON(w, r, ListResponse{
		Response:      response.OK(),
		Items:         page.Items,
		NextPageToken: page.NextPageToken,
	})
}
