package clearTokens

import (
	"errors"
	"gathergrove/internal/domain"
	"gathergrove/internal/http-server/middleware/mwauth"
	"gathergrove/internal/lib/api/response"
	"gathergrove/internal/lib/logger/sl"
	"gathergrove/internal/models"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type ClearResponse struct {
	response.Response
	Registration *models.PushRegistration `json:"registration"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenClearer
type TokenClearer interface {
	Clear(uid string) (*models.PushRegistration, error)
}

func New(log *slog.Logger, push TokenClearer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.push.clearTokens.New"

		log = log.With(slog.String("op", op))

		caller, ok := mwauth.CallerFromContext(r.Context())
		if !ok {
			log.Error("caller missing from context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		log = log.With(slog.String("uid", caller.UID))

		registration, err := push.Clear(caller.UID)
		if err != nil {
			log.Error("failed to clear push tokens", sl.Err(err))

			var domainErr *domain.Error
			if errors.As(err, &domainErr) {
				render.Status(r, response.StatusCode(domainErr.Kind))
				render.JSON(w, r, response.Error(domainErr.Reason))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to clear push tokens"))
			return
		}

		log.Info("push tokens cleared")

		responseOK(w, r, registration)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, registration *models.PushRegistration) {
	render.JSON(w, r, ClearResponse{
		Response:     response.OK(),
		Registration: registration,
	})
}
