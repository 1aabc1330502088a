package getTokens

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

type TokensResponse struct {
	response.Response
	Registration *models.PushRegistration `json:"registration"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenGetter
type TokenGetter interface {
	Tokens(uid string) (*models.PushRegistration, error)
}

func New(log *slog.Logger, push TokenGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.push.getTokens.New"

		log = log.With(slog.String("op", op))

		caller, ok := mwauth.CallerFromContext(r.Context())
		if !ok {
			log.Error("caller missing from context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		log = log.With(slog.String("uid", caller.UID))

		registration, err := push.Tokens(caller.UID)
		if err != nil {
			log.Error("failed to get push tokens", sl.Err(err))

			var domainErr *domain.Error
			if errors.As(err, &domainErr) {
				render.Status(r, response.StatusCode(domainErr.Kind))
				render.JSON(w, r, response.Error(domainErr.Reason))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get push tokens"))
			return
		}

		log.Info("push tokens received", slog.Int("token_count", len(registration.Tokens)))

		responseOK(w, r, registration)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, registration *models.PushRegistration) {
	render.JSON(w, r, TokensResponse{
		Response:     response.OK(),
		Registration: registration,
	})
}
