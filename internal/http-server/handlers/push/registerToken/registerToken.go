package registerToken

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
	"github.com/go-playground/validator/v10"
)

type RegisterRequest struct {
	Token    string `json:"token" validate:"required"`
	Platform string `json:"platform"`
}

type RegisterResponse struct {
	response.Response
	Registration *models.PushRegistration `json:"registration"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenRegistrar
type TokenRegistrar interface {
	Register(uid, token, platform string) (*models.PushRegistration, error)
}

func New(log *slog.Logger, push TokenRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.push.registerToken.New"

		log = log.With(slog.String("op", op))

		caller, ok := mwauth.CallerFromContext(r.Context())
		if !ok {
			log.Error("caller missing from context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		log = log.With(slog.String("uid", caller.UID))

		var req RegisterRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		registration, err := push.Register(caller.UID, req.Token, req.Platform)
		if err != nil {
			log.Error("failed to register push token", sl.Err(err))

			var domainErr *domain.Error
			if errors.As(err, &domainErr) {
				render.Status(r, response.StatusCode(domainErr.Kind))
				render.JSON(w, r, response.Error(domainErr.Reason))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register push token"))
			return
		}

		log.Info("push token registered", slog.Int("token_count", len(registration.Tokens)))

		responseOK(w, r, registration)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, registration *models.PushRegistration) {
	render.JSON(w, r, RegisterResponse{
		Response:     response.OK(),
		Registration: registration,
	})
}
