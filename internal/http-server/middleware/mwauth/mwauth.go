package mwauth

import (
	"context"
	"gathergrove/internal/lib/api/response"
	"gathergrove/internal/lib/logger/sl"
	"gathergrove/internal/models"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type ctxKey struct{}

type Authenticator interface {
	Authenticate(r *http.Request) (models.Caller, error)
}

// New resolves the caller on every request and rejects anything without a
// usable identity. Handlers downstream read the result with CallerFromContext.
func New(log *slog.Logger, auth Authenticator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/auth"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			caller, err := auth.Authenticate(r)
			if err != nil || caller.UID == "" {
				if err != nil {
					log.Warn("authentication failed", sl.Err(err))
				}
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized"))

				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithCaller(r.Context(), caller)))
		}

		return http.HandlerFunc(fn)
	}
}

func ContextWithCaller(ctx context.Context, caller models.Caller) context.Context {
	return context.WithValue(ctx, ctxKey{}, caller)
}

func CallerFromContext(ctx context.Context) (models.Caller, bool) {
	caller, ok := ctx.Value(ctxKey{}).(models.Caller)
	return caller, ok
}
