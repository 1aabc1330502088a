package main

import (
	"context"
	"errors"
	"fmt"
	"gathergrove/internal/config"
	"gathergrove/internal/directory"
	"gathergrove/internal/events"
	"gathergrove/internal/http-server/handlers/event/cancelEvent"
	"gathergrove/internal/http-server/handlers/event/createEvent"
	"gathergrove/internal/http-server/handlers/event/deleteEvent"
	"gathergrove/internal/http-server/handlers/event/getEvent"
	"gathergrove/internal/http-server/handlers/event/getPublicEvent"
	"gathergrove/internal/http-server/handlers/event/guestRsvp"
	"gathergrove/internal/http-server/handlers/event/leaveEvent"
	"gathergrove/internal/http-server/handlers/event/listAttendees"
	"gathergrove/internal/http-server/handlers/event/listEvents"
	"gathergrove/internal/http-server/handlers/event/patchEvent"
	"gathergrove/internal/http-server/handlers/event/rsvpBuckets"
	"gathergrove/internal/http-server/handlers/event/rsvpEvent"
	"gathergrove/internal/http-server/handlers/event/rsvpSummary"
	"gathergrove/internal/http-server/handlers/push/clearTokens"
	"gathergrove/internal/http-server/handlers/push/getTokens"
	"gathergrove/internal/http-server/handlers/push/registerToken"
	"gathergrove/internal/http-server/middleware/mwauth"
	"gathergrove/internal/http-server/middleware/mwlogger"
	"gathergrove/internal/identity"
	"gathergrove/internal/lib/api/response"
	"gathergrove/internal/lib/logger/handlers/slogpretty"
	"gathergrove/internal/lib/logger/sl"
	"gathergrove/internal/push"
	"gathergrove/internal/store"
	"gathergrove/internal/store/memory"
	"gathergrove/internal/store/postgres"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/joho/godotenv"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	_ = godotenv.Load()

	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting gathergrove", slog.String("env", cfg.Env), slog.String("storage", cfg.Storage.Backend))
	log.Debug("Debug messages are enabled")

	storage, closeStorage, err := setupStorage(cfg)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	dir := directory.New(storage)
	eventSvc := events.NewService(log, storage, dir)
	pushSvc := push.NewService(storage)

	auth := identity.Headers{DefaultUID: cfg.Identity.DefaultUID}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Uid", "X-Email", "X-Admin"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, response.OK())
	})

	router.Route("/events", func(r chi.Router) {
		// Link-based endpoints stay open: no identity headers required.
		r.Get("/public/{id}", getPublicEvent.New(log, eventSvc))
		r.Post("/{id}/rsvp/guest", guestRsvp.New(log, eventSvc))

		r.Group(func(r chi.Router) {
			r.Use(mwauth.New(log, auth))

			r.Post("/", createEvent.New(log, eventSvc))
			r.Get("/", listEvents.New(log, eventSvc))
			r.Get("/{id}", getEvent.New(log, eventSvc))
			r.Patch("/{id}", patchEvent.New(log, eventSvc))
			r.Delete("/{id}", deleteEvent.New(log, eventSvc))
			r.Patch("/{id}/cancel", cancelEvent.New(log, eventSvc))
			r.Post("/{id}/rsvp", rsvpEvent.New(log, eventSvc))
			r.Get("/{id}/rsvp", rsvpSummary.New(log, eventSvc))
			r.Delete("/{id}/rsvp", leaveEvent.New(log, eventSvc))
			r.Get("/{id}/rsvps", rsvpBuckets.New(log, eventSvc))
			r.Get("/{id}/attendees", listAttendees.New(log, eventSvc))
		})
	})

	router.Route("/push", func(r chi.Router) {
		r.Use(mwauth.New(log, auth))

		r.Post("/register", registerToken.New(log, pushSvc))
		r.Get("/tokens", getTokens.New(log, pushSvc))
		r.Delete("/tokens", clearTokens.New(log, pushSvc))
	})

	router.Group(func(r chi.Router) {
		r.Use(mwauth.New(log, auth))

		r.Get("/whoami", func(w http.ResponseWriter, r *http.Request) {
			caller, _ := mwauth.CallerFromContext(r.Context())
			render.JSON(w, r, map[string]any{
				"uid":      caller.UID,
				"email":    caller.Email,
				"is_admin": caller.IsAdmin,
			})
		})
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(cfg.Sweeper.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				removed, err := eventSvc.SweepOrphanedAttendance()
				if err != nil {
					log.Error("failed to sweep orphaned attendance", sl.Err(err))
				}
				if removed > 0 {
					log.Info("orphaned attendance removed", slog.Int("count", removed))
				}
			case <-done:
				return
			}
		}
	}()

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	if err = srv.Shutdown(context.Background()); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	close(done)

	log.Info("application stopped")

	if err = closeStorage(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("storage closed")
}

func setupStorage(cfg *config.Config) (store.Store, func() error, error) {
	switch cfg.Storage.Backend {
	case "memory":
		return memory.New(), func() error { return nil }, nil
	case "postgres":
		storage, err := postgres.InitDB(&cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		return storage, storage.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
