package main

import (
	"context"
	"errors"
	"gloriaeMusica/internal/config"
	"gloriaeMusica/internal/http-server/handlers/auth/login"
	"gloriaeMusica/internal/http-server/handlers/auth/register"
	"gloriaeMusica/internal/http-server/handlers/category/createCategory"
	"gloriaeMusica/internal/http-server/handlers/category/deleteCategory"
	"gloriaeMusica/internal/http-server/handlers/category/getAllCategories"
	"gloriaeMusica/internal/http-server/handlers/chat/getMessages"
	"gloriaeMusica/internal/http-server/handlers/chat/postMessage"
	"gloriaeMusica/internal/http-server/handlers/chat/streamMessages"
	"gloriaeMusica/internal/http-server/handlers/comment/createComment"
	"gloriaeMusica/internal/http-server/handlers/comment/getComments"
	"gloriaeMusica/internal/http-server/handlers/comment/moderateComment"
	"gloriaeMusica/internal/http-server/handlers/event/createEvent"
	"gloriaeMusica/internal/http-server/handlers/event/getAllEvents"
	"gloriaeMusica/internal/http-server/handlers/event/getEventInfo"
	"gloriaeMusica/internal/http-server/handlers/favorite/addFavorite"
	"gloriaeMusica/internal/http-server/handlers/favorite/getFavorites"
	"gloriaeMusica/internal/http-server/handlers/favorite/removeFavorite"
	"gloriaeMusica/internal/http-server/handlers/notification/broadcastNotification"
	"gloriaeMusica/internal/http-server/handlers/notification/getNotifications"
	"gloriaeMusica/internal/http-server/handlers/notification/markNotificationRead"
	"gloriaeMusica/internal/http-server/handlers/request/createRequest"
	"gloriaeMusica/internal/http-server/handlers/request/getRequests"
	"gloriaeMusica/internal/http-server/handlers/request/updateRequestStatus"
	"gloriaeMusica/internal/http-server/handlers/sheet/createSheet"
	"gloriaeMusica/internal/http-server/handlers/sheet/downloadSheet"
	"gloriaeMusica/internal/http-server/handlers/sheet/getAllSheets"
	"gloriaeMusica/internal/http-server/handlers/sheet/getSheetInfo"
	authmw "gloriaeMusica/internal/http-server/middleware/auth"
	"gloriaeMusica/internal/http-server/middleware/mwlogger"
	"gloriaeMusica/internal/lib/logger/handlers/slogpretty"
	"gloriaeMusica/internal/lib/logger/sl"
	"gloriaeMusica/internal/models"
	"gloriaeMusica/internal/pubsub"
	"gloriaeMusica/internal/services"
	"gloriaeMusica/internal/storage/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const oldSheetAge = 7 * 24 * time.Hour

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting gloriae musica", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database, log)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	downloads := services.NewDownloadService(log, storage)
	chatBroker := pubsub.NewBroker[models.ChatMessage]()

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Post("/auth/register", register.New(log, storage, cfg.Auth.Secret, cfg.Auth.TokenTTL))
	router.Post("/auth/login", login.New(log, storage, cfg.Auth.Secret, cfg.Auth.TokenTTL))

	// Public catalogue. The token is decoded when present so admins see
	// unmoderated comments.
	router.Group(func(r chi.Router) {
		r.Use(authmw.Optional(cfg.Auth.Secret))

		r.Get("/sheets", getAllSheets.New(log, storage))
		r.Get("/sheets/{id}", getSheetInfo.New(log, storage))
		r.Get("/sheets/{id}/comments", getComments.New(log, storage))
		r.Get("/events", getAllEvents.New(log, storage))
		r.Get("/events/{id}", getEventInfo.New(log, storage))
		r.Get("/categories", getAllCategories.New(log, storage))
	})

	// Routes for authenticated users.
	router.Group(func(r chi.Router) {
		r.Use(authmw.New(log, cfg.Auth.Secret))

		r.Post("/sheets/{id}/download", downloadSheet.New(log, downloads))
		r.Post("/sheets/{id}/favorite", addFavorite.New(log, storage))
		r.Delete("/sheets/{id}/favorite", removeFavorite.New(log, storage))
		r.Get("/favorites", getFavorites.New(log, storage))
		r.Post("/sheets/{id}/comments", createComment.New(log, storage))
		r.Post("/requests", createRequest.New(log, storage))
		r.Get("/requests", getRequests.New(log, storage))
		r.Get("/notifications", getNotifications.New(log, storage))
		r.Post("/notifications/{id}/read", markNotificationRead.New(log, storage))
		r.Post("/chat", postMessage.New(log, storage, chatBroker))
		r.Get("/chat", getMessages.New(log, storage))
		r.Get("/chat/stream", streamMessages.New(log, chatBroker))
	})

	// Admin routes.
	router.Group(func(r chi.Router) {
		r.Use(authmw.New(log, cfg.Auth.Secret))
		r.Use(authmw.RequireAdmin)

		r.Post("/events", createEvent.New(log, storage))
		r.Post("/sheets", createSheet.New(log, storage))
		r.Post("/categories", createCategory.New(log, storage))
		r.Delete("/categories/{id}", deleteCategory.New(log, storage))
		r.Post("/comments/{id}/moderate", moderateComment.New(log, storage))
		r.Post("/requests/{id}/status", updateRequestStatus.New(log, storage))
		r.Post("/notifications/broadcast", broadcastNotification.New(log, storage))
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
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				count, err := storage.CountSheetsOlderThan(time.Now().Add(-oldSheetAge))
				if err != nil {
					log.Error("failed to count old sheets", sl.Err(err))
					continue
				}
				log.Info("old sheet check", slog.Int("count", count))
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
	close(done)

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
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
