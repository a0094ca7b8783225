package markNotificationRead

import (
	"errors"
	"gloriaeMusica/internal/http-server/middleware/auth"
	"gloriaeMusica/internal/lib/api/response"
	"gloriaeMusica/internal/lib/logger/sl"
	"gloriaeMusica/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type MarkReadResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReadMarker
type ReadMarker interface {
	MarkNotificationRead(id, userID string) error
}

func New(log *slog.Logger, notifications ReadMarker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.notification.markNotificationRead.New"

		log = log.With(slog.String("op", op))

		userID, ok := auth.UserID(r.Context())
		if !ok {
			log.Error("no principal in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		notificationID := chi.URLParam(r, "id")
		if notificationID == "" {
			log.Error("notification id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("notification id is required"))
			return
		}

		err := notifications.MarkNotificationRead(notificationID, userID)
		if err != nil {
			log.Error("failed to mark notification read", sl.Err(err))

			if errors.Is(err, storage.ErrNotificationNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("notification not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to mark notification read"))
			return
		}

		log.Info("notification marked read", slog.String("id", notificationID))

		render.JSON(w, r, MarkReadResponse{Response: response.OK()})
	}
}
