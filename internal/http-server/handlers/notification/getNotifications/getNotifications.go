package getNotifications

import (
	"gloriaeMusica/internal/http-server/middleware/auth"
	"gloriaeMusica/internal/lib/api/response"
	"gloriaeMusica/internal/lib/logger/sl"
	"gloriaeMusica/internal/models"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type NotificationsResponse struct {
	response.Response
	Notifications []models.Notification `json:"notifications"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=NotificationsGetter
type NotificationsGetter interface {
	GetNotifications(userID string) ([]models.Notification, error)
}

func New(log *slog.Logger, notifications NotificationsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.notification.getNotifications.New"

		log = log.With(slog.String("op", op))

		userID, ok := auth.UserID(r.Context())
		if !ok {
			log.Error("no principal in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		list, err := notifications.GetNotifications(userID)
		if err != nil {
			log.Error("failed to get notifications", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get notifications"))
			return
		}

		log.Info("notifications retrieved", slog.Int("count", len(list)))

		render.JSON(w, r, NotificationsResponse{
			Response:      response.OK(),
			Notifications: list,
		})
	}
}
