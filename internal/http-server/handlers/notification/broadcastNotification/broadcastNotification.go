package broadcastNotification

import (
	"errors"
	"fmt"
	"gloriaeMusica/internal/lib/api/response"
	"gloriaeMusica/internal/lib/logger/sl"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"math/rand"
	"net/http"
)

type BroadcastRequest struct {
	Type     string `json:"type" validate:"required,oneof=promotional new_song"`
	Title    string `json:"title"`
	Composer string `json:"composer"`
}

type BroadcastResponse struct {
	response.Response
	Notified int `json:"notified"`
}

// promos rotate for the promotional broadcast type.
var promos = []struct {
	title   string
	message string
}{
	{
		title:   "Join Our Community!",
		message: "Join our Discord and follow us on TikTok for the latest updates and music discussions!",
	},
	{
		title:   "Stay Connected",
		message: "Connect with fellow music lovers on Discord and TikTok. Join our growing community today!",
	},
	{
		title:   "Discover More",
		message: "Follow us on TikTok and join our Discord to discover new sacred music and connect with others!",
	},
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Broadcaster
type Broadcaster interface {
	BroadcastNotification(title, message string) (int, error)
}

func New(log *slog.Logger, notifier Broadcaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.notification.broadcastNotification.New"

		log = log.With(slog.String("op", op))

		var req BroadcastRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		var title, message string

		switch req.Type {
		case "promotional":
			promo := promos[rand.Intn(len(promos))]
			title = promo.title
			message = promo.message
		case "new_song":
			if req.Title == "" {
				log.Error("title is required for new_song broadcast")
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("title is required for new_song broadcast"))
				return
			}
			composer := req.Composer
			if composer == "" {
				composer = "Unknown"
			}
			title = "New Music Sheet Available!"
			message = fmt.Sprintf("Check out %q by %s. Available now in the archive!", req.Title, composer)
		}

		count, err := notifier.BroadcastNotification(title, message)
		if err != nil {
			log.Error("failed to broadcast notification", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to broadcast notification"))
			return
		}

		log.Info("notification broadcast", slog.String("type", req.Type), slog.Int("notified", count))

		render.JSON(w, r, BroadcastResponse{
			Response: response.OK(),
			Notified: count,
		})
	}
}
