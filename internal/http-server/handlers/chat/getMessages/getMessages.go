package getMessages

import (
	"gloriaeMusica/internal/lib/api/response"
	"gloriaeMusica/internal/lib/logger/sl"
	"gloriaeMusica/internal/models"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

const defaultLimit = 50

type MessagesResponse struct {
	response.Response
	Messages []models.ChatMessage `json:"messages"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MessagesGetter
type MessagesGetter interface {
	GetChatMessages(limit int, since time.Time) ([]models.ChatMessage, error)
}

func New(log *slog.Logger, chat MessagesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.chat.getMessages.New"

		log = log.With(slog.String("op", op))

		limit := defaultLimit
		if s := r.URL.Query().Get("limit"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 {
				log.Error("invalid limit")
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid limit"))
				return
			}
			limit = n
		}

		var since time.Time
		if s := r.URL.Query().Get("since"); s != "" {
			t, err := time.Parse(time.RFC3339, s)
			if err != nil {
				log.Error("invalid since timestamp", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid since timestamp"))
				return
			}
			since = t
		}

		messages, err := chat.GetChatMessages(limit, since)
		if err != nil {
			log.Error("failed to get chat messages", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get messages"))
			return
		}

		log.Info("chat messages retrieved", slog.Int("count", len(messages)))

		render.JSON(w, r, MessagesResponse{
			Response: response.OK(),
			Messages: messages,
		})
	}
}
