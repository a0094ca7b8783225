package streamMessages

import (
	"encoding/json"
	"gloriaeMusica/internal/http-server/handlers/chat/postMessage"
	"gloriaeMusica/internal/lib/api/response"
	"gloriaeMusica/internal/models"
	"gloriaeMusica/internal/pubsub"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

const subscriberBuffer = 16

// New streams new chat messages as server-sent events. The subscription is
// cancelled when the client disconnects.
func New(log *slog.Logger, broker *pubsub.Broker[models.ChatMessage]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.chat.streamMessages.New"

		log = log.With(slog.String("op", op))

		flusher, ok := w.(http.Flusher)
		if !ok {
			log.Error("response writer does not support streaming")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("streaming not supported"))
			return
		}

		sub := broker.Subscribe(postMessage.Topic, subscriberBuffer)
		defer sub.Cancel()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		log.Info("chat stream opened", slog.String("remote_addr", r.RemoteAddr))

		for {
			select {
			case <-r.Context().Done():
				log.Info("chat stream closed", slog.String("remote_addr", r.RemoteAddr))
				return
			case message, ok := <-sub.C:
				if !ok {
					return
				}

				data, err := json.Marshal(message)
				if err != nil {
					continue
				}

				if _, err = w.Write([]byte("data: " + string(data) + "\n\n")); err != nil {
					return
				}
				flusher.Flush()
			}
		}
	}
}
