package postMessage

import (
	"errors"
	"gloriaeMusica/internal/http-server/middleware/auth"
	"gloriaeMusica/internal/lib/api/response"
	"gloriaeMusica/internal/lib/logger/sl"
	"gloriaeMusica/internal/models"
	"gloriaeMusica/internal/pubsub"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
)

// Topic is the broker topic chat messages are published on.
const Topic = "chat"

type MessageRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

type MessageResponse struct {
	response.Response
	Message *models.ChatMessage `json:"chat_message"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MessageInserter
type MessageInserter interface {
	InsertChatMessage(userID, message string) (*models.ChatMessage, error)
}

func New(log *slog.Logger, chat MessageInserter, broker *pubsub.Broker[models.ChatMessage]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.chat.postMessage.New"

		log = log.With(slog.String("op", op))

		userID, ok := auth.UserID(r.Context())
		if !ok {
			log.Error("no principal in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		var req MessageRequest

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

		message, err := chat.InsertChatMessage(userID, req.Message)
		if err != nil {
			log.Error("failed to post chat message", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to post message"))
			return
		}

		broker.Publish(Topic, *message)

		log.Info("chat message posted", slog.String("id", message.ID))

		render.JSON(w, r, MessageResponse{
			Response: response.OK(),
			Message:  message,
		})
	}
}
