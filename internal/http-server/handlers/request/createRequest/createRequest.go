package createRequest

import (
	"errors"
	"gloriaeMusica/internal/http-server/middleware/auth"
	"gloriaeMusica/internal/lib/api/response"
	"gloriaeMusica/internal/lib/logger/sl"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
)

type RequestRequest struct {
	Title   string `json:"title" validate:"required"`
	Message string `json:"message"`
}

type RequestResponse struct {
	response.Response
	RequestID string `json:"request_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RequestCreator
type RequestCreator interface {
	CreateSongRequest(userID, title, message string) (string, error)
}

func New(log *slog.Logger, requests RequestCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.request.createRequest.New"

		log = log.With(slog.String("op", op))

		userID, ok := auth.UserID(r.Context())
		if !ok {
			log.Error("no principal in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		var req RequestRequest

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

		requestID, err := requests.CreateSongRequest(userID, req.Title, req.Message)
		if err != nil {
			log.Error("failed to create song request", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create song request"))
			return
		}

		log.Info("song request created", slog.String("id", requestID), slog.String("user_id", userID))

		render.JSON(w, r, RequestResponse{
			Response:  response.OK(),
			RequestID: requestID,
		})
	}
}
