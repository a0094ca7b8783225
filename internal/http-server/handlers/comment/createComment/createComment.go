package createComment

import (
	"errors"
	"gloriaeMusica/internal/http-server/middleware/auth"
	"gloriaeMusica/internal/lib/api/response"
	"gloriaeMusica/internal/lib/logger/sl"
	"gloriaeMusica/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
)

type CommentRequest struct {
	Comment string `json:"comment" validate:"required"`
}

type CommentResponse struct {
	response.Response
	CommentID string `json:"comment_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CommentCreator
type CommentCreator interface {
	CreateComment(sheetID, userID, text string) (string, error)
}

func New(log *slog.Logger, comments CommentCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.comment.createComment.New"

		log = log.With(slog.String("op", op))

		userID, ok := auth.UserID(r.Context())
		if !ok {
			log.Error("no principal in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		sheetID := chi.URLParam(r, "id")
		if sheetID == "" {
			log.Error("sheet id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("sheet id is required"))
			return
		}

		var req CommentRequest

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

		commentID, err := comments.CreateComment(sheetID, userID, req.Comment)
		if err != nil {
			log.Error("failed to create comment", sl.Err(err))

			if errors.Is(err, storage.ErrSheetNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("music sheet not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create comment"))
			return
		}

		log.Info("comment created", slog.String("id", commentID), slog.String("sheet_id", sheetID))

		render.JSON(w, r, CommentResponse{
			Response:  response.OK(),
			CommentID: commentID,
		})
	}
}
