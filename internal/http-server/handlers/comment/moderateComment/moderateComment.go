package moderateComment

import (
	"errors"
	"gloriaeMusica/internal/lib/api/response"
	"gloriaeMusica/internal/lib/logger/sl"
	"gloriaeMusica/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
)

type ModerateRequest struct {
	Action string `json:"action" validate:"required,oneof=approve delete"`
}

type ModerateResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CommentModerator
type CommentModerator interface {
	ApproveComment(id string) error
	DeleteComment(id string) error
}

func New(log *slog.Logger, comments CommentModerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.comment.moderateComment.New"

		log = log.With(slog.String("op", op))

		commentID := chi.URLParam(r, "id")
		if commentID == "" {
			log.Error("comment id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("comment id is required"))
			return
		}

		log = log.With(slog.String("comment_id", commentID))

		var req ModerateRequest

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

		switch req.Action {
		case "approve":
			err = comments.ApproveComment(commentID)
		case "delete":
			err = comments.DeleteComment(commentID)
		}

		if err != nil {
			log.Error("failed to moderate comment", sl.Err(err))

			if errors.Is(err, storage.ErrCommentNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("comment not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to moderate comment"))
			return
		}

		log.Info("comment moderated", slog.String("action", req.Action))

		render.JSON(w, r, ModerateResponse{Response: response.OK()})
	}
}
