package getComments

import (
	"gloriaeMusica/internal/http-server/middleware/auth"
	"gloriaeMusica/internal/lib/api/response"
	"gloriaeMusica/internal/lib/logger/sl"
	"gloriaeMusica/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type CommentsResponse struct {
	response.Response
	Comments []models.Comment `json:"comments"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CommentsGetter
type CommentsGetter interface {
	GetComments(sheetID string, includeUnapproved bool) ([]models.Comment, error)
}

// New lists the approved comments of a sheet. Admins also see comments that
// are still waiting for moderation.
func New(log *slog.Logger, comments CommentsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.comment.getComments.New"

		log = log.With(slog.String("op", op))

		sheetID := chi.URLParam(r, "id")
		if sheetID == "" {
			log.Error("sheet id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("sheet id is required"))
			return
		}

		list, err := comments.GetComments(sheetID, auth.IsAdmin(r.Context()))
		if err != nil {
			log.Error("failed to get comments", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get comments"))
			return
		}

		log.Info("comments retrieved", slog.Int("count", len(list)))

		render.JSON(w, r, CommentsResponse{
			Response: response.OK(),
			Comments: list,
		})
	}
}
