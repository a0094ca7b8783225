package getRequests

import (
	"gloriaeMusica/internal/http-server/middleware/auth"
	"gloriaeMusica/internal/lib/api/response"
	"gloriaeMusica/internal/lib/logger/sl"
	"gloriaeMusica/internal/models"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type RequestsResponse struct {
	response.Response
	Requests []models.SongRequest `json:"requests"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RequestsGetter
type RequestsGetter interface {
	GetSongRequests(userID string) ([]models.SongRequest, error)
}

// New lists song requests. Regular users see their own; admins see all.
func New(log *slog.Logger, requests RequestsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.request.getRequests.New"

		log = log.With(slog.String("op", op))

		userID, ok := auth.UserID(r.Context())
		if !ok {
			log.Error("no principal in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		filter := userID
		if auth.IsAdmin(r.Context()) {
			filter = ""
		}

		list, err := requests.GetSongRequests(filter)
		if err != nil {
			log.Error("failed to get song requests", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get song requests"))
			return
		}

		log.Info("song requests retrieved", slog.Int("count", len(list)))

		render.JSON(w, r, RequestsResponse{
			Response: response.OK(),
			Requests: list,
		})
	}
}
