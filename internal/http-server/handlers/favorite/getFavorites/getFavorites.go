package getFavorites

import (
	"gloriaeMusica/internal/http-server/middleware/auth"
	"gloriaeMusica/internal/lib/api/response"
	"gloriaeMusica/internal/lib/logger/sl"
	"gloriaeMusica/internal/models"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type FavoritesResponse struct {
	response.Response
	Sheets []models.Sheet `json:"sheets"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=FavoritesGetter
type FavoritesGetter interface {
	GetFavoriteSheets(userID string) ([]models.Sheet, error)
}

func New(log *slog.Logger, favorites FavoritesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.favorite.getFavorites.New"

		log = log.With(slog.String("op", op))

		userID, ok := auth.UserID(r.Context())
		if !ok {
			log.Error("no principal in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		sheets, err := favorites.GetFavoriteSheets(userID)
		if err != nil {
			log.Error("failed to get favorites", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get favorites"))
			return
		}

		log.Info("favorites retrieved", slog.Int("count", len(sheets)))

		render.JSON(w, r, FavoritesResponse{
			Response: response.OK(),
			Sheets:   sheets,
		})
	}
}
