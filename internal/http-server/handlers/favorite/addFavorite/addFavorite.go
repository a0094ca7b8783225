package addFavorite

import (
	"errors"
	"gloriaeMusica/internal/http-server/middleware/auth"
	"gloriaeMusica/internal/lib/api/response"
	"gloriaeMusica/internal/lib/logger/sl"
	"gloriaeMusica/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type FavoriteResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=FavoriteAdder
type FavoriteAdder interface {
	AddFavorite(userID, sheetID string) error
}

func New(log *slog.Logger, favorites FavoriteAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.favorite.addFavorite.New"

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

		err := favorites.AddFavorite(userID, sheetID)
		if err != nil {
			log.Error("failed to add favorite", sl.Err(err))

			if errors.Is(err, storage.ErrSheetNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("music sheet not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add favorite"))
			return
		}

		log.Info("favorite added", slog.String("sheet_id", sheetID), slog.String("user_id", userID))

		render.JSON(w, r, FavoriteResponse{Response: response.OK()})
	}
}
