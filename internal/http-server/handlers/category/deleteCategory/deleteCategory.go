package deleteCategory

import (
	"errors"
	"gloriaeMusica/internal/lib/api/response"
	"gloriaeMusica/internal/lib/logger/sl"
	"gloriaeMusica/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type DeleteResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CategoryDeleter
type CategoryDeleter interface {
	DeleteCategory(id string) error
}

func New(log *slog.Logger, categories CategoryDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.category.deleteCategory.New"

		log = log.With(slog.String("op", op))

		categoryID := chi.URLParam(r, "id")
		if categoryID == "" {
			log.Error("category id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("category id is required"))
			return
		}

		log = log.With(slog.String("category_id", categoryID))

		err := categories.DeleteCategory(categoryID)
		if err != nil {
			log.Error("failed to delete category", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrCategoryNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("category not found"))
			case errors.Is(err, storage.ErrCategoryInUse):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("category is referenced by music sheets"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to delete category"))
			}
			return
		}

		log.Info("category deleted")

		render.JSON(w, r, DeleteResponse{Response: response.OK()})
	}
}
