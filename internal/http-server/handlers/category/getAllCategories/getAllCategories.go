package getAllCategories

import (
	"gloriaeMusica/internal/lib/api/response"
	"gloriaeMusica/internal/lib/logger/sl"
	"gloriaeMusica/internal/models"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type CategoriesResponse struct {
	response.Response
	Categories []models.Category `json:"categories"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CategoriesGetter
type CategoriesGetter interface {
	GetAllCategories() ([]models.Category, error)
}

func New(log *slog.Logger, categories CategoriesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.category.getAllCategories.New"

		log = log.With(slog.String("op", op))

		list, err := categories.GetAllCategories()
		if err != nil {
			log.Error("failed to get categories", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get categories"))
			return
		}

		log.Info("categories retrieved", slog.Int("count", len(list)))

		render.JSON(w, r, CategoriesResponse{
			Response:   response.OK(),
			Categories: list,
		})
	}
}
