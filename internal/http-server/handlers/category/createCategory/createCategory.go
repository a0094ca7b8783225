package createCategory

import (
	"errors"
	"gloriaeMusica/internal/lib/api/response"
	"gloriaeMusica/internal/lib/logger/sl"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
)

type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

type CategoryResponse struct {
	response.Response
	CategoryID string `json:"category_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CategoryCreator
type CategoryCreator interface {
	CreateCategory(name string) (string, error)
}

func New(log *slog.Logger, categories CategoryCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.category.createCategory.New"

		log = log.With(slog.String("op", op))

		var req CategoryRequest

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

		categoryID, err := categories.CreateCategory(req.Name)
		if err != nil {
			log.Error("failed to create category", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create category"))
			return
		}

		log.Info("category created", slog.String("id", categoryID))

		render.JSON(w, r, CategoryResponse{
			Response:   response.OK(),
			CategoryID: categoryID,
		})
	}
}
