package createSheet

import (
	"errors"
	"fmt"
	"gloriaeMusica/internal/lib/api/response"
	"gloriaeMusica/internal/lib/logger/sl"
	"gloriaeMusica/internal/models"
	"gloriaeMusica/internal/storage"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
)

type SheetRequest struct {
	Title        string  `json:"title" validate:"required"`
	Composer     string  `json:"composer"`
	Arranger     string  `json:"arranger"`
	Description  string  `json:"description"`
	Difficulty   string  `json:"difficulty"`
	CategoryID   *string `json:"category_id,omitempty"`
	EventID      *string `json:"event_id,omitempty"`
	FileURL      string  `json:"file_url" validate:"required,url"`
	ThumbnailURL string  `json:"thumbnail_url"`
	Notify       bool    `json:"notify"`
}

type SheetResponse struct {
	response.Response
	SheetID string `json:"sheet_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SheetCreator
type SheetCreator interface {
	CreateSheet(sheet *models.Sheet) (string, error)
	BroadcastNotification(title, message string) (int, error)
}

func New(log *slog.Logger, creator SheetCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.sheet.createSheet.New"

		log = log.With(slog.String("op", op))

		var req SheetRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		sheet := &models.Sheet{
			Title:        req.Title,
			Composer:     req.Composer,
			Arranger:     req.Arranger,
			Description:  req.Description,
			Difficulty:   req.Difficulty,
			CategoryID:   req.CategoryID,
			EventID:      req.EventID,
			FileURL:      req.FileURL,
			ThumbnailURL: req.ThumbnailURL,
		}

		sheetID, err := creator.CreateSheet(sheet)
		if err != nil {
			log.Error("failed to add music sheet", sl.Err(err))

			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("referenced event or category does not exist"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add music sheet"))
			return
		}

		log.Info("music sheet added", slog.String("id", sheetID))

		if req.Notify {
			composer := req.Composer
			if composer == "" {
				composer = "Unknown"
			}
			message := fmt.Sprintf("Check out %q by %s. Available now in the archive!", req.Title, composer)

			count, err := creator.BroadcastNotification("New Music Sheet Available!", message)
			if err != nil {
				// The sheet is already created; the broadcast is best effort.
				log.Error("failed to notify users about new sheet", sl.Err(err))
			} else {
				log.Info("users notified about new sheet", slog.Int("count", count))
			}
		}

		responseOK(w, r, sheetID)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, sheetID string) {
	render.JSON(w, r, SheetResponse{
		Response: response.OK(),
		SheetID:  sheetID,
	})
}
