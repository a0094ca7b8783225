package getSheetInfo

import (
	"errors"
	"gloriaeMusica/internal/lib/api/response"
	"gloriaeMusica/internal/lib/logger/sl"
	"gloriaeMusica/internal/models"
	"gloriaeMusica/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type SheetInfoResponse struct {
	response.Response
	Sheet *models.Sheet `json:"sheet"`
	Event *models.Event `json:"event,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SheetProvider
type SheetProvider interface {
	GetSheetWithEvent(sheetID string) (*models.Sheet, *models.Event, error)
}

func New(log *slog.Logger, provider SheetProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.sheet.getSheetInfo.New"

		log = log.With(slog.String("op", op))

		sheetID := chi.URLParam(r, "id")
		if sheetID == "" {
			log.Error("sheet id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("sheet id is required"))
			return
		}

		log = log.With(slog.String("sheet_id", sheetID))

		sheet, event, err := provider.GetSheetWithEvent(sheetID)
		if err != nil {
			log.Error("failed to get music sheet", sl.Err(err))

			if errors.Is(err, storage.ErrSheetNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("music sheet not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get music sheet"))
			return
		}

		log.Info("music sheet retrieved")

		responseOK(w, r, sheet, event)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, sheet *models.Sheet, event *models.Event) {
	render.JSON(w, r, SheetInfoResponse{
		Response: response.OK(),
		Sheet:    sheet,
		Event:    event,
	})
}
