package downloadSheet

import (
	"errors"
	"gloriaeMusica/internal/http-server/middleware/auth"
	"gloriaeMusica/internal/lib/api/response"
	"gloriaeMusica/internal/lib/logger/sl"
	"gloriaeMusica/internal/models"
	"gloriaeMusica/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type DownloadResponse struct {
	response.Response
	FileURL string `json:"file_url"`
	Charged bool   `json:"charged"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Downloader
type Downloader interface {
	RequestDownload(userID, sheetID string) (*models.DownloadResult, error)
}

func New(log *slog.Logger, downloader Downloader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.sheet.downloadSheet.New"

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

		log = log.With(
			slog.String("sheet_id", sheetID),
			slog.String("user_id", userID),
		)

		result, err := downloader.RequestDownload(userID, sheetID)
		if err != nil {
			log.Error("failed to resolve download", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrSheetNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("music sheet not found"))
			case errors.Is(err, storage.ErrEventEnded):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("event has ended"))
			case errors.Is(err, storage.ErrOutOfStock):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("event is out of stock"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to process download"))
			}
			return
		}

		log.Info("download resolved", slog.Bool("charged", result.Charged))

		responseOK(w, r, result)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, result *models.DownloadResult) {
	render.JSON(w, r, DownloadResponse{
		Response: response.OK(),
		FileURL:  result.FileURL,
		Charged:  result.Charged,
	})
}
