package getAllSheets

import (
	"gloriaeMusica/internal/lib/api/response"
	"gloriaeMusica/internal/lib/logger/sl"
	"gloriaeMusica/internal/models"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type SheetsResponse struct {
	response.Response
	Sheets []models.Sheet `json:"sheets"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SheetSearcher
type SheetSearcher interface {
	SearchSheets(query string, categoryID string) ([]models.Sheet, error)
}

func New(log *slog.Logger, searcher SheetSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.sheet.getAllSheets.New"

		log = log.With(slog.String("op", op))

		query := r.URL.Query().Get("q")
		categoryID := r.URL.Query().Get("category")

		sheets, err := searcher.SearchSheets(query, categoryID)
		if err != nil {
			log.Error("failed to search music sheets", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get music sheets"))
			return
		}

		log.Info("music sheets retrieved", slog.Int("count", len(sheets)))

		responseOK(w, r, sheets)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, sheets []models.Sheet) {
	render.JSON(w, r, SheetsResponse{
		Response: response.OK(),
		Sheets:   sheets,
	})
}
