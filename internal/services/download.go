package services

import (
	"log/slog"
	"time"

	"gloriaeMusica/internal/models"
	"gloriaeMusica/internal/storage"
)

// DownloadStore is the slice of storage the download flow needs. Mutual
// exclusion lives behind this interface: the decrement is a conditional
// single-statement update and the entitlement table carries a uniqueness
// constraint, so any number of DownloadService calls may run concurrently.
//
//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=DownloadStore
type DownloadStore interface {
	GetSheetWithEvent(sheetID string) (*models.Sheet, *models.Event, error)
	ClaimDownload(userID, sheetID string, event *models.Event) (bool, error)
}

// DownloadService decides whether a download may proceed and whether it
// should charge event stock.
type DownloadService struct {
	log   *slog.Logger
	store DownloadStore
	now   func() time.Time
}

func NewDownloadService(log *slog.Logger, store DownloadStore) *DownloadService {
	return &DownloadService{
		log:   log,
		store: store,
		now:   time.Now,
	}
}

// RequestDownload resolves a sheet download for the given user.
//
// Sheets without an event are always served and never touch the ledger or
// stock. For event sheets the window is gated on the end boundary only:
// a request at exactly EndAt is still served, and a not-yet-started event
// does not block downloads. Stock is charged at most once per
// (user, sheet, event); repeat downloads are free.
func (s *DownloadService) RequestDownload(userID, sheetID string) (*models.DownloadResult, error) {
	sheet, event, err := s.store.GetSheetWithEvent(sheetID)
	if err != nil {
		return nil, err
	}

	if event == nil {
		return &models.DownloadResult{FileURL: sheet.FileURL}, nil
	}

	if s.now().After(event.EndAt) {
		return nil, storage.ErrEventEnded
	}

	charged, err := s.store.ClaimDownload(userID, sheetID, event)
	if err != nil {
		return nil, err
	}

	if charged {
		s.log.Info("event stock charged",
			slog.String("user_id", userID),
			slog.String("music_sheet_id", sheetID),
			slog.String("event_id", event.ID),
		)
	}

	return &models.DownloadResult{FileURL: sheet.FileURL, Charged: charged}, nil
}
