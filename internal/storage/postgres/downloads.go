package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"gloriaeMusica/internal/lib/logger/sl"
	"gloriaeMusica/internal/models"
	"gloriaeMusica/internal/storage"

	"github.com/google/uuid"
)

// FindDownload returns the entitlement record for (user, sheet, event),
// or nil when the user has not claimed this sheet yet.
func (s *Storage) FindDownload(userID, sheetID, eventID string) (*models.Download, error) {
	query := `
		SELECT id, user_id, music_sheet_id, event_id, downloaded_at
		FROM event_downloads
		WHERE user_id = $1 AND music_sheet_id = $2 AND event_id = $3`

	var d models.Download
	err := s.DB.QueryRow(query, userID, sheetID, eventID).Scan(
		&d.ID,
		&d.UserID,
		&d.MusicSheetID,
		&d.EventID,
		&d.DownloadedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find download: %w", err)
	}

	return &d, nil
}

func (s *Storage) InsertDownload(userID, sheetID, eventID string) error {
	query := `
		INSERT INTO event_downloads (id, user_id, music_sheet_id, event_id)
		VALUES ($1, $2, $3, $4)`

	_, err := s.DB.Exec(query, uuid.NewString(), userID, sheetID, eventID)
	if err != nil {
		return fmt.Errorf("failed to record download: %w", err)
	}

	return nil
}

// ClaimDownload charges event stock at most once per (user, sheet, event) and
// records the entitlement. The decrement and the insert are committed
// independently, in that fixed order, so a failed insert can leave a charge
// without an entitlement but never the reverse.
//
// Returns whether this call was the charging one. An entitlement that already
// exists, including one created by a concurrent request of the same user, is
// reported as success without a new charge.
func (s *Storage) ClaimDownload(userID, sheetID string, event *models.Event) (bool, error) {
	existing, err := s.FindDownload(userID, sheetID, event.ID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	if event.Limited() && *event.StockRemaining <= 0 {
		return false, storage.ErrOutOfStock
	}

	charged := false
	if event.Limited() {
		ok, err := s.DecrementEventStock(event.ID)
		if err != nil {
			return false, err
		}
		if !ok {
			// Lost the race for the last unit. A parallel request from the
			// same user may have claimed it already, which still counts as
			// an owned entitlement.
			again, err := s.FindDownload(userID, sheetID, event.ID)
			if err != nil {
				return false, err
			}
			if again != nil {
				return false, nil
			}
			return false, storage.ErrOutOfStock
		}
		charged = true
	}

	if err := s.InsertDownload(userID, sheetID, event.ID); err != nil {
		if isUniqueViolation(err) {
			// A concurrent request of the same user recorded the entitlement
			// first. The user holds the item either way, but when this call
			// also decremented, one unit is now sunk on a single entitlement.
			if charged {
				s.log.Warn("stock charged for an entitlement recorded concurrently",
					slog.String("user_id", userID),
					slog.String("music_sheet_id", sheetID),
					slog.String("event_id", event.ID),
				)
			}
			return charged, nil
		}
		// The stock charge is sunk; failing the download now would punish the
		// user for a ledger fault. Logged for reconciliation.
		s.log.Error("stock charged but download not recorded",
			slog.String("user_id", userID),
			slog.String("music_sheet_id", sheetID),
			slog.String("event_id", event.ID),
			sl.Err(err),
		)
	}

	return charged, nil
}
