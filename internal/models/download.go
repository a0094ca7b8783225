package models

import "time"

// Download is the entitlement ledger row: one per (user, sheet, event),
// created on the first charged download and never updated or deleted.
type Download struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	MusicSheetID string    `json:"music_sheet_id"`
	EventID      string    `json:"event_id"`
	DownloadedAt time.Time `json:"downloaded_at"`
}
