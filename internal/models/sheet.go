package models

import "time"

type Sheet struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Composer     string    `json:"composer,omitempty"`
	Arranger     string    `json:"arranger,omitempty"`
	Description  string    `json:"description,omitempty"`
	Difficulty   string    `json:"difficulty,omitempty"`
	CategoryID   *string   `json:"category_id,omitempty"`
	EventID      *string   `json:"event_id,omitempty"`
	FileURL      string    `json:"file_url"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// DownloadResult is what the download flow hands back to the caller:
// the stored asset locator and whether this call charged event stock.
type DownloadResult struct {
	FileURL string `json:"file_url"`
	Charged bool   `json:"charged"`
}
