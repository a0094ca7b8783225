package models

import "time"

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Favorite struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	MusicSheetID string    `json:"music_sheet_id"`
	CreatedAt    time.Time `json:"created_at"`
}

type Comment struct {
	ID           string    `json:"id"`
	MusicSheetID string    `json:"music_sheet_id"`
	UserID       string    `json:"user_id"`
	Comment      string    `json:"comment"`
	Approved     bool      `json:"approved"`
	CreatedAt    time.Time `json:"created_at"`
}

const (
	RequestStatusPending   = "pending"
	RequestStatusInReview  = "in_review"
	RequestStatusCompleted = "completed"
	RequestStatusRejected  = "rejected"
)

type SongRequest struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Title      string    `json:"title"`
	Message    string    `json:"message,omitempty"`
	Status     string    `json:"status"`
	AdminNotes string    `json:"admin_notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatMessage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
