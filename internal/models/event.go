package models

import "time"

type Event struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	StartAt        time.Time `json:"start_at"`
	EndAt          time.Time `json:"end_at"`
	StockLimit     *int      `json:"stock_limit,omitempty"`
	StockRemaining *int      `json:"stock_remaining,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Limited reports whether the event caps the number of charged downloads.
// StockRemaining is set iff StockLimit is set.
func (e *Event) Limited() bool {
	return e.StockLimit != nil
}
