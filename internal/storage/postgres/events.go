package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gloriaeMusica/internal/models"
	"gloriaeMusica/internal/storage"

	"github.com/google/uuid"
)

func (s *Storage) CreateEvent(title, description string, startAt, endAt time.Time, stockLimit *int) (string, error) {
	query := `
		INSERT INTO music_events (id, title, description, start_at, end_at, stock_limit, stock_remaining)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id`

	var id string
	err := s.DB.QueryRow(query, uuid.NewString(), title, description, startAt, endAt, stockLimit).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to create event: %w", err)
	}

	return id, nil
}

func (s *Storage) GetEvent(id string) (*models.Event, error) {
	query := `
		SELECT id, title, description, start_at, end_at, stock_limit, stock_remaining, created_at
		FROM music_events
		WHERE id = $1`

	var event models.Event
	err := s.DB.QueryRow(query, id).Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.StartAt,
		&event.EndAt,
		&event.StockLimit,
		&event.StockRemaining,
		&event.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return &event, nil
}

func (s *Storage) GetAllEvents() ([]models.Event, error) {
	query := `
		SELECT id, title, description, start_at, end_at, stock_limit, stock_remaining, created_at
		FROM music_events
		ORDER BY start_at DESC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var event models.Event
		err = rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.StartAt,
			&event.EndAt,
			&event.StockLimit,
			&event.StockRemaining,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

// DecrementEventStock applies the conditional decrement as a single statement
// so concurrent callers cannot drive stock_remaining below zero. Returns false
// when no row changed, meaning the stock was already exhausted.
func (s *Storage) DecrementEventStock(eventID string) (bool, error) {
	query := `
		UPDATE music_events
		SET stock_remaining = stock_remaining - 1
		WHERE id = $1 AND stock_remaining > 0`

	result, err := s.DB.Exec(query, eventID)
	if err != nil {
		return false, fmt.Errorf("failed to decrement event stock: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}
