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

func (s *Storage) CreateSheet(sheet *models.Sheet) (string, error) {
	query := `
		INSERT INTO music_sheets (id, title, composer, arranger, description, difficulty, category_id, event_id, file_url, thumbnail_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id string
	err := s.DB.QueryRow(query,
		uuid.NewString(),
		sheet.Title,
		sheet.Composer,
		sheet.Arranger,
		sheet.Description,
		sheet.Difficulty,
		sheet.CategoryID,
		sheet.EventID,
		sheet.FileURL,
		sheet.ThumbnailURL,
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return "", storage.ErrEventNotFound
		}
		return "", fmt.Errorf("failed to create music sheet: %w", err)
	}

	return id, nil
}

func (s *Storage) GetSheet(id string) (*models.Sheet, error) {
	query := `
		SELECT id, title, composer, arranger, description, difficulty, category_id, event_id, file_url, thumbnail_url, created_at
		FROM music_sheets
		WHERE id = $1`

	var sheet models.Sheet
	err := s.DB.QueryRow(query, id).Scan(
		&sheet.ID,
		&sheet.Title,
		&sheet.Composer,
		&sheet.Arranger,
		&sheet.Description,
		&sheet.Difficulty,
		&sheet.CategoryID,
		&sheet.EventID,
		&sheet.FileURL,
		&sheet.ThumbnailURL,
		&sheet.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrSheetNotFound
		}
		return nil, fmt.Errorf("failed to get music sheet: %w", err)
	}

	return &sheet, nil
}

// GetSheetWithEvent loads a sheet together with its associated event, if any,
// in a single consistent read. The event is nil for unrestricted sheets.
func (s *Storage) GetSheetWithEvent(sheetID string) (*models.Sheet, *models.Event, error) {
	query := `
		SELECT ms.id, ms.title, ms.composer, ms.arranger, ms.description, ms.difficulty,
		       ms.category_id, ms.event_id, ms.file_url, ms.thumbnail_url, ms.created_at,
		       me.id, me.title, me.description, me.start_at, me.end_at,
		       me.stock_limit, me.stock_remaining, me.created_at
		FROM music_sheets ms
		LEFT JOIN music_events me ON me.id = ms.event_id
		WHERE ms.id = $1`

	var sheet models.Sheet
	var (
		eventID, eventTitle, eventDescription sql.NullString
		startAt, endAt, eventCreatedAt        sql.NullTime
		stockLimit, stockRemaining            sql.NullInt64
	)

	err := s.DB.QueryRow(query, sheetID).Scan(
		&sheet.ID,
		&sheet.Title,
		&sheet.Composer,
		&sheet.Arranger,
		&sheet.Description,
		&sheet.Difficulty,
		&sheet.CategoryID,
		&sheet.EventID,
		&sheet.FileURL,
		&sheet.ThumbnailURL,
		&sheet.CreatedAt,
		&eventID,
		&eventTitle,
		&eventDescription,
		&startAt,
		&endAt,
		&stockLimit,
		&stockRemaining,
		&eventCreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, storage.ErrSheetNotFound
		}
		return nil, nil, fmt.Errorf("failed to get music sheet with event: %w", err)
	}

	if !eventID.Valid {
		return &sheet, nil, nil
	}

	event := models.Event{
		ID:          eventID.String,
		Title:       eventTitle.String,
		Description: eventDescription.String,
		StartAt:     startAt.Time,
		EndAt:       endAt.Time,
		CreatedAt:   eventCreatedAt.Time,
	}
	if stockLimit.Valid {
		limit := int(stockLimit.Int64)
		remaining := int(stockRemaining.Int64)
		event.StockLimit = &limit
		event.StockRemaining = &remaining
	}

	return &sheet, &event, nil
}

func (s *Storage) SearchSheets(query string, categoryID string) ([]models.Sheet, error) {
	q := `
		SELECT id, title, composer, arranger, description, difficulty, category_id, event_id, file_url, thumbnail_url, created_at
		FROM music_sheets
		WHERE ($1 = '' OR title ILIKE '%' || $1 || '%' OR composer ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR category_id::text = $2)
		ORDER BY created_at DESC`

	rows, err := s.DB.Query(q, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to search music sheets: %w", err)
	}
	defer rows.Close()

	var sheets []models.Sheet
	for rows.Next() {
		var sheet models.Sheet
		err = rows.Scan(
			&sheet.ID,
			&sheet.Title,
			&sheet.Composer,
			&sheet.Arranger,
			&sheet.Description,
			&sheet.Difficulty,
			&sheet.CategoryID,
			&sheet.EventID,
			&sheet.FileURL,
			&sheet.ThumbnailURL,
			&sheet.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan music sheet: %w", err)
		}
		sheets = append(sheets, sheet)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating music sheets: %w", err)
	}

	return sheets, nil
}

func (s *Storage) CountSheetsOlderThan(cutoff time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM music_sheets
		WHERE created_at < $1`

	var count int
	if err := s.DB.QueryRow(query, cutoff).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count old music sheets: %w", err)
	}

	return count, nil
}
