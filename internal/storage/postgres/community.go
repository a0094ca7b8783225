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

func (s *Storage) CreateCategory(name string) (string, error) {
	query := `
		INSERT INTO categories (id, name)
		VALUES ($1, $2)
		RETURNING id`

	var id string
	if err := s.DB.QueryRow(query, uuid.NewString(), name).Scan(&id); err != nil {
		return "", fmt.Errorf("failed to create category: %w", err)
	}

	return id, nil
}

func (s *Storage) GetAllCategories() ([]models.Category, error) {
	query := `
		SELECT id, name, created_at
		FROM categories
		ORDER BY name ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err = rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

func (s *Storage) DeleteCategory(id string) error {
	result, err := s.DB.Exec(`DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return storage.ErrCategoryInUse
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrCategoryNotFound
	}

	return nil
}

// AddFavorite is idempotent: re-adding an existing favorite is a no-op.
func (s *Storage) AddFavorite(userID, sheetID string) error {
	query := `
		INSERT INTO favorites (id, user_id, music_sheet_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, music_sheet_id) DO NOTHING`

	_, err := s.DB.Exec(query, uuid.NewString(), userID, sheetID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return storage.ErrSheetNotFound
		}
		return fmt.Errorf("failed to add favorite: %w", err)
	}

	return nil
}

func (s *Storage) RemoveFavorite(userID, sheetID string) error {
	_, err := s.DB.Exec(`DELETE FROM favorites WHERE user_id = $1 AND music_sheet_id = $2`, userID, sheetID)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	return nil
}

func (s *Storage) GetFavoriteSheets(userID string) ([]models.Sheet, error) {
	query := `
		SELECT ms.id, ms.title, ms.composer, ms.arranger, ms.description, ms.difficulty,
		       ms.category_id, ms.event_id, ms.file_url, ms.thumbnail_url, ms.created_at
		FROM favorites f
		JOIN music_sheets ms ON ms.id = f.music_sheet_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC`

	rows, err := s.DB.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get favorites: %w", err)
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
			return nil, fmt.Errorf("failed to scan favorite sheet: %w", err)
		}
		sheets = append(sheets, sheet)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating favorites: %w", err)
	}

	return sheets, nil
}

func (s *Storage) CreateComment(sheetID, userID, text string) (string, error) {
	query := `
		INSERT INTO music_comments (id, music_sheet_id, user_id, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id string
	if err := s.DB.QueryRow(query, uuid.NewString(), sheetID, userID, text).Scan(&id); err != nil {
		if isForeignKeyViolation(err) {
			return "", storage.ErrSheetNotFound
		}
		return "", fmt.Errorf("failed to create comment: %w", err)
	}

	return id, nil
}

func (s *Storage) GetComments(sheetID string, includeUnapproved bool) ([]models.Comment, error) {
	query := `
		SELECT id, music_sheet_id, user_id, comment, approved, created_at
		FROM music_comments
		WHERE music_sheet_id = $1 AND (approved = true OR $2)
		ORDER BY created_at DESC`

	rows, err := s.DB.Query(query, sheetID, includeUnapproved)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var c models.Comment
		err = rows.Scan(&c.ID, &c.MusicSheetID, &c.UserID, &c.Comment, &c.Approved, &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return comments, nil
}

func (s *Storage) ApproveComment(id string) error {
	result, err := s.DB.Exec(`UPDATE music_comments SET approved = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to approve comment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrCommentNotFound
	}

	return nil
}

func (s *Storage) DeleteComment(id string) error {
	result, err := s.DB.Exec(`DELETE FROM music_comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrCommentNotFound
	}

	return nil
}

func (s *Storage) CreateSongRequest(userID, title, message string) (string, error) {
	query := `
		INSERT INTO song_requests (id, user_id, title, message, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id string
	err := s.DB.QueryRow(query, uuid.NewString(), userID, title, message, models.RequestStatusPending).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to create song request: %w", err)
	}

	return id, nil
}

// GetSongRequests returns all requests when userID is empty, otherwise only
// the requests of that user.
func (s *Storage) GetSongRequests(userID string) ([]models.SongRequest, error) {
	query := `
		SELECT id, user_id, title, message, status, admin_notes, created_at, updated_at
		FROM song_requests
		WHERE $1 = '' OR user_id::text = $1
		ORDER BY created_at DESC`

	rows, err := s.DB.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get song requests: %w", err)
	}
	defer rows.Close()

	var requests []models.SongRequest
	for rows.Next() {
		var r models.SongRequest
		err = rows.Scan(&r.ID, &r.UserID, &r.Title, &r.Message, &r.Status, &r.AdminNotes, &r.CreatedAt, &r.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan song request: %w", err)
		}
		requests = append(requests, r)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating song requests: %w", err)
	}

	return requests, nil
}

func (s *Storage) UpdateSongRequestStatus(id, status, adminNotes string) (*models.SongRequest, error) {
	query := `
		UPDATE song_requests
		SET status = $2, admin_notes = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, user_id, title, message, status, admin_notes, created_at, updated_at`

	var r models.SongRequest
	err := s.DB.QueryRow(query, id, status, adminNotes).Scan(
		&r.ID, &r.UserID, &r.Title, &r.Message, &r.Status, &r.AdminNotes, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to update song request: %w", err)
	}

	return &r, nil
}

// BroadcastNotification inserts one notification row per registered user and
// returns how many were created.
func (s *Storage) BroadcastNotification(title, message string) (int, error) {
	query := `
		INSERT INTO notifications (id, user_id, title, message)
		SELECT gen_random_uuid(), id, $1, $2 FROM users`

	result, err := s.DB.Exec(query, title, message)
	if err != nil {
		return 0, fmt.Errorf("failed to broadcast notification: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return int(affected), nil
}

func (s *Storage) NotifyUser(userID, title, message string) error {
	query := `
		INSERT INTO notifications (id, user_id, title, message)
		VALUES ($1, $2, $3, $4)`

	_, err := s.DB.Exec(query, uuid.NewString(), userID, title, message)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

func (s *Storage) GetNotifications(userID string) ([]models.Notification, error) {
	query := `
		SELECT id, user_id, title, message, read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := s.DB.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		err = rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Read, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notifications: %w", err)
	}

	return notifications, nil
}

func (s *Storage) MarkNotificationRead(id, userID string) error {
	result, err := s.DB.Exec(`UPDATE notifications SET read = true WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotificationNotFound
	}

	return nil
}

func (s *Storage) InsertChatMessage(userID, message string) (*models.ChatMessage, error) {
	query := `
		INSERT INTO chat_messages (id, user_id, message)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, message, created_at`

	var m models.ChatMessage
	err := s.DB.QueryRow(query, uuid.NewString(), userID, message).Scan(
		&m.ID, &m.UserID, &m.Message, &m.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert chat message: %w", err)
	}

	return &m, nil
}

func (s *Storage) GetChatMessages(limit int, since time.Time) ([]models.ChatMessage, error) {
	query := `
		SELECT cm.id, cm.user_id, u.name, cm.message, cm.created_at
		FROM chat_messages cm
		JOIN users u ON u.id = cm.user_id
		WHERE cm.created_at > $2
		ORDER BY cm.created_at DESC
		LIMIT $1`

	rows, err := s.DB.Query(query, limit, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get chat messages: %w", err)
	}
	defer rows.Close()

	var messages []models.ChatMessage
	for rows.Next() {
		var m models.ChatMessage
		err = rows.Scan(&m.ID, &m.UserID, &m.UserName, &m.Message, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		messages = append(messages, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chat messages: %w", err)
	}

	return messages, nil
}
