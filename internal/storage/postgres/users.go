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

func (s *Storage) CreateUser(email, passwordHash, name string) (*models.User, error) {
	query := `
		INSERT INTO users (id, email, password_hash, name, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, email, name, role, created_at`

	var u models.User
	err := s.DB.QueryRow(query, uuid.NewString(), email, passwordHash, name, models.RoleUser).Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.Role,
		&u.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &u, nil
}

func (s *Storage) GetUserByEmail(email string) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, name, role, last_login, created_at
		FROM users
		WHERE email = $1`

	var u models.User
	err := s.DB.QueryRow(query, email).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&u.Role,
		&u.LastLogin,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &u, nil
}

func (s *Storage) GetUserByID(id string) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, name, role, last_login, created_at
		FROM users
		WHERE id = $1`

	var u models.User
	err := s.DB.QueryRow(query, id).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&u.Role,
		&u.LastLogin,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return &u, nil
}

func (s *Storage) UpdateLastLogin(userID string, at time.Time) error {
	query := `
		UPDATE users
		SET last_login = $2
		WHERE id = $1`

	_, err := s.DB.Exec(query, userID, at)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}

	return nil
}
