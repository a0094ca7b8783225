package postgres

import (
	"database/sql"
	"testing"
	"time"

	"gloriaeMusica/internal/models"
	"gloriaeMusica/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	createdAt := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs(sqlmock.AnyArg(), "cantor@example.com", "hashed", "Cantor", models.RoleUser).
					WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "role", "created_at"}).
						AddRow("user-1", "cantor@example.com", "Cantor", models.RoleUser, createdAt))
			},
		},
		{
			name: "email taken",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: storage.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newMockStorage(t)
			tt.mock(mock)

			user, err := s.CreateUser("cantor@example.com", "hashed", "Cantor")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "user-1", user.ID)
			require.Equal(t, models.RoleUser, user.Role)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetUserByEmail(t *testing.T) {
	s, mock := newMockStorage(t)

	createdAt := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT id, email, password_hash, name, role, last_login, created_at`).
		WithArgs("cantor@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "name", "role", "last_login", "created_at"}).
			AddRow("user-1", "cantor@example.com", "hashed", "Cantor", models.RoleUser, nil, createdAt))

	user, err := s.GetUserByEmail("cantor@example.com")
	require.NoError(t, err)
	require.Equal(t, "user-1", user.ID)
	require.Nil(t, user.LastLogin)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(`SELECT id, email, password_hash, name, role, last_login, created_at`).
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetUserByEmail("ghost@example.com")
	require.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestUpdateLastLogin(t *testing.T) {
	s, mock := newMockStorage(t)

	at := time.Date(2025, 10, 2, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec(`UPDATE users`).
		WithArgs("user-1", at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.UpdateLastLogin("user-1", at))
	require.NoError(t, mock.ExpectationsWereMet())
}
