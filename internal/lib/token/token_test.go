package token

import (
	"testing"
	"time"

	"gloriaeMusica/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	user := &models.User{
		ID:    "user-1",
		Email: "cantor@example.com",
		Role:  models.RoleAdmin,
	}

	signed, err := New("secret", user, time.Hour)
	require.NoError(t, err)

	claims, err := Verify("secret", signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "cantor@example.com", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	signed, err := New("secret", &models.User{ID: "user-1"}, time.Hour)
	require.NoError(t, err)

	_, err = Verify("other-secret", signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	signed, err := New("secret", &models.User{ID: "user-1"}, -time.Minute)
	require.NoError(t, err)

	_, err = Verify("secret", signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Garbage(t *testing.T) {
	t.Parallel()

	_, err := Verify("secret", "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
