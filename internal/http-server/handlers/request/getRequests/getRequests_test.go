package getRequests

import (
	"encoding/json"
	"errors"
	"gloriaeMusica/internal/http-server/handlers/request/getRequests/mocks"
	"gloriaeMusica/internal/http-server/middleware/auth"
	"gloriaeMusica/internal/lib/logger/handlers/slogdiscard"
	"gloriaeMusica/internal/models"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRequestsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	createdAt := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	ownRequests := []models.SongRequest{
		{ID: "req-1", UserID: "user-1", Title: "Ave Verum Corpus", Status: models.RequestStatusPending, CreatedAt: createdAt, UpdatedAt: createdAt},
	}
	allRequests := append(ownRequests, models.SongRequest{
		ID: "req-2", UserID: "user-2", Title: "Sicut Cervus", Status: models.RequestStatusInReview, CreatedAt: createdAt, UpdatedAt: createdAt,
	})

	testCases := []struct {
		name           string
		role           string
		authenticated  bool
		mockSetup      func(mock *mocks.RequestsGetter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:          "Regular user gets own requests only",
			role:          models.RoleUser,
			authenticated: true,
			mockSetup: func(mock *mocks.RequestsGetter) {
				mock.On("GetSongRequests", "user-1").Return(ownRequests, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var response RequestsResponse
				require.NoError(t, json.Unmarshal([]byte(body), &response))

				assert.Equal(t, "OK", response.Status)
				require.Len(t, response.Requests, 1)
				assert.Equal(t, "user-1", response.Requests[0].UserID)
			},
		},
		{
			name:          "Admin gets every request",
			role:          models.RoleAdmin,
			authenticated: true,
			mockSetup: func(mock *mocks.RequestsGetter) {
				mock.On("GetSongRequests", "").Return(allRequests, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var response RequestsResponse
				require.NoError(t, json.Unmarshal([]byte(body), &response))
				require.Len(t, response.Requests, 2)
				assert.Equal(t, "user-2", response.Requests[1].UserID)
			},
		},
		{
			name:           "No principal",
			authenticated:  false,
			mockSetup:      func(mock *mocks.RequestsGetter) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"authentication required"}`,
		},
		{
			name:          "Internal server error",
			role:          models.RoleUser,
			authenticated: true,
			mockSetup: func(mock *mocks.RequestsGetter) {
				mock.On("GetSongRequests", "user-1").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get song requests"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewRequestsGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req, err := http.NewRequest("GET", "/requests", nil)
			require.NoError(t, err)

			if tc.authenticated {
				req = req.WithContext(auth.WithPrincipal(req.Context(), "user-1", tc.role))
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
