package getComments

import (
	"encoding/json"
	"errors"
	"gloriaeMusica/internal/http-server/handlers/comment/getComments/mocks"
	"gloriaeMusica/internal/http-server/middleware/auth"
	"gloriaeMusica/internal/lib/logger/handlers/slogdiscard"
	"gloriaeMusica/internal/models"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCommentsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	createdAt := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	approvedOnly := []models.Comment{
		{ID: "comment-1", MusicSheetID: "sheet-1", UserID: "user-2", Comment: "Beautiful arrangement", Approved: true, CreatedAt: createdAt},
	}
	withPending := append(approvedOnly, models.Comment{
		ID: "comment-2", MusicSheetID: "sheet-1", UserID: "user-3", Comment: "Awaiting moderation", Approved: false, CreatedAt: createdAt,
	})

	testCases := []struct {
		name           string
		role           string
		mockSetup      func(mock *mocks.CommentsGetter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Anonymous sees approved only",
			role: "",
			mockSetup: func(mock *mocks.CommentsGetter) {
				mock.On("GetComments", "sheet-1", false).Return(approvedOnly, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var response CommentsResponse
				require.NoError(t, json.Unmarshal([]byte(body), &response))

				assert.Equal(t, "OK", response.Status)
				require.Len(t, response.Comments, 1)
				assert.True(t, response.Comments[0].Approved)
			},
		},
		{
			name: "Regular user sees approved only",
			role: models.RoleUser,
			mockSetup: func(mock *mocks.CommentsGetter) {
				mock.On("GetComments", "sheet-1", false).Return(approvedOnly, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var response CommentsResponse
				require.NoError(t, json.Unmarshal([]byte(body), &response))
				require.Len(t, response.Comments, 1)
			},
		},
		{
			name: "Admin sees unmoderated comments too",
			role: models.RoleAdmin,
			mockSetup: func(mock *mocks.CommentsGetter) {
				mock.On("GetComments", "sheet-1", true).Return(withPending, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var response CommentsResponse
				require.NoError(t, json.Unmarshal([]byte(body), &response))
				require.Len(t, response.Comments, 2)
				assert.False(t, response.Comments[1].Approved)
			},
		},
		{
			name: "Internal server error",
			role: "",
			mockSetup: func(mock *mocks.CommentsGetter) {
				mock.On("GetComments", "sheet-1", false).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get comments"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewCommentsGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req, err := http.NewRequest("GET", "/sheets/sheet-1/comments", nil)
			require.NoError(t, err)

			if tc.role != "" {
				req = req.WithContext(auth.WithPrincipal(req.Context(), "user-1", tc.role))
			}

			router := chi.NewRouter()
			router.Get("/sheets/{id}/comments", handler)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
