package broadcastNotification

import (
	"bytes"
	"encoding/json"
	"errors"
	"gloriaeMusica/internal/http-server/handlers/notification/broadcastNotification/mocks"
	"gloriaeMusica/internal/lib/logger/handlers/slogdiscard"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBroadcastHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(mock *mocks.Broadcaster)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "New song with composer",
			requestBody: `{"type": "new_song", "title": "Sicut Cervus", "composer": "Palestrina"}`,
			mockSetup: func(m *mocks.Broadcaster) {
				m.On("BroadcastNotification",
					"New Music Sheet Available!",
					`Check out "Sicut Cervus" by Palestrina. Available now in the archive!`,
				).Return(42, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var response BroadcastResponse
				require.NoError(t, json.Unmarshal([]byte(body), &response))

				assert.Equal(t, "OK", response.Status)
				assert.Equal(t, 42, response.Notified)
			},
		},
		{
			name:        "New song without composer defaults to Unknown",
			requestBody: `{"type": "new_song", "title": "Ave Verum Corpus"}`,
			mockSetup: func(m *mocks.Broadcaster) {
				m.On("BroadcastNotification",
					"New Music Sheet Available!",
					`Check out "Ave Verum Corpus" by Unknown. Available now in the archive!`,
				).Return(7, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "New song without title",
			requestBody:    `{"type": "new_song", "composer": "Palestrina"}`,
			mockSetup:      func(m *mocks.Broadcaster) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"title is required for new_song broadcast"}`,
		},
		{
			name:        "Promotional picks one of the rotating promos",
			requestBody: `{"type": "promotional"}`,
			mockSetup: func(m *mocks.Broadcaster) {
				m.On("BroadcastNotification",
					mock.MatchedBy(func(title string) bool {
						for _, p := range promos {
							if p.title == title {
								return true
							}
						}
						return false
					}),
					mock.AnythingOfType("string"),
				).Return(100, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var response BroadcastResponse
				require.NoError(t, json.Unmarshal([]byte(body), &response))
				assert.Equal(t, 100, response.Notified)
			},
		},
		{
			name:           "Unknown broadcast type",
			requestBody:    `{"type": "spam"}`,
			mockSetup:      func(m *mocks.Broadcaster) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing type",
			requestBody:    `{"title": "Sicut Cervus"}`,
			mockSetup:      func(m *mocks.Broadcaster) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Type is a required field"}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `{"type": }`,
			mockSetup:      func(m *mocks.Broadcaster) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:        "Internal server error",
			requestBody: `{"type": "new_song", "title": "Sicut Cervus"}`,
			mockSetup: func(m *mocks.Broadcaster) {
				m.On("BroadcastNotification", mock.AnythingOfType("string"), mock.AnythingOfType("string")).
					Return(0, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to broadcast notification"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockNotifier := mocks.NewBroadcaster(t)
			tc.mockSetup(mockNotifier)

			handler := New(logger, mockNotifier)

			req, err := http.NewRequest("POST", "/admin/notifications/broadcast", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

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
