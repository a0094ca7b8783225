package createEvent

import (
	"bytes"
	"encoding/json"
	"errors"
	"gloriaeMusica/internal/http-server/handlers/event/createEvent/mocks"
	"gloriaeMusica/internal/lib/logger/handlers/slogdiscard"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	startAt := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	endAt := time.Date(2025, 12, 24, 23, 59, 59, 0, time.UTC)
	limit := 10

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(mock *mocks.EventCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Limited event",
			requestBody: `{
				"title": "Advent Release",
				"description": "First ten singers",
				"start_at": "2025-12-01T00:00:00Z",
				"end_at": "2025-12-24T23:59:59Z",
				"stock_limit": 10
			}`,
			mockSetup: func(mock *mocks.EventCreator) {
				mock.On("CreateEvent", "Advent Release", "First ten singers", startAt, endAt, &limit).
					Return("event-1", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","event_id":"event-1"}`,
		},
		{
			name: "Unlimited event",
			requestBody: `{
				"title": "Advent Release",
				"start_at": "2025-12-01T00:00:00Z",
				"end_at": "2025-12-24T23:59:59Z"
			}`,
			mockSetup: func(mock *mocks.EventCreator) {
				mock.On("CreateEvent", "Advent Release", "", startAt, endAt, (*int)(nil)).
					Return("event-2", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","event_id":"event-2"}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name: "Missing title",
			requestBody: `{
				"start_at": "2025-12-01T00:00:00Z",
				"end_at": "2025-12-24T23:59:59Z"
			}`,
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Title")
			},
		},
		{
			name: "Missing end_at",
			requestBody: `{
				"title": "Advent Release",
				"start_at": "2025-12-01T00:00:00Z"
			}`,
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "EndAt")
			},
		},
		{
			name: "End before start",
			requestBody: `{
				"title": "Advent Release",
				"start_at": "2025-12-24T23:59:59Z",
				"end_at": "2025-12-01T00:00:00Z"
			}`,
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"end_at must not be before start_at"}`,
		},
		{
			name: "Negative stock limit",
			requestBody: `{
				"title": "Advent Release",
				"start_at": "2025-12-01T00:00:00Z",
				"end_at": "2025-12-24T23:59:59Z",
				"stock_limit": -1
			}`,
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"stock_limit must not be negative"}`,
		},
		{
			name: "Internal server error",
			requestBody: `{
				"title": "Advent Release",
				"start_at": "2025-12-01T00:00:00Z",
				"end_at": "2025-12-24T23:59:59Z"
			}`,
			mockSetup: func(mock *mocks.EventCreator) {
				mock.On("CreateEvent", "Advent Release", "", startAt, endAt, (*int)(nil)).
					Return("", errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to add event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewEventCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req, err := http.NewRequest("POST", "/events", bytes.NewBufferString(tc.requestBody))
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

func TestResponseOK(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()

	responseOK(rr, req, "event-9")

	assert.Equal(t, http.StatusOK, rr.Code)

	var actualResponse EventResponse
	err := json.Unmarshal(rr.Body.Bytes(), &actualResponse)
	require.NoError(t, err)

	assert.Equal(t, "OK", actualResponse.Status)
	assert.Equal(t, "", actualResponse.Error)
	assert.Equal(t, "event-9", actualResponse.EventID)
}
