package getEventInfo

import (
	"encoding/json"
	"errors"
	"gloriaeMusica/internal/http-server/handlers/event/getEventInfo/mocks"
	"gloriaeMusica/internal/lib/logger/handlers/slogdiscard"
	"gloriaeMusica/internal/models"
	"gloriaeMusica/internal/storage"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEventInfoHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	limit := 10
	remaining := 3
	testEvent := &models.Event{
		ID:             "event-1",
		Title:          "Advent Release",
		StartAt:        time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		EndAt:          time.Date(2025, 12, 24, 23, 59, 59, 0, time.UTC),
		StockLimit:     &limit,
		StockRemaining: &remaining,
	}

	testCases := []struct {
		name           string
		eventID        string
		mockSetup      func(mock *mocks.EventGetter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:    "Limited event",
			eventID: "event-1",
			mockSetup: func(mock *mocks.EventGetter) {
				mock.On("GetEvent", "event-1").Return(testEvent, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var response EventInfoResponse
				err := json.Unmarshal([]byte(body), &response)
				require.NoError(t, err)

				assert.Equal(t, "OK", response.Status)
				require.NotNil(t, response.Event)
				assert.Equal(t, "event-1", response.Event.ID)
				assert.Equal(t, "Advent Release", response.Event.Title)
				require.NotNil(t, response.Event.StockRemaining)
				assert.Equal(t, 3, *response.Event.StockRemaining)
			},
		},
		{
			name:    "Unlimited event",
			eventID: "event-2",
			mockSetup: func(mock *mocks.EventGetter) {
				mock.On("GetEvent", "event-2").Return(&models.Event{
					ID:      "event-2",
					Title:   "Open Release",
					StartAt: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
					EndAt:   time.Date(2025, 12, 24, 23, 59, 59, 0, time.UTC),
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var response EventInfoResponse
				err := json.Unmarshal([]byte(body), &response)
				require.NoError(t, err)

				require.NotNil(t, response.Event)
				assert.Nil(t, response.Event.StockLimit)
			},
		},
		{
			name:    "Event not found",
			eventID: "event-missing",
			mockSetup: func(mock *mocks.EventGetter) {
				mock.On("GetEvent", "event-missing").Return(nil, storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:    "Internal server error",
			eventID: "event-1",
			mockSetup: func(mock *mocks.EventGetter) {
				mock.On("GetEvent", "event-1").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get event information"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewEventGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req, err := http.NewRequest("GET", "/events/"+tc.eventID, nil)
			require.NoError(t, err)

			router := chi.NewRouter()
			router.Get("/events/{id}", handler)

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
