package getEvent

import (
	"context"
	"encoding/json"
	"errors"
	"gathergrove/internal/domain"
	"gathergrove/internal/http-server/handlers/event/getEvent/mocks"
	"gathergrove/internal/lib/logger/handlers/slogdiscard"
	"gathergrove/internal/models"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testStart := time.Date(2026, 9, 12, 16, 0, 0, 0, time.UTC)
	testEvent := &models.Event{
		ID:         "4f2c1b7a9d3e48d0a1b2c3d4e5f60718",
		Kind:       models.EventFuture,
		Title:      "Block Party",
		StartAt:    testStart,
		HostID:     "host-uid-1",
		Visibility: models.VisibilityPublic,
		Status:     models.EventActive,
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
			name:    "Success",
			eventID: testEvent.ID,
			mockSetup: func(m *mocks.EventGetter) {
				m.On("Get", testEvent.ID).Return(testEvent, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var response EventResponse
				err := json.Unmarshal([]byte(body), &response)
				require.NoError(t, err)

				assert.Equal(t, "OK", response.Status)
				assert.Equal(t, "", response.Error)
				require.NotNil(t, response.Event)
				assert.Equal(t, testEvent.ID, response.Event.ID)
				assert.Equal(t, "Block Party", response.Event.Title)
				assert.True(t, response.Event.StartAt.Equal(testStart))
			},
		},
		{
			name:    "Event not found",
			eventID: "missing-id",
			mockSetup: func(m *mocks.EventGetter) {
				m.On("Get", "missing-id").Return(nil, domain.NotFound("event not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:    "Internal server error",
			eventID: testEvent.ID,
			mockSetup: func(m *mocks.EventGetter) {
				m.On("Get", testEvent.ID).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewEventGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			router := chi.NewRouter()
			router.Route("/events", func(r chi.Router) {
				r.Get("/{id}", handler)
			})

			req, err := http.NewRequest("GET", "/events/"+tc.eventID, nil)
			require.NoError(t, err)

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

func TestHandlerWithoutChiContext(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	mockGetter := mocks.NewEventGetter(t)
	handler := New(logger, mockGetter)

	req, err := http.NewRequest("GET", "/", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "event id is required")
}

func TestHandlerWithChiContext(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	mockGetter := mocks.NewEventGetter(t)
	handler := New(logger, mockGetter)

	req, err := http.NewRequest("GET", "/", nil)
	require.NoError(t, err)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "abc123")

	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	req = req.WithContext(ctx)

	rr := httptest.NewRecorder()

	testEvent := &models.Event{ID: "abc123", Title: "Garage Sale"}
	mockGetter.On("Get", "abc123").Return(testEvent, nil)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response EventResponse
	err = json.Unmarshal(rr.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "OK", response.Status)
	require.NotNil(t, response.Event)
	assert.Equal(t, "abc123", response.Event.ID)
}
