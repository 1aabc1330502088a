package listEvents

import (
	"encoding/json"
	"errors"
	"gathergrove/internal/domain"
	"gathergrove/internal/http-server/handlers/event/listEvents/mocks"
	"gathergrove/internal/http-server/middleware/mwauth"
	"gathergrove/internal/lib/logger/handlers/slogdiscard"
	"gathergrove/internal/models"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEventsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	caller := models.Caller{UID: "uid-1"}
	nextToken := "MjAyNi0wOC0wMVQxMjowMDowMFp8ZXZ0LTI"
	testPage := &models.EventPage{
		Items: []models.ListedEvent{
			{
				Event: models.Event{
					ID:      "evt-1",
					Kind:    models.EventNow,
					Title:   "Pickup Soccer",
					StartAt: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
					HostID:  "host-uid-1",
					Status:  models.EventActive,
				},
				AttendeeCount: 3,
				IsAttending:   true,
			},
			{
				Event: models.Event{
					ID:      "evt-2",
					Kind:    models.EventFuture,
					Title:   "Block Party",
					StartAt: time.Date(2026, 8, 15, 16, 0, 0, 0, time.UTC),
					HostID:  "host-uid-2",
					Status:  models.EventActive,
				},
				AttendeeCount: 0,
				IsAttending:   false,
			},
		},
		NextPageToken: &nextToken,
	}

	kindFuture := models.EventFuture
	categoryFood := models.CategoryFood

	testCases := []struct {
		name           string
		caller         *models.Caller
		url            string
		mockSetup      func(mock *mocks.EventLister)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:   "Success without filters",
			caller: &caller,
			url:    "/events",
			mockSetup: func(m *mocks.EventLister) {
				m.On("List", models.ListQuery{}, "uid-1").Return(testPage, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var response ListResponse
				require.NoError(t, json.Unmarshal([]byte(body), &response))
				assert.Equal(t, "OK", response.Status)
				require.Len(t, response.Items, 2)
				assert.Equal(t, "Pickup Soccer", response.Items[0].Title)
				assert.Equal(t, 3, response.Items[0].AttendeeCount)
				assert.True(t, response.Items[0].IsAttending)
				require.NotNil(t, response.NextPageToken)
				assert.Equal(t, nextToken, *response.NextPageToken)
			},
		},
		{
			name:   "All filters forwarded",
			caller: &caller,
			url:    "/events?kind=future&neighborhood=maple-court&category=food&limit=10&page_token=abc",
			mockSetup: func(m *mocks.EventLister) {
				m.On("List", models.ListQuery{
					Kind:         &kindFuture,
					Neighborhood: "maple-court",
					Category:     &categoryFood,
					Limit:        10,
					PageToken:    "abc",
				}, "uid-1").Return(&models.EventPage{Items: []models.ListedEvent{}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","items":[],"next_page_token":null}`,
		},
		{
			name:           "No caller",
			caller:         nil,
			url:            "/events",
			mockSetup:      func(m *mocks.EventLister) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
		{
			name:           "Limit is not a number",
			caller:         &caller,
			url:            "/events?limit=ten",
			mockSetup:      func(m *mocks.EventLister) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid limit format"}`,
		},
		{
			name:   "Limit out of range",
			caller: &caller,
			url:    "/events?limit=51",
			mockSetup: func(m *mocks.EventLister) {
				m.On("List", models.ListQuery{Limit: 51}, "uid-1").
					Return(nil, domain.Invalid("limit must be between 1 and 50"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"limit must be between 1 and 50"}`,
		},
		{
			name:   "Unknown kind",
			caller: &caller,
			url:    "/events?kind=someday",
			mockSetup: func(m *mocks.EventLister) {
				someday := models.EventKind("someday")
				m.On("List", models.ListQuery{Kind: &someday}, "uid-1").
					Return(nil, domain.Invalid("kind must be now or future"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"kind must be now or future"}`,
		},
		{
			name:   "Malformed page token",
			caller: &caller,
			url:    "/events?page_token=%21%21%21",
			mockSetup: func(m *mocks.EventLister) {
				m.On("List", models.ListQuery{PageToken: "!!!"}, "uid-1").
					Return(nil, domain.Invalid("malformed page token"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"malformed page token"}`,
		},
		{
			name:   "Internal server error",
			caller: &caller,
			url:    "/events",
			mockSetup: func(m *mocks.EventLister) {
				m.On("List", models.ListQuery{}, "uid-1").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to list events"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockLister := mocks.NewEventLister(t)
			tc.mockSetup(mockLister)

			handler := New(logger, mockLister)

			req, err := http.NewRequest("GET", tc.url, nil)
			require.NoError(t, err)

			if tc.caller != nil {
				req = req.WithContext(mwauth.ContextWithCaller(req.Context(), *tc.caller))
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

func TestLastPageHasNoToken(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	mockLister := mocks.NewEventLister(t)

	mockLister.On("List", models.ListQuery{}, "uid-1").Return(&models.EventPage{
		Items: []models.ListedEvent{
			{Event: models.Event{ID: "evt-1", Title: "Garage Sale"}},
		},
		NextPageToken: nil,
	}, nil)

	handler := New(logger, mockLister)

	req, err := http.NewRequest("GET", "/events", nil)
	require.NoError(t, err)

	req = req.WithContext(mwauth.ContextWithCaller(req.Context(), models.Caller{UID: "uid-1"}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"next_page_token":null`)
}
