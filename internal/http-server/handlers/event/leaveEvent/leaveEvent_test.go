package leaveEvent

import (
	"errors"
	"gathergrove/internal/domain"
	"gathergrove/internal/http-server/handlers/event/leaveEvent/mocks"
	"gathergrove/internal/http-server/middleware/mwauth"
	"gathergrove/internal/lib/logger/handlers/slogdiscard"
	"gathergrove/internal/models"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaveEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	caller := models.Caller{UID: "uid-1"}

	testCases := []struct {
		name           string
		caller         *models.Caller
		eventID        string
		mockSetup      func(mock *mocks.RSVPRemover)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Success",
			caller:  &caller,
			eventID: "evt-1",
			mockSetup: func(m *mocks.RSVPRemover) {
				m.On("Leave", "evt-1", "uid-1").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:    "Leave without prior rsvp",
			caller:  &caller,
			eventID: "evt-1",
			mockSetup: func(m *mocks.RSVPRemover) {
				m.On("Leave", "evt-1", "uid-1").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:           "No caller",
			caller:         nil,
			eventID:        "evt-1",
			mockSetup:      func(m *mocks.RSVPRemover) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
		{
			name:    "Host cannot leave",
			caller:  &models.Caller{UID: "host-uid-1"},
			eventID: "evt-1",
			mockSetup: func(m *mocks.RSVPRemover) {
				m.On("Leave", "evt-1", "host-uid-1").
					Return(domain.Forbidden("hosts are automatically attending their own event"))
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"hosts are automatically attending their own event"}`,
		},
		{
			name:    "Event not found",
			caller:  &caller,
			eventID: "missing-id",
			mockSetup: func(m *mocks.RSVPRemover) {
				m.On("Leave", "missing-id", "uid-1").
					Return(domain.NotFound("event not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:    "Internal server error",
			caller:  &caller,
			eventID: "evt-1",
			mockSetup: func(m *mocks.RSVPRemover) {
				m.On("Leave", "evt-1", "uid-1").Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to remove rsvp"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockRemover := mocks.NewRSVPRemover(t)
			tc.mockSetup(mockRemover)

			handler := New(logger, mockRemover)

			router := chi.NewRouter()
			router.Route("/events", func(r chi.Router) {
				r.Delete("/{id}/rsvp", handler)
			})

			req, err := http.NewRequest("DELETE", "/events/"+tc.eventID+"/rsvp", nil)
			require.NoError(t, err)

			if tc.caller != nil {
				req = req.WithContext(mwauth.ContextWithCaller(req.Context(), *tc.caller))
			}

			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
