package registerToken

import (
	"bytes"
	"encoding/json"
	"errors"
	"gathergrove/internal/domain"
	"gathergrove/internal/http-server/handlers/push/registerToken/mocks"
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

func TestRegisterTokenHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	caller := models.Caller{UID: "uid-1"}
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	testRegistration := &models.PushRegistration{
		UID:       "uid-1",
		Tokens:    []string{"ExponentPushToken[abc123]"},
		Platforms: map[string]string{"ExponentPushToken[abc123]": "ios"},
		CreatedAt: now,
		UpdatedAt: now,
	}

	testCases := []struct {
		name           string
		caller         *models.Caller
		requestBody    string
		mockSetup      func(mock *mocks.TokenRegistrar)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			caller:      &caller,
			requestBody: `{"token": "ExponentPushToken[abc123]", "platform": "ios"}`,
			mockSetup: func(m *mocks.TokenRegistrar) {
				m.On("Register", "uid-1", "ExponentPushToken[abc123]", "ios").
					Return(testRegistration, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var response RegisterResponse
				require.NoError(t, json.Unmarshal([]byte(body), &response))
				assert.Equal(t, "OK", response.Status)
				require.NotNil(t, response.Registration)
				assert.Equal(t, []string{"ExponentPushToken[abc123]"}, response.Registration.Tokens)
				assert.Equal(t, "ios", response.Registration.Platforms["ExponentPushToken[abc123]"])
			},
		},
		{
			name:        "Platform defaults downstream",
			caller:      &caller,
			requestBody: `{"token": "ExponentPushToken[abc123]"}`,
			mockSetup: func(m *mocks.TokenRegistrar) {
				reg := *testRegistration
				reg.Platforms = map[string]string{"ExponentPushToken[abc123]": "unknown"}
				m.On("Register", "uid-1", "ExponentPushToken[abc123]", "").
					Return(&reg, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var response RegisterResponse
				require.NoError(t, json.Unmarshal([]byte(body), &response))
				assert.Equal(t, "unknown", response.Registration.Platforms["ExponentPushToken[abc123]"])
			},
		},
		{
			name:           "No caller",
			caller:         nil,
			requestBody:    `{"token": "ExponentPushToken[abc123]"}`,
			mockSetup:      func(m *mocks.TokenRegistrar) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
		{
			name:           "Invalid JSON",
			caller:         &caller,
			requestBody:    `invalid json`,
			mockSetup:      func(m *mocks.TokenRegistrar) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing token",
			caller:         &caller,
			requestBody:    `{"platform": "ios"}`,
			mockSetup:      func(m *mocks.TokenRegistrar) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Token")
			},
		},
		{
			name:        "Token too short",
			caller:      &caller,
			requestBody: `{"token": "short", "platform": "ios"}`,
			mockSetup: func(m *mocks.TokenRegistrar) {
				m.On("Register", "uid-1", "short", "ios").
					Return(nil, domain.Invalid("token must be at least 10 characters"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"token must be at least 10 characters"}`,
		},
		{
			name:        "Internal server error",
			caller:      &caller,
			requestBody: `{"token": "ExponentPushToken[abc123]", "platform": "ios"}`,
			mockSetup: func(m *mocks.TokenRegistrar) {
				m.On("Register", "uid-1", "ExponentPushToken[abc123]", "ios").
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to register push token"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockRegistrar := mocks.NewTokenRegistrar(t)
			tc.mockSetup(mockRegistrar)

			handler := New(logger, mockRegistrar)

			req, err := http.NewRequest("POST", "/push/register", bytes.NewBufferString(tc.requestBody))
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
