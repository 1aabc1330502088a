package identity

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		defaultUID string
		wantUID    string
		wantEmail  string
		wantAdmin  bool
		wantErr    bool
	}{
		{
			name:      "full headers",
			headers:   map[string]string{"X-Uid": "uid-1", "X-Email": "pat@example.net", "X-Admin": "true"},
			wantUID:   "uid-1",
			wantEmail: "pat@example.net",
			wantAdmin: true,
		},
		{
			name:      "defaults email from uid",
			headers:   map[string]string{"X-Uid": "uid-2"},
			wantUID:   "uid-2",
			wantEmail: "uid-2@example.com",
		},
		{
			name:    "no identity",
			headers: map[string]string{},
			wantErr: true,
		},
		{
			name:       "default uid fallback",
			headers:    map[string]string{},
			defaultUID: "dev-user",
			wantUID:    "dev-user",
			wantEmail:  "dev-user@example.com",
		},
		{
			name:      "admin flag variants",
			headers:   map[string]string{"X-Uid": "uid-3", "X-Admin": "YES"},
			wantUID:   "uid-3",
			wantEmail: "uid-3@example.com",
			wantAdmin: true,
		},
		{
			name:      "admin flag off",
			headers:   map[string]string{"X-Uid": "uid-4", "X-Admin": "nope"},
			wantUID:   "uid-4",
			wantEmail: "uid-4@example.com",
			wantAdmin: false,
		},
		{
			name:    "blank uid is missing",
			headers: map[string]string{"X-Uid": "   "},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest("GET", "/whoami", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			caller, err := Headers{DefaultUID: tt.defaultUID}.Authenticate(req)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNoIdentity)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantUID, caller.UID)
			assert.Equal(t, tt.wantEmail, caller.Email)
			assert.Equal(t, tt.wantAdmin, caller.IsAdmin)
		})
	}
}
