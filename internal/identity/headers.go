package identity

import (
	"errors"
	"gathergrove/internal/models"
	"net/http"
	"strings"
)

var ErrNoIdentity = errors.New("no identity headers")

// Headers resolves the caller from X-Uid, X-Email and X-Admin request
// headers. The scheme matches what the trusted gateway injects after it
// terminates real authentication; in local development clients set the
// headers themselves.
type Headers struct {
	// DefaultUID is used when a request carries no X-Uid. Leave empty to
	// reject unidentified requests.
	DefaultUID string
}

func (h Headers) Authenticate(r *http.Request) (models.Caller, error) {
	uid := strings.TrimSpace(r.Header.Get("X-Uid"))
	if uid == "" {
		uid = h.DefaultUID
	}
	if uid == "" {
		return models.Caller{}, ErrNoIdentity
	}

	email := strings.TrimSpace(r.Header.Get("X-Email"))
	if email == "" {
		email = uid + "@example.com"
	}

	return models.Caller{
		UID:     uid,
		Email:   email,
		IsAdmin: isTruthy(r.Header.Get("X-Admin")),
	}, nil
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	}
	return false
}
