package models

// Caller is the authenticated identity attached to a request.
type Caller struct {
	UID     string `json:"uid"`
	Email   string `json:"email,omitempty"`
	IsAdmin bool   `json:"is_admin"`
}
