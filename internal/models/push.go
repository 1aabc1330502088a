package models

import "time"

// PushRegistration is the per-user device token registry. Tokens are kept
// deduplicated and sorted; Platforms maps each token to its platform tag.
type PushRegistration struct {
	UID       string            `json:"uid"`
	Tokens    []string          `json:"tokens"`
	Platforms map[string]string `json:"platforms"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
