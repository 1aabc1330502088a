package store

import (
	"encoding/json"
	"errors"
)

// Collections used by the services. Every backend keeps documents under
// (collection, id) with a JSON object as the value.
const (
	CollectionEvents     = "events"
	CollectionAttendance = "event_attendees"
	CollectionPushTokens = "push_tokens"
	CollectionHouseholds = "households"
	CollectionUsers      = "users"
)

var ErrNotFound = errors.New("document not found")

type Document struct {
	ID   string
	Data json.RawMessage
}

// Store is a schemaless document store. Set with merge performs a shallow
// top-level merge into the existing document; without merge it replaces the
// document wholesale. Get decodes into dest and returns ErrNotFound when no
// document exists. Delete is idempotent.
type Store interface {
	Get(collection, id string, dest any) error
	Set(collection, id string, data any, merge bool) error
	Delete(collection, id string) error
	ListAll(collection string) ([]Document, error)
}
