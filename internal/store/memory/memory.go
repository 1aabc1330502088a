package memory

import (
	"encoding/json"
	"fmt"
	"gathergrove/internal/store"
	"sort"
	"sync"
)

// Storage is an in-process document store. It backs local development and
// tests, and mirrors the merge semantics of the postgres backend.
type Storage struct {
	mu   sync.RWMutex
	data map[string]map[string]json.RawMessage
}

func New() *Storage {
	return &Storage{
		data: make(map[string]map[string]json.RawMessage),
	}
}

func (s *Storage) Get(collection, id string, dest any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.data[collection][id]
	if !ok {
		return store.ErrNotFound
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}

	return nil
}

func (s *Storage) Set(collection, id string, data any, merge bool) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	coll := s.data[collection]
	if coll == nil {
		coll = make(map[string]json.RawMessage)
		s.data[collection] = coll
	}

	if existing, ok := coll[id]; ok && merge {
		merged, err := mergeDocuments(existing, raw)
		if err != nil {
			return err
		}
		coll[id] = merged
		return nil
	}

	coll[id] = raw

	return nil
}

func (s *Storage) Delete(collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data[collection], id)

	return nil
}

func (s *Storage) ListAll(collection string) ([]store.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]store.Document, 0, len(s.data[collection]))
	for id, raw := range s.data[collection] {
		docs = append(docs, store.Document{ID: id, Data: raw})
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })

	return docs, nil
}

// mergeDocuments overlays the top-level keys of update onto existing. Nested
// objects are replaced, not merged, matching jsonb || concatenation.
func mergeDocuments(existing, update json.RawMessage) (json.RawMessage, error) {
	var base map[string]any
	if err := json.Unmarshal(existing, &base); err != nil {
		return nil, fmt.Errorf("failed to decode stored document: %w", err)
	}

	var patch map[string]any
	if err := json.Unmarshal(update, &patch); err != nil {
		return nil, fmt.Errorf("failed to decode update: %w", err)
	}

	for k, v := range patch {
		base[k] = v
	}

	merged, err := json.Marshal(base)
	if err != nil {
		return nil, fmt.Errorf("failed to encode merged document: %w", err)
	}

	return merged, nil
}
