package push

import (
	"errors"
	"fmt"
	"gathergrove/internal/domain"
	"gathergrove/internal/models"
	"gathergrove/internal/store"
	"sort"
	"strings"
	"time"
)

// Tokens shorter than this are junk from misconfigured clients; real APNs
// and FCM tokens are far longer.
const minTokenLength = 10

// Service maintains the per-user device token registry used by notification
// delivery. Registration is idempotent per token.
type Service struct {
	store store.Store
	now   func() time.Time
}

func NewService(s store.Store) *Service {
	return &Service{
		store: s,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Register adds a device token to the caller's registry. Re-registering an
// existing token only refreshes its platform tag. The token list stays
// deduplicated and sorted so repeated registrations produce identical
// documents.
func (s *Service) Register(uid, token, platform string) (*models.PushRegistration, error) {
	token = strings.TrimSpace(token)
	if len(token) < minTokenLength {
		return nil, domain.Invalid(fmt.Sprintf("token must be at least %d characters", minTokenLength))
	}

	platform = strings.ToLower(strings.TrimSpace(platform))
	if platform == "" {
		platform = "unknown"
	}

	existing, isNew, err := s.load(uid)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(existing.Tokens)+1)
	tokens := make([]string, 0, len(existing.Tokens)+1)
	for _, tok := range append(existing.Tokens, token) {
		tok = strings.TrimSpace(tok)
		if tok == "" || seen[tok] {
			continue
		}
		seen[tok] = true
		tokens = append(tokens, tok)
	}
	sort.Strings(tokens)

	platforms := existing.Platforms
	if platforms == nil {
		platforms = make(map[string]string)
	}
	platforms[token] = platform

	now := s.now()

	reg := &models.PushRegistration{
		UID:       uid,
		Tokens:    tokens,
		Platforms: platforms,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: now,
	}
	if isNew {
		reg.CreatedAt = now
	}

	if err := s.store.Set(store.CollectionPushTokens, uid, reg, false); err != nil {
		return nil, fmt.Errorf("failed to save push registration: %w", err)
	}

	return reg, nil
}

// Tokens returns the caller's registry. A user who never registered gets an
// empty registry, not an error.
func (s *Service) Tokens(uid string) (*models.PushRegistration, error) {
	reg, _, err := s.load(uid)
	if err != nil {
		return nil, err
	}

	return reg, nil
}

// Clear drops every registered token for the caller, typically on logout.
func (s *Service) Clear(uid string) (*models.PushRegistration, error) {
	existing, isNew, err := s.load(uid)
	if err != nil {
		return nil, err
	}

	now := s.now()

	reg := &models.PushRegistration{
		UID:       uid,
		Tokens:    []string{},
		Platforms: map[string]string{},
		CreatedAt: existing.CreatedAt,
		UpdatedAt: now,
	}
	if isNew {
		reg.CreatedAt = now
	}

	if err := s.store.Set(store.CollectionPushTokens, uid, reg, false); err != nil {
		return nil, fmt.Errorf("failed to clear push registration: %w", err)
	}

	return reg, nil
}

func (s *Service) load(uid string) (*models.PushRegistration, bool, error) {
	var reg models.PushRegistration

	err := s.store.Get(store.CollectionPushTokens, uid, &reg)
	if errors.Is(err, store.ErrNotFound) {
		return &models.PushRegistration{
			UID:       uid,
			Tokens:    []string{},
			Platforms: map[string]string{},
		}, true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load push registration: %w", err)
	}

	reg.UID = uid
	if reg.Tokens == nil {
		reg.Tokens = []string{}
	}
	if reg.Platforms == nil {
		reg.Platforms = map[string]string{}
	}

	return &reg, false, nil
}
