package events

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"gathergrove/internal/domain"
	"gathergrove/internal/lib/logger/sl"
	"gathergrove/internal/models"
	"gathergrove/internal/store"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
)

const linkPrefix = "/e/"

func newEventID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

// Create validates the spec, fills kind-specific defaults and persists a new
// active event owned by hostID.
//
// A "now" event starts immediately unless a start is given, and defaults its
// expiry to start + 24h. It deliberately gets no end_at: the event stays on
// the feed until it expires. A "future" event requires an explicit start.
func (s *Service) Create(spec models.EventSpec, hostID string) (*models.Event, error) {
	if hostID == "" {
		return nil, domain.Unauthorized("missing host identity")
	}

	title := strings.TrimSpace(spec.Title)
	if title == "" {
		return nil, domain.Invalid("title is required")
	}

	now := s.now()

	var startAt time.Time
	var endAt, expiresAt *time.Time

	switch spec.Kind {
	case models.EventNow:
		startAt = now
		if spec.StartAt != nil {
			startAt = spec.StartAt.UTC()
		}
		if spec.ExpiresAt != nil {
			expiresAt = timePtr(spec.ExpiresAt.UTC())
		} else {
			expiresAt = timePtr(startAt.Add(24 * time.Hour))
		}
	case models.EventFuture:
		if spec.StartAt == nil {
			return nil, domain.Invalid("start_at is required for future events")
		}
		startAt = spec.StartAt.UTC()
		if spec.EndAt != nil {
			endAt = timePtr(spec.EndAt.UTC())
		}
		if spec.ExpiresAt != nil {
			expiresAt = timePtr(spec.ExpiresAt.UTC())
		}
	default:
		return nil, domain.Invalid("kind must be now or future")
	}

	if endAt != nil && !endAt.After(startAt) {
		return nil, domain.Invalid("end_at must be after start_at")
	}

	if spec.Capacity != nil && *spec.Capacity < 1 {
		return nil, domain.Invalid("capacity must be at least 1")
	}

	category := spec.Category
	if category == "" {
		category = models.CategoryOther
	}
	if !models.ValidCategory(category) {
		return nil, domain.Invalid("unknown category")
	}

	visibility := spec.Visibility
	if visibility == "" {
		visibility = models.VisibilityPrivate
	}
	if !models.ValidVisibility(visibility) {
		return nil, domain.Invalid("unknown visibility")
	}

	neighborhoods := spec.Neighborhoods
	if neighborhoods == nil {
		neighborhoods = []string{}
	}

	id := newEventID()

	link := ""
	if visibility != models.VisibilityPrivate {
		link = linkPrefix + id
	}

	ev := &models.Event{
		ID:            id,
		Kind:          spec.Kind,
		Title:         title,
		Details:       spec.Details,
		Location:      spec.Location,
		StartAt:       startAt,
		EndAt:         endAt,
		ExpiresAt:     expiresAt,
		Capacity:      spec.Capacity,
		Neighborhoods: neighborhoods,
		Category:      category,
		HostID:        hostID,
		Visibility:    visibility,
		ShareableLink: link,
		Status:        models.EventActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.store.Set(store.CollectionEvents, id, ev, false); err != nil {
		return nil, fmt.Errorf("failed to save event: %w", err)
	}

	return ev, nil
}

// Get returns one event by id with legacy fields normalized.
func (s *Service) Get(id string) (*models.Event, error) {
	return s.getEvent(id)
}

// PublicView returns the sanitized shape of a shareable event. A private
// event is reported exactly like a missing one so the endpoint cannot be
// used to probe which ids exist.
func (s *Service) PublicView(id string) (*models.PublicEventView, error) {
	ev, err := s.getEvent(id)
	if err != nil {
		return nil, err
	}

	if ev.Visibility == models.VisibilityPrivate {
		return nil, domain.NotFound("event not found")
	}

	return &models.PublicEventView{
		ID:         ev.ID,
		Kind:       ev.Kind,
		Title:      ev.Title,
		Details:    ev.Details,
		Location:   ev.Location,
		Category:   ev.Category,
		Visibility: ev.Visibility,
		Status:     ev.Status,
		StartAt:    ev.StartAt,
		EndAt:      ev.EndAt,
		ExpiresAt:  ev.ExpiresAt,
		Capacity:   ev.Capacity,
		CreatedAt:  ev.CreatedAt,
	}, nil
}

// Patch applies a partial update on behalf of the caller. Only the host or
// an admin may patch; every rule is checked against the post-merge document
// before anything is written. Visibility transitions manage the shareable
// link: entering private clears it, entering a shareable tier mints one if
// the event never had one.
func (s *Service) Patch(id string, patch models.EventPatch, caller models.Caller) (*models.Event, error) {
	ev, err := s.getEvent(id)
	if err != nil {
		return nil, err
	}

	if err := authorizeHost(ev, caller); err != nil {
		return nil, err
	}

	updates := map[string]any{}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, domain.Invalid("title must not be empty")
		}
		updates["title"] = title
	}
	if patch.Details != nil {
		updates["details"] = *patch.Details
	}
	if patch.Location != nil {
		updates["location"] = *patch.Location
	}

	finalStart := ev.StartAt
	if patch.StartAt != nil {
		finalStart = patch.StartAt.UTC()
		updates["start_at"] = finalStart
	}
	finalEnd := ev.EndAt
	if patch.EndAt != nil {
		finalEnd = timePtr(patch.EndAt.UTC())
		updates["end_at"] = *finalEnd
	}
	if finalEnd != nil && !finalEnd.After(finalStart) {
		return nil, domain.Invalid("end_at must be after start_at")
	}

	if patch.ExpiresAt != nil {
		updates["expires_at"] = patch.ExpiresAt.UTC()
	}
	if patch.Capacity != nil {
		if *patch.Capacity < 1 {
			return nil, domain.Invalid("capacity must be at least 1")
		}
		updates["capacity"] = *patch.Capacity
	}
	if patch.Neighborhoods != nil {
		updates["neighborhoods"] = *patch.Neighborhoods
	}
	if patch.Category != nil {
		if !models.ValidCategory(*patch.Category) {
			return nil, domain.Invalid("unknown category")
		}
		updates["category"] = *patch.Category
	}
	if patch.Visibility != nil {
		visibility := *patch.Visibility
		if !models.ValidVisibility(visibility) {
			return nil, domain.Invalid("unknown visibility")
		}
		updates["visibility"] = visibility

		if visibility == models.VisibilityPrivate {
			updates["shareable_link"] = nil
		} else if ev.ShareableLink == "" {
			updates["shareable_link"] = linkPrefix + ev.ID
		}
	}

	if len(updates) > 0 {
		updates["updated_at"] = s.now()

		if err := s.store.Set(store.CollectionEvents, ev.ID, updates, true); err != nil {
			return nil, fmt.Errorf("failed to update event: %w", err)
		}
	}

	return s.getEvent(ev.ID)
}

// Cancel marks an event canceled, recording who did it and when. Canceling
// an already-canceled event is a no-op that keeps the original mark.
func (s *Service) Cancel(id string, caller models.Caller) (*models.Event, error) {
	ev, err := s.getEvent(id)
	if err != nil {
		return nil, err
	}

	if err := authorizeHost(ev, caller); err != nil {
		return nil, err
	}

	if ev.Status == models.EventCanceled {
		return ev, nil
	}

	now := s.now()
	updates := map[string]any{
		"status":      models.EventCanceled,
		"canceled_at": now,
		"canceled_by": caller.UID,
		"updated_at":  now,
	}

	if err := s.store.Set(store.CollectionEvents, ev.ID, updates, true); err != nil {
		return nil, fmt.Errorf("failed to cancel event: %w", err)
	}

	return s.getEvent(ev.ID)
}

// Delete removes the event document, then sweeps its attendance records.
// The cascade is best effort: a partial failure is logged, not returned,
// and the orphan sweeper cleans up whatever is left.
func (s *Service) Delete(id string, caller models.Caller) error {
	ev, err := s.getEvent(id)
	if err != nil {
		return err
	}

	if err := authorizeHost(ev, caller); err != nil {
		return err
	}

	if err := s.store.Delete(store.CollectionEvents, ev.ID); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	if err := s.deleteAttendance(ev.ID); err != nil {
		s.log.Error("attendance cascade incomplete",
			slog.String("event_id", ev.ID), sl.Err(err))
	}

	return nil
}

func (s *Service) deleteAttendance(eventID string) error {
	docs, err := s.store.ListAll(store.CollectionAttendance)
	if err != nil {
		return fmt.Errorf("failed to list attendance: %w", err)
	}

	var errs error
	for _, doc := range docs {
		var rec models.AttendanceRecord
		if err := json.Unmarshal(doc.Data, &rec); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("failed to decode %s: %w", doc.ID, err))
			continue
		}
		if rec.EventID != eventID {
			continue
		}
		if err := s.store.Delete(store.CollectionAttendance, doc.ID); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("failed to delete %s: %w", doc.ID, err))
		}
	}

	return errs
}

func timePtr(t time.Time) *time.Time {
	return &t
}
