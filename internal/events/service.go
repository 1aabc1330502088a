package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"gathergrove/internal/directory"
	"gathergrove/internal/domain"
	"gathergrove/internal/models"
	"gathergrove/internal/store"
	"log/slog"
	"time"
)

// Service implements the event lifecycle, attendance and feed engine on top
// of a document store. All methods are safe for concurrent use as long as
// the underlying store is.
type Service struct {
	log   *slog.Logger
	store store.Store
	dir   directory.Directory
	now   func() time.Time
}

func NewService(log *slog.Logger, s store.Store, dir directory.Directory) *Service {
	return &Service{
		log:   log,
		store: s,
		dir:   dir,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// getEvent loads an event and normalizes documents written before the
// host_id migration: the host may live under the legacy host_uid key, and
// very old documents do not embed their own id.
func (s *Service) getEvent(id string) (*models.Event, error) {
	var ev models.Event

	err := s.store.Get(store.CollectionEvents, id, &ev)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.NotFound("event not found")
		}
		return nil, fmt.Errorf("failed to load event %s: %w", id, err)
	}

	normalizeEvent(&ev, id)

	return &ev, nil
}

func normalizeEvent(ev *models.Event, id string) {
	if ev.ID == "" {
		ev.ID = id
	}
	if ev.HostID == "" {
		ev.HostID = ev.LegacyHostUID
	}
	ev.LegacyHostUID = ""
}

// getActiveEvent is getEvent plus a canceled check, for operations that only
// make sense against a live event.
func (s *Service) getActiveEvent(id string) (*models.Event, error) {
	ev, err := s.getEvent(id)
	if err != nil {
		return nil, err
	}

	if ev.Status == models.EventCanceled {
		return nil, domain.Conflict("event is canceled")
	}

	return ev, nil
}

func authorizeHost(ev *models.Event, caller models.Caller) error {
	if ev.HostID == "" {
		return fmt.Errorf("event %s has no host identity", ev.ID)
	}

	if ev.HostID != caller.UID && !caller.IsAdmin {
		return domain.Forbidden("only the host may modify this event")
	}

	return nil
}

// eventAttendance returns every attendance record for one event. Records
// that fail to decode are skipped rather than failing the whole read.
func (s *Service) eventAttendance(eventID string) ([]models.AttendanceRecord, error) {
	docs, err := s.store.ListAll(store.CollectionAttendance)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	var recs []models.AttendanceRecord
	for _, doc := range docs {
		var rec models.AttendanceRecord
		if err := json.Unmarshal(doc.Data, &rec); err != nil {
			continue
		}
		if rec.EventID != eventID {
			continue
		}
		if rec.ID == "" {
			rec.ID = doc.ID
		}
		recs = append(recs, rec)
	}

	return recs, nil
}

// goingCount tallies records with status going, optionally excluding one
// authenticated subject so a caller re-asserting "going" never blocks on
// their own seat.
func goingCount(recs []models.AttendanceRecord, excludeUID string) int {
	n := 0
	for _, rec := range recs {
		if rec.Status != models.StatusGoing {
			continue
		}
		if excludeUID != "" && !rec.IsGuest && rec.UID == excludeUID {
			continue
		}
		n++
	}

	return n
}
