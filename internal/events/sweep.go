package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"gathergrove/internal/models"
	"gathergrove/internal/store"

	"go.uber.org/multierr"
)

// SweepOrphanedAttendance deletes attendance records whose event no longer
// exists. Event deletion cascades inline, but a crash mid-cascade leaves
// strays; this pass makes the cleanup re-runnable. It returns how many
// records it removed along with every per-record failure it hit.
func (s *Service) SweepOrphanedAttendance() (int, error) {
	docs, err := s.store.ListAll(store.CollectionAttendance)
	if err != nil {
		return 0, fmt.Errorf("failed to list attendance: %w", err)
	}

	removed := 0
	var errs error

	for _, doc := range docs {
		var rec models.AttendanceRecord
		if err := json.Unmarshal(doc.Data, &rec); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("failed to decode %s: %w", doc.ID, err))
			continue
		}
		if rec.EventID == "" {
			continue
		}

		var ev models.Event
		err := s.store.Get(store.CollectionEvents, rec.EventID, &ev)
		if err == nil {
			continue
		}
		if !errors.Is(err, store.ErrNotFound) {
			errs = multierr.Append(errs, fmt.Errorf("failed to check event %s: %w", rec.EventID, err))
			continue
		}

		if err := s.store.Delete(store.CollectionAttendance, doc.ID); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("failed to delete %s: %w", doc.ID, err))
			continue
		}
		removed++
	}

	return removed, errs
}
