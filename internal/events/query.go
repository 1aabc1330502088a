package events

import (
	"encoding/json"
	"fmt"
	"gathergrove/internal/domain"
	"gathergrove/internal/models"
	"gathergrove/internal/store"
	"sort"
	"time"
)

const (
	defaultPageSize = 20
	maxPageSize     = 50
)

// List builds the event feed: canceled and expired events are dropped, the
// rest are classified against a single query-time clock, filtered, sorted
// and paginated. Every page of one walk uses its own now, so an event can
// disappear between pages but never flickers within one.
func (s *Service) List(q models.ListQuery, viewerUID string) (*models.EventPage, error) {
	limit := q.Limit
	if limit == 0 {
		limit = defaultPageSize
	}
	if limit < 1 || limit > maxPageSize {
		return nil, domain.Invalid(fmt.Sprintf("limit must be between 1 and %d", maxPageSize))
	}

	var cursor *Cursor
	if q.PageToken != "" {
		c, err := DecodeCursor(q.PageToken)
		if err != nil {
			return nil, err
		}
		cursor = &c
	}

	if q.Kind != nil && *q.Kind != models.EventNow && *q.Kind != models.EventFuture {
		return nil, domain.Invalid("kind must be now or future")
	}
	if q.Category != nil && !models.ValidCategory(*q.Category) {
		return nil, domain.Invalid("unknown category")
	}

	now := s.now()

	docs, err := s.store.ListAll(store.CollectionEvents)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	type candidate struct {
		event   models.Event
		sortKey time.Time
	}

	var matched []candidate
	for _, doc := range docs {
		var ev models.Event
		if err := json.Unmarshal(doc.Data, &ev); err != nil {
			continue
		}
		normalizeEvent(&ev, doc.ID)

		if ev.Status == models.EventCanceled {
			continue
		}
		if ev.ExpiresAt != nil && !ev.ExpiresAt.After(now) {
			continue
		}

		if q.Neighborhood != "" && !containsString(ev.Neighborhoods, q.Neighborhood) {
			continue
		}
		if q.Category != nil && ev.Category != *q.Category {
			continue
		}

		happeningNow, upcoming := classify(&ev, now)
		if q.Kind != nil {
			switch *q.Kind {
			case models.EventNow:
				if !happeningNow {
					continue
				}
			case models.EventFuture:
				if !upcoming {
					continue
				}
			}
		} else if !happeningNow && !upcoming {
			continue
		}

		matched = append(matched, candidate{event: ev, sortKey: sortKey(&ev, now)})
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].sortKey.Equal(matched[j].sortKey) {
			return matched[i].sortKey.Before(matched[j].sortKey)
		}
		return matched[i].event.ID < matched[j].event.ID
	})

	start := 0
	if cursor != nil {
		start = len(matched)
		for i, c := range matched {
			if cursor.follows(c.sortKey, c.event.ID) {
				start = i
				break
			}
		}
	}

	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	page := matched[start:end]

	goingByEvent, viewerGoing, err := s.attendanceIndex(viewerUID)
	if err != nil {
		return nil, err
	}

	items := make([]models.ListedEvent, 0, len(page))
	for _, c := range page {
		items = append(items, models.ListedEvent{
			Event:         c.event,
			AttendeeCount: goingByEvent[c.event.ID],
			IsAttending:   viewerGoing[c.event.ID],
		})
	}

	result := &models.EventPage{Items: items}
	if end < len(matched) && len(page) > 0 {
		last := page[len(page)-1]
		token := Cursor{SortKey: last.sortKey, ID: last.event.ID}.Encode()
		result.NextPageToken = &token
	}

	return result, nil
}

// attendanceIndex scans the attendance collection once, producing going
// counts per event and the set of events the viewer is going to. Guests
// count toward attendance but can never be the viewer.
func (s *Service) attendanceIndex(viewerUID string) (map[string]int, map[string]bool, error) {
	docs, err := s.store.ListAll(store.CollectionAttendance)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	goingByEvent := make(map[string]int)
	viewerGoing := make(map[string]bool)

	for _, doc := range docs {
		var rec models.AttendanceRecord
		if err := json.Unmarshal(doc.Data, &rec); err != nil {
			continue
		}
		if rec.Status != models.StatusGoing || rec.EventID == "" {
			continue
		}
		goingByEvent[rec.EventID]++
		if viewerUID != "" && !rec.IsGuest && rec.UID == viewerUID {
			viewerGoing[rec.EventID] = true
		}
	}

	return goingByEvent, viewerGoing, nil
}

// classify places an event relative to now. Happening-now needs an end
// boundary: end_at when present, expires_at otherwise. An event whose start
// has passed and that has neither boundary is in neither bucket.
func classify(ev *models.Event, now time.Time) (happeningNow, upcoming bool) {
	if ev.StartAt.IsZero() {
		return false, false
	}

	boundary := ev.EndAt
	if boundary == nil {
		boundary = ev.ExpiresAt
	}

	if boundary != nil && !ev.StartAt.After(now) && now.Before(*boundary) {
		happeningNow = true
	}
	if ev.StartAt.After(now) {
		upcoming = true
	}

	return happeningNow, upcoming
}

// sortKey orders the feed: start time first, then creation time for legacy
// documents without one, then now as the final fallback.
func sortKey(ev *models.Event, now time.Time) time.Time {
	if !ev.StartAt.IsZero() {
		return ev.StartAt
	}
	if !ev.CreatedAt.IsZero() {
		return ev.CreatedAt
	}
	return now
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
