package events

import (
	"fmt"
	"gathergrove/internal/domain"
	"gathergrove/internal/lib/logger/sl"
	"gathergrove/internal/lib/phone"
	"gathergrove/internal/models"
	"gathergrove/internal/store"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

func attendanceKey(eventID, uid string) string {
	return eventID + "_" + uid
}

func guestKey(eventID, guestID string) string {
	return eventID + "_guest_" + guestID
}

// RSVP upserts the caller's standing for an event. One authenticated subject
// holds at most one record per event; re-asserting overwrites in place with
// no history. Hosts are rejected: hosting already implies attending.
//
// Capacity only gates the transition to going, and the caller's own seat is
// excluded from the count so re-asserting going never fails on a full event.
func (s *Service) RSVP(eventID, uid string, status models.RSVPStatus) (*models.AttendanceRecord, error) {
	if uid == "" {
		return nil, domain.Unauthorized("missing caller identity")
	}
	if !models.ValidRSVPStatus(status) {
		return nil, domain.Invalid("status must be going, maybe or declined")
	}

	ev, err := s.getActiveEvent(eventID)
	if err != nil {
		return nil, err
	}

	if ev.HostID == uid {
		return nil, domain.Forbidden("hosts are automatically attending their own event")
	}

	if status == models.StatusGoing && ev.Capacity != nil {
		recs, err := s.eventAttendance(eventID)
		if err != nil {
			return nil, err
		}
		if goingCount(recs, uid) >= *ev.Capacity {
			return nil, domain.Conflict("event is at capacity")
		}
	}

	rec := &models.AttendanceRecord{
		ID:      attendanceKey(eventID, uid),
		EventID: eventID,
		UID:     uid,
		Status:  status,
		RSVPAt:  s.now(),
	}

	if err := s.store.Set(store.CollectionAttendance, rec.ID, rec, true); err != nil {
		return nil, fmt.Errorf("failed to save rsvp: %w", err)
	}

	return rec, nil
}

// Leave removes the caller's attendance record. Leaving without a record is
// a silent no-op, so retries are safe.
func (s *Service) Leave(eventID, uid string) error {
	if uid == "" {
		return domain.Unauthorized("missing caller identity")
	}

	ev, err := s.getEvent(eventID)
	if err != nil {
		return err
	}

	if ev.HostID == uid {
		return domain.Forbidden("hosts are automatically attending their own event")
	}

	if err := s.store.Delete(store.CollectionAttendance, attendanceKey(eventID, uid)); err != nil {
		return fmt.Errorf("failed to delete rsvp: %w", err)
	}

	return nil
}

// GuestRSVP records a link-based RSVP from someone without an account. Each
// call mints a fresh guest identity, so the same person responding twice
// produces two records; there is no dedup key to collide on. The phone
// number is normalized to E.164 when it parses, kept verbatim otherwise.
func (s *Service) GuestRSVP(eventID string, guest models.GuestRSVP) (*models.AttendanceRecord, error) {
	name := strings.TrimSpace(guest.Name)
	if name == "" {
		return nil, domain.Invalid("name is required")
	}
	if !models.ValidRSVPStatus(guest.Choice) {
		return nil, domain.Invalid("choice must be going, maybe or declined")
	}

	ev, err := s.getActiveEvent(eventID)
	if err != nil {
		return nil, err
	}

	if guest.Choice == models.StatusGoing && ev.Capacity != nil {
		recs, err := s.eventAttendance(eventID)
		if err != nil {
			return nil, err
		}
		if goingCount(recs, "") >= *ev.Capacity {
			return nil, domain.Conflict("event is at capacity")
		}
	}

	phoneNumber := strings.TrimSpace(guest.Phone)
	if phoneNumber != "" {
		if normalized, err := phone.Normalize(phoneNumber); err == nil {
			phoneNumber = normalized
		}
	}

	guestID := uuid.New().String()

	rec := &models.AttendanceRecord{
		ID:         guestKey(eventID, guestID),
		EventID:    eventID,
		GuestID:    guestID,
		GuestName:  name,
		GuestPhone: phoneNumber,
		IsGuest:    true,
		Status:     guest.Choice,
		RSVPAt:     s.now(),
	}

	if err := s.store.Set(store.CollectionAttendance, rec.ID, rec, true); err != nil {
		return nil, fmt.Errorf("failed to save guest rsvp: %w", err)
	}

	return rec, nil
}

// Summary tallies attendance for an event, keeping resident and guest counts
// apart. When viewerUID has a record its status is echoed back so clients
// can render the caller's own standing without a second request.
func (s *Service) Summary(eventID, viewerUID string) (*models.RSVPSummary, error) {
	if _, err := s.getEvent(eventID); err != nil {
		return nil, err
	}

	recs, err := s.eventAttendance(eventID)
	if err != nil {
		return nil, err
	}

	sum := &models.RSVPSummary{EventID: eventID}

	for _, rec := range recs {
		counts := &sum.Counts
		if rec.IsGuest {
			counts = &sum.GuestCounts
		}

		switch rec.Status {
		case models.StatusGoing:
			counts.Going++
		case models.StatusMaybe:
			counts.Maybe++
		case models.StatusDeclined:
			counts.Declined++
		}

		if !rec.IsGuest && viewerUID != "" && rec.UID == viewerUID {
			status := rec.Status
			sum.ViewerStatus = &status
		}
	}

	return sum, nil
}

// Buckets builds the host's grouped roster, enriched with household profiles
// from the directory. A canceled event keeps its records in the store but
// reports empty buckets. Records with an unrecognized status land in going,
// which is where pre-enum documents belong.
func (s *Service) Buckets(eventID string) (*models.RSVPBuckets, error) {
	ev, err := s.getEvent(eventID)
	if err != nil {
		return nil, err
	}

	buckets := &models.RSVPBuckets{
		Going:    []models.RSVPEntry{},
		Maybe:    []models.RSVPEntry{},
		Declined: []models.RSVPEntry{},
	}

	if ev.Status == models.EventCanceled {
		return buckets, nil
	}

	recs, err := s.eventAttendance(eventID)
	if err != nil {
		return nil, err
	}

	for _, rec := range recs {
		var entry models.RSVPEntry

		if rec.IsGuest {
			gid := "guest_" + rec.GuestID
			entry = models.RSVPEntry{
				UID:         gid,
				HouseholdID: gid,
				IsGuest:     true,
				GuestName:   rec.GuestName,
				GuestPhone:  rec.GuestPhone,
				ChildAges:   []int{},
			}
		} else {
			entry = models.RSVPEntry{
				UID:         rec.UID,
				HouseholdID: rec.UID,
				ChildAges:   []int{},
			}
			hh, err := s.dir.Lookup(rec.UID)
			if err != nil {
				s.log.Warn("household lookup failed",
					slog.String("uid", rec.UID), sl.Err(err))
			}
			if hh != nil {
				entry.HouseholdID = hh.ID
				entry.LastName = hh.LastName
				entry.Neighborhood = hh.Neighborhood
				entry.HouseholdType = hh.HouseholdType
				if hh.ChildAges != nil {
					entry.ChildAges = hh.ChildAges
				}
			}
		}

		switch rec.Status {
		case models.StatusMaybe:
			buckets.Maybe = append(buckets.Maybe, entry)
		case models.StatusDeclined:
			buckets.Declined = append(buckets.Declined, entry)
		default:
			buckets.Going = append(buckets.Going, entry)
		}
	}

	return buckets, nil
}

// Attendees flattens the records for one event, optionally filtered by
// status, with light household enrichment for authenticated entries.
func (s *Service) Attendees(eventID string, status *models.RSVPStatus) ([]models.Attendee, error) {
	if _, err := s.getEvent(eventID); err != nil {
		return nil, err
	}

	recs, err := s.eventAttendance(eventID)
	if err != nil {
		return nil, err
	}

	items := []models.Attendee{}
	for _, rec := range recs {
		if status != nil && rec.Status != *status {
			continue
		}

		item := models.Attendee{
			ID:        rec.ID,
			UID:       rec.UID,
			GuestName: rec.GuestName,
			Status:    rec.Status,
		}

		if !rec.IsGuest && rec.UID != "" {
			hh, err := s.dir.Lookup(rec.UID)
			if err != nil {
				s.log.Warn("household lookup failed",
					slog.String("uid", rec.UID), sl.Err(err))
			}
			if hh != nil {
				item.LastName = hh.LastName
				item.Neighborhood = hh.Neighborhood
				item.HouseholdType = hh.HouseholdType
			}
		}

		items = append(items, item)
	}

	return items, nil
}
