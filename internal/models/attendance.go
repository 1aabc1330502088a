package models

import "time"

type RSVPStatus string

const (
	StatusGoing    RSVPStatus = "going"
	StatusMaybe    RSVPStatus = "maybe"
	StatusDeclined RSVPStatus = "declined"
)

func ValidRSVPStatus(s RSVPStatus) bool {
	switch s {
	case StatusGoing, StatusMaybe, StatusDeclined:
		return true
	}
	return false
}

// AttendanceRecord is one subject's standing for one event. Authenticated
// records are keyed "<event>_<uid>" so a repeat RSVP overwrites in place;
// guest records are keyed "<event>_guest_<guestID>" and never collide.
type AttendanceRecord struct {
	ID         string     `json:"id"`
	EventID    string     `json:"event_id"`
	UID        string     `json:"uid,omitempty"`
	GuestID    string     `json:"guest_id,omitempty"`
	GuestName  string     `json:"guest_name,omitempty"`
	GuestPhone string     `json:"guest_phone,omitempty"`
	IsGuest    bool       `json:"is_guest,omitempty"`
	Status     RSVPStatus `json:"status"`
	RSVPAt     time.Time  `json:"rsvp_at"`
}

// GuestRSVP is the input for a link-based RSVP from someone without an
// account.
type GuestRSVP struct {
	Name   string
	Phone  string
	Choice RSVPStatus
}

type RSVPCounts struct {
	Going    int `json:"going"`
	Maybe    int `json:"maybe"`
	Declined int `json:"declined"`
}

// RSVPSummary tallies an event's attendance, keeping resident and guest
// counts apart. ViewerStatus is nil when the viewer has no record.
type RSVPSummary struct {
	EventID      string      `json:"event_id"`
	Counts       RSVPCounts  `json:"counts"`
	GuestCounts  RSVPCounts  `json:"guest_counts"`
	ViewerStatus *RSVPStatus `json:"viewer_status"`
}

// RSVPEntry is one attendee in the host's grouped roster, enriched with
// household profile data when the directory knows the uid.
type RSVPEntry struct {
	UID           string `json:"uid"`
	HouseholdID   string `json:"household_id"`
	LastName      string `json:"last_name,omitempty"`
	Neighborhood  string `json:"neighborhood,omitempty"`
	HouseholdType string `json:"household_type,omitempty"`
	ChildAges     []int  `json:"child_ages"`
	IsGuest       bool   `json:"is_guest,omitempty"`
	GuestName     string `json:"guest_name,omitempty"`
	GuestPhone    string `json:"guest_phone,omitempty"`
}

type RSVPBuckets struct {
	Going    []RSVPEntry `json:"going"`
	Maybe    []RSVPEntry `json:"maybe"`
	Declined []RSVPEntry `json:"declined"`
}

type Attendee struct {
	ID            string     `json:"id"`
	UID           string     `json:"uid,omitempty"`
	GuestName     string     `json:"guest_name,omitempty"`
	Status        RSVPStatus `json:"status"`
	LastName      string     `json:"last_name,omitempty"`
	Neighborhood  string     `json:"neighborhood,omitempty"`
	HouseholdType string     `json:"household_type,omitempty"`
}
