package models

import "time"

type EventKind string

const (
	EventNow    EventKind = "now"
	EventFuture EventKind = "future"
)

type Visibility string

const (
	VisibilityPrivate  Visibility = "private"
	VisibilityLinkOnly Visibility = "link_only"
	VisibilityPublic   Visibility = "public"
)

func ValidVisibility(v Visibility) bool {
	switch v {
	case VisibilityPrivate, VisibilityLinkOnly, VisibilityPublic:
		return true
	}
	return false
}

type EventStatus string

const (
	EventActive   EventStatus = "active"
	EventCanceled EventStatus = "canceled"
)

type Category string

const (
	CategoryNeighborhood Category = "neighborhood"
	CategoryPlaydate     Category = "playdate"
	CategoryHelp         Category = "help"
	CategoryPet          Category = "pet"
	CategoryFood         Category = "food"
	CategoryCelebrations Category = "celebrations"
	CategorySports       Category = "sports"
	CategoryOther        Category = "other"
)

func ValidCategory(c Category) bool {
	switch c {
	case CategoryNeighborhood, CategoryPlaydate, CategoryHelp, CategoryPet,
		CategoryFood, CategoryCelebrations, CategorySports, CategoryOther:
		return true
	}
	return false
}

type Event struct {
	ID            string      `json:"id"`
	Kind          EventKind   `json:"kind"`
	Title         string      `json:"title"`
	Details       string      `json:"details,omitempty"`
	Location      string      `json:"location,omitempty"`
	StartAt       time.Time   `json:"start_at"`
	EndAt         *time.Time  `json:"end_at,omitempty"`
	ExpiresAt     *time.Time  `json:"expires_at,omitempty"`
	Capacity      *int        `json:"capacity,omitempty"`
	Neighborhoods []string    `json:"neighborhoods"`
	Category      Category    `json:"category"`
	HostID        string      `json:"host_id"`
	LegacyHostUID string      `json:"host_uid,omitempty"`
	Visibility    Visibility  `json:"visibility"`
	ShareableLink string      `json:"shareable_link,omitempty"`
	Status        EventStatus `json:"status"`
	CanceledAt    *time.Time  `json:"canceled_at,omitempty"`
	CanceledBy    string      `json:"canceled_by,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// EventSpec is the input for creating an event. Zero-valued optional fields
// fall back to kind-specific defaults.
type EventSpec struct {
	Kind          EventKind
	Title         string
	Details       string
	Location      string
	StartAt       *time.Time
	EndAt         *time.Time
	ExpiresAt     *time.Time
	Capacity      *int
	Neighborhoods []string
	Category      Category
	Visibility    Visibility
}

// EventPatch carries a partial update. A nil field means "leave unchanged",
// which is distinct from setting a field to its zero value.
type EventPatch struct {
	Title         *string
	Details       *string
	Location      *string
	StartAt       *time.Time
	EndAt         *time.Time
	ExpiresAt     *time.Time
	Capacity      *int
	Neighborhoods *[]string
	Category      *Category
	Visibility    *Visibility
}

// PublicEventView is the sanitized shape served to unauthenticated callers.
// It carries no host identity, no attendee data and no neighborhood scoping.
type PublicEventView struct {
	ID         string      `json:"id"`
	Kind       EventKind   `json:"kind"`
	Title      string      `json:"title"`
	Details    string      `json:"details,omitempty"`
	Location   string      `json:"location,omitempty"`
	Category   Category    `json:"category"`
	Visibility Visibility  `json:"visibility"`
	Status     EventStatus `json:"status"`
	StartAt    time.Time   `json:"start_at"`
	EndAt      *time.Time  `json:"end_at,omitempty"`
	ExpiresAt  *time.Time  `json:"expires_at,omitempty"`
	Capacity   *int        `json:"capacity,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

type ListedEvent struct {
	Event
	AttendeeCount int  `json:"attendee_count"`
	IsAttending   bool `json:"is_attending"`
}

type EventPage struct {
	Items         []ListedEvent `json:"items"`
	NextPageToken *string       `json:"next_page_token"`
}

// ListQuery filters and paginates the event feed. A nil Kind matches both
// happening-now and upcoming events.
type ListQuery struct {
	Kind         *EventKind
	Neighborhood string
	Category     *Category
	Limit        int
	PageToken    string
}
