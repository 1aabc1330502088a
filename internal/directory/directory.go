package directory

import (
	"encoding/json"
	"errors"
	"fmt"
	"gathergrove/internal/models"
	"gathergrove/internal/store"
	"strconv"
	"time"
)

// Directory resolves household profiles for attendee enrichment.
// Implementations return (nil, nil) when nothing is known for the uid;
// callers must treat that as "no profile", not an error.
type Directory interface {
	Lookup(uid string) (*models.Household, error)
}

// StoreDirectory reads profiles from the households collection, falling back
// to the legacy users collection. Profile documents predate the current
// schema, so field names are normalized on the way out.
type StoreDirectory struct {
	store store.Store
	now   func() time.Time
}

func New(s store.Store) *StoreDirectory {
	return &StoreDirectory{
		store: s,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (d *StoreDirectory) Lookup(uid string) (*models.Household, error) {
	if uid == "" {
		return nil, nil
	}

	collections := []string{store.CollectionHouseholds, store.CollectionUsers}

	for _, coll := range collections {
		var raw map[string]any
		err := d.store.Get(coll, uid, &raw)
		if err == nil {
			return d.normalize(uid, raw), nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up household: %w", err)
		}
	}

	// Old profile documents are keyed by household id with the uid stored
	// in a field, so a miss by key is not authoritative.
	for _, coll := range collections {
		docs, err := d.store.ListAll(coll)
		if err != nil {
			return nil, fmt.Errorf("failed to scan households: %w", err)
		}
		for _, doc := range docs {
			var raw map[string]any
			if err := json.Unmarshal(doc.Data, &raw); err != nil {
				continue
			}
			if owner, _ := raw["uid"].(string); owner == uid {
				return d.normalize(doc.ID, raw), nil
			}
		}
	}

	return nil, nil
}

func (d *StoreDirectory) normalize(id string, raw map[string]any) *models.Household {
	hh := &models.Household{ID: id, ChildAges: []int{}}

	if v, ok := raw["household_id"].(string); ok && v != "" {
		hh.ID = v
	}

	for _, key := range []string{"display_last_name", "last_name"} {
		if v, ok := raw[key].(string); ok && v != "" {
			hh.LastName = v
			break
		}
	}

	if v, ok := raw["neighborhood"].(string); ok && v != "" {
		hh.Neighborhood = v
	} else if list, ok := raw["neighborhoods"].([]any); ok && len(list) > 0 {
		if v, ok := list[0].(string); ok {
			hh.Neighborhood = v
		}
	}

	for _, key := range []string{"household_type", "type"} {
		if v, ok := raw[key].(string); ok && v != "" {
			hh.HouseholdType = v
			break
		}
	}

	hh.ChildAges = childAges(raw["kids"], d.now())

	return hh
}

// childAges derives ages from kid birth year/month records. Kids without a
// usable birth year are skipped, and the day of month is fixed to the 1st.
func childAges(v any, now time.Time) []int {
	ages := []int{}

	kids, ok := v.([]any)
	if !ok {
		return ages
	}

	for _, k := range kids {
		kid, ok := k.(map[string]any)
		if !ok {
			continue
		}

		year, ok := asInt(kid["birth_year"])
		if !ok {
			continue
		}
		month, ok := asInt(kid["birth_month"])
		if !ok || month < 1 || month > 12 {
			month = 1
		}

		dob := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		age := now.Year() - dob.Year()
		if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
			age--
		}

		if age >= 0 {
			ages = append(ages, age)
		}
	}

	return ages
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i, true
		}
	}

	return 0, false
}
