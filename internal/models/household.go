package models

// Household is the directory profile used to enrich attendee listings.
type Household struct {
	ID            string `json:"id"`
	LastName      string `json:"last_name,omitempty"`
	Neighborhood  string `json:"neighborhood,omitempty"`
	HouseholdType string `json:"household_type,omitempty"`
	ChildAges     []int  `json:"child_ages"`
}
