package models

import "time"

// Subdivision is a rentable part of a property. The two historical
// flavours (standalone/parking units and apartments/floors) share one
// table and one code path, discriminated by Kind; AccommodationType is
// set only for premises.
type Subdivision struct {
	ID                int64           `json:"id"`
	PropertyID        int64           `json:"property_id"`
	Kind              SubdivisionKind `json:"kind"`
	Title             string          `json:"title"`
	AccommodationType *string         `json:"accommodation_type,omitempty"`
	TotalArea         string          `json:"total_area"`
	IsVacant          bool            `json:"is_vacant"`
	IsActive          bool            `json:"is_active"`
	DateCreated       time.Time       `json:"date_created"`
	LastUpdated       time.Time       `json:"last_updated"`
	Details           string          `json:"details,omitempty"`
}
