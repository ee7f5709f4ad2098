package dtos

import "github.com/TerrenceTakunda/ekpm/internal/models"

// SubdivisionRequest covers both units and premises; the kind comes
// from the route, never the body. accommodation_type is meaningful for
// premises only and is validated against the configured list.
type SubdivisionRequest struct {
	Title             string  `json:"title" validate:"required"`
	AccommodationType *string `json:"accommodation_type,omitempty"`
	TotalArea         string  `json:"total_area" validate:"required,numeric"`
	IsVacant          *bool   `json:"is_vacant,omitempty"`
	Details           string  `json:"details"`
}

// ToModel builds a new subdivision under the given property. A new
// subdivision is vacant unless the payload says otherwise.
func (r *SubdivisionRequest) ToModel(propertyID int64, kind models.SubdivisionKind) *models.Subdivision {
	isVacant := true
	if r.IsVacant != nil {
		isVacant = *r.IsVacant
	}
	return &models.Subdivision{
		PropertyID:        propertyID,
		Kind:              kind,
		Title:             r.Title,
		AccommodationType: r.AccommodationType,
		TotalArea:         r.TotalArea,
		IsVacant:          isVacant,
		Details:           r.Details,
	}
}

// Apply copies the updatable fields; property and kind stay as created.
func (r *SubdivisionRequest) Apply(s *models.Subdivision) {
	s.Title = r.Title
	s.AccommodationType = r.AccommodationType
	s.TotalArea = r.TotalArea
	if r.IsVacant != nil {
		s.IsVacant = *r.IsVacant
	}
	s.Details = r.Details
}
