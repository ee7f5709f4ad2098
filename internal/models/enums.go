package models

import "fmt"

// ------------------------------------------------------------------------
// PropertyType enumerates the kinds of property on the books. The string
// values are persisted and must not change.
// ------------------------------------------------------------------------
type PropertyType string

const (
	PropertyResidential       PropertyType = "Residential"
	PropertyApartmentBuilding PropertyType = "Apartment Building"
	PropertyOffice            PropertyType = "Office"
	PropertyIndustrial        PropertyType = "Industrial"
	PropertyCommercial        PropertyType = "Commercial"
	PropertyAgricultural      PropertyType = "Agricultural"
	PropertyLand              PropertyType = "Land"
	PropertyOther             PropertyType = "Other"
)

var propertyTypes = []PropertyType{
	PropertyResidential,
	PropertyApartmentBuilding,
	PropertyOffice,
	PropertyIndustrial,
	PropertyCommercial,
	PropertyAgricultural,
	PropertyLand,
	PropertyOther,
}

// ParsePropertyType converts a persisted/submitted string to the enum.
func ParsePropertyType(s string) (PropertyType, error) {
	for _, pt := range propertyTypes {
		if s == string(pt) {
			return pt, nil
		}
	}
	return "", fmt.Errorf("invalid property type: %q", s)
}

// PropertyTypes returns the full set, for form population.
func PropertyTypes() []PropertyType {
	out := make([]PropertyType, len(propertyTypes))
	copy(out, propertyTypes)
	return out
}

// ------------------------------------------------------------------------
// SubdivisionKind discriminates the two rentable-subdivision flavours.
// ------------------------------------------------------------------------
type SubdivisionKind string

const (
	SubdivisionUnit    SubdivisionKind = "unit"
	SubdivisionPremise SubdivisionKind = "premise"
)

func ParseSubdivisionKind(s string) (SubdivisionKind, error) {
	switch s {
	case "unit":
		return SubdivisionUnit, nil
	case "premise":
		return SubdivisionPremise, nil
	default:
		return "", fmt.Errorf("invalid subdivision kind: %q", s)
	}
}
