package models

import "time"

// Property is a managed real-estate asset: a building, land, or both.
//
// OrganisationManagingID and the landlord's own ManagedByID may
// legitimately diverge (an owner's usual agency vs. the agency managing
// this particular asset); nothing here assumes they are equal.
//
// Money and area figures are decimal strings, stored as NUMERIC in
// Postgres. They are form data, never arithmetic operands.
type Property struct {
	ID                     int64        `json:"id"`
	PropertyType           PropertyType `json:"property_type"`
	OrganisationManagingID int64        `json:"organisation_managing_id"`
	LandLordID             int64        `json:"land_lord_id"`
	Title                  string       `json:"title"`
	PropertyValue          string       `json:"property_value"`
	Address                string       `json:"address"`
	City                   string       `json:"city"`
	CountryID              int64        `json:"country_id"`
	Description            string       `json:"description"`
	LotSize                string       `json:"lot_size"`
	BuildingSize           string       `json:"building_size"`
	DateCreated            time.Time    `json:"date_created"`
	LastUpdated            time.Time    `json:"last_updated"`
	IsActive               bool         `json:"is_active"`
	GeographicLocation     *string      `json:"geographic_location,omitempty"`
	FirstErectedDate       *time.Time   `json:"first_erected_date,omitempty"`
	PropertyAcquiredDate   *time.Time   `json:"property_acquired_date,omitempty"`
	AcquisitionCost        string       `json:"acquisition_cost"`
	ManagementStartedDate  *time.Time   `json:"management_started_date,omitempty"`
	ManagementStoppedDate  *time.Time   `json:"management_stopped_date,omitempty"`
	PropertyDisposedDate   *time.Time   `json:"property_disposed_date,omitempty"`
	SellingPrice           string       `json:"selling_price"`
	Zone                   *string      `json:"zone,omitempty"`
	Details                *string      `json:"details,omitempty"`
}
