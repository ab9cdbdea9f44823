package model

import "courtside/shared/model"

const (
	TableName  = "facilities"
	EntityName = "facility"

	FieldID              = "id"
	FieldVenueID         = "venue_id"
	FieldName            = "name"
	FieldSport           = "sport"
	FieldPrice           = "price"
	FieldCancelNoticeMin = "cancel_notice_min"
	FieldActive          = "active"
)

// Facility is a single bookable court or field inside a venue. Price is
// the fixed per-slot price in the smallest currency unit; the engine
// reads it but computes no pricing policy.
type Facility struct {
	ID              string `db:"id"`
	VenueID         string `db:"venue_id"`
	Name            string `db:"name"`
	Sport           string `db:"sport"`
	Price           int64  `db:"price"`
	CancelNoticeMin int    `db:"cancel_notice_min"`
	Active          bool   `db:"active"`
	model.Metadata
}
