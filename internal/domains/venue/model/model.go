package model

import (
	"time"

	"courtside/shared/model"
)

const (
	TableName  = "venues"
	EntityName = "venue"

	FieldID       = "id"
	FieldName     = "name"
	FieldAddress  = "address"
	FieldTimezone = "timezone"
	FieldActive   = "active"
)

const (
	HoursTableName  = "venue_hours"
	HoursEntityName = "venue_hours"

	FieldHoursID        = "id"
	FieldHoursVenueID   = "venue_id"
	FieldHoursDayOfWeek = "day_of_week"
	FieldHoursIsOpen    = "is_open"
	FieldHoursOpening   = "opening_time"
	FieldHoursClosing   = "closing_time"
)

const (
	HolidayTableName  = "venue_holidays"
	HolidayEntityName = "venue_holiday"

	FieldHolidayID      = "id"
	FieldHolidayVenueID = "venue_id"
	FieldHolidayDate    = "holiday_date"
	FieldHolidayLabel   = "label"
)

type Venue struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Address  string `db:"address"`
	Timezone string `db:"timezone"`
	Active   bool   `db:"active"`
	model.Metadata
}

// VenueHours is the venue-level opening window for one weekday. It is
// the upper bound for facility schedule rules: no rule may authorize
// booking outside it, and a closed day forbids any rule at all.
type VenueHours struct {
	ID          string    `db:"id"`
	VenueID     string    `db:"venue_id"`
	DayOfWeek   int       `db:"day_of_week"` // 0 = Sunday .. 6 = Saturday
	IsOpen      bool      `db:"is_open"`
	OpeningTime time.Time `db:"opening_time"`
	ClosingTime time.Time `db:"closing_time"`
	model.Metadata
}

// VenueHoliday marks a calendar date on which facilities resolve their
// "holiday" schedule rule instead of the weekday rule.
type VenueHoliday struct {
	ID          string    `db:"id"`
	VenueID     string    `db:"venue_id"`
	HolidayDate time.Time `db:"holiday_date"`
	Label       string    `db:"label"`
	model.Metadata
}
