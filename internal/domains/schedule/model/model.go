package model

import (
	"time"

	"courtside/shared/constant"
	"courtside/shared/model"
)

const (
	TableName  = "schedule_rules"
	EntityName = "schedule_rule"

	FieldID             = "id"
	FieldFacilityID     = "facility_id"
	FieldDayKey         = "day_key"
	FieldOpeningTime    = "opening_time"
	FieldClosingTime    = "closing_time"
	FieldSlotDuration   = "slot_duration_min"
	FieldEffectiveFrom  = "effective_from"
	FieldSupersededFrom = "superseded_from"
)

// ScheduleRule is one version in the append-only rule history of a
// facility. A write never mutates a row: it supersedes the open
// versions for the day key and inserts a new one that becomes
// effective after the propagation window, so slot generation inside
// the window keeps seeing the rule reservations were made under.
type ScheduleRule struct {
	ID              string     `db:"id"`
	FacilityID      string     `db:"facility_id"`
	DayKey          string     `db:"day_key"`
	OpeningTime     time.Time  `db:"opening_time"`
	ClosingTime     time.Time  `db:"closing_time"`
	SlotDurationMin int        `db:"slot_duration_min"`
	EffectiveFrom   time.Time  `db:"effective_from"`
	SupersededFrom  *time.Time `db:"superseded_from"`
	model.Metadata
}

// EffectiveAt reports whether this version is the live one at the
// given generation instant.
func (r *ScheduleRule) EffectiveAt(at time.Time) bool {
	if r.EffectiveFrom.After(at) {
		return false
	}

	return r.SupersededFrom == nil || r.SupersededFrom.After(at)
}

// Tombstone reports whether this version closes the facility for its
// day key (a deleted rule).
func (r *ScheduleRule) Tombstone() bool {
	return r.SlotDurationMin == 0
}

var weekdayKeys = [...]string{
	constant.DayKeySunday,
	constant.DayKeyMonday,
	constant.DayKeyTuesday,
	constant.DayKeyWednesday,
	constant.DayKeyThursday,
	constant.DayKeyFriday,
	constant.DayKeySaturday,
}

// DayKeyFor maps a weekday to its schedule-rule day key.
func DayKeyFor(weekday time.Weekday) string {
	return weekdayKeys[int(weekday)]
}

// WeekdaysFor expands a day key into the concrete weekdays it covers.
// The holiday pseudo-day maps to none.
func WeekdaysFor(dayKey string) []time.Weekday {
	switch dayKey {
	case constant.DayKeyAll:
		return []time.Weekday{
			time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
			time.Thursday, time.Friday, time.Saturday,
		}
	case constant.DayKeyHoliday:
		return nil
	default:
		for day, key := range weekdayKeys {
			if key == dayKey {
				return []time.Weekday{time.Weekday(day)}
			}
		}

		return nil
	}
}
