package model

import (
	"time"

	scheduleModel "courtside/internal/domains/schedule/model"
	"courtside/shared/timezone"
)

// Slot is one bookable interval on a facility day. Start and End are
// absolute instants in the application timezone.
type Slot struct {
	Start time.Time
	End   time.Time
}

// Slots expands a schedule rule over one calendar date. Starts step by
// the slot duration from the opening instant; every start strictly
// before the closing instant yields a slot, so a final slot may run
// past closing when the window is not a whole multiple of the
// duration. Output is deterministic and sorted.
func Slots(date time.Time, rule scheduleModel.ScheduleRule) []Slot {
	if rule.SlotDurationMin <= 0 {
		return nil
	}

	loc := timezone.GetLocation()
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)

	opening := day.Add(clockOffset(rule.OpeningTime))
	closing := day.Add(clockOffset(rule.ClosingTime))

	if !closing.After(opening) {
		return nil
	}

	step := time.Duration(rule.SlotDurationMin) * time.Minute

	slots := make([]Slot, 0, int(closing.Sub(opening)/step)+1)
	for start := opening; start.Before(closing); start = start.Add(step) {
		slots = append(slots, Slot{Start: start, End: start.Add(step)})
	}

	return slots
}

func clockOffset(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
}
