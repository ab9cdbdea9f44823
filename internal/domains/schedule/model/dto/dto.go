package dto

import (
	"time"

	"github.com/google/uuid"

	"courtside/internal/domains/schedule/model"
	"courtside/shared/constant"
	gModel "courtside/shared/model"
	"courtside/shared/timezone"
)

type UpsertScheduleRuleRequest struct {
	DayKey          string `json:"day_key"           validate:"required,oneof=mon tue wed thu fri sat sun holiday all"`
	OpeningTime     string `json:"opening_time"      validate:"required"`
	ClosingTime     string `json:"closing_time"      validate:"required"`
	SlotDurationMin int    `json:"slot_duration_min" validate:"required,gte=15,lte=480"`
}

func (c *UpsertScheduleRuleRequest) ToModel(facilityID, user string, effectiveFrom time.Time) (model.ScheduleRule, error) {
	opening, err := timezone.Parse(constant.ClockFormat, c.OpeningTime)
	if err != nil {
		return model.ScheduleRule{}, err
	}

	closing, err := timezone.Parse(constant.ClockFormat, c.ClosingTime)
	if err != nil {
		return model.ScheduleRule{}, err
	}

	return model.ScheduleRule{
		ID:              uuid.NewString(),
		FacilityID:      facilityID,
		DayKey:          c.DayKey,
		OpeningTime:     opening,
		ClosingTime:     closing,
		SlotDurationMin: c.SlotDurationMin,
		EffectiveFrom:   effectiveFrom,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type RuleResponse struct {
	ID              string `json:"id"`
	DayKey          string `json:"day_key"`
	OpeningTime     string `json:"opening_time"`
	ClosingTime     string `json:"closing_time"`
	SlotDurationMin int    `json:"slot_duration_min"`
	EffectiveFrom   string `json:"effective_from"`
	SupersededFrom  string `json:"superseded_from,omitempty"`
}

func (r *RuleResponse) FromModel(model model.ScheduleRule) {
	r.ID = model.ID
	r.DayKey = model.DayKey
	r.OpeningTime = model.OpeningTime.Format(constant.ClockFormat)
	r.ClosingTime = model.ClosingTime.Format(constant.ClockFormat)
	r.SlotDurationMin = model.SlotDurationMin
	r.EffectiveFrom = timezone.Format(model.EffectiveFrom, constant.DateFormat)

	if model.SupersededFrom != nil {
		r.SupersededFrom = timezone.Format(*model.SupersededFrom, constant.DateFormat)
	}
}

type GetRulesResponse struct {
	FacilityID string         `json:"facility_id"`
	Rules      []RuleResponse `json:"rules"`
}

func (r *GetRulesResponse) FromModels(facilityID string, models []model.ScheduleRule) {
	r.FacilityID = facilityID

	r.Rules = make([]RuleResponse, len(models))
	for i, mod := range models {
		r.Rules[i].FromModel(mod)
	}
}

// RuleChangeResponse reports when a rule write or delete becomes
// visible to slot generation.
type RuleChangeResponse struct {
	RuleID        string `json:"rule_id"`
	EffectiveFrom string `json:"effective_from"`
}
