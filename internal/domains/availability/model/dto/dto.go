package dto

import (
	"courtside/internal/domains/availability/model"
	"courtside/shared/constant"
	"courtside/shared/timezone"
)

type SlotResponse struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	State     string `json:"state"`

	// Occupant detail, populated on the admin view only.
	ReservationID string `json:"reservation_id,omitempty"`
	Reason        string `json:"reason,omitempty"`
}

type GetAvailabilityResponse struct {
	FacilityID string         `json:"facility_id"`
	Date       string         `json:"date"`
	Open       bool           `json:"open"`
	Slots      []SlotResponse `json:"slots"`
}

func (r *GetAvailabilityResponse) FromSlots(facilityID string, date string, slots []model.Slot) {
	r.FacilityID = facilityID
	r.Date = date
	r.Open = len(slots) > 0

	r.Slots = make([]SlotResponse, len(slots))
	for i, slot := range slots {
		r.Slots[i] = SlotResponse{
			StartTime: timezone.Format(slot.Start, constant.ClockFormat),
			EndTime:   timezone.Format(slot.End, constant.ClockFormat),
			State:     constant.SlotStateAvailable,
		}
	}
}
