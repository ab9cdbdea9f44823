package dto

import (
	"courtside/internal/domains/reservation/model"
	"courtside/shared"
	"courtside/shared/constant"
	gDto "courtside/shared/dto"
	"courtside/shared/timezone"
)

type CreateReservationRequest struct {
	FacilityID string `json:"facility_id" validate:"required,uuid"`
	Date       string `json:"date"        validate:"required"`
	StartTime  string `json:"start_time"  validate:"required"`
}

type CreateBlockRequest struct {
	FacilityID string `json:"facility_id" validate:"required,uuid"`
	Date       string `json:"date"        validate:"required"`
	StartTime  string `json:"start_time"  validate:"required"`
	Reason     string `json:"reason"      validate:"required,max=255"`
}

type ConfirmReservationRequest struct {
	PaymentRef string `json:"payment_ref" validate:"required,max=100"`
}

type CancelReservationRequest struct {
	Reason string `json:"reason" validate:"required,max=255"`
}

type PaymentResponse struct {
	PaymentRef string `json:"payment_ref"`
	Amount     int64  `json:"amount"`
	Status     string `json:"status"`
	PaidAt     string `json:"paid_at"`
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.PaymentRef = model.PaymentRef
	r.Amount = model.Amount
	r.Status = model.Status
	r.PaidAt = timezone.Format(model.PaidAt, constant.DateFormat)
}

type ReservationResponse struct {
	ID           string           `json:"id"`
	FacilityID   string           `json:"facility_id"`
	UserID       string           `json:"user_id,omitempty"`
	Date         string           `json:"date"`
	StartTime    string           `json:"start_time"`
	EndTime      string           `json:"end_time"`
	Status       string           `json:"status"`
	Reason       string           `json:"reason,omitempty"`
	CancelReason string           `json:"cancel_reason,omitempty"`
	CancelledAt  string           `json:"cancelled_at,omitempty"`
	Payment      *PaymentResponse `json:"payment,omitempty"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.FacilityID = model.FacilityID
	r.UserID = model.UserID
	r.Date = timezone.Format(model.SlotDate, constant.DayFormat)
	r.StartTime = timezone.Format(model.StartTime, constant.ClockFormat)
	r.EndTime = timezone.Format(model.EndTime, constant.ClockFormat)
	r.Status = model.Status
	r.Reason = model.Reason
	r.Metadata.FromModel(model.Metadata)

	if model.CancelReason != nil {
		r.CancelReason = *model.CancelReason
	}

	if model.CancelledAt != nil {
		r.CancelledAt = timezone.Format(*model.CancelledAt, constant.DateFormat)
	}
}

func (r *ReservationResponse) AttachPayment(model model.Payment) {
	if model.ID == constant.Empty {
		return
	}

	payment := &PaymentResponse{}
	payment.FromModel(model)
	r.Payment = payment
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}
