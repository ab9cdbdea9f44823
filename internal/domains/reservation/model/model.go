package model

import (
	"time"

	"courtside/shared/constant"
	"courtside/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID           = "id"
	FieldFacilityID   = "facility_id"
	FieldUserID       = "user_id"
	FieldSlotDate     = "slot_date"
	FieldStartTime    = "start_time"
	FieldEndTime      = "end_time"
	FieldStatus       = "status"
	FieldReason       = "reason"
	FieldCancelReason = "cancel_reason"
	FieldCancelledAt  = "cancelled_at"

	PaymentTableName  = "payments"
	PaymentEntityName = "payment"

	FieldPaymentReservationID = "reservation_id"
	FieldPaymentRef           = "payment_ref"
)

// Reservation is one occupied slot. Maintenance blocks live in the
// same table under the blocked status so the conflict index covers
// both; a block carries no user and no payment.
type Reservation struct {
	ID           string     `db:"id"`
	FacilityID   string     `db:"facility_id"`
	UserID       string     `db:"user_id"`
	SlotDate     time.Time  `db:"slot_date"`
	StartTime    time.Time  `db:"start_time"`
	EndTime      time.Time  `db:"end_time"`
	Status       string     `db:"status"`
	Reason       string     `db:"reason"`
	CancelReason *string    `db:"cancel_reason"`
	CancelledAt  *time.Time `db:"cancelled_at"`
	model.Metadata
}

// Active reports whether the reservation still occupies its slot.
func (r *Reservation) Active() bool {
	return r.Status != constant.ReservationStatusCancelled
}

// ActiveStatuses are the statuses that hold a slot. Cancelled rows
// stay for audit but release the slot.
func ActiveStatuses() []string {
	return []string{
		constant.ReservationStatusPending,
		constant.ReservationStatusConfirmed,
		constant.ReservationStatusBlocked,
	}
}

// Payment is the settlement record attached to a confirmed
// reservation, one row per reservation.
type Payment struct {
	ID            string    `db:"id"`
	ReservationID string    `db:"reservation_id"`
	PaymentRef    string    `db:"payment_ref"`
	Amount        int64     `db:"amount"`
	Status        string    `db:"status"`
	PaidAt        time.Time `db:"paid_at"`
	model.Metadata
}
