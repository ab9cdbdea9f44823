package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"courtside/config"
	"courtside/infras/otel"
	availabilityModel "courtside/internal/domains/availability/model"
	facilityModel "courtside/internal/domains/facility/model"
	facilityRepo "courtside/internal/domains/facility/repository"
	"courtside/internal/domains/reservation/model"
	"courtside/internal/domains/reservation/model/dto"
	"courtside/internal/domains/reservation/repository"
	scheduleService "courtside/internal/domains/schedule/service"
	"courtside/internal/events"
	"courtside/shared"
	"courtside/shared/cache"
	"courtside/shared/constant"
	gDto "courtside/shared/dto"
	"courtside/shared/failure"
	gModel "courtside/shared/model"
	"courtside/shared/timezone"
)

const cacheAvailability = "availability"

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	Block(ctx context.Context, req dto.CreateBlockRequest) (dto.ReservationResponse, error)
	Confirm(ctx context.Context, req dto.ConfirmReservationRequest, id string) (dto.ReservationResponse, error)
	Cancel(ctx context.Context, req dto.CancelReservationRequest, id string) error
	Unblock(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	GetMine(ctx context.Context, req gDto.QueryParams) (dto.GetReservationsResponse, error)
}

type serviceImpl struct {
	repo       repository.Reservation
	facilities facilityRepo.Facility
	schedules  scheduleService.Schedule
	publisher  events.Publisher
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Reservation,
	facilities facilityRepo.Facility,
	schedules scheduleService.Schedule,
	publisher events.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:       repo,
		facilities: facilities,
		schedules:  schedules,
		publisher:  publisher,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return res, failure.Unauthorized("missing user identity") //nolint:wrapcheck
	}

	reservation, err := s.buildSlotHolder(ctx, req.FacilityID, req.Date, req.StartTime)
	if err != nil {
		return res, err
	}

	reservation.UserID = user
	reservation.Status = constant.ReservationStatusPending
	reservation.Metadata = newMetadata(user)

	if err = s.repo.InsertActive(ctx, reservation); err != nil {
		if failure.IsSlotConflict(err) {
			return res, err
		}

		log.Error().Err(err).Msg("failed to create reservation")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	s.invalidateDay(ctx, reservation)
	s.publish(ctx, events.TypeReservationCreated, reservation, constant.Empty)

	res.FromModel(reservation)

	return res, nil
}

// Block takes a slot out of circulation for maintenance. Blocks ride
// the same conflict index as reservations, so a block attempt on a
// taken slot fails the same way a booking does.
func (s *serviceImpl) Block(ctx context.Context, req dto.CreateBlockRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Block")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	block, err := s.buildSlotHolder(ctx, req.FacilityID, req.Date, req.StartTime)
	if err != nil {
		return res, err
	}

	block.Status = constant.ReservationStatusBlocked
	block.Reason = req.Reason
	block.Metadata = newMetadata(user)

	if err = s.repo.InsertActive(ctx, block); err != nil {
		if failure.IsSlotConflict(err) {
			return res, err
		}

		log.Error().Err(err).Msg("failed to block slot")

		return res, fmt.Errorf("failed to block slot: %w", err)
	}

	s.invalidateDay(ctx, block)
	s.publish(ctx, events.TypeSlotBlocked, block, constant.Empty)

	res.FromModel(block)

	return res, nil
}

// Confirm is idempotent on the payment reference: repeating a
// confirmation that already succeeded with the same reference returns
// the confirmed state instead of an error.
func (s *serviceImpl) Confirm(ctx context.Context, req dto.ConfirmReservationRequest, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.mustGet(ctx, id)
	if err != nil {
		return res, err
	}

	if reservation.Status == constant.ReservationStatusConfirmed {
		return s.confirmedState(ctx, reservation, req.PaymentRef)
	}

	if reservation.Status != constant.ReservationStatusPending {
		return res, failure.NotPendingError //nolint:wrapcheck
	}

	facility, err := s.getFacility(ctx, reservation.FacilityID)
	if err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	payment := model.Payment{
		ID:            uuid.NewString(),
		ReservationID: id,
		PaymentRef:    req.PaymentRef,
		Amount:        facility.Price,
		Status:        constant.PaymentStatusPaid,
		PaidAt:        timezone.Now(),
		Metadata:      newMetadata(user),
	}

	matched, err := s.repo.Confirm(ctx, id, payment)
	if err != nil {
		log.Error().Err(err).Msg("failed to confirm reservation")

		return res, fmt.Errorf("failed to confirm reservation: %w", err)
	}

	if !matched {
		// Lost the race. Re-read and fall back to the idempotency
		// check against whatever won.
		reservation, err = s.mustGet(ctx, id)
		if err != nil {
			return res, err
		}

		if reservation.Status == constant.ReservationStatusConfirmed {
			return s.confirmedState(ctx, reservation, req.PaymentRef)
		}

		return res, failure.NotPendingError //nolint:wrapcheck
	}

	reservation.Status = constant.ReservationStatusConfirmed

	s.invalidateDay(ctx, reservation)
	s.publish(ctx, events.TypeReservationConfirmed, reservation, req.PaymentRef)

	res.FromModel(reservation)
	res.AttachPayment(payment)

	return res, nil
}

func (s *serviceImpl) confirmedState(ctx context.Context, reservation model.Reservation, paymentRef string) (res dto.ReservationResponse, err error) {
	payment, err := s.repo.GetPayment(ctx, reservation.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment")

		return res, fmt.Errorf("failed to get payment: %w", err)
	}

	if payment.PaymentRef != paymentRef {
		return res, failure.NotPendingError //nolint:wrapcheck
	}

	res.FromModel(reservation)
	res.AttachPayment(payment)

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, req dto.CancelReservationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Reason == constant.Empty {
		return failure.ReasonRequiredError //nolint:wrapcheck
	}

	reservation, err := s.mustGet(ctx, id)
	if err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if reservation.UserID != user && role != constant.RoleAdmin && role != constant.RoleSuperAdmin {
		return failure.Forbidden("reservation belongs to another user") //nolint:wrapcheck
	}

	switch reservation.Status {
	case constant.ReservationStatusPending, constant.ReservationStatusConfirmed:
	default:
		return failure.NotCancellableError //nolint:wrapcheck
	}

	now := timezone.Now()

	matched, err := s.repo.UpdateStatusIf(ctx, id, reservation.Status, map[string]any{
		model.FieldStatus:        constant.ReservationStatusCancelled,
		model.FieldCancelReason:  req.Reason,
		model.FieldCancelledAt:   now,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to cancel reservation")

		return fmt.Errorf("failed to cancel reservation: %w", err)
	}

	if !matched {
		return failure.NotCancellableError //nolint:wrapcheck
	}

	reservation.Status = constant.ReservationStatusCancelled
	reservation.Reason = req.Reason

	s.invalidateDay(ctx, reservation)

	event := s.cancellationEvent(ctx, reservation, now)
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Error().Err(err).Msg("failed to publish cancellation event")
	}

	return nil
}

func (s *serviceImpl) Unblock(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Unblock")
	defer scope.End()
	defer scope.TraceIfError(err)

	block, err := s.mustGet(ctx, id)
	if err != nil {
		return err
	}

	if block.Status != constant.ReservationStatusBlocked {
		return failure.Conflict("reservation is not a maintenance block") //nolint:wrapcheck
	}

	// Blocks carry no audit obligation; removal is a hard delete so
	// the slot opens without a tombstone row.
	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to unblock slot")

		return fmt.Errorf("failed to unblock slot: %w", err)
	}

	s.invalidateDay(ctx, block)
	s.publish(ctx, events.TypeSlotUnblocked, block, constant.Empty)

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.mustGet(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(reservation)

	if reservation.Status == constant.ReservationStatusConfirmed {
		payment, err := s.repo.GetPayment(ctx, id)
		if err != nil {
			log.Error().Err(err).Msg("failed to get payment")

			return res, fmt.Errorf("failed to get payment: %w", err)
		}

		res.AttachPayment(payment)
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) GetMine(ctx context.Context, req gDto.QueryParams) (res dto.GetReservationsResponse, err error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return res, failure.Unauthorized("missing user identity") //nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Value:    user,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	return s.GetAll(ctx, req, filter)
}

// buildSlotHolder validates the requested slot against the facility's
// effective rule for that date and returns a row positioned on the
// grid. The end time comes from the grid, never from the caller.
func (s *serviceImpl) buildSlotHolder(ctx context.Context, facilityID, date, startTime string) (model.Reservation, error) {
	day, err := timezone.Parse(constant.DayFormat, date)
	if err != nil {
		return model.Reservation{}, failure.BadRequest(fmt.Errorf("invalid date %q: %w", date, err)) //nolint:wrapcheck
	}

	start, err := timezone.Parse(constant.ClockFormat, startTime)
	if err != nil {
		return model.Reservation{}, failure.BadRequest(fmt.Errorf("invalid start time %q: %w", startTime, err)) //nolint:wrapcheck
	}

	rule, open, err := s.schedules.EffectiveRule(ctx, facilityID, day)
	if err != nil {
		return model.Reservation{}, err
	}

	if !open {
		return model.Reservation{}, failure.InvalidRange("facility generates no slots on this date") //nolint:wrapcheck
	}

	slot, ok := slotAt(availabilityModel.Slots(day, rule), start)
	if !ok {
		return model.Reservation{}, failure.InvalidRange("start time is not on the slot grid") //nolint:wrapcheck
	}

	return model.Reservation{
		ID:         uuid.NewString(),
		FacilityID: facilityID,
		SlotDate:   day,
		StartTime:  slot.Start,
		EndTime:    slot.End,
	}, nil
}

func slotAt(slots []availabilityModel.Slot, start time.Time) (availabilityModel.Slot, bool) {
	want := start.Hour()*60 + start.Minute()

	for _, slot := range slots {
		at := timezone.ToAppTime(slot.Start)
		if at.Hour()*60+at.Minute() == want {
			return slot, true
		}
	}

	return availabilityModel.Slot{}, false
}

func (s *serviceImpl) cancellationEvent(ctx context.Context, reservation model.Reservation, at time.Time) events.ReservationEvent {
	event := s.newEvent(events.TypeReservationCancelled, reservation, constant.Empty)
	event.Reason = reservation.Reason

	facility, err := s.getFacility(ctx, reservation.FacilityID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get facility for cancellation notice")

		return event
	}

	notice := time.Duration(facility.CancelNoticeMin) * time.Minute
	event.InsideNotice = reservation.StartTime.Sub(at) < notice

	return event
}

func (s *serviceImpl) mustGet(ctx context.Context, id string) (model.Reservation, error) {
	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return reservation, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return reservation, failure.NotFound("reservation not found") //nolint:wrapcheck
	}

	return reservation, nil
}

func (s *serviceImpl) getFacility(ctx context.Context, facilityID string) (facilityModel.Facility, error) {
	facility, err := s.facilities.Get(ctx, shared.FilterByID(facilityID, facilityModel.FieldID, facilityModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get facility")

		return facility, fmt.Errorf("failed to get facility: %w", err)
	}

	if facility.ID == constant.Empty {
		return facility, failure.NotFound("facility not found") //nolint:wrapcheck
	}

	return facility, nil
}

func (s *serviceImpl) newEvent(eventType string, reservation model.Reservation, paymentRef string) events.ReservationEvent {
	return events.ReservationEvent{
		Type:          eventType,
		ReservationID: reservation.ID,
		FacilityID:    reservation.FacilityID,
		SlotDate:      timezone.Format(reservation.SlotDate, constant.DayFormat),
		StartTime:     timezone.Format(reservation.StartTime, constant.ClockFormat),
		Status:        reservation.Status,
		UserRef:       reservation.UserID,
		Reason:        reservation.Reason,
		PaymentRef:    paymentRef,
	}
}

func (s *serviceImpl) publish(ctx context.Context, eventType string, reservation model.Reservation, paymentRef string) {
	if err := s.publisher.Publish(ctx, s.newEvent(eventType, reservation, paymentRef)); err != nil {
		log.Error().Err(err).Str("type", eventType).Msg("failed to publish reservation event")
	}
}

// invalidateDay drops the cached availability projections for the
// facility day before the write returns, so the next read rebuilds
// from the rows just written.
func (s *serviceImpl) invalidateDay(ctx context.Context, reservation model.Reservation) {
	prefix := shared.BuildCacheKey(cacheAvailability, reservation.FacilityID, timezone.Format(reservation.SlotDate, constant.DayFormat))
	shared.InvalidateCaches(ctx, s.cache, prefix)
}

func newMetadata(user string) gModel.Metadata {
	return gModel.Metadata{
		CreatedAt:  timezone.Now(),
		ModifiedAt: timezone.Now(),
		CreatedBy:  user,
		ModifiedBy: user,
	}
}
