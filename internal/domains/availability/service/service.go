package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"courtside/config"
	"courtside/infras/otel"
	"courtside/internal/domains/availability/model"
	"courtside/internal/domains/availability/model/dto"
	reservationModel "courtside/internal/domains/reservation/model"
	reservationRepo "courtside/internal/domains/reservation/repository"
	scheduleService "courtside/internal/domains/schedule/service"
	"courtside/shared"
	"courtside/shared/cache"
	"courtside/shared/constant"
	"courtside/shared/failure"
	"courtside/shared/timezone"
)

const cacheAvailability = "availability"

type Availability interface {
	// Query is the public day view: every slot of the facility day with
	// its state, occupant identities withheld.
	Query(ctx context.Context, facilityID, date string) (dto.GetAvailabilityResponse, error)

	// QueryDetailed is the admin view: the same grid with the occupying
	// reservation id and block reason on taken slots. Never cached.
	QueryDetailed(ctx context.Context, facilityID, date string) (dto.GetAvailabilityResponse, error)
}

type serviceImpl struct {
	schedules    scheduleService.Schedule
	reservations reservationRepo.Reservation
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	schedules scheduleService.Schedule,
	reservations reservationRepo.Reservation,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Availability {
	return &serviceImpl{
		schedules:    schedules,
		reservations: reservations,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Query(ctx context.Context, facilityID, date string) (res dto.GetAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Query")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheAvailability, facilityID, date)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.project(ctx, facilityID, date, false)
	if err != nil {
		return res, err
	}

	// Saved before returning: a stale day view after a booking write
	// would re-offer a taken slot, so lifecycle writes clear these
	// keys synchronously and reads must not race the write with an
	// async save of the old projection.
	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save availability to cache")
	}

	return res, nil
}

func (s *serviceImpl) QueryDetailed(ctx context.Context, facilityID, date string) (res dto.GetAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".QueryDetailed")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.project(ctx, facilityID, date, true)
}

func (s *serviceImpl) project(ctx context.Context, facilityID, date string, detailed bool) (res dto.GetAvailabilityResponse, err error) {
	day, err := timezone.Parse(constant.DayFormat, date)
	if err != nil {
		return res, failure.BadRequest(fmt.Errorf("invalid date %q: %w", date, err)) //nolint:wrapcheck
	}

	rule, open, err := s.schedules.EffectiveRule(ctx, facilityID, day)
	if err != nil {
		return res, err
	}

	if !open {
		res.FromSlots(facilityID, date, nil)

		return res, nil
	}

	slots := model.Slots(day, rule)

	occupants, err := s.reservations.GetOccupants(ctx, facilityID, day)
	if err != nil {
		log.Error().Err(err).Msg("failed to get occupants")

		return res, fmt.Errorf("failed to get occupants: %w", err)
	}

	res.FromSlots(facilityID, date, slots)
	classify(res.Slots, slots, occupants, detailed)

	return res, nil
}

// classify marks each slot whose start matches an active occupant's
// start exactly. Occupants that match no slot start, left over from an
// older rule version, occupy nothing in this projection.
func classify(out []dto.SlotResponse, slots []model.Slot, occupants []reservationModel.Reservation, detailed bool) {
	byStart := make(map[int]int, len(slots))
	for i, slot := range slots {
		byStart[minuteOfDay(slot.Start)] = i
	}

	for _, occupant := range occupants {
		i, ok := byStart[minuteOfDay(occupant.StartTime)]
		if !ok {
			continue
		}

		switch occupant.Status {
		case constant.ReservationStatusPending:
			out[i].State = constant.SlotStateReservedPending
		case constant.ReservationStatusConfirmed:
			out[i].State = constant.SlotStateReservedConfirmed
		case constant.ReservationStatusBlocked:
			out[i].State = constant.SlotStateBlocked
		default:
			continue
		}

		if detailed {
			out[i].ReservationID = occupant.ID
			out[i].Reason = occupant.Reason
		}
	}
}

func minuteOfDay(t time.Time) int {
	t = timezone.ToAppTime(t)

	return t.Hour()*60 + t.Minute()
}
