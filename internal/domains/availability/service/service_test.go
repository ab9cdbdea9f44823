package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"courtside/config"
	otelMocks "courtside/infras/otel/mocks"
	"courtside/internal/domains/availability/service"
	reservationMocks "courtside/internal/domains/reservation/mocks"
	reservationModel "courtside/internal/domains/reservation/model"
	scheduleModel "courtside/internal/domains/schedule/model"
	scheduleMocks "courtside/internal/domains/schedule/service/mocks"
	cacheMocks "courtside/shared/cache/mocks"
	"courtside/shared/constant"
	"courtside/shared/failure"
	"courtside/shared/timezone"
)

const (
	testFacilityID = "7c1d8e2a-0000-4000-8000-000000000001"
	testDate       = "2025-03-10"
)

type availabilityFixture struct {
	schedules    *scheduleMocks.MockSchedule
	reservations *reservationMocks.MockReservation
	cache        *cacheMocks.MockRedisCache
	svc          service.Availability
}

func newAvailabilityFixture(t *testing.T) availabilityFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	schedules := scheduleMocks.NewMockSchedule(ctrl)
	reservations := reservationMocks.NewMockReservation(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return availabilityFixture{
		schedules:    schedules,
		reservations: reservations,
		cache:        cache,
		svc:          service.New(schedules, reservations, cfg, cache, otelMocks.NewOtel()),
	}
}

func mustParse(t *testing.T, layout, value string) time.Time {
	t.Helper()

	parsed, err := timezone.Parse(layout, value)
	require.NoError(t, err)

	return parsed
}

func slotInstant(t *testing.T, clock string) time.Time {
	t.Helper()

	day := mustParse(t, constant.DayFormat, testDate)
	parsed := mustParse(t, constant.ClockFormat, clock)

	return time.Date(day.Year(), day.Month(), day.Day(), parsed.Hour(), parsed.Minute(), 0, 0, timezone.GetLocation())
}

func morningRule(t *testing.T) scheduleModel.ScheduleRule {
	t.Helper()

	return scheduleModel.ScheduleRule{
		ID:              "rule-1",
		FacilityID:      testFacilityID,
		DayKey:          constant.DayKeyMonday,
		OpeningTime:     mustParse(t, constant.ClockFormat, "08:00"),
		ClosingTime:     mustParse(t, constant.ClockFormat, "12:00"),
		SlotDurationMin: 60,
	}
}

func occupant(t *testing.T, id, start, status, reason string) reservationModel.Reservation {
	t.Helper()

	return reservationModel.Reservation{
		ID:         id,
		FacilityID: testFacilityID,
		UserID:     "some-user",
		StartTime:  slotInstant(t, start),
		Status:     status,
		Reason:     reason,
	}
}

func TestAvailabilityService_Query(t *testing.T) {
	t.Run("classifies occupied slots by status", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(assert.AnError)
		f.schedules.EXPECT().
			EffectiveRule(gomock.Any(), testFacilityID, gomock.Any()).
			Return(morningRule(t), true, nil)
		f.reservations.EXPECT().
			GetOccupants(gomock.Any(), testFacilityID, gomock.Any()).
			Return([]reservationModel.Reservation{
				occupant(t, "res-1", "08:00", constant.ReservationStatusPending, ""),
				occupant(t, "res-2", "09:00", constant.ReservationStatusConfirmed, ""),
				occupant(t, "res-3", "10:00", constant.ReservationStatusBlocked, "resurfacing"),
			}, nil)
		f.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := f.svc.Query(context.Background(), testFacilityID, testDate)
		require.NoError(t, err)

		assert.True(t, res.Open)
		require.Len(t, res.Slots, 4)

		assert.Equal(t, constant.SlotStateReservedPending, res.Slots[0].State)
		assert.Equal(t, constant.SlotStateReservedConfirmed, res.Slots[1].State)
		assert.Equal(t, constant.SlotStateBlocked, res.Slots[2].State)
		assert.Equal(t, constant.SlotStateAvailable, res.Slots[3].State)

		// The public view never names occupants.
		for _, slot := range res.Slots {
			assert.Empty(t, slot.ReservationID)
			assert.Empty(t, slot.Reason)
		}
	})

	t.Run("occupant off the current grid is skipped", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(assert.AnError)
		f.schedules.EXPECT().
			EffectiveRule(gomock.Any(), testFacilityID, gomock.Any()).
			Return(morningRule(t), true, nil)
		f.reservations.EXPECT().
			GetOccupants(gomock.Any(), testFacilityID, gomock.Any()).
			Return([]reservationModel.Reservation{
				occupant(t, "res-1", "08:30", constant.ReservationStatusConfirmed, ""),
			}, nil)
		f.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := f.svc.Query(context.Background(), testFacilityID, testDate)
		require.NoError(t, err)

		for _, slot := range res.Slots {
			assert.Equal(t, constant.SlotStateAvailable, slot.State)
		}
	})

	t.Run("closed day yields an empty grid", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(assert.AnError)
		f.schedules.EXPECT().
			EffectiveRule(gomock.Any(), testFacilityID, gomock.Any()).
			Return(scheduleModel.ScheduleRule{}, false, nil)
		f.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := f.svc.Query(context.Background(), testFacilityID, testDate)
		require.NoError(t, err)

		assert.False(t, res.Open)
		assert.Empty(t, res.Slots)
	})

	t.Run("cache hit skips projection", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := f.svc.Query(context.Background(), testFacilityID, testDate)
		require.NoError(t, err)
	})

	t.Run("invalid date", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(assert.AnError)

		_, err := f.svc.Query(context.Background(), testFacilityID, "10/03/2025")
		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestAvailabilityService_QueryDetailed(t *testing.T) {
	f := newAvailabilityFixture(t)

	f.schedules.EXPECT().
		EffectiveRule(gomock.Any(), testFacilityID, gomock.Any()).
		Return(morningRule(t), true, nil)
	f.reservations.EXPECT().
		GetOccupants(gomock.Any(), testFacilityID, gomock.Any()).
		Return([]reservationModel.Reservation{
			occupant(t, "res-1", "09:00", constant.ReservationStatusConfirmed, ""),
			occupant(t, "res-2", "10:00", constant.ReservationStatusBlocked, "net repair"),
		}, nil)

	res, err := f.svc.QueryDetailed(context.Background(), testFacilityID, testDate)
	require.NoError(t, err)

	require.Len(t, res.Slots, 4)
	assert.Equal(t, "res-1", res.Slots[1].ReservationID)
	assert.Equal(t, "res-2", res.Slots[2].ReservationID)
	assert.Equal(t, "net repair", res.Slots[2].Reason)
	assert.Empty(t, res.Slots[0].ReservationID)
}
