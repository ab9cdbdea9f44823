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
	facilityMocks "courtside/internal/domains/facility/mocks"
	facilityModel "courtside/internal/domains/facility/model"
	scheduleMocks "courtside/internal/domains/schedule/mocks"
	"courtside/internal/domains/schedule/model"
	"courtside/internal/domains/schedule/model/dto"
	"courtside/internal/domains/schedule/service"
	venueMocks "courtside/internal/domains/venue/mocks"
	venueModel "courtside/internal/domains/venue/model"
	cacheMocks "courtside/shared/cache/mocks"
	"courtside/shared/constant"
	"courtside/shared/failure"
	"courtside/shared/timezone"
)

const (
	testFacilityID = "5f4a1c3e-0000-4000-8000-000000000001"
	testVenueID    = "5f4a1c3e-0000-4000-8000-000000000002"
	testUserID     = "test-user-id"
)

type scheduleFixture struct {
	repo       *scheduleMocks.MockSchedule
	facilities *facilityMocks.MockFacility
	venues     *venueMocks.MockVenue
	cache      *cacheMocks.MockRedisCache
	svc        service.Schedule
}

func newScheduleFixture(t *testing.T) scheduleFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := scheduleMocks.NewMockSchedule(ctrl)
	facilities := facilityMocks.NewMockFacility(ctrl)
	venues := venueMocks.NewMockVenue(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Engine.RulePropagationDays = 7

	return scheduleFixture{
		repo:       repo,
		facilities: facilities,
		venues:     venues,
		cache:      cache,
		svc:        service.New(repo, facilities, venues, cfg, cache, otelMocks.NewOtel()),
	}
}

func testContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, testUserID)
}

func mustClock(t *testing.T, value string) time.Time {
	t.Helper()

	clock, err := timezone.Parse(constant.ClockFormat, value)
	require.NoError(t, err)

	return clock
}

func mustDay(t *testing.T, value string) time.Time {
	t.Helper()

	day, err := timezone.Parse(constant.DayFormat, value)
	require.NoError(t, err)

	return day
}

func testFacility() facilityModel.Facility {
	return facilityModel.Facility{
		ID:      testFacilityID,
		VenueID: testVenueID,
		Name:    "Court 1",
		Sport:   "padel",
		Active:  true,
	}
}

func openHours(t *testing.T, weekday int, opening, closing string) venueModel.VenueHours {
	t.Helper()

	return venueModel.VenueHours{
		ID:          "hours-" + testVenueID,
		VenueID:     testVenueID,
		DayOfWeek:   weekday,
		IsOpen:      true,
		OpeningTime: mustClock(t, opening),
		ClosingTime: mustClock(t, closing),
	}
}

func version(t *testing.T, id, dayKey, opening, closing string, duration int, effectiveFrom time.Time) model.ScheduleRule {
	t.Helper()

	return model.ScheduleRule{
		ID:              id,
		FacilityID:      testFacilityID,
		DayKey:          dayKey,
		OpeningTime:     mustClock(t, opening),
		ClosingTime:     mustClock(t, closing),
		SlotDurationMin: duration,
		EffectiveFrom:   effectiveFrom,
	}
}

func TestScheduleService_EffectiveRule(t *testing.T) {
	monday := mustDay(t, "2025-03-10")
	past := timezone.Now().Add(-30 * 24 * time.Hour)
	older := timezone.Now().Add(-60 * 24 * time.Hour)
	pending := timezone.Now().Add(3 * 24 * time.Hour)

	tests := []struct {
		name     string
		date     time.Time
		hours    venueModel.VenueHours
		holiday  venueModel.VenueHoliday
		versions []model.ScheduleRule
		wantOpen bool
		wantRule string
	}{
		{
			name:  "specific day shadows the all key",
			date:  monday,
			hours: openHours(t, 1, "06:00", "23:00"),
			versions: []model.ScheduleRule{
				version(t, "rule-all", constant.DayKeyAll, "08:00", "20:00", 60, older),
				version(t, "rule-mon", constant.DayKeyMonday, "09:00", "18:00", 60, past),
			},
			wantOpen: true,
			wantRule: "rule-mon",
		},
		{
			name:  "all key covers days without a specific rule",
			date:  monday,
			hours: openHours(t, 1, "06:00", "23:00"),
			versions: []model.ScheduleRule{
				version(t, "rule-all", constant.DayKeyAll, "08:00", "20:00", 60, past),
			},
			wantOpen: true,
			wantRule: "rule-all",
		},
		{
			name:  "pending version is not effective yet",
			date:  monday,
			hours: openHours(t, 1, "06:00", "23:00"),
			versions: []model.ScheduleRule{
				version(t, "rule-old", constant.DayKeyMonday, "08:00", "20:00", 60, past),
				version(t, "rule-new", constant.DayKeyMonday, "10:00", "16:00", 30, pending),
			},
			wantOpen: true,
			wantRule: "rule-old",
		},
		{
			name:  "tombstone closes the day",
			date:  monday,
			hours: openHours(t, 1, "06:00", "23:00"),
			versions: []model.ScheduleRule{
				version(t, "rule-tomb", constant.DayKeyMonday, "00:00", "00:01", 0, past),
			},
			wantOpen: false,
		},
		{
			name:     "no rule covers the day",
			date:     monday,
			hours:    openHours(t, 1, "06:00", "23:00"),
			versions: nil,
			wantOpen: false,
		},
		{
			name:  "holiday resolves to the holiday rule",
			date:  monday,
			hours: openHours(t, 1, "06:00", "23:00"),
			holiday: venueModel.VenueHoliday{
				ID:          "holiday-1",
				VenueID:     testVenueID,
				HolidayDate: monday,
			},
			versions: []model.ScheduleRule{
				version(t, "rule-mon", constant.DayKeyMonday, "08:00", "20:00", 60, past),
				version(t, "rule-holiday", constant.DayKeyHoliday, "10:00", "14:00", 60, past),
			},
			wantOpen: true,
			wantRule: "rule-holiday",
		},
		{
			name:  "holiday without a holiday rule is closed",
			date:  monday,
			hours: openHours(t, 1, "06:00", "23:00"),
			holiday: venueModel.VenueHoliday{
				ID:          "holiday-1",
				VenueID:     testVenueID,
				HolidayDate: monday,
			},
			versions: []model.ScheduleRule{
				version(t, "rule-all", constant.DayKeyAll, "08:00", "20:00", 60, past),
			},
			wantOpen: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newScheduleFixture(t)

			f.facilities.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(testFacility(), nil)
			f.venues.EXPECT().
				GetHoursForDay(gomock.Any(), testVenueID, int(tt.date.Weekday())).
				Return(tt.hours, nil)
			f.venues.EXPECT().
				GetHoliday(gomock.Any(), testVenueID, tt.date).
				Return(tt.holiday, nil)
			f.repo.EXPECT().
				GetVersions(gomock.Any(), testFacilityID).
				Return(tt.versions, nil)

			rule, open, err := f.svc.EffectiveRule(testContext(), testFacilityID, tt.date)
			require.NoError(t, err)

			assert.Equal(t, tt.wantOpen, open)

			if tt.wantOpen {
				assert.Equal(t, tt.wantRule, rule.ID)
			}
		})
	}
}

func TestScheduleService_EffectiveRule_VenueClosedDay(t *testing.T) {
	f := newScheduleFixture(t)
	monday := mustDay(t, "2025-03-10")

	closed := openHours(t, 1, "00:00", "00:00")
	closed.IsOpen = false

	f.facilities.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(testFacility(), nil)
	f.venues.EXPECT().
		GetHoursForDay(gomock.Any(), testVenueID, 1).
		Return(closed, nil)

	_, open, err := f.svc.EffectiveRule(testContext(), testFacilityID, monday)
	require.NoError(t, err)
	assert.False(t, open)
}

func TestScheduleService_EffectiveRule_FacilityNotFound(t *testing.T) {
	f := newScheduleFixture(t)

	f.facilities.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(facilityModel.Facility{}, nil)

	_, _, err := f.svc.EffectiveRule(testContext(), testFacilityID, mustDay(t, "2025-03-10"))
	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestScheduleService_UpsertRule(t *testing.T) {
	t.Run("invalid range", func(t *testing.T) {
		f := newScheduleFixture(t)

		req := dto.UpsertScheduleRuleRequest{
			DayKey:          constant.DayKeyMonday,
			OpeningTime:     "20:00",
			ClosingTime:     "08:00",
			SlotDurationMin: 60,
		}

		_, err := f.svc.UpsertRule(testContext(), req, testFacilityID)
		require.Error(t, err)
		assert.Equal(t, 422, failure.GetCode(err))
	})

	t.Run("rule wider than venue hours", func(t *testing.T) {
		f := newScheduleFixture(t)

		f.facilities.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(testFacility(), nil)
		f.venues.EXPECT().
			GetHoursForDay(gomock.Any(), testVenueID, 1).
			Return(openHours(t, 1, "08:00", "20:00"), nil)

		req := dto.UpsertScheduleRuleRequest{
			DayKey:          constant.DayKeyMonday,
			OpeningTime:     "07:00",
			ClosingTime:     "21:00",
			SlotDurationMin: 60,
		}

		_, err := f.svc.UpsertRule(testContext(), req, testFacilityID)
		require.Error(t, err)
		assert.Equal(t, 422, failure.GetCode(err))
	})

	t.Run("rule on a closed specific day", func(t *testing.T) {
		f := newScheduleFixture(t)

		closed := openHours(t, 1, "00:00", "00:00")
		closed.IsOpen = false

		f.facilities.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(testFacility(), nil)
		f.venues.EXPECT().
			GetHoursForDay(gomock.Any(), testVenueID, 1).
			Return(closed, nil)

		req := dto.UpsertScheduleRuleRequest{
			DayKey:          constant.DayKeyMonday,
			OpeningTime:     "09:00",
			ClosingTime:     "18:00",
			SlotDurationMin: 60,
		}

		_, err := f.svc.UpsertRule(testContext(), req, testFacilityID)
		require.Error(t, err)
		assert.Equal(t, 422, failure.GetCode(err))
	})

	t.Run("successful write defers the effective instant", func(t *testing.T) {
		f := newScheduleFixture(t)

		f.facilities.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(testFacility(), nil)
		f.venues.EXPECT().
			GetHoursForDay(gomock.Any(), testVenueID, 1).
			Return(openHours(t, 1, "06:00", "23:00"), nil)

		var written model.ScheduleRule
		f.repo.EXPECT().
			ReplaceVersion(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rule model.ScheduleRule) error {
				written = rule

				return nil
			})
		f.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			Times(4)

		req := dto.UpsertScheduleRuleRequest{
			DayKey:          constant.DayKeyMonday,
			OpeningTime:     "09:00",
			ClosingTime:     "18:00",
			SlotDurationMin: 60,
		}

		res, err := f.svc.UpsertRule(testContext(), req, testFacilityID)
		require.NoError(t, err)

		assert.Equal(t, written.ID, res.RuleID)
		assert.Equal(t, testUserID, written.CreatedBy)

		window := written.EffectiveFrom.Sub(timezone.Now())
		assert.Greater(t, window, 6*24*time.Hour)
		assert.LessOrEqual(t, window, 7*24*time.Hour)
	})
}

func TestScheduleService_DeleteRule(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newScheduleFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.ScheduleRule{}, nil)

		_, err := f.svc.DeleteRule(testContext(), "missing-rule")
		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("supersedes after the propagation window", func(t *testing.T) {
		f := newScheduleFixture(t)

		rule := version(t, "rule-mon", constant.DayKeyMonday, "09:00", "18:00", 60, timezone.Now().Add(-30*24*time.Hour))

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(rule, nil)

		var supersededAt time.Time
		f.repo.EXPECT().
			SupersedeByID(gomock.Any(), "rule-mon", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, at time.Time) error {
				supersededAt = at

				return nil
			})
		f.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			Times(4)

		res, err := f.svc.DeleteRule(testContext(), "rule-mon")
		require.NoError(t, err)

		assert.Equal(t, "rule-mon", res.RuleID)

		window := supersededAt.Sub(timezone.Now())
		assert.Greater(t, window, 6*24*time.Hour)
	})
}

func TestScheduleService_GetRules_FiltersDeadVersions(t *testing.T) {
	f := newScheduleFixture(t)

	past := timezone.Now().Add(-30 * 24 * time.Hour)
	deadAt := timezone.Now().Add(-10 * 24 * time.Hour)
	futureEnd := timezone.Now().Add(5 * 24 * time.Hour)

	dead := version(t, "rule-dead", constant.DayKeyMonday, "08:00", "20:00", 60, past)
	dead.SupersededFrom = &deadAt

	closing := version(t, "rule-closing", constant.DayKeyMonday, "09:00", "18:00", 60, past)
	closing.SupersededFrom = &futureEnd

	live := version(t, "rule-live", constant.DayKeyTuesday, "09:00", "18:00", 60, past)

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(assert.AnError)
	f.facilities.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(testFacility(), nil)
	f.repo.EXPECT().
		GetVersions(gomock.Any(), testFacilityID).
		Return([]model.ScheduleRule{dead, closing, live}, nil)
	f.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := f.svc.GetRules(testContext(), testFacilityID)
	require.NoError(t, err)

	ids := make([]string, 0, len(res.Rules))
	for _, rule := range res.Rules {
		ids = append(ids, rule.ID)
	}

	assert.ElementsMatch(t, []string{"rule-closing", "rule-live"}, ids)
}
