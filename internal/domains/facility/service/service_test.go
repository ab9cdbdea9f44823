package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"courtside/config"
	otelMocks "courtside/infras/otel/mocks"
	facilityMocks "courtside/internal/domains/facility/mocks"
	"courtside/internal/domains/facility/model"
	"courtside/internal/domains/facility/model/dto"
	"courtside/internal/domains/facility/service"
	scheduleDto "courtside/internal/domains/schedule/model/dto"
	scheduleMocks "courtside/internal/domains/schedule/service/mocks"
	venueMocks "courtside/internal/domains/venue/mocks"
	venueModel "courtside/internal/domains/venue/model"
	cacheMocks "courtside/shared/cache/mocks"
	"courtside/shared/constant"
	gDto "courtside/shared/dto"
	"courtside/shared/failure"
)

const (
	testVenueID    = "5b9e4f1c-0000-4000-8000-000000000001"
	testFacilityID = "7c1d8e2a-0000-4000-8000-000000000002"
)

type facilityFixture struct {
	repo      *facilityMocks.MockFacility
	venues    *venueMocks.MockVenue
	schedules *scheduleMocks.MockSchedule
	cache     *cacheMocks.MockRedisCache
	svc       service.Facility
}

func newFacilityFixture(t *testing.T) facilityFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := facilityMocks.NewMockFacility(ctrl)
	venues := venueMocks.NewMockVenue(ctrl)
	schedules := scheduleMocks.NewMockSchedule(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Engine.DefaultCancelNoticeMin = 120

	return facilityFixture{
		repo:      repo,
		venues:    venues,
		schedules: schedules,
		cache:     cache,
		svc:       service.New(repo, venues, schedules, cfg, cache, otelMocks.NewOtel()),
	}
}

func adminContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
}

func activeVenue() venueModel.Venue {
	return venueModel.Venue{
		ID:       testVenueID,
		Name:     "Arena Senayan",
		Timezone: "Asia/Jakarta",
		Active:   true,
	}
}

func storedFacility() model.Facility {
	return model.Facility{
		ID:              testFacilityID,
		VenueID:         testVenueID,
		Name:            "Court 1",
		Sport:           "badminton",
		Price:           250000,
		CancelNoticeMin: 120,
		Active:          true,
	}
}

func TestFacilityService_Create(t *testing.T) {
	t.Parallel()

	req := dto.CreateFacilityRequest{
		VenueID:         testVenueID,
		Name:            "Court 1",
		Sport:           "badminton",
		Price:           250000,
		CancelNoticeMin: 60,
	}

	t.Run("inserts facility owned by the acting user", func(t *testing.T) {
		t.Parallel()

		f := newFacilityFixture(t)

		var inserted model.Facility

		f.venues.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeVenue(), nil)
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, facility model.Facility) error {
				inserted = facility

				return nil
			})
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := f.svc.Create(adminContext(), req)
		require.NoError(t, err)

		assert.NotEmpty(t, inserted.ID)
		assert.Equal(t, testVenueID, inserted.VenueID)
		assert.Equal(t, "Court 1", inserted.Name)
		assert.Equal(t, 60, inserted.CancelNoticeMin)
		assert.Equal(t, "admin-1", inserted.CreatedBy)
		assert.True(t, inserted.Active)
	})

	t.Run("falls back to the default cancellation notice", func(t *testing.T) {
		t.Parallel()

		f := newFacilityFixture(t)

		noNotice := req
		noNotice.CancelNoticeMin = 0

		var inserted model.Facility

		f.venues.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeVenue(), nil)
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, facility model.Facility) error {
				inserted = facility

				return nil
			})
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := f.svc.Create(adminContext(), noNotice)
		require.NoError(t, err)

		assert.Equal(t, 120, inserted.CancelNoticeMin)
	})

	t.Run("rejects an unknown venue", func(t *testing.T) {
		t.Parallel()

		f := newFacilityFixture(t)

		f.venues.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(venueModel.Venue{}, nil)

		err := f.svc.Create(adminContext(), req)
		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestFacilityService_Get(t *testing.T) {
	t.Parallel()

	t.Run("attaches the active schedule rules", func(t *testing.T) {
		t.Parallel()

		f := newFacilityFixture(t)

		rules := scheduleDto.GetRulesResponse{
			FacilityID: testFacilityID,
			Rules: []scheduleDto.RuleResponse{
				{ID: "rule-1", DayKey: constant.DayKeyAll, OpeningTime: "08:00", ClosingTime: "18:00", SlotDurationMin: 60},
			},
		}

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(assert.AnError)
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedFacility(), nil)
		f.schedules.EXPECT().
			GetRules(gomock.Any(), testFacilityID).
			Return(rules, nil)
		f.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := f.svc.Get(context.Background(), testFacilityID)
		require.NoError(t, err)

		assert.Equal(t, testFacilityID, res.ID)
		assert.Equal(t, int64(250000), res.Price)
		require.Len(t, res.Rules, 1)
		assert.Equal(t, "rule-1", res.Rules[0].ID)
	})

	t.Run("returns not found for a missing facility", func(t *testing.T) {
		t.Parallel()

		f := newFacilityFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(assert.AnError)
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Facility{}, nil)

		_, err := f.svc.Get(context.Background(), testFacilityID)
		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestFacilityService_GetAll(t *testing.T) {
	t.Parallel()

	params := gDto.QueryParams{Page: 1, Limit: 10}

	t.Run("pages results with the total count", func(t *testing.T) {
		t.Parallel()

		f := newFacilityFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(assert.AnError).
			Times(2)
		f.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(11, nil)
		f.repo.EXPECT().
			GetAll(gomock.Any(), params, gomock.Any()).
			Return([]model.Facility{storedFacility()}, nil)
		f.schedules.EXPECT().
			GetRules(gomock.Any(), testFacilityID).
			Return(scheduleDto.GetRulesResponse{
				FacilityID: testFacilityID,
				Rules:      []scheduleDto.RuleResponse{{ID: "rule-1", DayKey: constant.DayKeyAll}},
			}, nil)
		f.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := f.svc.GetAll(context.Background(), params, gDto.FilterGroup{})
		require.NoError(t, err)

		assert.Equal(t, 11, res.TotalData)
		assert.Equal(t, 2, res.TotalPage)
		require.Len(t, res.Facilities, 1)
		assert.Equal(t, testFacilityID, res.Facilities[0].ID)
		require.Len(t, res.Facilities[0].Rules, 1)
	})
}

func TestFacilityService_Update(t *testing.T) {
	t.Parallel()

	t.Run("updates only the provided fields", func(t *testing.T) {
		t.Parallel()

		f := newFacilityFixture(t)

		price := int64(300000)
		req := dto.UpdateFacilityRequest{Price: &price}

		var updated map[string]any

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				updated = fields

				return nil
			})
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := f.svc.Update(adminContext(), req, testFacilityID)
		require.NoError(t, err)

		assert.Equal(t, int64(300000), updated[model.FieldPrice])
		assert.Equal(t, "admin-1", updated["modified_by"])
		assert.NotContains(t, updated, model.FieldName)
	})

	t.Run("returns not found for a missing facility", func(t *testing.T) {
		t.Parallel()

		f := newFacilityFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := f.svc.Update(adminContext(), dto.UpdateFacilityRequest{}, testFacilityID)
		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
