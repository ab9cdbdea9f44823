package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"courtside/config"
	otelMocks "courtside/infras/otel/mocks"
	venueMocks "courtside/internal/domains/venue/mocks"
	"courtside/internal/domains/venue/model"
	"courtside/internal/domains/venue/model/dto"
	"courtside/internal/domains/venue/service"
	cacheMocks "courtside/shared/cache/mocks"
	"courtside/shared/constant"
	"courtside/shared/failure"
)

const testVenueID = "5b9e4f1c-0000-4000-8000-000000000001"

type venueFixture struct {
	repo  *venueMocks.MockVenue
	cache *cacheMocks.MockRedisCache
	svc   service.Venue
}

func newVenueFixture(t *testing.T) venueFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := venueMocks.NewMockVenue(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return venueFixture{
		repo:  repo,
		cache: cache,
		svc:   service.New(repo, cfg, cache, otelMocks.NewOtel()),
	}
}

func adminContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestVenueService_Create(t *testing.T) {
	t.Parallel()

	f := newVenueFixture(t)

	var inserted model.Venue

	f.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, venue model.Venue) error {
			inserted = venue

			return nil
		})
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	err := f.svc.Create(adminContext(), dto.CreateVenueRequest{Name: "Arena Senayan"})
	require.NoError(t, err)

	assert.NotEmpty(t, inserted.ID)
	assert.Equal(t, "Arena Senayan", inserted.Name)
	assert.NotEmpty(t, inserted.Timezone)
	assert.Equal(t, "admin-1", inserted.CreatedBy)
	assert.True(t, inserted.Active)
}

func TestVenueService_Get(t *testing.T) {
	t.Parallel()

	t.Run("attaches hours and holidays", func(t *testing.T) {
		t.Parallel()

		f := newVenueFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(assert.AnError)
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Venue{ID: testVenueID, Name: "Arena Senayan", Active: true}, nil)
		f.repo.EXPECT().
			GetHours(gomock.Any(), testVenueID).
			Return([]model.VenueHours{{ID: "hours-1", VenueID: testVenueID, DayOfWeek: 1, IsOpen: true}}, nil)
		f.repo.EXPECT().
			GetHolidays(gomock.Any(), testVenueID).
			Return([]model.VenueHoliday{{ID: "holiday-1", VenueID: testVenueID, Label: "Nyepi"}}, nil)
		f.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := f.svc.Get(context.Background(), testVenueID)
		require.NoError(t, err)

		assert.Equal(t, testVenueID, res.ID)
		require.Len(t, res.Hours, 1)
		require.Len(t, res.Holidays, 1)
		assert.Equal(t, "Nyepi", res.Holidays[0].Label)
	})

	t.Run("returns not found for a missing venue", func(t *testing.T) {
		t.Parallel()

		f := newVenueFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(assert.AnError)
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Venue{}, nil)

		_, err := f.svc.Get(context.Background(), testVenueID)
		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestVenueService_UpsertHours(t *testing.T) {
	t.Parallel()

	openDay := dto.UpsertVenueHoursRequest{
		DayOfWeek:   intPtr(1),
		IsOpen:      boolPtr(true),
		OpeningTime: "08:00",
		ClosingTime: "22:00",
	}

	t.Run("inserts hours for a new weekday", func(t *testing.T) {
		t.Parallel()

		f := newVenueFixture(t)

		var inserted model.VenueHours

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.repo.EXPECT().
			ExistHours(gomock.Any(), testVenueID, 1).
			Return(false, nil)
		f.repo.EXPECT().
			InsertHours(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, hours model.VenueHours) error {
				inserted = hours

				return nil
			})
		f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := f.svc.UpsertHours(adminContext(), openDay, testVenueID)
		require.NoError(t, err)

		assert.Equal(t, testVenueID, inserted.VenueID)
		assert.Equal(t, 1, inserted.DayOfWeek)
		assert.True(t, inserted.IsOpen)
	})

	t.Run("updates hours for an existing weekday", func(t *testing.T) {
		t.Parallel()

		f := newVenueFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.repo.EXPECT().
			ExistHours(gomock.Any(), testVenueID, 1).
			Return(true, nil)
		f.repo.EXPECT().
			UpdateHours(gomock.Any(), gomock.Any(), testVenueID, 1).
			Return(nil)
		f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := f.svc.UpsertHours(adminContext(), openDay, testVenueID)
		require.NoError(t, err)
	})

	t.Run("rejects an inverted window", func(t *testing.T) {
		t.Parallel()

		f := newVenueFixture(t)

		inverted := openDay
		inverted.OpeningTime = "22:00"
		inverted.ClosingTime = "08:00"

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := f.svc.UpsertHours(adminContext(), inverted, testVenueID)
		require.Error(t, err)
		assert.Equal(t, 422, failure.GetCode(err))
	})

	t.Run("returns not found for a missing venue", func(t *testing.T) {
		t.Parallel()

		f := newVenueFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := f.svc.UpsertHours(adminContext(), openDay, testVenueID)
		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestVenueService_AddHoliday(t *testing.T) {
	t.Parallel()

	t.Run("inserts the holiday", func(t *testing.T) {
		t.Parallel()

		f := newVenueFixture(t)

		var inserted model.VenueHoliday

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.repo.EXPECT().
			InsertHoliday(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, holiday model.VenueHoliday) error {
				inserted = holiday

				return nil
			})
		f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := f.svc.AddHoliday(adminContext(), dto.AddHolidayRequest{Date: "2025-03-29", Label: "Nyepi"}, testVenueID)
		require.NoError(t, err)

		assert.Equal(t, testVenueID, inserted.VenueID)
		assert.Equal(t, "Nyepi", inserted.Label)
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		t.Parallel()

		f := newVenueFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := f.svc.AddHoliday(adminContext(), dto.AddHolidayRequest{Date: "29/03/2025"}, testVenueID)
		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestVenueService_RemoveHoliday(t *testing.T) {
	t.Parallel()

	f := newVenueFixture(t)

	f.repo.EXPECT().
		DeleteHoliday(gomock.Any(), "holiday-1").
		Return(nil)
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	err := f.svc.RemoveHoliday(adminContext(), testVenueID, "holiday-1")
	require.NoError(t, err)
}
