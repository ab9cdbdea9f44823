package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"courtside/config"
	"courtside/infras/otel"
	"courtside/internal/domains/venue/model"
	"courtside/internal/domains/venue/model/dto"
	"courtside/internal/domains/venue/repository"
	"courtside/shared"
	"courtside/shared/cache"
	"courtside/shared/constant"
	gDto "courtside/shared/dto"
	"courtside/shared/failure"
)

const (
	cacheGetVenue    = "venue:get"
	cacheGetAllVenue = "venue:gets"
	cacheCountVenue  = "venue:count"
)

type Venue interface {
	Create(ctx context.Context, req dto.CreateVenueRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetVenuesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.VenueResponse, error)
	UpsertHours(ctx context.Context, req dto.UpsertVenueHoursRequest, venueID string) error
	AddHoliday(ctx context.Context, req dto.AddHolidayRequest, venueID string) error
	RemoveHoliday(ctx context.Context, venueID, holidayID string) error
}

type serviceImpl struct {
	repo  repository.Venue
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Venue, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Venue {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateVenueRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create venue")

		return fmt.Errorf("failed to create venue: %w", err)
	}

	s.invalidateListings(ctx)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetVenuesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllVenue, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count venues")

		return res, fmt.Errorf("failed to count venues: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get venues")

		return res, fmt.Errorf("failed to get venues: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save venues to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountVenue, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count venues")

		return res, fmt.Errorf("failed to count venues: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save venue count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.VenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetVenue, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	venue, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get venue")

		return res, fmt.Errorf("failed to get venue: %w", err)
	}

	if venue.ID == constant.Empty {
		return res, failure.NotFound("venue not found") // nolint:wrapcheck
	}

	hours, err := s.repo.GetHours(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get venue hours")

		return res, fmt.Errorf("failed to get venue hours: %w", err)
	}

	holidays, err := s.repo.GetHolidays(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get venue holidays")

		return res, fmt.Errorf("failed to get venue holidays: %w", err)
	}

	res.FromModel(venue)
	res.AttachHours(hours)
	res.AttachHolidays(holidays)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save venue to cache")
		}
	}()

	return res, nil
}

// UpsertHours replaces the venue's window for one weekday. Venue hours
// changes apply immediately; the propagation delay binds facility
// schedule rules only.
func (s *serviceImpl) UpsertHours(ctx context.Context, req dto.UpsertVenueHoursRequest, venueID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpsertHours")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(venueID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if venue exists")

		return fmt.Errorf("failed to check if venue exists: %w", err)
	}

	if !exist {
		return failure.NotFound("venue not found") // nolint:wrapcheck
	}

	hours, err := req.ToModel(venueID, user)
	if err != nil {
		return failure.BadRequestFromString(fmt.Sprintf("invalid time format: %v", err)) // nolint:wrapcheck
	}

	if hours.IsOpen && !hours.OpeningTime.Before(hours.ClosingTime) {
		return failure.InvalidRange("opening time must be before closing time") // nolint:wrapcheck
	}

	hasDay, err := s.repo.ExistHours(ctx, venueID, hours.DayOfWeek)
	if err != nil {
		log.Error().Err(err).Msg("failed to check venue hours")

		return fmt.Errorf("failed to check venue hours: %w", err)
	}

	if hasDay {
		fields := map[string]any{
			model.FieldHoursIsOpen:  hours.IsOpen,
			model.FieldHoursOpening: hours.OpeningTime,
			model.FieldHoursClosing: hours.ClosingTime,
		}
		fields[constant.FieldModifiedAt] = hours.ModifiedAt
		fields[constant.FieldModifiedBy] = user

		if err = s.repo.UpdateHours(ctx, fields, venueID, hours.DayOfWeek); err != nil {
			log.Error().Err(err).Msg("failed to update venue hours")

			return fmt.Errorf("failed to update venue hours: %w", err)
		}
	} else {
		if err = s.repo.InsertHours(ctx, hours); err != nil {
			log.Error().Err(err).Msg("failed to insert venue hours")

			return fmt.Errorf("failed to insert venue hours: %w", err)
		}
	}

	s.invalidateVenue(ctx, venueID)

	return nil
}

func (s *serviceImpl) AddHoliday(ctx context.Context, req dto.AddHolidayRequest, venueID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddHoliday")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(venueID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if venue exists")

		return fmt.Errorf("failed to check if venue exists: %w", err)
	}

	if !exist {
		return failure.NotFound("venue not found") // nolint:wrapcheck
	}

	holiday, err := req.ToModel(venueID, user)
	if err != nil {
		return failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if err = s.repo.InsertHoliday(ctx, holiday); err != nil {
		log.Error().Err(err).Msg("failed to insert venue holiday")

		return fmt.Errorf("failed to insert venue holiday: %w", err)
	}

	s.invalidateVenue(ctx, venueID)

	return nil
}

func (s *serviceImpl) RemoveHoliday(ctx context.Context, venueID, holidayID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RemoveHoliday")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.DeleteHoliday(ctx, holidayID); err != nil {
		log.Error().Err(err).Msg("failed to delete venue holiday")

		return fmt.Errorf("failed to delete venue holiday: %w", err)
	}

	s.invalidateVenue(ctx, venueID)

	return nil
}

func (s *serviceImpl) invalidateListings(ctx context.Context) {
	c := context.WithoutCancel(ctx)

	shared.InvalidateCaches(c, s.cache, cacheGetAllVenue)
	shared.InvalidateCaches(c, s.cache, cacheCountVenue)
}

func (s *serviceImpl) invalidateVenue(ctx context.Context, venueID string) {
	c := context.WithoutCancel(ctx)

	if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetVenue, venueID)); err != nil {
		log.Error().Err(err).Msg("failed to delete venue from cache")
	}

	s.invalidateListings(ctx)
}
