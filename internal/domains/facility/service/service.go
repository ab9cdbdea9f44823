package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"courtside/config"
	"courtside/infras/otel"
	"courtside/internal/domains/facility/model"
	"courtside/internal/domains/facility/model/dto"
	"courtside/internal/domains/facility/repository"
	scheduleService "courtside/internal/domains/schedule/service"
	venueModel "courtside/internal/domains/venue/model"
	venueRepo "courtside/internal/domains/venue/repository"
	"courtside/shared"
	"courtside/shared/cache"
	"courtside/shared/constant"
	gDto "courtside/shared/dto"
	"courtside/shared/failure"
)

const (
	cacheGetFacility    = "facility:get"
	cacheGetAllFacility = "facility:gets"
	cacheCountFacility  = "facility:count"
)

type Facility interface {
	Create(ctx context.Context, req dto.CreateFacilityRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetFacilitiesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.FacilityResponse, error)
	Update(ctx context.Context, req dto.UpdateFacilityRequest, id string) error
}

type serviceImpl struct {
	repo      repository.Facility
	venues    venueRepo.Venue
	schedules scheduleService.Schedule
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Facility,
	venues venueRepo.Venue,
	schedules scheduleService.Schedule,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Facility {
	return &serviceImpl{
		repo:      repo,
		venues:    venues,
		schedules: schedules,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateFacilityRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	venue, err := s.venues.Get(ctx, shared.FilterByID(req.VenueID, venueModel.FieldID, venueModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get venue")

		return fmt.Errorf("failed to get venue: %w", err)
	}

	if venue.ID == constant.Empty {
		return failure.NotFound("venue not found") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	facility := req.ToModel(user)
	if facility.CancelNoticeMin == 0 {
		facility.CancelNoticeMin = s.cfg.Engine.DefaultCancelNoticeMin
	}

	if err = s.repo.Insert(ctx, facility); err != nil {
		log.Error().Err(err).Msg("failed to create facility")

		return fmt.Errorf("failed to create facility: %w", err)
	}

	s.invalidateListings(ctx)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetFacilitiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllFacility, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count facilities")

		return res, fmt.Errorf("failed to count facilities: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get facilities")

		return res, fmt.Errorf("failed to get facilities: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	// The directory contract includes the current rule set per facility.
	for i := range res.Facilities {
		rules, err := s.schedules.GetRules(ctx, res.Facilities[i].ID)
		if err != nil {
			log.Error().Err(err).Msg("failed to get facility rules")

			return res, fmt.Errorf("failed to get facility rules: %w", err)
		}

		res.Facilities[i].Rules = rules.Rules
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save facilities to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountFacility, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count facilities")

		return res, fmt.Errorf("failed to count facilities: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save facility count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.FacilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetFacility, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	facility, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get facility")

		return res, fmt.Errorf("failed to get facility: %w", err)
	}

	if facility.ID == constant.Empty {
		return res, failure.NotFound("facility not found") //nolint:wrapcheck
	}

	rules, err := s.schedules.GetRules(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get facility rules")

		return res, fmt.Errorf("failed to get facility rules: %w", err)
	}

	res.FromModel(facility)
	res.Rules = rules.Rules

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save facility to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateFacilityRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check facility")

		return fmt.Errorf("failed to check facility: %w", err)
	}

	if !exist {
		return failure.NotFound("facility not found") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Update(ctx, req.ToUpdateMap(user), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update facility")

		return fmt.Errorf("failed to update facility: %w", err)
	}

	s.invalidateListings(ctx)
	shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(cacheGetFacility, id))

	return nil
}

func (s *serviceImpl) invalidateListings(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllFacility)
		shared.InvalidateCaches(c, s.cache, cacheCountFacility)
	}()
}
