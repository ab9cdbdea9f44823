package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"courtside/config"
	"courtside/infras/otel"
	facilityModel "courtside/internal/domains/facility/model"
	facilityRepo "courtside/internal/domains/facility/repository"
	"courtside/internal/domains/schedule/model"
	"courtside/internal/domains/schedule/model/dto"
	"courtside/internal/domains/schedule/repository"
	venueRepo "courtside/internal/domains/venue/repository"
	"courtside/shared"
	"courtside/shared/cache"
	"courtside/shared/constant"
	"courtside/shared/failure"
	"courtside/shared/timezone"
)

const (
	cacheGetRules     = "schedule:rules"
	cacheAvailability = "availability"

	// Facility responses embed the facility's rule set, so rule writes
	// must drop those entries too.
	cacheFacility     = "facility:get"
	cacheFacilityList = "facility:gets"
)

type Schedule interface {
	GetRules(ctx context.Context, facilityID string) (dto.GetRulesResponse, error)
	UpsertRule(ctx context.Context, req dto.UpsertScheduleRuleRequest, facilityID string) (dto.RuleChangeResponse, error)
	DeleteRule(ctx context.Context, ruleID string) (dto.RuleChangeResponse, error)

	// EffectiveRule resolves the single rule governing the facility on
	// the given date, as seen from the current instant. The second
	// return is false when the facility generates no slots that day:
	// no rule covers it, the rule is a tombstone, or the venue is
	// closed on that weekday.
	EffectiveRule(ctx context.Context, facilityID string, date time.Time) (model.ScheduleRule, bool, error)
}

type serviceImpl struct {
	repo       repository.Schedule
	facilities facilityRepo.Facility
	venues     venueRepo.Venue
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Schedule,
	facilities facilityRepo.Facility,
	venues venueRepo.Venue,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Schedule {
	return &serviceImpl{
		repo:       repo,
		facilities: facilities,
		venues:     venues,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func (s *serviceImpl) GetRules(ctx context.Context, facilityID string) (res dto.GetRulesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRules")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRules, facilityID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	if err = s.mustFacility(ctx, facilityID); err != nil {
		return res, err
	}

	versions, err := s.repo.GetVersions(ctx, facilityID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get schedule rules")

		return res, fmt.Errorf("failed to get schedule rules: %w", err)
	}

	now := timezone.Now()

	live := make([]model.ScheduleRule, 0, len(versions))
	for _, version := range versions {
		if version.SupersededFrom != nil && !version.SupersededFrom.After(now) {
			continue
		}

		live = append(live, version)
	}

	res.FromModels(facilityID, live)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save schedule rules to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpsertRule(ctx context.Context, req dto.UpsertScheduleRuleRequest, facilityID string) (res dto.RuleChangeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpsertRule")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	effectiveFrom := timezone.Now().Add(s.propagationWindow())

	rule, err := req.ToModel(facilityID, user, effectiveFrom)
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	if !rule.ClosingTime.After(rule.OpeningTime) {
		return res, failure.InvalidRange("closing time must be after opening time") //nolint:wrapcheck
	}

	facility, err := s.getFacility(ctx, facilityID)
	if err != nil {
		return res, err
	}

	if err = s.checkVenueHours(ctx, facility.VenueID, rule); err != nil {
		return res, err
	}

	if err = s.repo.ReplaceVersion(ctx, rule); err != nil {
		log.Error().Err(err).Msg("failed to upsert schedule rule")

		return res, fmt.Errorf("failed to upsert schedule rule: %w", err)
	}

	s.invalidate(ctx, facilityID)

	res.RuleID = rule.ID
	res.EffectiveFrom = timezone.Format(effectiveFrom, constant.DateFormat)

	return res, nil
}

// DeleteRule does not remove the version row. It schedules a
// supersession after the propagation window, so slot generation inside
// the window still sees the rule.
func (s *serviceImpl) DeleteRule(ctx context.Context, ruleID string) (res dto.RuleChangeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteRule")
	defer scope.End()
	defer scope.TraceIfError(err)

	rule, err := s.repo.Get(ctx, shared.FilterByID(ruleID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get schedule rule")

		return res, fmt.Errorf("failed to get schedule rule: %w", err)
	}

	if rule.ID == constant.Empty {
		return res, failure.NotFound("schedule rule not found") //nolint:wrapcheck
	}

	at := timezone.Now().Add(s.propagationWindow())

	if err = s.repo.SupersedeByID(ctx, ruleID, at); err != nil {
		log.Error().Err(err).Msg("failed to delete schedule rule")

		return res, fmt.Errorf("failed to delete schedule rule: %w", err)
	}

	s.invalidate(ctx, rule.FacilityID)

	res.RuleID = ruleID
	res.EffectiveFrom = timezone.Format(at, constant.DateFormat)

	return res, nil
}

func (s *serviceImpl) EffectiveRule(ctx context.Context, facilityID string, date time.Time) (res model.ScheduleRule, open bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EffectiveRule")
	defer scope.End()
	defer scope.TraceIfError(err)

	facility, err := s.getFacility(ctx, facilityID)
	if err != nil {
		return res, false, err
	}

	hours, err := s.venues.GetHoursForDay(ctx, facility.VenueID, int(date.Weekday()))
	if err != nil {
		log.Error().Err(err).Msg("failed to get venue hours")

		return res, false, fmt.Errorf("failed to get venue hours: %w", err)
	}

	if hours.ID != constant.Empty && !hours.IsOpen {
		return res, false, nil
	}

	dayKey := model.DayKeyFor(date.Weekday())

	holiday, err := s.venues.GetHoliday(ctx, facility.VenueID, date)
	if err != nil {
		log.Error().Err(err).Msg("failed to get venue holiday")

		return res, false, fmt.Errorf("failed to get venue holiday: %w", err)
	}

	if holiday.ID != constant.Empty {
		dayKey = constant.DayKeyHoliday
	}

	versions, err := s.repo.GetVersions(ctx, facilityID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get schedule rule versions")

		return res, false, fmt.Errorf("failed to get schedule rule versions: %w", err)
	}

	rule, found := resolve(versions, dayKey, timezone.Now())
	if !found || rule.Tombstone() {
		return res, false, nil
	}

	return rule, true, nil
}

// resolve picks the live version for the day key at the given instant.
// A version for the specific day shadows one for the "all" key; among
// versions of the same key the latest effective-from wins.
func resolve(versions []model.ScheduleRule, dayKey string, at time.Time) (model.ScheduleRule, bool) {
	var specific, fallback model.ScheduleRule

	for _, version := range versions {
		if !version.EffectiveAt(at) {
			continue
		}

		switch {
		case version.DayKey == dayKey:
			if specific.ID == constant.Empty || version.EffectiveFrom.After(specific.EffectiveFrom) {
				specific = version
			}
		case version.DayKey == constant.DayKeyAll && dayKey != constant.DayKeyHoliday:
			if fallback.ID == constant.Empty || version.EffectiveFrom.After(fallback.EffectiveFrom) {
				fallback = version
			}
		}
	}

	if specific.ID != constant.Empty {
		return specific, true
	}

	if fallback.ID != constant.Empty {
		return fallback, true
	}

	return model.ScheduleRule{}, false
}

// checkVenueHours enforces the venue window as an upper bound on the
// rule. For the "all" key closed weekdays are skipped rather than
// rejected, since generation never reaches them.
func (s *serviceImpl) checkVenueHours(ctx context.Context, venueID string, rule model.ScheduleRule) error {
	for _, weekday := range model.WeekdaysFor(rule.DayKey) {
		hours, err := s.venues.GetHoursForDay(ctx, venueID, int(weekday))
		if err != nil {
			log.Error().Err(err).Msg("failed to get venue hours")

			return fmt.Errorf("failed to get venue hours: %w", err)
		}

		if hours.ID == constant.Empty {
			continue
		}

		if !hours.IsOpen {
			if rule.DayKey == constant.DayKeyAll {
				continue
			}

			return failure.OutOfVenueHours(fmt.Sprintf("venue is closed on %s", rule.DayKey)) //nolint:wrapcheck
		}

		if minuteOfDay(rule.OpeningTime) < minuteOfDay(hours.OpeningTime) ||
			minuteOfDay(rule.ClosingTime) > minuteOfDay(hours.ClosingTime) {
			return failure.OutOfVenueHours(fmt.Sprintf(
				"rule window %s-%s exceeds venue hours %s-%s",
				rule.OpeningTime.Format(constant.ClockFormat),
				rule.ClosingTime.Format(constant.ClockFormat),
				hours.OpeningTime.Format(constant.ClockFormat),
				hours.ClosingTime.Format(constant.ClockFormat),
			)) //nolint:wrapcheck
		}
	}

	return nil
}

func (s *serviceImpl) propagationWindow() time.Duration {
	days := s.cfg.Engine.RulePropagationDays
	if days <= 0 {
		days = constant.DefaultRuleLag
	}

	return time.Duration(days) * 24 * time.Hour
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

func (s *serviceImpl) mustFacility(ctx context.Context, facilityID string) error {
	_, err := s.getFacility(ctx, facilityID)

	return err
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// invalidate drops the cached rule listing and every cached
// availability day for the facility before the write returns.
func (s *serviceImpl) invalidate(ctx context.Context, facilityID string) {
	shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(cacheGetRules, facilityID))
	shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(cacheAvailability, facilityID))
	shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(cacheFacility, facilityID))
	shared.InvalidateCaches(ctx, s.cache, cacheFacilityList)
}
