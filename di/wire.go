//go:build wireinject
// +build wireinject

package di

import (
	"courtside/config"
	"courtside/infras/jwt"
	"courtside/infras/kafka"
	"courtside/infras/otel"
	"courtside/infras/postgres"
	"courtside/infras/redis"
	"courtside/internal/events"
	"courtside/permissions"
	"courtside/shared/cache"
	"courtside/transport/http"
	"courtside/transport/http/middleware"
	"courtside/transport/http/router"

	authService "courtside/internal/domains/auth/service"
	availabilityService "courtside/internal/domains/availability/service"
	facilityRepository "courtside/internal/domains/facility/repository"
	facilityService "courtside/internal/domains/facility/service"
	reservationRepository "courtside/internal/domains/reservation/repository"
	reservationService "courtside/internal/domains/reservation/service"
	scheduleRepository "courtside/internal/domains/schedule/repository"
	scheduleService "courtside/internal/domains/schedule/service"
	userRepository "courtside/internal/domains/user/repository"
	userService "courtside/internal/domains/user/service"
	venueRepository "courtside/internal/domains/venue/repository"
	venueService "courtside/internal/domains/venue/service"

	authHandler "courtside/internal/handlers/auth"
	facilityHandler "courtside/internal/handlers/facility"
	reservationHandler "courtside/internal/handlers/reservation"
	scheduleHandler "courtside/internal/handlers/schedule"
	userHandler "courtside/internal/handlers/user"
	venueHandler "courtside/internal/handlers/venue"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	events.NewPublisher,
)

var accountDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var venueDomain = wire.NewSet(
	venueRepository.New,
	venueService.New,
)

var facilityDomain = wire.NewSet(
	facilityRepository.New,
	facilityService.New,
)

var scheduleDomain = wire.NewSet(
	scheduleRepository.New,
	scheduleService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var domains = wire.NewSet(
	accountDomain,
	venueDomain,
	facilityDomain,
	scheduleDomain,
	availabilityDomain,
	reservationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	venueHandler.New,
	facilityHandler.New,
	scheduleHandler.New,
	reservationHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
