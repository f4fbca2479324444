//go:build wireinject
// +build wireinject

package di

import (
	"talent/config"
	"talent/infras/jwt"
	"talent/infras/kafka"
	"talent/infras/otel"
	"talent/infras/postgres"
	"talent/infras/redis"
	"talent/internal/events"
	candidateHandler "talent/internal/handlers/candidate"
	"talent/permissions"
	"talent/shared/cache"
	"talent/shared/ratelimit"
	"talent/transport/http"
	"talent/transport/http/middleware"
	"talent/transport/http/router"

	availabilityRepository "talent/internal/domains/availability/repository"
	availabilityService "talent/internal/domains/availability/service"
	bookingRepository "talent/internal/domains/booking/repository"
	bookingService "talent/internal/domains/booking/service"
	candidateRepository "talent/internal/domains/candidate/repository"
	candidateService "talent/internal/domains/candidate/service"

	"github.com/google/wire"

	availabilityHandler "talent/internal/handlers/availability"
	scheduleHandler "talent/internal/handlers/schedule"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
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
	permissions.Get,
	provideRateLimitStore,
	ratelimit.New,
)

var candidateDomain = wire.NewSet(
	candidateRepository.New,
	candidateService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityRepository.New,
	availabilityService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	events.NewPublisher,
)

var domains = wire.NewSet(
	candidateDomain,
	availabilityDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	candidateHandler.New,
	availabilityHandler.New,
	scheduleHandler.New,
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
