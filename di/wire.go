//go:build wireinject
// +build wireinject

package di

import (
	"dinevibe/config"
	"dinevibe/infras/jwt"
	"dinevibe/infras/kafka"
	"dinevibe/infras/otel"
	"dinevibe/infras/postgres"
	"dinevibe/infras/redis"
	"dinevibe/infras/s3"
	"dinevibe/internal/events"
	"dinevibe/permissions"
	"dinevibe/shared/cache"
	"dinevibe/transport/http"
	"dinevibe/transport/http/middleware"
	"dinevibe/transport/http/router"

	adminRepository "dinevibe/internal/domains/admin/repository"
	adminService "dinevibe/internal/domains/admin/service"
	authService "dinevibe/internal/domains/auth/service"
	dealRepository "dinevibe/internal/domains/deal/repository"
	dealService "dinevibe/internal/domains/deal/service"
	reservationRepository "dinevibe/internal/domains/reservation/repository"
	reservationService "dinevibe/internal/domains/reservation/service"
	restaurantRepository "dinevibe/internal/domains/restaurant/repository"
	restaurantService "dinevibe/internal/domains/restaurant/service"
	storageService "dinevibe/internal/domains/storage/service"
	userRepository "dinevibe/internal/domains/user/repository"
	userService "dinevibe/internal/domains/user/service"

	adminHandler "dinevibe/internal/handlers/admin"
	authHandler "dinevibe/internal/handlers/auth"
	dealHandler "dinevibe/internal/handlers/deal"
	reservationHandler "dinevibe/internal/handlers/reservation"
	restaurantHandler "dinevibe/internal/handlers/restaurant"
	storageHandler "dinevibe/internal/handlers/storage"
	userHandler "dinevibe/internal/handlers/user"

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
	s3.New,
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

var adminDomain = wire.NewSet(
	adminRepository.NewSettings,
	adminRepository.NewLogs,
	adminService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var userDomain = wire.NewSet(
	userService.New,
)

var restaurantDomain = wire.NewSet(
	restaurantRepository.New,
	restaurantService.New,
)

var dealDomain = wire.NewSet(
	dealRepository.New,
	dealRepository.NewClaim,
	dealService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var storageDomain = wire.NewSet(
	storageService.New,
)

var domains = wire.NewSet(
	adminDomain,
	authDomain,
	userDomain,
	restaurantDomain,
	dealDomain,
	reservationDomain,
	storageDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	restaurantHandler.New,
	dealHandler.New,
	reservationHandler.New,
	adminHandler.New,
	storageHandler.New,
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
