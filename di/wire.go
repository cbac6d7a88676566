//go:build wireinject
// +build wireinject

package di

import (
	"guestroom/config"
	"guestroom/infras/jwt"
	"guestroom/infras/kafka"
	"guestroom/infras/otel"
	"guestroom/infras/postgres"
	"guestroom/infras/redis"
	"guestroom/permissions"
	"guestroom/shared/cache"
	"guestroom/transport/http"
	"guestroom/transport/http/middleware"
	"guestroom/transport/http/router"

	bookingRepository "guestroom/internal/domains/booking/repository"
	bookingService "guestroom/internal/domains/booking/service"
	dashboardRepository "guestroom/internal/domains/dashboard/repository"
	dashboardService "guestroom/internal/domains/dashboard/service"
	houseRepository "guestroom/internal/domains/house/repository"
	houseService "guestroom/internal/domains/house/service"
	roomRepository "guestroom/internal/domains/room/repository"
	roomService "guestroom/internal/domains/room/service"
	windowRepository "guestroom/internal/domains/window/repository"
	windowService "guestroom/internal/domains/window/service"

	bookingHandler "guestroom/internal/handlers/booking"
	houseHandler "guestroom/internal/handlers/house"
	ownerHandler "guestroom/internal/handlers/owner"
	roomHandler "guestroom/internal/handlers/room"

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
)

var houseDomain = wire.NewSet(
	houseRepository.New,
	houseService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var windowDomain = wire.NewSet(
	windowRepository.New,
	windowService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardRepository.New,
	dashboardService.New,
)

var domains = wire.NewSet(
	houseDomain,
	roomDomain,
	windowDomain,
	bookingDomain,
	dashboardDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	houseHandler.New,
	roomHandler.New,
	bookingHandler.New,
	ownerHandler.New,
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
