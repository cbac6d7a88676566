package service

import (
	"context"
	"fmt"

	"guestroom/config"
	"guestroom/infras/otel"
	bookingModel "guestroom/internal/domains/booking/model"
	bookingRepo "guestroom/internal/domains/booking/repository"
	"guestroom/internal/domains/dashboard/model/dto"
	"guestroom/internal/domains/dashboard/repository"
	"guestroom/shared"
	"guestroom/shared/cache"
	"guestroom/shared/constant"
	gDto "guestroom/shared/dto"
	"guestroom/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetDashboard = "dashboard:get"

	recentPendingLimit = 5
)

type Dashboard interface {
	Get(ctx context.Context, ownerID string) (dto.DashboardResponse, error)
}

type serviceImpl struct {
	repo        repository.Dashboard
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(repo repository.Dashboard, bookingRepo bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Dashboard {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Get assembles the owner dashboard: booking-derived aggregates plus the
// five most recent pending bookings awaiting a decision.
func (s *serviceImpl) Get(ctx context.Context, ownerID string) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user != ownerID {
		return res, failure.Forbidden("dashboard does not belong to the caller") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetDashboard, ownerID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for dashboard")

		return res, nil
	}

	stats, err := s.repo.Stats(ctx, ownerID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get dashboard stats")

		return res, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	params := gDto.QueryParams{
		Page:    1,
		Limit:   recentPendingLimit,
		SortBy:  bookingModel.TableName + "." + constant.FieldCreatedAt,
		SortDir: constant.DefaultValueSortDir,
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldOwnerID,
				Operator: gDto.FilterOperatorEq,
				Value:    ownerID,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				Field:    bookingModel.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingModel.StatusPending.String(),
				Table:    bookingModel.TableName,
			},
		},
	}

	pending, err := s.bookingRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get recent pending bookings")

		return res, fmt.Errorf("failed to get recent pending bookings: %w", err)
	}

	res.FromModels(ownerID, stats, pending)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard to cache")
		}
	}()

	return res, nil
}
