package service

import (
	"context"
	"fmt"

	"guestroom/config"
	"guestroom/infras/otel"
	"guestroom/internal/domains/house/model"
	"guestroom/internal/domains/house/model/dto"
	"guestroom/internal/domains/house/repository"
	"guestroom/shared"
	"guestroom/shared/cache"
	"guestroom/shared/constant"
	gDto "guestroom/shared/dto"
	"guestroom/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetHouse    = "house:get"
	cacheGetAllHouse = "house:gets"
	cacheCountHouse  = "house:count"
)

type House interface {
	Create(ctx context.Context, req dto.CreateHouseRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetHousesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.HouseResponse, error)
	Update(ctx context.Context, req dto.UpdateHouseRequest, id string) error
}

type serviceImpl struct {
	repo  repository.House
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.House, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) House {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Create registers a new house owned by the caller.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHouseRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return failure.Unauthorized("caller identity is required") // nolint:wrapcheck
	}

	house := req.ToModel(user, user)

	if err = s.repo.Insert(ctx, house); err != nil {
		log.Error().Err(err).Msg("failed to create house")

		return fmt.Errorf("failed to create house: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllHouse)
		shared.InvalidateCaches(c, s.cache, cacheCountHouse)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetHousesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllHouse, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for houses")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count houses")

		return res, fmt.Errorf("failed to count houses: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get houses")

		return res, fmt.Errorf("failed to get houses: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save houses to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountHouse, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for house count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count houses")

		return res, fmt.Errorf("failed to count houses: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save house count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.HouseResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetHouse, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for house")

		return res, nil
	}

	house, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get house")

		return res, fmt.Errorf("failed to get house: %w", err)
	}

	if house.ID == constant.Empty {
		return res, failure.NotFound("house not found") // nolint:wrapcheck
	}

	res.FromModel(house)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save house to cache")
		}
	}()

	return res, nil
}

// Update modifies a house. Only the owner of the house may change it.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateHouseRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateHouseRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	house, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get house")

		return fmt.Errorf("failed to get house: %w", err)
	}

	if house.ID == constant.Empty {
		return failure.NotFound("house not found") // nolint:wrapcheck
	}

	if house.OwnerID != user {
		return failure.Forbidden("house does not belong to the caller") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update house")

		return fmt.Errorf("failed to update house: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetHouse, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete house from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllHouse)
		shared.InvalidateCaches(c, s.cache, cacheCountHouse)
	}()

	return nil
}
