package service

import (
	"context"
	"fmt"
	"time"

	"guestroom/config"
	"guestroom/infras/otel"
	houseModel "guestroom/internal/domains/house/model"
	houseRepo "guestroom/internal/domains/house/repository"
	"guestroom/internal/domains/room/model"
	"guestroom/internal/domains/room/model/dto"
	"guestroom/internal/domains/room/repository"
	"guestroom/shared"
	"guestroom/shared/cache"
	"guestroom/shared/constant"
	gDto "guestroom/shared/dto"
	"guestroom/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom       = "room:get"
	cacheGetAllRoom    = "room:gets"
	cacheCountRoom     = "room:count"
	cacheAvailableRoom = "room:available"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	AvailableInHouse(ctx context.Context, houseID, checkInDate, checkOutDate string) (dto.AvailableRoomsResponse, error)
}

type serviceImpl struct {
	repo      repository.Room
	houseRepo houseRepo.House
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Room, houseRepo houseRepo.House, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:      repo,
		houseRepo: houseRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// Create registers a room in one of the caller's houses.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return failure.Unauthorized("caller identity is required") // nolint:wrapcheck
	}

	house, err := s.houseRepo.Get(ctx, shared.FilterByID(req.HouseID, houseModel.FieldID, houseModel.TableName))
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

	room := req.ToModel(house.OwnerID, user)

	if err = s.repo.Insert(ctx, room); err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return fmt.Errorf("failed to create room: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
		shared.InvalidateCaches(c, s.cache, cacheAvailableRoom)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

// AvailableInHouse lists the rooms of a house free over an inclusive date
// range. A room is free when no pending or confirmed booking overlaps it.
func (s *serviceImpl) AvailableInHouse(ctx context.Context, houseID, checkInDate, checkOutDate string) (res dto.AvailableRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableInHouse")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, err := time.Parse(constant.DateOnlyFormat, checkInDate)
	if err != nil {
		return res, failure.BadRequestFromString("check_in_date must be in YYYY-MM-DD format") // nolint:wrapcheck
	}

	checkOut, err := time.Parse(constant.DateOnlyFormat, checkOutDate)
	if err != nil {
		return res, failure.BadRequestFromString("check_out_date must be in YYYY-MM-DD format") // nolint:wrapcheck
	}

	if checkOut.Before(checkIn) {
		return res, failure.BadRequestFromString("check_out_date must not be before check_in_date") // nolint:wrapcheck
	}

	exist, err := s.houseRepo.Exist(ctx, shared.FilterByID(houseID, houseModel.FieldID, houseModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if house exists")

		return res, fmt.Errorf("failed to check if house exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("house not found") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheAvailableRoom, houseID, checkInDate, checkOutDate)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for available rooms")

		return res, nil
	}

	rooms, err := s.repo.AvailableInHouse(ctx, houseID, checkIn, checkOut)
	if err != nil {
		log.Error().Err(err).Msg("failed to get available rooms")

		return res, fmt.Errorf("failed to get available rooms: %w", err)
	}

	res.FromModels(houseID, checkInDate, checkOutDate, rooms)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save available rooms to cache")
		}
	}()

	return res, nil
}
