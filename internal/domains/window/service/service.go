package service

import (
	"context"
	"fmt"

	"guestroom/config"
	"guestroom/infras/otel"
	roomModel "guestroom/internal/domains/room/model"
	roomRepo "guestroom/internal/domains/room/repository"
	"guestroom/internal/domains/window/model"
	"guestroom/internal/domains/window/model/dto"
	"guestroom/internal/domains/window/repository"
	"guestroom/shared"
	"guestroom/shared/cache"
	"guestroom/shared/constant"
	gDto "guestroom/shared/dto"
	"guestroom/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllWindow = "window:gets"
	cacheCountWindow  = "window:count"
)

type Window interface {
	Declare(ctx context.Context, req dto.DeclareWindowRequest, roomID string) error
	ListByRoom(ctx context.Context, req gDto.QueryParams, roomID string) (dto.GetWindowsResponse, error)
}

type serviceImpl struct {
	repo     repository.Window
	roomRepo roomRepo.Room
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Window, roomRepo roomRepo.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Window {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// Declare publishes a booking window for a room. Only the owner of the room
// may declare one; house and owner ids are derived from the room, never
// taken from the request.
func (s *serviceImpl) Declare(ctx context.Context, req dto.DeclareWindowRequest, roomID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Declare")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	if room.OwnerID != user {
		return failure.Forbidden("room does not belong to the caller") // nolint:wrapcheck
	}

	window, err := req.ToModel(room.ID, room.HouseID, room.OwnerID, user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking window request")

		return failure.BadRequestFromString(fmt.Sprintf("invalid date/time format: %v", err)) // nolint:wrapcheck
	}

	if window.ToDate.Before(window.FromDate) {
		return failure.BadRequestFromString("to_date must not be before from_date") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, window); err != nil {
		log.Error().Err(err).Msg("failed to declare booking window")

		return fmt.Errorf("failed to declare booking window: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllWindow)
		shared.InvalidateCaches(c, s.cache, cacheCountWindow)
	}()

	return nil
}

// ListByRoom returns the windows declared for a room, newest first.
func (s *serviceImpl) ListByRoom(ctx context.Context, req gDto.QueryParams, roomID string) (res dto.GetWindowsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.roomRepo.Exist(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return res, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	filter := shared.FilterByID(roomID, model.FieldRoomID, model.TableName)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllWindow, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking windows")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count booking windows")

		return res, fmt.Errorf("failed to count booking windows: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking windows")

		return res, fmt.Errorf("failed to get booking windows: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking windows to cache")
		}
	}()

	return res, nil
}
