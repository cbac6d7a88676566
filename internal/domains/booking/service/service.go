package service

import (
	"context"
	"fmt"
	"time"

	"guestroom/config"
	"guestroom/infras/kafka"
	"guestroom/infras/otel"
	"guestroom/internal/domains/booking/model"
	"guestroom/internal/domains/booking/model/dto"
	"guestroom/internal/domains/booking/repository"
	roomModel "guestroom/internal/domains/room/model"
	roomRepo "guestroom/internal/domains/room/repository"
	windowRepo "guestroom/internal/domains/window/repository"
	"guestroom/shared"
	"guestroom/shared/cache"
	"guestroom/shared/constant"
	gDto "guestroom/shared/dto"
	"guestroom/shared/failure"
	"guestroom/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	CheckAvailability(ctx context.Context, roomID string, req dto.BookRoomRequest) (dto.AvailabilityResponse, error)
	Book(ctx context.Context, req dto.BookRoomRequest, roomID string) (dto.BookingResponse, error)
	Transition(ctx context.Context, bookingID string, target model.Status, reason string) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	ListByOwner(ctx context.Context, req gDto.QueryParams, ownerID string) (dto.GetBookingsResponse, error)
	ListByCustomer(ctx context.Context, req gDto.QueryParams, customerID, historyFilter string) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo       repository.Booking
	roomRepo   roomRepo.Room
	windowRepo windowRepo.Window
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
	events     kafka.Client
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	windowRepo windowRepo.Window,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	events kafka.Client,
) Booking {
	return &serviceImpl{
		repo:       repo,
		roomRepo:   roomRepo,
		windowRepo: windowRepo,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
		events:     events,
	}
}

// CheckAvailability answers the read-only overlap question for a room and a
// requested stay. The verdict can go stale the moment it is returned; Book
// repeats the check under the room lock.
func (s *serviceImpl) CheckAvailability(ctx context.Context, roomID string, req dto.BookRoomRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	stay, err := req.Stay()
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid stay: %v", err)) // nolint:wrapcheck
	}

	exist, err := s.roomRepo.Exist(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return res, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	overlap, err := s.repo.HasOverlap(ctx, roomID, stay.Start(), stay.End())
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking overlap")

		return res, fmt.Errorf("failed to check booking overlap: %w", err)
	}

	res = dto.AvailabilityResponse{
		RoomID:    roomID,
		FromDate:  req.FromDate,
		ToDate:    req.ToDate,
		FromTime:  req.FromTime,
		ToTime:    req.ToTime,
		Available: !overlap,
	}

	return res, nil
}

// Book reserves a room for the calling customer. The booking always starts
// as pending; confirmation is the owner's move. Availability is decided
// inside the repository transaction, so two racing requests for overlapping
// stays produce exactly one booking.
func (s *serviceImpl) Book(ctx context.Context, req dto.BookRoomRequest, roomID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Book")
	defer scope.End()
	defer scope.TraceIfError(err)

	customerID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	customerName, _ := ctx.Value(constant.ContextKeyUserName).(string)

	if customerID == constant.Empty {
		return res, failure.Unauthorized("caller identity is required") // nolint:wrapcheck
	}

	stay, err := req.Stay()
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid stay: %v", err)) // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	if !room.Available {
		return res, failure.Conflict("room is not open for booking") // nolint:wrapcheck
	}

	rentPerDay := room.RentAmountPerDay

	window, found, err := s.windowRepo.Covering(ctx, roomID, stay.FromDate, stay.ToDate)
	if err != nil {
		log.Error().Err(err).Msg("failed to get covering booking window")

		return res, fmt.Errorf("failed to get covering booking window: %w", err)
	}

	if found {
		days := stay.Days()

		if days < window.MinimumBookingPeriod {
			return res, failure.BadRequestFromString(fmt.Sprintf("stay must be at least %d day(s)", window.MinimumBookingPeriod)) // nolint:wrapcheck
		}

		if days > window.MaximumBookingPeriod {
			return res, failure.BadRequestFromString(fmt.Sprintf("stay must be at most %d day(s)", window.MaximumBookingPeriod)) // nolint:wrapcheck
		}

		rentPerDay = window.RentAmountPerDay
	}

	booking := req.ToModel(room, stay, rentPerDay, customerID, customerName)

	if err = s.repo.CreateAtomic(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, err //nolint:wrapcheck
	}

	res.FromModel(booking)

	s.publishEvent(ctx, dto.BookingEvent{
		Event:      dto.EventBookingCreated,
		BookingID:  booking.ID,
		RoomID:     booking.RoomID,
		OwnerID:    booking.OwnerID,
		CustomerID: booking.CustomerID,
		Status:     booking.Status.String(),
		OccurredAt: timezone.Now(),
	})

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return res, nil
}

// Transition moves a booking to the target status on behalf of the calling
// owner. A reason is mandatory when cancelling or completing. On an invalid
// pair the stored status is left untouched.
func (s *serviceImpl) Transition(ctx context.Context, bookingID string, target model.Status, reason string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Transition")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return res, failure.Unauthorized("caller identity is required") // nolint:wrapcheck
	}

	if !target.IsValid() {
		return res, failure.BadRequestFromString(fmt.Sprintf("unknown booking status %q", target.String())) // nolint:wrapcheck
	}

	if target.RequiresReason() && reason == constant.Empty {
		return res, failure.BadRequestFromString(fmt.Sprintf("a reason is required to mark a booking %s", target.String())) // nolint:wrapcheck
	}

	booking, err := s.repo.Transition(ctx, bookingID, user, target, reason)
	if err != nil {
		log.Error().Err(err).Msg("failed to transition booking status")

		return res, err //nolint:wrapcheck
	}

	res.FromModel(booking)

	s.publishEvent(ctx, dto.BookingEvent{
		Event:      dto.EventBookingStatusChanged,
		BookingID:  booking.ID,
		RoomID:     booking.RoomID,
		OwnerID:    booking.OwnerID,
		CustomerID: booking.CustomerID,
		Status:     booking.Status.String(),
		Reason:     reason,
		OccurredAt: timezone.Now(),
	})

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, bookingID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return res, nil
}

// Get returns a booking visible to its owner or its customer.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	cached := dto.BookingResponse{}

	err = s.cache.Get(ctx, cacheKey, &cached)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		if cached.OwnerID != user && cached.CustomerID != user {
			return res, failure.Forbidden("booking does not belong to the caller") // nolint:wrapcheck
		}

		return cached, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.OwnerID != user && booking.CustomerID != user {
		return res, failure.Forbidden("booking does not belong to the caller") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// ListByOwner returns the bookings across all rooms of an owner. Only the
// owner may list their own bookings.
func (s *serviceImpl) ListByOwner(ctx context.Context, req gDto.QueryParams, ownerID string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByOwner")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user != ownerID {
		return res, failure.Forbidden("bookings do not belong to the caller") // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldOwnerID,
				Operator: gDto.FilterOperatorEq,
				Value:    ownerID,
				Table:    model.TableName,
			},
		},
	}

	return s.list(ctx, req, filter)
}

// ListByCustomer returns a customer's booking history. The current/past
// split is a query-time classification; nothing is ever rewritten in the
// bookings table.
func (s *serviceImpl) ListByCustomer(ctx context.Context, req gDto.QueryParams, customerID, historyFilter string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByCustomer")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user != customerID {
		return res, failure.Forbidden("bookings do not belong to the caller") // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCustomerID,
				Operator: gDto.FilterOperatorEq,
				Value:    customerID,
				Table:    model.TableName,
			},
		},
	}

	switch historyFilter {
	case constant.BookingHistoryFilterAll, constant.Empty:
	case constant.BookingHistoryFilterCurrent:
		filter.Filters = append(filter.Filters, gDto.Filter{
			Operator: gDto.FilterPlainQuery,
			Value:    "room_bookings.status IN ('pending', 'confirmed') AND room_bookings.to_date >= CURRENT_DATE",
		})
	case constant.BookingHistoryFilterPast:
		filter.Filters = append(filter.Filters, gDto.Filter{
			Operator: gDto.FilterPlainQuery,
			Value:    "room_bookings.status IN ('completed', 'cancelled') OR room_bookings.to_date < CURRENT_DATE",
		})
	default:
		return res, failure.BadRequestFromString("filter must be one of current, past, all") // nolint:wrapcheck
	}

	return s.list(ctx, req, filter)
}

func (s *serviceImpl) list(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) publishEvent(ctx context.Context, event dto.BookingEvent) {
	if !s.cfg.Kafka.Enable {
		return
	}

	go func() {
		c, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()

		message := kafka.Message{
			Key:   event.BookingID,
			Value: event,
		}

		if err := s.events.SendMessages(c, s.cfg.Kafka.Topic.BookingEvents, message); err != nil {
			log.Error().Err(err).Str("event", event.Event).Msg("failed to publish booking event")
		}
	}()
}
