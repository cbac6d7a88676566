package room

import (
	"net/http"

	"guestroom/infras/otel"
	bookingDto "guestroom/internal/domains/booking/model/dto"
	bookingService "guestroom/internal/domains/booking/service"
	"guestroom/internal/domains/room/model/dto"
	"guestroom/internal/domains/room/service"
	windowDto "guestroom/internal/domains/window/model/dto"
	windowService "guestroom/internal/domains/window/service"
	"guestroom/shared/constant"
	gDto "guestroom/shared/dto"
	"guestroom/shared/validator"
	"guestroom/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service        service.Room
	windowService  windowService.Window
	bookingService bookingService.Booking
	otel           otel.Otel
}

func New(service service.Room, windowService windowService.Window, bookingService bookingService.Booking, otel otel.Otel) Handler {
	return Handler{
		service:        service,
		windowService:  windowService,
		bookingService: bookingService,
		otel:           otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Get("/{id}", handler.GetRoomByID)
		routerGroup.Get("/{id}/bookings", handler.GetBookingWindows)
		routerGroup.Post("/{id}/booking", handler.DeclareBookingWindow)
		routerGroup.Get("/{id}/availability", handler.CheckAvailability)
		routerGroup.Post("/{id}/book", handler.BookRoom)
	})
}

// CreateRoom registers a room in one of the caller's houses.
// @Summary Register a new room
// @Description Register a room in a house owned by the authenticated owner.
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Create Room Request"
// @Success 201 {object} response.Message "Room created successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	req := dto.CreateRoomRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Room created successfully")
}

// GetRoomByID retrieves a room by its ID.
// @Summary Get a room by ID
// @Description Retrieve a room by its unique identifier.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [get]
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room retrieved successfully")

	response.WithJSON(w, http.StatusOK, room)
}

// GetBookingWindows lists the booking windows declared for a room.
// @Summary Get booking windows for a room
// @Description Retrieve the booking windows declared by the owner for a room, newest first.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[windowDto.GetWindowsResponse] "Booking windows"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/bookings [get]
func (handler *Handler) GetBookingWindows(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingWindows")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	windows, err := handler.windowService.ListByRoom(ctx, queryParams, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking windows")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking windows retrieved successfully")

	response.WithJSON(w, http.StatusOK, windows)
}

// DeclareBookingWindow publishes a booking window for a room.
// @Summary Declare a booking window
// @Description Declare an offering period for a room, with rent per day and stay length bounds. Only the room owner may declare one.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body windowDto.DeclareWindowRequest true "Declare Booking Window Request"
// @Success 201 {object} response.Message "Booking window declared successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/booking [post]
// @Security BearerAuth
func (handler *Handler) DeclareBookingWindow(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeclareBookingWindow")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := windowDto.DeclareWindowRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.windowService.Declare(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to declare booking window")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking window declared successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Booking window declared successfully")
}

// CheckAvailability answers whether a room is free for a requested stay.
// @Summary Check room availability
// @Description Read-only overlap check for a room and a requested stay. The verdict is advisory; booking repeats the check atomically.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param from_date query string true "First day of the stay (YYYY-MM-DD)"
// @Param to_date query string true "Last day of the stay (YYYY-MM-DD)"
// @Param from_time query string true "Check-in time (HH:MM)"
// @Param to_time query string true "Check-out time (HH:MM)"
// @Success 200 {object} response.Data[bookingDto.AvailabilityResponse] "Availability verdict"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/availability [get]
func (handler *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	query := r.URL.Query()
	req := bookingDto.BookRoomRequest{
		FromDate: query.Get("from_date"),
		ToDate:   query.Get("to_date"),
		FromTime: query.Get("from_time"),
		ToTime:   query.Get("to_time"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate availability query")

		response.WithError(w, err)

		return
	}

	availability, err := handler.bookingService.CheckAvailability(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check room availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room availability checked successfully")

	response.WithJSON(w, http.StatusOK, availability)
}

// BookRoom reserves a room for the calling customer.
// @Summary Book a room
// @Description Reserve a room for a stay. The booking always starts as pending; a conflicting stay yields 409.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body bookingDto.BookRoomRequest true "Book Room Request"
// @Success 201 {object} response.Data[bookingDto.BookingResponse] "Booking created"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/book [post]
// @Security BearerAuth
func (handler *Handler) BookRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := bookingDto.BookRoomRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.bookingService.Book(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room booked successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, booking)
}
