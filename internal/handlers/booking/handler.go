package booking

import (
	"net/http"

	"guestroom/infras/otel"
	"guestroom/internal/domains/booking/model"
	"guestroom/internal/domains/booking/model/dto"
	"guestroom/internal/domains/booking/service"
	"guestroom/shared/constant"
	gDto "guestroom/shared/dto"
	"guestroom/shared/validator"
	"guestroom/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/{booking_id}", handler.GetBookingByID)
		routerGroup.Patch("/{booking_id}/confirm_status", handler.ConfirmBooking)
		routerGroup.Patch("/{booking_id}/completed_status", handler.CompleteBooking)
		routerGroup.Patch("/{booking_id}/cancelled_status", handler.CancelBooking)
	})

	router.Get("/customers/{customer_id}/bookings", handler.GetCustomerBookings)
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Description Retrieve a booking visible to its owner or its customer.
// @Tags Booking
// @Accept json
// @Produce json
// @Param booking_id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{booking_id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamBookingID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// ConfirmBooking moves a pending booking to confirmed.
// @Summary Confirm a booking
// @Description Confirm a pending booking. Only the owner of the booked room may confirm; any other stored status yields 422.
// @Tags Booking
// @Accept json
// @Produce json
// @Param booking_id path string true "Booking ID"
// @Param request body dto.TransitionRequest false "Optional reason"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking confirmed"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{booking_id}/confirm_status [patch]
// @Security BearerAuth
func (handler *Handler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "ConfirmBooking", model.StatusConfirmed)
}

// CompleteBooking moves a confirmed booking to completed.
// @Summary Complete a booking
// @Description Mark a confirmed booking as completed. A reason is required; any other stored status yields 422.
// @Tags Booking
// @Accept json
// @Produce json
// @Param booking_id path string true "Booking ID"
// @Param request body dto.TransitionRequest true "Completion reason"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking completed"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{booking_id}/completed_status [patch]
// @Security BearerAuth
func (handler *Handler) CompleteBooking(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "CompleteBooking", model.StatusCompleted)
}

// CancelBooking moves a pending or confirmed booking to cancelled.
// @Summary Cancel a booking
// @Description Cancel a pending or confirmed booking. A reason is required; terminal bookings yield 422.
// @Tags Booking
// @Accept json
// @Produce json
// @Param booking_id path string true "Booking ID"
// @Param request body dto.TransitionRequest true "Cancellation reason"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking cancelled"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{booking_id}/cancelled_status [patch]
// @Security BearerAuth
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "CancelBooking", model.StatusCancelled)
}

func (handler *Handler) transition(w http.ResponseWriter, r *http.Request, name string, target model.Status) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamBookingID)

	req := dto.TransitionRequest{}
	if r.Body != nil && r.ContentLength > 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request body")

			response.WithError(w, err)

			return
		}
	}

	booking, err := handler.service.Transition(ctx, id, target, req.Reason)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to transition booking status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking moved to " + target.String() + " by user " + user)

	response.WithJSON(w, http.StatusOK, booking)
}

// GetCustomerBookings retrieves a customer's booking history.
// @Summary Get a customer's bookings
// @Description Retrieve a customer's bookings, optionally split into current or past stays. Only the customer may list their own bookings.
// @Tags Booking
// @Accept json
// @Produce json
// @Param customer_id path string true "Customer ID"
// @Param filter query string false "History filter (current, past, all)"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "Customer bookings"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/customers/{customer_id}/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetCustomerBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomerBookings")
	defer scope.End()

	customerID := chi.URLParam(r, constant.RequestParamCustomerID)
	historyFilter := r.URL.Query().Get(constant.RequestParamFilter)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	bookings, err := handler.service.ListByCustomer(ctx, queryParams, customerID, historyFilter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get customer bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Customer bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}
