package owner

import (
	"net/http"

	"guestroom/infras/otel"
	bookingService "guestroom/internal/domains/booking/service"
	dashboardService "guestroom/internal/domains/dashboard/service"
	"guestroom/shared/constant"
	gDto "guestroom/shared/dto"
	"guestroom/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	bookingService   bookingService.Booking
	dashboardService dashboardService.Dashboard
	otel             otel.Otel
}

func New(bookingService bookingService.Booking, dashboardService dashboardService.Dashboard, otel otel.Otel) Handler {
	return Handler{
		bookingService:   bookingService,
		dashboardService: dashboardService,
		otel:             otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/owners/{owner_id}", func(routerGroup chi.Router) {
		routerGroup.Get("/bookings", handler.GetOwnerBookings)
		routerGroup.Get("/dashboard", handler.GetDashboard)
	})
}

// GetOwnerBookings retrieves the bookings across all rooms of an owner.
// @Summary Get an owner's bookings
// @Description Retrieve the bookings across every room the owner rents out. Only the owner may list their own bookings.
// @Tags Owner
// @Accept json
// @Produce json
// @Param owner_id path string true "Owner ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[bookingDto.GetBookingsResponse] "Owner bookings"
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/owners/{owner_id}/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetOwnerBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOwnerBookings")
	defer scope.End()

	ownerID := chi.URLParam(r, constant.RequestParamOwnerID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	bookings, err := handler.bookingService.ListByOwner(ctx, queryParams, ownerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get owner bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Owner bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetDashboard assembles the owner dashboard.
// @Summary Get the owner dashboard
// @Description Aggregate the owner's houses, rooms, active bookings and earnings, plus the five most recent pending bookings. All figures derive from the bookings table.
// @Tags Owner
// @Accept json
// @Produce json
// @Param owner_id path string true "Owner ID"
// @Success 200 {object} response.Data[dashboardDto.DashboardResponse] "Owner dashboard"
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/owners/{owner_id}/dashboard [get]
// @Security BearerAuth
func (handler *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	ownerID := chi.URLParam(r, constant.RequestParamOwnerID)

	dashboard, err := handler.dashboardService.Get(ctx, ownerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get owner dashboard")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Owner dashboard retrieved successfully")

	response.WithJSON(w, http.StatusOK, dashboard)
}
