package house

import (
	"net/http"

	"guestroom/infras/otel"
	"guestroom/internal/domains/house/model"
	"guestroom/internal/domains/house/model/dto"
	"guestroom/internal/domains/house/service"
	roomService "guestroom/internal/domains/room/service"
	"guestroom/shared/constant"
	gDto "guestroom/shared/dto"
	"guestroom/shared/validator"
	"guestroom/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service     service.House
	roomService roomService.Room
	otel        otel.Otel
}

func New(service service.House, roomService roomService.Room, otel otel.Otel) Handler {
	return Handler{
		service:     service,
		roomService: roomService,
		otel:        otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/houses", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateHouse)
		routerGroup.Get("/", handler.GetHouses)
		routerGroup.Get("/{id}", handler.GetHouseByID)
		routerGroup.Patch("/{id}", handler.UpdateHouse)
		routerGroup.Get("/{id}/rooms", handler.GetAvailableRooms)
	})
}

// CreateHouse registers a new house owned by the caller.
// @Summary Register a new house
// @Description Register a house owned by the authenticated owner.
// @Tags House
// @Accept json
// @Produce json
// @Param request body dto.CreateHouseRequest true "Create House Request"
// @Success 201 {object} response.Message "House created successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/houses [post]
// @Security BearerAuth
func (handler *Handler) CreateHouse(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHouse")
	defer scope.End()

	req := dto.CreateHouseRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create house")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("House created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "House created successfully")
}

// GetHouses retrieves the house catalog.
// @Summary Get all houses
// @Description Retrieve houses with optional filtering and pagination. By default only available houses are listed, newest first.
// @Tags House
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param owner_id query string false "Filter by owner ID"
// @Param city query string false "Filter by city"
// @Success 200 {object} response.Data[dto.GetHousesResponse] "List of houses"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/houses [get]
func (handler *Handler) GetHouses(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHouses")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	ownerID := r.URL.Query().Get(model.FieldOwnerID)
	city := r.URL.Query().Get(model.FieldCity)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldAvailable,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	}

	if ownerID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldOwnerID,
			Operator: gDto.FilterOperatorEq,
			Value:    ownerID,
			Table:    model.TableName,
		})
	}

	if city != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCity,
			Operator: gDto.FilterOperatorLike,
			Value:    city,
			Table:    model.TableName,
		})
	}

	houses, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get houses")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Houses retrieved successfully")

	response.WithJSON(w, http.StatusOK, houses)
}

// GetHouseByID retrieves a house by its ID.
// @Summary Get a house by ID
// @Description Retrieve a house by its unique identifier.
// @Tags House
// @Accept json
// @Produce json
// @Param id path string true "House ID"
// @Success 200 {object} response.Data[dto.HouseResponse] "House details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/houses/{id} [get]
func (handler *Handler) GetHouseByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHouseByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	house, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get house by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("House retrieved successfully")

	response.WithJSON(w, http.StatusOK, house)
}

// UpdateHouse updates a house owned by the caller.
// @Summary Update a house by ID
// @Description Update the details of a house. Only the owner may update it.
// @Tags House
// @Accept json
// @Produce json
// @Param id path string true "House ID"
// @Param request body dto.UpdateHouseRequest true "Update House Request"
// @Success 200 {object} response.Message "House updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/houses/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateHouse(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHouse")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateHouseRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update house")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("House updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "House updated successfully")
}

// GetAvailableRooms lists the rooms of a house free for a date range.
// @Summary Get available rooms in a house
// @Description List the rooms of a house with no pending or confirmed booking overlapping the requested inclusive date range.
// @Tags House
// @Accept json
// @Produce json
// @Param id path string true "House ID"
// @Param check_in_date query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out_date query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[roomDto.AvailableRoomsResponse] "Available rooms"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/houses/{id}/rooms [get]
func (handler *Handler) GetAvailableRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableRooms")
	defer scope.End()

	houseID := chi.URLParam(r, constant.RequestParamID)
	checkInDate := r.URL.Query().Get(constant.RequestParamCheckInDate)
	checkOutDate := r.URL.Query().Get(constant.RequestParamCheckOutDate)

	rooms, err := handler.roomService.AvailableInHouse(ctx, houseID, checkInDate, checkOutDate)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Available rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}
