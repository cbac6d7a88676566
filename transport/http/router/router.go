package router

import (
	"guestroom/internal/handlers/booking"
	"guestroom/internal/handlers/house"
	"guestroom/internal/handlers/owner"
	"guestroom/internal/handlers/room"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	House   house.Handler
	Room    room.Handler
	Booking booking.Handler
	Owner   owner.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.House.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Owner.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
