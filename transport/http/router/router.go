package router

import (
	"courtside/internal/handlers/auth"
	"courtside/internal/handlers/facility"
	"courtside/internal/handlers/reservation"
	"courtside/internal/handlers/schedule"
	"courtside/internal/handlers/user"
	"courtside/internal/handlers/venue"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth        auth.Handler
	User        user.Handler
	Venue       venue.Handler
	Facility    facility.Handler
	Schedule    schedule.Handler
	Reservation reservation.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Venue.Router(routerGroup)
		r.DomainHandlers.Facility.Router(routerGroup)
		r.DomainHandlers.Schedule.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
