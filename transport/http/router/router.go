package router

import (
	"dinevibe/internal/handlers/admin"
	"dinevibe/internal/handlers/auth"
	"dinevibe/internal/handlers/deal"
	"dinevibe/internal/handlers/reservation"
	"dinevibe/internal/handlers/restaurant"
	"dinevibe/internal/handlers/storage"
	"dinevibe/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth        auth.Handler
	User        user.Handler
	Restaurant  restaurant.Handler
	Deal        deal.Handler
	Reservation reservation.Handler
	Admin       admin.Handler
	Storage     storage.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Restaurant.Router(routerGroup)
		r.DomainHandlers.Deal.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Admin.Router(routerGroup)
		r.DomainHandlers.Storage.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
