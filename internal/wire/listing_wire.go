package wire

import (
	"stay-booking/internal/adaptor"
	"stay-booking/internal/data/entity"
	"stay-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireListing(r chi.Router, listingHandler *adaptor.ListingHandler, jwtSecret []byte, log *zap.Logger) {
	// Public search, no auth
	r.Get("/api/listings/search", listingHandler.SearchListings)

	// Host-only management routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(jwtSecret, log))
		r.Use(middleware.RequireRole(log, entity.RoleHost))

		r.Post("/api/listings", listingHandler.CreateListing)
		r.Put("/api/listings/{id}", listingHandler.UpdateListing)
		r.Delete("/api/listings/{id}", listingHandler.DeleteListing)
		r.Get("/api/listings/my-listings", listingHandler.MyListings)
	})
}
