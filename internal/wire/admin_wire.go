package wire

import (
	"stay-booking/internal/adaptor"
	"stay-booking/internal/data/entity"
	"stay-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(r chi.Router, adminHandler *adaptor.AdminHandler, jwtSecret []byte, log *zap.Logger) {
	// Admin-only read-only reporting routes
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.Auth(jwtSecret, log))
		r.Use(middleware.RequireRole(log, entity.RoleAdmin))

		r.Get("/listings", adminHandler.AllListings)
		r.Get("/report-listings", adminHandler.ReportListings)
	})
}
