package wire

import (
	"stay-booking/internal/adaptor"
	"stay-booking/internal/data/entity"
	"stay-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, jwtSecret []byte, log *zap.Logger) {
	// Guest-only routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(jwtSecret, log))
		r.Use(middleware.RequireRole(log, entity.RoleGuest))

		r.Post("/api/bookings", bookingHandler.CreateBooking)
		r.Get("/api/bookings", bookingHandler.MyBookings)
	})
}
