package repository

import (
	"stay-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Listing ListingRepository
	Booking BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Listing: NewListingRepository(db, log),
		Booking: NewBookingRepository(db, log),
	}
}
