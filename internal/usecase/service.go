package usecase

import (
	"stay-booking/internal/data/repository"
	"stay-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Listing ListingService
	Booking BookingService
	Admin   AdminService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo.User, config, log),
		Listing: NewListingService(repo.Listing, log),
		Booking: NewBookingService(repo.Booking, log),
		Admin:   NewAdminService(repo.Listing, log),
	}
}
