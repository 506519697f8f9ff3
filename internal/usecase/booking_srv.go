package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stay-booking/internal/data/entity"
	"stay-booking/internal/data/repository"
	"stay-booking/internal/dto/request"
	"stay-booking/internal/dto/response"
	"stay-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	Create(ctx context.Context, guestID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	MyBookings(ctx context.Context, guestID uuid.UUID) (*response.BookingsResponse, error)
}

type bookingService struct {
	bookings repository.BookingRepository
	log      *zap.Logger
}

func NewBookingService(bookings repository.BookingRepository, log *zap.Logger) BookingService {
	return &bookingService{
		bookings: bookings,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) Create(ctx context.Context, guestID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	listingID, err := uuid.Parse(req.ListingID)
	if err != nil {
		return nil, ErrListingNotFound
	}

	fromDate, err := utils.ParseDate(req.FromDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}
	toDate, err := utils.ParseDate(req.ToDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	if !fromDate.Before(toDate) {
		return nil, ErrInvalidDateRange
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ListingID:  listingID,
		GuestID:    guestID,
		FromDate:   fromDate,
		ToDate:     toDate,
		GuestNames: req.GuestNames,
		Status:     entity.BookingStatusPending,
	}

	if err := s.bookings.CreateChecked(ctx, booking); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrListingNotFound
		case errors.Is(err, repository.ErrDateConflict):
			s.log.Info("Booking date conflict",
				zap.String("listing_id", req.ListingID),
				zap.String("from_date", req.FromDate),
				zap.String("to_date", req.ToDate))
			return nil, ErrDateConflict
		}
		s.log.Error("Failed to create booking", zap.Error(err), zap.String("listing_id", req.ListingID))
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("listing_id", req.ListingID),
		zap.String("guest_id", guestID.String()))

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) MyBookings(ctx context.Context, guestID uuid.UUID) (*response.BookingsResponse, error) {
	bookings, err := s.bookings.FindByGuestID(ctx, guestID)
	if err != nil {
		s.log.Error("Failed to load guest bookings", zap.Error(err), zap.String("guest_id", guestID.String()))
		return nil, fmt.Errorf("load guest bookings: %w", err)
	}

	resp := response.BookingsToResponse(bookings)
	return &resp, nil
}
