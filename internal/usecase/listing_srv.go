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

type ListingService interface {
	Create(ctx context.Context, hostID uuid.UUID, req *request.CreateListingRequest) (*response.ListingResponse, error)
	Update(ctx context.Context, hostID uuid.UUID, listingID string, req *request.UpdateListingRequest) (*response.ListingResponse, error)
	Delete(ctx context.Context, hostID uuid.UUID, listingID string) error
	Search(ctx context.Context, req *request.SearchListingsRequest) (*response.ListingsResponse, error)
	MyListings(ctx context.Context, hostID uuid.UUID) (*response.ListingsResponse, error)
}

type listingService struct {
	listings repository.ListingRepository
	log      *zap.Logger
}

func NewListingService(listings repository.ListingRepository, log *zap.Logger) ListingService {
	return &listingService{
		listings: listings,
		log:      log.With(zap.String("service", "listing")),
	}
}

func (s *listingService) Create(ctx context.Context, hostID uuid.UUID, req *request.CreateListingRequest) (*response.ListingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create listing validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	availableFrom, availableTo, err := parseAvailability(req.AvailableFrom, req.AvailableTo)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	listing := &entity.Listing{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		HostID:        hostID,
		Title:         req.Title,
		NoOfPeople:    req.NoOfPeople,
		Country:       req.Country,
		City:          req.City,
		Price:         req.Price,
		Ratings:       0,
		AvailableFrom: availableFrom,
		AvailableTo:   availableTo,
	}

	if err := s.listings.Create(ctx, listing); err != nil {
		s.log.Error("Failed to create listing", zap.Error(err), zap.String("host_id", hostID.String()))
		return nil, fmt.Errorf("create listing: %w", err)
	}

	s.log.Info("Listing created",
		zap.String("listing_id", listing.ID.String()),
		zap.String("host_id", hostID.String()))

	resp := response.ListingToResponse(listing)
	return &resp, nil
}

// Update applies only the request fields that carry a non-zero value;
// absent, empty-string and zero-numeric fields leave the stored value
// unchanged. A listing that does not exist or is owned by another host
// yields the same collapsed error so existence is not leaked.
func (s *listingService) Update(ctx context.Context, hostID uuid.UUID, listingID string, req *request.UpdateListingRequest) (*response.ListingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update listing validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(listingID)
	if err != nil {
		return nil, ErrNotFoundOrUnauthorized
	}

	listing, err := s.listings.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to load listing for update", zap.Error(err), zap.String("listing_id", listingID))
		return nil, fmt.Errorf("load listing: %w", err)
	}
	if listing == nil || listing.HostID != hostID {
		return nil, ErrNotFoundOrUnauthorized
	}

	if req.Title != nil && *req.Title != "" {
		listing.Title = *req.Title
	}
	if req.NoOfPeople != nil && *req.NoOfPeople != 0 {
		listing.NoOfPeople = *req.NoOfPeople
	}
	if req.Country != nil && *req.Country != "" {
		listing.Country = *req.Country
	}
	if req.City != nil && *req.City != "" {
		listing.City = *req.City
	}
	if req.Price != nil && *req.Price != 0 {
		listing.Price = *req.Price
	}
	if req.AvailableFrom != nil {
		from, err := utils.ParseDate(*req.AvailableFrom)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
		}
		listing.AvailableFrom = &from
	}
	if req.AvailableTo != nil {
		to, err := utils.ParseDate(*req.AvailableTo)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
		}
		listing.AvailableTo = &to
	}
	listing.UpdatedAt = time.Now()

	if err := s.listings.Update(ctx, listing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFoundOrUnauthorized
		}
		s.log.Error("Failed to update listing", zap.Error(err), zap.String("listing_id", listingID))
		return nil, fmt.Errorf("update listing: %w", err)
	}

	s.log.Info("Listing updated",
		zap.String("listing_id", listingID),
		zap.String("host_id", hostID.String()))

	resp := response.ListingToResponse(listing)
	return &resp, nil
}

func (s *listingService) Delete(ctx context.Context, hostID uuid.UUID, listingID string) error {
	id, err := uuid.Parse(listingID)
	if err != nil {
		return ErrNotFoundOrUnauthorized
	}

	if err := s.listings.DeleteOwned(ctx, id, hostID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFoundOrUnauthorized
		}
		s.log.Error("Failed to delete listing", zap.Error(err), zap.String("listing_id", listingID))
		return fmt.Errorf("delete listing: %w", err)
	}

	s.log.Info("Listing deleted",
		zap.String("listing_id", listingID),
		zap.String("host_id", hostID.String()))

	return nil
}

func (s *listingService) Search(ctx context.Context, req *request.SearchListingsRequest) (*response.ListingsResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Search validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	filter := repository.SearchFilter{
		Country:    req.Country,
		City:       req.City,
		NoOfPeople: req.NoOfPeople,
	}

	// Date filtering needs both bounds; a half-open window is rejected
	// instead of guessed at.
	if (req.FromDate == nil) != (req.ToDate == nil) {
		return nil, fmt.Errorf("%w: from_date and to_date must be provided together", ErrValidation)
	}
	if req.FromDate != nil && req.ToDate != nil {
		from, err := utils.ParseDate(*req.FromDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
		}
		to, err := utils.ParseDate(*req.ToDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
		}
		filter.FromDate = &from
		filter.ToDate = &to
	}

	listings, err := s.listings.Search(ctx, filter)
	if err != nil {
		s.log.Error("Failed to search listings", zap.Error(err))
		return nil, fmt.Errorf("search listings: %w", err)
	}

	resp := response.ListingsToResponse(listings)
	return &resp, nil
}

func (s *listingService) MyListings(ctx context.Context, hostID uuid.UUID) (*response.ListingsResponse, error) {
	listings, err := s.listings.FindByHostID(ctx, hostID)
	if err != nil {
		s.log.Error("Failed to load host listings", zap.Error(err), zap.String("host_id", hostID.String()))
		return nil, fmt.Errorf("load host listings: %w", err)
	}

	resp := response.ListingsToResponse(listings)
	return &resp, nil
}

func parseAvailability(fromStr, toStr *string) (*time.Time, *time.Time, error) {
	var from, to *time.Time

	if fromStr != nil {
		t, err := utils.ParseDate(*fromStr)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
		}
		from = &t
	}
	if toStr != nil {
		t, err := utils.ParseDate(*toStr)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
		}
		to = &t
	}

	if from != nil && to != nil && !from.Before(*to) {
		return nil, nil, fmt.Errorf("%w: available_from must be before available_to", ErrValidation)
	}

	return from, to, nil
}
