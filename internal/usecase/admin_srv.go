package usecase

import (
	"context"
	"fmt"

	"stay-booking/internal/data/repository"
	"stay-booking/internal/dto/request"
	"stay-booking/internal/dto/response"
	"stay-booking/pkg/utils"

	"go.uber.org/zap"
)

// AdminService provides read-only oversight across all listings.
type AdminService interface {
	AllListings(ctx context.Context) (*response.ListingsResponse, error)
	ReportListings(ctx context.Context, req *request.ReportListingsRequest) (*response.ReportListingsResponse, error)
}

type adminService struct {
	listings repository.ListingRepository
	log      *zap.Logger
}

func NewAdminService(listings repository.ListingRepository, log *zap.Logger) AdminService {
	return &adminService{
		listings: listings,
		log:      log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) AllListings(ctx context.Context) (*response.ListingsResponse, error) {
	listings, err := s.listings.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load all listings", zap.Error(err))
		return nil, fmt.Errorf("load all listings: %w", err)
	}

	resp := response.ListingsToResponse(listings)
	return &resp, nil
}

func (s *adminService) ReportListings(ctx context.Context, req *request.ReportListingsRequest) (*response.ReportListingsResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Report validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	listings, err := s.listings.Report(ctx, repository.ReportFilter{
		Country:   req.Country,
		City:      req.City,
		MinRating: req.MinRating,
		MaxRating: req.MaxRating,
	})
	if err != nil {
		s.log.Error("Failed to build listing report", zap.Error(err))
		return nil, fmt.Errorf("build listing report: %w", err)
	}

	resp := response.ReportListingsToResponse(listings)
	return &resp, nil
}
