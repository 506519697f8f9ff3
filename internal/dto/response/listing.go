package response

import (
	"time"

	"stay-booking/internal/data/entity"
	"stay-booking/pkg/utils"
)

type ListingResponse struct {
	ID            string    `json:"id"`
	HostID        string    `json:"hostId"`
	Title         string    `json:"title"`
	NoOfPeople    int       `json:"no_of_people"`
	Country       string    `json:"country"`
	City          string    `json:"city"`
	Price         float64   `json:"price"`
	Ratings       float64   `json:"ratings"`
	AvailableFrom *string   `json:"available_from,omitempty"`
	AvailableTo   *string   `json:"available_to,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type ListingsResponse struct {
	Listings []ListingResponse `json:"listings"`
}

type ListingEnvelope struct {
	Status  string          `json:"status,omitempty"`
	Listing ListingResponse `json:"listing"`
}

// ReportListingResponse is the admin reporting projection.
type ReportListingResponse struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Country string  `json:"country"`
	City    string  `json:"city"`
	Ratings float64 `json:"ratings"`
	Price   float64 `json:"price"`
}

type ReportListingsResponse struct {
	Listings []ReportListingResponse `json:"listings"`
}

// Helper converters

func ListingToResponse(listing *entity.Listing) ListingResponse {
	resp := ListingResponse{
		ID:         listing.ID.String(),
		HostID:     listing.HostID.String(),
		Title:      listing.Title,
		NoOfPeople: listing.NoOfPeople,
		Country:    listing.Country,
		City:       listing.City,
		Price:      listing.Price,
		Ratings:    listing.Ratings,
		CreatedAt:  listing.CreatedAt,
	}

	if listing.AvailableFrom != nil {
		from := utils.FormatDate(*listing.AvailableFrom)
		resp.AvailableFrom = &from
	}
	if listing.AvailableTo != nil {
		to := utils.FormatDate(*listing.AvailableTo)
		resp.AvailableTo = &to
	}

	return resp
}

func ListingsToResponse(listings []*entity.Listing) ListingsResponse {
	resp := ListingsResponse{Listings: make([]ListingResponse, 0, len(listings))}
	for _, listing := range listings {
		resp.Listings = append(resp.Listings, ListingToResponse(listing))
	}
	return resp
}

func ReportListingToResponse(listing *entity.Listing) ReportListingResponse {
	return ReportListingResponse{
		ID:      listing.ID.String(),
		Title:   listing.Title,
		Country: listing.Country,
		City:    listing.City,
		Ratings: listing.Ratings,
		Price:   listing.Price,
	}
}

func ReportListingsToResponse(listings []*entity.Listing) ReportListingsResponse {
	resp := ReportListingsResponse{Listings: make([]ReportListingResponse, 0, len(listings))}
	for _, listing := range listings {
		resp.Listings = append(resp.Listings, ReportListingToResponse(listing))
	}
	return resp
}
