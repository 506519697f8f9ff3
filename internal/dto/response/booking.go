package response

import (
	"time"

	"stay-booking/internal/data/entity"
	"stay-booking/internal/data/repository"
	"stay-booking/pkg/utils"
)

type BookingResponse struct {
	ID         string               `json:"id"`
	ListingID  string               `json:"listingId"`
	GuestID    string               `json:"guestId"`
	FromDate   string               `json:"from_date"`
	ToDate     string               `json:"to_date"`
	GuestNames []string             `json:"guest_names"`
	Status     entity.BookingStatus `json:"status"`
	CreatedAt  time.Time            `json:"created_at"`
}

type BookingEnvelope struct {
	Status  string          `json:"status"`
	Booking BookingResponse `json:"booking"`
}

// ListingSummary is the read-only listing projection attached to a
// guest's booking history.
type ListingSummary struct {
	Title   string  `json:"title"`
	Country string  `json:"country"`
	City    string  `json:"city"`
	Price   float64 `json:"price"`
}

type BookingWithListingResponse struct {
	BookingResponse
	Listing ListingSummary `json:"listing"`
}

type BookingsResponse struct {
	Bookings []BookingWithListingResponse `json:"bookings"`
}

// Helper converters

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:         booking.ID.String(),
		ListingID:  booking.ListingID.String(),
		GuestID:    booking.GuestID.String(),
		FromDate:   utils.FormatDate(booking.FromDate),
		ToDate:     utils.FormatDate(booking.ToDate),
		GuestNames: booking.GuestNames,
		Status:     booking.Status,
		CreatedAt:  booking.CreatedAt,
	}
}

func BookingsToResponse(bookings []*repository.BookingWithListing) BookingsResponse {
	resp := BookingsResponse{Bookings: make([]BookingWithListingResponse, 0, len(bookings))}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, BookingWithListingResponse{
			BookingResponse: BookingToResponse(&b.Booking),
			Listing: ListingSummary{
				Title:   b.ListingTitle,
				Country: b.ListingCountry,
				City:    b.ListingCity,
				Price:   b.ListingPrice,
			},
		})
	}
	return resp
}
