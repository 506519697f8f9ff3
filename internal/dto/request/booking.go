package request

type CreateBookingRequest struct {
	ListingID  string   `json:"listingId" validate:"required,uuid4"`
	FromDate   string   `json:"from_date" validate:"required,datetime=2006-01-02"`
	ToDate     string   `json:"to_date" validate:"required,datetime=2006-01-02"`
	GuestNames []string `json:"guest_names" validate:"required,min=1,dive,required"`
}
