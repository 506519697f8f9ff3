package request

type CreateListingRequest struct {
	Title         string  `json:"title" validate:"required,max=200"`
	NoOfPeople    int     `json:"no_of_people" validate:"required,gt=0"`
	Country       string  `json:"country" validate:"required"`
	City          string  `json:"city" validate:"required"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	AvailableFrom *string `json:"available_from,omitempty" validate:"omitempty,datetime=2006-01-02"`
	AvailableTo   *string `json:"available_to,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateListingRequest carries a partial update: absent and zero-valued
// fields are left unchanged.
type UpdateListingRequest struct {
	Title         *string  `json:"title,omitempty" validate:"omitempty,max=200"`
	NoOfPeople    *int     `json:"no_of_people,omitempty" validate:"omitempty,gte=0"`
	Country       *string  `json:"country,omitempty"`
	City          *string  `json:"city,omitempty"`
	Price         *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	AvailableFrom *string  `json:"available_from,omitempty" validate:"omitempty,datetime=2006-01-02"`
	AvailableTo   *string  `json:"available_to,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// SearchListingsRequest is built from query parameters; all filters
// are optional and combine conjunctively.
type SearchListingsRequest struct {
	FromDate   *string `validate:"omitempty,datetime=2006-01-02"`
	ToDate     *string `validate:"omitempty,datetime=2006-01-02"`
	NoOfPeople *int    `validate:"omitempty,gt=0"`
	Country    *string
	City       *string
}

// ReportListingsRequest is built from admin report query parameters.
type ReportListingsRequest struct {
	Country   *string
	City      *string
	MinRating *float64 `validate:"omitempty,min=0"`
	MaxRating *float64 `validate:"omitempty,min=0"`
}
