package entity

import (
	"time"

	"github.com/google/uuid"
)

// Listing availability is a continuous window. A nil bound means
// unbounded on that side.
type Listing struct {
	Base
	HostID        uuid.UUID  `db:"host_id"`
	Title         string     `db:"title"`
	NoOfPeople    int        `db:"no_of_people"`
	Country       string     `db:"country"`
	City          string     `db:"city"`
	Price         float64    `db:"price"`
	Ratings       float64    `db:"ratings"`
	AvailableFrom *time.Time `db:"available_from"`
	AvailableTo   *time.Time `db:"available_to"`
}
