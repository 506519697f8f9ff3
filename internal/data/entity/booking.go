package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCanceled  BookingStatus = "canceled"
)

type Booking struct {
	Base
	ListingID  uuid.UUID     `db:"listing_id"`
	GuestID    uuid.UUID     `db:"guest_id"`
	FromDate   time.Time     `db:"from_date"`
	ToDate     time.Time     `db:"to_date"`
	GuestNames []string      `db:"guest_names"`
	Status     BookingStatus `db:"status"`
}
