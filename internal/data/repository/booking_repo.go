package repository

import (
	"context"
	"fmt"

	"stay-booking/internal/data/entity"
	"stay-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BookingWithListing is a booking joined with a read-only projection of
// its listing for display.
type BookingWithListing struct {
	entity.Booking
	ListingTitle   string
	ListingCountry string
	ListingCity    string
	ListingPrice   float64
}

type BookingRepository interface {
	// CreateChecked inserts the booking only if its listing exists and
	// no non-canceled booking for the same listing overlaps the
	// requested dates. Returns ErrNotFound or ErrDateConflict.
	CreateChecked(ctx context.Context, booking *entity.Booking) error
	FindByGuestID(ctx context.Context, guestID uuid.UUID) ([]*BookingWithListing, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

// CreateChecked runs the availability check and the insert in one
// transaction. The listing row is locked first so concurrent bookings
// for the same listing serialize instead of racing past the check.
func (r *bookingRepository) CreateChecked(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin booking transaction", zap.Error(err))
		return fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var listingID uuid.UUID
	err = tx.QueryRow(ctx,
		`SELECT id FROM listings WHERE id = $1 FOR UPDATE`,
		booking.ListingID,
	).Scan(&listingID)

	if err == pgx.ErrNoRows {
		return fmt.Errorf("listing %s: %w", booking.ListingID.String(), ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to lock listing for booking",
			zap.Error(err),
			zap.String("listing_id", booking.ListingID.String()),
		)
		return fmt.Errorf("lock listing %s: %w", booking.ListingID.String(), err)
	}

	// Two ranges overlap when each starts no later than the other
	// ends; boundary equality counts as a conflict.
	var conflict bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE listing_id = $1
			  AND status <> 'canceled'
			  AND from_date <= $3
			  AND to_date >= $2
		)
	`, booking.ListingID, booking.FromDate, booking.ToDate).Scan(&conflict)

	if err != nil {
		r.log.Error("Failed to check booking overlap",
			zap.Error(err),
			zap.String("listing_id", booking.ListingID.String()),
		)
		return fmt.Errorf("check booking overlap: %w", err)
	}

	if conflict {
		return fmt.Errorf("listing %s from %s to %s: %w",
			booking.ListingID.String(),
			booking.FromDate.Format("2006-01-02"),
			booking.ToDate.Format("2006-01-02"),
			ErrDateConflict)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO bookings (id, listing_id, guest_id, from_date, to_date, guest_names, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		booking.ID,
		booking.ListingID,
		booking.GuestID,
		booking.FromDate,
		booking.ToDate,
		booking.GuestNames,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("listing_id", booking.ListingID.String()),
			zap.String("guest_id", booking.GuestID.String()),
		)
		return fmt.Errorf("create booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit booking transaction", zap.Error(err))
		return fmt.Errorf("commit booking transaction: %w", err)
	}

	return nil
}

func (r *bookingRepository) FindByGuestID(ctx context.Context, guestID uuid.UUID) ([]*BookingWithListing, error) {
	query := `
		SELECT b.id, b.listing_id, b.guest_id, b.from_date, b.to_date, b.guest_names,
		       b.status, b.created_at, b.updated_at,
		       l.title, l.country, l.city, l.price
		FROM bookings b
		JOIN listings l ON l.id = b.listing_id
		WHERE b.guest_id = $1
		ORDER BY b.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, guestID)
	if err != nil {
		r.log.Error("Failed to find bookings by guest ID",
			zap.Error(err),
			zap.String("guest_id", guestID.String()),
		)
		return nil, fmt.Errorf("find bookings by guest ID %s: %w", guestID.String(), err)
	}
	defer rows.Close()

	var bookings []*BookingWithListing
	for rows.Next() {
		var b BookingWithListing
		err := rows.Scan(
			&b.ID,
			&b.ListingID,
			&b.GuestID,
			&b.FromDate,
			&b.ToDate,
			&b.GuestNames,
			&b.Status,
			&b.CreatedAt,
			&b.UpdatedAt,
			&b.ListingTitle,
			&b.ListingCountry,
			&b.ListingCity,
			&b.ListingPrice,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}
