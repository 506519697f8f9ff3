package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stay-booking/internal/data/entity"
	"stay-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// SearchFilter narrows the public listing search. Nil fields are
// skipped; FromDate/ToDate only apply when both are set.
type SearchFilter struct {
	Country    *string
	City       *string
	NoOfPeople *int
	FromDate   *time.Time
	ToDate     *time.Time
}

// ReportFilter narrows the admin listing report. Rating bounds are
// inclusive and independently optional.
type ReportFilter struct {
	Country   *string
	City      *string
	MinRating *float64
	MaxRating *float64
}

type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)
	FindByHostID(ctx context.Context, hostID uuid.UUID) ([]*entity.Listing, error)
	FindAll(ctx context.Context) ([]*entity.Listing, error)
	Search(ctx context.Context, filter SearchFilter) ([]*entity.Listing, error)
	Report(ctx context.Context, filter ReportFilter) ([]*entity.Listing, error)
	Update(ctx context.Context, listing *entity.Listing) error
	DeleteOwned(ctx context.Context, id, hostID uuid.UUID) error
}

type listingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewListingRepository(db database.PgxIface, log *zap.Logger) ListingRepository {
	return &listingRepository{
		db:  db,
		log: log.With(zap.String("repository", "listing")),
	}
}

const listingColumns = `id, host_id, title, no_of_people, country, city, price, ratings,
       available_from, available_to, created_at, updated_at`

func scanListing(row pgx.Row) (*entity.Listing, error) {
	var listing entity.Listing
	err := row.Scan(
		&listing.ID,
		&listing.HostID,
		&listing.Title,
		&listing.NoOfPeople,
		&listing.Country,
		&listing.City,
		&listing.Price,
		&listing.Ratings,
		&listing.AvailableFrom,
		&listing.AvailableTo,
		&listing.CreatedAt,
		&listing.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	query := `
		INSERT INTO listings (id, host_id, title, no_of_people, country, city, price,
		                      ratings, available_from, available_to, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		listing.ID,
		listing.HostID,
		listing.Title,
		listing.NoOfPeople,
		listing.Country,
		listing.City,
		listing.Price,
		listing.Ratings,
		listing.AvailableFrom,
		listing.AvailableTo,
		listing.CreatedAt,
		listing.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create listing",
			zap.Error(err),
			zap.String("host_id", listing.HostID.String()),
			zap.String("title", listing.Title),
		)
		return fmt.Errorf("create listing %s: %w", listing.Title, err)
	}

	return nil
}

func (r *listingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`

	listing, err := scanListing(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find listing by ID",
			zap.Error(err),
			zap.String("listing_id", id.String()),
		)
		return nil, fmt.Errorf("find listing by ID %s: %w", id.String(), err)
	}

	return listing, nil
}

func (r *listingRepository) FindByHostID(ctx context.Context, hostID uuid.UUID) ([]*entity.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE host_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, hostID)
	if err != nil {
		r.log.Error("Failed to find listings by host ID",
			zap.Error(err),
			zap.String("host_id", hostID.String()),
		)
		return nil, fmt.Errorf("find listings by host ID %s: %w", hostID.String(), err)
	}
	defer rows.Close()

	return collectListings(rows)
}

func (r *listingRepository) FindAll(ctx context.Context) ([]*entity.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all listings", zap.Error(err))
		return nil, fmt.Errorf("find all listings: %w", err)
	}
	defer rows.Close()

	return collectListings(rows)
}

// Search applies the conjunctive public filters. The availability
// window must cover the whole requested stay when both date bounds are
// given; a NULL bound counts as unbounded on that side.
func (r *listingRepository) Search(ctx context.Context, filter SearchFilter) ([]*entity.Listing, error) {
	var (
		conds []string
		args  []any
	)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Country != nil {
		conds = append(conds, "country = "+arg(*filter.Country))
	}
	if filter.City != nil {
		conds = append(conds, "city = "+arg(*filter.City))
	}
	if filter.NoOfPeople != nil {
		conds = append(conds, "no_of_people >= "+arg(*filter.NoOfPeople))
	}
	if filter.FromDate != nil && filter.ToDate != nil {
		conds = append(conds, "(available_from IS NULL OR available_from <= "+arg(*filter.FromDate)+")")
		conds = append(conds, "(available_to IS NULL OR available_to >= "+arg(*filter.ToDate)+")")
	}

	query := `SELECT ` + listingColumns + ` FROM listings`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to search listings", zap.Error(err))
		return nil, fmt.Errorf("search listings: %w", err)
	}
	defer rows.Close()

	return collectListings(rows)
}

func (r *listingRepository) Report(ctx context.Context, filter ReportFilter) ([]*entity.Listing, error) {
	var (
		conds []string
		args  []any
	)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Country != nil {
		conds = append(conds, "country = "+arg(*filter.Country))
	}
	if filter.City != nil {
		conds = append(conds, "city = "+arg(*filter.City))
	}
	if filter.MinRating != nil {
		conds = append(conds, "ratings >= "+arg(*filter.MinRating))
	}
	if filter.MaxRating != nil {
		conds = append(conds, "ratings <= "+arg(*filter.MaxRating))
	}

	query := `SELECT ` + listingColumns + ` FROM listings`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to report listings", zap.Error(err))
		return nil, fmt.Errorf("report listings: %w", err)
	}
	defer rows.Close()

	return collectListings(rows)
}

func (r *listingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	query := `
		UPDATE listings
		SET title = $2, no_of_people = $3, country = $4, city = $5, price = $6,
		    available_from = $7, available_to = $8, updated_at = $9
		WHERE id = $1 AND host_id = $10
	`

	result, err := r.db.Exec(ctx, query,
		listing.ID,
		listing.Title,
		listing.NoOfPeople,
		listing.Country,
		listing.City,
		listing.Price,
		listing.AvailableFrom,
		listing.AvailableTo,
		listing.UpdatedAt,
		listing.HostID,
	)

	if err != nil {
		r.log.Error("Failed to update listing",
			zap.Error(err),
			zap.String("listing_id", listing.ID.String()),
		)
		return fmt.Errorf("update listing %s: %w", listing.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update listing %s: %w", listing.ID.String(), ErrNotFound)
	}

	return nil
}

// DeleteOwned removes the listing only when owned by hostID, so a
// foreign delete is indistinguishable from a missing record.
func (r *listingRepository) DeleteOwned(ctx context.Context, id, hostID uuid.UUID) error {
	query := `DELETE FROM listings WHERE id = $1 AND host_id = $2`

	result, err := r.db.Exec(ctx, query, id, hostID)
	if err != nil {
		r.log.Error("Failed to delete listing",
			zap.Error(err),
			zap.String("listing_id", id.String()),
		)
		return fmt.Errorf("delete listing %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete listing %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Listing deleted", zap.String("listing_id", id.String()))
	return nil
}

func collectListings(rows pgx.Rows) ([]*entity.Listing, error) {
	var listings []*entity.Listing
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan listing row: %w", err)
		}
		listings = append(listings, listing)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate listing rows: %w", err)
	}

	return listings, nil
}
