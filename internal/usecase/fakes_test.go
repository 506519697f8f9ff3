package usecase

import (
	"context"
	"fmt"

	"stay-booking/internal/data/entity"
	"stay-booking/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes mirroring the SQL semantics.

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return fmt.Errorf("create user %s: %w", user.Email, repository.ErrDuplicate)
		}
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeListingRepo struct {
	listings map[uuid.UUID]*entity.Listing
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: make(map[uuid.UUID]*entity.Listing)}
}

func (f *fakeListingRepo) Create(ctx context.Context, listing *entity.Listing) error {
	cp := *listing
	f.listings[listing.ID] = &cp
	return nil
}

func (f *fakeListingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	if l, ok := f.listings[id]; ok {
		cp := *l
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeListingRepo) FindByHostID(ctx context.Context, hostID uuid.UUID) ([]*entity.Listing, error) {
	var out []*entity.Listing
	for _, l := range f.listings {
		if l.HostID == hostID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeListingRepo) FindAll(ctx context.Context) ([]*entity.Listing, error) {
	var out []*entity.Listing
	for _, l := range f.listings {
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeListingRepo) Search(ctx context.Context, filter repository.SearchFilter) ([]*entity.Listing, error) {
	var out []*entity.Listing
	for _, l := range f.listings {
		if filter.Country != nil && l.Country != *filter.Country {
			continue
		}
		if filter.City != nil && l.City != *filter.City {
			continue
		}
		if filter.NoOfPeople != nil && l.NoOfPeople < *filter.NoOfPeople {
			continue
		}
		if filter.FromDate != nil && filter.ToDate != nil {
			if l.AvailableFrom != nil && l.AvailableFrom.After(*filter.FromDate) {
				continue
			}
			if l.AvailableTo != nil && l.AvailableTo.Before(*filter.ToDate) {
				continue
			}
		}
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeListingRepo) Report(ctx context.Context, filter repository.ReportFilter) ([]*entity.Listing, error) {
	var out []*entity.Listing
	for _, l := range f.listings {
		if filter.Country != nil && l.Country != *filter.Country {
			continue
		}
		if filter.City != nil && l.City != *filter.City {
			continue
		}
		if filter.MinRating != nil && l.Ratings < *filter.MinRating {
			continue
		}
		if filter.MaxRating != nil && l.Ratings > *filter.MaxRating {
			continue
		}
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeListingRepo) Update(ctx context.Context, listing *entity.Listing) error {
	existing, ok := f.listings[listing.ID]
	if !ok || existing.HostID != listing.HostID {
		return fmt.Errorf("update listing %s: %w", listing.ID.String(), repository.ErrNotFound)
	}
	cp := *listing
	f.listings[listing.ID] = &cp
	return nil
}

func (f *fakeListingRepo) DeleteOwned(ctx context.Context, id, hostID uuid.UUID) error {
	existing, ok := f.listings[id]
	if !ok || existing.HostID != hostID {
		return fmt.Errorf("delete listing %s: %w", id.String(), repository.ErrNotFound)
	}
	delete(f.listings, id)
	return nil
}

type fakeBookingRepo struct {
	listings *fakeListingRepo
	bookings []*entity.Booking
}

func newFakeBookingRepo(listings *fakeListingRepo) *fakeBookingRepo {
	return &fakeBookingRepo{listings: listings}
}

func (f *fakeBookingRepo) CreateChecked(ctx context.Context, booking *entity.Booking) error {
	if _, ok := f.listings.listings[booking.ListingID]; !ok {
		return fmt.Errorf("listing %s: %w", booking.ListingID.String(), repository.ErrNotFound)
	}

	for _, b := range f.bookings {
		if b.ListingID != booking.ListingID || b.Status == entity.BookingStatusCanceled {
			continue
		}
		if !b.FromDate.After(booking.ToDate) && !b.ToDate.Before(booking.FromDate) {
			return fmt.Errorf("listing %s: %w", booking.ListingID.String(), repository.ErrDateConflict)
		}
	}

	cp := *booking
	f.bookings = append(f.bookings, &cp)
	return nil
}

func (f *fakeBookingRepo) FindByGuestID(ctx context.Context, guestID uuid.UUID) ([]*repository.BookingWithListing, error) {
	var out []*repository.BookingWithListing
	for _, b := range f.bookings {
		if b.GuestID != guestID {
			continue
		}
		listing := f.listings.listings[b.ListingID]
		out = append(out, &repository.BookingWithListing{
			Booking:        *b,
			ListingTitle:   listing.Title,
			ListingCountry: listing.Country,
			ListingCity:    listing.City,
			ListingPrice:   listing.Price,
		})
	}
	return out, nil
}
