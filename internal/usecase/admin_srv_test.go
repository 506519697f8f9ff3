package usecase

import (
	"context"
	"testing"

	"stay-booking/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestAllListings(t *testing.T) {
	repo := newFakeListingRepo()
	svc := NewAdminService(repo, zap.NewNop())

	seedListing(repo, uuid.New(), "Turkey", "Izmir", 4, 3.5)
	seedListing(repo, uuid.New(), "Greece", "Athens", 2, 4.8)

	resp, err := svc.AllListings(context.Background())
	if err != nil {
		t.Fatalf("AllListings: %v", err)
	}
	if len(resp.Listings) != 2 {
		t.Fatalf("got %d listings, want 2", len(resp.Listings))
	}
}

func TestReportListingsRatingRange(t *testing.T) {
	repo := newFakeListingRepo()
	svc := NewAdminService(repo, zap.NewNop())

	seedListing(repo, uuid.New(), "Turkey", "Izmir", 4, 2.5)
	inRange := seedListing(repo, uuid.New(), "Turkey", "Izmir", 4, 3.0)
	seedListing(repo, uuid.New(), "Turkey", "Izmir", 4, 4.5)
	seedListing(repo, uuid.New(), "Turkey", "Izmir", 4, 4.9)

	resp, err := svc.ReportListings(context.Background(), &request.ReportListingsRequest{
		MinRating: floatPtr(3),
		MaxRating: floatPtr(4.5),
	})
	if err != nil {
		t.Fatalf("ReportListings: %v", err)
	}
	if len(resp.Listings) != 2 {
		t.Fatalf("got %d listings, want 2", len(resp.Listings))
	}
	for _, l := range resp.Listings {
		if l.Ratings < 3 || l.Ratings > 4.5 {
			t.Errorf("listing %s rating %v outside [3, 4.5]", l.ID, l.Ratings)
		}
	}

	found := false
	for _, l := range resp.Listings {
		if l.ID == inRange.ID.String() {
			found = true
		}
	}
	if !found {
		t.Error("boundary rating 3.0 should be included")
	}
}

func TestReportListingsCountryCity(t *testing.T) {
	repo := newFakeListingRepo()
	svc := NewAdminService(repo, zap.NewNop())

	seedListing(repo, uuid.New(), "Turkey", "Izmir", 4, 3.5)
	seedListing(repo, uuid.New(), "Turkey", "Ankara", 4, 3.5)
	seedListing(repo, uuid.New(), "Greece", "Athens", 4, 3.5)

	resp, err := svc.ReportListings(context.Background(), &request.ReportListingsRequest{
		Country: strPtr("Turkey"),
		City:    strPtr("Izmir"),
	})
	if err != nil {
		t.Fatalf("ReportListings: %v", err)
	}
	if len(resp.Listings) != 1 {
		t.Fatalf("got %d listings, want 1", len(resp.Listings))
	}
	if resp.Listings[0].Country != "Turkey" || resp.Listings[0].City != "Izmir" {
		t.Errorf("unexpected listing %+v", resp.Listings[0])
	}
}
