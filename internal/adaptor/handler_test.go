package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stay-booking/internal/dto/request"
	"stay-booking/internal/dto/response"
	"stay-booking/internal/usecase"
	"stay-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service fakes returning canned results or errors.

type fakeAuthService struct {
	err error
}

func (f *fakeAuthService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &response.AuthResponse{Token: "token-123"}, nil
}

func (f *fakeAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &response.AuthResponse{Token: "token-123"}, nil
}

type fakeListingService struct {
	err       error
	searchReq *request.SearchListingsRequest
}

func (f *fakeListingService) Create(ctx context.Context, hostID uuid.UUID, req *request.CreateListingRequest) (*response.ListingResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &response.ListingResponse{ID: uuid.New().String(), HostID: hostID.String(), Title: req.Title}, nil
}

func (f *fakeListingService) Update(ctx context.Context, hostID uuid.UUID, listingID string, req *request.UpdateListingRequest) (*response.ListingResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &response.ListingResponse{ID: listingID, HostID: hostID.String()}, nil
}

func (f *fakeListingService) Delete(ctx context.Context, hostID uuid.UUID, listingID string) error {
	return f.err
}

func (f *fakeListingService) Search(ctx context.Context, req *request.SearchListingsRequest) (*response.ListingsResponse, error) {
	f.searchReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &response.ListingsResponse{Listings: []response.ListingResponse{}}, nil
}

func (f *fakeListingService) MyListings(ctx context.Context, hostID uuid.UUID) (*response.ListingsResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &response.ListingsResponse{Listings: []response.ListingResponse{}}, nil
}

type fakeBookingService struct {
	err error
}

func (f *fakeBookingService) Create(ctx context.Context, guestID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &response.BookingResponse{ID: uuid.New().String(), GuestID: guestID.String()}, nil
}

func (f *fakeBookingService) MyBookings(ctx context.Context, guestID uuid.UUID) (*response.BookingsResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &response.BookingsResponse{Bookings: []response.BookingWithListingResponse{}}, nil
}

func decodeMsg(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Msg string `json:"msg"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body.Msg
}

func TestRegisterHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h := NewAuthHandler(&fakeAuthService{}, zap.NewNop())
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
			strings.NewReader(`{"username":"alice","email":"a@example.com","password":"secret123","role":"host"}`))

		h.Register(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201", rec.Code)
		}
		var body response.AuthResponse
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Token != "token-123" {
			t.Errorf("token = %q, want token-123", body.Token)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		h := NewAuthHandler(&fakeAuthService{err: usecase.ErrDuplicateEmail}, zap.NewNop())
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
			strings.NewReader(`{"username":"alice","email":"a@example.com","password":"secret123","role":"host"}`))

		h.Register(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		if msg := decodeMsg(t, rec); msg == "" {
			t.Error("error body missing msg")
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		h := NewAuthHandler(&fakeAuthService{}, zap.NewNop())
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{"))

		h.Register(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}

func TestServiceErrorMapping(t *testing.T) {
	for _, tc := range []struct {
		name   string
		err    error
		status int
	}{
		{"validation", usecase.ErrValidation, http.StatusBadRequest},
		{"invalid credentials", usecase.ErrInvalidCredentials, http.StatusBadRequest},
		{"invalid date range", usecase.ErrInvalidDateRange, http.StatusBadRequest},
		{"date conflict", usecase.ErrDateConflict, http.StatusBadRequest},
		{"listing not found", usecase.ErrListingNotFound, http.StatusNotFound},
		{"not found or unauthorized", usecase.ErrNotFoundOrUnauthorized, http.StatusNotFound},
		{"storage fault", errors.New("connection refused"), http.StatusInternalServerError},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(rec, zap.NewNop(), tc.err, "test operation")

			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d", rec.Code, tc.status)
			}
			msg := decodeMsg(t, rec)
			if tc.status == http.StatusInternalServerError {
				if msg != "Server error" {
					t.Errorf("msg = %q, want the generic Server error", msg)
				}
			} else if msg == "" {
				t.Error("error body missing msg")
			}
		})
	}
}

func TestSearchListingsQueryParsing(t *testing.T) {
	svc := &fakeListingService{}
	h := NewListingHandler(svc, zap.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/listings/search?country=Turkey&no_of_people=4&from_date=2025-07-01&to_date=2025-07-10", nil)

	h.SearchListings(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.searchReq == nil {
		t.Fatal("service not called")
	}
	if svc.searchReq.Country == nil || *svc.searchReq.Country != "Turkey" {
		t.Errorf("Country = %v, want Turkey", svc.searchReq.Country)
	}
	if svc.searchReq.NoOfPeople == nil || *svc.searchReq.NoOfPeople != 4 {
		t.Errorf("NoOfPeople = %v, want 4", svc.searchReq.NoOfPeople)
	}
	if svc.searchReq.City != nil {
		t.Errorf("City = %v, want nil for absent param", svc.searchReq.City)
	}
	if svc.searchReq.FromDate == nil || svc.searchReq.ToDate == nil {
		t.Error("date bounds not forwarded")
	}
}

func TestSearchListingsBadCapacity(t *testing.T) {
	h := NewListingHandler(&fakeListingService{}, zap.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/listings/search?no_of_people=four", nil)

	h.SearchListings(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUpdateListingRequiresIdentity(t *testing.T) {
	h := NewListingHandler(&fakeListingService{}, zap.NewNop())

	r := chi.NewRouter()
	r.Put("/api/listings/{id}", h.UpdateListing)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/listings/"+uuid.New().String(),
		strings.NewReader(`{"price":200}`))

	// No identity in context: the auth middleware never ran.
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestCreateBookingHandlerConflict(t *testing.T) {
	h := NewBookingHandler(&fakeBookingService{err: usecase.ErrDateConflict}, zap.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings",
		strings.NewReader(`{"listingId":"`+uuid.New().String()+`","from_date":"2025-01-12","to_date":"2025-01-20","guest_names":["Ada"]}`))
	req = req.WithContext(utils.SetUserContext(req.Context(), uuid.New(), "guest"))

	h.CreateBooking(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
