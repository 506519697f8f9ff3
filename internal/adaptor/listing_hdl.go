package adaptor

import (
	"encoding/json"
	"net/http"

	"stay-booking/internal/dto/request"
	"stay-booking/internal/usecase"
	"stay-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ListingHandler struct {
	service usecase.ListingService
	log     *zap.Logger
}

func NewListingHandler(service usecase.ListingService, log *zap.Logger) *ListingHandler {
	return &ListingHandler{
		service: service,
		log:     log.With(zap.String("handler", "listing")),
	}
}

// CreateListing handles POST /api/listings (host only)
func (h *ListingHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	hostID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	listing, err := h.service.Create(r.Context(), hostID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create listing")
		return
	}

	utils.ResponseCreated(w, map[string]any{"status": "successful", "listing": listing})
}

// UpdateListing handles PUT /api/listings/{id} (owning host only)
func (h *ListingHandler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	hostID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	listingID := chi.URLParam(r, "id")
	if listingID == "" {
		utils.ResponseBadRequest(w, "Listing ID is required")
		return
	}

	var req request.UpdateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	listing, err := h.service.Update(r.Context(), hostID, listingID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update listing")
		return
	}

	utils.ResponseSuccess(w, map[string]any{"status": "successful", "listing": listing})
}

// DeleteListing handles DELETE /api/listings/{id} (owning host only)
func (h *ListingHandler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	hostID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	listingID := chi.URLParam(r, "id")
	if listingID == "" {
		utils.ResponseBadRequest(w, "Listing ID is required")
		return
	}

	if err := h.service.Delete(r.Context(), hostID, listingID); err != nil {
		handleServiceError(w, h.log, err, "delete listing")
		return
	}

	utils.ResponseSuccess(w, map[string]any{"status": "successful", "message": "Listing deleted successfully"})
}

// SearchListings handles GET /api/listings/search (public)
func (h *ListingHandler) SearchListings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	noOfPeople, err := queryInt(query, "no_of_people")
	if err != nil {
		utils.ResponseBadRequest(w, "no_of_people must be a number")
		return
	}

	req := request.SearchListingsRequest{
		FromDate:   queryString(query, "from_date"),
		ToDate:     queryString(query, "to_date"),
		NoOfPeople: noOfPeople,
		Country:    queryString(query, "country"),
		City:       queryString(query, "city"),
	}

	listings, err := h.service.Search(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "search listings")
		return
	}

	utils.ResponseSuccess(w, listings)
}

// MyListings handles GET /api/listings/my-listings (host only)
func (h *ListingHandler) MyListings(w http.ResponseWriter, r *http.Request) {
	hostID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	listings, err := h.service.MyListings(r.Context(), hostID)
	if err != nil {
		handleServiceError(w, h.log, err, "load my listings")
		return
	}

	utils.ResponseSuccess(w, listings)
}
