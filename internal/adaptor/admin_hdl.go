package adaptor

import (
	"net/http"

	"stay-booking/internal/dto/request"
	"stay-booking/internal/usecase"
	"stay-booking/pkg/utils"

	"go.uber.org/zap"
)

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log.With(zap.String("handler", "admin")),
	}
}

// AllListings handles GET /api/admin/listings (admin only)
func (h *AdminHandler) AllListings(w http.ResponseWriter, r *http.Request) {
	listings, err := h.service.AllListings(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "load all listings")
		return
	}

	utils.ResponseSuccess(w, listings)
}

// ReportListings handles GET /api/admin/report-listings (admin only)
func (h *AdminHandler) ReportListings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	minRating, err := queryFloat(query, "min_rating")
	if err != nil {
		utils.ResponseBadRequest(w, "min_rating must be a number")
		return
	}
	maxRating, err := queryFloat(query, "max_rating")
	if err != nil {
		utils.ResponseBadRequest(w, "max_rating must be a number")
		return
	}

	req := request.ReportListingsRequest{
		Country:   queryString(query, "country"),
		City:      queryString(query, "city"),
		MinRating: minRating,
		MaxRating: maxRating,
	}

	listings, err := h.service.ReportListings(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "build listing report")
		return
	}

	utils.ResponseSuccess(w, listings)
}
