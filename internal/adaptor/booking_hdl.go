package adaptor

import (
	"encoding/json"
	"net/http"

	"stay-booking/internal/dto/request"
	"stay-booking/internal/dto/response"
	"stay-booking/internal/usecase"
	"stay-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings (guest only)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	guestID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	booking, err := h.service.Create(r.Context(), guestID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, response.BookingEnvelope{Status: "successful", Booking: *booking})
}

// MyBookings handles GET /api/bookings (guest only)
func (h *BookingHandler) MyBookings(w http.ResponseWriter, r *http.Request) {
	guestID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookings, err := h.service.MyBookings(r.Context(), guestID)
	if err != nil {
		handleServiceError(w, h.log, err, "load my bookings")
		return
	}

	utils.ResponseSuccess(w, bookings)
}
