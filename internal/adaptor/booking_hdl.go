package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-showings/internal/dto/request"
	"cinema-showings/internal/usecase"
	"cinema-showings/pkg/utils"

	"github.com/go-chi/chi/v5"
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

// BookSeats handles POST /api/bookings (public)
func (h *BookingHandler) BookSeats(w http.ResponseWriter, r *http.Request) {
	var req request.BookSeatsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.BookSeats(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "book seats")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// ComputePrice handles POST /api/showings/{id}/price (public)
func (h *BookingHandler) ComputePrice(w http.ResponseWriter, r *http.Request) {
	showingID := chi.URLParam(r, "id")
	if showingID == "" {
		utils.ResponseBadRequest(w, "Showing ID is required", nil)
		return
	}

	var req request.PriceQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	quote, err := h.service.ComputePrice(r.Context(), showingID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "compute price")
		return
	}

	utils.ResponseSuccess(w, "success", quote)
}

// GetBooking handles GET /api/bookings/{id} (public)
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.GetBooking(r.Context(), bookingID)
	if err != nil {
		handleServiceError(h.log, w, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// CancelBooking handles DELETE /api/bookings/{id} (public)
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	if err := h.service.CancelBooking(r.Context(), bookingID); err != nil {
		handleServiceError(h.log, w, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
