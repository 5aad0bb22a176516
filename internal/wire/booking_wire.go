package wire

import (
	"cinema-showings/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
) {
	// POST /api/bookings - Book seats for a showing (public)
	r.Post("/api/bookings", bookingHandler.BookSeats)

	// GET /api/bookings/{id} - Booking details (public)
	r.Get("/api/bookings/{id}", bookingHandler.GetBooking)

	// DELETE /api/bookings/{id} - Cancel a booking (public)
	r.Delete("/api/bookings/{id}", bookingHandler.CancelBooking)
}
