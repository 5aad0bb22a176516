package wire

import (
	"cinema-showings/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireShowing(
	r chi.Router,
	showingHandler *adaptor.ShowingHandler,
	bookingHandler *adaptor.BookingHandler,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/showings - List showings with filters (public)
	r.Get("/api/showings", showingHandler.ListShowings)

	// GET /api/showings/{id} - Showing details (public)
	r.Get("/api/showings/{id}", showingHandler.GetShowing)

	// GET /api/showings/{id}/seats - Seat map with availability (public)
	r.Get("/api/showings/{id}/seats", showingHandler.GetSeatMap)

	// POST /api/showings/{id}/price - Price quote without booking (public)
	r.Post("/api/showings/{id}/price", bookingHandler.ComputePrice)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/showings", func(r chi.Router) {
		r.Post("/", showingHandler.CreateShowing) // POST /api/admin/showings
	})
}
