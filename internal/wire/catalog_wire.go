package wire

import (
	"cinema-showings/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
) {
	// Owner-maintained reference data, grouped per resource.
	r.Route("/api/admin/casts", func(r chi.Router) {
		r.Get("/", catalogHandler.ListCasts)
		r.Post("/", catalogHandler.CreateCast)
		r.Get("/{id}", catalogHandler.GetCast)
		r.Delete("/{id}", catalogHandler.DeleteCast)
	})

	r.Route("/api/admin/categories", func(r chi.Router) {
		r.Get("/", catalogHandler.ListCategories)
		r.Post("/", catalogHandler.CreateCategory)
		r.Get("/{id}", catalogHandler.GetCategory)
		r.Delete("/{id}", catalogHandler.DeleteCategory)
	})

	r.Route("/api/admin/locations", func(r chi.Router) {
		r.Get("/", catalogHandler.ListLocations)
		r.Post("/", catalogHandler.CreateLocation)
		r.Get("/{id}", catalogHandler.GetLocation)
		r.Delete("/{id}", catalogHandler.DeleteLocation)
	})

	r.Route("/api/admin/movie-types", func(r chi.Router) {
		r.Get("/", catalogHandler.ListMovieTypes)
		r.Post("/", catalogHandler.CreateMovieType)
		r.Get("/{id}", catalogHandler.GetMovieType)
		r.Delete("/{id}", catalogHandler.DeleteMovieType)
	})

	r.Route("/api/admin/seats", func(r chi.Router) {
		r.Get("/", catalogHandler.ListSeats)
		r.Post("/", catalogHandler.CreateSeat)
		r.Get("/{id}", catalogHandler.GetSeat)
		r.Delete("/{id}", catalogHandler.DeleteSeat)
	})

	r.Route("/api/admin/seat-types", func(r chi.Router) {
		r.Get("/", catalogHandler.ListSeatTypes)
		r.Post("/", catalogHandler.CreateSeatType)
		r.Get("/{id}", catalogHandler.GetSeatType)
		r.Delete("/{id}", catalogHandler.DeleteSeatType)
	})
}
