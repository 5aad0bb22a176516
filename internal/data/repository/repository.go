package repository

import (
	"errors"

	"cinema-showings/pkg/database"

	"go.uber.org/zap"
)

// ErrDuplicate is returned when an insert violates a uniqueness constraint.
// The booking path relies on it: the unique index on (movie, seat) is the
// authoritative double-booking guard, not the application-level pre-check.
var ErrDuplicate = errors.New("duplicate row")

type Repository struct {
	Cast     CastRepository
	Category CategoryRepository
	Location LocationRepository
	Type     MovieTypeRepository
	Seat     SeatRepository
	SeatType SeatTypeRepository
	Showing  ShowingRepository
	Booking  BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Cast:     NewCastRepository(db, log),
		Category: NewCategoryRepository(db, log),
		Location: NewLocationRepository(db, log),
		Type:     NewMovieTypeRepository(db, log),
		Seat:     NewSeatRepository(db, log),
		SeatType: NewSeatTypeRepository(db, log),
		Showing:  NewShowingRepository(db, log),
		Booking:  NewBookingRepository(db, log),
	}
}
