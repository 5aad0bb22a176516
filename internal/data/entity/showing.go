package entity

import (
	"time"

	"github.com/google/uuid"
)

type ShowingStatus string

const (
	ShowingStatusScheduled       ShowingStatus = "scheduled"
	ShowingStatusPartiallyBooked ShowingStatus = "partially_booked"
	ShowingStatusFullyBooked     ShowingStatus = "fully_booked"
	ShowingStatusElapsed         ShowingStatus = "elapsed"
)

// Showing is one scheduled screening of a film at one location and time.
// It maps to the movies table; recurring screenings of the same film are
// separate rows.
type Showing struct {
	Base
	Title         string    `db:"title"`
	Description   string    `db:"description"`
	About         string    `db:"about"`
	Reactions     string    `db:"reactions"`
	Image         string    `db:"image"`
	Start         time.Time `db:"start"`
	End           time.Time `db:"end"`
	ReleaseDate   time.Time `db:"release_date"`
	IsPromoted    bool      `db:"is_promoted"`
	IsFullyBooked bool      `db:"is_fully_booked"` // cached projection, recomputed on every booking change
	BasePrice     float64   `db:"price"`
	TotalSeat     int       `db:"total_seat"`
	CastID        uuid.UUID `db:"cast_id"`
	CategoryID    uuid.UUID `db:"category_id"`
	LocationID    uuid.UUID `db:"location_id"`
	MovieTypeID   uuid.UUID `db:"movie_type"`
	SeatTypeID    uuid.UUID `db:"seat_type"`
}

// Status derives the showing state from the clock and booking count.
// Elapsed is terminal once the end timestamp passes.
func (s *Showing) Status(now time.Time, bookedSeats int) ShowingStatus {
	if !now.Before(s.End) {
		return ShowingStatusElapsed
	}
	if s.IsFullyBooked || (s.TotalSeat > 0 && bookedSeats >= s.TotalSeat) {
		return ShowingStatusFullyBooked
	}
	if bookedSeats > 0 {
		return ShowingStatusPartiallyBooked
	}
	return ShowingStatusScheduled
}

// ClosedForBooking reports whether new bookings are rejected. Bookings
// close at the scheduled start, not the end.
func (s *Showing) ClosedForBooking(now time.Time) bool {
	return !now.Before(s.Start)
}

// EffectiveSeatPrice applies a seat type premium to the base price.
func (s *Showing) EffectiveSeatPrice(st *SeatType) float64 {
	return s.BasePrice * st.PremiumMultiplier()
}

// Overlaps reports whether [s.Start, s.End) intersects [start, end).
func (s *Showing) Overlaps(start, end time.Time) bool {
	return s.Start.Before(end) && start.Before(s.End)
}
