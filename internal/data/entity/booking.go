package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking reserves exactly one seat for one showing. A purchase of several
// seats produces one row per seat so the (movie, seat) uniqueness holds.
// Rows are immutable once written; cancellation removes the row inside an
// explicit transaction.
type Booking struct {
	Base
	Time          time.Time `db:"time"`
	NumberOfSeats int       `db:"number_of_seats"` // always 1, kept for layout compatibility
	ShowingID     uuid.UUID `db:"movie"`
	SeatID        uuid.UUID `db:"seat"`
	Description   *string   `db:"description"`
}
