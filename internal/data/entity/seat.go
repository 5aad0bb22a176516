package entity

import "github.com/google/uuid"

// Seat belongs to the cinema-wide layout, configured once and reused for
// every showing.
type Seat struct {
	Base
	Position    string    `db:"position"` // A1, A2, B1, etc.
	SeatTypeID  uuid.UUID `db:"type"`
	Description *string   `db:"description"`
}
