package entity

import "github.com/google/uuid"

// SeatType carries a percentage premium on the showing's base price,
// e.g. 50 means a VIP seat costs 50% more.
type SeatType struct {
	Base
	Label   string     `db:"type"`
	Premium float64    `db:"discount"` // column name kept from the historical layout
	SeatID  *uuid.UUID `db:"seat"`     // legacy back-reference, not used for pricing
}

// PremiumMultiplier returns the factor applied to a base price.
func (st *SeatType) PremiumMultiplier() float64 {
	return 1 + st.Premium/100
}
