package entity

import (
	"time"
)

type Cast struct {
	Base
	Name     string    `db:"name"`
	Title    string    `db:"title"`
	Position string    `db:"position"`
	Tags     []string  `db:"tags"` // stored as JSONB
	DOB      time.Time `db:"dob"`
	Bio      string    `db:"bio"`
}
