package entity

// Location is a screening room within the cinema.
type Location struct {
	Base
	Name      string `db:"name"`
	Slug      string `db:"slug"`
	ShortName string `db:"short_name"`
}
