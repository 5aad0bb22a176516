package entity

// MovieType is a genre (comedy, drama, family).
type MovieType struct {
	Base
	Name string `db:"name"`
	Slug string `db:"slug"`
}
