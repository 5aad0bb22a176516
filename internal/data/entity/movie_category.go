package entity

type MovieCategory struct {
	Base
	Title string `db:"title"`
	Slug  string `db:"slug"`
}
