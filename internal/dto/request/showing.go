package request

type CreateShowingRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	About       string  `json:"about"`
	Image       string  `json:"image"`
	Start       string  `json:"start" validate:"required"`
	End         string  `json:"end" validate:"required"`
	ReleaseDate string  `json:"release_date" validate:"required"`
	IsPromoted  bool    `json:"is_promoted"`
	BasePrice   float64 `json:"base_price" validate:"required,gt=0"`
	TotalSeat   int     `json:"total_seat" validate:"required,gt=0"`
	CastID      string  `json:"cast_id" validate:"required,uuid4"`
	CategoryID  string  `json:"category_id" validate:"required,uuid4"`
	LocationID  string  `json:"location_id" validate:"required,uuid4"`
	MovieTypeID string  `json:"movie_type_id" validate:"required,uuid4"`
	SeatTypeID  string  `json:"seat_type_id" validate:"required,uuid4"`
}

// ListShowingsRequest carries the listing filters; empty strings mean
// "no filter". From/To are RFC3339 timestamps bounding the start time.
type ListShowingsRequest struct {
	PaginatedRequest
	MovieTypeID   string `json:"movie_type_id"`
	LocationID    string `json:"location_id"`
	From          string `json:"from"`
	To            string `json:"to"`
	OnlyAvailable bool   `json:"only_available"`
}
