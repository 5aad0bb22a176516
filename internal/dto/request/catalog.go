package request

type CreateCastRequest struct {
	Name     string   `json:"name" validate:"required"`
	Title    string   `json:"title" validate:"required"`
	Position string   `json:"position" validate:"required"`
	Tags     []string `json:"tags"`
	DOB      string   `json:"dob" validate:"required"`
	Bio      string   `json:"bio"`
}

type CreateCategoryRequest struct {
	Title string `json:"title" validate:"required"`
}

type CreateLocationRequest struct {
	Name      string `json:"name" validate:"required"`
	ShortName string `json:"short_name" validate:"required,max=10"`
}

type CreateMovieTypeRequest struct {
	Name string `json:"name" validate:"required"`
}

type CreateSeatRequest struct {
	Position    string  `json:"position" validate:"required"`
	SeatTypeID  string  `json:"seat_type_id" validate:"required,uuid4"`
	Description *string `json:"description,omitempty"`
}

type CreateSeatTypeRequest struct {
	Label   string  `json:"label" validate:"required"`
	Premium float64 `json:"premium" validate:"gte=0"`
}
