package request

type BookSeatsRequest struct {
	ShowingID   string   `json:"showing_id" validate:"required,uuid4"`
	SeatIDs     []string `json:"seat_ids" validate:"required,min=1,dive,uuid4"`
	Description *string  `json:"description,omitempty"`
}

type PriceQuoteRequest struct {
	SeatIDs []string `json:"seat_ids" validate:"required,min=1,dive,uuid4"`
}
