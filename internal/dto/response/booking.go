package response

import (
	"time"

	"cinema-showings/internal/data/entity"
)

type BookedSeat struct {
	BookingID string  `json:"booking_id"`
	SeatID    string  `json:"seat_id"`
	Position  string  `json:"position"`
	Price     float64 `json:"price"`
}

type BookingResponse struct {
	Reference  string       `json:"reference"`
	ShowingID  string       `json:"showing_id"`
	Title      string       `json:"movie_title"`
	Start      time.Time    `json:"start"`
	Seats      []BookedSeat `json:"seats"`
	TotalPrice float64      `json:"total_price"`
	BookedAt   time.Time    `json:"booked_at"`
}

type BookingDetailResponse struct {
	ID          string    `json:"id"`
	ShowingID   string    `json:"showing_id"`
	SeatID      string    `json:"seat_id"`
	Position    string    `json:"position,omitempty"`
	Description *string   `json:"description,omitempty"`
	BookedAt    time.Time `json:"booked_at"`
}

type PriceQuoteResponse struct {
	ShowingID string      `json:"showing_id"`
	BasePrice float64     `json:"base_price"`
	Seats     []SeatPrice `json:"seats"`
	Total     float64     `json:"total"`
}

type SeatPrice struct {
	SeatID   string  `json:"seat_id"`
	Position string  `json:"position"`
	SeatType string  `json:"seat_type"`
	Premium  float64 `json:"premium"`
	Price    float64 `json:"price"`
}

func BookingToDetailResponse(booking *entity.Booking, position string) BookingDetailResponse {
	return BookingDetailResponse{
		ID:          booking.ID.String(),
		ShowingID:   booking.ShowingID.String(),
		SeatID:      booking.SeatID.String(),
		Position:    position,
		Description: booking.Description,
		BookedAt:    booking.Time,
	}
}
