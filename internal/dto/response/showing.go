package response

import (
	"time"

	"cinema-showings/internal/data/entity"
)

type ShowingResponse struct {
	ID             string               `json:"id"`
	Title          string               `json:"title"`
	Description    string               `json:"description,omitempty"`
	About          string               `json:"about,omitempty"`
	Image          string               `json:"image,omitempty"`
	Start          time.Time            `json:"start"`
	End            time.Time            `json:"end"`
	ReleaseDate    time.Time            `json:"release_date"`
	IsPromoted     bool                 `json:"is_promoted"`
	BasePrice      float64              `json:"base_price"`
	TotalSeat      int                  `json:"total_seat"`
	SeatsRemaining int                  `json:"seats_remaining"`
	Status         entity.ShowingStatus `json:"status"`
	CastID         string               `json:"cast_id"`
	CategoryID     string               `json:"category_id"`
	LocationID     string               `json:"location_id"`
	MovieTypeID    string               `json:"movie_type_id"`
	SeatTypeID     string               `json:"seat_type_id"`
}

type SeatMapEntry struct {
	SeatID      string  `json:"seat_id"`
	Position    string  `json:"position"`
	SeatTypeID  string  `json:"seat_type_id"`
	Description *string `json:"description,omitempty"`
	Booked      bool    `json:"booked"`
}

type SeatMapResponse struct {
	ShowingID      string         `json:"showing_id"`
	TotalSeat      int            `json:"total_seat"`
	SeatsRemaining int            `json:"seats_remaining"`
	Seats          []SeatMapEntry `json:"seats"`
}

// ShowingToResponse builds the public projection with derived status and
// live seats-remaining.
func ShowingToResponse(showing *entity.Showing, bookedSeats int, now time.Time) ShowingResponse {
	remaining := showing.TotalSeat - bookedSeats
	if remaining < 0 {
		remaining = 0
	}

	return ShowingResponse{
		ID:             showing.ID.String(),
		Title:          showing.Title,
		Description:    showing.Description,
		About:          showing.About,
		Image:          showing.Image,
		Start:          showing.Start,
		End:            showing.End,
		ReleaseDate:    showing.ReleaseDate,
		IsPromoted:     showing.IsPromoted,
		BasePrice:      showing.BasePrice,
		TotalSeat:      showing.TotalSeat,
		SeatsRemaining: remaining,
		Status:         showing.Status(now, bookedSeats),
		CastID:         showing.CastID.String(),
		CategoryID:     showing.CategoryID.String(),
		LocationID:     showing.LocationID.String(),
		MovieTypeID:    showing.MovieTypeID.String(),
		SeatTypeID:     showing.SeatTypeID.String(),
	}
}
