package response

import (
	"time"

	"cinema-showings/internal/data/entity"
)

type CastResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Title    string   `json:"title"`
	Position string   `json:"position"`
	Tags     []string `json:"tags"`
	DOB      string   `json:"dob"`
	Bio      string   `json:"bio,omitempty"`
}

type CategoryResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type LocationResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	ShortName string `json:"short_name"`
}

type MovieTypeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type SeatResponse struct {
	ID          string  `json:"id"`
	Position    string  `json:"position"`
	SeatTypeID  string  `json:"seat_type_id"`
	Description *string `json:"description,omitempty"`
}

type SeatTypeResponse struct {
	ID      string  `json:"id"`
	Label   string  `json:"label"`
	Premium float64 `json:"premium"`
}

// Helper converters

func CastToResponse(cast *entity.Cast) CastResponse {
	return CastResponse{
		ID:       cast.ID.String(),
		Name:     cast.Name,
		Title:    cast.Title,
		Position: cast.Position,
		Tags:     cast.Tags,
		DOB:      cast.DOB.Format(time.DateOnly),
		Bio:      cast.Bio,
	}
}

func CategoryToResponse(category *entity.MovieCategory) CategoryResponse {
	return CategoryResponse{
		ID:    category.ID.String(),
		Title: category.Title,
		Slug:  category.Slug,
	}
}

func LocationToResponse(location *entity.Location) LocationResponse {
	return LocationResponse{
		ID:        location.ID.String(),
		Name:      location.Name,
		Slug:      location.Slug,
		ShortName: location.ShortName,
	}
}

func MovieTypeToResponse(movieType *entity.MovieType) MovieTypeResponse {
	return MovieTypeResponse{
		ID:   movieType.ID.String(),
		Name: movieType.Name,
		Slug: movieType.Slug,
	}
}

func SeatToResponse(seat *entity.Seat) SeatResponse {
	return SeatResponse{
		ID:          seat.ID.String(),
		Position:    seat.Position,
		SeatTypeID:  seat.SeatTypeID.String(),
		Description: seat.Description,
	}
}

func SeatTypeToResponse(seatType *entity.SeatType) SeatTypeResponse {
	return SeatTypeResponse{
		ID:      seatType.ID.String(),
		Label:   seatType.Label,
		Premium: seatType.Premium,
	}
}
