package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-showings/internal/data/entity"
	"cinema-showings/internal/data/repository"
	"cinema-showings/internal/dto/request"
	"cinema-showings/internal/dto/response"
	"cinema-showings/pkg/database"
	"cinema-showings/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ShowingService interface {
	// Public endpoints
	ListShowings(ctx context.Context, req *request.ListShowingsRequest) (*response.PaginatedResponse[response.ShowingResponse], error)
	GetShowing(ctx context.Context, showingID string) (*response.ShowingResponse, error)
	GetSeatMap(ctx context.Context, showingID string) (*response.SeatMapResponse, error)

	// Owner endpoints
	CreateShowing(ctx context.Context, req *request.CreateShowingRequest) (*response.ShowingResponse, error)
}

type showingService struct {
	db     database.PgxIface
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewShowingService(db database.PgxIface, repo *repository.Repository, config *utils.Config, log *zap.Logger) ShowingService {
	return &showingService{
		db:     db,
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "showing")),
	}
}

func (s *showingService) ListShowings(ctx context.Context, req *request.ListShowingsRequest) (*response.PaginatedResponse[response.ShowingResponse], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 {
		req.PerPage = s.config.Booking.DefaultPerPage
	}

	filter, err := s.buildFilter(req)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.Showing.List(ctx, *filter, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list showings", zap.Error(err))
		return nil, fmt.Errorf("list showings: %w", err)
	}

	total, err := s.repo.Showing.Count(ctx, *filter)
	if err != nil {
		s.log.Error("Failed to count showings", zap.Error(err))
		return nil, fmt.Errorf("count showings: %w", err)
	}

	now := time.Now()
	showings := make([]response.ShowingResponse, len(items))
	for i, item := range items {
		showings[i] = response.ShowingToResponse(&item.Showing, item.BookedSeats, now)
	}

	s.log.Info("Showings listed",
		zap.Int("count", len(items)),
		zap.Int64("total", total),
		zap.Bool("only_available", req.OnlyAvailable),
	)

	return response.NewPaginatedResponse(showings, req.Page, req.PerPage, total), nil
}

func (s *showingService) GetShowing(ctx context.Context, showingID string) (*response.ShowingResponse, error) {
	id, err := uuid.Parse(showingID)
	if err != nil {
		return nil, fmt.Errorf("showing ID %s: %w", showingID, ErrValidation)
	}

	showing, err := s.repo.Showing.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find showing: %w", err)
	}
	if showing == nil {
		return nil, fmt.Errorf("showing %s: %w", showingID, ErrNotFound)
	}

	booked, err := s.repo.Booking.CountByShowing(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("count booked seats: %w", err)
	}

	resp := response.ShowingToResponse(showing, booked, time.Now())
	return &resp, nil
}

func (s *showingService) GetSeatMap(ctx context.Context, showingID string) (*response.SeatMapResponse, error) {
	id, err := uuid.Parse(showingID)
	if err != nil {
		return nil, fmt.Errorf("showing ID %s: %w", showingID, ErrValidation)
	}

	showing, err := s.repo.Showing.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find showing: %w", err)
	}
	if showing == nil {
		return nil, fmt.Errorf("showing %s: %w", showingID, ErrNotFound)
	}

	seats, err := s.repo.Seat.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load seat layout", zap.Error(err))
		return nil, fmt.Errorf("load seat layout: %w", err)
	}

	bookedIDs, err := s.repo.Booking.BookedSeatIDsByShowing(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("load booked seats: %w", err)
	}

	booked := make(map[uuid.UUID]bool, len(bookedIDs))
	for _, seatID := range bookedIDs {
		booked[seatID] = true
	}

	entries := make([]response.SeatMapEntry, len(seats))
	for i, seat := range seats {
		entries[i] = response.SeatMapEntry{
			SeatID:      seat.ID.String(),
			Position:    seat.Position,
			SeatTypeID:  seat.SeatTypeID.String(),
			Description: seat.Description,
			Booked:      booked[seat.ID],
		}
	}

	remaining := showing.TotalSeat - len(bookedIDs)
	if remaining < 0 {
		remaining = 0
	}

	return &response.SeatMapResponse{
		ShowingID:      showing.ID.String(),
		TotalSeat:      showing.TotalSeat,
		SeatsRemaining: remaining,
		Seats:          entries,
	}, nil
}

func (s *showingService) CreateShowing(ctx context.Context, req *request.CreateShowingRequest) (*response.ShowingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create showing validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	start, err := time.Parse(time.RFC3339, req.Start)
	if err != nil {
		return nil, fmt.Errorf("start timestamp %s: %w", req.Start, ErrValidation)
	}
	end, err := time.Parse(time.RFC3339, req.End)
	if err != nil {
		return nil, fmt.Errorf("end timestamp %s: %w", req.End, ErrValidation)
	}
	releaseDate, err := time.Parse(time.RFC3339, req.ReleaseDate)
	if err != nil {
		return nil, fmt.Errorf("release date %s: %w", req.ReleaseDate, ErrValidation)
	}
	if !start.Before(end) {
		return nil, fmt.Errorf("start must be before end: %w", ErrValidation)
	}

	castID, categoryID, locationID, movieTypeID, seatTypeID, err := s.parseShowingRefs(req)
	if err != nil {
		return nil, err
	}

	if err := s.checkShowingRefs(ctx, castID, categoryID, locationID, movieTypeID, seatTypeID); err != nil {
		return nil, err
	}

	// "Run multiple films at the same time" is only allowed across
	// different locations; one screen shows one film at a time.
	overlapping, err := s.repo.Showing.ExistsOverlapping(ctx, locationID, start, end)
	if err != nil {
		return nil, fmt.Errorf("check overlap: %w", err)
	}
	if overlapping {
		return nil, fmt.Errorf("location %s already has a showing between %s and %s: %w",
			locationID.String(), start.Format(time.RFC3339), end.Format(time.RFC3339), ErrConflict)
	}

	totalSeats, err := s.repo.Seat.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count seat layout: %w", err)
	}
	if req.TotalSeat > totalSeats {
		return nil, fmt.Errorf("total_seat %d exceeds configured layout of %d seats: %w",
			req.TotalSeat, totalSeats, ErrValidation)
	}

	now := time.Now()
	showing := &entity.Showing{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Description: req.Description,
		About:       req.About,
		Image:       req.Image,
		Start:       start,
		End:         end,
		ReleaseDate: releaseDate,
		IsPromoted:  req.IsPromoted,
		BasePrice:   req.BasePrice,
		TotalSeat:   req.TotalSeat,
		CastID:      castID,
		CategoryID:  categoryID,
		LocationID:  locationID,
		MovieTypeID: movieTypeID,
		SeatTypeID:  seatTypeID,
	}

	if err := s.repo.Showing.Create(ctx, showing); err != nil {
		s.log.Error("Failed to create showing",
			zap.Error(err),
			zap.String("title", req.Title),
		)
		return nil, fmt.Errorf("create showing: %w", err)
	}

	s.log.Info("Showing created",
		zap.String("showing_id", showing.ID.String()),
		zap.String("title", showing.Title),
		zap.String("location_id", locationID.String()),
		zap.Time("start", start),
		zap.Time("end", end),
	)

	resp := response.ShowingToResponse(showing, 0, now)
	return &resp, nil
}

func (s *showingService) buildFilter(req *request.ListShowingsRequest) (*repository.ShowingFilter, error) {
	filter := &repository.ShowingFilter{OnlyAvailable: req.OnlyAvailable}

	if req.MovieTypeID != "" {
		id, err := uuid.Parse(req.MovieTypeID)
		if err != nil {
			return nil, fmt.Errorf("movie type filter %s: %w", req.MovieTypeID, ErrValidation)
		}
		filter.MovieTypeID = &id
	}
	if req.LocationID != "" {
		id, err := uuid.Parse(req.LocationID)
		if err != nil {
			return nil, fmt.Errorf("location filter %s: %w", req.LocationID, ErrValidation)
		}
		filter.LocationID = &id
	}

	from, err := utils.ParseTime(req.From)
	if err != nil {
		return nil, fmt.Errorf("from filter %s: %w", req.From, ErrValidation)
	}
	filter.StartFrom = from

	to, err := utils.ParseTime(req.To)
	if err != nil {
		return nil, fmt.Errorf("to filter %s: %w", req.To, ErrValidation)
	}
	filter.StartTo = to

	return filter, nil
}

func (s *showingService) parseShowingRefs(req *request.CreateShowingRequest) (castID, categoryID, locationID, movieTypeID, seatTypeID uuid.UUID, err error) {
	if castID, err = uuid.Parse(req.CastID); err != nil {
		err = fmt.Errorf("cast ID %s: %w", req.CastID, ErrValidation)
		return
	}
	if categoryID, err = uuid.Parse(req.CategoryID); err != nil {
		err = fmt.Errorf("category ID %s: %w", req.CategoryID, ErrValidation)
		return
	}
	if locationID, err = uuid.Parse(req.LocationID); err != nil {
		err = fmt.Errorf("location ID %s: %w", req.LocationID, ErrValidation)
		return
	}
	if movieTypeID, err = uuid.Parse(req.MovieTypeID); err != nil {
		err = fmt.Errorf("movie type ID %s: %w", req.MovieTypeID, ErrValidation)
		return
	}
	if seatTypeID, err = uuid.Parse(req.SeatTypeID); err != nil {
		err = fmt.Errorf("seat type ID %s: %w", req.SeatTypeID, ErrValidation)
	}
	return
}

func (s *showingService) checkShowingRefs(ctx context.Context, castID, categoryID, locationID, movieTypeID, seatTypeID uuid.UUID) error {
	cast, err := s.repo.Cast.FindByID(ctx, castID)
	if err != nil {
		return fmt.Errorf("find cast: %w", err)
	}
	if cast == nil {
		return fmt.Errorf("cast %s: %w", castID.String(), ErrNotFound)
	}

	category, err := s.repo.Category.FindByID(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("find category: %w", err)
	}
	if category == nil {
		return fmt.Errorf("category %s: %w", categoryID.String(), ErrNotFound)
	}

	location, err := s.repo.Location.FindByID(ctx, locationID)
	if err != nil {
		return fmt.Errorf("find location: %w", err)
	}
	if location == nil {
		return fmt.Errorf("location %s: %w", locationID.String(), ErrNotFound)
	}

	movieType, err := s.repo.Type.FindByID(ctx, movieTypeID)
	if err != nil {
		return fmt.Errorf("find movie type: %w", err)
	}
	if movieType == nil {
		return fmt.Errorf("movie type %s: %w", movieTypeID.String(), ErrNotFound)
	}

	seatType, err := s.repo.SeatType.FindByID(ctx, seatTypeID)
	if err != nil {
		return fmt.Errorf("find seat type: %w", err)
	}
	if seatType == nil {
		return fmt.Errorf("seat type %s: %w", seatTypeID.String(), ErrNotFound)
	}

	return nil
}
