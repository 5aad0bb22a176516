package usecase

import (
	"context"
	"errors"
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

type BookingService interface {
	// Public endpoints
	BookSeats(ctx context.Context, req *request.BookSeatsRequest) (*response.BookingResponse, error)
	ComputePrice(ctx context.Context, showingID string, req *request.PriceQuoteRequest) (*response.PriceQuoteResponse, error)
	GetBooking(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error)
	CancelBooking(ctx context.Context, bookingID string) error
}

type bookingService struct {
	db     database.PgxIface
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewBookingService(db database.PgxIface, repo *repository.Repository, config *utils.Config, log *zap.Logger) BookingService {
	return &bookingService{
		db:     db,
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "booking")),
	}
}

// BookSeats reserves all requested seats, or none of them. One transaction
// covers the showing row lock, the availability check, the inserts, and the
// fully-booked recompute; the unique index on (movie, seat) settles any
// race the pre-check misses.
func (s *bookingService) BookSeats(ctx context.Context, req *request.BookSeatsRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Book seats validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	showingID, err := uuid.Parse(req.ShowingID)
	if err != nil {
		return nil, fmt.Errorf("showing ID %s: %w", req.ShowingID, ErrValidation)
	}

	seatIDs, err := parseSeatIDs(req.SeatIDs)
	if err != nil {
		return nil, err
	}

	if max := s.config.Booking.MaxSeatsPerBooking; max > 0 && len(seatIDs) > max {
		return nil, fmt.Errorf("at most %d seats per booking: %w", max, ErrValidation)
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		s.log.Error("Failed to begin booking transaction", zap.Error(err))
		return nil, fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	showing, err := s.repo.Showing.FindByIDForUpdate(ctx, tx, showingID)
	if err != nil {
		return nil, fmt.Errorf("lock showing: %w", err)
	}
	if showing == nil {
		return nil, fmt.Errorf("showing %s: %w", req.ShowingID, ErrNotFound)
	}

	now := time.Now()
	if showing.ClosedForBooking(now) {
		return nil, fmt.Errorf("showing %s started at %s: %w",
			req.ShowingID, showing.Start.Format(time.RFC3339), ErrShowingClosed)
	}

	// All requested seats must exist in the configured layout.
	seats, err := s.repo.Seat.FindByIDs(ctx, tx, seatIDs)
	if err != nil {
		return nil, fmt.Errorf("load seats: %w", err)
	}
	if len(seats) != len(seatIDs) {
		return nil, fmt.Errorf("unknown seat in request: %w", ErrNotFound)
	}

	bookedIDs, err := s.repo.Booking.BookedSeatIDsByShowing(ctx, tx, showingID)
	if err != nil {
		return nil, fmt.Errorf("load booked seats: %w", err)
	}

	booked := make(map[uuid.UUID]bool, len(bookedIDs))
	for _, id := range bookedIDs {
		booked[id] = true
	}
	for _, id := range seatIDs {
		if booked[id] {
			return nil, fmt.Errorf("seat %s already booked: %w", id.String(), ErrSeatUnavailable)
		}
	}

	if len(bookedIDs)+len(seatIDs) > showing.TotalSeat {
		return nil, fmt.Errorf("only %d seats remaining: %w",
			showing.TotalSeat-len(bookedIDs), ErrSeatUnavailable)
	}

	bookings := make([]*entity.Booking, len(seats))
	for i, seat := range seats {
		bookings[i] = &entity.Booking{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Time:          now,
			NumberOfSeats: 1,
			ShowingID:     showingID,
			SeatID:        seat.ID,
			Description:   req.Description,
		}
	}

	if err := s.repo.Booking.CreateBatch(ctx, tx, bookings); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Lost the race to a concurrent purchase.
			return nil, fmt.Errorf("%w: %s", ErrSeatUnavailable, err.Error())
		}
		s.log.Error("Failed to create bookings",
			zap.Error(err),
			zap.String("showing_id", req.ShowingID),
		)
		return nil, fmt.Errorf("create bookings: %w", err)
	}

	// Recompute the cached projection from the row count.
	count, err := s.repo.Booking.CountByShowing(ctx, tx, showingID)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}
	if err := s.repo.Showing.SetFullyBooked(ctx, tx, showingID, count >= showing.TotalSeat); err != nil {
		return nil, fmt.Errorf("update fully-booked flag: %w", err)
	}

	prices, total, err := s.priceSeats(ctx, tx, showing, seats)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit booking transaction", zap.Error(err))
		return nil, fmt.Errorf("commit booking transaction: %w", err)
	}

	reference := utils.GenerateBookingReference()

	s.log.Info("Seats booked",
		zap.String("reference", reference),
		zap.String("showing_id", req.ShowingID),
		zap.Int("seat_count", len(seats)),
		zap.Float64("total_price", total),
		zap.Bool("fully_booked", count >= showing.TotalSeat),
	)

	bookedSeats := make([]response.BookedSeat, len(seats))
	for i, seat := range seats {
		bookedSeats[i] = response.BookedSeat{
			BookingID: bookings[i].ID.String(),
			SeatID:    seat.ID.String(),
			Position:  seat.Position,
			Price:     prices[seat.ID],
		}
	}

	return &response.BookingResponse{
		Reference:  reference,
		ShowingID:  showing.ID.String(),
		Title:      showing.Title,
		Start:      showing.Start,
		Seats:      bookedSeats,
		TotalPrice: total,
		BookedAt:   now,
	}, nil
}

// ComputePrice is a pure read: same inputs, same total, regardless of how
// many bookings exist.
func (s *bookingService) ComputePrice(ctx context.Context, showingID string, req *request.PriceQuoteRequest) (*response.PriceQuoteResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(showingID)
	if err != nil {
		return nil, fmt.Errorf("showing ID %s: %w", showingID, ErrValidation)
	}

	seatIDs, err := parseSeatIDs(req.SeatIDs)
	if err != nil {
		return nil, err
	}

	showing, err := s.repo.Showing.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find showing: %w", err)
	}
	if showing == nil {
		return nil, fmt.Errorf("showing %s: %w", showingID, ErrNotFound)
	}

	seats, err := s.repo.Seat.FindByIDs(ctx, s.db, seatIDs)
	if err != nil {
		return nil, fmt.Errorf("load seats: %w", err)
	}
	if len(seats) != len(seatIDs) {
		return nil, fmt.Errorf("unknown seat in request: %w", ErrNotFound)
	}

	seatTypes, err := s.seatTypesFor(ctx, s.db, seats)
	if err != nil {
		return nil, err
	}

	quote := &response.PriceQuoteResponse{
		ShowingID: showing.ID.String(),
		BasePrice: showing.BasePrice,
		Seats:     make([]response.SeatPrice, len(seats)),
	}

	for i, seat := range seats {
		seatType := seatTypes[seat.SeatTypeID]
		price := showing.EffectiveSeatPrice(seatType)
		quote.Seats[i] = response.SeatPrice{
			SeatID:   seat.ID.String(),
			Position: seat.Position,
			SeatType: seatType.Label,
			Premium:  seatType.Premium,
			Price:    price,
		}
		quote.Total += price
	}

	return quote, nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("booking ID %s: %w", bookingID, ErrValidation)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID, ErrNotFound)
	}

	// The ticket tells the holder where they sit.
	var position string
	seat, err := s.repo.Seat.FindByID(ctx, booking.SeatID)
	if err != nil {
		return nil, fmt.Errorf("find seat: %w", err)
	}
	if seat != nil {
		position = seat.Position
	}

	resp := response.BookingToDetailResponse(booking, position)
	return &resp, nil
}

// CancelBooking removes the booking and recomputes the showing's
// fully-booked projection in the same transaction.
func (s *bookingService) CancelBooking(ctx context.Context, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("booking ID %s: %w", bookingID, ErrValidation)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return fmt.Errorf("booking %s: %w", bookingID, ErrNotFound)
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		s.log.Error("Failed to begin cancel transaction", zap.Error(err))
		return fmt.Errorf("begin cancel transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	showing, err := s.repo.Showing.FindByIDForUpdate(ctx, tx, booking.ShowingID)
	if err != nil {
		return fmt.Errorf("lock showing: %w", err)
	}
	if showing == nil {
		return fmt.Errorf("showing %s: %w", booking.ShowingID.String(), ErrNotFound)
	}

	if err := s.repo.Booking.Delete(ctx, tx, id); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	count, err := s.repo.Booking.CountByShowing(ctx, tx, booking.ShowingID)
	if err != nil {
		return fmt.Errorf("count bookings: %w", err)
	}
	if err := s.repo.Showing.SetFullyBooked(ctx, tx, booking.ShowingID, count >= showing.TotalSeat); err != nil {
		return fmt.Errorf("update fully-booked flag: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit cancel transaction", zap.Error(err))
		return fmt.Errorf("commit cancel transaction: %w", err)
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("showing_id", booking.ShowingID.String()),
	)

	return nil
}

// ==================== HELPER METHODS ====================

func (s *bookingService) priceSeats(ctx context.Context, q database.Queryer, showing *entity.Showing, seats []*entity.Seat) (map[uuid.UUID]float64, float64, error) {
	seatTypes, err := s.seatTypesFor(ctx, q, seats)
	if err != nil {
		return nil, 0, err
	}

	prices := make(map[uuid.UUID]float64, len(seats))
	var total float64
	for _, seat := range seats {
		price := showing.EffectiveSeatPrice(seatTypes[seat.SeatTypeID])
		prices[seat.ID] = price
		total += price
	}

	return prices, total, nil
}

func (s *bookingService) seatTypesFor(ctx context.Context, q database.Queryer, seats []*entity.Seat) (map[uuid.UUID]*entity.SeatType, error) {
	seen := make(map[uuid.UUID]bool, len(seats))
	var typeIDs []uuid.UUID
	for _, seat := range seats {
		if !seen[seat.SeatTypeID] {
			seen[seat.SeatTypeID] = true
			typeIDs = append(typeIDs, seat.SeatTypeID)
		}
	}

	seatTypes, err := s.repo.SeatType.FindByIDs(ctx, q, typeIDs)
	if err != nil {
		return nil, fmt.Errorf("load seat types: %w", err)
	}

	byID := make(map[uuid.UUID]*entity.SeatType, len(seatTypes))
	for _, seatType := range seatTypes {
		byID[seatType.ID] = seatType
	}

	for _, seat := range seats {
		if byID[seat.SeatTypeID] == nil {
			return nil, fmt.Errorf("seat type %s for seat %s: %w",
				seat.SeatTypeID.String(), seat.ID.String(), ErrNotFound)
		}
	}

	return byID, nil
}

func parseSeatIDs(raw []string) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]bool, len(raw))
	seatIDs := make([]uuid.UUID, 0, len(raw))

	for _, seatIDStr := range raw {
		seatID, err := uuid.Parse(seatIDStr)
		if err != nil {
			return nil, fmt.Errorf("seat ID %s: %w", seatIDStr, ErrValidation)
		}
		if seen[seatID] {
			return nil, fmt.Errorf("seat %s requested twice: %w", seatIDStr, ErrValidation)
		}
		seen[seatID] = true
		seatIDs = append(seatIDs, seatID)
	}

	return seatIDs, nil
}
