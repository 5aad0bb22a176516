package repository

import (
	"context"
	"fmt"

	"cinema-showings/internal/data/entity"
	"cinema-showings/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	CreateBatch(ctx context.Context, q database.Queryer, bookings []*entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByShowingID(ctx context.Context, showingID uuid.UUID) ([]*entity.Booking, error)
	BookedSeatIDsByShowing(ctx context.Context, q database.Queryer, showingID uuid.UUID) ([]uuid.UUID, error)
	CountByShowing(ctx context.Context, q database.Queryer, showingID uuid.UUID) (int, error)
	Delete(ctx context.Context, q database.Queryer, id uuid.UUID) error
	DeleteByShowingIDs(ctx context.Context, q database.Queryer, showingIDs []uuid.UUID) error
	DeleteBySeatIDs(ctx context.Context, q database.Queryer, seatIDs []uuid.UUID) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

// CreateBatch inserts one row per seat inside the caller's transaction.
// A unique violation on (movie, seat) means another purchase already took
// one of the seats; the whole batch fails with ErrDuplicate.
func (r *bookingRepository) CreateBatch(ctx context.Context, q database.Queryer, bookings []*entity.Booking) error {
	query := `
		INSERT INTO bookings (id, time, number_of_seats, movie, seat, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	for _, booking := range bookings {
		_, err := q.Exec(ctx, query,
			booking.ID,
			booking.Time,
			booking.NumberOfSeats,
			booking.ShowingID,
			booking.SeatID,
			booking.Description,
			booking.CreatedAt,
			booking.UpdatedAt,
		)

		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("seat %s for showing %s: %w",
					booking.SeatID.String(), booking.ShowingID.String(), ErrDuplicate)
			}
			r.log.Error("Failed to create booking",
				zap.Error(err),
				zap.String("showing_id", booking.ShowingID.String()),
				zap.String("seat_id", booking.SeatID.String()),
			)
			return fmt.Errorf("create booking for seat %s: %w", booking.SeatID.String(), err)
		}
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, time, number_of_seats, movie, seat, description, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.Time,
		&booking.NumberOfSeats,
		&booking.ShowingID,
		&booking.SeatID,
		&booking.Description,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindByShowingID(ctx context.Context, showingID uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT id, time, number_of_seats, movie, seat, description, created_at, updated_at
		FROM bookings
		WHERE movie = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, showingID)
	if err != nil {
		r.log.Error("Failed to find bookings by showing ID",
			zap.Error(err),
			zap.String("showing_id", showingID.String()),
		)
		return nil, fmt.Errorf("find bookings by showing ID %s: %w", showingID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.Time,
			&booking.NumberOfSeats,
			&booking.ShowingID,
			&booking.SeatID,
			&booking.Description,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}

func (r *bookingRepository) BookedSeatIDsByShowing(ctx context.Context, q database.Queryer, showingID uuid.UUID) ([]uuid.UUID, error) {
	query := `SELECT seat FROM bookings WHERE movie = $1`

	rows, err := q.Query(ctx, query, showingID)
	if err != nil {
		r.log.Error("Failed to find booked seats by showing",
			zap.Error(err),
			zap.String("showing_id", showingID.String()),
		)
		return nil, fmt.Errorf("find booked seats by showing %s: %w", showingID.String(), err)
	}
	defer rows.Close()

	var seatIDs []uuid.UUID
	for rows.Next() {
		var seatID uuid.UUID
		if err := rows.Scan(&seatID); err != nil {
			r.log.Error("Failed to scan seat ID row", zap.Error(err))
			return nil, fmt.Errorf("scan seat ID row: %w", err)
		}
		seatIDs = append(seatIDs, seatID)
	}

	return seatIDs, nil
}

func (r *bookingRepository) CountByShowing(ctx context.Context, q database.Queryer, showingID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE movie = $1`

	var count int
	err := q.QueryRow(ctx, query, showingID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by showing",
			zap.Error(err),
			zap.String("showing_id", showingID.String()),
		)
		return 0, fmt.Errorf("count bookings by showing %s: %w", showingID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) Delete(ctx context.Context, q database.Queryer, id uuid.UUID) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := q.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	return nil
}

func (r *bookingRepository) DeleteByShowingIDs(ctx context.Context, q database.Queryer, showingIDs []uuid.UUID) error {
	if len(showingIDs) == 0 {
		return nil
	}

	query := `DELETE FROM bookings WHERE movie = ANY($1)`

	if _, err := q.Exec(ctx, query, showingIDs); err != nil {
		r.log.Error("Failed to delete bookings by showing IDs",
			zap.Error(err),
			zap.Int("count", len(showingIDs)),
		)
		return fmt.Errorf("delete bookings by showing IDs: %w", err)
	}

	return nil
}

func (r *bookingRepository) DeleteBySeatIDs(ctx context.Context, q database.Queryer, seatIDs []uuid.UUID) error {
	if len(seatIDs) == 0 {
		return nil
	}

	query := `DELETE FROM bookings WHERE seat = ANY($1)`

	if _, err := q.Exec(ctx, query, seatIDs); err != nil {
		r.log.Error("Failed to delete bookings by seat IDs",
			zap.Error(err),
			zap.Int("count", len(seatIDs)),
		)
		return fmt.Errorf("delete bookings by seat IDs: %w", err)
	}

	return nil
}
