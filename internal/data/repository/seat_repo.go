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

type SeatRepository interface {
	Create(ctx context.Context, seat *entity.Seat) error
	CreateBatch(ctx context.Context, seats []*entity.Seat) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Seat, error)
	FindByIDs(ctx context.Context, q database.Queryer, ids []uuid.UUID) ([]*entity.Seat, error)
	FindAll(ctx context.Context) ([]*entity.Seat, error)
	Count(ctx context.Context) (int, error)
	IDsBySeatType(ctx context.Context, q database.Queryer, seatTypeID uuid.UUID) ([]uuid.UUID, error)
	Delete(ctx context.Context, q database.Queryer, id uuid.UUID) error
	DeleteByIDs(ctx context.Context, q database.Queryer, ids []uuid.UUID) error
}

type seatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeatRepository(db database.PgxIface, log *zap.Logger) SeatRepository {
	return &seatRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat")),
	}
}

func (r *seatRepository) Create(ctx context.Context, seat *entity.Seat) error {
	query := `
		INSERT INTO seats (id, position, type, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		seat.ID,
		seat.Position,
		seat.SeatTypeID,
		seat.Description,
		seat.CreatedAt,
		seat.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create seat",
			zap.Error(err),
			zap.String("position", seat.Position),
		)
		return fmt.Errorf("create seat %s: %w", seat.Position, err)
	}

	return nil
}

func (r *seatRepository) CreateBatch(ctx context.Context, seats []*entity.Seat) error {
	if len(seats) == 0 {
		return nil
	}

	for _, seat := range seats {
		if err := r.Create(ctx, seat); err != nil {
			return err
		}
	}

	return nil
}

func (r *seatRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seat, error) {
	query := `
		SELECT id, position, type, description, created_at, updated_at
		FROM seats
		WHERE id = $1
	`

	var seat entity.Seat
	err := r.db.QueryRow(ctx, query, id).Scan(
		&seat.ID,
		&seat.Position,
		&seat.SeatTypeID,
		&seat.Description,
		&seat.CreatedAt,
		&seat.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find seat by ID",
			zap.Error(err),
			zap.String("seat_id", id.String()),
		)
		return nil, fmt.Errorf("find seat by ID %s: %w", id.String(), err)
	}

	return &seat, nil
}

func (r *seatRepository) FindByIDs(ctx context.Context, q database.Queryer, ids []uuid.UUID) ([]*entity.Seat, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, position, type, description, created_at, updated_at
		FROM seats
		WHERE id = ANY($1)
		ORDER BY position
	`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to find seats by IDs",
			zap.Error(err),
			zap.Int("count", len(ids)),
		)
		return nil, fmt.Errorf("find seats by IDs: %w", err)
	}
	defer rows.Close()

	return scanSeats(rows)
}

func (r *seatRepository) FindAll(ctx context.Context) ([]*entity.Seat, error) {
	query := `
		SELECT id, position, type, description, created_at, updated_at
		FROM seats
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find seats", zap.Error(err))
		return nil, fmt.Errorf("find seats: %w", err)
	}
	defer rows.Close()

	return scanSeats(rows)
}

func (r *seatRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM seats`

	var count int
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count seats", zap.Error(err))
		return 0, fmt.Errorf("count seats: %w", err)
	}

	return count, nil
}

func (r *seatRepository) IDsBySeatType(ctx context.Context, q database.Queryer, seatTypeID uuid.UUID) ([]uuid.UUID, error) {
	query := `SELECT id FROM seats WHERE type = $1`

	rows, err := q.Query(ctx, query, seatTypeID)
	if err != nil {
		r.log.Error("Failed to find seat IDs by seat type",
			zap.Error(err),
			zap.String("seat_type_id", seatTypeID.String()),
		)
		return nil, fmt.Errorf("find seat IDs by seat type %s: %w", seatTypeID.String(), err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan seat ID row: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func (r *seatRepository) Delete(ctx context.Context, q database.Queryer, id uuid.UUID) error {
	query := `DELETE FROM seats WHERE id = $1`

	result, err := q.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete seat",
			zap.Error(err),
			zap.String("seat_id", id.String()),
		)
		return fmt.Errorf("delete seat %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("seat %s not found", id.String())
	}

	return nil
}

func (r *seatRepository) DeleteByIDs(ctx context.Context, q database.Queryer, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	query := `DELETE FROM seats WHERE id = ANY($1)`

	if _, err := q.Exec(ctx, query, ids); err != nil {
		r.log.Error("Failed to delete seats by IDs",
			zap.Error(err),
			zap.Int("count", len(ids)),
		)
		return fmt.Errorf("delete seats by IDs: %w", err)
	}

	return nil
}

func scanSeats(rows pgx.Rows) ([]*entity.Seat, error) {
	var seats []*entity.Seat
	for rows.Next() {
		var seat entity.Seat
		err := rows.Scan(
			&seat.ID,
			&seat.Position,
			&seat.SeatTypeID,
			&seat.Description,
			&seat.CreatedAt,
			&seat.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan seat row: %w", err)
		}
		seats = append(seats, &seat)
	}

	return seats, nil
}
