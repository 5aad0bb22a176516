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

type SeatTypeRepository interface {
	Create(ctx context.Context, seatType *entity.SeatType) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SeatType, error)
	FindByIDs(ctx context.Context, q database.Queryer, ids []uuid.UUID) ([]*entity.SeatType, error)
	FindAll(ctx context.Context) ([]*entity.SeatType, error)
	ClearSeatRef(ctx context.Context, q database.Queryer, seatID uuid.UUID) error
	Delete(ctx context.Context, q database.Queryer, id uuid.UUID) error
}

type seatTypeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeatTypeRepository(db database.PgxIface, log *zap.Logger) SeatTypeRepository {
	return &seatTypeRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat_type")),
	}
}

func (r *seatTypeRepository) Create(ctx context.Context, seatType *entity.SeatType) error {
	query := `
		INSERT INTO seat_types (id, type, discount, seat, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		seatType.ID,
		seatType.Label,
		seatType.Premium,
		seatType.SeatID,
		seatType.CreatedAt,
		seatType.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create seat type",
			zap.Error(err),
			zap.String("label", seatType.Label),
		)
		return fmt.Errorf("create seat type %s: %w", seatType.Label, err)
	}

	return nil
}

func (r *seatTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SeatType, error) {
	query := `
		SELECT id, type, discount, seat, created_at, updated_at
		FROM seat_types
		WHERE id = $1
	`

	var seatType entity.SeatType
	err := r.db.QueryRow(ctx, query, id).Scan(
		&seatType.ID,
		&seatType.Label,
		&seatType.Premium,
		&seatType.SeatID,
		&seatType.CreatedAt,
		&seatType.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find seat type by ID",
			zap.Error(err),
			zap.String("seat_type_id", id.String()),
		)
		return nil, fmt.Errorf("find seat type by ID %s: %w", id.String(), err)
	}

	return &seatType, nil
}

func (r *seatTypeRepository) FindByIDs(ctx context.Context, q database.Queryer, ids []uuid.UUID) ([]*entity.SeatType, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, type, discount, seat, created_at, updated_at
		FROM seat_types
		WHERE id = ANY($1)
	`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to find seat types by IDs",
			zap.Error(err),
			zap.Int("count", len(ids)),
		)
		return nil, fmt.Errorf("find seat types by IDs: %w", err)
	}
	defer rows.Close()

	return scanSeatTypes(rows)
}

func (r *seatTypeRepository) FindAll(ctx context.Context) ([]*entity.SeatType, error) {
	query := `
		SELECT id, type, discount, seat, created_at, updated_at
		FROM seat_types
		ORDER BY type
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find seat types", zap.Error(err))
		return nil, fmt.Errorf("find seat types: %w", err)
	}
	defer rows.Close()

	return scanSeatTypes(rows)
}

// ClearSeatRef nulls the legacy back-reference before a seat is removed.
func (r *seatTypeRepository) ClearSeatRef(ctx context.Context, q database.Queryer, seatID uuid.UUID) error {
	query := `UPDATE seat_types SET seat = NULL, updated_at = NOW() WHERE seat = $1`

	if _, err := q.Exec(ctx, query, seatID); err != nil {
		r.log.Error("Failed to clear seat reference",
			zap.Error(err),
			zap.String("seat_id", seatID.String()),
		)
		return fmt.Errorf("clear seat reference %s: %w", seatID.String(), err)
	}

	return nil
}

func (r *seatTypeRepository) Delete(ctx context.Context, q database.Queryer, id uuid.UUID) error {
	query := `DELETE FROM seat_types WHERE id = $1`

	result, err := q.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete seat type",
			zap.Error(err),
			zap.String("seat_type_id", id.String()),
		)
		return fmt.Errorf("delete seat type %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("seat type %s not found", id.String())
	}

	return nil
}

func scanSeatTypes(rows pgx.Rows) ([]*entity.SeatType, error) {
	var seatTypes []*entity.SeatType
	for rows.Next() {
		var seatType entity.SeatType
		err := rows.Scan(
			&seatType.ID,
			&seatType.Label,
			&seatType.Premium,
			&seatType.SeatID,
			&seatType.CreatedAt,
			&seatType.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan seat type row: %w", err)
		}
		seatTypes = append(seatTypes, &seatType)
	}

	return seatTypes, nil
}
