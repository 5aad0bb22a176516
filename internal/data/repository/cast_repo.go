package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"cinema-showings/internal/data/entity"
	"cinema-showings/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CastRepository interface {
	Create(ctx context.Context, cast *entity.Cast) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Cast, error)
	FindAll(ctx context.Context) ([]*entity.Cast, error)
	Delete(ctx context.Context, q database.Queryer, id uuid.UUID) error
}

type castRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCastRepository(db database.PgxIface, log *zap.Logger) CastRepository {
	return &castRepository{
		db:  db,
		log: log.With(zap.String("repository", "cast")),
	}
}

func (r *castRepository) Create(ctx context.Context, cast *entity.Cast) error {
	query := `
		INSERT INTO casts (id, name, title, position, tags, dob, bio, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	tags, err := json.Marshal(cast.Tags)
	if err != nil {
		return fmt.Errorf("marshal cast tags: %w", err)
	}

	_, err = r.db.Exec(ctx, query,
		cast.ID,
		cast.Name,
		cast.Title,
		cast.Position,
		tags,
		cast.DOB,
		cast.Bio,
		cast.CreatedAt,
		cast.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create cast",
			zap.Error(err),
			zap.String("name", cast.Name),
		)
		return fmt.Errorf("create cast %s: %w", cast.Name, err)
	}

	return nil
}

func (r *castRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Cast, error) {
	query := `
		SELECT id, name, title, position, tags, dob, bio, created_at, updated_at
		FROM casts
		WHERE id = $1
	`

	cast, err := scanCast(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find cast by ID",
			zap.Error(err),
			zap.String("cast_id", id.String()),
		)
		return nil, fmt.Errorf("find cast by ID %s: %w", id.String(), err)
	}

	return cast, nil
}

func (r *castRepository) FindAll(ctx context.Context) ([]*entity.Cast, error) {
	query := `
		SELECT id, name, title, position, tags, dob, bio, created_at, updated_at
		FROM casts
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find casts", zap.Error(err))
		return nil, fmt.Errorf("find casts: %w", err)
	}
	defer rows.Close()

	var casts []*entity.Cast
	for rows.Next() {
		cast, err := scanCast(rows)
		if err != nil {
			r.log.Error("Failed to scan cast row", zap.Error(err))
			return nil, fmt.Errorf("scan cast row: %w", err)
		}
		casts = append(casts, cast)
	}

	return casts, nil
}

func (r *castRepository) Delete(ctx context.Context, q database.Queryer, id uuid.UUID) error {
	query := `DELETE FROM casts WHERE id = $1`

	result, err := q.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete cast",
			zap.Error(err),
			zap.String("cast_id", id.String()),
		)
		return fmt.Errorf("delete cast %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("cast %s not found", id.String())
	}

	return nil
}

func scanCast(row pgx.Row) (*entity.Cast, error) {
	var cast entity.Cast
	var tags []byte

	err := row.Scan(
		&cast.ID,
		&cast.Name,
		&cast.Title,
		&cast.Position,
		&tags,
		&cast.DOB,
		&cast.Bio,
		&cast.CreatedAt,
		&cast.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &cast.Tags); err != nil {
			return nil, fmt.Errorf("unmarshal cast tags: %w", err)
		}
	}

	return &cast, nil
}
