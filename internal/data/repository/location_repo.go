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

type LocationRepository interface {
	Create(ctx context.Context, location *entity.Location) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Location, error)
	FindAll(ctx context.Context) ([]*entity.Location, error)
	Delete(ctx context.Context, q database.Queryer, id uuid.UUID) error
}

type locationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLocationRepository(db database.PgxIface, log *zap.Logger) LocationRepository {
	return &locationRepository{
		db:  db,
		log: log.With(zap.String("repository", "location")),
	}
}

func (r *locationRepository) Create(ctx context.Context, location *entity.Location) error {
	query := `
		INSERT INTO locations (id, name, slug, short_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		location.ID,
		location.Name,
		location.Slug,
		location.ShortName,
		location.CreatedAt,
		location.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("location slug %s: %w", location.Slug, ErrDuplicate)
		}
		r.log.Error("Failed to create location",
			zap.Error(err),
			zap.String("slug", location.Slug),
		)
		return fmt.Errorf("create location %s: %w", location.Slug, err)
	}

	return nil
}

func (r *locationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	query := `
		SELECT id, name, slug, short_name, created_at, updated_at
		FROM locations
		WHERE id = $1
	`

	var location entity.Location
	err := r.db.QueryRow(ctx, query, id).Scan(
		&location.ID,
		&location.Name,
		&location.Slug,
		&location.ShortName,
		&location.CreatedAt,
		&location.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find location by ID",
			zap.Error(err),
			zap.String("location_id", id.String()),
		)
		return nil, fmt.Errorf("find location by ID %s: %w", id.String(), err)
	}

	return &location, nil
}

func (r *locationRepository) FindBySlug(ctx context.Context, slug string) (*entity.Location, error) {
	query := `
		SELECT id, name, slug, short_name, created_at, updated_at
		FROM locations
		WHERE slug = $1
	`

	var location entity.Location
	err := r.db.QueryRow(ctx, query, slug).Scan(
		&location.ID,
		&location.Name,
		&location.Slug,
		&location.ShortName,
		&location.CreatedAt,
		&location.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find location by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find location by slug %s: %w", slug, err)
	}

	return &location, nil
}

func (r *locationRepository) FindAll(ctx context.Context) ([]*entity.Location, error) {
	query := `
		SELECT id, name, slug, short_name, created_at, updated_at
		FROM locations
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find locations", zap.Error(err))
		return nil, fmt.Errorf("find locations: %w", err)
	}
	defer rows.Close()

	var locations []*entity.Location
	for rows.Next() {
		var location entity.Location
		err := rows.Scan(
			&location.ID,
			&location.Name,
			&location.Slug,
			&location.ShortName,
			&location.CreatedAt,
			&location.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan location row", zap.Error(err))
			return nil, fmt.Errorf("scan location row: %w", err)
		}
		locations = append(locations, &location)
	}

	return locations, nil
}

func (r *locationRepository) Delete(ctx context.Context, q database.Queryer, id uuid.UUID) error {
	query := `DELETE FROM locations WHERE id = $1`

	result, err := q.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete location",
			zap.Error(err),
			zap.String("location_id", id.String()),
		)
		return fmt.Errorf("delete location %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("location %s not found", id.String())
	}

	return nil
}
