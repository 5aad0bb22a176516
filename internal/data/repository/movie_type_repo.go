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

type MovieTypeRepository interface {
	Create(ctx context.Context, movieType *entity.MovieType) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MovieType, error)
	FindBySlug(ctx context.Context, slug string) (*entity.MovieType, error)
	FindAll(ctx context.Context) ([]*entity.MovieType, error)
	Delete(ctx context.Context, q database.Queryer, id uuid.UUID) error
}

type movieTypeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieTypeRepository(db database.PgxIface, log *zap.Logger) MovieTypeRepository {
	return &movieTypeRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie_type")),
	}
}

func (r *movieTypeRepository) Create(ctx context.Context, movieType *entity.MovieType) error {
	query := `
		INSERT INTO movie_types (id, name, slug, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		movieType.ID,
		movieType.Name,
		movieType.Slug,
		movieType.CreatedAt,
		movieType.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("movie type slug %s: %w", movieType.Slug, ErrDuplicate)
		}
		r.log.Error("Failed to create movie type",
			zap.Error(err),
			zap.String("slug", movieType.Slug),
		)
		return fmt.Errorf("create movie type %s: %w", movieType.Slug, err)
	}

	return nil
}

func (r *movieTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MovieType, error) {
	query := `
		SELECT id, name, slug, created_at, updated_at
		FROM movie_types
		WHERE id = $1
	`

	var movieType entity.MovieType
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movieType.ID,
		&movieType.Name,
		&movieType.Slug,
		&movieType.CreatedAt,
		&movieType.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie type by ID",
			zap.Error(err),
			zap.String("movie_type_id", id.String()),
		)
		return nil, fmt.Errorf("find movie type by ID %s: %w", id.String(), err)
	}

	return &movieType, nil
}

func (r *movieTypeRepository) FindBySlug(ctx context.Context, slug string) (*entity.MovieType, error) {
	query := `
		SELECT id, name, slug, created_at, updated_at
		FROM movie_types
		WHERE slug = $1
	`

	var movieType entity.MovieType
	err := r.db.QueryRow(ctx, query, slug).Scan(
		&movieType.ID,
		&movieType.Name,
		&movieType.Slug,
		&movieType.CreatedAt,
		&movieType.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie type by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find movie type by slug %s: %w", slug, err)
	}

	return &movieType, nil
}

func (r *movieTypeRepository) FindAll(ctx context.Context) ([]*entity.MovieType, error) {
	query := `
		SELECT id, name, slug, created_at, updated_at
		FROM movie_types
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find movie types", zap.Error(err))
		return nil, fmt.Errorf("find movie types: %w", err)
	}
	defer rows.Close()

	var movieTypes []*entity.MovieType
	for rows.Next() {
		var movieType entity.MovieType
		err := rows.Scan(
			&movieType.ID,
			&movieType.Name,
			&movieType.Slug,
			&movieType.CreatedAt,
			&movieType.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan movie type row", zap.Error(err))
			return nil, fmt.Errorf("scan movie type row: %w", err)
		}
		movieTypes = append(movieTypes, &movieType)
	}

	return movieTypes, nil
}

func (r *movieTypeRepository) Delete(ctx context.Context, q database.Queryer, id uuid.UUID) error {
	query := `DELETE FROM movie_types WHERE id = $1`

	result, err := q.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete movie type",
			zap.Error(err),
			zap.String("movie_type_id", id.String()),
		)
		return fmt.Errorf("delete movie type %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie type %s not found", id.String())
	}

	return nil
}
