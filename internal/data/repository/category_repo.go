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

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.MovieCategory) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MovieCategory, error)
	FindBySlug(ctx context.Context, slug string) (*entity.MovieCategory, error)
	FindAll(ctx context.Context) ([]*entity.MovieCategory, error)
	Delete(ctx context.Context, q database.Queryer, id uuid.UUID) error
}

type categoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCategoryRepository(db database.PgxIface, log *zap.Logger) CategoryRepository {
	return &categoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "category")),
	}
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.MovieCategory) error {
	query := `
		INSERT INTO movie_categories (id, title, slug, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		category.ID,
		category.Title,
		category.Slug,
		category.CreatedAt,
		category.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("category slug %s: %w", category.Slug, ErrDuplicate)
		}
		r.log.Error("Failed to create category",
			zap.Error(err),
			zap.String("slug", category.Slug),
		)
		return fmt.Errorf("create category %s: %w", category.Slug, err)
	}

	return nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MovieCategory, error) {
	query := `
		SELECT id, title, slug, created_at, updated_at
		FROM movie_categories
		WHERE id = $1
	`

	var category entity.MovieCategory
	err := r.db.QueryRow(ctx, query, id).Scan(
		&category.ID,
		&category.Title,
		&category.Slug,
		&category.CreatedAt,
		&category.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find category by ID",
			zap.Error(err),
			zap.String("category_id", id.String()),
		)
		return nil, fmt.Errorf("find category by ID %s: %w", id.String(), err)
	}

	return &category, nil
}

func (r *categoryRepository) FindBySlug(ctx context.Context, slug string) (*entity.MovieCategory, error) {
	query := `
		SELECT id, title, slug, created_at, updated_at
		FROM movie_categories
		WHERE slug = $1
	`

	var category entity.MovieCategory
	err := r.db.QueryRow(ctx, query, slug).Scan(
		&category.ID,
		&category.Title,
		&category.Slug,
		&category.CreatedAt,
		&category.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find category by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find category by slug %s: %w", slug, err)
	}

	return &category, nil
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]*entity.MovieCategory, error) {
	query := `
		SELECT id, title, slug, created_at, updated_at
		FROM movie_categories
		ORDER BY title
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find categories", zap.Error(err))
		return nil, fmt.Errorf("find categories: %w", err)
	}
	defer rows.Close()

	var categories []*entity.MovieCategory
	for rows.Next() {
		var category entity.MovieCategory
		err := rows.Scan(
			&category.ID,
			&category.Title,
			&category.Slug,
			&category.CreatedAt,
			&category.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan category row", zap.Error(err))
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, &category)
	}

	return categories, nil
}

func (r *categoryRepository) Delete(ctx context.Context, q database.Queryer, id uuid.UUID) error {
	query := `DELETE FROM movie_categories WHERE id = $1`

	result, err := q.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete category",
			zap.Error(err),
			zap.String("category_id", id.String()),
		)
		return fmt.Errorf("delete category %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("category %s not found", id.String())
	}

	return nil
}
