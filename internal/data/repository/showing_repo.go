package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cinema-showings/internal/data/entity"
	"cinema-showings/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ShowingFilter narrows the showing listing. Nil fields are ignored.
type ShowingFilter struct {
	MovieTypeID   *uuid.UUID
	LocationID    *uuid.UUID
	StartFrom     *time.Time
	StartTo       *time.Time
	OnlyAvailable bool
}

// ShowingListItem is a showing with its booked-seat count, produced by the
// listing query so seats-remaining never trusts the cached flag.
type ShowingListItem struct {
	entity.Showing
	BookedSeats int
}

func (s *ShowingListItem) SeatsRemaining() int {
	remaining := s.TotalSeat - s.BookedSeats
	if remaining < 0 {
		return 0
	}
	return remaining
}

type ShowingRepository interface {
	Create(ctx context.Context, showing *entity.Showing) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Showing, error)
	FindByIDForUpdate(ctx context.Context, q database.Queryer, id uuid.UUID) (*entity.Showing, error)
	List(ctx context.Context, filter ShowingFilter, limit, offset int) ([]*ShowingListItem, error)
	Count(ctx context.Context, filter ShowingFilter) (int64, error)
	ExistsOverlapping(ctx context.Context, locationID uuid.UUID, start, end time.Time) (bool, error)
	SetFullyBooked(ctx context.Context, q database.Queryer, id uuid.UUID, fullyBooked bool) error
	IDsByCast(ctx context.Context, q database.Queryer, castID uuid.UUID) ([]uuid.UUID, error)
	IDsByCategory(ctx context.Context, q database.Queryer, categoryID uuid.UUID) ([]uuid.UUID, error)
	IDsByLocation(ctx context.Context, q database.Queryer, locationID uuid.UUID) ([]uuid.UUID, error)
	IDsByMovieType(ctx context.Context, q database.Queryer, movieTypeID uuid.UUID) ([]uuid.UUID, error)
	IDsBySeatType(ctx context.Context, q database.Queryer, seatTypeID uuid.UUID) ([]uuid.UUID, error)
	DeleteByIDs(ctx context.Context, q database.Queryer, ids []uuid.UUID) error
}

type showingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowingRepository(db database.PgxIface, log *zap.Logger) ShowingRepository {
	return &showingRepository{
		db:  db,
		log: log.With(zap.String("repository", "showing")),
	}
}

const showingColumns = `id, title, description, about, reactions, image, start, "end", release_date,
		is_promoted, is_fully_booked, price, total_seat, cast_id, category_id, location_id, movie_type, seat_type,
		created_at, updated_at`

func (r *showingRepository) Create(ctx context.Context, showing *entity.Showing) error {
	query := `
		INSERT INTO movies (` + showingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`

	_, err := r.db.Exec(ctx, query,
		showing.ID,
		showing.Title,
		showing.Description,
		showing.About,
		showing.Reactions,
		showing.Image,
		showing.Start,
		showing.End,
		showing.ReleaseDate,
		showing.IsPromoted,
		showing.IsFullyBooked,
		showing.BasePrice,
		showing.TotalSeat,
		showing.CastID,
		showing.CategoryID,
		showing.LocationID,
		showing.MovieTypeID,
		showing.SeatTypeID,
		showing.CreatedAt,
		showing.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create showing",
			zap.Error(err),
			zap.String("title", showing.Title),
			zap.String("location_id", showing.LocationID.String()),
			zap.Time("start", showing.Start),
		)
		return fmt.Errorf("create showing %s: %w", showing.Title, err)
	}

	return nil
}

func (r *showingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Showing, error) {
	query := `SELECT ` + showingColumns + ` FROM movies WHERE id = $1`

	showing, err := scanShowing(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find showing by ID",
			zap.Error(err),
			zap.String("showing_id", id.String()),
		)
		return nil, fmt.Errorf("find showing by ID %s: %w", id.String(), err)
	}

	return showing, nil
}

func (r *showingRepository) FindByIDForUpdate(ctx context.Context, q database.Queryer, id uuid.UUID) (*entity.Showing, error) {
	// Row lock serializes concurrent bookings for the same showing.
	query := `SELECT ` + showingColumns + ` FROM movies WHERE id = $1 FOR UPDATE`

	showing, err := scanShowing(q.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to lock showing",
			zap.Error(err),
			zap.String("showing_id", id.String()),
		)
		return nil, fmt.Errorf("lock showing %s: %w", id.String(), err)
	}

	return showing, nil
}

// buildFilter renders the WHERE/HAVING clauses shared by List and Count.
func buildFilter(filter ShowingFilter, args []any) (where, having string, outArgs []any) {
	var conds []string
	outArgs = args

	if filter.MovieTypeID != nil {
		outArgs = append(outArgs, *filter.MovieTypeID)
		conds = append(conds, fmt.Sprintf("m.movie_type = $%d", len(outArgs)))
	}
	if filter.LocationID != nil {
		outArgs = append(outArgs, *filter.LocationID)
		conds = append(conds, fmt.Sprintf("m.location_id = $%d", len(outArgs)))
	}
	if filter.StartFrom != nil {
		outArgs = append(outArgs, *filter.StartFrom)
		conds = append(conds, fmt.Sprintf("m.start >= $%d", len(outArgs)))
	}
	if filter.StartTo != nil {
		outArgs = append(outArgs, *filter.StartTo)
		conds = append(conds, fmt.Sprintf("m.start <= $%d", len(outArgs)))
	}
	if filter.OnlyAvailable {
		conds = append(conds, "NOT m.is_fully_booked")
		having = "HAVING COUNT(b.id) < m.total_seat"
	}

	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	return where, having, outArgs
}

func (r *showingRepository) List(ctx context.Context, filter ShowingFilter, limit, offset int) ([]*ShowingListItem, error) {
	where, having, args := buildFilter(filter, nil)

	args = append(args, limit, offset)
	query := fmt.Sprintf(`
		SELECT m.id, m.title, m.description, m.about, m.reactions, m.image, m.start, m."end", m.release_date,
		       m.is_promoted, m.is_fully_booked, m.price, m.total_seat, m.cast_id, m.category_id, m.location_id,
		       m.movie_type, m.seat_type, m.created_at, m.updated_at,
		       COUNT(b.id) AS booked_seats
		FROM movies m
		LEFT JOIN bookings b ON b.movie = m.id
		%s
		GROUP BY m.id
		%s
		ORDER BY m.start, m.id
		LIMIT $%d OFFSET $%d
	`, where, having, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list showings", zap.Error(err))
		return nil, fmt.Errorf("list showings: %w", err)
	}
	defer rows.Close()

	var items []*ShowingListItem
	for rows.Next() {
		var item ShowingListItem
		err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Description,
			&item.About,
			&item.Reactions,
			&item.Image,
			&item.Start,
			&item.End,
			&item.ReleaseDate,
			&item.IsPromoted,
			&item.IsFullyBooked,
			&item.BasePrice,
			&item.TotalSeat,
			&item.CastID,
			&item.CategoryID,
			&item.LocationID,
			&item.MovieTypeID,
			&item.SeatTypeID,
			&item.CreatedAt,
			&item.UpdatedAt,
			&item.BookedSeats,
		)
		if err != nil {
			r.log.Error("Failed to scan showing row", zap.Error(err))
			return nil, fmt.Errorf("scan showing row: %w", err)
		}
		items = append(items, &item)
	}

	return items, nil
}

func (r *showingRepository) Count(ctx context.Context, filter ShowingFilter) (int64, error) {
	where, having, args := buildFilter(filter, nil)

	query := fmt.Sprintf(`
		SELECT COUNT(*) FROM (
			SELECT m.id
			FROM movies m
			LEFT JOIN bookings b ON b.movie = m.id
			%s
			GROUP BY m.id
			%s
		) AS filtered
	`, where, having)

	var count int64
	err := r.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count showings", zap.Error(err))
		return 0, fmt.Errorf("count showings: %w", err)
	}

	return count, nil
}

func (r *showingRepository) ExistsOverlapping(ctx context.Context, locationID uuid.UUID, start, end time.Time) (bool, error) {
	// Half-open [start, end): back-to-back showings are allowed.
	query := `
		SELECT EXISTS (
			SELECT 1 FROM movies
			WHERE location_id = $1 AND start < $3 AND $2 < "end"
		)
	`

	var exists bool
	err := r.db.QueryRow(ctx, query, locationID, start, end).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check overlapping showings",
			zap.Error(err),
			zap.String("location_id", locationID.String()),
		)
		return false, fmt.Errorf("check overlapping showings at %s: %w", locationID.String(), err)
	}

	return exists, nil
}

func (r *showingRepository) SetFullyBooked(ctx context.Context, q database.Queryer, id uuid.UUID, fullyBooked bool) error {
	query := `UPDATE movies SET is_fully_booked = $2, updated_at = NOW() WHERE id = $1`

	result, err := q.Exec(ctx, query, id, fullyBooked)
	if err != nil {
		r.log.Error("Failed to update fully-booked flag",
			zap.Error(err),
			zap.String("showing_id", id.String()),
			zap.Bool("fully_booked", fullyBooked),
		)
		return fmt.Errorf("update fully-booked flag for showing %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("showing %s not found", id.String())
	}

	return nil
}

func (r *showingRepository) IDsByCast(ctx context.Context, q database.Queryer, castID uuid.UUID) ([]uuid.UUID, error) {
	return r.idsWhere(ctx, q, "cast_id", castID)
}

func (r *showingRepository) IDsByCategory(ctx context.Context, q database.Queryer, categoryID uuid.UUID) ([]uuid.UUID, error) {
	return r.idsWhere(ctx, q, "category_id", categoryID)
}

func (r *showingRepository) IDsByLocation(ctx context.Context, q database.Queryer, locationID uuid.UUID) ([]uuid.UUID, error) {
	return r.idsWhere(ctx, q, "location_id", locationID)
}

func (r *showingRepository) IDsByMovieType(ctx context.Context, q database.Queryer, movieTypeID uuid.UUID) ([]uuid.UUID, error) {
	return r.idsWhere(ctx, q, "movie_type", movieTypeID)
}

func (r *showingRepository) IDsBySeatType(ctx context.Context, q database.Queryer, seatTypeID uuid.UUID) ([]uuid.UUID, error) {
	return r.idsWhere(ctx, q, "seat_type", seatTypeID)
}

func (r *showingRepository) idsWhere(ctx context.Context, q database.Queryer, column string, value uuid.UUID) ([]uuid.UUID, error) {
	query := fmt.Sprintf(`SELECT id FROM movies WHERE %s = $1`, column)

	rows, err := q.Query(ctx, query, value)
	if err != nil {
		r.log.Error("Failed to find showing IDs",
			zap.Error(err),
			zap.String("column", column),
			zap.String("value", value.String()),
		)
		return nil, fmt.Errorf("find showing IDs by %s: %w", column, err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan showing ID row: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func (r *showingRepository) DeleteByIDs(ctx context.Context, q database.Queryer, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	query := `DELETE FROM movies WHERE id = ANY($1)`

	if _, err := q.Exec(ctx, query, ids); err != nil {
		r.log.Error("Failed to delete showings by IDs",
			zap.Error(err),
			zap.Int("count", len(ids)),
		)
		return fmt.Errorf("delete showings by IDs: %w", err)
	}

	return nil
}

func scanShowing(row pgx.Row) (*entity.Showing, error) {
	var showing entity.Showing
	err := row.Scan(
		&showing.ID,
		&showing.Title,
		&showing.Description,
		&showing.About,
		&showing.Reactions,
		&showing.Image,
		&showing.Start,
		&showing.End,
		&showing.ReleaseDate,
		&showing.IsPromoted,
		&showing.IsFullyBooked,
		&showing.BasePrice,
		&showing.TotalSeat,
		&showing.CastID,
		&showing.CategoryID,
		&showing.LocationID,
		&showing.MovieTypeID,
		&showing.SeatTypeID,
		&showing.CreatedAt,
		&showing.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &showing, nil
}
