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

// CatalogService manages the owner-maintained reference data: casts,
// categories, locations, genres, seats and seat types. Deletes cascade to
// dependent showings and bookings as a single explicit transaction rather
// than a database trigger, so failures surface to the caller.
type CatalogService interface {
	CreateCast(ctx context.Context, req *request.CreateCastRequest) (*response.CastResponse, error)
	ListCasts(ctx context.Context) ([]*response.CastResponse, error)
	GetCast(ctx context.Context, castID string) (*response.CastResponse, error)
	DeleteCast(ctx context.Context, castID string) error

	CreateCategory(ctx context.Context, req *request.CreateCategoryRequest) (*response.CategoryResponse, error)
	ListCategories(ctx context.Context) ([]*response.CategoryResponse, error)
	GetCategory(ctx context.Context, categoryID string) (*response.CategoryResponse, error)
	DeleteCategory(ctx context.Context, categoryID string) error

	CreateLocation(ctx context.Context, req *request.CreateLocationRequest) (*response.LocationResponse, error)
	ListLocations(ctx context.Context) ([]*response.LocationResponse, error)
	GetLocation(ctx context.Context, locationID string) (*response.LocationResponse, error)
	DeleteLocation(ctx context.Context, locationID string) error

	CreateMovieType(ctx context.Context, req *request.CreateMovieTypeRequest) (*response.MovieTypeResponse, error)
	ListMovieTypes(ctx context.Context) ([]*response.MovieTypeResponse, error)
	GetMovieType(ctx context.Context, movieTypeID string) (*response.MovieTypeResponse, error)
	DeleteMovieType(ctx context.Context, movieTypeID string) error

	CreateSeat(ctx context.Context, req *request.CreateSeatRequest) (*response.SeatResponse, error)
	ListSeats(ctx context.Context) ([]*response.SeatResponse, error)
	GetSeat(ctx context.Context, seatID string) (*response.SeatResponse, error)
	DeleteSeat(ctx context.Context, seatID string) error

	CreateSeatType(ctx context.Context, req *request.CreateSeatTypeRequest) (*response.SeatTypeResponse, error)
	ListSeatTypes(ctx context.Context) ([]*response.SeatTypeResponse, error)
	GetSeatType(ctx context.Context, seatTypeID string) (*response.SeatTypeResponse, error)
	DeleteSeatType(ctx context.Context, seatTypeID string) error
}

type catalogService struct {
	db   database.PgxIface
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(db database.PgxIface, repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		db:   db,
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

// ==================== CAST ====================

func (s *catalogService) CreateCast(ctx context.Context, req *request.CreateCastRequest) (*response.CastResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	dob, err := time.Parse(time.DateOnly, req.DOB)
	if err != nil {
		return nil, fmt.Errorf("dob %s: %w", req.DOB, ErrValidation)
	}

	now := time.Now()
	cast := &entity.Cast{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:     req.Name,
		Title:    req.Title,
		Position: req.Position,
		Tags:     req.Tags,
		DOB:      dob,
		Bio:      req.Bio,
	}

	if err := s.repo.Cast.Create(ctx, cast); err != nil {
		return nil, fmt.Errorf("create cast: %w", err)
	}

	s.log.Info("Cast created",
		zap.String("cast_id", cast.ID.String()),
		zap.String("name", cast.Name),
	)

	resp := response.CastToResponse(cast)
	return &resp, nil
}

func (s *catalogService) ListCasts(ctx context.Context) ([]*response.CastResponse, error) {
	casts, err := s.repo.Cast.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list casts: %w", err)
	}

	responses := make([]*response.CastResponse, len(casts))
	for i, cast := range casts {
		resp := response.CastToResponse(cast)
		responses[i] = &resp
	}

	return responses, nil
}

func (s *catalogService) GetCast(ctx context.Context, castID string) (*response.CastResponse, error) {
	id, err := uuid.Parse(castID)
	if err != nil {
		return nil, fmt.Errorf("cast ID %s: %w", castID, ErrValidation)
	}

	cast, err := s.repo.Cast.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find cast: %w", err)
	}
	if cast == nil {
		return nil, fmt.Errorf("cast %s: %w", castID, ErrNotFound)
	}

	resp := response.CastToResponse(cast)
	return &resp, nil
}

func (s *catalogService) DeleteCast(ctx context.Context, castID string) error {
	id, err := uuid.Parse(castID)
	if err != nil {
		return fmt.Errorf("cast ID %s: %w", castID, ErrValidation)
	}

	cast, err := s.repo.Cast.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find cast: %w", err)
	}
	if cast == nil {
		return fmt.Errorf("cast %s: %w", castID, ErrNotFound)
	}

	return s.cascadeDelete(ctx, "cast", id,
		func(ctx context.Context, q database.Queryer) ([]uuid.UUID, error) {
			return s.repo.Showing.IDsByCast(ctx, q, id)
		},
		func(ctx context.Context, q database.Queryer) error {
			return s.repo.Cast.Delete(ctx, q, id)
		},
	)
}

// ==================== CATEGORY ====================

func (s *catalogService) CreateCategory(ctx context.Context, req *request.CreateCategoryRequest) (*response.CategoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	category := &entity.MovieCategory{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title: req.Title,
		Slug:  utils.Slugify(req.Title),
	}

	if err := s.repo.Category.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("category %s already exists: %w", category.Slug, ErrConflict)
		}
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.log.Info("Category created",
		zap.String("category_id", category.ID.String()),
		zap.String("slug", category.Slug),
	)

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]*response.CategoryResponse, error) {
	categories, err := s.repo.Category.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	responses := make([]*response.CategoryResponse, len(categories))
	for i, category := range categories {
		resp := response.CategoryToResponse(category)
		responses[i] = &resp
	}

	return responses, nil
}

func (s *catalogService) GetCategory(ctx context.Context, categoryID string) (*response.CategoryResponse, error) {
	id, err := uuid.Parse(categoryID)
	if err != nil {
		return nil, fmt.Errorf("category ID %s: %w", categoryID, ErrValidation)
	}

	category, err := s.repo.Category.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}
	if category == nil {
		return nil, fmt.Errorf("category %s: %w", categoryID, ErrNotFound)
	}

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *catalogService) DeleteCategory(ctx context.Context, categoryID string) error {
	id, err := uuid.Parse(categoryID)
	if err != nil {
		return fmt.Errorf("category ID %s: %w", categoryID, ErrValidation)
	}

	category, err := s.repo.Category.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find category: %w", err)
	}
	if category == nil {
		return fmt.Errorf("category %s: %w", categoryID, ErrNotFound)
	}

	return s.cascadeDelete(ctx, "category", id,
		func(ctx context.Context, q database.Queryer) ([]uuid.UUID, error) {
			return s.repo.Showing.IDsByCategory(ctx, q, id)
		},
		func(ctx context.Context, q database.Queryer) error {
			return s.repo.Category.Delete(ctx, q, id)
		},
	)
}

// ==================== LOCATION ====================

func (s *catalogService) CreateLocation(ctx context.Context, req *request.CreateLocationRequest) (*response.LocationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	location := &entity.Location{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:      req.Name,
		Slug:      utils.Slugify(req.Name),
		ShortName: req.ShortName,
	}

	if err := s.repo.Location.Create(ctx, location); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("location %s already exists: %w", location.Slug, ErrConflict)
		}
		return nil, fmt.Errorf("create location: %w", err)
	}

	s.log.Info("Location created",
		zap.String("location_id", location.ID.String()),
		zap.String("slug", location.Slug),
	)

	resp := response.LocationToResponse(location)
	return &resp, nil
}

func (s *catalogService) ListLocations(ctx context.Context) ([]*response.LocationResponse, error) {
	locations, err := s.repo.Location.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}

	responses := make([]*response.LocationResponse, len(locations))
	for i, location := range locations {
		resp := response.LocationToResponse(location)
		responses[i] = &resp
	}

	return responses, nil
}

func (s *catalogService) GetLocation(ctx context.Context, locationID string) (*response.LocationResponse, error) {
	id, err := uuid.Parse(locationID)
	if err != nil {
		return nil, fmt.Errorf("location ID %s: %w", locationID, ErrValidation)
	}

	location, err := s.repo.Location.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find location: %w", err)
	}
	if location == nil {
		return nil, fmt.Errorf("location %s: %w", locationID, ErrNotFound)
	}

	resp := response.LocationToResponse(location)
	return &resp, nil
}

func (s *catalogService) DeleteLocation(ctx context.Context, locationID string) error {
	id, err := uuid.Parse(locationID)
	if err != nil {
		return fmt.Errorf("location ID %s: %w", locationID, ErrValidation)
	}

	location, err := s.repo.Location.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find location: %w", err)
	}
	if location == nil {
		return fmt.Errorf("location %s: %w", locationID, ErrNotFound)
	}

	return s.cascadeDelete(ctx, "location", id,
		func(ctx context.Context, q database.Queryer) ([]uuid.UUID, error) {
			return s.repo.Showing.IDsByLocation(ctx, q, id)
		},
		func(ctx context.Context, q database.Queryer) error {
			return s.repo.Location.Delete(ctx, q, id)
		},
	)
}

// ==================== MOVIE TYPE ====================

func (s *catalogService) CreateMovieType(ctx context.Context, req *request.CreateMovieTypeRequest) (*response.MovieTypeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	movieType := &entity.MovieType{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name: req.Name,
		Slug: utils.Slugify(req.Name),
	}

	if err := s.repo.Type.Create(ctx, movieType); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("movie type %s already exists: %w", movieType.Slug, ErrConflict)
		}
		return nil, fmt.Errorf("create movie type: %w", err)
	}

	s.log.Info("Movie type created",
		zap.String("movie_type_id", movieType.ID.String()),
		zap.String("slug", movieType.Slug),
	)

	resp := response.MovieTypeToResponse(movieType)
	return &resp, nil
}

func (s *catalogService) ListMovieTypes(ctx context.Context) ([]*response.MovieTypeResponse, error) {
	movieTypes, err := s.repo.Type.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movie types: %w", err)
	}

	responses := make([]*response.MovieTypeResponse, len(movieTypes))
	for i, movieType := range movieTypes {
		resp := response.MovieTypeToResponse(movieType)
		responses[i] = &resp
	}

	return responses, nil
}

func (s *catalogService) GetMovieType(ctx context.Context, movieTypeID string) (*response.MovieTypeResponse, error) {
	id, err := uuid.Parse(movieTypeID)
	if err != nil {
		return nil, fmt.Errorf("movie type ID %s: %w", movieTypeID, ErrValidation)
	}

	movieType, err := s.repo.Type.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find movie type: %w", err)
	}
	if movieType == nil {
		return nil, fmt.Errorf("movie type %s: %w", movieTypeID, ErrNotFound)
	}

	resp := response.MovieTypeToResponse(movieType)
	return &resp, nil
}

func (s *catalogService) DeleteMovieType(ctx context.Context, movieTypeID string) error {
	id, err := uuid.Parse(movieTypeID)
	if err != nil {
		return fmt.Errorf("movie type ID %s: %w", movieTypeID, ErrValidation)
	}

	movieType, err := s.repo.Type.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find movie type: %w", err)
	}
	if movieType == nil {
		return fmt.Errorf("movie type %s: %w", movieTypeID, ErrNotFound)
	}

	return s.cascadeDelete(ctx, "movie_type", id,
		func(ctx context.Context, q database.Queryer) ([]uuid.UUID, error) {
			return s.repo.Showing.IDsByMovieType(ctx, q, id)
		},
		func(ctx context.Context, q database.Queryer) error {
			return s.repo.Type.Delete(ctx, q, id)
		},
	)
}

// ==================== SEAT ====================

func (s *catalogService) CreateSeat(ctx context.Context, req *request.CreateSeatRequest) (*response.SeatResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	seatTypeID, err := uuid.Parse(req.SeatTypeID)
	if err != nil {
		return nil, fmt.Errorf("seat type ID %s: %w", req.SeatTypeID, ErrValidation)
	}

	seatType, err := s.repo.SeatType.FindByID(ctx, seatTypeID)
	if err != nil {
		return nil, fmt.Errorf("find seat type: %w", err)
	}
	if seatType == nil {
		return nil, fmt.Errorf("seat type %s: %w", req.SeatTypeID, ErrNotFound)
	}

	now := time.Now()
	seat := &entity.Seat{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Position:    req.Position,
		SeatTypeID:  seatTypeID,
		Description: req.Description,
	}

	if err := s.repo.Seat.Create(ctx, seat); err != nil {
		return nil, fmt.Errorf("create seat: %w", err)
	}

	s.log.Info("Seat created",
		zap.String("seat_id", seat.ID.String()),
		zap.String("position", seat.Position),
		zap.String("seat_type", seatType.Label),
	)

	resp := response.SeatToResponse(seat)
	return &resp, nil
}

func (s *catalogService) ListSeats(ctx context.Context) ([]*response.SeatResponse, error) {
	seats, err := s.repo.Seat.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seats: %w", err)
	}

	responses := make([]*response.SeatResponse, len(seats))
	for i, seat := range seats {
		resp := response.SeatToResponse(seat)
		responses[i] = &resp
	}

	return responses, nil
}

func (s *catalogService) GetSeat(ctx context.Context, seatID string) (*response.SeatResponse, error) {
	id, err := uuid.Parse(seatID)
	if err != nil {
		return nil, fmt.Errorf("seat ID %s: %w", seatID, ErrValidation)
	}

	seat, err := s.repo.Seat.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find seat: %w", err)
	}
	if seat == nil {
		return nil, fmt.Errorf("seat %s: %w", seatID, ErrNotFound)
	}

	resp := response.SeatToResponse(seat)
	return &resp, nil
}

func (s *catalogService) DeleteSeat(ctx context.Context, seatID string) error {
	id, err := uuid.Parse(seatID)
	if err != nil {
		return fmt.Errorf("seat ID %s: %w", seatID, ErrValidation)
	}

	seat, err := s.repo.Seat.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find seat: %w", err)
	}
	if seat == nil {
		return fmt.Errorf("seat %s: %w", seatID, ErrNotFound)
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin delete transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.repo.Booking.DeleteBySeatIDs(ctx, tx, []uuid.UUID{id}); err != nil {
		return fmt.Errorf("delete seat bookings: %w", err)
	}
	if err := s.repo.SeatType.ClearSeatRef(ctx, tx, id); err != nil {
		return fmt.Errorf("clear seat reference: %w", err)
	}
	if err := s.repo.Seat.Delete(ctx, tx, id); err != nil {
		return fmt.Errorf("delete seat: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete transaction: %w", err)
	}

	s.log.Info("Seat deleted",
		zap.String("seat_id", seatID),
		zap.String("position", seat.Position),
	)

	return nil
}

// ==================== SEAT TYPE ====================

func (s *catalogService) CreateSeatType(ctx context.Context, req *request.CreateSeatTypeRequest) (*response.SeatTypeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	seatType := &entity.SeatType{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Label:   req.Label,
		Premium: req.Premium,
	}

	if err := s.repo.SeatType.Create(ctx, seatType); err != nil {
		return nil, fmt.Errorf("create seat type: %w", err)
	}

	s.log.Info("Seat type created",
		zap.String("seat_type_id", seatType.ID.String()),
		zap.String("label", seatType.Label),
		zap.Float64("premium", seatType.Premium),
	)

	resp := response.SeatTypeToResponse(seatType)
	return &resp, nil
}

func (s *catalogService) ListSeatTypes(ctx context.Context) ([]*response.SeatTypeResponse, error) {
	seatTypes, err := s.repo.SeatType.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seat types: %w", err)
	}

	responses := make([]*response.SeatTypeResponse, len(seatTypes))
	for i, seatType := range seatTypes {
		resp := response.SeatTypeToResponse(seatType)
		responses[i] = &resp
	}

	return responses, nil
}

func (s *catalogService) GetSeatType(ctx context.Context, seatTypeID string) (*response.SeatTypeResponse, error) {
	id, err := uuid.Parse(seatTypeID)
	if err != nil {
		return nil, fmt.Errorf("seat type ID %s: %w", seatTypeID, ErrValidation)
	}

	seatType, err := s.repo.SeatType.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find seat type: %w", err)
	}
	if seatType == nil {
		return nil, fmt.Errorf("seat type %s: %w", seatTypeID, ErrNotFound)
	}

	resp := response.SeatTypeToResponse(seatType)
	return &resp, nil
}

func (s *catalogService) DeleteSeatType(ctx context.Context, seatTypeID string) error {
	id, err := uuid.Parse(seatTypeID)
	if err != nil {
		return fmt.Errorf("seat type ID %s: %w", seatTypeID, ErrValidation)
	}

	seatType, err := s.repo.SeatType.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find seat type: %w", err)
	}
	if seatType == nil {
		return fmt.Errorf("seat type %s: %w", seatTypeID, ErrNotFound)
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin delete transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Showings priced with this seat type go away, along with their
	// bookings, then the seats of this type, then the type itself.
	showingIDs, err := s.repo.Showing.IDsBySeatType(ctx, tx, id)
	if err != nil {
		return fmt.Errorf("find dependent showings: %w", err)
	}
	if err := s.repo.Booking.DeleteByShowingIDs(ctx, tx, showingIDs); err != nil {
		return fmt.Errorf("delete showing bookings: %w", err)
	}
	if err := s.repo.Showing.DeleteByIDs(ctx, tx, showingIDs); err != nil {
		return fmt.Errorf("delete showings: %w", err)
	}

	seatIDs, err := s.repo.Seat.IDsBySeatType(ctx, tx, id)
	if err != nil {
		return fmt.Errorf("find dependent seats: %w", err)
	}
	if err := s.repo.Booking.DeleteBySeatIDs(ctx, tx, seatIDs); err != nil {
		return fmt.Errorf("delete seat bookings: %w", err)
	}
	if err := s.repo.Seat.DeleteByIDs(ctx, tx, seatIDs); err != nil {
		return fmt.Errorf("delete seats: %w", err)
	}

	if err := s.repo.SeatType.Delete(ctx, tx, id); err != nil {
		return fmt.Errorf("delete seat type: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete transaction: %w", err)
	}

	s.log.Info("Seat type deleted",
		zap.String("seat_type_id", seatTypeID),
		zap.String("label", seatType.Label),
		zap.Int("showings_removed", len(showingIDs)),
		zap.Int("seats_removed", len(seatIDs)),
	)

	return nil
}

// ==================== HELPER METHODS ====================

// cascadeDelete removes the dependent showings and their bookings, then the
// entity itself, in one transaction.
func (s *catalogService) cascadeDelete(
	ctx context.Context,
	kind string,
	id uuid.UUID,
	dependentShowings func(ctx context.Context, q database.Queryer) ([]uuid.UUID, error),
	deleteEntity func(ctx context.Context, q database.Queryer) error,
) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin delete transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	showingIDs, err := dependentShowings(ctx, tx)
	if err != nil {
		return fmt.Errorf("find dependent showings: %w", err)
	}

	if err := s.repo.Booking.DeleteByShowingIDs(ctx, tx, showingIDs); err != nil {
		return fmt.Errorf("delete showing bookings: %w", err)
	}
	if err := s.repo.Showing.DeleteByIDs(ctx, tx, showingIDs); err != nil {
		return fmt.Errorf("delete showings: %w", err)
	}
	if err := deleteEntity(ctx, tx); err != nil {
		return fmt.Errorf("delete %s: %w", kind, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete transaction: %w", err)
	}

	s.log.Info("Reference entity deleted",
		zap.String("kind", kind),
		zap.String("id", id.String()),
		zap.Int("showings_removed", len(showingIDs)),
	)

	return nil
}
