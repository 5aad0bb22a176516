package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"cinema-showings/internal/data/entity"
	"cinema-showings/internal/data/repository"
	"cinema-showings/pkg/database"
	"cinema-showings/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// fakeStore is an in-memory stand-in for the database, shared by the fake
// repositories. A single mutex guards every map so the double-booking test
// can hammer it from multiple goroutines.
type fakeStore struct {
	mu         sync.Mutex
	casts      map[uuid.UUID]*entity.Cast
	categories map[uuid.UUID]*entity.MovieCategory
	locations  map[uuid.UUID]*entity.Location
	movieTypes map[uuid.UUID]*entity.MovieType
	seats      map[uuid.UUID]*entity.Seat
	seatTypes  map[uuid.UUID]*entity.SeatType
	showings   map[uuid.UUID]*entity.Showing
	bookings   map[uuid.UUID]*entity.Booking
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		casts:      make(map[uuid.UUID]*entity.Cast),
		categories: make(map[uuid.UUID]*entity.MovieCategory),
		locations:  make(map[uuid.UUID]*entity.Location),
		movieTypes: make(map[uuid.UUID]*entity.MovieType),
		seats:      make(map[uuid.UUID]*entity.Seat),
		seatTypes:  make(map[uuid.UUID]*entity.SeatType),
		showings:   make(map[uuid.UUID]*entity.Showing),
		bookings:   make(map[uuid.UUID]*entity.Booking),
	}
}

func (s *fakeStore) repos() *repository.Repository {
	return &repository.Repository{
		Cast:     &fakeCastRepo{s},
		Category: &fakeCategoryRepo{s},
		Location: &fakeLocationRepo{s},
		Type:     &fakeMovieTypeRepo{s},
		Seat:     &fakeSeatRepo{s},
		SeatType: &fakeSeatTypeRepo{s},
		Showing:  &fakeShowingRepo{s},
		Booking:  &fakeBookingRepo{s},
	}
}

func testConfig() *utils.Config {
	return &utils.Config{
		Booking: utils.BookingConfig{
			MaxSeatsPerBooking: 10,
			DefaultPerPage:     10,
		},
	}
}

func newTestService(store *fakeStore) *Service {
	return NewService(fakeDB{}, store.repos(), testConfig(), zap.NewNop())
}

// bookedCount counts bookings for one showing straight off the store.
func (s *fakeStore) bookedCount(showingID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, b := range s.bookings {
		if b.ShowingID == showingID {
			count++
		}
	}
	return count
}

// ==================== FAKE DB ====================

// fakeDB satisfies database.PgxIface. The query surface is never reached:
// the fake repositories ignore their Queryer argument.
type fakeDB struct{}

func (fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (fakeDB) BeginTx(ctx context.Context) (database.Tx, error) {
	return fakeTx{}, nil
}

func (fakeDB) Ping(ctx context.Context) error { return nil }

func (fakeDB) Close() {}

type fakeTx struct{}

func (fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (fakeTx) Commit(ctx context.Context) error   { return nil }
func (fakeTx) Rollback(ctx context.Context) error { return nil }

// ==================== CAST ====================

type fakeCastRepo struct{ s *fakeStore }

func (r *fakeCastRepo) Create(ctx context.Context, cast *entity.Cast) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.casts[cast.ID] = cast
	return nil
}

func (r *fakeCastRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Cast, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.casts[id], nil
}

func (r *fakeCastRepo) FindAll(ctx context.Context) ([]*entity.Cast, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var casts []*entity.Cast
	for _, c := range r.s.casts {
		casts = append(casts, c)
	}
	return casts, nil
}

func (r *fakeCastRepo) Delete(ctx context.Context, q database.Queryer, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.casts, id)
	return nil
}

// ==================== CATEGORY ====================

type fakeCategoryRepo struct{ s *fakeStore }

func (r *fakeCategoryRepo) Create(ctx context.Context, category *entity.MovieCategory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.categories {
		if c.Slug == category.Slug {
			return fmt.Errorf("slug %s: %w", category.Slug, repository.ErrDuplicate)
		}
	}
	r.s.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.MovieCategory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.categories[id], nil
}

func (r *fakeCategoryRepo) FindBySlug(ctx context.Context, slug string) (*entity.MovieCategory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) FindAll(ctx context.Context) ([]*entity.MovieCategory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var categories []*entity.MovieCategory
	for _, c := range r.s.categories {
		categories = append(categories, c)
	}
	return categories, nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, q database.Queryer, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.categories, id)
	return nil
}

// ==================== LOCATION ====================

type fakeLocationRepo struct{ s *fakeStore }

func (r *fakeLocationRepo) Create(ctx context.Context, location *entity.Location) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, l := range r.s.locations {
		if l.Slug == location.Slug {
			return fmt.Errorf("slug %s: %w", location.Slug, repository.ErrDuplicate)
		}
	}
	r.s.locations[location.ID] = location
	return nil
}

func (r *fakeLocationRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.locations[id], nil
}

func (r *fakeLocationRepo) FindBySlug(ctx context.Context, slug string) (*entity.Location, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, l := range r.s.locations {
		if l.Slug == slug {
			return l, nil
		}
	}
	return nil, nil
}

func (r *fakeLocationRepo) FindAll(ctx context.Context) ([]*entity.Location, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var locations []*entity.Location
	for _, l := range r.s.locations {
		locations = append(locations, l)
	}
	return locations, nil
}

func (r *fakeLocationRepo) Delete(ctx context.Context, q database.Queryer, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.locations, id)
	return nil
}

// ==================== MOVIE TYPE ====================

type fakeMovieTypeRepo struct{ s *fakeStore }

func (r *fakeMovieTypeRepo) Create(ctx context.Context, movieType *entity.MovieType) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.movieTypes {
		if m.Slug == movieType.Slug {
			return fmt.Errorf("slug %s: %w", movieType.Slug, repository.ErrDuplicate)
		}
	}
	r.s.movieTypes[movieType.ID] = movieType
	return nil
}

func (r *fakeMovieTypeRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.MovieType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.movieTypes[id], nil
}

func (r *fakeMovieTypeRepo) FindBySlug(ctx context.Context, slug string) (*entity.MovieType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.movieTypes {
		if m.Slug == slug {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMovieTypeRepo) FindAll(ctx context.Context) ([]*entity.MovieType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var movieTypes []*entity.MovieType
	for _, m := range r.s.movieTypes {
		movieTypes = append(movieTypes, m)
	}
	return movieTypes, nil
}

func (r *fakeMovieTypeRepo) Delete(ctx context.Context, q database.Queryer, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.movieTypes, id)
	return nil
}

// ==================== SEAT ====================

type fakeSeatRepo struct{ s *fakeStore }

func (r *fakeSeatRepo) Create(ctx context.Context, seat *entity.Seat) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.seats[seat.ID] = seat
	return nil
}

func (r *fakeSeatRepo) CreateBatch(ctx context.Context, seats []*entity.Seat) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, seat := range seats {
		r.s.seats[seat.ID] = seat
	}
	return nil
}

func (r *fakeSeatRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seat, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.seats[id], nil
}

func (r *fakeSeatRepo) FindByIDs(ctx context.Context, q database.Queryer, ids []uuid.UUID) ([]*entity.Seat, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var seats []*entity.Seat
	for _, id := range ids {
		if seat, ok := r.s.seats[id]; ok {
			seats = append(seats, seat)
		}
	}
	return seats, nil
}

func (r *fakeSeatRepo) FindAll(ctx context.Context) ([]*entity.Seat, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var seats []*entity.Seat
	for _, seat := range r.s.seats {
		seats = append(seats, seat)
	}
	sort.Slice(seats, func(i, j int) bool { return seats[i].Position < seats[j].Position })
	return seats, nil
}

func (r *fakeSeatRepo) Count(ctx context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.seats), nil
}

func (r *fakeSeatRepo) IDsBySeatType(ctx context.Context, q database.Queryer, seatTypeID uuid.UUID) ([]uuid.UUID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var ids []uuid.UUID
	for _, seat := range r.s.seats {
		if seat.SeatTypeID == seatTypeID {
			ids = append(ids, seat.ID)
		}
	}
	return ids, nil
}

func (r *fakeSeatRepo) Delete(ctx context.Context, q database.Queryer, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.seats, id)
	return nil
}

func (r *fakeSeatRepo) DeleteByIDs(ctx context.Context, q database.Queryer, ids []uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, id := range ids {
		delete(r.s.seats, id)
	}
	return nil
}

// ==================== SEAT TYPE ====================

type fakeSeatTypeRepo struct{ s *fakeStore }

func (r *fakeSeatTypeRepo) Create(ctx context.Context, seatType *entity.SeatType) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.seatTypes[seatType.ID] = seatType
	return nil
}

func (r *fakeSeatTypeRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.SeatType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.seatTypes[id], nil
}

func (r *fakeSeatTypeRepo) FindByIDs(ctx context.Context, q database.Queryer, ids []uuid.UUID) ([]*entity.SeatType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var seatTypes []*entity.SeatType
	for _, id := range ids {
		if st, ok := r.s.seatTypes[id]; ok {
			seatTypes = append(seatTypes, st)
		}
	}
	return seatTypes, nil
}

func (r *fakeSeatTypeRepo) FindAll(ctx context.Context) ([]*entity.SeatType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var seatTypes []*entity.SeatType
	for _, st := range r.s.seatTypes {
		seatTypes = append(seatTypes, st)
	}
	return seatTypes, nil
}

func (r *fakeSeatTypeRepo) ClearSeatRef(ctx context.Context, q database.Queryer, seatID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, st := range r.s.seatTypes {
		if st.SeatID != nil && *st.SeatID == seatID {
			st.SeatID = nil
		}
	}
	return nil
}

func (r *fakeSeatTypeRepo) Delete(ctx context.Context, q database.Queryer, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.seatTypes, id)
	return nil
}

// ==================== SHOWING ====================

type fakeShowingRepo struct{ s *fakeStore }

func (r *fakeShowingRepo) Create(ctx context.Context, showing *entity.Showing) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.showings[showing.ID] = showing
	return nil
}

func (r *fakeShowingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Showing, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.showings[id], nil
}

func (r *fakeShowingRepo) FindByIDForUpdate(ctx context.Context, q database.Queryer, id uuid.UUID) (*entity.Showing, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeShowingRepo) matches(showing *entity.Showing, filter repository.ShowingFilter) bool {
	if filter.MovieTypeID != nil && showing.MovieTypeID != *filter.MovieTypeID {
		return false
	}
	if filter.LocationID != nil && showing.LocationID != *filter.LocationID {
		return false
	}
	if filter.StartFrom != nil && showing.Start.Before(*filter.StartFrom) {
		return false
	}
	if filter.StartTo != nil && showing.Start.After(*filter.StartTo) {
		return false
	}
	return true
}

func (r *fakeShowingRepo) list(filter repository.ShowingFilter) []*repository.ShowingListItem {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var items []*repository.ShowingListItem
	for _, showing := range r.s.showings {
		if !r.matches(showing, filter) {
			continue
		}
		booked := 0
		for _, b := range r.s.bookings {
			if b.ShowingID == showing.ID {
				booked++
			}
		}
		if filter.OnlyAvailable && booked >= showing.TotalSeat {
			continue
		}
		items = append(items, &repository.ShowingListItem{Showing: *showing, BookedSeats: booked})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Start.Equal(items[j].Start) {
			return items[i].ID.String() < items[j].ID.String()
		}
		return items[i].Start.Before(items[j].Start)
	})

	return items
}

func (r *fakeShowingRepo) List(ctx context.Context, filter repository.ShowingFilter, limit, offset int) ([]*repository.ShowingListItem, error) {
	items := r.list(filter)
	if offset >= len(items) {
		return nil, nil
	}
	items = items[offset:]
	if limit < len(items) {
		items = items[:limit]
	}
	return items, nil
}

func (r *fakeShowingRepo) Count(ctx context.Context, filter repository.ShowingFilter) (int64, error) {
	return int64(len(r.list(filter))), nil
}

func (r *fakeShowingRepo) ExistsOverlapping(ctx context.Context, locationID uuid.UUID, start, end time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, showing := range r.s.showings {
		if showing.LocationID == locationID && showing.Overlaps(start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeShowingRepo) SetFullyBooked(ctx context.Context, q database.Queryer, id uuid.UUID, fullyBooked bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if showing, ok := r.s.showings[id]; ok {
		showing.IsFullyBooked = fullyBooked
	}
	return nil
}

func (r *fakeShowingRepo) idsWhere(match func(*entity.Showing) bool) []uuid.UUID {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var ids []uuid.UUID
	for _, showing := range r.s.showings {
		if match(showing) {
			ids = append(ids, showing.ID)
		}
	}
	return ids
}

func (r *fakeShowingRepo) IDsByCast(ctx context.Context, q database.Queryer, castID uuid.UUID) ([]uuid.UUID, error) {
	return r.idsWhere(func(s *entity.Showing) bool { return s.CastID == castID }), nil
}

func (r *fakeShowingRepo) IDsByCategory(ctx context.Context, q database.Queryer, categoryID uuid.UUID) ([]uuid.UUID, error) {
	return r.idsWhere(func(s *entity.Showing) bool { return s.CategoryID == categoryID }), nil
}

func (r *fakeShowingRepo) IDsByLocation(ctx context.Context, q database.Queryer, locationID uuid.UUID) ([]uuid.UUID, error) {
	return r.idsWhere(func(s *entity.Showing) bool { return s.LocationID == locationID }), nil
}

func (r *fakeShowingRepo) IDsByMovieType(ctx context.Context, q database.Queryer, movieTypeID uuid.UUID) ([]uuid.UUID, error) {
	return r.idsWhere(func(s *entity.Showing) bool { return s.MovieTypeID == movieTypeID }), nil
}

func (r *fakeShowingRepo) IDsBySeatType(ctx context.Context, q database.Queryer, seatTypeID uuid.UUID) ([]uuid.UUID, error) {
	return r.idsWhere(func(s *entity.Showing) bool { return s.SeatTypeID == seatTypeID }), nil
}

func (r *fakeShowingRepo) DeleteByIDs(ctx context.Context, q database.Queryer, ids []uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, id := range ids {
		delete(r.s.showings, id)
	}
	return nil
}

// ==================== BOOKING ====================

type fakeBookingRepo struct{ s *fakeStore }

// CreateBatch enforces the (showing, seat) uniqueness the way the real
// index does: the whole batch fails if any pair already exists.
func (r *fakeBookingRepo) CreateBatch(ctx context.Context, q database.Queryer, bookings []*entity.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, booking := range bookings {
		for _, existing := range r.s.bookings {
			if existing.ShowingID == booking.ShowingID && existing.SeatID == booking.SeatID {
				return fmt.Errorf("seat %s: %w", booking.SeatID.String(), repository.ErrDuplicate)
			}
		}
	}
	for _, booking := range bookings {
		r.s.bookings[booking.ID] = booking
	}
	return nil
}

func (r *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.bookings[id], nil
}

func (r *fakeBookingRepo) FindByShowingID(ctx context.Context, showingID uuid.UUID) ([]*entity.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var bookings []*entity.Booking
	for _, b := range r.s.bookings {
		if b.ShowingID == showingID {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

func (r *fakeBookingRepo) BookedSeatIDsByShowing(ctx context.Context, q database.Queryer, showingID uuid.UUID) ([]uuid.UUID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var ids []uuid.UUID
	for _, b := range r.s.bookings {
		if b.ShowingID == showingID {
			ids = append(ids, b.SeatID)
		}
	}
	return ids, nil
}

func (r *fakeBookingRepo) CountByShowing(ctx context.Context, q database.Queryer, showingID uuid.UUID) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	count := 0
	for _, b := range r.s.bookings {
		if b.ShowingID == showingID {
			count++
		}
	}
	return count, nil
}

func (r *fakeBookingRepo) Delete(ctx context.Context, q database.Queryer, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.bookings, id)
	return nil
}

func (r *fakeBookingRepo) DeleteByShowingIDs(ctx context.Context, q database.Queryer, showingIDs []uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, showingID := range showingIDs {
		for id, b := range r.s.bookings {
			if b.ShowingID == showingID {
				delete(r.s.bookings, id)
			}
		}
	}
	return nil
}

func (r *fakeBookingRepo) DeleteBySeatIDs(ctx context.Context, q database.Queryer, seatIDs []uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, seatID := range seatIDs {
		for id, b := range r.s.bookings {
			if b.SeatID == seatID {
				delete(r.s.bookings, id)
			}
		}
	}
	return nil
}
