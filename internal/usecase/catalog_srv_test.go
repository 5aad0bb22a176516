package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"cinema-showings/internal/dto/request"

	"github.com/google/uuid"
)

func TestCreateCategorySlugConflict(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	first, err := svc.Catalog.CreateCategory(ctx, &request.CreateCategoryRequest{Title: "Sci Fi"})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	if first.Slug != "sci-fi" {
		t.Errorf("slug = %q, want sci-fi", first.Slug)
	}

	if _, err := svc.Catalog.CreateCategory(ctx, &request.CreateCategoryRequest{Title: "Sci Fi"}); !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate title: got %v, want ErrConflict", err)
	}
}

func TestCreateCastValidation(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	if _, err := svc.Catalog.CreateCast(ctx, &request.CreateCastRequest{Name: "No Title"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("missing fields: got %v, want ErrValidation", err)
	}

	if _, err := svc.Catalog.CreateCast(ctx, &request.CreateCastRequest{
		Name: "Ada Brooks", Title: "Lead", Position: "Actor", DOB: "last tuesday",
	}); !errors.Is(err, ErrValidation) {
		t.Fatalf("malformed dob: got %v, want ErrValidation", err)
	}

	cast, err := svc.Catalog.CreateCast(ctx, &request.CreateCastRequest{
		Name: "Ada Brooks", Title: "Lead", Position: "Actor", DOB: "1990-04-12",
		Tags: []string{"drama", "thriller"},
	})
	if err != nil {
		t.Fatalf("create cast: %v", err)
	}
	if cast.DOB != "1990-04-12" {
		t.Errorf("dob = %q, want 1990-04-12", cast.DOB)
	}
}

func TestCreateSeatUnknownType(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	_, err := svc.Catalog.CreateSeat(context.Background(), &request.CreateSeatRequest{
		Position:   "A1",
		SeatTypeID: uuid.New().String(),
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown seat type: got %v, want ErrNotFound", err)
	}
}

func TestDeleteLocationCascades(t *testing.T) {
	store := newFakeStore()
	standard := seedSeatType(t, store, "standard", 0)
	seat := seedSeat(t, store, "A1", standard)
	refs := seedRefs(t, store)
	start := time.Now().Add(time.Hour)
	showing := seedShowing(t, store, refs, standard.ID, 10, 1, start, start.Add(2*time.Hour))

	svc := newTestService(store)
	ctx := context.Background()

	if _, err := svc.Booking.BookSeats(ctx, &request.BookSeatsRequest{
		ShowingID: showing.ID.String(),
		SeatIDs:   []string{seat.ID.String()},
	}); err != nil {
		t.Fatalf("booking: %v", err)
	}

	if err := svc.Catalog.DeleteLocation(ctx, refs.location.String()); err != nil {
		t.Fatalf("delete location: %v", err)
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	if len(store.locations) != 0 {
		t.Error("location still present")
	}
	if len(store.showings) != 0 {
		t.Error("dependent showing survived the location delete")
	}
	if len(store.bookings) != 0 {
		t.Error("dependent booking survived the location delete")
	}
}

func TestDeleteCategoryCascades(t *testing.T) {
	store := newFakeStore()
	standard := seedSeatType(t, store, "standard", 0)
	refs := seedRefs(t, store)
	start := time.Now().Add(time.Hour)
	seedShowing(t, store, refs, standard.ID, 10, 1, start, start.Add(2*time.Hour))

	svc := newTestService(store)
	if err := svc.Catalog.DeleteCategory(context.Background(), refs.category.String()); err != nil {
		t.Fatalf("delete category: %v", err)
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	if len(store.showings) != 0 {
		t.Error("dependent showing survived the category delete")
	}
}

func TestDeleteSeatRemovesItsBookings(t *testing.T) {
	store := newFakeStore()
	standard := seedSeatType(t, store, "standard", 0)
	seatA := seedSeat(t, store, "A1", standard)
	seatB := seedSeat(t, store, "A2", standard)
	refs := seedRefs(t, store)
	start := time.Now().Add(time.Hour)
	showing := seedShowing(t, store, refs, standard.ID, 10, 2, start, start.Add(2*time.Hour))

	svc := newTestService(store)
	ctx := context.Background()

	if _, err := svc.Booking.BookSeats(ctx, &request.BookSeatsRequest{
		ShowingID: showing.ID.String(),
		SeatIDs:   []string{seatA.ID.String(), seatB.ID.String()},
	}); err != nil {
		t.Fatalf("booking: %v", err)
	}

	if err := svc.Catalog.DeleteSeat(ctx, seatA.ID.String()); err != nil {
		t.Fatalf("delete seat: %v", err)
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	if _, ok := store.seats[seatA.ID]; ok {
		t.Error("seat still present")
	}
	if _, ok := store.seats[seatB.ID]; !ok {
		t.Error("unrelated seat removed")
	}
	for _, b := range store.bookings {
		if b.SeatID == seatA.ID {
			t.Error("booking for deleted seat survived")
		}
	}
}

func TestDeleteSeatTypeCascades(t *testing.T) {
	store := newFakeStore()
	vip := seedSeatType(t, store, "vip", 50)
	standard := seedSeatType(t, store, "standard", 0)
	vipSeat := seedSeat(t, store, "A1", vip)
	stdSeat := seedSeat(t, store, "A2", standard)
	refs := seedRefs(t, store)
	start := time.Now().Add(time.Hour)

	// One showing priced in vip, one in standard.
	vipShowing := seedShowing(t, store, refs, vip.ID, 10, 2, start, start.Add(2*time.Hour))
	stdShowing := seedShowing(t, store, refs, standard.ID, 10, 2, start.Add(3*time.Hour), start.Add(5*time.Hour))

	svc := newTestService(store)
	if err := svc.Catalog.DeleteSeatType(context.Background(), vip.ID.String()); err != nil {
		t.Fatalf("delete seat type: %v", err)
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	if _, ok := store.showings[vipShowing.ID]; ok {
		t.Error("showing priced in the deleted seat type survived")
	}
	if _, ok := store.showings[stdShowing.ID]; !ok {
		t.Error("unrelated showing removed")
	}
	if _, ok := store.seats[vipSeat.ID]; ok {
		t.Error("seat of the deleted type survived")
	}
	if _, ok := store.seats[stdSeat.ID]; !ok {
		t.Error("unrelated seat removed")
	}
}

func TestGetLocation(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	created, err := svc.Catalog.CreateLocation(ctx, &request.CreateLocationRequest{
		Name: "Screen One", ShortName: "S1",
	})
	if err != nil {
		t.Fatalf("create location: %v", err)
	}

	got, err := svc.Catalog.GetLocation(ctx, created.ID)
	if err != nil {
		t.Fatalf("get location: %v", err)
	}
	if got.Slug != "screen-one" {
		t.Errorf("slug = %q, want screen-one", got.Slug)
	}

	if _, err := svc.Catalog.GetLocation(ctx, uuid.New().String()); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown location: got %v, want ErrNotFound", err)
	}
}

func TestDeleteUnknownReference(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	if err := svc.Catalog.DeleteCast(ctx, uuid.New().String()); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete unknown cast: got %v, want ErrNotFound", err)
	}
	if err := svc.Catalog.DeleteLocation(ctx, "bad-id"); !errors.Is(err, ErrValidation) {
		t.Errorf("delete malformed id: got %v, want ErrValidation", err)
	}
}
