package entity

import (
	"testing"
	"time"
)

func testShowing(totalSeat int, start, end time.Time) *Showing {
	return &Showing{
		BasePrice: 10,
		TotalSeat: totalSeat,
		Start:     start,
		End:       end,
	}
}

func TestShowingStatus(t *testing.T) {
	now := time.Now()
	s := testShowing(2, now.Add(time.Hour), now.Add(3*time.Hour))

	if got := s.Status(now, 0); got != ShowingStatusScheduled {
		t.Errorf("no bookings: %s, want scheduled", got)
	}
	if got := s.Status(now, 1); got != ShowingStatusPartiallyBooked {
		t.Errorf("one booking: %s, want partially_booked", got)
	}
	if got := s.Status(now, 2); got != ShowingStatusFullyBooked {
		t.Errorf("at capacity: %s, want fully_booked", got)
	}

	s.IsFullyBooked = true
	if got := s.Status(now, 0); got != ShowingStatusFullyBooked {
		t.Errorf("cached flag set: %s, want fully_booked", got)
	}

	// Elapsed wins over everything once the end passes.
	if got := s.Status(now.Add(4*time.Hour), 2); got != ShowingStatusElapsed {
		t.Errorf("after end: %s, want elapsed", got)
	}
}

func TestShowingClosedForBooking(t *testing.T) {
	now := time.Now()
	s := testShowing(2, now.Add(time.Hour), now.Add(3*time.Hour))

	if s.ClosedForBooking(now) {
		t.Error("closed before start")
	}
	if !s.ClosedForBooking(s.Start) {
		t.Error("open at the exact start time")
	}
	if !s.ClosedForBooking(now.Add(2 * time.Hour)) {
		t.Error("open mid-showing")
	}
}

func TestEffectiveSeatPrice(t *testing.T) {
	s := &Showing{BasePrice: 10}

	cases := []struct {
		premium float64
		want    float64
	}{
		{0, 10},
		{50, 15},
		{100, 20},
		{25, 12.5},
	}
	for _, c := range cases {
		st := &SeatType{Premium: c.premium}
		if got := s.EffectiveSeatPrice(st); got != c.want {
			t.Errorf("premium %.0f%%: price %.2f, want %.2f", c.premium, got, c.want)
		}
	}
}

func TestShowingOverlaps(t *testing.T) {
	base := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	s := testShowing(2, base, base.Add(2*time.Hour))

	if !s.Overlaps(base.Add(time.Hour), base.Add(3*time.Hour)) {
		t.Error("partial overlap not detected")
	}
	if !s.Overlaps(base.Add(-time.Hour), base.Add(3*time.Hour)) {
		t.Error("containing window not detected")
	}
	// Half-open intervals: touching endpoints do not overlap.
	if s.Overlaps(base.Add(2*time.Hour), base.Add(4*time.Hour)) {
		t.Error("back-to-back window reported as overlap")
	}
	if s.Overlaps(base.Add(-2*time.Hour), base) {
		t.Error("window ending at start reported as overlap")
	}
}
