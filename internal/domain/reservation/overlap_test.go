//go:build unit

package reservation_test

import (
	"testing"

	"stay-booking/internal/domain/reservation"
	"stay-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	existing := reservation.NewStayPeriod(day(10), day(15))

	tests := []struct {
		name     string
		from, to int
		want     bool
	}{
		{name: "entirely before", from: 2, to: 9, want: false},
		{name: "ends on existing check-in", from: 5, to: 10, want: true},
		{name: "starts on existing check-out", from: 15, to: 18, want: true},
		{name: "entirely after", from: 16, to: 20, want: false},
		{name: "inside", from: 11, to: 13, want: true},
		{name: "covers", from: 8, to: 20, want: true},
		{name: "identical", from: 10, to: 15, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requested := reservation.NewStayPeriod(day(tt.from), day(tt.to))
			assert.Equal(t, tt.want, reservation.Overlaps(existing, requested))
			assert.Equal(t, tt.want, reservation.Overlaps(requested, existing), "overlap is symmetric")
		})
	}
}

// Exhaustive check of the inclusive predicate a <= d && b >= c over a small grid.
func TestOverlapsMatchesInclusivePredicate(t *testing.T) {
	for a := 0; a < 6; a++ {
		for b := a + 1; b < 7; b++ {
			for c := 0; c < 6; c++ {
				for d := c + 1; d < 7; d++ {
					want := a <= d && b >= c
					got := reservation.Overlaps(
						reservation.NewStayPeriod(day(a), day(b)),
						reservation.NewStayPeriod(day(c), day(d)),
					)
					if got != want {
						t.Fatalf("[%d,%d] vs [%d,%d]: got %v want %v", a, b, c, d, got, want)
					}
				}
			}
		}
	}
}

func TestFilterOverlapping(t *testing.T) {
	period := reservation.NewStayPeriod(day(10), day(12))

	pending := builder.NewReservationBuilder().WithDates(day(11), day(13)).BuildDomain()
	confirmed := builder.NewReservationBuilder().WithDates(day(8), day(10)).AsConfirmed().BuildDomain()
	cancelled := builder.NewReservationBuilder().WithDates(day(10), day(12)).AsCancelled("x").BuildDomain()
	completed := builder.NewReservationBuilder().WithDates(day(10), day(12)).WithStatus(reservation.StatusCompleted).BuildDomain()
	disjoint := builder.NewReservationBuilder().WithDates(day(20), day(22)).BuildDomain()

	got := reservation.FilterOverlapping(
		[]*reservation.Reservation{pending, confirmed, cancelled, completed, disjoint},
		period,
	)

	assert.ElementsMatch(t, []*reservation.Reservation{pending, confirmed}, got)
}
