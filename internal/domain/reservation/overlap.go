package reservation

// Overlaps reports whether two stays share a calendar day. Both ends are
// inclusive, so a stay ending on day X conflicts with one starting on day X.
func Overlaps(existing, requested StayPeriod) bool {
	return !existing.CheckIn().After(requested.CheckOut()) &&
		!existing.CheckOut().Before(requested.CheckIn())
}

// FilterOverlapping returns the active reservations that overlap period.
func FilterOverlapping(candidates []*Reservation, period StayPeriod) []*Reservation {
	var out []*Reservation
	for _, r := range candidates {
		if r.IsActive() && r.OverlapsWith(period) {
			out = append(out, r)
		}
	}
	return out
}
