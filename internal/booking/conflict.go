package booking

import "time"

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share at least one instant. Touching intervals
// (aEnd == bStart) do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// FindConflict scans the table's active bookings for one that overlaps the
// candidate interval [start, end). It returns the first conflicting booking,
// or nil when the slot is clear. Bookings that are not in an active status
// are skipped, so callers may pass an unfiltered set.
func FindConflict(start, end time.Time, active []*Booking) *Booking {
	for _, b := range active {
		if !b.Status.IsActive() {
			continue
		}
		if Overlaps(start, end, b.StartTime, b.EndTime) {
			return b
		}
	}
	return nil
}
