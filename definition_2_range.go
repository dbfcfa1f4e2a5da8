package availability

import "fmt"

// Range is one person's availability, both ends inclusive.
type Range struct {
	OwnerName string
	StartDay  int
	EndDay    int
}

// Length is zero for inverted ranges.
func (r Range) Length() int {
	return max(0, r.EndDay-r.StartDay+1)
}

// Covers reports full coverage of the span, partial overlap does not count.
func (r Range) Covers(startDay, endDay int) bool {
	return r.StartDay <= startDay && r.EndDay >= endDay
}

func (r Range) String() string {
	return fmt.Sprintf("%s [%d-%d]", r.OwnerName, r.StartDay, r.EndDay)
}
