package availability

import (
	"fmt"
	"strings"
)

// DayAttendance maps day-of-period to the owner names available that day,
// in the order the ranges were supplied. Names are not deduplicated.
type DayAttendance map[int][]string

// Aggregate builds the per-day attendance for every day of the period.
// Inverted ranges contribute nothing and days outside the period are dropped.
func (p *Period) Aggregate(ranges []Range) DayAttendance {
	result := make(DayAttendance, p.Length)

	for day := 1; day <= p.Length; day++ {
		result[day] = []string{}
	}

	for _, r := range ranges {
		for day := max(1, r.StartDay); day <= min(r.EndDay, p.Length); day++ {
			result[day] = append(result[day], r.OwnerName)
		}
	}

	return result
}

func (da DayAttendance) Names(day int) []string {
	return da[day]
}

func (da DayAttendance) Count(day int) int {
	return len(da[day])
}

// Total is the number of (day, name) entries over all days.
func (da DayAttendance) Total() int {
	var result int

	for _, names := range da {
		result = result + len(names)
	}

	return result
}

func (da DayAttendance) String() string {
	var sb strings.Builder
	sb.WriteString("DayAttendance{\n")

	for day := 1; day <= len(da); day++ {
		sb.WriteString(
			fmt.Sprintf(
				"\t%2d: %s\n",

				day,
				strings.Join(da[day], ", "),
			),
		)
	}

	sb.WriteString("}")

	return sb.String()
}
