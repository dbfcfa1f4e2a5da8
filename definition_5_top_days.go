package availability

import (
	"cmp"
	"slices"
)

const DefaultTopN = 3

type DayCount struct {
	Names []string

	Day   int
	Count int
}

// TopDays ranks days by attendance, highest first, ties on the earlier day.
// Days nobody attends are left out. A non positive topN means DefaultTopN.
func (p *Period) TopDays(ranges []Range, topN int) []DayCount {
	attendance := p.Aggregate(ranges)

	result := make([]DayCount, 0, p.Length)

	for day := 1; day <= p.Length; day++ {
		if attendance.Count(day) == 0 {
			continue
		}

		result = append(
			result,
			DayCount{
				Day:   day,
				Count: attendance.Count(day),
				Names: attendance.Names(day),
			},
		)
	}

	slices.SortFunc(
		result,
		func(a, b DayCount) int {
			return cmp.Or(
				cmp.Compare(b.Count, a.Count),
				cmp.Compare(a.Day, b.Day),
			)
		},
	)

	limit := ternary(topN > 0, topN, DefaultTopN)

	return result[:min(limit, len(result))]
}
