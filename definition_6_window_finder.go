package availability

import (
	"cmp"
	"fmt"
	"slices"
)

const (
	DefaultMinWindowLength = 3
	DefaultMaxResults      = 5
)

// Window is a contiguous span of days and the people available for all of it.
type Window struct {
	AttendeeNames []string

	StartDay      int
	EndDay        int
	AttendeeCount int
}

func (w Window) Length() int {
	return w.EndDay - w.StartDay + 1
}

func (w Window) String() string {
	return fmt.Sprintf(
		"[%d-%d] %d: %v",

		w.StartDay,
		w.EndDay,
		w.AttendeeCount,
		w.AttendeeNames,
	)
}

type ParamsBestWindows struct {
	MinWindowLength int
	MaxResults      int
}

func (params *ParamsBestWindows) withDefaults() ParamsBestWindows {
	if params == nil {
		return ParamsBestWindows{
			MinWindowLength: DefaultMinWindowLength,
			MaxResults:      DefaultMaxResults,
		}
	}

	return ParamsBestWindows{
		MinWindowLength: ternary(params.MinWindowLength > 0, params.MinWindowLength, DefaultMinWindowLength),
		MaxResults:      ternary(params.MaxResults > 0, params.MaxResults, DefaultMaxResults),
	}
}

// BestWindows searches the spans of at least MinWindowLength days for those
// the most people can attend from first to last day.
// Ranking: attendees desc, span length desc, start day asc.
func (p *Period) BestWindows(ranges []Range, params *ParamsBestWindows) []Window {
	settings := params.withDefaults()

	if settings.MinWindowLength > p.Length {
		return []Window{}
	}

	var windows []Window

	for start := 1; start+settings.MinWindowLength-1 <= p.Length; start++ {
		covering := coveringDay(ranges, start)

		for end := start + settings.MinWindowLength - 1; end <= p.Length; end++ {
			covering = slices.DeleteFunc(
				covering,
				func(r Range) bool {
					return r.EndDay < end
				},
			)

			if len(covering) == 0 {
				break
			}

			names := distinctOwners(covering)

			windows = append(
				windows,
				Window{
					StartDay:      start,
					EndDay:        end,
					AttendeeCount: len(names),
					AttendeeNames: names,
				},
			)
		}
	}

	slices.SortFunc(
		windows,
		func(a, b Window) int {
			return cmp.Or(
				cmp.Compare(b.AttendeeCount, a.AttendeeCount),
				cmp.Compare(b.Length(), a.Length()),
				cmp.Compare(a.StartDay, b.StartDay),
			)
		},
	)

	if windows == nil {
		return []Window{}
	}

	return windows[:min(settings.MaxResults, len(windows))]
}

// coveringDay returns a fresh slice of the ranges containing the day, in input order.
func coveringDay(ranges []Range, day int) []Range {
	result := make([]Range, 0, len(ranges))

	for _, r := range ranges {
		if r.Covers(day, day) {
			result = append(result, r)
		}
	}

	return result
}

func distinctOwners(ranges []Range) []string {
	seen := make(map[string]struct{}, len(ranges))
	result := make([]string, 0, len(ranges))

	for _, r := range ranges {
		if _, exists := seen[r.OwnerName]; exists {
			continue
		}

		seen[r.OwnerName] = struct{}{}
		result = append(result, r.OwnerName)
	}

	return result
}
