package availability

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func spans(windows []Window) [][2]int {
	result := make([][2]int, 0, len(windows))

	for _, w := range windows {
		result = append(result, [2]int{w.StartDay, w.EndDay})
	}

	return result
}

func TestBestWindows(t *testing.T) {
	period := july()

	t.Run(
		"1. example ranges",
		func(t *testing.T) {
			windows := period.BestWindows(
				julyRanges,
				&ParamsBestWindows{
					MinWindowLength: 3,
				},
			)
			require.Len(t, windows, DefaultMaxResults)

			require.Equal(t,
				Window{
					StartDay:      5,
					EndDay:        10,
					AttendeeCount: 2,
					AttendeeNames: []string{"Alice", "Bob"},
				},
				windows[0],
			)

			require.Equal(t,
				[][2]int{{5, 10}, {15, 20}, {5, 9}, {6, 10}, {15, 19}},
				spans(windows),
			)
		},
	)

	t.Run(
		"2. longer minimum falls back to single attendee spans",
		func(t *testing.T) {
			windows := period.BestWindows(
				julyRanges,
				&ParamsBestWindows{
					MinWindowLength: 7,
				},
			)

			require.Equal(t,
				[][2]int{{15, 31}, {5, 20}, {15, 30}, {16, 31}, {5, 19}},
				spans(windows),
			)

			for _, w := range windows {
				require.Equal(t, 1, w.AttendeeCount)
			}
		},
	)

	t.Run(
		"3. raising the minimum above a window length removes it",
		func(t *testing.T) {
			for _, w := range period.BestWindows(julyRanges, &ParamsBestWindows{MinWindowLength: 3, MaxResults: 1000}) {
				further := period.BestWindows(
					julyRanges,
					&ParamsBestWindows{
						MinWindowLength: w.Length() + 1,
						MaxResults:      1000,
					},
				)

				require.NotContains(t, spans(further), [2]int{w.StartDay, w.EndDay})
			}
		},
	)

	t.Run(
		"4. same person counted once",
		func(t *testing.T) {
			windows := period.BestWindows(
				[]Range{
					{OwnerName: "Alice", StartDay: 1, EndDay: 10},
					{OwnerName: "Alice", StartDay: 3, EndDay: 8},
				},
				&ParamsBestWindows{MinWindowLength: 6, MaxResults: 100},
			)

			for _, w := range windows {
				require.Equal(t, 1, w.AttendeeCount)
				require.Equal(t, []string{"Alice"}, w.AttendeeNames)
			}

			require.Equal(t, [2]int{1, 10}, spans(windows)[0])
		},
	)

	t.Run(
		"5. single day range is a window of length one",
		func(t *testing.T) {
			windows := period.BestWindows(
				[]Range{{OwnerName: "Eve", StartDay: 9, EndDay: 9}},
				&ParamsBestWindows{MinWindowLength: 1},
			)

			require.Equal(t,
				[]Window{{StartDay: 9, EndDay: 9, AttendeeCount: 1, AttendeeNames: []string{"Eve"}}},
				windows,
			)
		},
	)

	t.Run(
		"6. minimum longer than period",
		func(t *testing.T) {
			windows := period.BestWindows(
				julyRanges,
				&ParamsBestWindows{MinWindowLength: 32},
			)

			require.NotNil(t, windows)
			require.Empty(t, windows)
		},
	)

	t.Run(
		"7. no attendees never yields windows",
		func(t *testing.T) {
			require.Empty(t, period.BestWindows(nil, nil))
			require.Empty(t,
				period.BestWindows(
					[]Range{{OwnerName: "Inverted", StartDay: 20, EndDay: 10}},
					&ParamsBestWindows{MinWindowLength: 1},
				),
			)
		},
	)

	t.Run(
		"8. partial overlap does not count",
		func(t *testing.T) {
			windows := period.BestWindows(
				[]Range{
					{OwnerName: "Alice", StartDay: 1, EndDay: 4},
					{OwnerName: "Bob", StartDay: 3, EndDay: 6},
				},
				&ParamsBestWindows{MinWindowLength: 3, MaxResults: 100},
			)

			for _, w := range windows {
				require.Equal(t, 1, w.AttendeeCount)
			}

			require.Contains(t, spans(windows), [2]int{3, 5})
			require.NotContains(t, spans(windows), [2]int{2, 5})
		},
	)

	t.Run(
		"9. idempotent",
		func(t *testing.T) {
			require.Equal(t,
				period.BestWindows(julyRanges, nil),
				period.BestWindows(julyRanges, nil),
			)
		},
	)
}

func TestSummarize(t *testing.T) {
	period := july()

	summary := period.Summarize(
		append(
			[]Range{{OwnerName: "Alice", StartDay: 25, EndDay: 26}},
			julyRanges...,
		),
		&ParamsSummary{
			TopN: 2,
		},
	)

	require.Equal(t, 3, summary.Participants)
	require.Equal(t, 4, summary.Ranges)
	require.Len(t, summary.TopDays, 2)
	require.Len(t, summary.BestWindows, DefaultMaxResults)
	require.Equal(t, []string{"Alice", "Carol"}, summary.Attendance.Names(25))

	require.Equal(t, period.Summarize(julyRanges, nil), period.Summarize(julyRanges, nil))
}

func TestBestWindowsAgainstFullEnumeration(t *testing.T) {
	period := july()

	ranges := append(
		[]Range{
			{OwnerName: "Dan", StartDay: 3, EndDay: 3},
			{OwnerName: "Alice", StartDay: 25, EndDay: 28},
		},
		julyRanges...,
	)

	attendees := func(start, end int) int {
		seen := make(map[string]struct{})

		for _, r := range ranges {
			if r.StartDay <= start && r.EndDay >= end {
				seen[r.OwnerName] = struct{}{}
			}
		}

		return len(seen)
	}

	allSpans := period.Length * (period.Length + 1) / 2

	for minLength := 1; minLength <= period.Length+1; minLength++ {
		var expected int

		for start := 1; start <= period.Length; start++ {
			for end := start + minLength - 1; end <= period.Length; end++ {
				if attendees(start, end) > 0 {
					expected++
				}
			}
		}

		windows := period.BestWindows(
			ranges,
			&ParamsBestWindows{
				MinWindowLength: minLength,
				MaxResults:      allSpans,
			},
		)
		require.Len(t, windows, expected, "min length %d", minLength)

		for _, window := range windows {
			require.GreaterOrEqual(t, window.Length(), minLength)
			require.Equal(t,
				attendees(window.StartDay, window.EndDay),
				window.AttendeeCount,
				"window %s", window,
			)
		}
	}
}
