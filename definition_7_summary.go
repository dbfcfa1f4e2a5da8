package availability

type ParamsSummary struct {
	ParamsBestWindows

	TopN int
}

// Summary is the read view over one snapshot of ranges.
type Summary struct {
	Attendance  DayAttendance
	TopDays     []DayCount
	BestWindows []Window

	Participants int
	Ranges       int
}

func (p *Period) Summarize(ranges []Range, params *ParamsSummary) *Summary {
	var (
		paramsWindows *ParamsBestWindows
		topN          int
	)

	if params != nil {
		paramsWindows = &params.ParamsBestWindows
		topN = params.TopN
	}

	return &Summary{
		Attendance:  p.Aggregate(ranges),
		TopDays:     p.TopDays(ranges, topN),
		BestWindows: p.BestWindows(ranges, paramsWindows),

		Participants: len(distinctOwners(ranges)),
		Ranges:       len(ranges),
	}
}
