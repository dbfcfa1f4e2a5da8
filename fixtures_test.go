package availability

var julyRanges = []Range{
	{OwnerName: "Alice", StartDay: 1, EndDay: 10},
	{OwnerName: "Bob", StartDay: 5, EndDay: 20},
	{OwnerName: "Carol", StartDay: 15, EndDay: 31},
}

func july() *Period {
	return DefaultPeriod()
}
