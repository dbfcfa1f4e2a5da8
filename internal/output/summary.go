package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/TudorHulban/availability"
	"github.com/TudorHulban/availability/internal/repository"
)

const noAttendees = "-"

// PrintSummary renders the day attendance, top days and best windows tables.
func (p *Printer) PrintSummary(period *availability.Period, summary *availability.Summary) error {
	p.Header(
		fmt.Sprintf(
			"%s: %d participants, %d ranges",

			period,
			summary.Participants,
			summary.Ranges,
		),
	)

	days := NewTable(p.out, []string{"Day", "Weekday", "Count", "Names"})

	for day := 1; day <= period.Length; day++ {
		days.AddRow(
			strconv.Itoa(day),
			period.Weekday(day),
			strconv.Itoa(summary.Attendance.Count(day)),
			joinNames(summary.Attendance.Names(day)),
		)
	}

	if err := days.Render(); err != nil {
		return err
	}

	p.Header("Top days")

	if len(summary.TopDays) == 0 {
		p.Info("no availability registered")
	} else {
		top := NewTable(p.out, []string{"Rank", "Date", "Count", "Names"})

		for i, day := range summary.TopDays {
			top.AddRow(
				strconv.Itoa(i+1),
				period.DateOf(day.Day).Format(availability.DateLayout),
				strconv.Itoa(day.Count),
				joinNames(day.Names),
			)
		}

		if err := top.Render(); err != nil {
			return err
		}
	}

	p.Header("Best windows")

	if len(summary.BestWindows) == 0 {
		p.Info("no window found")

		return nil
	}

	windows := NewTable(p.out, []string{"Rank", "From", "To", "Days", "Count", "Names"})

	for i, window := range summary.BestWindows {
		windows.AddRow(
			strconv.Itoa(i+1),
			period.DateOf(window.StartDay).Format(availability.DateLayout),
			period.DateOf(window.EndDay).Format(availability.DateLayout),
			strconv.Itoa(window.Length()),
			strconv.Itoa(window.AttendeeCount),
			joinNames(window.AttendeeNames),
		)
	}

	return windows.Render()
}

// PrintRecords lists stored ranges in registration order.
func (p *Printer) PrintRecords(records []repository.Record) error {
	if len(records) == 0 {
		p.Info("no availability registered")

		return nil
	}

	table := NewTable(p.out, []string{"ID", "Name", "From", "To"})

	for _, record := range records {
		table.AddRow(record.ID, record.Name, record.From, record.To)
	}

	return table.Render()
}

func joinNames(names []string) string {
	if len(names) == 0 {
		return noAttendees
	}

	return strings.Join(names, ", ")
}
