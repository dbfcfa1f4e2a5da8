package rest

import (
	"github.com/TudorHulban/availability"
	"github.com/TudorHulban/availability/internal/repository"
)

// Response is the envelope of every API answer.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

type AvailabilityResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	From      string `json:"from"`
	To        string `json:"to"`
	CreatedAt string `json:"createdAt"`
}

type PeriodDayResponse struct {
	Weekday string `json:"weekday"`
	Day     int    `json:"day"`
}

type PeriodResponse struct {
	Name   string              `json:"name"`
	Start  string              `json:"start"`
	End    string              `json:"end"`
	Days   []PeriodDayResponse `json:"days"`
	Length int                 `json:"length"`
}

type DayResponse struct {
	Weekday string   `json:"weekday"`
	Names   []string `json:"names"`
	Day     int      `json:"day"`
	Count   int      `json:"count"`
}

type WindowResponse struct {
	Names  []string `json:"names"`
	From   int      `json:"from"`
	To     int      `json:"to"`
	Length int      `json:"length"`
	Count  int      `json:"count"`
}

type SummaryResponse struct {
	Period       PeriodResponse   `json:"period"`
	Days         []DayResponse    `json:"days"`
	TopDays      []DayResponse    `json:"topDays"`
	BestWindows  []WindowResponse `json:"bestWindows"`
	Participants int              `json:"participants"`
	Ranges       int              `json:"ranges"`
}

func toAvailabilityResponse(record *repository.Record) AvailabilityResponse {
	return AvailabilityResponse{
		ID:        record.ID,
		Name:      record.Name,
		From:      record.From,
		To:        record.To,
		CreatedAt: record.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}
}

func toPeriodResponse(period *availability.Period) PeriodResponse {
	days := make([]PeriodDayResponse, 0, period.Length)

	for day := 1; day <= period.Length; day++ {
		days = append(
			days,
			PeriodDayResponse{
				Day:     day,
				Weekday: period.Weekday(day),
			},
		)
	}

	return PeriodResponse{
		Name:   period.String(),
		Start:  period.Start().Format(availability.DateLayout),
		End:    period.End().Format(availability.DateLayout),
		Days:   days,
		Length: period.Length,
	}
}

func toSummaryResponse(period *availability.Period, summary *availability.Summary) SummaryResponse {
	days := make([]DayResponse, 0, period.Length)

	for day := 1; day <= period.Length; day++ {
		days = append(
			days,
			DayResponse{
				Day:     day,
				Weekday: period.Weekday(day),
				Count:   summary.Attendance.Count(day),
				Names:   summary.Attendance.Names(day),
			},
		)
	}

	topDays := make([]DayResponse, 0, len(summary.TopDays))

	for _, top := range summary.TopDays {
		topDays = append(
			topDays,
			DayResponse{
				Day:     top.Day,
				Weekday: period.Weekday(top.Day),
				Count:   top.Count,
				Names:   top.Names,
			},
		)
	}

	windows := make([]WindowResponse, 0, len(summary.BestWindows))

	for _, window := range summary.BestWindows {
		windows = append(
			windows,
			WindowResponse{
				From:   window.StartDay,
				To:     window.EndDay,
				Length: window.Length(),
				Count:  window.AttendeeCount,
				Names:  window.AttendeeNames,
			},
		)
	}

	return SummaryResponse{
		Period:       toPeriodResponse(period),
		Days:         days,
		TopDays:      topDays,
		BestWindows:  windows,
		Participants: summary.Participants,
		Ranges:       summary.Ranges,
	}
}
