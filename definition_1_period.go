package availability

import (
	"errors"
	"fmt"
	"time"

	goerrors "github.com/TudorHulban/go-errors"
)

const (
	DefaultPeriodYear  = 2026
	DefaultPeriodMonth = time.July
)

// Period is the fixed calendar month all ranges must fall into.
// Days are addressed 1..Length.
type Period struct {
	start time.Time

	Year   int
	Month  time.Month
	Length int
}

type ParamsNewPeriod struct {
	Year  int
	Month time.Month
}

func (param *ParamsNewPeriod) IsValid() error {
	if param == nil {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewPeriod",
			Issue: goerrors.ErrNilInput{
				InputName: "ParamsNewPeriod",
			},
		}
	}

	if param.Year <= 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewPeriod",
			Issue: goerrors.ErrNegativeInput{
				InputName: "Year",
			},
		}
	}

	if param.Month < time.January || param.Month > time.December {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewPeriod",
			Issue: goerrors.ErrInvalidInput{
				InputName:  "Month",
				InputValue: int(param.Month),
				Issue:      errors.New("month must be between 1 and 12"),
			},
		}
	}

	return nil
}

func NewPeriod(params *ParamsNewPeriod) (*Period, error) {
	if errValidation := params.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	start := time.Date(params.Year, params.Month, 1, 0, 0, 0, 0, time.UTC)

	return &Period{
			Year:   params.Year,
			Month:  params.Month,
			Length: start.AddDate(0, 1, -1).Day(),

			start: start,
		},
		nil
}

// DefaultPeriod is July 2026.
func DefaultPeriod() *Period {
	period, _ := NewPeriod(
		&ParamsNewPeriod{
			Year:  DefaultPeriodYear,
			Month: DefaultPeriodMonth,
		},
	)

	return period
}

func (p *Period) String() string {
	return fmt.Sprintf("%s %d", p.Month, p.Year)
}

func (p *Period) Start() time.Time {
	return p.start
}

func (p *Period) End() time.Time {
	return p.start.AddDate(0, 0, p.Length-1)
}

// Contains requires the exact month and year, time of day is ignored.
func (p *Period) Contains(date time.Time) bool {
	y, m, _ := date.Date()

	return y == p.Year && m == p.Month
}

// DayOf resolves a calendar date to its day-of-period.
func (p *Period) DayOf(date time.Time) (int, error) {
	if !p.Contains(date) {
		return 0,
			&ValidationError{
				Kind:  OutOfPeriod,
				Field: "date",
				Value: date.Format(DateLayout),
			}
	}

	return date.Day(),
		nil
}

// DateOf returns the calendar date of a day-of-period, clamped to the period bounds.
func (p *Period) DateOf(day int) time.Time {
	return p.start.AddDate(0, 0, p.clampDay(day)-1)
}

// Weekday returns the short english weekday name of a day-of-period, e.g. "Wed".
func (p *Period) Weekday(day int) string {
	return p.DateOf(day).Weekday().String()[:3]
}

func (p *Period) IsDay(day int) bool {
	return day >= 1 && day <= p.Length
}

func (p *Period) clampDay(day int) int {
	if p.IsDay(day) {
		return day
	}

	return ternary(day < 1, 1, p.Length)
}
