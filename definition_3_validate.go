package availability

import (
	"strconv"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

const (
	MaxNameLength = 50
	DateLayout    = time.DateOnly
)

// Validate checks a submitted (name, start, end) triple, dates as YYYY-MM-DD.
// Checks run in order: name, date format, period membership, ordering.
func (p *Period) Validate(name, start, end string) error {
	_, errParse := p.ParseRange(name, start, end)

	return errParse
}

// ParseRange validates the triple and resolves it to day-of-period values.
// The returned range carries the trimmed name.
func (p *Period) ParseRange(name, start, end string) (*Range, error) {
	trimmed := strings.TrimSpace(name)

	if len(trimmed) == 0 {
		return nil,
			&ValidationError{
				Kind:  EmptyName,
				Field: "name",
			}
	}

	if !govalidator.RuneLength(trimmed, "1", strconv.Itoa(MaxNameLength)) {
		return nil,
			&ValidationError{
				Kind:  NameTooLong,
				Field: "name",
				Value: trimmed,
			}
	}

	dateStart, errStart := time.Parse(DateLayout, start)
	if errStart != nil {
		return nil,
			&ValidationError{
				Kind:  InvalidDate,
				Field: "start",
				Value: start,
			}
	}

	dateEnd, errEnd := time.Parse(DateLayout, end)
	if errEnd != nil {
		return nil,
			&ValidationError{
				Kind:  InvalidDate,
				Field: "end",
				Value: end,
			}
	}

	if !p.Contains(dateStart) {
		return nil,
			&ValidationError{
				Kind:  OutOfPeriod,
				Field: "start",
				Value: start,
			}
	}

	if !p.Contains(dateEnd) {
		return nil,
			&ValidationError{
				Kind:  OutOfPeriod,
				Field: "end",
				Value: end,
			}
	}

	if dateStart.After(dateEnd) {
		return nil,
			&ValidationError{
				Kind:  InvertedRange,
				Field: "start",
				Value: start,
			}
	}

	return &Range{
			OwnerName: trimmed,
			StartDay:  dateStart.Day(),
			EndDay:    dateEnd.Day(),
		},
		nil
}
