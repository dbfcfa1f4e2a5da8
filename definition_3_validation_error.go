package availability

import (
	"errors"
	"fmt"
)

type ValidationKind uint8

const (
	EmptyName ValidationKind = iota + 1
	NameTooLong
	InvalidDate
	OutOfPeriod
	InvertedRange
)

var (
	ErrEmptyName     = errors.New("empty name")
	ErrNameTooLong   = errors.New("name too long")
	ErrInvalidDate   = errors.New("invalid date")
	ErrOutOfPeriod   = errors.New("date out of period")
	ErrInvertedRange = errors.New("start after end")
)

var sentinelPerKind = map[ValidationKind]error{
	EmptyName:     ErrEmptyName,
	NameTooLong:   ErrNameTooLong,
	InvalidDate:   ErrInvalidDate,
	OutOfPeriod:   ErrOutOfPeriod,
	InvertedRange: ErrInvertedRange,
}

func (k ValidationKind) String() string {
	switch k {
	case EmptyName:
		return "EmptyName"
	case NameTooLong:
		return "NameTooLong"
	case InvalidDate:
		return "InvalidDate"
	case OutOfPeriod:
		return "OutOfPeriod"
	case InvertedRange:
		return "InvertedRange"
	}

	return fmt.Sprintf("ValidationKind(%d)", uint8(k))
}

// Message is the user facing text for the kind.
func (k ValidationKind) Message() string {
	switch k {
	case EmptyName:
		return "name is required"
	case NameTooLong:
		return fmt.Sprintf("name must have at most %d characters", MaxNameLength)
	case InvalidDate:
		return "invalid date format, expected YYYY-MM-DD"
	case OutOfPeriod:
		return "date must fall within the period"
	case InvertedRange:
		return "start date must be before or equal to end date"
	}

	return "invalid input"
}

type ValidationError struct {
	Field string
	Value string

	Kind ValidationKind
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Kind.Message()
	}

	return fmt.Sprintf("%s: %s", e.Field, e.Kind.Message())
}

func (e *ValidationError) Unwrap() error {
	return sentinelPerKind[e.Kind]
}

// KindOf extracts the validation kind, zero if err is not a validation error.
func KindOf(err error) ValidationKind {
	var errValidation *ValidationError

	if errors.As(err, &errValidation) {
		return errValidation.Kind
	}

	return 0
}
