package service

import (
	"context"
	"fmt"
	"time"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"

	"github.com/TudorHulban/availability"
	"github.com/TudorHulban/availability/internal/metrics"
	"github.com/TudorHulban/availability/internal/repository"
)

// ParamsSummaryQuery zero values select the defaults.
type ParamsSummaryQuery struct {
	MinDays    int `valid:"range(0|366)"`
	MaxResults int `valid:"range(0|100)"`
	TopN       int `valid:"range(0|366)"`
}

// Summary computes attendance, top days and best windows over the current ranges.
func (s *AvailabilityService) Summary(ctx context.Context, params *ParamsSummaryQuery) (*availability.Summary, error) {
	if params == nil {
		params = &ParamsSummaryQuery{}
	}

	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return nil,
			goerrors.ErrServiceValidation{
				ServiceName: serviceName,
				Caller:      "Summary",
				Issue:       errValidation,
			}
	}

	ranges, err := s.Ranges(ctx)
	if err != nil {
		return nil, err
	}

	started := time.Now()

	summary := s.period.Summarize(
		ranges,
		&availability.ParamsSummary{
			ParamsBestWindows: availability.ParamsBestWindows{
				MinWindowLength: params.MinDays,
				MaxResults:      params.MaxResults,
			},
			TopN: params.TopN,
		},
	)

	metrics.RecordSummary(len(ranges), time.Since(started).Seconds())

	return summary, nil
}

// Ranges resolves the stored records to ranges in registration order.
// Records that do not resolve inside the period are logged and skipped.
func (s *AvailabilityService) Ranges(ctx context.Context) ([]availability.Range, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load availabilities: %w", err)
	}

	result := make([]availability.Range, 0, len(records))

	for _, record := range records {
		r, errResolve := s.toRange(record)
		if errResolve != nil {
			s.logger.Warn("skipping stored availability",
				"id", record.ID,
				"from", record.From,
				"to", record.To,
				"error", errResolve)

			continue
		}

		result = append(result, *r)
	}

	return result, nil
}

// toRange keeps inverted stored ranges, the core treats them as empty.
func (s *AvailabilityService) toRange(record repository.Record) (*availability.Range, error) {
	from, errFrom := time.Parse(availability.DateLayout, record.From)
	if errFrom != nil {
		return nil, fmt.Errorf("from: %w", errFrom)
	}

	to, errTo := time.Parse(availability.DateLayout, record.To)
	if errTo != nil {
		return nil, fmt.Errorf("to: %w", errTo)
	}

	startDay, errStart := s.period.DayOf(from)
	if errStart != nil {
		return nil, errStart
	}

	endDay, errEnd := s.period.DayOf(to)
	if errEnd != nil {
		return nil, errEnd
	}

	return &availability.Range{
			OwnerName: record.Name,
			StartDay:  startDay,
			EndDay:    endDay,
		},
		nil
}
