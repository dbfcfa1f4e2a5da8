package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"

	"github.com/TudorHulban/availability"
	"github.com/TudorHulban/availability/internal/metrics"
	"github.com/TudorHulban/availability/internal/repository"
)

const serviceName = "Availability"

// AvailabilityService validates writes against the period and computes
// summaries over a fresh repository snapshot on every call.
type AvailabilityService struct {
	period *availability.Period
	repo   repository.Repository
	logger *slog.Logger

	now   func() time.Time
	newID func() string
}

type ParamsNewAvailabilityService struct {
	Period     *availability.Period  `valid:"required"`
	Repository repository.Repository `valid:"required"`
	Logger     *slog.Logger          `valid:"required"`
}

// missingDependency covers what the struct tags cannot, a nil interface
// value is not seen by govalidator.
func (params *ParamsNewAvailabilityService) missingDependency() error {
	switch {
	case params.Period == nil:
		return goerrors.ErrNilInput{
			InputName: "Period",
		}

	case params.Repository == nil:
		return goerrors.ErrNilInput{
			InputName: "Repository",
		}

	case params.Logger == nil:
		return goerrors.ErrNilInput{
			InputName: "Logger",
		}
	}

	return nil
}

func NewAvailabilityService(params *ParamsNewAvailabilityService) (*AvailabilityService, error) {
	if params == nil {
		return nil,
			goerrors.ErrServiceValidation{
				ServiceName: serviceName,
				Caller:      "NewAvailabilityService",
				Issue: goerrors.ErrNilInput{
					InputName: "ParamsNewAvailabilityService",
				},
			}
	}

	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return nil,
			goerrors.ErrServiceValidation{
				ServiceName: serviceName,
				Caller:      "NewAvailabilityService",
				Issue:       errValidation,
			}
	}

	if errNil := params.missingDependency(); errNil != nil {
		return nil,
			goerrors.ErrServiceValidation{
				ServiceName: serviceName,
				Caller:      "NewAvailabilityService",
				Issue:       errNil,
			}
	}

	return &AvailabilityService{
			period: params.Period,
			repo:   params.Repository,
			logger: params.Logger.With("component", "availability_service"),

			now:   time.Now,
			newID: uuid.NewString,
		},
		nil
}

func (s *AvailabilityService) Period() *availability.Period {
	return s.period
}

type ParamsRegister struct {
	Name string `json:"name"`
	From string `json:"from"`
	To   string `json:"to"`
}

// Register validates and stores a new range, the stored name is trimmed.
func (s *AvailabilityService) Register(ctx context.Context, params *ParamsRegister) (*repository.Record, error) {
	r, errValidation := s.validate(params)
	if errValidation != nil {
		return nil, errValidation
	}

	record := repository.Record{
		ID:        s.newID(),
		Name:      r.OwnerName,
		From:      params.From,
		To:        params.To,
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.Add(ctx, record); err != nil {
		metrics.RecordWrite("register", "error")

		return nil, fmt.Errorf("failed to store availability: %w", err)
	}

	metrics.RecordWrite("register", "ok")

	s.logger.Info("availability registered",
		"id", record.ID,
		"name", record.Name,
		"from", record.From,
		"to", record.To)

	return &record, nil
}

// Update replaces name and dates of an existing range.
// A missing id is reported before validation issues.
func (s *AvailabilityService) Update(ctx context.Context, id string, params *ParamsRegister) (*repository.Record, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	r, errValidation := s.validate(params)
	if errValidation != nil {
		return nil, errValidation
	}

	updated, err := s.repo.Update(
		ctx,
		id,
		repository.Patch{
			Name: &r.OwnerName,
			From: &params.From,
			To:   &params.To,
		},
	)
	if err != nil {
		metrics.RecordWrite("update", "error")

		return nil, err
	}

	metrics.RecordWrite("update", "ok")

	s.logger.Info("availability updated", "id", id)

	return updated, nil
}

func (s *AvailabilityService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			metrics.RecordWrite("delete", "error")
		}

		return err
	}

	metrics.RecordWrite("delete", "ok")

	s.logger.Info("availability deleted", "id", id)

	return nil
}

func (s *AvailabilityService) Get(ctx context.Context, id string) (*repository.Record, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AvailabilityService) List(ctx context.Context) ([]repository.Record, error) {
	return s.repo.List(ctx)
}

func (s *AvailabilityService) validate(params *ParamsRegister) (*availability.Range, error) {
	if params == nil {
		return nil,
			goerrors.ErrServiceValidation{
				ServiceName: serviceName,
				Caller:      "validate",
				Issue: goerrors.ErrNilInput{
					InputName: "ParamsRegister",
				},
			}
	}

	r, errValidation := s.period.ParseRange(params.Name, params.From, params.To)
	if errValidation != nil {
		metrics.RecordRejection(availability.KindOf(errValidation).String())

		return nil, errValidation
	}

	return r, nil
}
