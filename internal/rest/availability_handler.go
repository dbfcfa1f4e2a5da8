package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/labstack/echo/v4"

	"github.com/TudorHulban/availability"
	"github.com/TudorHulban/availability/internal/repository"
	"github.com/TudorHulban/availability/internal/service"
)

// AvailabilityUsecase is the service surface the handlers need.
type AvailabilityUsecase interface {
	Period() *availability.Period
	Register(ctx context.Context, params *service.ParamsRegister) (*repository.Record, error)
	Update(ctx context.Context, id string, params *service.ParamsRegister) (*repository.Record, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*repository.Record, error)
	List(ctx context.Context) ([]repository.Record, error)
	Summary(ctx context.Context, params *service.ParamsSummaryQuery) (*availability.Summary, error)
}

// AvailabilityHandler handles the availability HTTP endpoints
type AvailabilityHandler struct {
	usecase AvailabilityUsecase
	logger  *slog.Logger
}

func NewAvailabilityHandler(usecase AvailabilityUsecase, logger *slog.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		usecase: usecase,
		logger:  logger.With("component", "availability_handler"),
	}
}

// List handles GET /api/availabilities
func (h *AvailabilityHandler) List(c echo.Context) error {
	records, err := h.usecase.List(c.Request().Context())
	if err != nil {
		return h.fail(c, err, "failed to load data")
	}

	result := make([]AvailabilityResponse, 0, len(records))
	for i := range records {
		result = append(result, toAvailabilityResponse(&records[i]))
	}

	return c.JSON(http.StatusOK, Response{Success: true, Data: result})
}

// Create handles POST /api/availabilities
func (h *AvailabilityHandler) Create(c echo.Context) error {
	var req service.ParamsRegister
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Response{Error: "invalid request body"})
	}

	record, err := h.usecase.Register(c.Request().Context(), &req)
	if err != nil {
		return h.fail(c, err, "failed to save data")
	}

	return c.JSON(http.StatusCreated, Response{Success: true, Data: toAvailabilityResponse(record)})
}

// Get handles GET /api/availabilities/:id
func (h *AvailabilityHandler) Get(c echo.Context) error {
	record, err := h.usecase.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, err, "failed to load data")
	}

	return c.JSON(http.StatusOK, Response{Success: true, Data: toAvailabilityResponse(record)})
}

// Update handles PUT /api/availabilities/:id
func (h *AvailabilityHandler) Update(c echo.Context) error {
	var req service.ParamsRegister
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Response{Error: "invalid request body"})
	}

	record, err := h.usecase.Update(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return h.fail(c, err, "failed to update data")
	}

	return c.JSON(http.StatusOK, Response{Success: true, Data: toAvailabilityResponse(record)})
}

// Delete handles DELETE /api/availabilities/:id
func (h *AvailabilityHandler) Delete(c echo.Context) error {
	if err := h.usecase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return h.fail(c, err, "failed to delete data")
	}

	return c.JSON(http.StatusOK, Response{Success: true})
}

// Summary handles GET /api/summary?minDays=&maxResults=&topN=
func (h *AvailabilityHandler) Summary(c echo.Context) error {
	var query service.ParamsSummaryQuery

	errBind := echo.QueryParamsBinder(c).
		Int("minDays", &query.MinDays).
		Int("maxResults", &query.MaxResults).
		Int("topN", &query.TopN).
		BindError()
	if errBind != nil {
		return c.JSON(http.StatusBadRequest, Response{Error: "invalid query parameters"})
	}

	summary, err := h.usecase.Summary(c.Request().Context(), &query)
	if err != nil {
		return h.fail(c, err, "failed to load data")
	}

	return c.JSON(
		http.StatusOK,
		Response{
			Success: true,
			Data:    toSummaryResponse(h.usecase.Period(), summary),
		},
	)
}

// Period handles GET /api/period
func (h *AvailabilityHandler) Period(c echo.Context) error {
	return c.JSON(http.StatusOK, Response{Success: true, Data: toPeriodResponse(h.usecase.Period())})
}

// fail maps domain errors to status codes, anything unexpected is logged
// and answered with the generic message.
func (h *AvailabilityHandler) fail(c echo.Context, err error, message string) error {
	var (
		errValidation *availability.ValidationError
		errService    goerrors.ErrServiceValidation
	)

	switch {
	case errors.As(err, &errValidation):
		return c.JSON(http.StatusBadRequest, Response{Error: validationMessage(errValidation)})

	case errors.As(err, &errService):
		return c.JSON(http.StatusBadRequest, Response{Error: "invalid request"})

	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, Response{Error: repository.ErrNotFound.Error()})
	}

	h.logger.Error("request failed",
		"method", c.Request().Method,
		"path", c.Path(),
		"error", err)

	return c.JSON(http.StatusInternalServerError, Response{Error: message})
}

// requestFields maps validation fields to the request JSON names.
var requestFields = map[string]string{
	"start": "from",
	"end":   "to",
}

func validationMessage(errValidation *availability.ValidationError) string {
	field, known := requestFields[errValidation.Field]
	if !known {
		return errValidation.Error()
	}

	return fmt.Sprintf("%s: %s", field, errValidation.Kind.Message())
}
