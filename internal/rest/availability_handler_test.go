package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/TudorHulban/availability"
	"github.com/TudorHulban/availability/internal/logger"
	"github.com/TudorHulban/availability/internal/repository"
	"github.com/TudorHulban/availability/internal/service"
)

type envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error"`
}

func createTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	repo, errRepo := repository.NewFileRepository(t.TempDir(), logger.Discard())
	require.NoError(t, errRepo)

	usecase, errService := service.NewAvailabilityService(
		&service.ParamsNewAvailabilityService{
			Period:     availability.DefaultPeriod(),
			Repository: repo,
			Logger:     logger.Discard(),
		},
	)
	require.NoError(t, errService)

	return NewRouter(
		NewAvailabilityHandler(usecase, logger.Discard()),
		logger.Discard(),
	)
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()

	var result envelope[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	return result
}

func TestAvailabilityEndpoints(t *testing.T) {
	e := createTestRouter(t)

	var aliceID string

	t.Run(
		"1. create",
		func(t *testing.T) {
			rec := serve(e, http.MethodPost, "/api/availabilities", `{"name":" Alice ","from":"2026-07-01","to":"2026-07-10"}`)
			require.Equal(t, http.StatusCreated, rec.Code)

			response := decode[AvailabilityResponse](t, rec)
			require.True(t, response.Success)
			require.Equal(t, "Alice", response.Data.Name)
			require.NotEmpty(t, response.Data.ID)

			aliceID = response.Data.ID
		},
	)

	t.Run(
		"2. create with malformed body",
		func(t *testing.T) {
			rec := serve(e, http.MethodPost, "/api/availabilities", `{"name":`)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.False(t, decode[any](t, rec).Success)
		},
	)

	t.Run(
		"3. create rejected by validation",
		func(t *testing.T) {
			rec := serve(e, http.MethodPost, "/api/availabilities", `{"name":"Bob","from":"2026-07-10","to":"2026-07-01"}`)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t,
				"from: start date must be before or equal to end date",
				decode[any](t, rec).Error,
			)

			rec = serve(e, http.MethodPost, "/api/availabilities", `{"name":"Bob","from":"2026-07-10","to":"2026-08-01"}`)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t,
				"to: date must fall within the period",
				decode[any](t, rec).Error,
			)

			rec = serve(e, http.MethodPost, "/api/availabilities", `{"name":"  ","from":"2026-07-10","to":"2026-07-11"}`)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, "name: name is required", decode[any](t, rec).Error)
		},
	)

	t.Run(
		"4. list",
		func(t *testing.T) {
			rec := serve(e, http.MethodGet, "/api/availabilities", "")
			require.Equal(t, http.StatusOK, rec.Code)
			require.Len(t, decode[[]AvailabilityResponse](t, rec).Data, 1)
		},
	)

	t.Run(
		"5. get missing",
		func(t *testing.T) {
			rec := serve(e, http.MethodGet, "/api/availabilities/missing", "")
			require.Equal(t, http.StatusNotFound, rec.Code)
		},
	)

	t.Run(
		"6. update",
		func(t *testing.T) {
			rec := serve(e, http.MethodPut, "/api/availabilities/"+aliceID, `{"name":"Alice","from":"2026-07-02","to":"2026-07-12"}`)
			require.Equal(t, http.StatusOK, rec.Code)

			response := decode[AvailabilityResponse](t, rec)
			require.Equal(t, "2026-07-02", response.Data.From)
			require.Equal(t, "2026-07-12", response.Data.To)
		},
	)

	t.Run(
		"7. summary",
		func(t *testing.T) {
			rec := serve(e, http.MethodGet, "/api/summary?minDays=5&topN=1", "")
			require.Equal(t, http.StatusOK, rec.Code)

			response := decode[SummaryResponse](t, rec)
			require.Len(t, response.Data.Days, 31)
			require.Equal(t, 1, response.Data.Participants)
			require.Len(t, response.Data.TopDays, 1)
			require.Equal(t, 2, response.Data.TopDays[0].Day)
			require.Equal(t, "Thu", response.Data.TopDays[0].Weekday)
			require.Equal(t, 2, response.Data.BestWindows[0].From)
			require.Equal(t, 12, response.Data.BestWindows[0].To)
		},
	)

	t.Run(
		"8. summary with bad query",
		func(t *testing.T) {
			rec := serve(e, http.MethodGet, "/api/summary?minDays=abc", "")
			require.Equal(t, http.StatusBadRequest, rec.Code)

			rec = serve(e, http.MethodGet, "/api/summary?maxResults=-3", "")
			require.Equal(t, http.StatusBadRequest, rec.Code)
		},
	)

	t.Run(
		"9. delete",
		func(t *testing.T) {
			rec := serve(e, http.MethodDelete, "/api/availabilities/"+aliceID, "")
			require.Equal(t, http.StatusOK, rec.Code)

			rec = serve(e, http.MethodDelete, "/api/availabilities/"+aliceID, "")
			require.Equal(t, http.StatusNotFound, rec.Code)
		},
	)
}

func TestPeriodAndHealth(t *testing.T) {
	e := createTestRouter(t)

	rec := serve(e, http.MethodGet, "/api/period", "")
	require.Equal(t, http.StatusOK, rec.Code)

	period := decode[PeriodResponse](t, rec).Data
	require.Equal(t, "July 2026", period.Name)
	require.Equal(t, "2026-07-01", period.Start)
	require.Equal(t, "2026-07-31", period.End)
	require.Equal(t, 31, period.Length)
	require.Len(t, period.Days, 31)
	require.Equal(t, PeriodDayResponse{Day: 1, Weekday: "Wed"}, period.Days[0])
	require.Equal(t, PeriodDayResponse{Day: 31, Weekday: "Fri"}, period.Days[30])

	rec = serve(e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "ok")
}
