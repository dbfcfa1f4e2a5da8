package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TudorHulban/availability"
	"github.com/TudorHulban/availability/internal/repository"
)

func TestPrintSummary(t *testing.T) {
	period := availability.DefaultPeriod()

	ranges := []availability.Range{
		{OwnerName: "Alice", StartDay: 1, EndDay: 10},
		{OwnerName: "Bob", StartDay: 5, EndDay: 20},
	}

	t.Run(
		"1. with ranges",
		func(t *testing.T) {
			var out bytes.Buffer

			printer := NewPrinterWithWriter(&out, &out, false)

			require.NoError(t,
				printer.PrintSummary(period, period.Summarize(ranges, nil)),
			)

			text := out.String()
			require.Contains(t, text, "July 2026: 2 participants, 2 ranges")
			require.Contains(t, text, "Top days")
			require.Contains(t, text, "Alice, Bob")
			require.Contains(t, text, "2026-07-05")
			require.Contains(t, text, "2026-07-10")
		},
	)

	t.Run(
		"2. empty",
		func(t *testing.T) {
			var out bytes.Buffer

			printer := NewPrinterWithWriter(&out, &out, false)

			require.NoError(t,
				printer.PrintSummary(period, period.Summarize(nil, nil)),
			)

			text := out.String()
			require.Contains(t, text, "no availability registered")
			require.Contains(t, text, "no window found")
		},
	)
}

func TestPrintRecords(t *testing.T) {
	var out bytes.Buffer

	printer := NewPrinterWithWriter(&out, &out, false)

	require.NoError(t, printer.PrintRecords(nil))
	require.Contains(t, out.String(), "no availability registered")

	out.Reset()

	require.NoError(t,
		printer.PrintRecords(
			[]repository.Record{
				{ID: "id-1", Name: "Carol", From: "2026-07-15", To: "2026-07-31"},
			},
		),
	)
	require.Contains(t, out.String(), "Carol")
	require.Contains(t, out.String(), "2026-07-31")
}

func TestPrinterMessages(t *testing.T) {
	var out, errOut bytes.Buffer

	printer := NewPrinterWithWriter(&out, &errOut, false)

	printer.Success("stored %s", "id-1")
	printer.Error("failed: %s", "boom")

	require.Equal(t, "[OK] stored id-1\n", out.String())
	require.Equal(t, "[ERROR] failed: boom\n", errOut.String())
}
