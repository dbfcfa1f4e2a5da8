package main

import (
	"github.com/spf13/cobra"

	"github.com/TudorHulban/availability/internal/output"
	"github.com/TudorHulban/availability/internal/service"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print attendance per day, top days and best windows",
	Long: `Print the overlap summary of all registered ranges.

Examples:
  availability summary                        # Defaults: 3 top days, windows of 3+ days
  availability summary --min-days 7 --top 5   # Week long windows, 5 top days`,
	RunE: runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().Int("min-days", 0, "minimum window length in days (0 for default)")
	summaryCmd.Flags().Int("max-results", 0, "maximum number of windows (0 for default)")
	summaryCmd.Flags().Int("top", 0, "number of top days (0 for default)")
	summaryCmd.Flags().Bool("no-color", false, "disable colored output")
}

func runSummary(cmd *cobra.Command, args []string) error {
	minDays, _ := cmd.Flags().GetInt("min-days")
	maxResults, _ := cmd.Flags().GetInt("max-results")
	topN, _ := cmd.Flags().GetInt("top")
	noColor, _ := cmd.Flags().GetBool("no-color")

	availabilityService, release, errService := buildService(cmd.Context())
	if errService != nil {
		return errService
	}
	defer release()

	summary, errSummary := availabilityService.Summary(
		cmd.Context(),
		&service.ParamsSummaryQuery{
			MinDays:    minDays,
			MaxResults: maxResults,
			TopN:       topN,
		},
	)
	if errSummary != nil {
		return errSummary
	}

	return output.NewPrinter(!noColor).
		PrintSummary(availabilityService.Period(), summary)
}
