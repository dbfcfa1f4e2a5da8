package main

import (
	"github.com/spf13/cobra"

	"github.com/TudorHulban/availability/internal/output"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List registered availability ranges",
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	availabilityService, release, errService := buildService(cmd.Context())
	if errService != nil {
		return errService
	}
	defer release()

	records, errList := availabilityService.List(cmd.Context())
	if errList != nil {
		return errList
	}

	return output.NewPrinter(true).PrintRecords(records)
}
