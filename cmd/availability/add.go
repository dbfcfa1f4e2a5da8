package main

import (
	"github.com/spf13/cobra"

	"github.com/TudorHulban/availability/internal/output"
	"github.com/TudorHulban/availability/internal/service"
)

var addCmd = &cobra.Command{
	Use:   "add NAME FROM TO",
	Short: "Register an availability range",
	Long: `Register the days NAME is available, dates as YYYY-MM-DD.

Examples:
  availability add Alice 2026-07-01 2026-07-10`,
	Args: cobra.ExactArgs(3),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	availabilityService, release, errService := buildService(cmd.Context())
	if errService != nil {
		return errService
	}
	defer release()

	record, errRegister := availabilityService.Register(
		cmd.Context(),
		&service.ParamsRegister{
			Name: args[0],
			From: args[1],
			To:   args[2],
		},
	)
	if errRegister != nil {
		return errRegister
	}

	output.NewPrinter(true).Success(
		"registered %s from %s to %s (%s)",
		record.Name,
		record.From,
		record.To,
		record.ID,
	)

	return nil
}
