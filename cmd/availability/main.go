// Command availability serves and inspects group availability for one month.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/TudorHulban/availability/internal/output"
)

func main() {
	printer := output.NewPrinter(true)

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		printer.Error("loading .env: %v", err)
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		printer.Error("%v", err)
		os.Exit(1)
	}
}
