package main

import (
	"fmt"
	"os"

	"xlfilter/domain/core"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Load environment variables from .env file
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:           "xlfilter-cli",
		Short:         "Filter spreadsheet rows by one column and save the recognized columns",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newHeadersCmd(),
		newFilterCmd(),
		newPickCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		if core.IsCancellation(err) {
			return
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
