package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"

	rootProfile string
	rootDebug   bool

	rootCmd = &cobra.Command{
		Use:   "aws-list-resources",
		Short: "Enumerate AWS resources via the Cloud Control API",
		Long: `aws-list-resources enumerates the resources of an AWS account across one
or more regions. It discovers every resource type the account and region
support, drives the Cloud Control API's generic List operation for each of
them, and aggregates the results into a single JSON report.

The run is one-shot and read-only: nothing is created, changed or deleted.`,
		Version: version,
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootProfile, "profile", "", "optional named AWS profile to use")
	rootCmd.PersistentFlags().BoolVar(&rootDebug, "debug", false, "enable debug logging")
}
