package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/welldone-cloud/aws-list-resources/providers"
	awsprovider "github.com/welldone-cloud/aws-list-resources/providers/aws"
)

// regionsCmd represents the regions command
var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "Print the regions enabled for the account",
	RunE:  runRegions,
}

func init() {
	rootCmd.AddCommand(regionsCmd)
}

func runRegions(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	provider, err := awsprovider.New(ctx, providers.Options{Profile: rootProfile})
	if err != nil {
		return err
	}

	if _, err := provider.CallerIdentity(ctx); err != nil {
		return fmt.Errorf("no or invalid AWS credentials configured: %w", err)
	}

	regions, err := provider.EnabledRegions(ctx)
	if err != nil {
		return err
	}

	for _, region := range regions {
		fmt.Fprintln(cmd.OutOrStdout(), region)
	}
	return nil
}
