package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/welldone-cloud/aws-list-resources/providers"
	awsprovider "github.com/welldone-cloud/aws-list-resources/providers/aws"
)

var typesRegion string

// typesCmd represents the types command
var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Print the listable resource type catalog of one region",
	Long: `Print every resource type that supports the Cloud Control List operation
in the given region, as reported by the CloudFormation registry. The catalog
differs between regions.`,
	RunE: runTypes,
}

func init() {
	rootCmd.AddCommand(typesCmd)

	typesCmd.Flags().StringVarP(&typesRegion, "region", "r", "", "region to query")
	_ = typesCmd.MarkFlagRequired("region")
}

func runTypes(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	provider, err := awsprovider.New(ctx, providers.Options{Profile: rootProfile})
	if err != nil {
		return err
	}

	resourceTypes, err := provider.SupportedResourceTypes(ctx, typesRegion)
	if err != nil {
		return err
	}

	for _, resourceType := range resourceTypes {
		fmt.Fprintln(cmd.OutOrStdout(), resourceType)
	}
	return nil
}
