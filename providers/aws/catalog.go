package aws

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	cfntypes "github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
)

// provisioningTypes are the registry provisioning types whose resource types
// support the Cloud Control List operation.
var provisioningTypes = []cfntypes.ProvisioningType{
	cfntypes.ProvisioningTypeFullyMutable,
	cfntypes.ProvisioningTypeImmutable,
}

// SupportedResourceTypes queries the CloudFormation registry of one region
// for all live, public AWS resource types. Each region may have a different
// enabled set, so nothing is cached across regions.
func (p *Provider) SupportedResourceTypes(ctx context.Context, region string) ([]string, error) {
	return supportedResourceTypes(ctx, p.cloudformationClient(region))
}

func supportedResourceTypes(ctx context.Context, client cloudformation.ListTypesAPIClient) ([]string, error) {
	seen := make(map[string]struct{})

	for _, provisioningType := range provisioningTypes {
		paginator := cloudformation.NewListTypesPaginator(client, &cloudformation.ListTypesInput{
			Type:             cfntypes.RegistryTypeResource,
			Visibility:       cfntypes.VisibilityPublic,
			ProvisioningType: provisioningType,
			DeprecatedStatus: cfntypes.DeprecatedStatusLive,
			Filters: &cfntypes.TypeFilters{
				Category: cfntypes.CategoryAwsTypes,
			},
		})

		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to list resource types: %w", err)
			}
			for _, summary := range page.TypeSummaries {
				seen[aws.ToString(summary.TypeName)] = struct{}{}
			}
		}
	}

	resourceTypes := make([]string, 0, len(seen))
	for name := range seen {
		resourceTypes = append(resourceTypes, name)
	}
	sort.Strings(resourceTypes)

	return resourceTypes, nil
}
