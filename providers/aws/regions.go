package aws

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// describeRegionsAPI is the EC2 slice needed for region resolution.
type describeRegionsAPI interface {
	DescribeRegions(ctx context.Context, params *ec2.DescribeRegionsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeRegionsOutput, error)
}

// EnabledRegions returns the sorted list of regions enabled for the account.
// Opted-out regions are excluded.
func (p *Provider) EnabledRegions(ctx context.Context) ([]string, error) {
	return enabledRegions(ctx, p.ec2Client)
}

func enabledRegions(ctx context.Context, client describeRegionsAPI) ([]string, error) {
	out, err := client.DescribeRegions(ctx, &ec2.DescribeRegionsInput{
		AllRegions: aws.Bool(false),
	})
	if err != nil {
		return nil, fmt.Errorf("unable to list regions enabled in the account: %w", err)
	}

	regions := make([]string, 0, len(out.Regions))
	for _, region := range out.Regions {
		regions = append(regions, aws.ToString(region.RegionName))
	}
	sort.Strings(regions)

	return regions, nil
}
