package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/welldone-cloud/aws-list-resources/providers"
)

// callerIdentityAPI is the STS slice needed for the credential check.
type callerIdentityAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// CallerIdentity resolves the account and principal behind the configured
// credentials.
func (p *Provider) CallerIdentity(ctx context.Context) (providers.Identity, error) {
	return callerIdentity(ctx, p.stsClient)
}

func callerIdentity(ctx context.Context, client callerIdentityAPI) (providers.Identity, error) {
	out, err := client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return providers.Identity{}, fmt.Errorf("failed to get caller identity: %w", err)
	}

	return providers.Identity{
		AccountID: aws.ToString(out.Account),
		ARN:       aws.ToString(out.Arn),
		UserID:    aws.ToString(out.UserId),
	}, nil
}
