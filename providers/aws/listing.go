package aws

import (
	"context"
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudcontrol"
	"github.com/aws/smithy-go"

	"github.com/welldone-cloud/aws-list-resources/providers"
)

// ListResources lists all resource identifiers of one type in one region via
// the Cloud Control API, following pagination until exhausted. Failures are
// classified into a *providers.ListError so the scanner can record them
// without aborting the run.
func (p *Provider) ListResources(ctx context.Context, region, resourceType string) ([]string, error) {
	return listResources(ctx, p.cloudcontrolClient(region), region, resourceType)
}

func listResources(ctx context.Context, client cloudcontrol.ListResourcesAPIClient, region, resourceType string) ([]string, error) {
	var identifiers []string

	paginator := cloudcontrol.NewListResourcesPaginator(client, &cloudcontrol.ListResourcesInput{
		TypeName: aws.String(resourceType),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, &providers.ListError{
				Region:       region,
				ResourceType: resourceType,
				Reason:       classifyListError(err),
				Err:          err,
			}
		}
		for _, resource := range page.ResourceDescriptions {
			identifiers = append(identifiers, aws.ToString(resource.Identifier))
		}
	}

	return identifiers, nil
}

// classifyListError maps the long, non-uniform set of exceptions the Cloud
// Control API passes through from underlying services onto a small set of
// reason codes. Keyword matching covers services whose error codes don't
// follow the usual naming.
func classifyListError(err error) providers.Reason {
	var code string
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code = apiErr.ErrorCode()
	}

	message := strings.ToLower(err.Error())

	switch code {
	case "AccessDeniedException", "AccessDenied", "UnauthorizedOperation",
		"AuthorizationError", "AuthFailure":
		return providers.ReasonAccessDenied
	case "UnsupportedActionException", "InvalidRequestException":
		return providers.ReasonRequiresParameters
	case "ThrottlingException", "Throttling", "TooManyRequestsException",
		"RequestLimitExceeded":
		return providers.ReasonThrottled
	}

	for _, keyword := range []string{"denied", "authorization", "authorized"} {
		if strings.Contains(message, keyword) {
			return providers.ReasonAccessDenied
		}
	}
	if strings.Contains(message, "throttl") || strings.Contains(message, "rate exceeded") {
		return providers.ReasonThrottled
	}
	if strings.Contains(message, "required property") || strings.Contains(message, "required input") {
		return providers.ReasonRequiresParameters
	}

	return providers.ReasonAPIError
}
