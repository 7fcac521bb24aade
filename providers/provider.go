// Package providers defines the cloud API surface the scanner drives.
package providers

import (
	"context"
	"fmt"
)

// Identity describes the credentials the run executes under.
type Identity struct {
	AccountID string
	ARN       string
	UserID    string
}

// CloudAPI is the provider contract for an enumeration run. All calls are
// read-only and safe to issue concurrently.
type CloudAPI interface {
	// CallerIdentity resolves the account and principal behind the
	// configured credentials. Failure means no usable credentials.
	CallerIdentity(ctx context.Context) (Identity, error)

	// EnabledRegions returns the sorted list of regions enabled for the
	// account.
	EnabledRegions(ctx context.Context) ([]string, error)

	// SupportedResourceTypes returns the resource type names that support
	// the generic List operation in the given region.
	SupportedResourceTypes(ctx context.Context, region string) ([]string, error)

	// ListResources returns the identifiers of all resources of the given
	// type in the given region. When listing fails for a reason specific
	// to the (region, type) pair, the error is a *ListError.
	ListResources(ctx context.Context, region, resourceType string) ([]string, error)
}

// Options configures provider construction. State is passed explicitly so
// nothing provider-related lives in process globals.
type Options struct {
	// Profile is an optional named credential profile.
	Profile string

	// HomeRegion is used for account-level calls (identity, region
	// listing). Defaults to us-east-1.
	HomeRegion string

	// MaxRetries bounds the SDK's standard-mode retryer.
	MaxRetries int
}

// Reason codes for resource types that could not be listed.
type Reason string

const (
	ReasonAccessDenied       Reason = "access_denied"
	ReasonRequiresParameters Reason = "requires_parameters"
	ReasonThrottled          Reason = "throttled"
	ReasonAPIError           Reason = "api_error"
)

// ListError reports why one (region, resource type) pair could not be
// listed. It never aborts a run; the scanner records it in the report.
type ListError struct {
	Region       string
	ResourceType string
	Reason       Reason
	Err          error
}

func (e *ListError) Error() string {
	return fmt.Sprintf("list %s in %s: %s: %v", e.ResourceType, e.Region, e.Reason, e.Err)
}

func (e *ListError) Unwrap() error {
	return e.Err
}
