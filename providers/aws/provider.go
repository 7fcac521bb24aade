// Package aws implements the providers.CloudAPI contract on top of the AWS
// SDK, using the Cloud Control API for generic resource listing and the
// CloudFormation registry for the per-region type catalog.
package aws

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudcontrol"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/welldone-cloud/aws-list-resources/providers"
)

const defaultHomeRegion = "us-east-1"

// Provider implements providers.CloudAPI using AWS SDK v2.
type Provider struct {
	cfg aws.Config

	stsClient *sts.Client
	ec2Client *ec2.Client

	// Region-scoped clients, created lazily. Workers for different
	// regions run concurrently.
	mu         sync.Mutex
	cfnClients map[string]*cloudformation.Client
	ccClients  map[string]*cloudcontrol.Client
}

// New creates a Provider from the given options. Credential resolution is
// delegated entirely to the SDK (env, shared config, IMDS).
func New(ctx context.Context, opts providers.Options) (*Provider, error) {
	homeRegion := opts.HomeRegion
	if homeRegion == "" {
		homeRegion = defaultHomeRegion
	}
	maxRetries := opts.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 5
	}

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(homeRegion),
		config.WithRetryMode(aws.RetryModeStandard),
		config.WithRetryMaxAttempts(maxRetries),
	}
	if opts.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(opts.Profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &Provider{
		cfg:        cfg,
		stsClient:  sts.NewFromConfig(cfg),
		ec2Client:  ec2.NewFromConfig(cfg),
		cfnClients: make(map[string]*cloudformation.Client),
		ccClients:  make(map[string]*cloudcontrol.Client),
	}, nil
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "aws"
}

func (p *Provider) cloudformationClient(region string) *cloudformation.Client {
	p.mu.Lock()
	defer p.mu.Unlock()

	if client, ok := p.cfnClients[region]; ok {
		return client
	}
	client := cloudformation.NewFromConfig(p.cfg, func(o *cloudformation.Options) {
		o.Region = region
	})
	p.cfnClients[region] = client
	return client
}

func (p *Provider) cloudcontrolClient(region string) *cloudcontrol.Client {
	p.mu.Lock()
	defer p.mu.Unlock()

	if client, ok := p.ccClients[region]; ok {
		return client
	}
	client := cloudcontrol.NewFromConfig(p.cfg, func(o *cloudcontrol.Options) {
		o.Region = region
	})
	p.ccClients[region] = client
	return client
}

// Ensure Provider implements the CloudAPI contract.
var _ providers.CloudAPI = (*Provider)(nil)
