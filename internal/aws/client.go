package aws

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	elb "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancing"
	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	log "github.com/sirupsen/logrus"

	"github.com/vietdv277/scalekit/pkg/provider"
)

// Environment variables holding the credentials
const (
	AccessKeyEnv = "AWS_ACCESS_KEY"
	SecretKeyEnv = "AWS_SECRET_KEY"
)

// AutoScalingAPI is the subset of the Auto Scaling client used by Client
type AutoScalingAPI interface {
	DescribeAutoScalingGroups(ctx context.Context, params *autoscaling.DescribeAutoScalingGroupsInput, optFns ...func(*autoscaling.Options)) (*autoscaling.DescribeAutoScalingGroupsOutput, error)
	CreateAutoScalingGroup(ctx context.Context, params *autoscaling.CreateAutoScalingGroupInput, optFns ...func(*autoscaling.Options)) (*autoscaling.CreateAutoScalingGroupOutput, error)
	DeleteAutoScalingGroup(ctx context.Context, params *autoscaling.DeleteAutoScalingGroupInput, optFns ...func(*autoscaling.Options)) (*autoscaling.DeleteAutoScalingGroupOutput, error)
	CreateOrUpdateTags(ctx context.Context, params *autoscaling.CreateOrUpdateTagsInput, optFns ...func(*autoscaling.Options)) (*autoscaling.CreateOrUpdateTagsOutput, error)
	DescribeLaunchConfigurations(ctx context.Context, params *autoscaling.DescribeLaunchConfigurationsInput, optFns ...func(*autoscaling.Options)) (*autoscaling.DescribeLaunchConfigurationsOutput, error)
	CreateLaunchConfiguration(ctx context.Context, params *autoscaling.CreateLaunchConfigurationInput, optFns ...func(*autoscaling.Options)) (*autoscaling.CreateLaunchConfigurationOutput, error)
	DeleteLaunchConfiguration(ctx context.Context, params *autoscaling.DeleteLaunchConfigurationInput, optFns ...func(*autoscaling.Options)) (*autoscaling.DeleteLaunchConfigurationOutput, error)
	PutScalingPolicy(ctx context.Context, params *autoscaling.PutScalingPolicyInput, optFns ...func(*autoscaling.Options)) (*autoscaling.PutScalingPolicyOutput, error)
	DescribePolicies(ctx context.Context, params *autoscaling.DescribePoliciesInput, optFns ...func(*autoscaling.Options)) (*autoscaling.DescribePoliciesOutput, error)
}

// ELBAPI is the subset of the classic Elastic Load Balancing client used by Client
type ELBAPI interface {
	DescribeLoadBalancers(ctx context.Context, params *elb.DescribeLoadBalancersInput, optFns ...func(*elb.Options)) (*elb.DescribeLoadBalancersOutput, error)
	CreateLoadBalancer(ctx context.Context, params *elb.CreateLoadBalancerInput, optFns ...func(*elb.Options)) (*elb.CreateLoadBalancerOutput, error)
	ConfigureHealthCheck(ctx context.Context, params *elb.ConfigureHealthCheckInput, optFns ...func(*elb.Options)) (*elb.ConfigureHealthCheckOutput, error)
	DeleteLoadBalancer(ctx context.Context, params *elb.DeleteLoadBalancerInput, optFns ...func(*elb.Options)) (*elb.DeleteLoadBalancerOutput, error)
}

// ELBV2API is the subset of the Elastic Load Balancing v2 client used by Client
type ELBV2API interface {
	DescribeTargetGroups(ctx context.Context, params *elbv2.DescribeTargetGroupsInput, optFns ...func(*elbv2.Options)) (*elbv2.DescribeTargetGroupsOutput, error)
}

// EC2API is the subset of the EC2 client used by Client
type EC2API interface {
	DescribeRegions(ctx context.Context, params *ec2.DescribeRegionsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeRegionsOutput, error)
}

// SSMAPI is the subset of the SSM client used by Client
type SSMAPI interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// STSAPI is the subset of the STS client used by Client
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// Services groups the SDK clients a Client talks to
type Services struct {
	ASG   AutoScalingAPI
	ELB   ELBAPI
	ELBv2 ELBV2API
	EC2   EC2API
	SSM   SSMAPI
	STS   STSAPI
}

// ServiceFactory builds the SDK clients from a loaded configuration
type ServiceFactory func(cfg aws.Config) Services

// NewServices is the default ServiceFactory
func NewServices(cfg aws.Config) Services {
	return Services{
		ASG:   autoscaling.NewFromConfig(cfg),
		ELB:   elb.NewFromConfig(cfg),
		ELBv2: elbv2.NewFromConfig(cfg),
		EC2:   ec2.NewFromConfig(cfg),
		SSM:   ssm.NewFromConfig(cfg),
		STS:   sts.NewFromConfig(cfg),
	}
}

var _ provider.Cloud = (*Client)(nil)

// Client wraps AWS SDK clients
type Client struct {
	Services

	region      string
	lookupEnv   func(string) (string, bool)
	newServices ServiceFactory
	checkRegion bool
}

// ClientOption allows customizing the AWS Client
type ClientOption func(*Client)

// WithRegion sets the AWS region for the client
func WithRegion(region string) ClientOption {
	return func(c *Client) {
		c.region = region
	}
}

// WithEnv replaces the environment lookup used to read the credentials
func WithEnv(lookup func(string) (string, bool)) ClientOption {
	return func(c *Client) {
		c.lookupEnv = lookup
	}
}

// WithServiceFactory replaces the constructor of the SDK clients
func WithServiceFactory(factory ServiceFactory) ClientOption {
	return func(c *Client) {
		c.newServices = factory
	}
}

// WithoutRegionCheck skips matching the region against the regions known to EC2
func WithoutRegionCheck() ClientOption {
	return func(c *Client) {
		c.checkRegion = false
	}
}

// NewClient creates a new AWS Client with the given options.
// Credentials are read from AWS_ACCESS_KEY and AWS_SECRET_KEY before any
// SDK client exists, then the region is matched against the known regions.
func NewClient(ctx context.Context, opts ...ClientOption) (*Client, error) {
	c := &Client{
		lookupEnv:   os.LookupEnv,
		newServices: NewServices,
		checkRegion: true,
	}

	// Apply options
	for _, opt := range opts {
		opt(c)
	}

	if c.region == "" {
		return nil, fmt.Errorf("%w: no region given", provider.ErrUnknownRegion)
	}

	creds, err := LoadCredentials(c.lookupEnv)
	if err != nil {
		return nil, err
	}

	// Load AWS config
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(c.region),
		config.WithCredentialsProvider(creds),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config: %w", err)
	}

	c.Services = c.newServices(cfg)

	if c.checkRegion {
		if err := c.verifyRegion(ctx); err != nil {
			return nil, err
		}
	}

	log.WithField("region", c.region).Debug("connected to AWS")
	return c, nil
}

// LoadCredentials reads the access and secret keys through lookup
func LoadCredentials(lookup func(string) (string, bool)) (credentials.StaticCredentialsProvider, error) {
	var missing []string
	values := make(map[string]string, 2)
	for _, name := range []string{AccessKeyEnv, SecretKeyEnv} {
		v, ok := lookup(name)
		if !ok || v == "" {
			missing = append(missing, name)
			continue
		}
		values[name] = v
	}

	if len(missing) > 0 {
		return credentials.StaticCredentialsProvider{}, fmt.Errorf("%w: you must export the following environment variables: %s",
			provider.ErrMissingCredentials, strings.Join(missing, ", "))
	}

	return credentials.NewStaticCredentialsProvider(values[AccessKeyEnv], values[SecretKeyEnv], ""), nil
}

// Region returns the client's region
func (c *Client) Region() string {
	return c.region
}

// deref safely dereferences a string pointer
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// deref32 safely dereferences an int32 pointer
func deref32(i *int32) int32 {
	if i == nil {
		return 0
	}
	return *i
}

// derefBool safely dereferences a bool pointer
func derefBool(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}
