package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/vietdv277/scalekit/pkg/types"
)

// Common errors
var (
	ErrConfiguration = errors.New("configuration error")
	ErrNotFound      = errors.New("resource not found")

	ErrMissingCredentials = fmt.Errorf("%w: missing credentials", ErrConfiguration)
	ErrUnknownRegion      = fmt.Errorf("%w: unknown region", ErrConfiguration)
)

// GroupFilter contains filters for Auto Scaling Group listing
type GroupFilter struct {
	NamePattern string   // case-insensitive substring
	Names       []string // exact names, passed to the API
}

// LoadBalancerProvider defines the classic load balancer operations
type LoadBalancerProvider interface {
	// ListLoadBalancers returns every load balancer in the region
	ListLoadBalancers(ctx context.Context) ([]types.LoadBalancer, error)

	// CreateLoadBalancer creates a load balancer and returns it with its DNS name
	CreateLoadBalancer(ctx context.Context, spec types.LoadBalancerSpec) (*types.LoadBalancer, error)

	// ConfigureHealthCheck attaches a health check to a load balancer
	ConfigureHealthCheck(ctx context.Context, name string, check types.HealthCheck) error

	// DeleteLoadBalancer removes a load balancer
	DeleteLoadBalancer(ctx context.Context, name string) error
}

// AutoScalingProvider defines the Auto Scaling operations
type AutoScalingProvider interface {
	// ListAutoScalingGroups returns groups matching the filter
	ListAutoScalingGroups(ctx context.Context, filter *GroupFilter) ([]types.AutoScalingGroup, error)

	// CreateAutoScalingGroup creates a group
	CreateAutoScalingGroup(ctx context.Context, spec types.GroupSpec) error

	// DeleteAutoScalingGroup removes a group
	DeleteAutoScalingGroup(ctx context.Context, name string, force bool) error

	// TagAutoScalingGroup creates or updates tags on a group
	TagAutoScalingGroup(ctx context.Context, name string, tags ...types.Tag) error

	// ListLaunchConfigurations returns every launch configuration in the region
	ListLaunchConfigurations(ctx context.Context) ([]types.LaunchConfiguration, error)

	// CreateLaunchConfiguration creates a launch configuration
	CreateLaunchConfiguration(ctx context.Context, spec types.LaunchConfigSpec) error

	// DeleteLaunchConfiguration removes a launch configuration
	DeleteLaunchConfiguration(ctx context.Context, name string) error

	// CreateScalingPolicy creates or replaces a scaling policy on its group
	CreateScalingPolicy(ctx context.Context, policy types.ScalingPolicy) (string, error)

	// ListScalingPolicies returns the scaling policies of a group
	ListScalingPolicies(ctx context.Context, group string) ([]types.ScalingPolicy, error)
}

// TargetGroupResolver resolves application/network target group names
type TargetGroupResolver interface {
	// TargetGroupARNs returns the ARNs of the named target groups, in order
	TargetGroupARNs(ctx context.Context, names []string) ([]string, error)
}

// ParameterSource reads values from a parameter store
type ParameterSource interface {
	// GetParameter returns the decrypted value of a parameter
	GetParameter(ctx context.Context, name string) (string, error)
}

// Cloud is the remote resource-management API used by the provisioners
type Cloud interface {
	LoadBalancerProvider
	AutoScalingProvider
	TargetGroupResolver
	ParameterSource
}
