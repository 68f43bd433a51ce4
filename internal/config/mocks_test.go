package config

import (
	"context"

	"github.com/vietdv277/scalekit/pkg/provider"
	"github.com/vietdv277/scalekit/pkg/types"
)

// nopCloud answers every call with an empty result
type nopCloud struct{}

func (nopCloud) ListLoadBalancers(context.Context) ([]types.LoadBalancer, error) {
	return nil, nil
}

func (nopCloud) CreateLoadBalancer(_ context.Context, spec types.LoadBalancerSpec) (*types.LoadBalancer, error) {
	return &types.LoadBalancer{Name: spec.Name}, nil
}

func (nopCloud) ConfigureHealthCheck(context.Context, string, types.HealthCheck) error {
	return nil
}

func (nopCloud) DeleteLoadBalancer(context.Context, string) error {
	return nil
}

func (nopCloud) ListAutoScalingGroups(context.Context, *provider.GroupFilter) ([]types.AutoScalingGroup, error) {
	return nil, nil
}

func (nopCloud) CreateAutoScalingGroup(context.Context, types.GroupSpec) error {
	return nil
}

func (nopCloud) DeleteAutoScalingGroup(context.Context, string, bool) error {
	return nil
}

func (nopCloud) TagAutoScalingGroup(context.Context, string, ...types.Tag) error {
	return nil
}

func (nopCloud) CreateLaunchConfiguration(context.Context, types.LaunchConfigSpec) error {
	return nil
}

func (nopCloud) DeleteLaunchConfiguration(context.Context, string) error {
	return nil
}

func (nopCloud) ListLaunchConfigurations(context.Context) ([]types.LaunchConfiguration, error) {
	return nil, nil
}

func (nopCloud) CreateScalingPolicy(context.Context, types.ScalingPolicy) (string, error) {
	return "", nil
}

func (nopCloud) ListScalingPolicies(context.Context, string) ([]types.ScalingPolicy, error) {
	return nil, nil
}

func (nopCloud) TargetGroupARNs(context.Context, []string) ([]string, error) {
	return nil, nil
}

func (nopCloud) GetParameter(context.Context, string) (string, error) {
	return "", nil
}
