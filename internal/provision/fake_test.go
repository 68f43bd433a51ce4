package provision

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/vietdv277/scalekit/pkg/provider"
	"github.com/vietdv277/scalekit/pkg/types"
)

// fakeCloud keeps resources in memory and logs every call as "Method name"
type fakeCloud struct {
	lbs      []types.LoadBalancer
	groups   []types.AutoScalingGroup
	lcs      []types.LaunchConfiguration
	policies []types.ScalingPolicy
	tags     map[string][]types.Tag
	params   map[string]string
	tgs      map[string]string

	healthChecks map[string]types.HealthCheck
	lastLC       types.LaunchConfigSpec
	lastGroup    types.GroupSpec
	lastForce    bool

	// failOn makes the named method return errRemote
	failOn string
	calls  []string
}

var errRemote = fmt.Errorf("remote failure")

var _ provider.Cloud = (*fakeCloud)(nil)

func newFakeCloud() *fakeCloud {
	return &fakeCloud{
		tags:         map[string][]types.Tag{},
		params:       map[string]string{},
		tgs:          map[string]string{},
		healthChecks: map[string]types.HealthCheck{},
	}
}

func (f *fakeCloud) call(method, name string) error {
	f.calls = append(f.calls, strings.TrimSpace(method+" "+name))
	if f.failOn == method {
		return errRemote
	}
	return nil
}

// mutations returns the calls that are not listings
func (f *fakeCloud) mutations() []string {
	var out []string
	for _, c := range f.calls {
		if !strings.HasPrefix(c, "List") {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeCloud) ListLoadBalancers(context.Context) ([]types.LoadBalancer, error) {
	if err := f.call("ListLoadBalancers", ""); err != nil {
		return nil, err
	}
	return slices.Clone(f.lbs), nil
}

func (f *fakeCloud) CreateLoadBalancer(_ context.Context, spec types.LoadBalancerSpec) (*types.LoadBalancer, error) {
	if err := f.call("CreateLoadBalancer", spec.Name); err != nil {
		return nil, err
	}
	lb := types.LoadBalancer{
		Name:      spec.Name,
		DNSName:   spec.Name + "-1234.us-east-1.elb.amazonaws.com",
		AZs:       spec.AZs,
		Listeners: spec.Listeners,
	}
	f.lbs = append(f.lbs, lb)
	return &lb, nil
}

func (f *fakeCloud) ConfigureHealthCheck(_ context.Context, name string, check types.HealthCheck) error {
	if err := f.call("ConfigureHealthCheck", name); err != nil {
		return err
	}
	f.healthChecks[name] = check
	return nil
}

func (f *fakeCloud) DeleteLoadBalancer(_ context.Context, name string) error {
	if err := f.call("DeleteLoadBalancer", name); err != nil {
		return err
	}
	f.lbs = slices.DeleteFunc(f.lbs, func(lb types.LoadBalancer) bool { return lb.Name == name })
	return nil
}

func (f *fakeCloud) ListAutoScalingGroups(context.Context, *provider.GroupFilter) ([]types.AutoScalingGroup, error) {
	if err := f.call("ListAutoScalingGroups", ""); err != nil {
		return nil, err
	}
	return slices.Clone(f.groups), nil
}

func (f *fakeCloud) CreateAutoScalingGroup(_ context.Context, spec types.GroupSpec) error {
	if err := f.call("CreateAutoScalingGroup", spec.Name); err != nil {
		return err
	}
	f.lastGroup = spec
	f.groups = append(f.groups, types.AutoScalingGroup{
		Name:                spec.Name,
		LaunchConfiguration: spec.LaunchConfiguration,
		LoadBalancers:       spec.LoadBalancers,
		MinSize:             spec.MinSize,
		MaxSize:             spec.MaxSize,
	})
	return nil
}

func (f *fakeCloud) DeleteAutoScalingGroup(_ context.Context, name string, force bool) error {
	if err := f.call("DeleteAutoScalingGroup", name); err != nil {
		return err
	}
	f.lastForce = force
	f.groups = slices.DeleteFunc(f.groups, func(g types.AutoScalingGroup) bool { return g.Name == name })
	return nil
}

func (f *fakeCloud) TagAutoScalingGroup(_ context.Context, name string, tags ...types.Tag) error {
	if err := f.call("TagAutoScalingGroup", name); err != nil {
		return err
	}
	f.tags[name] = append(f.tags[name], tags...)
	return nil
}

func (f *fakeCloud) ListLaunchConfigurations(context.Context) ([]types.LaunchConfiguration, error) {
	if err := f.call("ListLaunchConfigurations", ""); err != nil {
		return nil, err
	}
	return slices.Clone(f.lcs), nil
}

func (f *fakeCloud) CreateLaunchConfiguration(_ context.Context, spec types.LaunchConfigSpec) error {
	if err := f.call("CreateLaunchConfiguration", spec.Name); err != nil {
		return err
	}
	f.lastLC = spec
	f.lcs = append(f.lcs, types.LaunchConfiguration{Name: spec.Name, ImageID: spec.ImageID})
	return nil
}

func (f *fakeCloud) DeleteLaunchConfiguration(_ context.Context, name string) error {
	if err := f.call("DeleteLaunchConfiguration", name); err != nil {
		return err
	}
	f.lcs = slices.DeleteFunc(f.lcs, func(lc types.LaunchConfiguration) bool { return lc.Name == name })
	return nil
}

func (f *fakeCloud) CreateScalingPolicy(_ context.Context, policy types.ScalingPolicy) (string, error) {
	if err := f.call("CreateScalingPolicy", policy.Name); err != nil {
		return "", err
	}
	f.policies = append(f.policies, policy)
	return "arn:aws:autoscaling:policy/" + policy.Name, nil
}

func (f *fakeCloud) ListScalingPolicies(_ context.Context, group string) ([]types.ScalingPolicy, error) {
	if err := f.call("ListScalingPolicies", group); err != nil {
		return nil, err
	}
	var out []types.ScalingPolicy
	for _, p := range f.policies {
		if p.Group == group {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeCloud) TargetGroupARNs(_ context.Context, names []string) ([]string, error) {
	if err := f.call("TargetGroupARNs", strings.Join(names, ",")); err != nil {
		return nil, err
	}
	var arns []string
	for _, n := range names {
		arn, ok := f.tgs[n]
		if !ok {
			return nil, fmt.Errorf("target group %q: %w", n, provider.ErrNotFound)
		}
		arns = append(arns, arn)
	}
	return arns, nil
}

func (f *fakeCloud) GetParameter(_ context.Context, name string) (string, error) {
	if err := f.call("GetParameter", name); err != nil {
		return "", err
	}
	v, ok := f.params[name]
	if !ok {
		return "", fmt.Errorf("parameter %q: %w", name, provider.ErrNotFound)
	}
	return v, nil
}
