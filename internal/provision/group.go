// Package provision creates and deletes an autoscaling group together with its
// load balancer, launch configuration and scaling policies.
//
// A Group is opened with default attributes, configured by the caller and
// closed exactly once. Closing resolves the derived names and runs the
// requested Action against AWS:
//
//	g, err := provision.Open(ctx, "MyWebApp", "us-east-1", provision.CreateIfMissing)
//	if err != nil {
//		return err
//	}
//	g.Config().Zones = []string{"us-east-1b"}
//	g.Config().MaxSize = 3
//	_ = g.Policy("plus-one-instance", func(p *provision.PolicyConfig) { p.Scaling = 1 })
//	err = g.Close(ctx)
//
// Sequences are not transactional: a failure leaves whatever was already
// created or deleted in place.
//
// Attributes are validated only before resources are created, so Delete and
// Nothing work on any configuration. Provision does not run the action when
// its body returns an error; the names are still resolved and the Group is
// closed.
package provision

import (
	"context"
	"fmt"
	"os"
	"slices"

	log "github.com/sirupsen/logrus"

	"github.com/vietdv277/scalekit/internal/aws"
	"github.com/vietdv277/scalekit/pkg/provider"
	"github.com/vietdv277/scalekit/pkg/types"
)

// DefaultRegion is used when Open is given an empty region
const DefaultRegion = "us-east-1"

type state int

const (
	stateConfiguring state = iota
	stateFinalizing
	stateCreating
	stateDeleting
	stateIdle
	stateDone
)

func (s state) String() string {
	switch s {
	case stateConfiguring:
		return "configuring"
	case stateFinalizing:
		return "finalizing"
	case stateCreating:
		return "creating"
	case stateDeleting:
		return "deleting"
	case stateIdle:
		return "idle"
	case stateDone:
		return "done"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Resource identifies a remote resource touched by a Group
type Resource struct {
	Kind string
	Name string
}

// Result reports what a closed Group did
type Result struct {
	Group        string
	Action       Action
	LoadBalancer *types.LoadBalancer // set when a load balancer was created
	Created      []Resource
	Deleted      []Resource
	Policies     []types.ScalingPolicy // submitted policies, with their ARNs
}

type options struct {
	cloud      provider.Cloud
	clientOpts []aws.ClientOption
	logger     log.FieldLogger
}

// Option customizes Open
type Option func(*options)

// WithCloud makes the Group use an existing remote API instead of connecting to AWS
func WithCloud(cloud provider.Cloud) Option {
	return func(o *options) {
		o.cloud = cloud
	}
}

// WithClientOptions passes extra options to the AWS client created by Open
func WithClientOptions(opts ...aws.ClientOption) Option {
	return func(o *options) {
		o.clientOpts = append(o.clientOpts, opts...)
	}
}

// WithLogger sets the logger used for progress messages
func WithLogger(logger log.FieldLogger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Group provisions a named autoscaling group and its dependent resources
type Group struct {
	name     string
	region   string
	action   Action
	config   Config
	policies []types.ScalingPolicy
	pending  int // index of the first policy not submitted yet
	cloud    provider.Cloud
	state    state
	result   Result
	log      log.FieldLogger
}

// Open returns a Group named name with the default configuration loaded.
// Unless WithCloud is given it connects to AWS in region, which fails early
// on missing credentials or an unknown region.
func Open(ctx context.Context, name, region string, action Action, opts ...Option) (*Group, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: group name is required", ErrInvalidConfig)
	}
	if region == "" {
		region = DefaultRegion
	}

	o := &options{logger: log.StandardLogger()}
	for _, opt := range opts {
		opt(o)
	}

	cloud := o.cloud
	if cloud == nil {
		clientOpts := append([]aws.ClientOption{aws.WithRegion(region)}, o.clientOpts...)
		client, err := aws.NewClient(ctx, clientOpts...)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to AWS: %w", err)
		}
		cloud = client
	}

	return &Group{
		name:   name,
		region: region,
		action: action,
		config: DefaultConfig(),
		cloud:  cloud,
		state:  stateConfiguring,
		result: Result{Group: name, Action: action},
		log: o.logger.WithFields(log.Fields{
			"group":  name,
			"region": region,
		}),
	}, nil
}

// Provision opens a Group, lets body configure it and closes it.
// The configuration is finalized on every path, but the action only runs
// when body succeeds; otherwise the body error is returned and AWS is left untouched.
func Provision(ctx context.Context, name, region string, action Action, body func(*Group) error, opts ...Option) (Result, error) {
	g, err := Open(ctx, name, region, action, opts...)
	if err != nil {
		return Result{}, err
	}

	if body != nil {
		if err := body(g); err != nil {
			g.Finalize()
			g.state = stateDone
			return g.result, err
		}
	}

	err = g.Close(ctx)
	return g.result, err
}

// Name returns the autoscaling group name
func (g *Group) Name() string {
	return g.name
}

// Region returns the region the Group works in
func (g *Group) Region() string {
	return g.region
}

// Action returns the action run on Close
func (g *Group) Action() Action {
	return g.action
}

// Config returns the mutable group configuration
func (g *Group) Config() *Config {
	return &g.config
}

// Cloud gives direct access to the remote API, e.g. for inspection with the Nothing action
func (g *Group) Cloud() provider.Cloud {
	return g.cloud
}

// Policies returns the registered policies in registration order
func (g *Group) Policies() []types.ScalingPolicy {
	return slices.Clone(g.policies)
}

// Result reports what Close did so far
func (g *Group) Result() Result {
	return g.result
}

// AddPolicy registers a policy to be created with the group
func (g *Group) AddPolicy(policy types.ScalingPolicy) error {
	if g.state == stateDone {
		return fmt.Errorf("group %s: %w", g.name, ErrClosed)
	}
	g.policies = append(g.policies, policy)
	return nil
}

// Policy builds a policy named name, lets configure change its defaults and registers it
func (g *Group) Policy(name string, configure func(*PolicyConfig)) error {
	b := OpenPolicy(name, g)
	if configure != nil {
		configure(b.Config())
	}
	return b.Close()
}

// Finalize resolves the derived names. Explicitly set names are kept.
// The configuration is only validated before resources are created, so a
// group whose attributes are no longer valid can still be deleted.
func (g *Group) Finalize() {
	if g.state == stateConfiguring {
		g.state = stateFinalizing
	}
	g.config.resolveNames(g.name)
}

// Close finalizes the configuration and runs the action. It can be called once.
func (g *Group) Close(ctx context.Context) error {
	if g.state == stateDone {
		return fmt.Errorf("group %s: %w", g.name, ErrClosed)
	}
	defer func() {
		g.state = stateDone
	}()

	g.Finalize()

	switch g.action {
	case Delete:
		g.state = stateDeleting
		return g.deleteAll(ctx)
	case CreateIfMissing:
		if err := g.config.Validate(); err != nil {
			return err
		}
		g.state = stateCreating
		return g.createAll(ctx)
	case CreateWithOverwrite:
		if err := g.config.Validate(); err != nil {
			return err
		}
		g.state = stateDeleting
		if err := g.deleteAll(ctx); err != nil {
			return err
		}
		g.state = stateCreating
		return g.createAll(ctx)
	case Nothing:
		g.state = stateIdle
		g.log.WithField("state", g.state).Debug("nothing to do")
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidAction, g.action)
}

// deleteAll removes the load balancer, the group and the launch configuration,
// in that order, skipping the ones that do not exist
func (g *Group) deleteAll(ctx context.Context) error {
	g.log.Infof("deleting %s", g.name)

	lbs, err := g.cloud.ListLoadBalancers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list load balancers: %w", err)
	}
	if hasName(lbs, g.config.LoadBalancerName, func(lb types.LoadBalancer) string { return lb.Name }) {
		if err := g.cloud.DeleteLoadBalancer(ctx, g.config.LoadBalancerName); err != nil {
			return fmt.Errorf("failed to delete load balancer %s: %w", g.config.LoadBalancerName, err)
		}
		g.deleted(KindLoadBalancer, g.config.LoadBalancerName)
	}

	groups, err := g.cloud.ListAutoScalingGroups(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to list auto scaling groups: %w", err)
	}
	if hasName(groups, g.name, func(asg types.AutoScalingGroup) string { return asg.Name }) {
		if err := g.cloud.DeleteAutoScalingGroup(ctx, g.name, g.config.ForceDelete); err != nil {
			return fmt.Errorf("failed to delete auto scaling group %s: %w", g.name, err)
		}
		g.deleted(KindAutoScalingGroup, g.name)
		g.pending = 0
	}

	lcs, err := g.cloud.ListLaunchConfigurations(ctx)
	if err != nil {
		return fmt.Errorf("failed to list launch configurations: %w", err)
	}
	if hasName(lcs, g.config.LaunchConfigName, func(lc types.LaunchConfiguration) string { return lc.Name }) {
		if err := g.cloud.DeleteLaunchConfiguration(ctx, g.config.LaunchConfigName); err != nil {
			return fmt.Errorf("failed to delete launch configuration %s: %w", g.config.LaunchConfigName, err)
		}
		g.deleted(KindLaunchConfiguration, g.config.LaunchConfigName)
	}

	return nil
}

// createAll creates every resource of the group in dependency order
func (g *Group) createAll(ctx context.Context) error {
	g.log.Infof("starting creation of %s", g.name)

	if g.config.CreateLoadBalancer {
		if err := g.createLoadBalancer(ctx); err != nil {
			return err
		}
	}
	if err := g.createLaunchConfig(ctx); err != nil {
		return err
	}
	if err := g.createAutoScalingGroup(ctx); err != nil {
		return err
	}
	if err := g.CreatePolicies(ctx); err != nil {
		return err
	}

	g.log.Info("operation finished successfully")
	if lb := g.result.LoadBalancer; lb != nil {
		g.log.Infof("map the CNAME of your website to: %s", lb.DNSName)
	}
	return nil
}

func (g *Group) createLoadBalancer(ctx context.Context) error {
	name := g.config.LoadBalancerName

	lbs, err := g.cloud.ListLoadBalancers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list load balancers: %w", err)
	}
	if hasName(lbs, name, func(lb types.LoadBalancer) string { return lb.Name }) {
		return &AlreadyExistsError{Kind: KindLoadBalancer, Name: name}
	}

	lb, err := g.cloud.CreateLoadBalancer(ctx, types.LoadBalancerSpec{
		Name:      name,
		AZs:       slices.Clone(g.config.Zones),
		Listeners: slices.Clone(g.config.Listeners),
	})
	if err != nil {
		return fmt.Errorf("failed to create load balancer %s: %w", name, err)
	}
	g.created(KindLoadBalancer, name)

	check := types.HealthCheck{
		Target:             g.config.HealthCheckTarget,
		Interval:           g.config.HealthCheckInterval,
		Timeout:            g.config.HealthCheckTimeout,
		HealthyThreshold:   g.config.HealthCheckHealthyThreshold,
		UnhealthyThreshold: g.config.HealthCheckUnhealthyThreshold,
	}
	if err := g.cloud.ConfigureHealthCheck(ctx, name, check); err != nil {
		return fmt.Errorf("failed to configure health check of %s: %w", name, err)
	}
	lb.HealthCheck = &check
	g.result.LoadBalancer = lb

	return nil
}

func (g *Group) createLaunchConfig(ctx context.Context) error {
	name := g.config.LaunchConfigName

	lcs, err := g.cloud.ListLaunchConfigurations(ctx)
	if err != nil {
		return fmt.Errorf("failed to list launch configurations: %w", err)
	}
	if hasName(lcs, name, func(lc types.LaunchConfiguration) string { return lc.Name }) {
		return &AlreadyExistsError{Kind: KindLaunchConfiguration, Name: name}
	}

	userData, err := g.userData(ctx)
	if err != nil {
		return err
	}

	err = g.cloud.CreateLaunchConfiguration(ctx, types.LaunchConfigSpec{
		Name:           name,
		ImageID:        g.config.AMI,
		InstanceType:   g.config.InstanceType,
		KeyName:        g.config.KeyName,
		SecurityGroups: slices.Clone(g.config.SecurityGroups),
		UserData:       userData,
		Monitoring:     g.config.InstanceMonitoring,
	})
	if err != nil {
		return fmt.Errorf("failed to create launch configuration %s: %w", name, err)
	}
	g.created(KindLaunchConfiguration, name)
	return nil
}

func (g *Group) createAutoScalingGroup(ctx context.Context) error {
	groups, err := g.cloud.ListAutoScalingGroups(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to list auto scaling groups: %w", err)
	}
	if hasName(groups, g.name, func(asg types.AutoScalingGroup) string { return asg.Name }) {
		return &AlreadyExistsError{Kind: KindAutoScalingGroup, Name: g.name}
	}

	var loadBalancers []string
	if g.config.CreateLoadBalancer {
		loadBalancers = append(loadBalancers, g.config.LoadBalancerName)
	}

	var targetGroupARNs []string
	if len(g.config.TargetGroups) > 0 {
		targetGroupARNs, err = g.cloud.TargetGroupARNs(ctx, g.config.TargetGroups)
		if err != nil {
			return fmt.Errorf("failed to resolve target groups: %w", err)
		}
	}

	err = g.cloud.CreateAutoScalingGroup(ctx, types.GroupSpec{
		Name:                g.name,
		LaunchConfiguration: g.config.LaunchConfigName,
		LoadBalancers:       loadBalancers,
		TargetGroupARNs:     targetGroupARNs,
		AZs:                 slices.Clone(g.config.Zones),
		MinSize:             g.config.MinSize,
		MaxSize:             g.config.MaxSize,
		HealthCheckPeriod:   g.config.HealthCheckPeriod,
		HealthCheckType:     g.config.HealthCheckType,
	})
	if err != nil {
		return fmt.Errorf("failed to create auto scaling group %s: %w", g.name, err)
	}
	g.created(KindAutoScalingGroup, g.name)

	err = g.cloud.TagAutoScalingGroup(ctx, g.name, types.Tag{
		Key:               "Name",
		Value:             g.config.NameTag,
		PropagateAtLaunch: true,
	})
	if err != nil {
		return fmt.Errorf("failed to tag auto scaling group %s: %w", g.name, err)
	}
	return nil
}

// CreatePolicies submits the registered policies that were not submitted yet,
// in registration order. Close calls it as the last creation step; with the
// Nothing action it can be called directly to add policies to an existing group.
// Deleting the group makes every policy pending again.
func (g *Group) CreatePolicies(ctx context.Context) error {
	for _, policy := range g.policies[g.pending:] {
		arn, err := g.cloud.CreateScalingPolicy(ctx, policy)
		if err != nil {
			return fmt.Errorf("failed to create scaling policy %s: %w", policy.Name, err)
		}
		g.pending++
		policy.ARN = arn
		g.result.Policies = append(g.result.Policies, policy)
		g.log.Debugf("scaling policy %s created", policy.Name)
	}
	return nil
}

// userData returns the raw boot-time user data from whichever source is configured
func (g *Group) userData(ctx context.Context) (string, error) {
	switch {
	case g.config.UserDataFile != "":
		data, err := os.ReadFile(g.config.UserDataFile)
		if err != nil {
			return "", fmt.Errorf("failed to read user data file: %w", err)
		}
		return string(data), nil
	case g.config.UserDataParameter != "":
		value, err := g.cloud.GetParameter(ctx, g.config.UserDataParameter)
		if err != nil {
			return "", fmt.Errorf("failed to read user data parameter %s: %w", g.config.UserDataParameter, err)
		}
		return value, nil
	}
	return g.config.UserData, nil
}

func (g *Group) created(kind, name string) {
	g.result.Created = append(g.result.Created, Resource{Kind: kind, Name: name})
	g.log.Debugf("%s %s created", kind, name)
}

func (g *Group) deleted(kind, name string) {
	g.result.Deleted = append(g.result.Deleted, Resource{Kind: kind, Name: name})
	g.log.Debugf("%s %s deleted", kind, name)
}

func hasName[T any](items []T, name string, nameOf func(T) string) bool {
	return slices.ContainsFunc(items, func(item T) bool {
		return nameOf(item) == name
	})
}
