package aws

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	asgtypes "github.com/aws/aws-sdk-go-v2/service/autoscaling/types"

	"github.com/vietdv277/scalekit/pkg/provider"
	pkgtypes "github.com/vietdv277/scalekit/pkg/types"
)

// ListAutoScalingGroups returns a list of Auto Scaling Groups
func (c *Client) ListAutoScalingGroups(ctx context.Context, filter *provider.GroupFilter) ([]pkgtypes.AutoScalingGroup, error) {
	if filter == nil {
		filter = &provider.GroupFilter{}
	}

	var allGroups []asgtypes.AutoScalingGroup
	var nextToken *string

	for {
		describeInput := &autoscaling.DescribeAutoScalingGroupsInput{
			NextToken: nextToken,
		}

		if len(filter.Names) > 0 {
			describeInput.AutoScalingGroupNames = filter.Names
		}

		output, err := c.ASG.DescribeAutoScalingGroups(ctx, describeInput)
		if err != nil {
			return nil, fmt.Errorf("failed to describe auto scaling groups: %w", err)
		}

		allGroups = append(allGroups, output.AutoScalingGroups...)

		if output.NextToken == nil {
			break
		}
		nextToken = output.NextToken
	}

	// Convert to internal type and filter by name pattern
	var groups []pkgtypes.AutoScalingGroup
	for _, g := range allGroups {
		asg := toAutoScalingGroup(g)

		if filter.NamePattern != "" {
			if !strings.Contains(strings.ToLower(asg.Name), strings.ToLower(filter.NamePattern)) {
				continue
			}
		}

		groups = append(groups, asg)
	}

	return groups, nil
}

// DescribeAutoScalingGroup returns detailed info about a specific ASG including its instances
func (c *Client) DescribeAutoScalingGroup(ctx context.Context, name string) (*pkgtypes.AutoScalingGroup, error) {
	groups, err := c.ListAutoScalingGroups(ctx, &provider.GroupFilter{Names: []string{name}})
	if err != nil {
		return nil, err
	}

	for i := range groups {
		if groups[i].Name == name {
			return &groups[i], nil
		}
	}

	return nil, fmt.Errorf("auto scaling group %q: %w", name, provider.ErrNotFound)
}

// CreateAutoScalingGroup creates a group bound to a launch configuration
func (c *Client) CreateAutoScalingGroup(ctx context.Context, spec pkgtypes.GroupSpec) error {
	input := &autoscaling.CreateAutoScalingGroupInput{
		AutoScalingGroupName:    aws.String(spec.Name),
		LaunchConfigurationName: aws.String(spec.LaunchConfiguration),
		AvailabilityZones:       spec.AZs,
		MinSize:                 aws.Int32(int32(spec.MinSize)),
		MaxSize:                 aws.Int32(int32(spec.MaxSize)),
	}

	if len(spec.LoadBalancers) > 0 {
		input.LoadBalancerNames = spec.LoadBalancers
	}
	if len(spec.TargetGroupARNs) > 0 {
		input.TargetGroupARNs = spec.TargetGroupARNs
	}
	if spec.HealthCheckPeriod > 0 {
		input.HealthCheckGracePeriod = aws.Int32(int32(spec.HealthCheckPeriod))
	}
	if spec.HealthCheckType != "" {
		input.HealthCheckType = aws.String(spec.HealthCheckType)
	}

	if _, err := c.ASG.CreateAutoScalingGroup(ctx, input); err != nil {
		return fmt.Errorf("failed to create auto scaling group %s: %w", spec.Name, err)
	}

	return nil
}

// DeleteAutoScalingGroup removes a group. With force set, AWS terminates
// the remaining instances instead of refusing the deletion.
func (c *Client) DeleteAutoScalingGroup(ctx context.Context, name string, force bool) error {
	_, err := c.ASG.DeleteAutoScalingGroup(ctx, &autoscaling.DeleteAutoScalingGroupInput{
		AutoScalingGroupName: aws.String(name),
		ForceDelete:          aws.Bool(force),
	})
	if err != nil {
		return fmt.Errorf("failed to delete auto scaling group %s: %w", name, err)
	}

	return nil
}

// TagAutoScalingGroup creates or updates tags on a group
func (c *Client) TagAutoScalingGroup(ctx context.Context, name string, tags ...pkgtypes.Tag) error {
	if len(tags) == 0 {
		return nil
	}

	asgTags := make([]asgtypes.Tag, 0, len(tags))
	for _, t := range tags {
		asgTags = append(asgTags, asgtypes.Tag{
			ResourceId:        aws.String(name),
			ResourceType:      aws.String("auto-scaling-group"),
			Key:               aws.String(t.Key),
			Value:             aws.String(t.Value),
			PropagateAtLaunch: aws.Bool(t.PropagateAtLaunch),
		})
	}

	if _, err := c.ASG.CreateOrUpdateTags(ctx, &autoscaling.CreateOrUpdateTagsInput{Tags: asgTags}); err != nil {
		return fmt.Errorf("failed to tag auto scaling group %s: %w", name, err)
	}

	return nil
}

// toAutoScalingGroup converts an AWS ASG type to our internal type
func toAutoScalingGroup(g asgtypes.AutoScalingGroup) pkgtypes.AutoScalingGroup {
	asg := pkgtypes.AutoScalingGroup{
		Name:                deref(g.AutoScalingGroupName),
		ARN:                 deref(g.AutoScalingGroupARN),
		LaunchConfiguration: deref(g.LaunchConfigurationName),
		LoadBalancers:       g.LoadBalancerNames,
		DesiredCapacity:     int(deref32(g.DesiredCapacity)),
		MinSize:             int(deref32(g.MinSize)),
		MaxSize:             int(deref32(g.MaxSize)),
		HealthCheckType:     deref(g.HealthCheckType),
		HealthCheckPeriod:   int(deref32(g.HealthCheckGracePeriod)),
		Status:              deref(g.Status),
		AZs:                 g.AvailabilityZones,
	}

	if g.CreatedTime != nil {
		asg.CreatedTime = *g.CreatedTime
	}

	if len(g.Tags) > 0 {
		asg.Tags = make(map[string]string, len(g.Tags))
		for _, t := range g.Tags {
			asg.Tags[deref(t.Key)] = deref(t.Value)
		}
	}

	// Count instances by health status
	for _, inst := range g.Instances {
		asg.InstanceCount++
		if inst.HealthStatus != nil {
			if *inst.HealthStatus == "Healthy" {
				asg.HealthyCount++
			} else {
				asg.UnhealthyCount++
			}
		}

		asg.Instances = append(asg.Instances, pkgtypes.Instance{
			ID:                  deref(inst.InstanceId),
			Type:                deref(inst.InstanceType),
			AZ:                  deref(inst.AvailabilityZone),
			Health:              deref(inst.HealthStatus),
			Lifecycle:           string(inst.LifecycleState),
			LaunchConfiguration: deref(inst.LaunchConfigurationName),
		})
	}

	// Set status if not provided
	if asg.Status == "" {
		asg.Status = "InService"
	}

	return asg
}
