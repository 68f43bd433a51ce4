package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"

	pkgtypes "github.com/vietdv277/scalekit/pkg/types"
)

const simpleScaling = "SimpleScaling"

// CreateScalingPolicy creates or replaces a simple scaling policy and returns its ARN
func (c *Client) CreateScalingPolicy(ctx context.Context, policy pkgtypes.ScalingPolicy) (string, error) {
	output, err := c.ASG.PutScalingPolicy(ctx, &autoscaling.PutScalingPolicyInput{
		AutoScalingGroupName: aws.String(policy.Group),
		PolicyName:           aws.String(policy.Name),
		PolicyType:           aws.String(simpleScaling),
		AdjustmentType:       aws.String(string(policy.AdjustmentType)),
		ScalingAdjustment:    aws.Int32(int32(policy.Adjustment)),
		Cooldown:             aws.Int32(int32(policy.Cooldown)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create scaling policy %s on %s: %w", policy.Name, policy.Group, err)
	}

	return deref(output.PolicyARN), nil
}

// ListScalingPolicies returns the scaling policies of a group
func (c *Client) ListScalingPolicies(ctx context.Context, group string) ([]pkgtypes.ScalingPolicy, error) {
	var policies []pkgtypes.ScalingPolicy
	var nextToken *string

	for {
		output, err := c.ASG.DescribePolicies(ctx, &autoscaling.DescribePoliciesInput{
			AutoScalingGroupName: aws.String(group),
			NextToken:            nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to describe scaling policies of %s: %w", group, err)
		}

		for _, p := range output.ScalingPolicies {
			policies = append(policies, pkgtypes.ScalingPolicy{
				Name:           deref(p.PolicyName),
				Group:          deref(p.AutoScalingGroupName),
				AdjustmentType: pkgtypes.AdjustmentType(deref(p.AdjustmentType)),
				Adjustment:     int(deref32(p.ScalingAdjustment)),
				Cooldown:       int(deref32(p.Cooldown)),
				ARN:            deref(p.PolicyARN),
			})
		}

		if output.NextToken == nil {
			break
		}
		nextToken = output.NextToken
	}

	return policies, nil
}
