package aws

import (
	"context"
	"fmt"

	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	elbv2types "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"

	"github.com/vietdv277/scalekit/pkg/provider"
	pkgtypes "github.com/vietdv277/scalekit/pkg/types"
)

// ListTargetGroups returns all target groups, optionally restricted to the given names
func (c *Client) ListTargetGroups(ctx context.Context, names ...string) ([]pkgtypes.TargetGroup, error) {
	var tgs []pkgtypes.TargetGroup
	var marker *string

	for {
		input := &elbv2.DescribeTargetGroupsInput{Marker: marker}
		if len(names) > 0 {
			input.Names = names
		}

		output, err := c.ELBv2.DescribeTargetGroups(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to describe target groups: %w", err)
		}

		for _, tg := range output.TargetGroups {
			tgs = append(tgs, toTargetGroup(tg))
		}

		if output.NextMarker == nil {
			break
		}
		marker = output.NextMarker
	}

	return tgs, nil
}

// TargetGroupARNs returns the ARNs of the named target groups, in the order given
func (c *Client) TargetGroupARNs(ctx context.Context, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}

	tgs, err := c.ListTargetGroups(ctx, names...)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]string, len(tgs))
	for _, tg := range tgs {
		byName[tg.Name] = tg.ARN
	}

	arns := make([]string, 0, len(names))
	for _, name := range names {
		arn, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("target group %q: %w", name, provider.ErrNotFound)
		}
		arns = append(arns, arn)
	}

	return arns, nil
}

// toTargetGroup converts an ELBv2 TargetGroup to our TargetGroup type
func toTargetGroup(tg elbv2types.TargetGroup) pkgtypes.TargetGroup {
	result := pkgtypes.TargetGroup{
		Name:     deref(tg.TargetGroupName),
		ARN:      deref(tg.TargetGroupArn),
		Protocol: string(tg.Protocol),
		Port:     int(deref32(tg.Port)),
		VPCID:    deref(tg.VpcId),
		Type:     string(tg.TargetType),
	}

	if len(tg.LoadBalancerArns) > 0 {
		result.LBARN = tg.LoadBalancerArns[0]
	}

	return result
}
