package aws

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	elb "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancing"
	elbtypes "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancing/types"

	"github.com/vietdv277/scalekit/pkg/provider"
	pkgtypes "github.com/vietdv277/scalekit/pkg/types"
)

// ListLoadBalancers returns all classic load balancers in the region
func (c *Client) ListLoadBalancers(ctx context.Context) ([]pkgtypes.LoadBalancer, error) {
	var lbs []pkgtypes.LoadBalancer
	var marker *string

	for {
		output, err := c.ELB.DescribeLoadBalancers(ctx, &elb.DescribeLoadBalancersInput{
			Marker: marker,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to describe load balancers: %w", err)
		}

		for _, lb := range output.LoadBalancerDescriptions {
			lbs = append(lbs, toLoadBalancer(lb))
		}

		if output.NextMarker == nil {
			break
		}
		marker = output.NextMarker
	}

	return lbs, nil
}

// DescribeLoadBalancer returns detailed information about a specific load balancer
func (c *Client) DescribeLoadBalancer(ctx context.Context, name string) (*pkgtypes.LoadBalancer, error) {
	lbs, err := c.ListLoadBalancers(ctx)
	if err != nil {
		return nil, err
	}

	for i := range lbs {
		if lbs[i].Name == name {
			return &lbs[i], nil
		}
	}

	return nil, fmt.Errorf("load balancer %q: %w", name, provider.ErrNotFound)
}

// CreateLoadBalancer creates a classic load balancer and returns it with its DNS name
func (c *Client) CreateLoadBalancer(ctx context.Context, spec pkgtypes.LoadBalancerSpec) (*pkgtypes.LoadBalancer, error) {
	listeners := make([]elbtypes.Listener, 0, len(spec.Listeners))
	for _, l := range spec.Listeners {
		listeners = append(listeners, elbtypes.Listener{
			LoadBalancerPort: int32(l.ExternalPort),
			InstancePort:     aws.Int32(int32(l.InternalPort)),
			Protocol:         aws.String(strings.ToUpper(l.Protocol)),
		})
	}

	output, err := c.ELB.CreateLoadBalancer(ctx, &elb.CreateLoadBalancerInput{
		LoadBalancerName:  aws.String(spec.Name),
		AvailabilityZones: spec.AZs,
		Listeners:         listeners,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create load balancer %s: %w", spec.Name, err)
	}

	return &pkgtypes.LoadBalancer{
		Name:      spec.Name,
		DNSName:   deref(output.DNSName),
		AZs:       spec.AZs,
		Listeners: spec.Listeners,
	}, nil
}

// ConfigureHealthCheck attaches a health check to a load balancer
func (c *Client) ConfigureHealthCheck(ctx context.Context, name string, check pkgtypes.HealthCheck) error {
	_, err := c.ELB.ConfigureHealthCheck(ctx, &elb.ConfigureHealthCheckInput{
		LoadBalancerName: aws.String(name),
		HealthCheck: &elbtypes.HealthCheck{
			Target:             aws.String(check.Target),
			Interval:           aws.Int32(int32(check.Interval)),
			Timeout:            aws.Int32(int32(check.Timeout)),
			HealthyThreshold:   aws.Int32(int32(check.HealthyThreshold)),
			UnhealthyThreshold: aws.Int32(int32(check.UnhealthyThreshold)),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to configure health check of %s: %w", name, err)
	}

	return nil
}

// DeleteLoadBalancer removes a load balancer
func (c *Client) DeleteLoadBalancer(ctx context.Context, name string) error {
	_, err := c.ELB.DeleteLoadBalancer(ctx, &elb.DeleteLoadBalancerInput{
		LoadBalancerName: aws.String(name),
	})
	if err != nil {
		return fmt.Errorf("failed to delete load balancer %s: %w", name, err)
	}

	return nil
}

// toLoadBalancer converts a classic load balancer description to our LoadBalancer type
func toLoadBalancer(lb elbtypes.LoadBalancerDescription) pkgtypes.LoadBalancer {
	result := pkgtypes.LoadBalancer{
		Name:      deref(lb.LoadBalancerName),
		DNSName:   deref(lb.DNSName),
		Scheme:    deref(lb.Scheme),
		AZs:       lb.AvailabilityZones,
		Instances: len(lb.Instances),
	}

	if lb.CreatedTime != nil {
		result.CreatedAt = *lb.CreatedTime
	}

	for _, ld := range lb.ListenerDescriptions {
		if ld.Listener != nil {
			result.Listeners = append(result.Listeners, toListener(*ld.Listener))
		}
	}

	if hc := lb.HealthCheck; hc != nil {
		result.HealthCheck = &pkgtypes.HealthCheck{
			Target:             deref(hc.Target),
			Interval:           int(deref32(hc.Interval)),
			Timeout:            int(deref32(hc.Timeout)),
			HealthyThreshold:   int(deref32(hc.HealthyThreshold)),
			UnhealthyThreshold: int(deref32(hc.UnhealthyThreshold)),
		}
	}

	return result
}

// toListener converts a classic listener to our Listener type
func toListener(l elbtypes.Listener) pkgtypes.Listener {
	return pkgtypes.Listener{
		ExternalPort: int(l.LoadBalancerPort),
		InternalPort: int(deref32(l.InstancePort)),
		Protocol:     strings.ToLower(deref(l.Protocol)),
	}
}
