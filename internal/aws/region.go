package aws

import (
	"context"
	"fmt"
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"github.com/vietdv277/scalekit/pkg/provider"
)

// ListRegions returns the names of every region known to EC2
func (c *Client) ListRegions(ctx context.Context) ([]string, error) {
	output, err := c.EC2.DescribeRegions(ctx, &ec2.DescribeRegionsInput{
		AllRegions: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe regions: %w", err)
	}

	regions := make([]string, 0, len(output.Regions))
	for _, r := range output.Regions {
		if r.RegionName != nil {
			regions = append(regions, *r.RegionName)
		}
	}
	slices.Sort(regions)

	return regions, nil
}

func (c *Client) verifyRegion(ctx context.Context) error {
	regions, err := c.ListRegions(ctx)
	if err != nil {
		return err
	}

	if !slices.Contains(regions, c.region) {
		return fmt.Errorf("%w: %q", provider.ErrUnknownRegion, c.region)
	}

	return nil
}
