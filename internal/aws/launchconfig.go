package aws

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	asgtypes "github.com/aws/aws-sdk-go-v2/service/autoscaling/types"

	pkgtypes "github.com/vietdv277/scalekit/pkg/types"
)

// ListLaunchConfigurations returns every launch configuration in the region
func (c *Client) ListLaunchConfigurations(ctx context.Context) ([]pkgtypes.LaunchConfiguration, error) {
	var configs []pkgtypes.LaunchConfiguration
	var nextToken *string

	for {
		output, err := c.ASG.DescribeLaunchConfigurations(ctx, &autoscaling.DescribeLaunchConfigurationsInput{
			NextToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to describe launch configurations: %w", err)
		}

		for _, lc := range output.LaunchConfigurations {
			configs = append(configs, toLaunchConfiguration(lc))
		}

		if output.NextToken == nil {
			break
		}
		nextToken = output.NextToken
	}

	return configs, nil
}

// CreateLaunchConfiguration creates a launch configuration.
// The user data is sent base64 encoded.
func (c *Client) CreateLaunchConfiguration(ctx context.Context, spec pkgtypes.LaunchConfigSpec) error {
	input := &autoscaling.CreateLaunchConfigurationInput{
		LaunchConfigurationName: aws.String(spec.Name),
		ImageId:                 aws.String(spec.ImageID),
		InstanceType:            aws.String(spec.InstanceType),
		SecurityGroups:          spec.SecurityGroups,
		InstanceMonitoring: &asgtypes.InstanceMonitoring{
			Enabled: aws.Bool(spec.Monitoring),
		},
	}

	if spec.KeyName != "" {
		input.KeyName = aws.String(spec.KeyName)
	}
	if spec.UserData != "" {
		input.UserData = aws.String(base64.StdEncoding.EncodeToString([]byte(spec.UserData)))
	}

	if _, err := c.ASG.CreateLaunchConfiguration(ctx, input); err != nil {
		return fmt.Errorf("failed to create launch configuration %s: %w", spec.Name, err)
	}

	return nil
}

// DeleteLaunchConfiguration removes a launch configuration
func (c *Client) DeleteLaunchConfiguration(ctx context.Context, name string) error {
	_, err := c.ASG.DeleteLaunchConfiguration(ctx, &autoscaling.DeleteLaunchConfigurationInput{
		LaunchConfigurationName: aws.String(name),
	})
	if err != nil {
		return fmt.Errorf("failed to delete launch configuration %s: %w", name, err)
	}

	return nil
}

func toLaunchConfiguration(lc asgtypes.LaunchConfiguration) pkgtypes.LaunchConfiguration {
	out := pkgtypes.LaunchConfiguration{
		Name:           deref(lc.LaunchConfigurationName),
		ImageID:        deref(lc.ImageId),
		InstanceType:   deref(lc.InstanceType),
		KeyName:        deref(lc.KeyName),
		SecurityGroups: lc.SecurityGroups,
	}

	if lc.InstanceMonitoring != nil {
		out.Monitoring = derefBool(lc.InstanceMonitoring.Enabled)
	}
	if lc.CreatedTime != nil {
		out.CreatedTime = *lc.CreatedTime
	}

	return out
}
