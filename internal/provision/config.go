package provision

import (
	"fmt"
	"math"

	"github.com/vietdv277/scalekit/pkg/types"
)

// Health check types of a group. Auto Scaling accepts others, e.g. EBS.
const (
	HealthCheckEC2 = "EC2"
	HealthCheckELB = "ELB"
)

// Config holds every attribute of an autoscaling group and its dependent resources.
// The derived names are left empty until Finalize resolves them from the group name.
type Config struct {
	Zones              []string `yaml:"zones"`
	MinSize            int      `yaml:"min_size"`
	MaxSize            int      `yaml:"max_size"`
	AMI                string   `yaml:"ami"`
	KeyName            string   `yaml:"key_name"`
	SecurityGroups     []string `yaml:"security_groups"`
	InstanceType       string   `yaml:"instance_type"`
	InstanceMonitoring bool     `yaml:"instance_monitoring"`

	CreateLoadBalancer bool             `yaml:"create_load_balancer"`
	Listeners          []types.Listener `yaml:"listeners"`
	TargetGroups       []string         `yaml:"target_groups"`

	HealthCheckTarget             string `yaml:"health_check_target"`
	HealthCheckInterval           int    `yaml:"health_check_interval"`
	HealthCheckTimeout            int    `yaml:"health_check_timeout"`
	HealthCheckHealthyThreshold   int    `yaml:"health_check_healthy_threshold"`
	HealthCheckUnhealthyThreshold int    `yaml:"health_check_unhealthy_threshold"`
	HealthCheckPeriod             int    `yaml:"health_check_period"`
	HealthCheckType               string `yaml:"health_check_type"`

	// At most one user data source may be set.
	UserData          string `yaml:"user_data"`
	UserDataFile      string `yaml:"user_data_file"`
	UserDataParameter string `yaml:"user_data_parameter"`

	// ForceDelete deletes the group even when it still has instances.
	ForceDelete bool `yaml:"force_delete"`

	LoadBalancerName string `yaml:"load_balancer_name"` // defaults to "<name>-lb"
	LaunchConfigName string `yaml:"launch_config_name"` // defaults to "<name>-lc"
	NameTag          string `yaml:"name_tag"`           // defaults to "<name> Auto"
}

// DefaultConfig returns a fresh copy of the default group attributes
func DefaultConfig() Config {
	return Config{
		Zones:              []string{"us-east-1b"},
		MinSize:            0,
		MaxSize:            3,
		AMI:                "ami-8baa73e2",
		KeyName:            "default",
		SecurityGroups:     []string{"default"},
		InstanceType:       "m1.small",
		InstanceMonitoring: true,
		CreateLoadBalancer: true,
		Listeners: []types.Listener{
			{ExternalPort: 80, InternalPort: 8080, Protocol: "http"},
		},
		HealthCheckTarget:             "HTTP:80/index.html",
		HealthCheckInterval:           20,
		HealthCheckTimeout:            3,
		HealthCheckHealthyThreshold:   3,
		HealthCheckUnhealthyThreshold: 5,
		HealthCheckPeriod:             600,
		HealthCheckType:               HealthCheckEC2,
	}
}

// resolveNames fills the derived names that were left empty
func (c *Config) resolveNames(group string) {
	if c.LoadBalancerName == "" {
		c.LoadBalancerName = group + "-lb"
	}
	if c.LaunchConfigName == "" {
		c.LaunchConfigName = group + "-lc"
	}
	if c.NameTag == "" {
		c.NameTag = group + " Auto"
	}
}

// Validate checks the attributes that AWS would otherwise reject halfway through a
// creation sequence
func (c *Config) Validate() error {
	if c.MinSize < 0 || c.MaxSize < 0 {
		return fmt.Errorf("%w: sizes must not be negative (min %d, max %d)", ErrInvalidConfig, c.MinSize, c.MaxSize)
	}
	if c.MinSize > c.MaxSize {
		return fmt.Errorf("%w: min_size %d is greater than max_size %d", ErrInvalidConfig, c.MinSize, c.MaxSize)
	}
	if len(c.Zones) == 0 {
		return fmt.Errorf("%w: at least one zone is required", ErrInvalidConfig)
	}

	sources := 0
	for _, s := range []string{c.UserData, c.UserDataFile, c.UserDataParameter} {
		if s != "" {
			sources++
		}
	}
	if sources > 1 {
		return fmt.Errorf("%w: user_data, user_data_file and user_data_parameter are mutually exclusive", ErrInvalidConfig)
	}

	for _, f := range []struct {
		name  string
		value int
	}{
		{"min_size", c.MinSize},
		{"max_size", c.MaxSize},
		{"health_check_interval", c.HealthCheckInterval},
		{"health_check_timeout", c.HealthCheckTimeout},
		{"health_check_healthy_threshold", c.HealthCheckHealthyThreshold},
		{"health_check_unhealthy_threshold", c.HealthCheckUnhealthyThreshold},
		{"health_check_period", c.HealthCheckPeriod},
	} {
		if f.value > math.MaxInt32 {
			return fmt.Errorf("%w: %s %d is out of range", ErrInvalidConfig, f.name, f.value)
		}
	}

	if c.CreateLoadBalancer {
		if len(c.Listeners) == 0 {
			return fmt.Errorf("%w: a load balancer needs at least one listener", ErrInvalidConfig)
		}
		for _, l := range c.Listeners {
			if l.Protocol == "" || l.ExternalPort <= 0 || l.InternalPort <= 0 ||
				l.ExternalPort > math.MaxInt32 || l.InternalPort > math.MaxInt32 {
				return fmt.Errorf("%w: invalid listener %d:%d/%s", ErrInvalidConfig, l.ExternalPort, l.InternalPort, l.Protocol)
			}
		}
	}

	return nil
}
