package types

import "time"

// AutoScalingGroup represents an AWS Auto Scaling Group
type AutoScalingGroup struct {
	Name                string
	ARN                 string
	LaunchConfiguration string
	LoadBalancers       []string
	DesiredCapacity     int
	MinSize             int
	MaxSize             int
	InstanceCount       int // current running instances
	HealthyCount        int
	UnhealthyCount      int
	HealthCheckType     string
	HealthCheckPeriod   int
	Status              string // InService, Updating, etc.
	CreatedTime         time.Time
	AZs                 []string
	Tags                map[string]string
	Instances           []Instance // for describe command
}

// GroupSpec contains everything needed to create an Auto Scaling Group
type GroupSpec struct {
	Name                string
	LaunchConfiguration string
	LoadBalancers       []string
	TargetGroupARNs     []string
	AZs                 []string
	MinSize             int
	MaxSize             int
	HealthCheckPeriod   int // seconds
	HealthCheckType     string
}

// Tag is a key/value pair attached to an Auto Scaling Group
type Tag struct {
	Key               string
	Value             string
	PropagateAtLaunch bool
}
