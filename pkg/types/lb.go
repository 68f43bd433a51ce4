package types

import "time"

// LoadBalancer represents a classic Elastic Load Balancer
type LoadBalancer struct {
	Name        string
	DNSName     string
	Scheme      string // internet-facing, internal
	AZs         []string
	Listeners   []Listener
	HealthCheck *HealthCheck
	Instances   int
	CreatedAt   time.Time
}

// Listener maps a port on the load balancer to a port on the instances
type Listener struct {
	ExternalPort int    `yaml:"external_port"`
	InternalPort int    `yaml:"internal_port"`
	Protocol     string `yaml:"protocol"`
}

// HealthCheck describes how the load balancer probes its instances
type HealthCheck struct {
	Target             string // e.g. HTTP:80/index.html
	Interval           int    // seconds
	Timeout            int    // seconds
	HealthyThreshold   int
	UnhealthyThreshold int
}

// LoadBalancerSpec contains everything needed to create a load balancer
type LoadBalancerSpec struct {
	Name      string
	AZs       []string
	Listeners []Listener
}

// TargetGroup represents an application or network load balancer target group
type TargetGroup struct {
	Name     string
	ARN      string
	Protocol string
	Port     int
	VPCID    string
	Type     string // instance, ip, lambda
	LBARN    string
}
