package types

// Instance represents an EC2 instance as seen by its Auto Scaling Group
type Instance struct {
	ID                  string
	Type                string
	AZ                  string
	Health              string // Healthy, Unhealthy
	Lifecycle           string // InService, Pending, Terminating, etc.
	LaunchConfiguration string
}
