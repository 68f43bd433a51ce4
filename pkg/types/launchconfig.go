package types

import "time"

// LaunchConfiguration represents an Auto Scaling launch configuration
type LaunchConfiguration struct {
	Name           string
	ImageID        string
	InstanceType   string
	KeyName        string
	SecurityGroups []string
	Monitoring     bool
	CreatedTime    time.Time
}

// LaunchConfigSpec contains everything needed to create a launch configuration.
// UserData is raw; encoding is left to the provider.
type LaunchConfigSpec struct {
	Name           string
	ImageID        string
	InstanceType   string
	KeyName        string
	SecurityGroups []string
	UserData       string
	Monitoring     bool
}
