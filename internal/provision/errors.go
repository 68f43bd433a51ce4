package provision

import (
	"errors"
	"fmt"

	"github.com/vietdv277/scalekit/pkg/provider"
)

var (
	// ErrInvalidAction is returned when closing a provisioner with an unrecognized action.
	ErrInvalidAction = fmt.Errorf("%w: invalid action", provider.ErrConfiguration)
	// ErrInvalidConfig is returned when the group configuration cannot be provisioned.
	ErrInvalidConfig = fmt.Errorf("%w: invalid group configuration", provider.ErrConfiguration)
	// ErrInvalidAdjustmentType is returned when a policy uses an adjustment type AWS does not know.
	ErrInvalidAdjustmentType = fmt.Errorf("%w: invalid adjustment type", provider.ErrConfiguration)
	// ErrClosed is returned when a provisioner is used after it was closed.
	ErrClosed = errors.New("provisioner already closed")
)

// Resource kinds reported by AlreadyExistsError
const (
	KindLoadBalancer        = "load balancer"
	KindLaunchConfiguration = "launch configuration"
	KindAutoScalingGroup    = "auto scaling group"
)

// AlreadyExistsError signals that a resource with the requested name is already present.
type AlreadyExistsError struct {
	Kind string
	Name string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("the %s %s already exists; consider using action %q", e.Kind, e.Name, CreateWithOverwrite)
}
