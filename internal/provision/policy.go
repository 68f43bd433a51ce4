package provision

import (
	"fmt"
	"math"

	"github.com/vietdv277/scalekit/pkg/types"
)

// PolicyConfig holds the attributes of a simple scaling policy
type PolicyConfig struct {
	AdjustmentType types.AdjustmentType `yaml:"adjustment_type"`
	Scaling        int                  `yaml:"scaling"`
	Cooldown       int                  `yaml:"cooldown"` // seconds
}

// DefaultPolicyConfig returns the default policy attributes
func DefaultPolicyConfig() PolicyConfig {
	return PolicyConfig{
		AdjustmentType: types.ChangeInCapacity,
		Scaling:        1,
		Cooldown:       300,
	}
}

// PolicyRegistrar collects the policies built for a group.
// Group implements it.
type PolicyRegistrar interface {
	Name() string
	AddPolicy(policy types.ScalingPolicy) error
}

// PolicyBuilder builds one scaling policy and hands it to its owner on Close.
// It never talks to AWS: the owner submits registered policies in its own batch step.
type PolicyBuilder struct {
	name   string
	owner  PolicyRegistrar
	config PolicyConfig
	closed bool
}

// OpenPolicy starts building a policy named name for owner, pre-populated with defaults
func OpenPolicy(name string, owner PolicyRegistrar) *PolicyBuilder {
	return &PolicyBuilder{
		name:   name,
		owner:  owner,
		config: DefaultPolicyConfig(),
	}
}

// Config returns the mutable policy attributes
func (b *PolicyBuilder) Config() *PolicyConfig {
	return &b.config
}

// Build returns the policy described by the current attributes
func (b *PolicyBuilder) Build() (types.ScalingPolicy, error) {
	if b.name == "" {
		return types.ScalingPolicy{}, fmt.Errorf("%w: policy name is required", ErrInvalidConfig)
	}
	if !b.config.AdjustmentType.Valid() {
		return types.ScalingPolicy{}, fmt.Errorf("%w: %q in policy %s", ErrInvalidAdjustmentType, b.config.AdjustmentType, b.name)
	}
	if b.config.Cooldown < 0 {
		return types.ScalingPolicy{}, fmt.Errorf("%w: negative cooldown in policy %s", ErrInvalidConfig, b.name)
	}
	if b.config.Cooldown > math.MaxInt32 || b.config.Scaling > math.MaxInt32 || b.config.Scaling < math.MinInt32 {
		return types.ScalingPolicy{}, fmt.Errorf("%w: scaling or cooldown out of range in policy %s", ErrInvalidConfig, b.name)
	}

	return types.ScalingPolicy{
		Name:           b.name,
		Group:          b.owner.Name(),
		AdjustmentType: b.config.AdjustmentType,
		Adjustment:     b.config.Scaling,
		Cooldown:       b.config.Cooldown,
	}, nil
}

// Close builds the policy and registers it with the owner
func (b *PolicyBuilder) Close() error {
	if b.closed {
		return fmt.Errorf("policy %s: %w", b.name, ErrClosed)
	}
	b.closed = true

	policy, err := b.Build()
	if err != nil {
		return err
	}
	return b.owner.AddPolicy(policy)
}
