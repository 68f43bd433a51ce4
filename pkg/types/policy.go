package types

// AdjustmentType tells how a scaling adjustment is applied to the group capacity
type AdjustmentType string

const (
	ChangeInCapacity        AdjustmentType = "ChangeInCapacity"
	PercentChangeInCapacity AdjustmentType = "PercentChangeInCapacity"
	ExactCapacity           AdjustmentType = "ExactCapacity"
)

// Valid reports whether t is one of the adjustment types understood by AWS
func (t AdjustmentType) Valid() bool {
	switch t {
	case ChangeInCapacity, PercentChangeInCapacity, ExactCapacity:
		return true
	}
	return false
}

// ScalingPolicy represents a simple scaling policy of an Auto Scaling Group
type ScalingPolicy struct {
	Name           string
	Group          string
	AdjustmentType AdjustmentType
	Adjustment     int
	Cooldown       int // seconds
	ARN            string
}
