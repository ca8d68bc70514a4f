package vehicle

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGeometry is returned when a vehicle geometry cannot be used by the planner
var ErrInvalidGeometry = errors.New("invalid vehicle geometry")

// Geometry holds the physical constants of the simulated car that the planner
// configuration is derived from. Distances are in meters, relative to the car center.
type Geometry struct {
	WheelBase     float64 `yaml:"wheel_base" mapstructure:"wheel_base"`
	MaxSteerSpeed float64 `yaml:"max_steer_speed" mapstructure:"max_steer_speed"` // radians / second
	HalfCarLength float64 `yaml:"half_car_length" mapstructure:"half_car_length"`
	HalfCarWidth  float64 `yaml:"half_car_width" mapstructure:"half_car_width"`
	RearAxlePos   float64 `yaml:"rear_axle_pos" mapstructure:"rear_axle_pos"`
}

const (
	defaultFrontAxlePos  = 1.5
	defaultRearAxlePos   = -1.5
	defaultHalfCarLength = 2.5
	defaultHalfCarWidth  = 1.0
	defaultMaxSteerSpeed = 0.8
)

// DefaultGeometry returns the reference car
func DefaultGeometry() Geometry {
	return Geometry{
		WheelBase:     defaultFrontAxlePos - defaultRearAxlePos,
		MaxSteerSpeed: defaultMaxSteerSpeed,
		HalfCarLength: defaultHalfCarLength,
		HalfCarWidth:  defaultHalfCarWidth,
		RearAxlePos:   defaultRearAxlePos,
	}
}

// Validate checks that every constant is finite and that the sizes the
// planner divides by or dilates with are positive
func (g Geometry) Validate() error {
	checks := []struct {
		name     string
		value    float64
		positive bool
	}{
		{"wheel_base", g.WheelBase, true},
		{"max_steer_speed", g.MaxSteerSpeed, true},
		{"half_car_length", g.HalfCarLength, true},
		{"half_car_width", g.HalfCarWidth, true},
		{"rear_axle_pos", g.RearAxlePos, false},
	}
	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return fmt.Errorf("%w: %s must be finite", ErrInvalidGeometry, c.name)
		}
		if c.positive && c.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidGeometry, c.name, c.value)
		}
	}

	if math.Abs(g.RearAxlePos) > g.HalfCarLength {
		return fmt.Errorf("%w: rear axle at %g is outside the car body (half length %g)",
			ErrInvalidGeometry, g.RearAxlePos, g.HalfCarLength)
	}

	return nil
}

// MaxCurvatureRate is the fastest rate the path curvature can change, in 1/(m*s)
func (g Geometry) MaxCurvatureRate() float64 {
	return g.MaxSteerSpeed / g.WheelBase
}
