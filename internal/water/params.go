// Package water implements the height-field water simulation: a square grid
// of water columns advanced by a damped discrete wave equation, with point
// edits for picking and size changes that keep existing heights.
package water

import (
	"errors"
	"fmt"
	"math"
)

// Params holds the simulation tunables.
type Params struct {
	// ColumnScale sets the cell spacing (ColumnScale / side length).
	ColumnScale float64
	// Propagation is the wave speed constant; the force uses its square.
	Propagation float64
	// Dampening multiplies every velocity once per step.
	Dampening float64
	// StepHeight is the amount SetHeight adds or removes.
	StepHeight float64
	// LowerThreshold and UpperThreshold separate the color bands.
	LowerThreshold float64
	UpperThreshold float64
}

// DefaultParams returns the tuning the simulation was designed around.
func DefaultParams() Params {
	return Params{
		ColumnScale:    1.5,
		Propagation:    0.9,
		Dampening:      0.98,
		StepHeight:     0.1,
		LowerThreshold: 0.2,
		UpperThreshold: 0.4,
	}
}

// ErrInvalidParams is returned by Validate for unusable tunables.
var ErrInvalidParams = errors.New("water: invalid params")

// Validate reports whether p can drive a simulation. Every field must be
// finite; the comparisons are written so NaN fails them.
func (p Params) Validate() error {
	switch {
	case !finite(p.ColumnScale) || !(p.ColumnScale > 0):
		return fmt.Errorf("%w: column scale %v must be positive", ErrInvalidParams, p.ColumnScale)
	case !finite(p.Propagation):
		return fmt.Errorf("%w: propagation %v must be finite", ErrInvalidParams, p.Propagation)
	case !(p.Dampening > 0 && p.Dampening <= 1):
		return fmt.Errorf("%w: dampening %v must be in (0, 1]", ErrInvalidParams, p.Dampening)
	case !finite(p.StepHeight) || !(p.StepHeight > 0):
		return fmt.Errorf("%w: step height %v must be positive", ErrInvalidParams, p.StepHeight)
	case !finite(p.LowerThreshold) || !finite(p.UpperThreshold):
		return fmt.Errorf("%w: thresholds %v and %v must be finite",
			ErrInvalidParams, p.LowerThreshold, p.UpperThreshold)
	case p.LowerThreshold > p.UpperThreshold:
		return fmt.Errorf("%w: lower threshold %v above upper threshold %v",
			ErrInvalidParams, p.LowerThreshold, p.UpperThreshold)
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
