package sim

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/ripple/internal/logger"
)

// DefaultRateHz is the fixed simulation rate.
const DefaultRateHz = 80

// Stepper turns variable frame times into a whole number of fixed steps.
// Leftover time below one step carries over to the next call.
type Stepper struct {
	Step     time.Duration
	MaxSteps int

	acc time.Duration
}

// NewStepper returns a stepper running rateHz steps per second, catching up
// at most maxSteps per call. Non-positive arguments fall back to defaults.
func NewStepper(rateHz, maxSteps int) *Stepper {
	if rateHz <= 0 {
		rateHz = DefaultRateHz
	}
	if maxSteps <= 0 {
		maxSteps = 1
	}
	return &Stepper{
		Step:     time.Second / time.Duration(rateHz),
		MaxSteps: maxSteps,
	}
}

// Interval returns the step length in seconds.
func (s *Stepper) Interval() float64 {
	return s.Step.Seconds()
}

// Pending returns the time accumulated but not yet stepped.
func (s *Stepper) Pending() time.Duration {
	return s.acc
}

// Advance adds elapsed to the accumulator and calls fn once per whole step.
// Whole steps beyond MaxSteps are discarded. It returns the number of calls
// made.
func (s *Stepper) Advance(elapsed time.Duration, fn func(dt float64)) int {
	if s.Step <= 0 || elapsed <= 0 {
		return 0
	}
	s.acc += elapsed

	dt := s.Step.Seconds()
	steps := 0
	for s.acc >= s.Step && steps < s.MaxSteps {
		fn(dt)
		s.acc -= s.Step
		steps++
	}

	if s.acc >= s.Step {
		dropped := s.acc / s.Step
		s.acc -= dropped * s.Step
		logger.Debug("dropping simulation steps",
			zap.Int64("dropped", int64(dropped)),
			zap.Int("max_steps", s.MaxSteps),
		)
	}
	return steps
}

// Reset discards any accumulated time.
func (s *Stepper) Reset() {
	s.acc = 0
}
