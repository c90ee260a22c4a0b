package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStepper(t *testing.T) {
	tests := []struct {
		name     string
		rate     int
		maxSteps int
		wantStep time.Duration
		wantMax  int
	}{
		{"default rate", 80, 8, 12500 * time.Microsecond, 8},
		{"zero rate falls back", 0, 4, time.Second / DefaultRateHz, 4},
		{"zero max falls back", 100, 0, 10 * time.Millisecond, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStepper(tt.rate, tt.maxSteps)
			assert.Equal(t, tt.wantStep, s.Step)
			assert.Equal(t, tt.wantMax, s.MaxSteps)
		})
	}
}

func TestStepperAccumulates(t *testing.T) {
	s := NewStepper(100, 10)
	var calls []float64
	record := func(dt float64) { calls = append(calls, dt) }

	assert.Equal(t, 0, s.Advance(5*time.Millisecond, record))
	assert.Equal(t, 5*time.Millisecond, s.Pending())

	assert.Equal(t, 1, s.Advance(7*time.Millisecond, record))
	assert.Equal(t, 2*time.Millisecond, s.Pending())

	assert.Equal(t, 3, s.Advance(30*time.Millisecond, record))
	assert.Equal(t, 2*time.Millisecond, s.Pending())

	require.Len(t, calls, 4)
	for _, dt := range calls {
		assert.InDelta(t, 0.01, dt, 1e-12)
	}
}

func TestStepperDropsExcess(t *testing.T) {
	s := NewStepper(100, 3)
	n := 0

	steps := s.Advance(time.Second+4*time.Millisecond, func(float64) { n++ })

	assert.Equal(t, 3, steps)
	assert.Equal(t, 3, n)
	assert.Equal(t, 4*time.Millisecond, s.Pending(), "sub-step remainder survives the drop")
}

func TestStepperIgnoresNonPositive(t *testing.T) {
	s := NewStepper(100, 3)
	called := false
	fn := func(float64) { called = true }

	assert.Zero(t, s.Advance(0, fn))
	assert.Zero(t, s.Advance(-time.Second, fn))
	assert.False(t, called)
	assert.Zero(t, s.Pending())
}

func TestStepperReset(t *testing.T) {
	s := NewStepper(100, 3)
	s.Advance(5*time.Millisecond, func(float64) {})
	s.Reset()
	assert.Zero(t, s.Pending())
}
