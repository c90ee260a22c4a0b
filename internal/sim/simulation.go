// Package sim drives a water grid at a fixed rate and routes user actions
// (picks, resizes, pause) to it.
package sim

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/ripple/internal/config"
	"github.com/Faultbox/ripple/internal/logger"
	"github.com/Faultbox/ripple/internal/water"
)

// Options configures a Simulation.
type Options struct {
	Size             int
	Params           water.Params
	RateHz           int
	MaxStepsPerFrame int
	StartPaused      bool
}

// OptionsFromConfig extracts simulation options from a loaded config.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Size:             cfg.Water.InitialSize,
		Params:           cfg.Water.Params(),
		RateHz:           cfg.Logic.RateHz,
		MaxStepsPerFrame: cfg.Logic.MaxStepsPerFrame,
		StartPaused:      cfg.Logic.StartPaused,
	}
}

// Stats is a snapshot for logs and the window title.
type Stats struct {
	Side       int
	Ticks      uint64
	Energy     float64
	MinHeight  float64
	MaxHeight  float64
	Paused     bool
	Generation uint64
}

// Simulation owns one grid and its stepper. It is not safe for concurrent
// use; everything runs on the caller's loop.
type Simulation struct {
	grid    *water.Grid
	stepper *Stepper
	log     *zap.Logger

	paused   bool
	showHelp bool
	ticks    uint64
}

// New creates the grid described by opts.
func New(opts Options) (*Simulation, error) {
	grid, err := water.New(opts.Size, opts.Params)
	if err != nil {
		return nil, fmt.Errorf("creating water grid: %w", err)
	}

	s := &Simulation{
		grid:    grid,
		stepper: NewStepper(opts.RateHz, opts.MaxStepsPerFrame),
		log:     logger.Named("sim"),
		paused:  opts.StartPaused,
	}
	s.log.Info("simulation created",
		zap.Int("side", grid.SideLength()),
		zap.Duration("step", s.stepper.Step),
		zap.Bool("paused", s.paused),
	)
	return s, nil
}

// Update feeds elapsed frame time to the stepper. While paused the time is
// still consumed so resuming does not replay a burst of steps.
func (s *Simulation) Update(elapsed time.Duration) int {
	return s.stepper.Advance(elapsed, func(dt float64) {
		if s.Paused() {
			return
		}
		s.grid.Advance(dt)
		s.ticks++
	})
}

// Step advances exactly one fixed interval regardless of pause state.
func (s *Simulation) Step() {
	s.grid.Advance(s.stepper.Interval())
	s.ticks++
}

// Pick raises or lowers the column at index. Index -1 (a miss) is ignored.
func (s *Simulation) Pick(index int, raise bool) bool {
	if index < 0 {
		return false
	}
	hit := s.grid.SetHeight(index, raise)
	s.log.Debug("column picked",
		zap.Int("index", index),
		zap.Bool("raise", raise),
		zap.Bool("hit", hit),
	)
	return hit
}

// ResizeGrid grows or shrinks the grid by one column per side. On
// allocation failure the previous grid is kept and the error returned.
func (s *Simulation) ResizeGrid(grow bool) error {
	before := s.grid.SideLength()
	if err := s.grid.Resize(grow); err != nil {
		if errors.Is(err, water.ErrAllocation) {
			s.log.Warn("grid resize failed, keeping current grid",
				zap.Int("side", before),
				zap.Error(err),
			)
		}
		return fmt.Errorf("resizing grid from %d: %w", before, err)
	}
	s.log.Info("grid resized",
		zap.Int("from", before),
		zap.Int("to", s.grid.SideLength()),
	)
	return nil
}

// TogglePause flips the pause flag.
func (s *Simulation) TogglePause() {
	s.paused = !s.paused
	s.log.Debug("pause toggled", zap.Bool("paused", s.paused))
}

// ToggleHelp flips the help flag. Help being shown also halts the
// simulation.
func (s *Simulation) ToggleHelp() {
	s.showHelp = !s.showHelp
}

// ShowingHelp reports whether help is being shown.
func (s *Simulation) ShowingHelp() bool { return s.showHelp }

// Paused reports whether ticks are currently being skipped.
func (s *Simulation) Paused() bool {
	return s.paused || s.showHelp
}

// ApplyParams swaps the tunables on the live grid.
func (s *Simulation) ApplyParams(p water.Params) error {
	if p == s.grid.Params() {
		return nil
	}
	if err := s.grid.SetParams(p); err != nil {
		return fmt.Errorf("applying water params: %w", err)
	}
	s.log.Info("water params updated",
		zap.Float64("propagation", p.Propagation),
		zap.Float64("dampening", p.Dampening),
		zap.Float64("step_height", p.StepHeight),
	)
	return nil
}

// Grid returns the simulated grid. Callers must not keep it across Close.
func (s *Simulation) Grid() *water.Grid { return s.grid }

// Stepper returns the fixed-step scheduler.
func (s *Simulation) Stepper() *Stepper { return s.stepper }

// Stats returns a snapshot of the current state.
func (s *Simulation) Stats() Stats {
	lo, hi := s.grid.HeightRange()
	return Stats{
		Side:       s.grid.SideLength(),
		Ticks:      s.ticks,
		Energy:     s.grid.Energy(),
		MinHeight:  lo,
		MaxHeight:  hi,
		Paused:     s.Paused(),
		Generation: s.grid.Generation(),
	}
}

// Close releases the grid storage.
func (s *Simulation) Close() {
	s.grid.Destroy()
	s.log.Debug("simulation closed", zap.Uint64("ticks", s.ticks))
}
