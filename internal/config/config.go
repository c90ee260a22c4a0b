// Package config handles configuration loading and management.
package config

import (
	"fmt"
	"slices"

	"github.com/Faultbox/ripple/internal/water"
)

// Config holds all settings.
type Config struct {
	Window  WindowConfig  `yaml:"window" toml:"window"`
	Water   WaterConfig   `yaml:"water" toml:"water"`
	Logic   LogicConfig   `yaml:"logic" toml:"logic"`
	Render  RenderConfig  `yaml:"render" toml:"render"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int  `yaml:"width" toml:"width"`
	Height     int  `yaml:"height" toml:"height"`
	Fullscreen bool `yaml:"fullscreen" toml:"fullscreen"`
	VSync      bool `yaml:"vsync" toml:"vsync"`
}

// WaterConfig holds the initial grid size and simulation tunables.
type WaterConfig struct {
	InitialSize    int     `yaml:"initial_size" toml:"initial_size"`
	ColumnScale    float64 `yaml:"column_scale" toml:"column_scale"`
	Propagation    float64 `yaml:"propagation" toml:"propagation"`
	Dampening      float64 `yaml:"dampening" toml:"dampening"`
	StepHeight     float64 `yaml:"step_height" toml:"step_height"`
	LowerThreshold float64 `yaml:"lower_threshold" toml:"lower_threshold"`
	UpperThreshold float64 `yaml:"upper_threshold" toml:"upper_threshold"`
}

// LogicConfig holds fixed-step scheduler settings.
type LogicConfig struct {
	RateHz           int  `yaml:"rate_hz" toml:"rate_hz"`                         // simulation ticks per second
	MaxStepsPerFrame int  `yaml:"max_steps_per_frame" toml:"max_steps_per_frame"` // catch-up limit after a stall
	StartPaused      bool `yaml:"start_paused" toml:"start_paused"`
}

// RenderConfig holds viewer toggles.
type RenderConfig struct {
	Wireframe     bool    `yaml:"wireframe" toml:"wireframe"`
	ShowNormals   bool    `yaml:"show_normals" toml:"show_normals"`
	ShowSpheres   bool    `yaml:"show_spheres" toml:"show_spheres"`
	Lighting      bool    `yaml:"lighting" toml:"lighting"`
	Anaglyph      string  `yaml:"anaglyph" toml:"anaglyph"` // off, gray or color
	TexturePath   string  `yaml:"texture_path" toml:"texture_path"`
	SunLongitude  float32 `yaml:"sun_longitude" toml:"sun_longitude"` // degrees around Y
	SunLatitude   float32 `yaml:"sun_latitude" toml:"sun_latitude"`   // degrees above the horizon
	ScreenshotDir string  `yaml:"screenshot_dir" toml:"screenshot_dir"`
}

// AnaglyphModes lists the accepted render.anaglyph values.
var AnaglyphModes = []string{"off", "gray", "color"}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	p := water.DefaultParams()
	return &Config{
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Water: WaterConfig{
			InitialSize:    20,
			ColumnScale:    p.ColumnScale,
			Propagation:    p.Propagation,
			Dampening:      p.Dampening,
			StepHeight:     p.StepHeight,
			LowerThreshold: p.LowerThreshold,
			UpperThreshold: p.UpperThreshold,
		},
		Logic: LogicConfig{
			RateHz:           80,
			MaxStepsPerFrame: 8,
		},
		Render: RenderConfig{
			Lighting:      true,
			Anaglyph:      "off",
			SunLongitude:  76,
			SunLatitude:   42,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Params returns the simulation tunables.
func (w WaterConfig) Params() water.Params {
	return water.Params{
		ColumnScale:    w.ColumnScale,
		Propagation:    w.Propagation,
		Dampening:      w.Dampening,
		StepHeight:     w.StepHeight,
		LowerThreshold: w.LowerThreshold,
		UpperThreshold: w.UpperThreshold,
	}
}

// Validate reports settings the simulation cannot run with.
func (c *Config) Validate() error {
	if c.Water.InitialSize < 2 {
		return fmt.Errorf("water.initial_size %d: %w", c.Water.InitialSize, water.ErrInvalidSize)
	}
	if err := c.Water.Params().Validate(); err != nil {
		return err
	}
	if c.Logic.RateHz <= 0 {
		return fmt.Errorf("logic.rate_hz must be positive, got %d", c.Logic.RateHz)
	}
	if c.Logic.MaxStepsPerFrame <= 0 {
		return fmt.Errorf("logic.max_steps_per_frame must be positive, got %d", c.Logic.MaxStepsPerFrame)
	}
	if c.Render.Anaglyph != "" && !slices.Contains(AnaglyphModes, c.Render.Anaglyph) {
		return fmt.Errorf("render.anaglyph %q must be one of %v", c.Render.Anaglyph, AnaglyphModes)
	}
	return nil
}
