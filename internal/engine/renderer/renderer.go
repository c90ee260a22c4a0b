// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/ripple/internal/logger"
	"github.com/Faultbox/ripple/pkg/math"
)

// Projection defaults, matching a 70 degree lens.
const (
	FovYDegrees = 70.0
	NearPlane   = 0.05
	FarPlane    = 100.0
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer owns global GL state and the viewport.
type Renderer struct {
	config Config
}

// New initializes OpenGL. Must be called after the GL context exists.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.MULTISAMPLE)
	gl.ClearColor(0.05, 0.07, 0.12, 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	return r, nil
}

// Close releases renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
}

// Resize handles window resize. Width and height are in pixels.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Aspect returns width / height of the viewport.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Projection returns the perspective matrix for the current viewport.
func (r *Renderer) Projection() math.Mat4 {
	return math.Perspective(FovYRadians(), r.Aspect(), NearPlane, FarPlane)
}

// FovYRadians returns the vertical field of view in radians.
func FovYRadians() float32 {
	return FovYDegrees * math32.Pi / 180
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}
