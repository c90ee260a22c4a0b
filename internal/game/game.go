// Package game implements the viewer's main loop: it reads input, steps the
// simulation at a fixed rate and draws the water every frame.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/ripple/internal/config"
	"github.com/Faultbox/ripple/internal/engine/camera"
	"github.com/Faultbox/ripple/internal/engine/hud"
	"github.com/Faultbox/ripple/internal/engine/input"
	"github.com/Faultbox/ripple/internal/engine/lighting"
	"github.com/Faultbox/ripple/internal/engine/renderer"
	"github.com/Faultbox/ripple/internal/engine/screenshot"
	"github.com/Faultbox/ripple/internal/engine/texture"
	"github.com/Faultbox/ripple/internal/engine/window"
	"github.com/Faultbox/ripple/internal/logger"
	"github.com/Faultbox/ripple/internal/sim"
	"github.com/Faultbox/ripple/internal/water"
)

// WorldScale maps the unit-square grid to world units.
const WorldScale = 10

// Title is the window title prefix.
const Title = "Ripple"

// Game is the windowed viewer.
type Game struct {
	cfg     *config.Config
	running bool
	log     *zap.Logger

	window   *window.Window
	renderer *renderer.Renderer
	waterR   *renderer.WaterRenderer
	normalsR *renderer.NormalRenderer
	spheresR *renderer.SphereRenderer
	overlay  *hud.Overlay
	input    *input.Input
	texture  *texture.Texture
	watcher  *config.Watcher

	sim     *sim.Simulation
	camera  *camera.OrbitCamera
	lights  lighting.Rig
	view    viewState
	buffer  water.Buffer
	palette water.Palette

	screenshotPending bool
}

// New opens the window, initializes GL and creates the simulation described
// by cfg. configPath, when not empty, is watched for changes.
func New(cfg *config.Config, configPath string) (*Game, error) {
	g := &Game{
		cfg:     cfg,
		log:     logger.Named("game"),
		camera:  camera.NewOrbitCamera(),
		lights:  lighting.DefaultRig(cfg.Render.SunLongitude, cfg.Render.SunLatitude),
		view:    viewStateFromConfig(cfg.Render),
		palette: water.DefaultPalette(),
	}

	g.log.Info("initializing viewer",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int("grid", cfg.Water.InitialSize),
	)

	var err error
	g.sim, err = sim.New(sim.OptionsFromConfig(cfg))
	if err != nil {
		return nil, err
	}

	// Window first: it creates the GL context everything below needs.
	g.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	fbw, fbh := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{Width: fbw, Height: fbh})
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.waterR, err = renderer.NewWaterRenderer()
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create water renderer: %w", err)
	}
	g.normalsR = renderer.NewNormalRenderer()

	g.spheresR, err = renderer.NewSphereRenderer()
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create sphere renderer: %w", err)
	}

	g.overlay, err = hud.New()
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create overlay: %w", err)
	}

	if path := cfg.Render.TexturePath; path != "" {
		g.texture, err = texture.Load(path)
		if err != nil {
			// The viewer works fine untextured.
			g.log.Warn("water texture unavailable", zap.String("path", path), zap.Error(err))
			g.view.textured = false
		} else {
			g.log.Info("water texture loaded",
				zap.String("path", path),
				zap.Int("width", g.texture.Width),
				zap.Int("height", g.texture.Height),
			)
		}
	}

	if configPath != "" {
		g.watcher, err = config.Watch(configPath)
		if err != nil {
			g.log.Warn("config hot reload disabled", zap.String("path", configPath), zap.Error(err))
		} else {
			g.log.Info("watching config", zap.String("path", g.watcher.Path()))
		}
	}

	g.input = input.New()

	g.log.Info("viewer initialized")
	return g, nil
}

// Run starts the main loop and returns when the window is closed.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frames := 0
	fpsTimer := lastTime

	g.log.Info("starting main loop")

	for g.running {
		now := time.Now()
		elapsed := now.Sub(lastTime)
		lastTime = now

		// 1. Input
		if g.input.Update() {
			g.running = false
			break
		}
		g.handleEvents(g.input.Events())

		// 2. Config reloads, drained here so the simulation is only touched
		// from this loop.
		g.pollConfig()

		// 3. Simulation
		g.sim.Update(elapsed)

		// 4. Render
		g.render()
		if g.screenshotPending {
			g.captureScreenshot()
		}
		g.window.SwapBuffers()

		frames++
		if since := now.Sub(fpsTimer); since >= time.Second {
			fps := float64(frames) / since.Seconds()
			g.window.SetTitle(FormatTitle(g.sim.Stats(), fps))
			g.log.Debug("fps", zap.Float64("fps", fps), zap.Duration("frame", elapsed))
			frames = 0
			fpsTimer = now
		}
	}

	return nil
}

// Close releases everything New created. Safe on a partially built Game.
func (g *Game) Close() {
	g.log.Info("closing viewer")

	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			g.log.Warn("closing config watcher", zap.Error(err))
		}
	}
	if g.texture != nil {
		g.texture.Delete()
	}
	if g.overlay != nil {
		g.overlay.Close()
	}
	if g.spheresR != nil {
		g.spheresR.Close()
	}
	if g.normalsR != nil {
		g.normalsR.Close()
	}
	if g.waterR != nil {
		g.waterR.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
	if g.sim != nil {
		g.sim.Close()
	}
}

func (g *Game) render() {
	g.sim.Grid().FillBuffer(&g.buffer, g.palette)
	g.waterR.Upload(&g.buffer)
	if g.view.normals {
		g.normalsR.Upload(&g.buffer)
	}
	if g.view.spheres {
		g.spheresR.Upload(&g.buffer)
	}

	g.renderer.Begin()

	frame := renderer.Frame{
		Model:      g.model(),
		Projection: g.renderer.Projection(),
		Eye:        g.camera.Eye(),
		Lights:     g.lights,
		Lighting:   g.view.lighting,
		Wireframe:  g.view.wireframe,
		Gray:       g.view.anaglyph == renderer.AnaglyphGray,
	}
	if g.view.textured && g.texture != nil {
		frame.Texture = g.texture
	}

	view := g.camera.ViewMatrix()
	for _, eye := range renderer.Eyes(g.view.anaglyph) {
		g.renderer.BeginEye(g.view.anaglyph, eye)
		frame.View = renderer.EyeView(view, eye)
		g.drawScene(frame)
	}
	g.renderer.EndEyes()

	if g.sim.ShowingHelp() {
		w, h := g.window.DrawableSize()
		g.overlay.SetText(HelpLines(input.DefaultBindings, g.sim.Stats()))
		g.overlay.Draw(w, h, hud.Padding, hud.Padding)
	}

	g.renderer.End()
}

// drawScene draws everything in world space for one eye.
func (g *Game) drawScene(frame renderer.Frame) {
	if g.view.spheres {
		g.spheresR.Draw(frame)
	}
	g.waterR.Draw(frame)
	if g.view.normals {
		g.normalsR.Draw(g.waterR.Program())
	}
}

// captureScreenshot saves the frame just rendered, before it is swapped out.
func (g *Game) captureScreenshot() {
	g.screenshotPending = false
	w, h := g.window.DrawableSize()
	name, err := screenshot.Capture(g.cfg.Render.ScreenshotDir, "ripple", w, h)
	if err != nil {
		g.log.Error("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("file", name))
}
