package game

import (
	"errors"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/ripple/internal/engine/camera"
	"github.com/Faultbox/ripple/internal/engine/input"
	"github.com/Faultbox/ripple/internal/engine/picking"
	"github.com/Faultbox/ripple/internal/engine/renderer"
	"github.com/Faultbox/ripple/internal/water"
	"github.com/Faultbox/ripple/pkg/math"
)

func (g *Game) handleEvents(events []input.Event) {
	for _, e := range events {
		switch e.Type {
		case input.EventWindowResize:
			w, h := g.window.DrawableSize()
			g.renderer.Resize(w, h)

		case input.EventMouseUp, input.EventMouseMove:
			if e.Type == input.EventMouseMove && g.input.ButtonHeld(sdl.BUTTON_MIDDLE) {
				g.camera.HandleDrag(float32(-e.RelX), float32(-e.RelY))
			}
			for _, button := range pickButtons(e, g.input.ButtonHeld) {
				g.pickAt(e.MouseX, e.MouseY, button)
			}

		case input.EventMouseWheel:
			g.camera.HandleZoom(float32(e.Wheel))
		}
	}

	for _, a := range input.Actions(events, input.DefaultBindings) {
		g.handleAction(a)
	}
}

func (g *Game) handleAction(a input.Action) {
	switch a {
	case input.ActionQuit:
		g.running = false
	case input.ActionGrow, input.ActionShrink:
		if err := g.sim.ResizeGrid(a == input.ActionGrow); err != nil && !errors.Is(err, water.ErrAllocation) {
			g.log.Error("grid resize", zap.Error(err))
		}
	case input.ActionHelp:
		g.sim.ToggleHelp()
	case input.ActionPause:
		g.sim.TogglePause()
	case input.ActionStep:
		g.sim.Step()
	case input.ActionFullscreen:
		g.window.ToggleFullscreen()
	case input.ActionSun:
		g.lights.ToggleSun()
	case input.ActionPointLight:
		g.lights.TogglePoint()
	case input.ActionSaveConfig:
		g.saveConfig()
	case input.ActionScreenshot:
		g.screenshotPending = true
	case input.ActionRotateLeft:
		g.camera.Orbit(0, camera.KeyStep, 0)
	case input.ActionRotateRight:
		g.camera.Orbit(0, -camera.KeyStep, 0)
	case input.ActionRotateUp:
		g.camera.Orbit(0, 0, -camera.KeyStep)
	case input.ActionRotateDown:
		g.camera.Orbit(0, 0, camera.KeyStep)
	default:
		g.view.apply(a)
	}
}

// pickAt raises (left button) or lowers (right button) the column under
// the cursor.
// pickButtons returns the buttons that edit the water for e. A release picks
// once with the released button; a drag picks with every held edit button.
// Pressing alone does nothing, so a click edits exactly once.
func pickButtons(e input.Event, held func(button uint8) bool) []uint8 {
	switch e.Type {
	case input.EventMouseUp:
		if e.Button == sdl.BUTTON_LEFT || e.Button == sdl.BUTTON_RIGHT {
			return []uint8{e.Button}
		}
	case input.EventMouseMove:
		var buttons []uint8
		for _, b := range []uint8{sdl.BUTTON_LEFT, sdl.BUTTON_RIGHT} {
			if held(b) {
				buttons = append(buttons, b)
			}
		}
		return buttons
	}
	return nil
}

func (g *Game) pickAt(x, y int, button uint8) {
	if button != sdl.BUTTON_LEFT && button != sdl.BUTTON_RIGHT {
		return
	}
	w, h := g.window.Size()
	ray := picking.ScreenToRay(float32(x), float32(y), float32(w), float32(h), picking.Lens{
		Eye:    g.camera.Eye(),
		Center: g.camera.Center,
		Up:     g.camera.Up(),
		FovY:   renderer.FovYRadians(),
		Aspect: float32(w) / float32(max(h, 1)),
	})
	g.sim.Pick(picking.PickColumn(ray, g.sim.Grid(), WorldScale), button == sdl.BUTTON_LEFT)
}

func (g *Game) model() math.Mat4 {
	return math.Scale(WorldScale)
}

func (g *Game) saveConfig() {
	g.view.store(&g.cfg.Render)
	if err := g.cfg.Save(); err != nil {
		g.log.Error("saving config", zap.Error(err))
		return
	}
	g.log.Info("config saved")
}
