package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/ripple/internal/config"
	"github.com/Faultbox/ripple/internal/engine/input"
	"github.com/Faultbox/ripple/internal/engine/lighting"
	"github.com/Faultbox/ripple/internal/engine/renderer"
	"github.com/Faultbox/ripple/internal/logger"
	"github.com/Faultbox/ripple/internal/sim"
	"github.com/Faultbox/ripple/internal/water"
)

func TestFormatTitle(t *testing.T) {
	tests := []struct {
		name string
		st   sim.Stats
		fps  float64
		want string
	}{
		{"running", sim.Stats{Side: 20}, 59.7, "Ripple | 60 fps | 20x20"},
		{"paused", sim.Stats{Side: 3, Paused: true}, 120, "Ripple | 120 fps | 3x3 | paused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTitle(tt.st, tt.fps))
		})
	}
}

func TestHelpLines(t *testing.T) {
	bindings := map[sdl.Keycode]input.Action{sdl.K_h: input.ActionHelp}
	lines := HelpLines(bindings, sim.Stats{Side: 12, Ticks: 99})

	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "Keys", lines[0])
	assert.Contains(t, lines, "H: "+input.ActionHelp.String())
	assert.Contains(t, lines, "grid 12x12")
}

func TestViewStateToggles(t *testing.T) {
	rc := config.Default().Render
	v := viewStateFromConfig(rc)
	assert.True(t, v.lighting)
	assert.False(t, v.textured, "no texture configured")

	assert.True(t, v.apply(input.ActionWireframe))
	assert.True(t, v.apply(input.ActionNormals))
	assert.True(t, v.apply(input.ActionLighting))
	assert.False(t, v.apply(input.ActionGrow))

	v.store(&rc)
	assert.True(t, rc.Wireframe)
	assert.True(t, rc.ShowNormals)
	assert.False(t, rc.Lighting)
	assert.False(t, rc.ShowSpheres)
	assert.Equal(t, "off", rc.Anaglyph)
}

func TestViewStateSpheresAndAnaglyph(t *testing.T) {
	rc := config.Default().Render
	v := viewStateFromConfig(rc)
	assert.False(t, v.spheres)
	assert.Equal(t, renderer.AnaglyphOff, v.anaglyph)

	assert.True(t, v.apply(input.ActionSpheres))
	assert.True(t, v.spheres)

	want := []renderer.AnaglyphMode{renderer.AnaglyphGray, renderer.AnaglyphColor, renderer.AnaglyphOff}
	for _, m := range want {
		assert.True(t, v.apply(input.ActionAnaglyph))
		assert.Equal(t, m, v.anaglyph)
	}

	v.apply(input.ActionAnaglyph)
	v.store(&rc)
	assert.True(t, rc.ShowSpheres)
	assert.Equal(t, "gray", rc.Anaglyph)

	restored := viewStateFromConfig(rc)
	assert.True(t, restored.spheres)
	assert.Equal(t, renderer.AnaglyphGray, restored.anaglyph)
}

func TestApplyReload(t *testing.T) {
	s, err := sim.New(sim.OptionsFromConfig(config.Default()))
	require.NoError(t, err)
	defer s.Close()

	cur := config.Default()
	lights := lighting.DefaultRig(cur.Render.SunLongitude, cur.Render.SunLatitude)

	next := config.Default()
	next.Water.Dampening = 0.9
	next.Render.SunLatitude = 90
	next.Logging.Level = "warn"
	defer logger.SetLevel("info")

	got := applyReload(zap.NewNop(), s, &lights, cur, next)

	assert.Same(t, next, got)
	assert.Equal(t, 0.9, s.Grid().Params().Dampening)
	assert.InDelta(t, 1, lights.SunDir.Y, 1e-5)
	assert.Equal(t, "warn", logger.Level().String())
}

func TestApplyReloadRejectsBadParams(t *testing.T) {
	s, err := sim.New(sim.OptionsFromConfig(config.Default()))
	require.NoError(t, err)
	defer s.Close()

	cur := config.Default()
	lights := lighting.DefaultRig(0, 45)

	next := config.Default()
	next.Water.LowerThreshold = 1
	next.Water.UpperThreshold = 0

	got := applyReload(zap.NewNop(), s, &lights, cur, next)
	assert.Same(t, cur, got)
	assert.Equal(t, water.DefaultParams(), s.Grid().Params())
}

func TestApplyReloadRejectsNonFiniteParams(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.WaterConfig)
	}{
		{"nan column scale", func(w *config.WaterConfig) { w.ColumnScale = math.NaN() }},
		{"infinite propagation", func(w *config.WaterConfig) { w.Propagation = math.Inf(1) }},
		{"nan threshold", func(w *config.WaterConfig) { w.UpperThreshold = math.NaN() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := sim.New(sim.OptionsFromConfig(config.Default()))
			require.NoError(t, err)
			defer s.Close()

			cur := config.Default()
			lights := lighting.DefaultRig(0, 45)
			next := config.Default()
			tt.modify(&next.Water)

			got := applyReload(zap.NewNop(), s, &lights, cur, next)
			assert.Same(t, cur, got)
			assert.Equal(t, water.DefaultParams(), s.Grid().Params())

			// The grid keeps stepping on finite values.
			require.True(t, s.Pick(0, true))
			s.Step()
			for i := range s.Grid().Len() {
				assert.False(t, math.IsNaN(s.Grid().Height(i)), "height %d", i)
			}
		})
	}
}

func TestPickButtons(t *testing.T) {
	none := func(uint8) bool { return false }
	leftHeld := func(b uint8) bool { return b == sdl.BUTTON_LEFT }
	bothHeld := func(b uint8) bool { return b == sdl.BUTTON_LEFT || b == sdl.BUTTON_RIGHT }

	tests := []struct {
		name string
		e    input.Event
		held func(uint8) bool
		want []uint8
	}{
		{"press does not pick", input.Event{Type: input.EventMouseDown, Button: sdl.BUTTON_LEFT}, leftHeld, nil},
		{"left release raises", input.Event{Type: input.EventMouseUp, Button: sdl.BUTTON_LEFT}, none, []uint8{sdl.BUTTON_LEFT}},
		{"right release lowers", input.Event{Type: input.EventMouseUp, Button: sdl.BUTTON_RIGHT}, none, []uint8{sdl.BUTTON_RIGHT}},
		{"middle release", input.Event{Type: input.EventMouseUp, Button: sdl.BUTTON_MIDDLE}, none, nil},
		{"hover", input.Event{Type: input.EventMouseMove}, none, nil},
		{"left drag", input.Event{Type: input.EventMouseMove}, leftHeld, []uint8{sdl.BUTTON_LEFT}},
		{"both drag", input.Event{Type: input.EventMouseMove}, bothHeld, []uint8{sdl.BUTTON_LEFT, sdl.BUTTON_RIGHT}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pickButtons(tt.e, tt.held))
		})
	}
}
