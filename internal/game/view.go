package game

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/ripple/internal/config"
	"github.com/Faultbox/ripple/internal/engine/input"
	"github.com/Faultbox/ripple/internal/engine/renderer"
	"github.com/Faultbox/ripple/internal/sim"
)

// viewState holds the render toggles the keyboard flips.
type viewState struct {
	wireframe bool
	normals   bool
	spheres   bool
	lighting  bool
	textured  bool
	anaglyph  renderer.AnaglyphMode
}

func viewStateFromConfig(rc config.RenderConfig) viewState {
	// Validate has already rejected unknown modes.
	anaglyph, _ := renderer.ParseAnaglyph(rc.Anaglyph)
	return viewState{
		wireframe: rc.Wireframe,
		normals:   rc.ShowNormals,
		spheres:   rc.ShowSpheres,
		lighting:  rc.Lighting,
		textured:  rc.TexturePath != "",
		anaglyph:  anaglyph,
	}
}

// apply flips the toggle bound to a and reports whether a was a view
// toggle.
func (v *viewState) apply(a input.Action) bool {
	switch a {
	case input.ActionWireframe:
		v.wireframe = !v.wireframe
	case input.ActionNormals:
		v.normals = !v.normals
	case input.ActionSpheres:
		v.spheres = !v.spheres
	case input.ActionAnaglyph:
		v.anaglyph = v.anaglyph.Next()
	case input.ActionLighting:
		v.lighting = !v.lighting
	case input.ActionTexture:
		v.textured = !v.textured
	default:
		return false
	}
	return true
}

// store writes the toggles back so a saved config restores them.
func (v viewState) store(rc *config.RenderConfig) {
	rc.Wireframe = v.wireframe
	rc.ShowNormals = v.normals
	rc.ShowSpheres = v.spheres
	rc.Lighting = v.lighting
	rc.Anaglyph = v.anaglyph.String()
}

// FormatTitle renders the window title: frame rate, grid size and whether
// the simulation is halted.
func FormatTitle(st sim.Stats, fps float64) string {
	title := fmt.Sprintf("%s | %.0f fps | %dx%d", Title, fps, st.Side, st.Side)
	if st.Paused {
		title += " | paused"
	}
	return title
}

// HelpLines is the help panel: the key bindings followed by the grid state.
// Ticks are left out so the panel only changes when the grid does.
func HelpLines(bindings map[sdl.Keycode]input.Action, st sim.Stats) []string {
	lines := []string{"Keys"}
	lines = append(lines, input.HelpLines(bindings)...)
	lines = append(lines,
		"",
		fmt.Sprintf("grid %dx%d", st.Side, st.Side),
		"mouse: left raise, right lower (release or drag), middle drag orbit, wheel zoom",
	)
	return lines
}
