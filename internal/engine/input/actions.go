package input

import (
	"slices"
	"strings"

	"github.com/veandco/go-sdl2/sdl"
)

// Action is something a key press asks the viewer to do.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionGrow
	ActionShrink
	ActionHelp
	ActionPause
	ActionStep
	ActionWireframe
	ActionFullscreen
	ActionNormals
	ActionLighting
	ActionSun
	ActionPointLight
	ActionTexture
	ActionSpheres
	ActionAnaglyph
	ActionSaveConfig
	ActionScreenshot
	ActionRotateLeft
	ActionRotateRight
	ActionRotateUp
	ActionRotateDown
)

var actionNames = map[Action]string{
	ActionQuit:        "quit",
	ActionGrow:        "grow grid",
	ActionShrink:      "shrink grid",
	ActionHelp:        "toggle help",
	ActionPause:       "pause",
	ActionStep:        "single step",
	ActionWireframe:   "wireframe",
	ActionFullscreen:  "fullscreen",
	ActionNormals:     "show normals",
	ActionLighting:    "lighting",
	ActionSun:         "sun light",
	ActionPointLight:  "point light",
	ActionTexture:     "texture",
	ActionSpheres:     "column spheres",
	ActionAnaglyph:    "anaglyph 3D",
	ActionSaveConfig:  "save config",
	ActionScreenshot:  "screenshot",
	ActionRotateLeft:  "rotate left",
	ActionRotateRight: "rotate right",
	ActionRotateUp:    "rotate up",
	ActionRotateDown:  "rotate down",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

// DefaultBindings maps keys to actions.
var DefaultBindings = map[sdl.Keycode]Action{
	sdl.K_q:        ActionQuit,
	sdl.K_ESCAPE:   ActionQuit,
	sdl.K_PLUS:     ActionGrow,
	sdl.K_EQUALS:   ActionGrow,
	sdl.K_KP_PLUS:  ActionGrow,
	sdl.K_MINUS:    ActionShrink,
	sdl.K_KP_MINUS: ActionShrink,
	sdl.K_h:        ActionHelp,
	sdl.K_F3:       ActionPause,
	sdl.K_p:        ActionPause,
	sdl.K_SPACE:    ActionStep,
	sdl.K_F1:       ActionWireframe,
	sdl.K_F2:       ActionFullscreen,
	sdl.K_F5:       ActionNormals,
	sdl.K_F6:       ActionLighting,
	sdl.K_F7:       ActionSun,
	sdl.K_F8:       ActionPointLight,
	sdl.K_t:        ActionTexture,
	sdl.K_s:        ActionSpheres,
	sdl.K_F4:       ActionAnaglyph,
	sdl.K_F9:       ActionScreenshot,
	sdl.K_F12:      ActionSaveConfig,
	sdl.K_LEFT:     ActionRotateLeft,
	sdl.K_RIGHT:    ActionRotateRight,
	sdl.K_UP:       ActionRotateUp,
	sdl.K_DOWN:     ActionRotateDown,
}

// Actions returns the actions triggered by key presses among events, in
// order.
func Actions(events []Event, bindings map[sdl.Keycode]Action) []Action {
	var out []Action
	for _, e := range events {
		if e.Type != EventKeyDown {
			continue
		}
		if a, ok := bindings[e.Key]; ok {
			out = append(out, a)
		}
	}
	return out
}

// HelpLines returns one "key: action" line per binding, for the help text.
func HelpLines(bindings map[sdl.Keycode]Action) []string {
	byAction := make(map[Action][]string)
	for key, a := range bindings {
		byAction[a] = append(byAction[a], sdl.GetKeyName(key))
	}

	var lines []string
	for a := ActionQuit; a <= ActionRotateDown; a++ {
		keys := byAction[a]
		if len(keys) == 0 {
			continue
		}
		slices.Sort(keys)
		lines = append(lines, strings.Join(keys, "/")+": "+a.String())
	}
	return lines
}
