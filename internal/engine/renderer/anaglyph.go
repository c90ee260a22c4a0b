package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/ripple/pkg/math"
)

// AnaglyphMode selects red/cyan stereo rendering.
type AnaglyphMode int

const (
	AnaglyphOff AnaglyphMode = iota
	// AnaglyphGray renders luminance only: red for the left eye, blue for
	// the right.
	AnaglyphGray
	// AnaglyphColor keeps color: red for the left eye, green and blue for
	// the right.
	AnaglyphColor

	anaglyphModeCount
)

var anaglyphNames = [...]string{"off", "gray", "color"}

func (m AnaglyphMode) String() string {
	if m < 0 || m >= anaglyphModeCount {
		return fmt.Sprintf("AnaglyphMode(%d)", int(m))
	}
	return anaglyphNames[m]
}

// Next returns the mode after m, wrapping back to off.
func (m AnaglyphMode) Next() AnaglyphMode {
	return (m + 1) % anaglyphModeCount
}

// ParseAnaglyph parses a mode name. The empty string is off.
func ParseAnaglyph(s string) (AnaglyphMode, error) {
	if s == "" {
		return AnaglyphOff, nil
	}
	for i, name := range anaglyphNames {
		if s == name {
			return AnaglyphMode(i), nil
		}
	}
	return AnaglyphOff, fmt.Errorf("unknown anaglyph mode %q", s)
}

// Eye is a stereo viewpoint: -1 left, 0 center, 1 right.
type Eye int

const (
	EyeLeft   Eye = -1
	EyeCenter Eye = 0
	EyeRight  Eye = 1
)

// EyeSeparation is the distance in world units between an eye and the
// center view.
const EyeSeparation = 0.1

// Eyes returns the passes a frame needs in mode m.
func Eyes(m AnaglyphMode) []Eye {
	if m == AnaglyphOff {
		return []Eye{EyeCenter}
	}
	return []Eye{EyeLeft, EyeRight}
}

// EyeView shifts a view matrix sideways in eye space for e.
func EyeView(view math.Mat4, e Eye) math.Mat4 {
	if e == EyeCenter {
		return view
	}
	return math.Translate(float32(e)*-EyeSeparation, 0, 0).Mul(view)
}

// ColorMask returns the RGBA write mask for eye e in mode m.
func ColorMask(m AnaglyphMode, e Eye) [4]bool {
	switch {
	case m == AnaglyphOff || e == EyeCenter:
		return [4]bool{true, true, true, true}
	case e == EyeLeft:
		return [4]bool{true, false, false, true}
	default:
		return [4]bool{false, m == AnaglyphColor, true, true}
	}
}

// BeginEye prepares the framebuffer for one stereo pass. Every pass after
// the first starts with a cleared depth buffer.
func (r *Renderer) BeginEye(m AnaglyphMode, e Eye) {
	mask := ColorMask(m, e)
	gl.ColorMask(mask[0], mask[1], mask[2], mask[3])
	if e == EyeRight {
		gl.Clear(gl.DEPTH_BUFFER_BIT)
	}
}

// EndEyes restores the full color mask.
func (r *Renderer) EndEyes() {
	gl.ColorMask(true, true, true, true)
}
