package hud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasure(t *testing.T) {
	w, h := Measure([]string{"ab", "abcd"})
	// basicfont.Face7x13 advances 7 px per glyph, 13 px per line.
	assert.Equal(t, 4*7+2*Padding, w)
	assert.Equal(t, 2*13+2*Padding, h)
}

func TestRenderPanelEmpty(t *testing.T) {
	assert.Nil(t, RenderPanel(nil))
}

func TestRenderPanelDrawsText(t *testing.T) {
	img := RenderPanel([]string{"HELP"})
	require.NotNil(t, img)

	w, h := Measure([]string{"HELP"})
	assert.Equal(t, w, img.Bounds().Dx())
	assert.Equal(t, h, img.Bounds().Dy())

	// Corners are bare panel, glyph pixels are text colored.
	assert.Equal(t, PanelColor, img.RGBAAt(0, 0))
	text := 0
	for y := range h {
		for x := range w {
			if img.RGBAAt(x, y) == TextColor {
				text++
			}
		}
	}
	assert.Positive(t, text)
}

func TestQuad(t *testing.T) {
	q := Quad(10, 20, 100, 50)
	// First vertex is the top-left corner sampling row 0.
	assert.Equal(t, []float32{10, 20, 0, 0}, q[0:4])
	// Third vertex is the bottom-right corner.
	assert.Equal(t, []float32{110, 70, 1, 1}, q[8:12])
}
