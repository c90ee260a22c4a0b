// Package hud draws a text panel over the scene: the key help and the
// simulation stats.
package hud

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Padding is the gap in pixels between the panel border and its text.
const Padding = 8

var (
	// PanelColor is the translucent panel background.
	PanelColor = color.RGBA{R: 10, G: 20, B: 40, A: 190}
	// TextColor is the glyph color.
	TextColor = color.RGBA{R: 230, G: 240, B: 255, A: 255}
)

// Face is the bitmap face every panel is set in.
var Face font.Face = basicfont.Face7x13

// lineHeight is the baseline-to-baseline distance of Face.
func lineHeight() int {
	return Face.Metrics().Height.Ceil()
}

// Measure returns the panel size needed for lines.
func Measure(lines []string) (w, h int) {
	for _, l := range lines {
		w = max(w, font.MeasureString(Face, l).Ceil())
	}
	return w + 2*Padding, len(lines)*lineHeight() + 2*Padding
}

// RenderPanel rasterizes lines onto a new translucent panel. Returns nil when
// there is nothing to draw.
func RenderPanel(lines []string) *image.RGBA {
	if len(lines) == 0 {
		return nil
	}
	w, h := Measure(lines)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(PanelColor), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(TextColor),
		Face: Face,
	}
	ascent := Face.Metrics().Ascent.Ceil()
	for i, l := range lines {
		d.Dot = fixed.P(Padding, Padding+i*lineHeight()+ascent)
		d.DrawString(l)
	}
	return img
}
