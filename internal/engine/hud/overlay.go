package hud

import (
	"fmt"
	"image"
	"slices"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/ripple/internal/engine/shader"
	"github.com/Faultbox/ripple/pkg/math"
)

const overlayVertexShader = `
#version 410 core

layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;

uniform mat4 uProjection;

out vec2 vTexCoord;

void main() {
	gl_Position = uProjection * vec4(aPos, 0.0, 1.0);
	vTexCoord = aTexCoord;
}
`

const overlayFragmentShader = `
#version 410 core

in vec2 vTexCoord;

uniform sampler2D uTexture;

out vec4 FragColor;

void main() {
	FragColor = texture(uTexture, vTexCoord);
}
`

// Overlay draws one text panel in screen space.
type Overlay struct {
	program *shader.Program
	vao     uint32
	vbo     uint32
	tex     uint32

	width  int
	height int
	lines  []string
}

// New compiles the overlay program and creates its buffers.
func New() (*Overlay, error) {
	p, err := shader.New(overlayVertexShader, overlayFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("overlay shader: %w", err)
	}
	o := &Overlay{program: p}

	gl.GenVertexArrays(1, &o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 6*4*4, nil, gl.DYNAMIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)
	gl.EnableVertexAttribArray(1)
	gl.BindVertexArray(0)

	gl.GenTextures(1, &o.tex)
	gl.BindTexture(gl.TEXTURE_2D, o.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return o, nil
}

// SetText replaces the panel contents. The panel is only re-rasterized when
// the lines change.
func (o *Overlay) SetText(lines []string) {
	if slices.Equal(lines, o.lines) {
		return
	}
	o.lines = slices.Clone(lines)
	o.upload(RenderPanel(lines))
}

func (o *Overlay) upload(img *image.RGBA) {
	if img == nil {
		o.width, o.height = 0, 0
		return
	}
	o.width, o.height = img.Bounds().Dx(), img.Bounds().Dy()

	gl.BindTexture(gl.TEXTURE_2D, o.tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(o.width), int32(o.height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Quad returns the two triangles covering a w x h panel at (x, y) in pixel
// space, as [x, y, u, v] per vertex. Row 0 of the panel image is at the top.
func Quad(x, y, w, h float32) [24]float32 {
	return [24]float32{
		x, y, 0, 0,
		x + w, y, 1, 0,
		x + w, y + h, 1, 1,
		x, y, 0, 0,
		x + w, y + h, 1, 1,
		x, y + h, 0, 1,
	}
}

// Draw renders the panel with its top-left corner at (x, y) on a screen of
// the given size, leaving depth test, culling and blending as it found them.
func (o *Overlay) Draw(screenW, screenH, x, y int) {
	if o.width == 0 || screenW <= 0 || screenH <= 0 {
		return
	}

	var prevBlend, prevDepth, prevCull int32
	gl.GetIntegerv(gl.BLEND, &prevBlend)
	gl.GetIntegerv(gl.DEPTH_TEST, &prevDepth)
	gl.GetIntegerv(gl.CULL_FACE, &prevCull)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	quad := Quad(float32(x), float32(y), float32(o.width), float32(o.height))
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(quad)*4, unsafe.Pointer(&quad[0]))

	o.program.Use()
	o.program.SetMat4("uProjection", math.Ortho(0, float32(screenW), float32(screenH), 0, -1, 1))
	o.program.SetInt("uTexture", 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, o.tex)

	gl.BindVertexArray(o.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if prevBlend == gl.FALSE {
		gl.Disable(gl.BLEND)
	}
	if prevDepth == gl.TRUE {
		gl.Enable(gl.DEPTH_TEST)
	}
	if prevCull == gl.TRUE {
		gl.Enable(gl.CULL_FACE)
	}
}

// Close releases GPU resources.
func (o *Overlay) Close() {
	gl.DeleteTextures(1, &o.tex)
	gl.DeleteVertexArrays(1, &o.vao)
	gl.DeleteBuffers(1, &o.vbo)
	o.program.Delete()
}
