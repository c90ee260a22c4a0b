package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/ripple/internal/engine/lighting"
	"github.com/Faultbox/ripple/internal/engine/shader"
	"github.com/Faultbox/ripple/internal/engine/texture"
	"github.com/Faultbox/ripple/internal/logger"
	"github.com/Faultbox/ripple/internal/water"
	"github.com/Faultbox/ripple/pkg/math"
)

const floatSize = 4

// Frame carries the per-frame inputs of a water draw.
type Frame struct {
	Model      math.Mat4
	View       math.Mat4
	Projection math.Mat4
	Eye        math.Vec3
	Lights     lighting.Rig
	Lighting   bool
	Wireframe  bool
	Gray       bool             // luminance-only output for gray anaglyph
	Texture    *texture.Texture // nil draws untextured
}

// setFrameUniforms loads the matrices and lights of f into p.
func setFrameUniforms(p *shader.Program, f Frame) {
	p.Use()
	p.SetMat4("uModel", f.Model)
	p.SetMat4("uView", f.View)
	p.SetMat4("uProjection", f.Projection)
	p.SetVec3("uEye", f.Eye)
	p.SetBool("uFlat", false)
	p.SetBool("uGray", f.Gray)

	p.SetBool("uLighting", f.Lighting)
	p.SetFloat("uAmbient", f.Lights.Ambient)
	p.SetBool("uSunOn", f.Lights.SunOn)
	p.SetVec3("uSunDir", f.Lights.SunDir)
	p.SetColor("uSunColor", f.Lights.SunColor)
	p.SetBool("uPointOn", f.Lights.PointOn)
	p.SetVec3("uPointPos", f.Lights.Point.Position)
	p.SetColor("uPointColor", f.Lights.Point.Color)
}

// WaterRenderer draws a water.Buffer as an indexed triangle mesh.
type WaterRenderer struct {
	program *shader.Program

	vao uint32
	vbo uint32
	ebo uint32

	generation  uint64
	vertexCount int
	indexCount  int32
}

// NewWaterRenderer compiles the water shader and creates empty buffers.
func NewWaterRenderer() (*WaterRenderer, error) {
	program, err := shader.New(waterVertexShader, waterFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("water shader: %w", err)
	}

	wr := &WaterRenderer{program: program}

	gl.GenVertexArrays(1, &wr.vao)
	gl.GenBuffers(1, &wr.vbo)
	gl.GenBuffers(1, &wr.ebo)

	gl.BindVertexArray(wr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, wr.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, wr.ebo)

	stride := int32(water.VertexStride * floatSize)
	attribs := []struct {
		loc    uint32
		size   int32
		offset int
	}{
		{0, 3, water.OffsetPosition},
		{1, 3, water.OffsetColor},
		{2, 3, water.OffsetNormal},
		{3, 2, water.OffsetTexCoord},
	}
	for _, a := range attribs {
		gl.VertexAttribPointerWithOffset(a.loc, a.size, gl.FLOAT, false, stride, uintptr(a.offset*floatSize))
		gl.EnableVertexAttribArray(a.loc)
	}

	gl.BindVertexArray(0)
	return wr, nil
}

// Upload copies buf to the GPU. Buffers are reallocated only when the grid
// generation changed; otherwise the vertex data is overwritten in place.
func (wr *WaterRenderer) Upload(buf *water.Buffer) {
	if len(buf.Vertices) == 0 || len(buf.Indices) == 0 {
		wr.indexCount = 0
		return
	}

	gl.BindVertexArray(wr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, wr.vbo)

	if buf.Generation != wr.generation || len(buf.Vertices) != wr.vertexCount {
		gl.BufferData(gl.ARRAY_BUFFER, len(buf.Vertices)*floatSize, unsafe.Pointer(&buf.Vertices[0]), gl.DYNAMIC_DRAW)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, wr.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(buf.Indices)*4, unsafe.Pointer(&buf.Indices[0]), gl.STATIC_DRAW)

		wr.generation = buf.Generation
		wr.vertexCount = len(buf.Vertices)
		wr.indexCount = int32(len(buf.Indices))
		logger.Debug("water buffers reallocated",
			zap.Uint64("generation", buf.Generation),
			zap.Int("vertices", len(buf.Vertices)/water.VertexStride),
			zap.Int32("indices", wr.indexCount),
		)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(buf.Vertices)*floatSize, unsafe.Pointer(&buf.Vertices[0]))
	}

	gl.BindVertexArray(0)
}

// Draw renders the last uploaded mesh.
func (wr *WaterRenderer) Draw(f Frame) {
	if wr.indexCount == 0 {
		return
	}

	p := wr.program
	setFrameUniforms(p, f)

	p.SetBool("uUseTexture", f.Texture != nil)
	if f.Texture != nil {
		f.Texture.Bind(0)
		p.SetInt("uTexture", 0)
	}

	if f.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}
	gl.BindVertexArray(wr.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, wr.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
	if f.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// Program returns the water shader, shared with the normals overlay.
func (wr *WaterRenderer) Program() *shader.Program { return wr.program }

// Close releases GPU resources.
func (wr *WaterRenderer) Close() {
	gl.DeleteVertexArrays(1, &wr.vao)
	gl.DeleteBuffers(1, &wr.vbo)
	gl.DeleteBuffers(1, &wr.ebo)
	wr.program.Delete()
}
