package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/ripple/internal/engine/shader"
	"github.com/Faultbox/ripple/internal/water"
)

// NormalLength is the drawn length of a normal in grid units.
const NormalLength = 0.05

// NormalLines appends one line segment per vertex of buf, from the vertex
// position along its normal, and returns the extended slice. Format is
// [x, y, z] per endpoint.
func NormalLines(dst []float32, buf *water.Buffer, length float32) []float32 {
	dst = dst[:0]
	for v := 0; v+water.VertexStride <= len(buf.Vertices); v += water.VertexStride {
		p := buf.Vertices[v+water.OffsetPosition : v+water.OffsetPosition+3]
		n := buf.Vertices[v+water.OffsetNormal : v+water.OffsetNormal+3]
		dst = append(dst,
			p[0], p[1], p[2],
			p[0]+n[0]*length, p[1]+n[1]*length, p[2]+n[2]*length,
		)
	}
	return dst
}

// NormalRenderer draws the normals overlay with the water program's flat
// color path.
type NormalRenderer struct {
	vao      uint32
	vbo      uint32
	capacity int
	count    int32
	lines    []float32
}

// NewNormalRenderer creates the overlay's line buffers.
func NewNormalRenderer() *NormalRenderer {
	nr := &NormalRenderer{}
	gl.GenVertexArrays(1, &nr.vao)
	gl.GenBuffers(1, &nr.vbo)

	gl.BindVertexArray(nr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, nr.vbo)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*floatSize, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
	return nr
}

// Upload rebuilds the line list from buf.
func (nr *NormalRenderer) Upload(buf *water.Buffer) {
	nr.lines = NormalLines(nr.lines, buf, NormalLength)
	nr.count = int32(len(nr.lines) / 3)
	if nr.count == 0 {
		return
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, nr.vbo)
	if len(nr.lines) > nr.capacity {
		gl.BufferData(gl.ARRAY_BUFFER, len(nr.lines)*floatSize, unsafe.Pointer(&nr.lines[0]), gl.DYNAMIC_DRAW)
		nr.capacity = len(nr.lines)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(nr.lines)*floatSize, unsafe.Pointer(&nr.lines[0]))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Draw renders the lines with p, which must already hold the frame's
// matrices.
func (nr *NormalRenderer) Draw(p *shader.Program) {
	if nr.count == 0 {
		return
	}
	p.Use()
	p.SetBool("uFlat", true)
	p.SetColor("uFlatColor", [3]float32{1, 1, 0})
	gl.BindVertexArray(nr.vao)
	gl.DrawArrays(gl.LINES, 0, nr.count)
	gl.BindVertexArray(0)
	p.SetBool("uFlat", false)
}

// Close releases GPU resources.
func (nr *NormalRenderer) Close() {
	gl.DeleteVertexArrays(1, &nr.vao)
	gl.DeleteBuffers(1, &nr.vbo)
}
