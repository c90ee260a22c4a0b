package renderer

import (
	"fmt"
	"unsafe"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/ripple/internal/engine/shader"
	"github.com/Faultbox/ripple/internal/water"
)

// Column sphere geometry in grid units.
const (
	SphereRadius = 0.01
	SphereSlices = 10
	SphereStacks = 10
)

// sphereStride is the float count of a mesh vertex and of an instance:
// position or offset (3) followed by normal or color (3).
const sphereStride = 6

// SphereMesh builds a UV sphere around the origin as [x, y, z, nx, ny, nz]
// vertices and a triangle index list.
func SphereMesh(radius float32, slices, stacks int) ([]float32, []uint32) {
	vertices := make([]float32, 0, (stacks+1)*(slices+1)*sphereStride)
	for i := 0; i <= stacks; i++ {
		sinT, cosT := math32.Sincos(math32.Pi * float32(i) / float32(stacks))
		for j := 0; j <= slices; j++ {
			sinP, cosP := math32.Sincos(2 * math32.Pi * float32(j) / float32(slices))
			n := [3]float32{sinT * cosP, cosT, sinT * sinP}
			vertices = append(vertices, n[0]*radius, n[1]*radius, n[2]*radius, n[0], n[1], n[2])
		}
	}

	indices := make([]uint32, 0, stacks*slices*6)
	row := uint32(slices + 1)
	for i := range uint32(stacks) {
		for j := range uint32(slices) {
			a := i*row + j
			b := a + row
			indices = append(indices, a, b, a+1, a+1, b, b+1)
		}
	}
	return vertices, indices
}

// SphereInstances writes one [x, y, z, r, g, b] instance per vertex of buf
// into dst and returns it.
func SphereInstances(dst []float32, buf *water.Buffer) []float32 {
	dst = dst[:0]
	for v := 0; v+water.VertexStride <= len(buf.Vertices); v += water.VertexStride {
		p := buf.Vertices[v+water.OffsetPosition : v+water.OffsetPosition+3]
		c := buf.Vertices[v+water.OffsetColor : v+water.OffsetColor+3]
		dst = append(dst, p[0], p[1], p[2], c[0], c[1], c[2])
	}
	return dst
}

// SphereRenderer draws a small sphere at every column, colored by band.
type SphereRenderer struct {
	program *shader.Program

	vao         uint32
	meshVBO     uint32
	ebo         uint32
	instanceVBO uint32
	indexCount  int32

	instances []float32
	capacity  int
	count     int32
}

// NewSphereRenderer builds the sphere mesh and its instanced program.
func NewSphereRenderer() (*SphereRenderer, error) {
	program, err := shader.New(sphereVertexShader, waterFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("sphere shader: %w", err)
	}
	sr := &SphereRenderer{program: program}

	vertices, indices := SphereMesh(SphereRadius, SphereSlices, SphereStacks)
	sr.indexCount = int32(len(indices))

	gl.GenVertexArrays(1, &sr.vao)
	gl.GenBuffers(1, &sr.meshVBO)
	gl.GenBuffers(1, &sr.ebo)
	gl.GenBuffers(1, &sr.instanceVBO)

	gl.BindVertexArray(sr.vao)
	stride := int32(sphereStride * floatSize)

	gl.BindBuffer(gl.ARRAY_BUFFER, sr.meshVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*floatSize, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*floatSize)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, sr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ARRAY_BUFFER, sr.instanceVBO)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribDivisor(2, 1)
	gl.VertexAttribPointerWithOffset(3, 3, gl.FLOAT, false, stride, 3*floatSize)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribDivisor(3, 1)

	gl.BindVertexArray(0)
	return sr, nil
}

// Upload refreshes the per-column instances from buf.
func (sr *SphereRenderer) Upload(buf *water.Buffer) {
	sr.instances = SphereInstances(sr.instances, buf)
	sr.count = int32(len(sr.instances) / sphereStride)
	if sr.count == 0 {
		return
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, sr.instanceVBO)
	if len(sr.instances) > sr.capacity {
		gl.BufferData(gl.ARRAY_BUFFER, len(sr.instances)*floatSize, unsafe.Pointer(&sr.instances[0]), gl.DYNAMIC_DRAW)
		sr.capacity = len(sr.instances)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(sr.instances)*floatSize, unsafe.Pointer(&sr.instances[0]))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Draw renders every uploaded sphere. Spheres are always untextured and
// filled.
func (sr *SphereRenderer) Draw(f Frame) {
	if sr.count == 0 {
		return
	}
	setFrameUniforms(sr.program, f)
	sr.program.SetBool("uUseTexture", false)

	gl.BindVertexArray(sr.vao)
	gl.DrawElementsInstanced(gl.TRIANGLES, sr.indexCount, gl.UNSIGNED_INT, nil, sr.count)
	gl.BindVertexArray(0)
}

// Close releases GPU resources.
func (sr *SphereRenderer) Close() {
	gl.DeleteVertexArrays(1, &sr.vao)
	gl.DeleteBuffers(1, &sr.meshVBO)
	gl.DeleteBuffers(1, &sr.ebo)
	gl.DeleteBuffers(1, &sr.instanceVBO)
	sr.program.Delete()
}
